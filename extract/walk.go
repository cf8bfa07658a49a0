// Grammar-wide recursive dispatch over the Go syntax tree.
//
// Unlike ast.Inspect, the walker enumerates one arm per node kind so
// that a grammar extension shows up as an unhandled case during review
// rather than a silently skipped subtree. Every arm recurses into the
// sub-expressions its node kind carries; leaves terminate.

package extract

import (
	"go/ast"
	"go/token"
)

// walker accumulates key usages for one parsed source file.
type walker struct {
	fset *token.FileSet
	pats Patterns
	path string
	out  []Usage
}

func (w *walker) file(f *ast.File) {
	for _, d := range f.Decls {
		w.decl(d)
	}
}

func (w *walker) decl(d ast.Decl) {
	switch d := d.(type) {
	case nil, *ast.BadDecl:
	case *ast.FuncDecl:
		if d.Body != nil {
			w.stmt(d.Body)
		}
	case *ast.GenDecl:
		for _, spec := range d.Specs {
			if vs, ok := spec.(*ast.ValueSpec); ok {
				w.exprs(vs.Values)
			}
		}
	}
}

func (w *walker) stmts(list []ast.Stmt) {
	for _, s := range list {
		w.stmt(s)
	}
}

func (w *walker) stmt(s ast.Stmt) {
	switch s := s.(type) {
	case nil, *ast.BadStmt, *ast.EmptyStmt, *ast.BranchStmt:
	case *ast.DeclStmt:
		w.decl(s.Decl)
	case *ast.LabeledStmt:
		w.stmt(s.Stmt)
	case *ast.ExprStmt:
		w.expr(s.X)
	case *ast.SendStmt:
		w.expr(s.Chan)
		w.expr(s.Value)
	case *ast.IncDecStmt:
		w.expr(s.X)
	case *ast.AssignStmt:
		w.exprs(s.Lhs)
		w.exprs(s.Rhs)
	case *ast.GoStmt:
		w.expr(s.Call)
	case *ast.DeferStmt:
		w.expr(s.Call)
	case *ast.ReturnStmt:
		w.exprs(s.Results)
	case *ast.BlockStmt:
		w.stmts(s.List)
	case *ast.IfStmt:
		w.stmt(s.Init)
		w.expr(s.Cond)
		w.stmt(s.Body)
		w.stmt(s.Else)
	case *ast.CaseClause:
		w.exprs(s.List)
		w.stmts(s.Body)
	case *ast.SwitchStmt:
		w.stmt(s.Init)
		w.expr(s.Tag)
		w.stmt(s.Body)
	case *ast.TypeSwitchStmt:
		w.stmt(s.Init)
		w.stmt(s.Assign)
		w.stmt(s.Body)
	case *ast.CommClause:
		w.stmt(s.Comm)
		w.stmts(s.Body)
	case *ast.SelectStmt:
		w.stmt(s.Body)
	case *ast.ForStmt:
		w.stmt(s.Init)
		w.expr(s.Cond)
		w.stmt(s.Post)
		w.stmt(s.Body)
	case *ast.RangeStmt:
		w.expr(s.Key)
		w.expr(s.Value)
		w.expr(s.X)
		w.stmt(s.Body)
	}
}

func (w *walker) exprs(list []ast.Expr) {
	for _, e := range list {
		w.expr(e)
	}
}

func (w *walker) expr(e ast.Expr) {
	switch e := e.(type) {
	case nil, *ast.BadExpr, *ast.Ident, *ast.BasicLit:
		// Leaves: cannot contain calls.
	case *ast.StructType, *ast.FuncType, *ast.InterfaceType, *ast.MapType, *ast.ChanType:
		// Type expressions: no value sub-expressions.
	case *ast.ArrayType:
		w.expr(e.Len)
	case *ast.Ellipsis:
	case *ast.FuncLit:
		w.stmt(e.Body)
	case *ast.CompositeLit:
		w.exprs(e.Elts)
	case *ast.ParenExpr:
		w.expr(e.X)
	case *ast.SelectorExpr:
		w.expr(e.X)
	case *ast.IndexExpr:
		w.expr(e.X)
		w.expr(e.Index)
	case *ast.IndexListExpr:
		w.expr(e.X)
		w.exprs(e.Indices)
	case *ast.SliceExpr:
		w.expr(e.X)
		w.expr(e.Low)
		w.expr(e.High)
		w.expr(e.Max)
	case *ast.TypeAssertExpr:
		w.expr(e.X)
	case *ast.CallExpr:
		if key, ok := w.pats.keyFromCall(e); ok {
			w.out = append(w.out, Usage{
				Key:  key,
				File: w.path,
				Line: w.fset.Position(e.Lparen).Line,
			})
		}
		// Arguments are scanned even for matching calls — a
		// translation call may nest inside another's arguments.
		w.expr(e.Fun)
		w.exprs(e.Args)
	case *ast.StarExpr:
		w.expr(e.X)
	case *ast.UnaryExpr:
		w.expr(e.X)
	case *ast.BinaryExpr:
		w.expr(e.X)
		w.expr(e.Y)
	case *ast.KeyValueExpr:
		w.expr(e.Key)
		w.expr(e.Value)
	}
}
