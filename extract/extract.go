// Package extract locates translation-key literals referenced in Go
// source code.
//
// It scans the AST of each source file for calls to a known family of
// translation functions (e.g. i18n.Translate(t, "ui.save")) and pulls
// out the literal string naming the translation key. Keys built from
// variables or other non-literal expressions are deliberately not
// guessed at — such call sites contribute nothing.
package extract

import (
	"fmt"
	"go/ast"
	"go/token"
	"strconv"
)

// KeyArgIndex is the zero-based argument position holding the key.
// Every function in the translation family takes a translator first
// and the dotted key second.
const KeyArgIndex = 1

// Patterns describes the recognized translation call shapes.
type Patterns struct {
	// Module is the package identifier matched in qualified calls
	// (the "i18n" in i18n.Translate).
	Module string
	// Functions is the set of translation function names.
	Functions map[string]bool
}

// DefaultPatterns returns the standard translation function family.
func DefaultPatterns() Patterns {
	return Patterns{
		Module: "i18n",
		Functions: map[string]bool{
			"Translate":         true,
			"TranslatePlural":   true,
			"TranslateWithVars": true,
		},
	}
}

// NewPatterns builds a Patterns from configuration values, falling
// back to the defaults for empty fields.
func NewPatterns(module string, functions []string) Patterns {
	p := DefaultPatterns()
	if module != "" {
		p.Module = module
	}
	if len(functions) > 0 {
		p.Functions = make(map[string]bool, len(functions))
		for _, fn := range functions {
			p.Functions[fn] = true
		}
	}
	return p
}

// Usage is one observed key occurrence: which key, where.
type Usage struct {
	Key  string
	File string
	Line int
}

func (u Usage) String() string {
	return fmt.Sprintf("%s (%s:%d)", u.Key, u.File, u.Line)
}

// keyFromCall reports whether call invokes a translation function and,
// if so, returns the literal key string. A bare callee matches on name
// alone; a qualified callee must match both the module identifier and
// the function name. A matching call whose key argument is missing or
// not a literal yields ok=false — no guess, no error.
func (p Patterns) keyFromCall(call *ast.CallExpr) (string, bool) {
	switch fn := call.Fun.(type) {
	case *ast.Ident:
		if !p.Functions[fn.Name] {
			return "", false
		}
	case *ast.SelectorExpr:
		mod, ok := fn.X.(*ast.Ident)
		if !ok || mod.Name != p.Module || !p.Functions[fn.Sel.Name] {
			return "", false
		}
	default:
		return "", false
	}

	if len(call.Args) <= KeyArgIndex {
		return "", false
	}
	key := litString(call.Args[KeyArgIndex])
	if key == "" {
		return "", false
	}
	return key, true
}

// litString extracts a compile-time string from an expression.
// Handles string literals and literal concatenation ("ui." + "save").
// Returns "" for anything else.
func litString(expr ast.Expr) string {
	switch e := expr.(type) {
	case *ast.BasicLit:
		if e.Kind == token.STRING {
			s, err := strconv.Unquote(e.Value)
			if err != nil {
				return ""
			}
			return s
		}
	case *ast.ParenExpr:
		return litString(e.X)
	case *ast.BinaryExpr:
		if e.Op == token.ADD {
			left := litString(e.X)
			right := litString(e.Y)
			if left != "" && right != "" {
				return left + right
			}
		}
	}
	return ""
}
