package extract

import (
	"fmt"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"
)

// skipDirs contains directory names pruned during source scanning.
// Pruned directories are never descended into.
var skipDirs = map[string]bool{
	".git":         true,
	".hg":          true,
	".svn":         true,
	"node_modules": true,
	"vendor":       true,
	"dist":         true,
	"build":        true,
	"target":       true,
	"_build":       true,
	"__pycache__":  true,
}

// SourceFiles recursively finds all .go files under root, excluding
// tests and pruning skipped directories. Unreadable entries contribute
// nothing; the walk never aborts.
func SourceFiles(root string, extraSkip []string) []string {
	skip := skipDirs
	if len(extraSkip) > 0 {
		skip = make(map[string]bool, len(skipDirs)+len(extraSkip))
		for name := range skipDirs {
			skip[name] = true
		}
		for _, name := range extraSkip {
			skip[name] = true
		}
	}

	var files []string
	filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil
		}
		if info.IsDir() {
			// Exclusions prune descent, but never the root the caller
			// asked to scan, even when its base name matches.
			if path != root && skip[info.Name()] {
				return filepath.SkipDir
			}
			return nil
		}
		if filepath.Ext(path) == ".go" && !strings.HasSuffix(path, "_test.go") {
			files = append(files, path)
		}
		return nil
	})
	return files
}

// ScanDir parses every Go source file under root and returns all key
// usages plus the number of files scanned. A file that fails to parse
// contributes zero keys; the scan continues with a warning.
func ScanDir(root string, pats Patterns, extraSkip []string) ([]Usage, int) {
	files := SourceFiles(root, extraSkip)

	var usages []Usage
	fset := token.NewFileSet()
	for _, path := range files {
		f, err := parser.ParseFile(fset, path, nil, 0)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: skipping %s: %v\n", path, err)
			continue
		}
		w := walker{fset: fset, pats: pats, path: path}
		w.file(f)
		usages = append(usages, w.out...)
	}
	return usages, len(files)
}
