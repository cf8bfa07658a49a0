// Package scan cross-checks translation keys used in source code
// against the keys declared across all loaded locales.
//
// The package is pure computation: it builds the key index, computes
// set differences, and returns values. Rendering and exit codes belong
// to the command layer.
package scan

import (
	"sort"
	"strings"

	"github.com/minios-linux/keycheck/extract"
	"github.com/minios-linux/keycheck/loader"
)

// Index is the set of all declared translation keys, unioned across
// locales. Membership is the only operation the scan needs.
type Index map[string]struct{}

// BuildIndex flattens every locale store and joins key paths with ".".
func BuildIndex(locales []loader.LocaleStore) Index {
	idx := make(Index)
	for _, ls := range locales {
		for _, e := range ls.Store.Flatten() {
			idx[strings.Join(e.Path, ".")] = struct{}{}
		}
	}
	return idx
}

// Has reports whether key is declared in any locale.
func (idx Index) Has(key string) bool {
	_, ok := idx[key]
	return ok
}

// Keys returns all declared keys, sorted.
func (idx Index) Keys() []string {
	keys := make([]string, 0, len(idx))
	for k := range idx {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Result is the outcome of one scan.
type Result struct {
	// Declared is the number of keys in the index.
	Declared int
	// Used is the number of key usages found in source.
	Used int
	// Missing holds every usage whose key is not declared. A key used
	// in five places produces five entries, so each location is
	// reportable.
	Missing []extract.Usage
}

// Check computes the used-but-undeclared set.
func Check(idx Index, usages []extract.Usage) Result {
	res := Result{
		Declared: len(idx),
		Used:     len(usages),
	}
	for _, u := range usages {
		if !idx.Has(u.Key) {
			res.Missing = append(res.Missing, u)
		}
	}
	return res
}

// Unused returns the declared keys never referenced in source, sorted.
func Unused(idx Index, usages []extract.Usage) []string {
	used := make(map[string]struct{}, len(usages))
	for _, u := range usages {
		used[u.Key] = struct{}{}
	}
	var unused []string
	for key := range idx {
		if _, ok := used[key]; !ok {
			unused = append(unused, key)
		}
	}
	sort.Strings(unused)
	return unused
}
