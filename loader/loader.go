// Package loader reads a directory of translation files into
// per-locale stores behind a cascading format auto-detection.
//
// Formats are tried in order: flat JSON, nested JSON, PO, YAML. Each
// attempt covers every translation file in the directory, whatever its
// extension: a format wins only when the whole set parses under it,
// and partial success counts as failure and triggers fallback. A
// format whose extension appears nowhere in the directory is not
// attempted, since it could not have been intended. Locale codes are
// derived from file base names and validated; an invalid code aborts
// the whole load instead of falling through to the next format, since
// no format can repair a bad file name.
package loader

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/minios-linux/keycheck/locale"
	"github.com/minios-linux/keycheck/store"
)

// Format names a translation file serialization.
type Format string

const (
	FormatFlatJSON   Format = "flat JSON"
	FormatNestedJSON Format = "nested JSON"
	FormatPO         Format = "PO"
	FormatYAML       Format = "YAML"
)

// LocaleStore pairs a locale code with its loaded translation store.
type LocaleStore struct {
	Locale locale.Code
	Store  *store.Store
}

// Result is the outcome of loading one translation directory.
type Result struct {
	Format  Format
	Locales []LocaleStore
}

// ErrNoTranslationFiles reports a directory without any loadable files.
var ErrNoTranslationFiles = errors.New("no translation files found")

// LocaleError reports a file whose base name is not a valid locale
// code. It aborts the cascade rather than triggering format fallback.
type LocaleError struct {
	File string
	Err  error
}

func (e *LocaleError) Error() string {
	return fmt.Sprintf("%s: %v", e.File, e.Err)
}

func (e *LocaleError) Unwrap() error { return e.Err }

// localeFile is one translation file staged for the parse attempts.
type localeFile struct {
	path string
	code locale.Code
	data []byte
}

// LoadDir loads every locale file in dir, auto-detecting the format.
func LoadDir(dir string) (*Result, error) {
	files, err := listTranslationFiles(dir)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoTranslationFiles, dir)
	}

	// Locale codes come from file names and reads are not
	// format-specific, so both happen once, before any parse attempt.
	set := make([]localeFile, 0, len(files))
	hasExt := make(map[string]bool)
	for _, path := range files {
		code, err := localeFromFilename(path)
		if err != nil {
			return nil, &LocaleError{File: path, Err: err}
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		set = append(set, localeFile{path: path, code: code, data: data})
		hasExt[filepath.Ext(path)] = true
	}

	var flatErr, nestedErr, poErr, yamlErr error

	// Every attempt below runs over the full set. A directory mixing a
	// parsable en.json with a garbage de.po must fail outright, not
	// win as JSON with the .po locale silently dropped.
	if hasExt[".json"] {
		locales, err := loadSet(set, parseFlatJSON)
		if err == nil {
			return &Result{Format: FormatFlatJSON, Locales: locales}, nil
		}
		flatErr = fmt.Errorf("%s: %w", FormatFlatJSON, err)

		locales, err = loadSet(set, parseNestedJSON)
		if err == nil {
			return &Result{Format: FormatNestedJSON, Locales: locales}, nil
		}
		nestedErr = fmt.Errorf("%s: %w", FormatNestedJSON, err)
	}

	if hasExt[".po"] {
		locales, err := loadSet(set, parsePO)
		if err == nil {
			return &Result{Format: FormatPO, Locales: locales}, nil
		}
		poErr = fmt.Errorf("%s: %w", FormatPO, err)
	}

	if hasExt[".yaml"] || hasExt[".yml"] {
		locales, err := loadSet(set, parseYAML)
		if err == nil {
			return &Result{Format: FormatYAML, Locales: locales}, nil
		}
		yamlErr = fmt.Errorf("%s: %w", FormatYAML, err)
	}

	// Nested JSON is the more common modern format, so its error is
	// the most actionable one to surface. flatErr is shadowed by
	// nestedErr whenever JSON files exist; it remains the answer only
	// if the nested attempt somehow never ran.
	switch {
	case nestedErr != nil:
		return nil, nestedErr
	case flatErr != nil:
		return nil, flatErr
	case poErr != nil:
		return nil, poErr
	default:
		return nil, yamlErr
	}
}

// loadSet parses every file of the set with one parser. All-or-nothing:
// the first failing file fails the whole set.
func loadSet(set []localeFile, parse func([]byte) (*store.Store, error)) ([]LocaleStore, error) {
	locales := make([]LocaleStore, 0, len(set))
	for _, f := range set {
		st, err := parse(f.data)
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", f.path, err)
		}
		locales = append(locales, LocaleStore{Locale: f.code, Store: st})
	}
	return locales, nil
}

// localeFromFilename derives the locale code from a file's base name
// ("en-US.json" → en_US).
func localeFromFilename(path string) (locale.Code, error) {
	base := filepath.Base(path)
	return locale.Parse(strings.TrimSuffix(base, filepath.Ext(base)))
}

// translationExts are the file extensions the loader recognizes.
var translationExts = map[string]bool{
	".json": true,
	".po":   true,
	".yaml": true,
	".yml":  true,
}

// listTranslationFiles returns the recognized files in dir, sorted for
// deterministic load order. Subdirectories are not descended into.
func listTranslationFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading translation directory: %w", err)
	}
	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if translationExts[filepath.Ext(entry.Name())] {
			files = append(files, filepath.Join(dir, entry.Name()))
		}
	}
	sort.Strings(files)
	return files, nil
}
