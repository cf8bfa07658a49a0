// Package config — project configuration for keycheck.
//
// When a .keycheck.toml file exists in the project root it is the sole
// source of truth for the translation directory, source directories,
// and the translation call patterns. Without it, the translation
// directory is auto-detected among conventional candidates and sources
// default to the project root.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/minios-linux/keycheck/extract"
)

// FileName is the configuration file name looked up in the root.
const FileName = ".keycheck.toml"

// File is the top-level .keycheck.toml structure.
type File struct {
	// Translations is the translation file directory relative to root.
	Translations string `toml:"translations"`
	// Sources are source directories to scan relative to root
	// (default: the root itself).
	Sources []string `toml:"sources"`
	// Exclude lists extra directory names pruned during scanning,
	// on top of the built-in exclusions.
	Exclude []string `toml:"exclude"`
	// Keywords overrides the recognized translation call patterns.
	Keywords Keywords `toml:"keywords"`
}

// Keywords configures the translation call patterns.
type Keywords struct {
	// Module is the package identifier in qualified calls (default "i18n").
	Module string `toml:"module"`
	// Functions is the translation function name list.
	Functions []string `toml:"functions"`
}

// Load reads .keycheck.toml from root. A missing file returns (nil, nil).
func Load(root string) (*File, error) {
	path := filepath.Join(root, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var f File
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &f, nil
}

// Project is the resolved configuration used by commands.
type Project struct {
	Root            string
	TranslationsDir string
	SourceDirs      []string
	Exclude         []string
	Patterns        extract.Patterns
}

// translationDirCandidates are tried in order when no configuration
// names the translation directory.
var translationDirCandidates = []string{"translations", "locales", "i18n", "lang"}

// Detect resolves the project configuration for root. An explicit
// .keycheck.toml wins; otherwise conventional defaults apply. The
// returned TranslationsDir may be empty when nothing was detected —
// commands report that as the fatal "no translation files" condition.
func Detect(root string) (*Project, error) {
	proj := &Project{
		Root:       root,
		SourceDirs: []string{root},
		Patterns:   extract.DefaultPatterns(),
	}

	cfg, err := Load(root)
	if err != nil {
		return nil, err
	}

	if cfg != nil {
		if cfg.Translations != "" {
			proj.TranslationsDir = filepath.Join(root, cfg.Translations)
		}
		if len(cfg.Sources) > 0 {
			proj.SourceDirs = proj.SourceDirs[:0]
			for _, dir := range cfg.Sources {
				proj.SourceDirs = append(proj.SourceDirs, filepath.Join(root, dir))
			}
		}
		proj.Exclude = cfg.Exclude
		proj.Patterns = extract.NewPatterns(cfg.Keywords.Module, cfg.Keywords.Functions)
	}

	if proj.TranslationsDir == "" {
		for _, name := range translationDirCandidates {
			candidate := filepath.Join(root, name)
			if info, err := os.Stat(candidate); err == nil && info.IsDir() {
				proj.TranslationsDir = candidate
				break
			}
		}
	}

	return proj, nil
}
