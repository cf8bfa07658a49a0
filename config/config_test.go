package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg != nil {
		t.Fatalf("Load() = %+v, want nil for missing file", cfg)
	}
}

func TestLoadInvalidTOML(t *testing.T) {
	t.Parallel()

	tmp := t.TempDir()
	if err := os.WriteFile(filepath.Join(tmp, FileName), []byte("translations = [broken\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(tmp); err == nil {
		t.Fatal("Load should fail on malformed TOML")
	}
}

func TestDetectWithConfigFile(t *testing.T) {
	t.Parallel()

	tmp := t.TempDir()
	cfg := `translations = "assets/locales"
sources = ["cmd", "internal"]
exclude = ["generated"]

[keywords]
module = "lang"
functions = ["Tr", "TrPlural"]
`
	if err := os.WriteFile(filepath.Join(tmp, FileName), []byte(cfg), 0644); err != nil {
		t.Fatal(err)
	}

	proj, err := Detect(tmp)
	if err != nil {
		t.Fatalf("Detect: %v", err)
	}

	if want := filepath.Join(tmp, "assets/locales"); proj.TranslationsDir != want {
		t.Fatalf("TranslationsDir = %q, want %q", proj.TranslationsDir, want)
	}
	wantSrc := []string{filepath.Join(tmp, "cmd"), filepath.Join(tmp, "internal")}
	if !reflect.DeepEqual(proj.SourceDirs, wantSrc) {
		t.Fatalf("SourceDirs = %v, want %v", proj.SourceDirs, wantSrc)
	}
	if !reflect.DeepEqual(proj.Exclude, []string{"generated"}) {
		t.Fatalf("Exclude = %v", proj.Exclude)
	}
	if proj.Patterns.Module != "lang" || !proj.Patterns.Functions["Tr"] || proj.Patterns.Functions["Translate"] {
		t.Fatalf("Patterns = %+v, want lang/Tr overrides", proj.Patterns)
	}
}

func TestDetectAutoDetectsTranslationsDir(t *testing.T) {
	t.Parallel()

	tmp := t.TempDir()
	if err := os.MkdirAll(filepath.Join(tmp, "locales"), 0755); err != nil {
		t.Fatal(err)
	}

	proj, err := Detect(tmp)
	if err != nil {
		t.Fatalf("Detect: %v", err)
	}
	if want := filepath.Join(tmp, "locales"); proj.TranslationsDir != want {
		t.Fatalf("TranslationsDir = %q, want %q", proj.TranslationsDir, want)
	}
	if !reflect.DeepEqual(proj.SourceDirs, []string{tmp}) {
		t.Fatalf("SourceDirs = %v, want project root", proj.SourceDirs)
	}
	if proj.Patterns.Module != "i18n" {
		t.Fatalf("Patterns.Module = %q, want default i18n", proj.Patterns.Module)
	}
}

func TestDetectNothingFound(t *testing.T) {
	t.Parallel()

	proj, err := Detect(t.TempDir())
	if err != nil {
		t.Fatalf("Detect: %v", err)
	}
	if proj.TranslationsDir != "" {
		t.Fatalf("TranslationsDir = %q, want empty when nothing detected", proj.TranslationsDir)
	}
}

func TestDetectCandidatePriority(t *testing.T) {
	t.Parallel()

	tmp := t.TempDir()
	for _, name := range []string{"translations", "locales"} {
		if err := os.MkdirAll(filepath.Join(tmp, name), 0755); err != nil {
			t.Fatal(err)
		}
	}

	proj, err := Detect(tmp)
	if err != nil {
		t.Fatalf("Detect: %v", err)
	}
	if want := filepath.Join(tmp, "translations"); proj.TranslationsDir != want {
		t.Fatalf("TranslationsDir = %q, want %q (first candidate wins)", proj.TranslationsDir, want)
	}
}
