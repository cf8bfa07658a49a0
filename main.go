// keycheck — static checker for translation keys.
//
// Scans Go source for translation calls, loads the project's locale
// files (flat JSON, nested JSON, PO, or YAML — auto-detected), and
// reports keys used but never declared, or declared but never used.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/minios-linux/keycheck/config"
	"github.com/minios-linux/keycheck/extract"
	"github.com/minios-linux/keycheck/loader"
	"github.com/minios-linux/keycheck/scan"
)

// Version information (set via -ldflags during build)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// ANSI colors
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[0;31m"
	colorGreen  = "\033[0;32m"
	colorYellow = "\033[1;33m"
	colorBlue   = "\033[0;34m"
)

func logInfo(format string, args ...any) {
	fmt.Fprintf(os.Stderr, colorBlue+"[INFO]"+colorReset+" "+format+"\n", args...)
}

func logSuccess(format string, args ...any) {
	fmt.Fprintf(os.Stderr, colorGreen+"[OK]"+colorReset+" "+format+"\n", args...)
}

func logWarning(format string, args ...any) {
	fmt.Fprintf(os.Stderr, colorYellow+"[WARN]"+colorReset+" "+format+"\n", args...)
}

func logError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, colorRed+"[ERROR]"+colorReset+" "+format+"\n", args...)
}

// ---------------------------------------------------------------------------
// Global flag and process-exit capability
// ---------------------------------------------------------------------------

var rootDir string

// exitFunc is the single place the process terminates. Command runs
// call it; everything below the command layer returns values.
var exitFunc = os.Exit

// ---------------------------------------------------------------------------
// Root command
// ---------------------------------------------------------------------------

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "keycheck",
		Short: "Static checker for translation keys",
		Long: `keycheck — static checker for translation keys.

Scans source code for translation calls (i18n.Translate(t, "ui.save")
and friends), loads the project's locale files with format
auto-detection (flat JSON, nested JSON, PO, YAML), and cross-checks
the two.

Commands:
  scan      Report keys used in source but missing from locale files
  unused    Report keys declared in locale files but never used
  locales   Show loaded locales, detected format, and key counts

Exit code 1 from 'scan' and 'unused' means findings were reported,
making both suitable as CI gates.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global persistent flag — inherited by all subcommands
	root.PersistentFlags().StringVar(&rootDir, "root", ".", "Project root directory")

	root.AddCommand(
		newScanCmd(),
		newUnusedCmd(),
		newLocalesCmd(),
		newVersionCmd(),
	)

	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logError("%v", err)
		exitFunc(1)
	}
}

// ---------------------------------------------------------------------------
// version (display version information)
// ---------------------------------------------------------------------------

func newVersionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  `Display version, commit hash, and build date.`,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("keycheck version %s\n", version)
			fmt.Printf("  commit:    %s\n", commit)
			fmt.Printf("  built:     %s\n", date)
		},
	}

	return cmd
}

// ---------------------------------------------------------------------------
// scan (used keys missing from locale files)
// ---------------------------------------------------------------------------

func newScanCmd() *cobra.Command {
	var (
		dir      string
		transDir string
	)

	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Report keys used in source but missing from locale files",
		Long: `Scan source code for translation calls and report every key that is
absent from all loaded locale files.

Each finding is printed as one line with the key and the source
location. Exit code is 1 when at least one missing key is found,
0 otherwise, so the command can gate CI pipelines.`,
		Run: func(cmd *cobra.Command, args []string) {
			runScan(dir, transDir)
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "", "Scan a specific directory instead of the configured sources")
	cmd.Flags().StringVar(&transDir, "translations", "", "Translation file directory (overrides detection)")

	return cmd
}

func runScan(dir, transDir string) {
	out, err := executeScan(rootDir, dir, transDir)
	if err != nil {
		logError("%v", err)
		exitFunc(1)
		return
	}

	logInfo("Locale format: %s (%d locale(s))", out.format, len(out.locales))
	logInfo("Declared keys: %d", out.result.Declared)
	logInfo("Used keys: %d across %d source file(s)", out.result.Used, out.files)

	if len(out.result.Missing) == 0 {
		logSuccess("All used translation keys are declared.")
		return
	}

	for _, u := range out.result.Missing {
		fmt.Printf("%s\t%s:%d\n", u.Key, relPath(rootDir, u.File), u.Line)
	}
	logError("%d untranslated key reference(s) found", len(out.result.Missing))
	exitFunc(1)
}

// ---------------------------------------------------------------------------
// unused (declared keys never referenced)
// ---------------------------------------------------------------------------

func newUnusedCmd() *cobra.Command {
	var (
		dir      string
		transDir string
	)

	cmd := &cobra.Command{
		Use:   "unused",
		Short: "Report keys declared in locale files but never used",
		Long: `Load the project's locale files and report every declared key that no
translation call in the source code references.

Exit code is 1 when at least one unused key is found, 0 otherwise.`,
		Run: func(cmd *cobra.Command, args []string) {
			runUnused(dir, transDir)
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "", "Scan a specific directory instead of the configured sources")
	cmd.Flags().StringVar(&transDir, "translations", "", "Translation file directory (overrides detection)")

	return cmd
}

func runUnused(dir, transDir string) {
	out, err := executeScan(rootDir, dir, transDir)
	if err != nil {
		logError("%v", err)
		exitFunc(1)
		return
	}

	unused := scan.Unused(out.index, out.usages)

	logInfo("Locale format: %s (%d locale(s))", out.format, len(out.locales))
	logInfo("Declared keys: %d", out.result.Declared)
	logInfo("Used keys: %d across %d source file(s)", out.result.Used, out.files)

	if len(unused) == 0 {
		logSuccess("Every declared translation key is used.")
		return
	}

	for _, key := range unused {
		fmt.Println(key)
	}
	logError("%d unused translation key(s) found", len(unused))
	exitFunc(1)
}

// ---------------------------------------------------------------------------
// locales (read-only: loaded locales + key counts)
// ---------------------------------------------------------------------------

func newLocalesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "locales",
		Short: "Show loaded locales, detected format, and key counts",
		Long: `Load the project's translation files and display which locales were
found, which format the loader detected, and how many keys each locale
declares. Does not scan source code or modify any files.`,
		Run: func(cmd *cobra.Command, args []string) {
			runLocales()
		},
	}

	return cmd
}

func runLocales() {
	proj, err := config.Detect(rootDir)
	if err != nil {
		logError("%v", err)
		exitFunc(1)
		return
	}
	if proj.TranslationsDir == "" {
		logError("no translation directory found under %s (create %s to configure one)", rootDir, config.FileName)
		exitFunc(1)
		return
	}

	res, err := loader.LoadDir(proj.TranslationsDir)
	if err != nil {
		logError("%v", err)
		exitFunc(1)
		return
	}

	fmt.Fprintf(os.Stderr, "\n%sLocales%s (%s, format: %s)\n", colorBlue, colorReset, proj.TranslationsDir, res.Format)
	fmt.Fprintln(os.Stderr, strings.Repeat("─", 60))
	fmt.Fprintf(os.Stderr, "%-10s %-24s %-8s\n", "Code", "Language", "Keys")
	fmt.Fprintln(os.Stderr, strings.Repeat("─", 44))

	for _, ls := range res.Locales {
		fmt.Fprintf(os.Stderr, "%-10s %-24s %-8d\n", ls.Locale, ls.Locale.Name(), ls.Store.Len())
	}

	idx := scan.BuildIndex(res.Locales)
	fmt.Fprintln(os.Stderr, strings.Repeat("─", 44))
	fmt.Fprintf(os.Stderr, "Distinct keys: %d\n\n", len(idx))
}

// ---------------------------------------------------------------------------
// Shared scan pipeline
// ---------------------------------------------------------------------------

// scanOutcome bundles everything the reporting commands need.
type scanOutcome struct {
	format  loader.Format
	locales []loader.LocaleStore
	index   scan.Index
	usages  []extract.Usage
	files   int
	result  scan.Result
}

// executeScan runs the full pipeline: resolve configuration, load the
// translation directory, walk the sources, and cross-check. It only
// returns values; exit codes are the callers' business.
func executeScan(root, dirOverride, transOverride string) (*scanOutcome, error) {
	proj, err := config.Detect(root)
	if err != nil {
		return nil, err
	}
	if transOverride != "" {
		proj.TranslationsDir = resolveDir(root, transOverride)
	}
	if proj.TranslationsDir == "" {
		return nil, fmt.Errorf("no translation directory found under %s (create %s to configure one)", root, config.FileName)
	}

	res, err := loader.LoadDir(proj.TranslationsDir)
	if err != nil {
		return nil, err
	}
	idx := scan.BuildIndex(res.Locales)

	srcDirs := proj.SourceDirs
	if dirOverride != "" {
		srcDirs = []string{resolveDir(root, dirOverride)}
	}

	var usages []extract.Usage
	files := 0
	for _, dir := range srcDirs {
		u, n := extract.ScanDir(dir, proj.Patterns, proj.Exclude)
		usages = append(usages, u...)
		files += n
	}

	return &scanOutcome{
		format:  res.Format,
		locales: res.Locales,
		index:   idx,
		usages:  usages,
		files:   files,
		result:  scan.Check(idx, usages),
	}, nil
}

// resolveDir interprets an override path relative to the project root;
// absolute overrides are taken as given. Both the --dir and
// --translations flags resolve this way.
func resolveDir(root, dir string) string {
	if filepath.IsAbs(dir) {
		return dir
	}
	return filepath.Join(root, dir)
}

// relPath renders path relative to root for report output.
func relPath(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return path
	}
	return rel
}
