package docsync

import (
	"fmt"
	"os"
)

// Options configures a docs sync run.
type Options struct {
	// Version is the explicit target version; empty means read the manifest.
	Version string
	// ManifestPath is the Cargo manifest holding the authoritative version.
	ManifestPath string
	// Files are the documentation files to rewrite.
	Files []string
	// Rules override DefaultRules; nil means the default set.
	Rules []Rule
	// Logf receives trace lines. May be nil.
	Logf func(format string, v ...any)
}

// Summary reports a completed run across all files.
type Summary struct {
	Version  string       `json:"version"`
	UpToDate bool         `json:"up_to_date"`
	Files    []FileResult `json:"files"`
}

// Run resolves the target version, checks idempotence, and rewrites each
// documentation file in turn. When every file already shows the target
// version nothing is written at all.
func Run(opts Options) (Summary, error) {
	logf := opts.Logf
	if logf == nil {
		logf = func(string, ...any) {}
	}
	rules := opts.Rules
	if rules == nil {
		rules = DefaultRules()
	}

	version, err := ResolveVersion(opts.Version, opts.ManifestPath)
	if err != nil {
		return Summary{}, err
	}
	logf("target version %s", version)

	summary := Summary{Version: version}

	contents := make([]string, len(opts.Files))
	allCurrent := len(opts.Files) > 0
	for i, file := range opts.Files {
		data, err := os.ReadFile(file)
		if err != nil {
			return Summary{}, fmt.Errorf("read %s: %w", file, err)
		}
		contents[i] = string(data)
		if CurrentVersion(contents[i]) != version {
			allCurrent = false
		}
	}

	if allCurrent {
		logf("all files already at %s", version)
		summary.UpToDate = true
		for i, file := range opts.Files {
			summary.Files = append(summary.Files, FileResult{
				Path:           file,
				CurrentVersion: CurrentVersion(contents[i]),
				Outcome:        OutcomeNoChange,
			})
		}
		return summary, nil
	}

	for _, file := range opts.Files {
		result, err := RewriteFile(file, rules, version)
		if err != nil {
			return Summary{}, err
		}
		logf("%s: %s (%d lines)", file, result.Outcome, result.ChangedLines)
		summary.Files = append(summary.Files, result)
	}
	return summary, nil
}
