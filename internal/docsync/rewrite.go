package docsync

import (
	"bytes"
	"fmt"
	"os"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// FileOutcome classifies what happened to a single documentation file.
type FileOutcome string

const (
	OutcomeUpdated  FileOutcome = "updated"
	OutcomeNoChange FileOutcome = "no-change"
)

// FileResult reports one file's rewrite pass.
type FileResult struct {
	Path           string      `json:"path"`
	CurrentVersion string      `json:"current_version"`
	Outcome        FileOutcome `json:"outcome"`
	BackupPath     string      `json:"backup_path,omitempty"`
	ChangedLines   int         `json:"changed_lines"`
}

// CurrentVersion extracts the version embedded in the first badge marker
// line of the file. "unknown" means the badge is absent; that is reported,
// not fatal, since translated READMEs occasionally drop the badge.
func CurrentVersion(content string) string {
	if m := badgeVersionPattern.FindStringSubmatch(content); m != nil {
		return m[1]
	}
	return "unknown"
}

// RewriteFile applies the rules to one file. A backup copy is written first
// and kept only when the rewrite changed something; a stale backup from a
// previous run is overwritten. The returned ChangedLines counts inserted
// plus deleted lines in a line-level diff of old versus new content.
func RewriteFile(path string, rules []Rule, version string) (FileResult, error) {
	original, err := os.ReadFile(path)
	if err != nil {
		return FileResult{}, fmt.Errorf("read %s: %w", path, err)
	}

	result := FileResult{
		Path:           path,
		CurrentVersion: CurrentVersion(string(original)),
	}

	rewritten := []byte(Apply(rules, string(original), version))
	if bytes.Equal(original, rewritten) {
		result.Outcome = OutcomeNoChange
		return result, nil
	}

	info, err := os.Stat(path)
	if err != nil {
		return FileResult{}, fmt.Errorf("stat %s: %w", path, err)
	}
	mode := info.Mode().Perm()

	backup := path + ".bak"
	if err := os.WriteFile(backup, original, mode); err != nil {
		return FileResult{}, fmt.Errorf("write backup %s: %w", backup, err)
	}
	if err := os.WriteFile(path, rewritten, mode); err != nil {
		return FileResult{}, fmt.Errorf("write %s: %w", path, err)
	}

	result.Outcome = OutcomeUpdated
	result.BackupPath = backup
	result.ChangedLines = changedLines(string(original), string(rewritten))
	return result, nil
}

// changedLines runs a line-level diff and counts lines that differ.
func changedLines(before, after string) int {
	dmp := diffmatchpatch.New()
	beforeChars, afterChars, lines := dmp.DiffLinesToChars(before, after)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(beforeChars, afterChars, false), lines)

	count := 0
	for _, d := range diffs {
		if d.Type == diffmatchpatch.DiffEqual {
			continue
		}
		count += countLines(d.Text)
	}
	return count
}

func countLines(text string) int {
	if text == "" {
		return 0
	}
	n := 0
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			n++
		}
	}
	if text[len(text)-1] != '\n' {
		n++
	}
	return n
}
