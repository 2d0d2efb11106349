package docsync

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunUpToDateWritesNothing(t *testing.T) {
	dir := t.TempDir()
	content := strings.ReplaceAll(sampleReadme, "4.1.0", "4.2.0")
	readme := filepath.Join(dir, "README.md")
	readmeZh := filepath.Join(dir, "README.zh-CN.md")
	for _, path := range []string{readme, readmeZh} {
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("write %s: %v", path, err)
		}
	}

	summary, err := Run(Options{
		Version: "4.2.0",
		Files:   []string{readme, readmeZh},
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !summary.UpToDate {
		t.Fatal("expected up-to-date summary")
	}
	for _, path := range []string{readme, readmeZh} {
		if _, err := os.Stat(path + ".bak"); !os.IsNotExist(err) {
			t.Fatalf("up-to-date run left a backup for %s", path)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("read %s: %v", path, err)
		}
		if string(data) != content {
			t.Fatalf("up-to-date run modified %s", path)
		}
	}
}

func TestRunManifestEndToEnd(t *testing.T) {
	dir := t.TempDir()

	manifest := filepath.Join(dir, "Cargo.toml")
	if err := os.WriteFile(manifest, []byte("[package]\nname = \"cc-switch\"\nversion = \"5.0.1\"\n"), 0o644); err != nil {
		t.Fatalf("write manifest: %v", err)
	}

	content := strings.ReplaceAll(sampleReadme, "4.1.0", "5.0.0")
	readme := filepath.Join(dir, "README.md")
	readmeZh := filepath.Join(dir, "README.zh-CN.md")
	for _, path := range []string{readme, readmeZh} {
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("write %s: %v", path, err)
		}
	}

	summary, err := Run(Options{
		ManifestPath: manifest,
		Files:        []string{readme, readmeZh},
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if summary.Version != "5.0.1" {
		t.Fatalf("resolved version = %s, want 5.0.1", summary.Version)
	}
	if summary.UpToDate {
		t.Fatal("expected a rewrite, got up-to-date")
	}
	if len(summary.Files) != 2 {
		t.Fatalf("expected 2 file results, got %d", len(summary.Files))
	}

	for _, result := range summary.Files {
		if result.Outcome != OutcomeUpdated {
			t.Fatalf("%s outcome = %s, want updated", result.Path, result.Outcome)
		}
		if result.CurrentVersion != "5.0.0" {
			t.Fatalf("%s current version = %s, want 5.0.0", result.Path, result.CurrentVersion)
		}
		if result.ChangedLines == 0 {
			t.Fatalf("%s reported zero changed lines", result.Path)
		}
		if _, err := os.Stat(result.BackupPath); err != nil {
			t.Fatalf("backup missing for %s: %v", result.Path, err)
		}
		data, err := os.ReadFile(result.Path)
		if err != nil {
			t.Fatalf("read %s: %v", result.Path, err)
		}
		if !strings.Contains(string(data), "badge/version-5.0.1-blue") {
			t.Fatalf("%s badge not updated", result.Path)
		}
	}
}

func TestRunMissingReadmeFatal(t *testing.T) {
	if _, err := Run(Options{
		Version: "4.2.0",
		Files:   []string{filepath.Join(t.TempDir(), "README.md")},
	}); err == nil {
		t.Fatal("expected error for missing documentation file")
	}
}

func TestRunMixedCurrentVersionsRewritesBoth(t *testing.T) {
	dir := t.TempDir()
	readme := filepath.Join(dir, "README.md")
	readmeZh := filepath.Join(dir, "README.zh-CN.md")
	if err := os.WriteFile(readme, []byte(strings.ReplaceAll(sampleReadme, "4.1.0", "4.2.0")), 0o644); err != nil {
		t.Fatalf("write readme: %v", err)
	}
	if err := os.WriteFile(readmeZh, []byte(sampleReadme), 0o644); err != nil {
		t.Fatalf("write zh readme: %v", err)
	}

	summary, err := Run(Options{
		Version: "4.2.0",
		Files:   []string{readme, readmeZh},
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if summary.UpToDate {
		t.Fatal("one stale file must force a rewrite pass")
	}
	if summary.Files[0].Outcome != OutcomeNoChange {
		t.Fatalf("current file outcome = %s, want no-change", summary.Files[0].Outcome)
	}
	if summary.Files[1].Outcome != OutcomeUpdated {
		t.Fatalf("stale file outcome = %s, want updated", summary.Files[1].Outcome)
	}
}
