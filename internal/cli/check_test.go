package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestCheckCommandJSON(t *testing.T) {
	prevRepo, prevJSON := repoDir, outputJSON
	t.Cleanup(func() { repoDir, outputJSON = prevRepo, prevJSON })

	t.Setenv("HOME", t.TempDir())
	t.Setenv("CC_SWITCH_INSTALL_DIR", "")
	repoDir = t.TempDir()
	outputJSON = true

	if err := os.MkdirAll(filepath.Join(repoDir, "src-tauri"), 0o755); err != nil {
		t.Fatalf("mkdir src-tauri: %v", err)
	}
	manifest := "[package]\nname = \"cc-switch\"\nversion = \"4.2.0\"\n"
	if err := os.WriteFile(filepath.Join(repoDir, "src-tauri", "Cargo.toml"), []byte(manifest), 0o644); err != nil {
		t.Fatalf("write manifest: %v", err)
	}

	cmd := newCheckCmd()
	stdout := &bytes.Buffer{}
	cmd.SetOut(stdout)
	cmd.SetErr(&bytes.Buffer{})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("check: %v", err)
	}

	var checks []envCheck
	if err := json.Unmarshal(stdout.Bytes(), &checks); err != nil {
		t.Fatalf("decode json: %v\n%s", err, stdout.String())
	}

	byName := map[string]envCheck{}
	for _, c := range checks {
		byName[c.Name] = c
	}
	if _, ok := byName["Platform"]; !ok {
		t.Fatal("missing Platform check")
	}
	if c := byName["Fetcher"]; c.Status != "ok" {
		t.Fatalf("Fetcher check = %+v, want ok", c)
	}
	if c := byName["Manifest"]; c.Status != "ok" || c.Summary != "version 4.2.0" {
		t.Fatalf("Manifest check = %+v", c)
	}
}

func TestCheckCommandMissingManifestWarns(t *testing.T) {
	prevRepo, prevJSON := repoDir, outputJSON
	t.Cleanup(func() { repoDir, outputJSON = prevRepo, prevJSON })

	t.Setenv("HOME", t.TempDir())
	repoDir = t.TempDir()
	outputJSON = true

	cmd := newCheckCmd()
	stdout := &bytes.Buffer{}
	cmd.SetOut(stdout)
	cmd.SetErr(&bytes.Buffer{})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("check: %v", err)
	}

	var checks []envCheck
	if err := json.Unmarshal(stdout.Bytes(), &checks); err != nil {
		t.Fatalf("decode json: %v", err)
	}
	for _, c := range checks {
		if c.Name == "Manifest" && c.Status != "warning" {
			t.Fatalf("Manifest check = %+v, want warning", c)
		}
	}
}
