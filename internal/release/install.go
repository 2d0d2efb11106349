package release

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
)

// InstallBinary places src into dir under name, replacing any existing
// binary atomically. The staging copy lives in the destination directory so
// the final rename never crosses filesystems.
func InstallBinary(src, dir, name string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("prepare install dir: %w", err)
	}

	staged, err := stageCopy(src, dir)
	if err != nil {
		return "", err
	}
	defer func() { _ = os.Remove(staged) }()

	if err := os.Chmod(staged, 0o755); err != nil {
		return "", fmt.Errorf("chmod %s: %w", staged, err)
	}

	target := filepath.Join(dir, name)
	if err := os.Rename(staged, target); err != nil {
		return "", fmt.Errorf("install %s: %w", target, err)
	}

	clearQuarantine(target)
	return target, nil
}

func stageCopy(src, dir string) (string, error) {
	source, err := os.Open(src)
	if err != nil {
		return "", fmt.Errorf("open binary: %w", err)
	}
	defer source.Close()

	staged, err := os.CreateTemp(dir, ".cc-switch-stage-")
	if err != nil {
		return "", fmt.Errorf("stage binary: %w", err)
	}
	if _, err := io.Copy(staged, source); err != nil {
		staged.Close()
		_ = os.Remove(staged.Name())
		return "", fmt.Errorf("copy binary: %w", err)
	}
	if err := staged.Close(); err != nil {
		_ = os.Remove(staged.Name())
		return "", fmt.Errorf("close staged binary: %w", err)
	}
	return staged.Name(), nil
}

// clearQuarantine strips the macOS downloaded-file marker so Gatekeeper does
// not block the first run. Best effort: a missing attribute or missing xattr
// tool is not an error.
func clearQuarantine(path string) {
	if runtime.GOOS != "darwin" {
		return
	}
	xattr, err := exec.LookPath("xattr")
	if err != nil {
		return
	}
	_ = exec.Command(xattr, "-d", "com.apple.quarantine", path).Run()
}
