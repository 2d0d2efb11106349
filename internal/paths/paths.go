package paths

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// InstallDirEnv overrides the binary install directory when set.
const InstallDirEnv = "CC_SWITCH_INSTALL_DIR"

// RepoPaths captures canonical file locations inside a cc-switch checkout
// for the docs sync command.
type RepoPaths struct {
	Root       string
	ConfigFile string
	Manifest   string
	Readmes    []string
}

// Resolve determines the checkout root from the optional --repo flag or the
// current working directory when the flag is empty.
func Resolve(repoFlag string) (RepoPaths, error) {
	var (
		root string
		err  error
	)

	if repoFlag != "" {
		root, err = filepath.Abs(repoFlag)
	} else {
		root, err = os.Getwd()
	}
	if err != nil {
		return RepoPaths{}, fmt.Errorf("resolve repo root: %w", err)
	}

	return newRepoPaths(root), nil
}

func newRepoPaths(root string) RepoPaths {
	return RepoPaths{
		Root:       root,
		ConfigFile: filepath.Join(root, "ccdist.yaml"),
		Manifest:   filepath.Join(root, "src-tauri", "Cargo.toml"),
		Readmes: []string{
			filepath.Join(root, "README.md"),
			filepath.Join(root, "README.zh-CN.md"),
		},
	}
}

// ApplyOverrides replaces manifest and README locations with values from
// config or flags. Relative values resolve against the repo root.
func ApplyOverrides(rp RepoPaths, manifest string, readmes []string) RepoPaths {
	if m := strings.TrimSpace(manifest); m != "" {
		rp.Manifest = resolveRepoPath(rp.Root, m)
	}
	if len(readmes) > 0 {
		resolved := make([]string, 0, len(readmes))
		for _, r := range readmes {
			if r = strings.TrimSpace(r); r != "" {
				resolved = append(resolved, resolveRepoPath(rp.Root, r))
			}
		}
		if len(resolved) > 0 {
			rp.Readmes = resolved
		}
	}
	return rp
}

func resolveRepoPath(root, value string) string {
	if filepath.IsAbs(value) {
		return filepath.Clean(value)
	}
	return filepath.Join(root, value)
}

// InstallDir resolves the binary install directory: the environment override
// wins, then the explicit value (flag or config), then ~/.local/bin.
func InstallDir(explicit string) (string, error) {
	if env := strings.TrimSpace(os.Getenv(InstallDirEnv)); env != "" {
		return filepath.Clean(env), nil
	}
	if explicit = strings.TrimSpace(explicit); explicit != "" {
		abs, err := filepath.Abs(explicit)
		if err != nil {
			return "", fmt.Errorf("resolve install dir: %w", err)
		}
		return abs, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("detect user home: %w", err)
	}
	return filepath.Join(home, ".local", "bin"), nil
}

// GlobalDir returns the user-level cc-switch directory (~/.cc-switch),
// creating it if absent.
func GlobalDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("detect user home: %w", err)
	}
	dir := filepath.Join(home, ".cc-switch")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create global dir: %w", err)
	}
	return dir, nil
}

// GlobalLogsDir returns ~/.cc-switch/logs, creating it if absent.
func GlobalLogsDir() (string, error) {
	global, err := GlobalDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(global, "logs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create global logs dir: %w", err)
	}
	return dir, nil
}

// FileExists reports whether a path exists and is a regular file.
func FileExists(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return info.Mode().IsRegular(), nil
}

// DirExists reports whether a path exists and is a directory.
func DirExists(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return info.IsDir(), nil
}
