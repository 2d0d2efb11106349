package release

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// PathConfigured reports whether dir appears in pathEnv as an exact
// colon-delimited segment. Segments are cleaned before comparison so
// /opt/install/bin never matches inside /opt/xinstall/bin.
func PathConfigured(pathEnv, dir string) bool {
	want := filepath.Clean(dir)
	for _, seg := range filepath.SplitList(pathEnv) {
		if seg == "" {
			continue
		}
		if filepath.Clean(seg) == want {
			return true
		}
	}
	return false
}

// ShellHint captures the advisory PATH guidance for one login shell.
type ShellHint struct {
	Shell       string
	ProfileFile string
	AppendLine  string
}

// HintForShell chooses the profile convention for the shell named by the
// SHELL environment variable. The guidance is printed, never applied.
func HintForShell(shellPath, dir string) ShellHint {
	shell := filepath.Base(shellPath)
	switch shell {
	case "zsh":
		return ShellHint{
			Shell:       "zsh",
			ProfileFile: "~/.zshrc",
			AppendLine:  fmt.Sprintf(`echo 'export PATH="%s:$PATH"' >> ~/.zshrc`, dir),
		}
	case "fish":
		return ShellHint{
			Shell:       "fish",
			ProfileFile: "~/.config/fish/config.fish",
			AppendLine:  fmt.Sprintf("fish_add_path %s", dir),
		}
	case "bash":
		return ShellHint{
			Shell:       "bash",
			ProfileFile: "~/.bashrc",
			AppendLine:  fmt.Sprintf(`echo 'export PATH="%s:$PATH"' >> ~/.bashrc`, dir),
		}
	default:
		return ShellHint{
			Shell:       shell,
			ProfileFile: "~/.profile",
			AppendLine:  fmt.Sprintf(`echo 'export PATH="%s:$PATH"' >> ~/.profile`, dir),
		}
	}
}

// HostShell returns the login shell path from the environment, defaulting to
// sh when SHELL is unset.
func HostShell() string {
	if shell := strings.TrimSpace(os.Getenv("SHELL")); shell != "" {
		return shell
	}
	return "sh"
}
