package tui

import (
	"io"
	"os"
	"runtime"
	"strings"
)

// OutputMode selects how a command renders progress and results.
type OutputMode int

const (
	// ModeTUI drives a live bubbletea view.
	ModeTUI OutputMode = iota
	// ModePlain prints static lines, suitable for pipes and CI logs.
	ModePlain
	// ModeJSON emits a single machine-readable document.
	ModeJSON
)

// DetectMode picks the output mode for out. JSON wins over everything,
// --no-progress forces plain, and the live view runs only when out is a
// character device with a capable TERM.
func DetectMode(out io.Writer, noProgress, jsonOutput bool) OutputMode {
	if jsonOutput {
		return ModeJSON
	}
	if noProgress || !isTerminal(out) {
		return ModePlain
	}
	if runtime.GOOS != "windows" {
		term := os.Getenv("TERM")
		if term == "" || strings.EqualFold(term, "dumb") {
			return ModePlain
		}
	}
	return ModeTUI
}

func isTerminal(out io.Writer) bool {
	file, ok := out.(*os.File)
	if !ok {
		return false
	}
	info, err := file.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}
