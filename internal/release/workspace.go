package release

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Workspace is a uniquely-named temporary directory that is guaranteed to be
// removed when the run ends. Close is idempotent and safe to call from both
// a defer and a signal handler.
type Workspace struct {
	dir  string
	once sync.Once
}

// NewWorkspace creates the temporary directory.
func NewWorkspace() (*Workspace, error) {
	dir, err := os.MkdirTemp("", "cc-switch-install-")
	if err != nil {
		return nil, fmt.Errorf("create temp workspace: %w", err)
	}
	return &Workspace{dir: dir}, nil
}

// Dir returns the workspace root.
func (w *Workspace) Dir() string { return w.dir }

// Path joins elem onto the workspace root.
func (w *Workspace) Path(elem ...string) string {
	return filepath.Join(append([]string{w.dir}, elem...)...)
}

// Close removes the workspace and everything in it.
func (w *Workspace) Close() error {
	var err error
	w.once.Do(func() {
		err = os.RemoveAll(w.dir)
	})
	return err
}
