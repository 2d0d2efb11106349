package logx

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"ccdist/internal/paths"
)

// NewGlobal opens a per-run log file under ~/.cc-switch/logs and returns a
// logger writing to it. The file is named <command>-<timestamp>.log so runs
// never clobber each other; callers close the returned closer when done.
func NewGlobal(command string) (*log.Logger, io.Closer, error) {
	dir, err := paths.GlobalLogsDir()
	if err != nil {
		return nil, nil, err
	}

	name := fmt.Sprintf("%s-%s.log", command, time.Now().Format("20060102-150405"))
	file, err := os.OpenFile(filepath.Join(dir, name), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	return log.New(file, "", log.LstdFlags|log.Lmicroseconds), file, nil
}
