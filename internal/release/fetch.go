package release

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

const userAgent = "ccdist/1.0"

// Fetcher downloads a URL to a local file. Implementations wrap one external
// transfer capability; Resolve picks the first available one so the installer
// works on hosts where only curl (or only outbound Go HTTP) is usable.
type Fetcher interface {
	Name() string
	Available() bool
	Fetch(ctx context.Context, url, dest string, progress ProgressFunc) error
}

// ProgressFunc receives byte counts while a download runs. total is -1 when
// the server did not report a length. May be nil.
type ProgressFunc func(written, total int64)

// ResolveFetcher walks the priority-ordered fetcher list and returns the
// first available implementation. prefer, when non-empty, pins a specific
// fetcher by name. Resolution happens once per run.
func ResolveFetcher(prefer string) (Fetcher, error) {
	candidates := []Fetcher{
		httpFetcher{client: &http.Client{Timeout: 10 * time.Minute}},
		curlFetcher{},
	}
	for _, f := range candidates {
		if prefer != "" && f.Name() != prefer {
			continue
		}
		if f.Available() {
			return f, nil
		}
	}
	if prefer != "" {
		return nil, fmt.Errorf("%w: fetcher %q not available", ErrMissingDependency, prefer)
	}
	return nil, fmt.Errorf("%w: no download capability (need Go HTTP or curl)", ErrMissingDependency)
}

// httpFetcher downloads with net/http, writing through a temp file so a
// partial transfer never lands at dest.
type httpFetcher struct {
	client *http.Client
}

func (httpFetcher) Name() string { return "http" }

func (httpFetcher) Available() bool { return true }

func (f httpFetcher) Fetch(ctx context.Context, url, dest string, progress ProgressFunc) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: download %s: %v", ErrNetworkFailure, url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%w: download %s: unexpected status %s", ErrNetworkFailure, url, resp.Status)
	}

	tmpFile, err := os.CreateTemp(filepath.Dir(dest), "download-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer func() { _ = os.Remove(tmpPath) }()

	writer := io.Writer(tmpFile)
	if progress != nil {
		writer = &countingWriter{w: tmpFile, total: resp.ContentLength, fn: progress}
	}
	if _, err := io.Copy(writer, resp.Body); err != nil {
		tmpFile.Close()
		return fmt.Errorf("%w: write %s: %v", ErrNetworkFailure, dest, err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}

	if err := os.Rename(tmpPath, dest); err != nil {
		return fmt.Errorf("finalize download: %w", err)
	}
	return nil
}

type countingWriter struct {
	w       io.Writer
	written int64
	total   int64
	fn      ProgressFunc
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.written += int64(n)
	c.fn(c.written, c.total)
	return n, err
}

// curlFetcher shells out to curl. Kept as the fallback capability for hosts
// where direct outbound HTTP from the process is blocked but curl is
// configured with the right proxies.
type curlFetcher struct{}

func (curlFetcher) Name() string { return "curl" }

func (curlFetcher) Available() bool {
	_, err := exec.LookPath("curl")
	return err == nil
}

func (curlFetcher) Fetch(ctx context.Context, url, dest string, progress ProgressFunc) error {
	cmd := exec.CommandContext(ctx, "curl", "-fsSL", "--output", dest, url)
	if output, err := cmd.CombinedOutput(); err != nil {
		_ = os.Remove(dest)
		msg := strings.TrimSpace(string(output))
		if msg == "" {
			msg = err.Error()
		}
		return fmt.Errorf("%w: curl %s: %s", ErrNetworkFailure, url, msg)
	}
	if progress != nil {
		if info, err := os.Stat(dest); err == nil {
			progress(info.Size(), info.Size())
		}
	}
	return nil
}
