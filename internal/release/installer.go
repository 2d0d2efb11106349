package release

import (
	"context"
	"fmt"
	"os"
)

// Options configures a single install run.
type Options struct {
	// InstallDir is the destination directory for the binary.
	InstallDir string
	// Host overrides the releases host; empty means DefaultHost.
	Host string
	// Fetcher pins a fetch capability by name; empty means priority order.
	Fetcher string
	// Progress receives download byte counts. May be nil.
	Progress ProgressFunc
	// Logf receives step-by-step trace lines. May be nil.
	Logf func(format string, v ...any)
}

// Result describes a completed install.
type Result struct {
	Asset          Asset      `json:"asset"`
	URL            string     `json:"url"`
	Fetcher        string     `json:"fetcher"`
	BinaryPath     string     `json:"binary_path"`
	PathConfigured bool       `json:"path_configured"`
	ShellHint      *ShellHint `json:"shell_hint,omitempty"`
}

// Install runs the full pipeline: resolve the platform asset, download it
// into a scoped temporary workspace, extract, verify the binary, and place
// it into the install directory. The workspace is removed on every exit
// path; cancellation of ctx aborts the in-flight download.
func Install(ctx context.Context, opts Options) (Result, error) {
	logf := opts.Logf
	if logf == nil {
		logf = func(string, ...any) {}
	}

	asset, err := HostAsset()
	if err != nil {
		return Result{}, err
	}
	url := asset.DownloadURL(opts.Host)
	logf("resolved asset %s", asset.Name)

	fetcher, err := ResolveFetcher(opts.Fetcher)
	if err != nil {
		return Result{}, err
	}
	logf("using fetcher %s", fetcher.Name())

	ws, err := NewWorkspace()
	if err != nil {
		return Result{}, err
	}
	defer ws.Close()

	archivePath := ws.Path(asset.Name)
	if err := fetcher.Fetch(ctx, url, archivePath, opts.Progress); err != nil {
		return Result{}, err
	}
	logf("downloaded %s", url)

	extractDir := ws.Path("extract")
	if err := os.MkdirAll(extractDir, 0o755); err != nil {
		return Result{}, fmt.Errorf("prepare extract dir: %w", err)
	}
	if err := ExtractTarGz(archivePath, extractDir); err != nil {
		return Result{}, err
	}

	binary, err := FindBinary(extractDir, asset.Binary)
	if err != nil {
		return Result{}, err
	}
	logf("extracted %s", binary)

	target, err := InstallBinary(binary, opts.InstallDir, asset.Binary)
	if err != nil {
		return Result{}, err
	}
	logf("installed %s", target)

	result := Result{
		Asset:          asset,
		URL:            url,
		Fetcher:        fetcher.Name(),
		BinaryPath:     target,
		PathConfigured: PathConfigured(os.Getenv("PATH"), opts.InstallDir),
	}
	if !result.PathConfigured {
		hint := HintForShell(HostShell(), opts.InstallDir)
		result.ShellHint = &hint
	}
	return result, nil
}
