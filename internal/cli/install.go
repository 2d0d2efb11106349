package cli

import (
	"context"
	"encoding/json"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"ccdist/internal/config"
	"ccdist/internal/logx"
	"ccdist/internal/paths"
	"ccdist/internal/release"
	"ccdist/internal/tui"
)

var (
	installDirFlag    string
	installNoProgress bool
)

func newInstallCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "install",
		Short: "Download and install the latest cc-switch CLI binary",
		RunE:  runInstall,
	}

	cmd.Flags().StringVar(&installDirFlag, "dir", "", "Install directory (default ~/.local/bin; "+paths.InstallDirEnv+" overrides)")
	cmd.Flags().BoolVar(&installNoProgress, "no-progress", false, "Disable interactive progress output")

	return cmd
}

func runInstall(cmd *cobra.Command, _ []string) error {
	glog, gcloser, _ := logx.NewGlobal("install")
	if gcloser != nil {
		defer gcloser.Close()
	}
	glogf := func(format string, v ...any) {
		if glog != nil {
			glog.Printf(format, v...)
		}
	}
	glogf("install started")

	rp, err := paths.Resolve(repoDir)
	if err != nil {
		return err
	}
	cfg, err := config.Load(rp.ConfigFile)
	if err != nil {
		return err
	}

	dir := installDirFlag
	if dir == "" {
		dir = cfg.Install.Dir
	}
	installDir, err := paths.InstallDir(dir)
	if err != nil {
		return err
	}
	glogf("install dir %s", installDir)

	opts := release.Options{
		InstallDir: installDir,
		Host:       cfg.Install.Host,
		Fetcher:    cfg.Install.Fetcher,
		Logf:       glogf,
	}

	out := cmd.OutOrStdout()
	mode := tui.DetectMode(out, installNoProgress, outputJSON)

	var result release.Result
	if mode == tui.ModeTUI {
		asset, assetErr := release.HostAsset()
		if assetErr != nil {
			return installFailed(cmd, assetErr)
		}
		model := tui.NewDownloadModel(asset.Name)
		runErr := tui.RunWithWork(cmd.Context(), out, model, func(ctx context.Context, send func(tea.Msg)) {
			send(tui.StageMsg("downloading"))
			opts.Progress = func(written, total int64) {
				send(tui.ProgressMsg{Written: written, Total: total})
			}
			var installErr error
			result, installErr = release.Install(ctx, opts)
			if installErr != nil {
				send(tui.ErrorMsg{Err: installErr})
			}
		})
		if runErr != nil {
			return installFailed(cmd, runErr)
		}
	} else {
		result, err = release.Install(cmd.Context(), opts)
		if err != nil {
			return installFailed(cmd, err)
		}
	}

	glogf("installed %s", result.BinaryPath)
	return writeInstallResult(cmd, result)
}

// installFailed prints the manual-download fallback before surfacing the error.
func installFailed(cmd *cobra.Command, err error) error {
	fmt.Fprintln(cmd.ErrOrStderr(), tui.WarnStyle.Render("Manual download: ")+release.ReleasesPage)
	return err
}

func writeInstallResult(cmd *cobra.Command, result release.Result) error {
	out := cmd.OutOrStdout()

	if outputJSON {
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		fmt.Fprintln(out, string(data))
		return nil
	}

	fmt.Fprintln(out, tui.InfoStyle.Render("Installed ")+result.BinaryPath)
	fmt.Fprintln(out, tui.FaintStyle.Render(fmt.Sprintf("asset %s via %s", result.Asset.Name, result.Fetcher)))

	if result.PathConfigured {
		fmt.Fprintln(out, tui.InfoStyle.Render("PATH already includes the install directory"))
		return nil
	}

	hint := result.ShellHint
	fmt.Fprintln(out, tui.WarnStyle.Render("Install directory is not on your PATH"))
	if hint != nil {
		fmt.Fprintf(out, "Add it for %s (%s):\n", hint.Shell, hint.ProfileFile)
		fmt.Fprintf(out, "  %s\n", hint.AppendLine)
	}
	return nil
}
