package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"ccdist/internal/config"
	"ccdist/internal/docsync"
	"ccdist/internal/paths"
	"ccdist/internal/release"
	"ccdist/internal/tui"
)

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Check platform support, fetch capability and PATH setup",
		RunE:  runCheck,
	}
}

type envCheck struct {
	Name    string `json:"name"`
	Status  string `json:"status"` // "ok", "warning", "error"
	Summary string `json:"summary"`
}

func runCheck(cmd *cobra.Command, _ []string) error {
	rp, err := paths.Resolve(repoDir)
	if err != nil {
		return err
	}
	cfg, err := config.Load(rp.ConfigFile)
	if err != nil {
		return err
	}

	var checks []envCheck

	// Platform / asset resolution.
	asset, assetErr := release.HostAsset()
	switch {
	case errors.Is(assetErr, release.ErrUnsupportedPlatform):
		checks = append(checks, envCheck{Name: "Platform", Status: "error",
			Summary: assetErr.Error() + "; download manually from " + release.ReleasesPage})
	case assetErr != nil:
		checks = append(checks, envCheck{Name: "Platform", Status: "error", Summary: assetErr.Error()})
	default:
		checks = append(checks, envCheck{Name: "Platform", Status: "ok", Summary: asset.Name})
	}

	// Fetch capability.
	fetcher, fetchErr := release.ResolveFetcher(cfg.Install.Fetcher)
	if fetchErr != nil {
		checks = append(checks, envCheck{Name: "Fetcher", Status: "error", Summary: fetchErr.Error()})
	} else {
		checks = append(checks, envCheck{Name: "Fetcher", Status: "ok", Summary: fetcher.Name()})
	}

	// Install dir + PATH.
	installDir, dirErr := paths.InstallDir(cfg.Install.Dir)
	if dirErr != nil {
		checks = append(checks, envCheck{Name: "InstallDir", Status: "error", Summary: dirErr.Error()})
	} else if release.PathConfigured(os.Getenv("PATH"), installDir) {
		checks = append(checks, envCheck{Name: "InstallDir", Status: "ok", Summary: installDir + " (on PATH)"})
	} else {
		hint := release.HintForShell(release.HostShell(), installDir)
		checks = append(checks, envCheck{Name: "InstallDir", Status: "warning",
			Summary: fmt.Sprintf("%s not on PATH; append via %s", installDir, hint.ProfileFile)})
	}

	// Docs sync inputs, when run inside a checkout.
	rp = paths.ApplyOverrides(rp, cfg.Docs.Manifest, cfg.Docs.Readmes)
	if exists, _ := paths.FileExists(rp.Manifest); exists {
		if version, verr := docsync.ManifestVersion(rp.Manifest); verr != nil {
			checks = append(checks, envCheck{Name: "Manifest", Status: "error", Summary: verr.Error()})
		} else {
			checks = append(checks, envCheck{Name: "Manifest", Status: "ok", Summary: "version " + version})
		}
	} else {
		checks = append(checks, envCheck{Name: "Manifest", Status: "warning",
			Summary: rp.Manifest + " not found (not a cc-switch checkout?)"})
	}

	return writeCheckResult(cmd, checks)
}

func writeCheckResult(cmd *cobra.Command, checks []envCheck) error {
	out := cmd.OutOrStdout()

	if outputJSON {
		data, err := json.MarshalIndent(checks, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(out, string(data))
		return nil
	}

	fmt.Fprintln(out, tui.BoldStyle.Render("ENVIRONMENT:"))
	for _, c := range checks {
		var statusStr string
		switch c.Status {
		case "ok":
			statusStr = tui.InfoStyle.Render("OK")
		case "warning":
			statusStr = tui.WarnStyle.Render("WARN")
		case "error":
			statusStr = tui.ErrorStyle.Render("ERROR")
		}
		fmt.Fprintf(out, "  %-12s %s    %s\n", c.Name+":", statusStr, c.Summary)
	}
	return nil
}
