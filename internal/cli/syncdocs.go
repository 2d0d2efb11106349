package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"ccdist/internal/config"
	"ccdist/internal/docsync"
	"ccdist/internal/logx"
	"ccdist/internal/paths"
	"ccdist/internal/tui"
)

var (
	syncManifestFlag string
	syncReadmeFlags  []string
)

func newSyncDocsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sync-docs [version]",
		Short: "Rewrite README version strings to match the release version",
		Long: `Rewrite every version-bearing token (badge, download URLs, artifact
filenames) in the README pair to the target version. The version comes from
the argument when given, otherwise from the Cargo manifest.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runSyncDocs,
	}

	cmd.Flags().StringVar(&syncManifestFlag, "manifest", "", "Path to the Cargo manifest (default src-tauri/Cargo.toml)")
	cmd.Flags().StringSliceVar(&syncReadmeFlags, "readme", nil, "Documentation file to rewrite (repeat flag; defaults to README.md and README.zh-CN.md)")

	return cmd
}

func runSyncDocs(cmd *cobra.Command, args []string) error {
	glog, gcloser, _ := logx.NewGlobal("sync-docs")
	if gcloser != nil {
		defer gcloser.Close()
	}
	glogf := func(format string, v ...any) {
		if glog != nil {
			glog.Printf(format, v...)
		}
	}

	rp, err := paths.Resolve(repoDir)
	if err != nil {
		return err
	}
	cfg, err := config.Load(rp.ConfigFile)
	if err != nil {
		return err
	}

	manifest := syncManifestFlag
	if manifest == "" {
		manifest = cfg.Docs.Manifest
	}
	readmes := syncReadmeFlags
	if len(readmes) == 0 {
		readmes = cfg.Docs.Readmes
	}
	rp = paths.ApplyOverrides(rp, manifest, readmes)

	version := ""
	if len(args) == 1 {
		version = args[0]
	}

	summary, err := docsync.Run(docsync.Options{
		Version:      version,
		ManifestPath: rp.Manifest,
		Files:        rp.Readmes,
		Logf:         glogf,
	})
	if err != nil {
		return err
	}

	return writeSyncSummary(cmd, summary)
}

func writeSyncSummary(cmd *cobra.Command, summary docsync.Summary) error {
	out := cmd.OutOrStdout()

	if outputJSON {
		data, err := json.MarshalIndent(summary, "", "  ")
		if err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		fmt.Fprintln(out, string(data))
		return nil
	}

	if summary.UpToDate {
		fmt.Fprintf(out, "%s all files already at %s\n", tui.InfoStyle.Render("up-to-date:"), summary.Version)
		return nil
	}

	fmt.Fprintln(out, tui.BoldStyle.Render("DOCS SYNC: ")+summary.Version)
	var updated []docsync.FileResult
	for _, result := range summary.Files {
		switch result.Outcome {
		case docsync.OutcomeUpdated:
			fmt.Fprintf(out, "  %-22s %s    %d lines changed (was %s)\n",
				result.Path+":", tui.InfoStyle.Render("UPDATED"), result.ChangedLines, result.CurrentVersion)
			updated = append(updated, result)
		case docsync.OutcomeNoChange:
			fmt.Fprintf(out, "  %-22s %s  no changes needed (was %s)\n",
				result.Path+":", tui.WarnStyle.Render("NO-OP"), result.CurrentVersion)
		}
	}

	if len(updated) > 0 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Next steps:")
		for _, result := range updated {
			fmt.Fprintf(out, "  review: diff %s %s\n", result.BackupPath, result.Path)
		}
		fmt.Fprintln(out, "  commit the README updates, or restore from the .bak files to undo")
	}
	return nil
}
