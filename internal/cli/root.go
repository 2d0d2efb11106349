package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	repoDir    string
	outputJSON bool
)

// Execute runs the root cobra command and exits nonzero on failure.
func Execute(ctx context.Context) {
	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ccdist",
		Short: "cc-switch release install and docs version sync",
	}

	cmd.PersistentFlags().StringVar(&repoDir, "repo", "", "Path to the cc-switch checkout")
	cmd.PersistentFlags().BoolVar(&outputJSON, "json", false, "Output machine-readable JSON")

	cmd.AddCommand(newInstallCmd())
	cmd.AddCommand(newSyncDocsCmd())
	cmd.AddCommand(newCheckCmd())

	return cmd
}
