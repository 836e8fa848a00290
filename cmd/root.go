// Package cmd contains the CLI commands for the gh-emoji application.
package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/eykd/gh-emoji/internal/logx"
)

// Version is reported by --version.
const Version = "v1.0.0"

var rootCmd *cobra.Command

// verbose holds the global --verbose flag state.
var verbose bool

func init() {
	rootCmd = BuildCommandTree(DefaultWire)
}

// NewRootCmd creates a new root command instance without subcommands.
// This is useful for testing to get a fresh command tree.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "gh-emoji",
		Short:         "List and pick GitHub emoji shortcodes",
		Long:          "gh-emoji lists GitHub emoji shortcodes from a local cache and picks one interactively with a fuzzy selector.",
		Version:       Version,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			cmd.SetContext(logx.WithLogger(ctx, logx.New(cmd.ErrOrStderr(), verbose)))
		},
	}

	// Add persistent flags (available to all subcommands)
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging to stderr")

	return cmd
}

// ExecuteContext runs the root command with the given context.
// This enables graceful shutdown via context cancellation (e.g., on SIGINT).
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}
