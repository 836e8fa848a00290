package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/eykd/gh-emoji/internal/domain"
	"github.com/eykd/gh-emoji/internal/format"
)

// ListRunner defines the interface for loading the catalog to list.
type ListRunner interface {
	List(ctx context.Context) (domain.Catalog, error)
}

// NewListCmd creates the list command with the given runner.
func NewListCmd(runner ListRunner) *cobra.Command {
	var color bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all emojis",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runList(cmd, runner, color)
		},
	}

	cmd.Flags().BoolVarP(&color, "color", "c", false, "Print with colors")

	return cmd
}

// runList prints every catalog line to the command's stdout.
func runList(cmd *cobra.Command, runner ListRunner, color bool) error {
	catalog, err := runner.List(cmd.Context())
	if err != nil {
		return err
	}
	return writeLines(cmd.OutOrStdout(), format.Lines(catalog, color))
}
