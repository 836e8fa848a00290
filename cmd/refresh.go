package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/eykd/gh-emoji/internal/domain"
)

// RefreshRunner defines the interface for replacing the cached catalog.
type RefreshRunner interface {
	Refresh(ctx context.Context) (domain.Catalog, error)
}

// NewRefreshCmd creates the refresh command with the given runner.
func NewRefreshCmd(runner RefreshRunner) *cobra.Command {
	return &cobra.Command{
		Use:   "refresh",
		Short: "Refresh the icon cache",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := runner.Refresh(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Icons updated!")
			return nil
		},
	}
}
