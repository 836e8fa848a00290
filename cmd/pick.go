package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/eykd/gh-emoji/internal/domain"
)

// PickRunner defines the interface for interactively choosing one icon.
// It reports false when nothing was selected.
type PickRunner interface {
	Pick(ctx context.Context) (domain.Icon, bool, error)
}

// NewPickCmd creates the pick command with the given runner.
func NewPickCmd(runner PickRunner) *cobra.Command {
	return &cobra.Command{
		Use:   "pick",
		Short: "Pick emoji with skim",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			icon, ok, err := runner.Pick(cmd.Context())
			if err != nil {
				return err
			}
			if !ok {
				return nil
			}
			return writeJSON(cmd.OutOrStdout(), icon)
		},
	}
}
