package cmd

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/eykd/gh-emoji/internal/cache"
	"github.com/eykd/gh-emoji/internal/catalog"
	"github.com/eykd/gh-emoji/internal/config"
	"github.com/eykd/gh-emoji/internal/fs"
	"github.com/eykd/gh-emoji/internal/logx"
	"github.com/eykd/gh-emoji/internal/picker"
)

// BuildCommandTree creates the root command with every subcommand wired
// through wire. Running the root command with no subcommand lists.
func BuildCommandTree(wire Wirer) *cobra.Command {
	list := &listAdapter{wire: wire}

	root := NewRootCmd()
	var color bool
	root.Args = cobra.NoArgs
	root.RunE = func(cmd *cobra.Command, _ []string) error {
		return runList(cmd, list, color)
	}
	root.Flags().BoolVarP(&color, "color", "c", false, "Print with colors")

	root.AddCommand(NewListCmd(list))
	root.AddCommand(NewRefreshCmd(&refreshAdapter{wire: wire}))
	root.AddCommand(NewPickCmd(&pickAdapter{wire: wire}))
	return root
}

// DefaultWire loads the user's config file and builds the cache store and
// picker at their standard locations.
func DefaultWire(ctx context.Context) (*Services, error) {
	cfgPath, err := config.DefaultPath()
	if err != nil {
		return nil, err
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, &ContextError{Op: "loading config", Err: err}
	}

	cachePath, err := cache.DefaultPath()
	if err != nil {
		return nil, err
	}
	logx.Ctx(ctx).Debug("wired", "config", cfgPath, "cache", cachePath, "endpoint", cfg.Endpoint, "selector", cfg.Selector.Command)

	return NewServices(cfg, cachePath), nil
}

// NewServices builds the production services for cfg with the cache file at cachePath.
func NewServices(cfg config.Config, cachePath string) *Services {
	fetcher := catalog.NewFetcher(cfg.Endpoint, nil)
	return &Services{
		Store:  cache.NewStore(cachePath, fetcher, fs.OSReader{}, fs.OSWriter{}),
		Picker: picker.New(cfg.Selector.Command, cfg.Selector.Args, os.Stderr),
	}
}
