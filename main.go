// Package main is the entry point for the gh-emoji CLI application.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/eykd/gh-emoji/cmd"
)

func main() {
	// Create a context that is cancelled on SIGINT (Ctrl+C).
	// Cancellation also stops a running selector.
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprint(os.Stderr, cmd.FormatError(err))
		cancel()
		os.Exit(cmd.ExitCodeFromError(err))
	}
}
