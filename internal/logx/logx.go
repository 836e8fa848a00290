// Package logx builds the gh-emoji logger and carries it through contexts.
package logx

import (
	"context"
	"io"

	"pkt.systems/pslog"
)

type contextKey struct{}

var discard = pslog.NewWithOptions(io.Discard, pslog.Options{
	Mode:     pslog.ModeStructured,
	NoColor:  true,
	MinLevel: pslog.ErrorLevel,
})

// New returns a console logger writing to w. Debug events are emitted only
// when verbose is set.
func New(w io.Writer, verbose bool) pslog.Logger {
	level := pslog.InfoLevel
	if verbose {
		level = pslog.DebugLevel
	}
	return pslog.NewWithOptions(w, pslog.Options{
		Mode:     pslog.ModeConsole,
		MinLevel: level,
	})
}

// WithLogger attaches log to ctx.
func WithLogger(ctx context.Context, log pslog.Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, log)
}

// Ctx returns the logger bound to ctx, or a logger that discards everything.
func Ctx(ctx context.Context) pslog.Logger {
	if ctx != nil {
		if log, ok := ctx.Value(contextKey{}).(pslog.Logger); ok {
			return log
		}
	}
	return discard
}
