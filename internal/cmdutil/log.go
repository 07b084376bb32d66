// internal/cmdutil/log.go
package cmdutil

import (
	"context"
	"io"
	"log/slog"

	"cloudeng.io/logging/ctxlog"
)

// LogOptions selects the stderr logger.
type LogOptions struct {
	Format  string // text | json
	Quiet   bool   // errors only
	Verbose bool   // debug and up
}

// NewLogger builds a slog logger on dst. The default level is Warn.
func NewLogger(dst io.Writer, o LogOptions) *slog.Logger {
	level := slog.LevelWarn
	switch {
	case o.Quiet:
		level = slog.LevelError
	case o.Verbose:
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}
	if o.Format == "json" {
		return slog.New(slog.NewJSONHandler(dst, opts))
	}
	return slog.New(slog.NewTextHandler(dst, opts))
}

// WithLogger stores l in ctx for Logger to retrieve.
func WithLogger(ctx context.Context, l *slog.Logger) context.Context {
	return ctxlog.Context(ctx, l)
}

// Logger returns the logger carried by ctx, or a discarding one.
func Logger(ctx context.Context) *slog.Logger {
	return ctxlog.Logger(ctx)
}
