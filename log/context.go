package log

import (
	"context"
)

type loggerKey struct{}

// NewContext returns ctx carrying a process logger tagged with tags.
func NewContext(ctx context.Context, tags map[string]any) context.Context {
	return context.WithValue(ctx, loggerKey{}, std.newWithTags(tags))
}

// NewContextWithLogger returns ctx carrying logger.
func NewContextWithLogger(ctx context.Context, logger Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// Inject add tags to the logger in ctx, if any.
func Inject(ctx context.Context, tags map[string]any) {
	if ctxLogger, ok := ctx.Value(loggerKey{}).(Logger); ok {
		ctxLogger.Inject(tags)
	}
}

// Extract logger from context, falling back to the process logger.
func Extract(ctx context.Context) Logger {
	if ctx == nil {
		return std
	}
	if ctxLogger, ok := ctx.Value(loggerKey{}).(Logger); ok {
		return ctxLogger
	}
	return std
}
