package idkey

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with idkey-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithKey adds a key name field to the logger (useful when several keys
// share one handler).
func (l *Logger) WithKey(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("key", name),
	}
}

// WithNode adds a guide node field to the logger.
func (l *Logger) WithNode(uuid string) *Logger {
	return &Logger{
		Logger: l.Logger.With("node", uuid),
	}
}

// LogLoad logs a catalog load.
func (l *Logger) LogLoad(ctx context.Context, items, filters int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "catalog load failed",
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "catalog loaded",
			"items", items,
			"filters", filters,
		)
	}
}

// LogPass logs an evaluation pass.
func (l *Logger) LogPass(ctx context.Context, activeFilters, visible, total int, err error) {
	if err != nil {
		l.WarnContext(ctx, "pass completed with undecodable selection",
			"active_filters", activeFilters,
			"visible", visible,
			"total", total,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "pass completed",
			"active_filters", activeFilters,
			"visible", visible,
			"total", total,
		)
	}
}

// LogReset logs a reset.
func (l *Logger) LogReset(ctx context.Context, total int) {
	l.DebugContext(ctx, "reset",
		"visible", total,
	)
}
