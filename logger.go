package facestore

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with facestore-specific context.
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
func NewJSONLogger(level slog.Level) *Logger {
	return &Logger{
		Logger: slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
			Level: level,
		})),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	return &Logger{
		Logger: slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: level,
		})),
	}
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.Level(1000), // Unreachable level
		})),
	}
}

// LogAdd logs an add operation.
func (l *Logger) LogAdd(ctx context.Context, key string, count int, persisted bool, err error) {
	if err != nil {
		l.ErrorContext(ctx, "add failed",
			"name", key,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "add completed",
			"name", key,
			"faces", count,
			"persisted", persisted,
		)
	}
}

// LogLoad logs a single-reference load from the backing store.
func (l *Logger) LogLoad(ctx context.Context, key string, count int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "load failed",
			"name", key,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "load completed",
			"name", key,
			"faces", count,
		)
	}
}

// LogLoadAll logs a bulk load operation.
func (l *Logger) LogLoadAll(ctx context.Context, count int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "bulk load failed",
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "bulk load completed",
			"references", count,
		)
	}
}
