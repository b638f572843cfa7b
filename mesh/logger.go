// SPDX-License-Identifier: MIT
//
// File: logger.go
// Role: slog-backed logger for rejected insertions and invalidation traces.

package mesh

import (
	"io"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with mesh-specific helpers.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a Logger with the given handler.
// If handler is nil, uses a text handler on stderr at Info level.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{Logger: slog.New(handler)}
}

// NewTextLogger creates a Logger writing human-readable text to stderr.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NoopLogger creates a Logger that discards all output.
func NoopLogger() *Logger {
	return NewLogger(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.Level(1000), // unreachable
	}))
}

// LogDuplicate reports a rejected insertion.
func (l *Logger) LogDuplicate(kind, value string, err error) {
	l.Warn("duplicate insertion rejected",
		"kind", kind,
		"value", value,
		"error", err,
	)
}

// LogDeadDependency reports an insertion rejected because it touches an
// invalidated vertex or edge.
func (l *Logger) LogDeadDependency(kind, value string, err error) {
	l.Warn("insertion over invalidated entity rejected",
		"kind", kind,
		"value", value,
		"error", err,
	)
}

// LogInvalidate traces one invalidation and how many dependents it took down.
func (l *Logger) LogInvalidate(kind string, id int, cascaded int) {
	l.Debug("entity invalidated",
		"kind", kind,
		"id", id,
		"cascaded", cascaded,
	)
}
