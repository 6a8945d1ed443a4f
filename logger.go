package quantgo

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with quantgo-specific context.
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
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithWires adds a wires field to the logger (useful for tagging operations).
func (l *Logger) WithWires(wires []int) *Logger {
	return &Logger{
		Logger: l.Logger.With("wires", wires),
	}
}

// LogApply logs a gate application.
func (l *Logger) LogApply(name string, wires []int, err error) {
	if err != nil {
		l.Error("apply failed",
			"operation", name,
			"wires", wires,
			"error", err,
		)
	} else {
		l.Debug("apply completed",
			"operation", name,
			"wires", wires,
		)
	}
}

// LogMeasure logs a measurement outcome.
func (l *Logger) LogMeasure(wire, sample int, err error) {
	if err != nil {
		l.Error("measure failed",
			"wire", wire,
			"error", err,
		)
	} else {
		l.Debug("measure completed",
			"wire", wire,
			"sample", sample,
		)
	}
}
