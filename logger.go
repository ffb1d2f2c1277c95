package refltab

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with refltab-specific helpers so table
// operations log with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a Logger with the given handler. If handler is nil, a
// text handler to stderr at Info level is used.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{Logger: slog.New(handler)}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
func NewJSONLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NoopLogger creates a Logger that discards all output.
func NoopLogger() *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	}))
}

// LogBuild logs a table construction.
func (l *Logger) LogBuild(nrows int, err error) {
	if err != nil {
		l.Error("table construction failed",
			"error", err,
		)
	} else {
		l.Debug("table built",
			"nrows", nrows,
		)
	}
}

// LogFlagUpdate logs a flag set/unset operation.
func (l *Logger) LogFlagUpdate(op string, value Flag, rows int) {
	l.Debug("flags updated",
		"op", op,
		"value", value.String(),
		"rows", rows,
	)
}
