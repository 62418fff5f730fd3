package bitvec

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with bitvec-specific fields.
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
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	}))
}

// WithBlocks adds a blocks field to the logger.
func (l *Logger) WithBlocks(n int) *Logger {
	return &Logger{
		Logger: l.Logger.With("blocks", n),
	}
}

// LogGrow logs a growth of a vector from oldBlocks to newBlocks, triggered
// by a write or reservation at index.
func (l *Logger) LogGrow(ctx context.Context, index uint, oldBlocks, newBlocks int) {
	if l.Logger == nil || !l.Enabled(ctx, slog.LevelDebug) {
		return
	}
	l.WithBlocks(newBlocks).DebugContext(ctx, "bit vector grown",
		"index", index,
		"old_blocks", oldBlocks,
		"bits", uint(newBlocks)*WordBits,
	)
}
