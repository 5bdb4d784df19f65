// Package logging provides structured logging for sevenrun.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Options selects the handler format and threshold for a new logger.
type Options struct {
	// Format is "json" or "text". Anything else falls back to text, which
	// suits an interactive CLI better than JSON noise.
	Format string

	// Level is "debug", "info", "warn" or "error".
	Level string
}

// New creates a structured logger writing to stderr, keeping stdout free
// for the archiver's own output.
func New(opts Options) *slog.Logger {
	return NewWithWriter(os.Stderr, opts)
}

// NewWithWriter creates a logger that writes to a custom writer.
// Useful for testing.
func NewWithWriter(w io.Writer, opts Options) *slog.Logger {
	level := parseLevel(opts.Level)
	handlerOpts := &slog.HandlerOptions{
		Level: level,
		// Source locations only matter when debugging sevenrun itself.
		AddSource: level == slog.LevelDebug,
	}

	var handler slog.Handler
	if strings.EqualFold(opts.Format, "json") {
		handler = slog.NewJSONHandler(w, handlerOpts)
	} else {
		handler = slog.NewTextHandler(w, handlerOpts)
	}
	return slog.New(handler)
}

// parseLevel converts a string level to slog.Level.
func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
