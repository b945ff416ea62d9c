package logger

import (
	"io"
	"log/slog"
)

var (
	defaultLogger *slog.Logger
)

// Init builds the process logger, writing to w, and makes it the slog default
func Init(w io.Writer, level string, json bool) *slog.Logger {
	var handler slog.Handler

	opts := &slog.HandlerOptions{
		Level: ParseLevel(level),
	}

	if json {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	defaultLogger = slog.New(handler)
	slog.SetDefault(defaultLogger)
	return defaultLogger
}

// ParseLevel maps a level name to a slog level, defaulting to info
func ParseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Get returns the process logger, or a discarding one before Init
func Get() *slog.Logger {
	if defaultLogger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return defaultLogger
}
