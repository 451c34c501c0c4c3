package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// ParseLevel maps a configured level name to a slog level. Unknown names
// fall back to info.
func ParseLevel(levelStr string) slog.Level {
	switch strings.ToUpper(strings.TrimSpace(levelStr)) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// New builds the application logger writing text records to stderr.
// verbose or TASKS_DEBUG lower the level to debug.
func New(levelStr string, verbose bool) *slog.Logger {
	return NewWithWriter(os.Stderr, levelStr, verbose)
}

// NewWithWriter is New with an explicit destination.
func NewWithWriter(w io.Writer, levelStr string, verbose bool) *slog.Logger {
	level := ParseLevel(levelStr)
	if verbose || DebugEnabled() {
		level = slog.LevelDebug
	}

	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(handler)
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
