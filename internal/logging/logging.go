// Package logging builds the slog loggers used by the program.
package logging

import (
	"io"
	"log/slog"
	"strings"
)

// ParseLevel maps a level name to a slog.Level. Unknown names map to info.
func ParseLevel(levelStr string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(levelStr)) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// New creates a text logger writing to outW. It does not touch the global
// logger, allowing for isolated instances.
func New(outW io.Writer, levelStr string) *slog.Logger {
	handler := slog.NewTextHandler(outW, &slog.HandlerOptions{Level: ParseLevel(levelStr)})
	return slog.New(handler)
}

// Discard returns a logger that drops everything. Used while the terminal UI
// owns the screen.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
