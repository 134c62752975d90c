// Package logging builds the slog loggers used by the hexpath command.
package logging

import (
	"io"
	"log/slog"
	"strings"
)

// levelSilent sits above every standard level.
const levelSilent = slog.Level(100)

// Format selects the slog handler.
type Format string

const (
	// FormatText uses slog.TextHandler (key=value).
	FormatText Format = "text"
	// FormatJSON uses slog.JSONHandler.
	FormatJSON Format = "json"
)

// New creates a logger writing to w at level. Unknown formats fall back to text.
func New(w io.Writer, level slog.Level, format Format) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}
	if format == FormatJSON {
		return slog.New(slog.NewJSONHandler(w, opts))
	}

	return slog.New(slog.NewTextHandler(w, opts))
}

// Discard creates a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// LevelFromString converts debug, info, warn or error (any case) to a level.
// Returns slog.LevelInfo for anything else.
func LevelFromString(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// LevelFromVerbosity maps CLI -v counts to a level:
// quiet silences everything, 0 is warn, 1 is info, 2+ is debug.
func LevelFromVerbosity(verbosity int, quiet bool) slog.Level {
	if quiet {
		return levelSilent
	}
	switch verbosity {
	case 0:
		return slog.LevelWarn
	case 1:
		return slog.LevelInfo
	default:
		return slog.LevelDebug
	}
}
