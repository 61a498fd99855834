package config

import (
	"io"
	"log/slog"
)

// NewLogger builds the process logger from the Log section.
func (c Config) NewLogger(w io.Writer) *slog.Logger {
	return newLogger(w, c.Log.Format, c.Log.Level)
}

func newLogger(w io.Writer, format string, level slog.Level) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}
	if format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
