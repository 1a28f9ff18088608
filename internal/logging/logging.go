package logging

import (
	"io"
	"log/slog"
)

// New builds the process logger. format is "json" or anything else for
// text.
func New(w io.Writer, level slog.Level, format string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}
	var h slog.Handler
	if format == "json" {
		h = slog.NewJSONHandler(w, opts)
	} else {
		h = slog.NewTextHandler(w, opts)
	}
	return slog.New(h)
}

// Install makes l the default logger. Components built afterwards without
// an explicit logger derive theirs from it.
func Install(l *slog.Logger) {
	slog.SetDefault(l)
}
