// Package logging builds the application logger.
package logging

import (
	"io"
	"log/slog"
	"os"
)

// New creates the CLI logger. Debug mode selects a verbose text handler on
// Stderr; otherwise logging is discarded entirely. Stderr keeps log lines
// out of the stdout stream that the isolator manages.
func New(debug bool) *slog.Logger {
	if !debug {
		return NewNop()
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelDebug,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			// Standardize 'error' key to 'err'
			if a.Key == "error" {
				a.Key = "err"
			}
			return a
		},
	}))
}

// NewNop returns a no-op logger.
func NewNop() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
