// Package logging builds the process-wide structured logger.
package logging

import (
	"io"
	"log/slog"
	"os"
	"time"
)

// New creates the application logger. Records go to Stderr so that rendered
// plans on Stdout stay machine-readable.
func New(level slog.Level) *slog.Logger {
	return NewWithWriter(os.Stderr, level)
}

// NewWithWriter creates a logger writing to w. Timestamps are normalized to
// UTC so journal rows and log lines line up, and the conventional "error"
// key is shortened to "err". Every record carries the app attribute.
func NewWithWriter(w io.Writer, level slog.Level) *slog.Logger {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			switch a.Key {
			case "error":
				a.Key = "err"
			case slog.TimeKey:
				if t, ok := a.Value.Any().(time.Time); ok && len(groups) == 0 {
					a.Value = slog.TimeValue(t.UTC())
				}
			}
			return a
		},
	})
	return slog.New(handler).With("app", "wlsprov")
}

// NewNop returns a logger that discards everything.
func NewNop() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
