package game

import (
	"io"
	"log/slog"

	"github.com/google/uuid"
)

// NewLogger returns the root logger. Every record carries the run id so
// logs from separate launches can be told apart.
func NewLogger(w io.Writer, level slog.Level) *slog.Logger {
	h := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(h).With("run", uuid.NewString())
}

// Component derives a child logger tagged with a subsystem name.
func Component(log *slog.Logger, name string) *slog.Logger {
	return log.With("component", name)
}
