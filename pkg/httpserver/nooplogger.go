package httpserver

import (
	"context"
	"log/slog"
)

// noopHandler is a slog.Handler that discards all logs.
type noopHandler struct{}

func (noopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (noopHandler) Handle(context.Context, slog.Record) error { return nil }
func (n noopHandler) WithAttrs([]slog.Attr) slog.Handler      { return n }
func (n noopHandler) WithGroup(string) slog.Handler           { return n }

// newNoopLogger returns a slog.Logger that discards all logs.
func newNoopLogger() *slog.Logger {
	return slog.New(noopHandler{})
}
