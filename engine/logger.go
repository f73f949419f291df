package engine

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that silently discards all log records
// Enabled returns false so callers skip message formatting entirely
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger, swapped atomically
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger shared by engine, systems and renderers
// By default nothing is logged. Pass nil to restore the silent default
//
// Log levels:
//   - [slog.LevelDebug]: per-event diagnostics (drags, dispatch counts)
//   - [slog.LevelInfo]: lifecycle (spawn, destroy, snapshot written)
//   - [slog.LevelWarn]: recovered failures (rejected edits, dangling rails)
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
