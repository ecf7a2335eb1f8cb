package cpi

import "context"
import "log/slog"
import "sync/atomic"

// nopHandler is a slog.Handler that silently discards all records.
// Enabled returns false so disabled logging skips message formatting
// entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler { return nopHandler{} }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(slog.New(nopHandler{}))
}

// SetLogger configures the logger used for raw header dumps and other
// diagnostics. By default the package produces no log output; header
// dumps are emitted at [slog.LevelDebug]. Pass nil to restore the
// default silent behavior.
//
// SetLogger is safe for concurrent use.
func SetLogger(logger *slog.Logger) {
	if logger == nil { logger = slog.New(nopHandler{}) }
	loggerPtr.Store(logger)
}

// Logger returns the current package logger.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
