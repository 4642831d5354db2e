package bubble

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler discards all log records. Enabled returns false so callers
// skip message formatting entirely, making disabled logging near free.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	l := slog.New(nopHandler{})
	loggerPtr.Store(l)
}

// SetLogger configures logging for the bubble package. By default no log
// output is produced. Pass nil to restore the silent default.
//
// Levels used:
//   - slog.LevelDebug: reflow and rasterization events (line counts,
//     pixel dimensions, scales)
//   - slog.LevelWarn: font fallback and other non-fatal substitutions
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(nopHandler{})
	}
	loggerPtr.Store(l)
}

// Logger returns the current package logger.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
