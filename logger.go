package hwplane

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// LevelVerbose is the severity of routine rejections. It sits below
// slog.LevelDebug so that debug logging stays readable during composition.
const LevelVerbose = slog.LevelDebug - 4

// nopHandler is a slog.Handler that silently discards all log records.
// The Enabled method returns false so the caller skips message formatting
// entirely, making disabled logging effectively zero-cost.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// newNopLogger creates a logger that silently discards all output.
func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger. Accessed atomically so that
// SetLogger can be called concurrently with queries from any goroutine.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger used by validators that have no reporter
// of their own. By default, hwplane produces no log output.
//
// SetLogger is safe for concurrent use: it stores the new logger atomically.
// Pass nil to disable logging (restore default silent behavior).
//
// Log levels used by hwplane:
//   - [LevelVerbose]: routine rejections (unsupported format, stride too large)
//   - [slog.LevelDebug]: rotated overlay downscale falling back to the GPU
//   - [slog.LevelWarn]: 180° overlay rotation requested but not enabled
//   - [slog.LevelError]: invalid plane class passed by the caller
//
// Example:
//
//	hwplane.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: hwplane.LevelVerbose,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current package logger.
//
// Logger is safe for concurrent use.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
