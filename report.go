package hwplane

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
)

var (
	// ErrInvalidPlaneClass classifies rejections caused by a plane class
	// outside Sprite, Overlay and Primary. It is a caller bug.
	ErrInvalidPlaneClass = errors.New("hwplane: invalid plane class")

	// ErrUnsupported classifies legitimate configurations the hardware
	// cannot present.
	ErrUnsupported = errors.New("hwplane: unsupported configuration")
)

// Diagnostic explains why a query answered false.
type Diagnostic struct {
	Query Query
	Plane PlaneClass

	// Err wraps ErrInvalidPlaneClass or ErrUnsupported.
	Err error

	// Level is the suggested log severity.
	Level slog.Level

	// Attrs carries the values that caused the rejection.
	Attrs []slog.Attr
}

// Reporter receives diagnostics. Implementations must be safe for concurrent
// use because validators are shared across composition threads.
type Reporter interface {
	Report(Diagnostic)
}

// ReporterFunc adapts a function to the Reporter interface.
type ReporterFunc func(Diagnostic)

// Report calls f(d).
func (f ReporterFunc) Report(d Diagnostic) { f(d) }

// slogReporter writes diagnostics to a logger. A nil logger means the
// package logger, looked up on every report so SetLogger takes effect on
// existing validators.
type slogReporter struct {
	logger *slog.Logger
}

func (r slogReporter) Report(d Diagnostic) {
	l := r.logger
	if l == nil {
		l = Logger()
	}
	ctx := context.Background()
	if !l.Enabled(ctx, d.Level) {
		return
	}
	attrs := make([]slog.Attr, 0, len(d.Attrs)+2)
	attrs = append(attrs, slog.String("query", d.Query.String()), slog.String("plane", d.Plane.String()))
	attrs = append(attrs, d.Attrs...)
	l.LogAttrs(ctx, d.Level, d.Err.Error(), attrs...)
}

// reportInvalidPlane emits the uniform invalid-class diagnostic.
func (v *Validator) reportInvalidPlane(q Query, c PlaneClass) {
	v.reporter.Report(Diagnostic{
		Query: q,
		Plane: c,
		Err:   fmt.Errorf("%w %d", ErrInvalidPlaneClass, int(c)),
		Level: slog.LevelError,
	})
}

// reject emits an unsupported-configuration diagnostic.
func (v *Validator) reject(q Query, c PlaneClass, level slog.Level, reason string, attrs ...slog.Attr) {
	v.reporter.Report(Diagnostic{
		Query: q,
		Plane: c,
		Err:   fmt.Errorf("%w: %s", ErrUnsupported, reason),
		Level: level,
		Attrs: attrs,
	})
}
