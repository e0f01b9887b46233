package hwplane

import (
	"bytes"
	"context"
	"image"
	"log/slog"
	"strings"
	"sync"
	"testing"
)

func TestNopHandler_Enabled(t *testing.T) {
	h := nopHandler{}
	for _, level := range []slog.Level{LevelVerbose, slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError} {
		if h.Enabled(context.Background(), level) {
			t.Errorf("nopHandler.Enabled(%v) = true, want false", level)
		}
	}
}

func TestNopHandler_Handle(t *testing.T) {
	h := nopHandler{}
	if err := h.Handle(context.Background(), slog.Record{}); err != nil {
		t.Errorf("nopHandler.Handle() = %v, want nil", err)
	}
}

func TestNopHandler_WithAttrsAndGroup(t *testing.T) {
	h := nopHandler{}
	if _, ok := h.WithAttrs([]slog.Attr{slog.String("key", "val")}).(nopHandler); !ok {
		t.Error("nopHandler.WithAttrs() should return nopHandler")
	}
	if _, ok := h.WithGroup("group").(nopHandler); !ok {
		t.Error("nopHandler.WithGroup() should return nopHandler")
	}
}

func TestLoggerDefaultSilent(t *testing.T) {
	l := Logger()
	if l == nil {
		t.Fatal("Logger() returned nil")
	}
	for _, level := range []slog.Level{LevelVerbose, slog.LevelDebug, slog.LevelWarn, slog.LevelError} {
		if l.Enabled(context.Background(), level) {
			t.Errorf("default logger should not be enabled for %v", level)
		}
	}
}

func TestSetLogger(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var buf bytes.Buffer
	custom := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: LevelVerbose}))
	SetLogger(custom)

	if got := Logger(); got != custom {
		t.Error("Logger() did not return the custom logger set via SetLogger")
	}

	// Existing validators pick up the new package logger.
	v := New()
	if v.IsSizeSupported(PlanePrimary, FormatRGBA8888, 100, 100, LinearStride(20000)) {
		t.Fatal("stride 20000 should be rejected")
	}
	out := buf.String()
	for _, want := range []string{"stride too large", "query=Size", "plane=Primary", "stride=20000", "max_stride=10240"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q: %s", want, out)
		}
	}
}

func TestSetLoggerNilRestoresSilent(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	SetLogger(slog.Default())
	SetLogger(nil)

	l := Logger()
	if l == nil {
		t.Fatal("SetLogger(nil) should set nop logger, not nil")
	}
	if l.Enabled(context.Background(), slog.LevelError) {
		t.Error("SetLogger(nil) should produce a disabled logger")
	}
}

func TestLoggerLevelFiltering(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn})))

	v := New()
	v.IsFormatSupported(PlanePrimary, FormatNV12, TransformNone) // verbose, filtered
	if buf.Len() != 0 {
		t.Errorf("verbose rejection logged at WARN threshold: %s", buf.String())
	}
	v.IsFormatSupported(PlaneOverlay, FormatUYVY, TransformRot180)
	if !strings.Contains(buf.String(), "180 degree rotation") {
		t.Errorf("expected 180 degree warning, got: %s", buf.String())
	}
	v.IsTransformSupported(PlaneClass(7), TransformNone)
	if !strings.Contains(buf.String(), "invalid plane class 7") {
		t.Errorf("expected invalid plane class error, got: %s", buf.String())
	}
}

func TestLoggerConcurrentAccess(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var wg sync.WaitGroup
	const goroutines = 100
	v := New()

	for range goroutines {
		wg.Add(1)
		go func() {
			defer wg.Done()
			// Exercise the logger through a rejection; must not panic.
			v.IsScalingSupported(PlanePrimary, FRect{Right: 10, Bottom: 10}, image.Rect(0, 0, 20, 20), TransformNone)
		}()
	}
	for range goroutines {
		wg.Add(1)
		go func() {
			defer wg.Done()
			SetLogger(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))
			SetLogger(nil)
		}()
	}
	wg.Wait()
}

func BenchmarkRejectDisabledLogger(b *testing.B) {
	v := New()
	b.ReportAllocs()
	for b.Loop() {
		_ = v.IsFormatSupported(PlanePrimary, FormatNV12, TransformNone)
	}
}
