package hwplane

import (
	"errors"
	"testing"
)

func TestDefaultLimits(t *testing.T) {
	l := DefaultLimits()
	if l.PrimaryMaxStride != 10240 {
		t.Errorf("PrimaryMaxStride = %d, want 10240", l.PrimaryMaxStride)
	}
	if l.OverlayMaxStridePacked != 4096 || l.OverlayMaxStridePlanar != 8192 {
		t.Errorf("overlay strides = %d/%d, want 4096/8192", l.OverlayMaxStridePacked, l.OverlayMaxStridePlanar)
	}
	if l.OverlayMaxWidth != 2047 || l.OverlayMaxHeight != 2047 {
		t.Errorf("overlay size = %dx%d, want 2047x2047", l.OverlayMaxWidth, l.OverlayMaxHeight)
	}
	if l.OverlayRotatedScaleLimit != 3 {
		t.Errorf("OverlayRotatedScaleLimit = %d, want 3", l.OverlayRotatedScaleLimit)
	}
	if err := l.Validate(); err != nil {
		t.Errorf("DefaultLimits().Validate() = %v", err)
	}
}

func TestLimitsValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Limits)
	}{
		{"primary stride", func(l *Limits) { l.PrimaryMaxStride = 0 }},
		{"packed stride", func(l *Limits) { l.OverlayMaxStridePacked = 0 }},
		{"planar stride", func(l *Limits) { l.OverlayMaxStridePlanar = 0 }},
		{"width", func(l *Limits) { l.OverlayMaxWidth = 1 }},
		{"height", func(l *Limits) { l.OverlayMaxHeight = -5 }},
		{"scale", func(l *Limits) { l.OverlayRotatedScaleLimit = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := DefaultLimits()
			tt.mutate(&l)
			if err := l.Validate(); !errors.Is(err, ErrInvalidLimits) {
				t.Errorf("Validate() = %v, want ErrInvalidLimits", err)
			}
		})
	}
}
