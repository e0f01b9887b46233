package hwplane

import (
	"image"
	"testing"

	"golang.org/x/image/math/fixed"
)

func TestStride(t *testing.T) {
	lin := LinearStride(7680)
	if lin.IsPlanar() || lin.Linear() != 7680 || lin.Luma() != 7680 || lin.Chroma() != 0 {
		t.Errorf("LinearStride(7680) = %+v", lin)
	}
	pl := PlanarStride(2048, 1024)
	if !pl.IsPlanar() || pl.Luma() != 2048 || pl.Chroma() != 1024 || pl.Linear() != 2048 {
		t.Errorf("PlanarStride(2048, 1024) = %+v", pl)
	}
}

func TestFRectFromFixed(t *testing.T) {
	r := fixed.Rectangle26_6{
		Min: fixed.Point26_6{X: fixed.I(10) + 32, Y: fixed.I(20)},
		Max: fixed.Point26_6{X: fixed.I(110), Y: fixed.I(70) + 16},
	}
	got := FRectFromFixed(r)
	want := FRect{Left: 10.5, Top: 20, Right: 110, Bottom: 70.25}
	if got != want {
		t.Errorf("FRectFromFixed() = %+v, want %+v", got, want)
	}
}

func TestFRectRect(t *testing.T) {
	r := FRect{Left: 0.7, Top: 1.2, Right: 99.9, Bottom: 50.5}
	if got, want := r.Rect(), image.Rect(0, 1, 99, 50); got != want {
		t.Errorf("Rect() = %v, want %v", got, want)
	}
	w, h := FRect{Left: 0.5, Right: 100.4, Top: 0, Bottom: 10}.truncatedSize()
	if w != 100 || h != 10 {
		t.Errorf("truncatedSize() = %d x %d, want 100 x 10", w, h)
	}
	w, _ = FRect{Left: 50, Right: 10}.truncatedSize()
	if w != -40 {
		t.Errorf("inverted truncatedSize() width = %d, want -40", w)
	}
}
