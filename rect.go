package hwplane

import (
	"image"

	"golang.org/x/image/math/fixed"
)

// FRect is a source crop in buffer coordinates. Edges may be fractional.
type FRect struct {
	Left, Top, Right, Bottom float32
}

// FRectFromFixed converts a 26.6 fixed-point rectangle into a source crop.
func FRectFromFixed(r fixed.Rectangle26_6) FRect {
	return FRect{
		Left:   fixedToFloat(r.Min.X),
		Top:    fixedToFloat(r.Min.Y),
		Right:  fixedToFloat(r.Max.X),
		Bottom: fixedToFloat(r.Max.Y),
	}
}

func fixedToFloat(x fixed.Int26_6) float32 {
	return float32(x) / 64
}

// Rect returns the crop rounded inward to whole pixels the way the scaler
// reads it: each edge is truncated toward zero independently.
func (r FRect) Rect() image.Rectangle {
	return image.Rect(int(r.Left), int(r.Top), int(r.Right), int(r.Bottom))
}

// truncatedSize returns the crop width and height with each edge truncated
// toward zero before subtracting. Unlike Rect it keeps the sign of inverted
// crops so callers can reject them.
func (r FRect) truncatedSize() (w, h int) {
	return int(r.Right) - int(r.Left), int(r.Bottom) - int(r.Top)
}
