package hwplane

import (
	"fmt"
	"strings"
)

// PlaneClass identifies a hardware display-plane category.
// Values match the display-plane enumeration of the plane-assignment component.
type PlaneClass int

const (
	// PlaneSprite is a sprite plane. It shares every capability rule with
	// PlanePrimary.
	PlaneSprite PlaneClass = iota

	// PlaneOverlay is a video overlay plane: YUV formats, a hardware scaler,
	// and no blending.
	PlaneOverlay

	// PlanePrimary is the primary (framebuffer) plane.
	PlanePrimary

	planeClassCount
)

// Valid reports whether c is one of the recognized plane classes.
func (c PlaneClass) Valid() bool {
	return c >= 0 && c < planeClassCount
}

// String returns the plane class name.
func (c PlaneClass) String() string {
	switch c {
	case PlaneSprite:
		return "Sprite"
	case PlaneOverlay:
		return "Overlay"
	case PlanePrimary:
		return "Primary"
	default:
		return fmt.Sprintf("PlaneClass(%d)", int(c))
	}
}

// ParsePlaneClass returns the plane class with the given name.
// Matching is case-insensitive.
func ParsePlaneClass(s string) (PlaneClass, error) {
	for c := PlaneClass(0); c < planeClassCount; c++ {
		if strings.EqualFold(s, c.String()) {
			return c, nil
		}
	}
	return 0, fmt.Errorf("hwplane: unknown plane class %q", s)
}
