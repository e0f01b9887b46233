package hwplane

import (
	"fmt"
	"strings"
)

// Transform is a rotation and/or flip applied to a layer before composition.
// Bit values match the composer's transform flags: rotations are built from
// the flip bits and the 90° bit.
type Transform uint32

const (
	// TransformNone is the identity transform.
	TransformNone Transform = 0

	// TransformFlipH flips the source horizontally.
	TransformFlipH Transform = 0x01

	// TransformFlipV flips the source vertically.
	TransformFlipV Transform = 0x02

	// TransformRot90 rotates the source 90° clockwise.
	TransformRot90 Transform = 0x04

	// TransformRot180 rotates the source 180°.
	TransformRot180 = TransformFlipH | TransformFlipV

	// TransformRot270 rotates the source 270° clockwise.
	TransformRot270 = TransformRot180 | TransformRot90

	transformMask = TransformFlipH | TransformFlipV | TransformRot90
)

var transformNames = [...]string{
	TransformNone:                   "None",
	TransformFlipH:                  "FlipH",
	TransformFlipV:                  "FlipV",
	TransformRot180:                 "Rot180",
	TransformRot90:                  "Rot90",
	TransformRot90 | TransformFlipH: "Rot90FlipH",
	TransformRot90 | TransformFlipV: "Rot90FlipV",
	TransformRot270:                 "Rot270",
}

// IsIdentity reports whether t leaves the source untouched.
func (t Transform) IsIdentity() bool {
	return t == TransformNone
}

// SwapsAxes reports whether t is a pure quarter turn (90° or 270°), in which
// case the hardware scaler works on the rotated frame. Quarter turns combined
// with a flip do not count.
func (t Transform) SwapsAxes() bool {
	return t == TransformRot90 || t == TransformRot270
}

// String returns the transform name.
func (t Transform) String() string {
	if t <= transformMask {
		return transformNames[t]
	}
	return fmt.Sprintf("Transform(%#x)", uint32(t))
}

// ParseTransform returns the transform with the given name.
// Matching is case-insensitive; "0" is accepted for the identity.
func ParseTransform(s string) (Transform, error) {
	if s == "0" || s == "" {
		return TransformNone, nil
	}
	for t, name := range transformNames {
		if strings.EqualFold(s, name) {
			return Transform(t), nil
		}
	}
	return 0, fmt.Errorf("hwplane: unknown transform %q", s)
}
