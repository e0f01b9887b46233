package hwplane

import (
	"errors"
	"fmt"
)

// Hardware limits of the reference plane generation.
const (
	// DefaultPrimaryMaxStride is the largest linear stride, in bytes, a
	// primary or sprite plane can fetch.
	DefaultPrimaryMaxStride = 10240

	// DefaultOverlayMaxStridePacked is the largest luma stride for packed
	// 4:2:2 overlay sources.
	DefaultOverlayMaxStridePacked = 4096

	// DefaultOverlayMaxStridePlanar is the largest luma stride for planar
	// and semi-planar 4:2:0 overlay sources.
	DefaultOverlayMaxStridePlanar = 8192

	// DefaultOverlayMaxWidth and DefaultOverlayMaxHeight bound the overlay
	// source size. The usable maximum is one less.
	DefaultOverlayMaxWidth  = 2047
	DefaultOverlayMaxHeight = 2047

	// DefaultOverlayRotatedScaleLimit is the integer downscale factor at
	// which a rotated overlay source must fall back to GPU composition.
	DefaultOverlayRotatedScaleLimit = 3
)

// Limits holds the numeric hardware constants of one plane generation.
type Limits struct {
	PrimaryMaxStride         uint32 `yaml:"primary_max_stride"`
	OverlayMaxStridePacked   uint32 `yaml:"overlay_max_stride_packed"`
	OverlayMaxStridePlanar   uint32 `yaml:"overlay_max_stride_planar"`
	OverlayMaxWidth          int    `yaml:"overlay_max_width"`
	OverlayMaxHeight         int    `yaml:"overlay_max_height"`
	OverlayRotatedScaleLimit int    `yaml:"overlay_rotated_scale_limit"`
}

// DefaultLimits returns the limits of the reference plane generation.
func DefaultLimits() Limits {
	return Limits{
		PrimaryMaxStride:         DefaultPrimaryMaxStride,
		OverlayMaxStridePacked:   DefaultOverlayMaxStridePacked,
		OverlayMaxStridePlanar:   DefaultOverlayMaxStridePlanar,
		OverlayMaxWidth:          DefaultOverlayMaxWidth,
		OverlayMaxHeight:         DefaultOverlayMaxHeight,
		OverlayRotatedScaleLimit: DefaultOverlayRotatedScaleLimit,
	}
}

// ErrInvalidLimits is returned by Limits.Validate.
var ErrInvalidLimits = errors.New("hwplane: invalid limits")

// Validate checks that every limit is positive.
func (l Limits) Validate() error {
	switch {
	case l.PrimaryMaxStride == 0:
		return fmt.Errorf("%w: primary max stride is zero", ErrInvalidLimits)
	case l.OverlayMaxStridePacked == 0:
		return fmt.Errorf("%w: overlay packed max stride is zero", ErrInvalidLimits)
	case l.OverlayMaxStridePlanar == 0:
		return fmt.Errorf("%w: overlay planar max stride is zero", ErrInvalidLimits)
	case l.OverlayMaxWidth <= 1:
		return fmt.Errorf("%w: overlay max width %d", ErrInvalidLimits, l.OverlayMaxWidth)
	case l.OverlayMaxHeight <= 1:
		return fmt.Errorf("%w: overlay max height %d", ErrInvalidLimits, l.OverlayMaxHeight)
	case l.OverlayRotatedScaleLimit <= 0:
		return fmt.Errorf("%w: overlay rotated scale limit %d", ErrInvalidLimits, l.OverlayRotatedScaleLimit)
	}
	return nil
}
