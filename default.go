package hwplane

import (
	"image"
	"sync"
)

var defaultValidator = sync.OnceValue(func() *Validator { return New() })

// Default returns the shared validator with DefaultLimits that reports to
// the package logger.
func Default() *Validator {
	return defaultValidator()
}

// IsFormatSupported calls Default().IsFormatSupported.
func IsFormatSupported(c PlaneClass, format PixelFormat, t Transform) bool {
	return Default().IsFormatSupported(c, format, t)
}

// IsSizeSupported calls Default().IsSizeSupported.
func IsSizeSupported(c PlaneClass, format PixelFormat, width, height uint32, s Stride) bool {
	return Default().IsSizeSupported(c, format, width, height, s)
}

// IsBlendingSupported calls Default().IsBlendingSupported.
func IsBlendingSupported(c PlaneClass, b BlendMode, planeAlpha uint8) bool {
	return Default().IsBlendingSupported(c, b, planeAlpha)
}

// IsScalingSupported calls Default().IsScalingSupported.
func IsScalingSupported(c PlaneClass, src FRect, dst image.Rectangle, t Transform) bool {
	return Default().IsScalingSupported(c, src, dst, t)
}

// IsTransformSupported calls Default().IsTransformSupported.
func IsTransformSupported(c PlaneClass, t Transform) bool {
	return Default().IsTransformSupported(c, t)
}
