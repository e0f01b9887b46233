// Package hwplane decides whether a hardware display plane can present a
// layer directly, or whether the layer must be composited by the GPU.
//
// # Overview
//
// The plane-assignment stage of a display composer asks, for every layer and
// every plane class it is considering, five independent questions:
//
//   - Format: can the plane scan out this pixel format with this transform?
//   - Size: is the buffer stride within the plane's fetch limits?
//   - Blending: can the plane apply this blend mode?
//   - Scaling: can the plane resample the source crop into the display frame?
//   - Transform: can the plane rotate or flip at all?
//
// Each answer is a plain bool. A false answer means the layer falls back to
// GPU composition for that plane class.
//
// # Quick Start
//
//	import "github.com/gogpu/hwplane"
//
//	v := hwplane.New()
//	ok := v.IsFormatSupported(hwplane.PlaneOverlay, hwplane.FormatNV12, hwplane.TransformNone)
//
//	// Or run all five queries in order:
//	res := v.Check(hwplane.PlaneOverlay, hwplane.Candidate{...})
//	if !res.Supported() {
//	    target, _ := hwplane.FallbackTarget(cand)
//	    ...
//	}
//
// # Capability Tables
//
// The rules live in per-plane-class tables of supported formats, blend modes
// and transform rules. Primary and sprite planes share one table. Numeric
// limits (strides, overlay source size, rotated downscale factor) are kept in
// [Limits] and injected with [WithLimits]; the profile sub-package loads
// limits for other hardware generations.
//
// # Diagnostics
//
// Queries never return errors. Rejection reasons go to a [Reporter]
// (by default the package logger, see [SetLogger]) as [Diagnostic] values
// wrapping [ErrInvalidPlaneClass] or [ErrUnsupported].
//
// # Concurrency
//
// Validators hold no mutable state. All queries are safe to call
// concurrently without locking.
package hwplane
