package hwplane

import (
	"image"
	"log/slog"
)

// Validator answers whether a hardware plane class can present a layer
// directly. A Validator is immutable after New and safe for concurrent use
// by any number of goroutines; every query is a pure function of its
// arguments and the validator's limits.
//
// Queries answer false both for unsupported configurations and for invalid
// plane classes. The accompanying Diagnostic, if a reporter is listening,
// tells the two apart.
type Validator struct {
	limits   Limits
	reporter Reporter
}

// New creates a validator. With no options it applies DefaultLimits and
// reports diagnostics to the package logger (see SetLogger).
func New(opts ...Option) *Validator {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.reporter == nil {
		o.reporter = slogReporter{}
	}
	if err := o.limits.Validate(); err != nil {
		Logger().Warn("hwplane: using default limits", "err", err)
		o.limits = DefaultLimits()
	}
	return &Validator{limits: o.limits, reporter: o.reporter}
}

// NewWithLimits creates a validator for l, failing if l is invalid.
func NewWithLimits(l Limits, opts ...Option) (*Validator, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}
	return New(append(opts, WithLimits(l))...), nil
}

// Limits returns the hardware limits the validator enforces.
func (v *Validator) Limits() Limits {
	return v.limits
}

// IsFormatSupported reports whether plane c can scan out format with the
// given transform applied.
//
// Primary and sprite planes take packed RGB formats with the identity
// transform only. Overlay formats come in two tiers: I420, NV12 and the packed
// 4:2:2 formats accept only the identity transform, while YV12 and the
// decoder's semi-planar layouts accept any transform.
func (v *Validator) IsFormatSupported(c PlaneClass, format PixelFormat, t Transform) bool {
	caps := capsFor(c)
	if caps == nil {
		v.reportInvalidPlane(QueryFormat, c)
		return false
	}
	fc, ok := caps.formats[format]
	if !ok {
		v.reject(QueryFormat, c, LevelVerbose, "unsupported format",
			slog.String("format", format.String()))
		return false
	}
	if fc.rot180Pending && t == TransformRot180 {
		v.reject(QueryFormat, c, slog.LevelWarn, "180 degree rotation is not supported yet",
			slog.String("format", format.String()))
		return false
	}
	if !fc.transform.allows(t) {
		v.reject(QueryFormat, c, LevelVerbose, "transform not supported for format",
			slog.String("format", format.String()), slog.String("transform", t.String()))
		return false
	}
	return true
}

// IsSizeSupported reports whether plane c can fetch a width x height buffer
// of the given format and stride. Only the stride is bounded: the linear
// stride for primary and sprite planes, the luma stride for overlays, with a
// tighter bound for packed 4:2:2 than for planar 4:2:0 sources.
//
// Format membership is checked again here so the answer does not depend on
// IsFormatSupported having been called first.
func (v *Validator) IsSizeSupported(c PlaneClass, format PixelFormat, width, height uint32, s Stride) bool {
	caps := capsFor(c)
	if caps == nil {
		v.reportInvalidPlane(QuerySize, c)
		return false
	}
	fc, ok := caps.formats[format]
	if !ok {
		v.reject(QuerySize, c, LevelVerbose, "unsupported format",
			slog.String("format", format.String()))
		return false
	}
	stride, maxStride := fc.stride.limit(&v.limits, s)
	if stride > maxStride {
		v.reject(QuerySize, c, LevelVerbose, "stride too large",
			slog.String("format", format.String()),
			slog.Any("width", width), slog.Any("height", height),
			slog.Any("stride", stride), slog.Any("max_stride", maxStride))
		return false
	}
	return true
}

// IsBlendingSupported reports whether plane c can apply blend mode b.
// Primary and sprite planes support BlendNone and BlendPremultiplied;
// overlays support BlendNone only.
//
// planeAlpha does not affect the answer on current hardware.
func (v *Validator) IsBlendingSupported(c PlaneClass, b BlendMode, planeAlpha uint8) bool {
	caps := capsFor(c)
	if caps == nil {
		v.reportInvalidPlane(QueryBlending, c)
		return false
	}
	if !caps.blends[b] {
		v.reject(QueryBlending, c, LevelVerbose, "unsupported blending",
			slog.String("blending", b.String()), slog.Any("plane_alpha", planeAlpha))
		return false
	}
	return true
}

// IsScalingSupported reports whether plane c can present the src crop in
// the dst rectangle with transform t applied.
//
// Source edges are truncated toward zero before the size is taken. Primary
// and sprite planes have no scaler, so the sizes must match exactly. Overlays
// reject sources at or above the maximum overlay size, and reject any
// transformed source that is downscaled by the rotated-scale limit or more;
// for quarter turns the source axes are swapped before the scale factors are
// computed. Empty or inverted rectangles are never supported.
func (v *Validator) IsScalingSupported(c PlaneClass, src FRect, dst image.Rectangle, t Transform) bool {
	caps := capsFor(c)
	if caps == nil {
		v.reportInvalidPlane(QueryScaling, c)
		return false
	}

	srcW, srcH := src.truncatedSize()
	dstW, dstH := dst.Max.X-dst.Min.X, dst.Max.Y-dst.Min.Y
	if srcW <= 0 || srcH <= 0 || dstW <= 0 || dstH <= 0 {
		v.reject(QueryScaling, c, LevelVerbose, "degenerate rectangle",
			slog.Int("src_w", srcW), slog.Int("src_h", srcH),
			slog.Int("dst_w", dstW), slog.Int("dst_h", dstH))
		return false
	}

	if !caps.scaling {
		if srcW != dstW || srcH != dstH {
			v.reject(QueryScaling, c, LevelVerbose, "scaling not supported",
				slog.Int("src_w", srcW), slog.Int("src_h", srcH),
				slog.Int("dst_w", dstW), slog.Int("dst_h", dstH))
			return false
		}
		return true
	}

	if srcW > v.limits.OverlayMaxWidth-1 || srcH > v.limits.OverlayMaxHeight-1 {
		v.reject(QueryScaling, c, LevelVerbose, "source too large",
			slog.Int("src_w", srcW), slog.Int("src_h", srcH))
		return false
	}

	if t.SwapsAxes() {
		srcW, srcH = srcH, srcW
	}
	scaleX := srcW / dstW
	scaleY := srcH / dstH
	limit := v.limits.OverlayRotatedScaleLimit
	if !t.IsIdentity() && (scaleX >= limit || scaleY >= limit) {
		v.reject(QueryScaling, c, slog.LevelDebug, "rotation with downscaling, fall back to GPU",
			slog.String("transform", t.String()),
			slog.Int("scale_x", scaleX), slog.Int("scale_y", scaleY))
		return false
	}
	return true
}

// IsTransformSupported reports whether plane c can apply t at all.
// Overlays accept every value; primary and sprite planes only the identity.
//
// This is coarser than the per-format transform rule inside
// IsFormatSupported, and callers need both: an overlay accepts Rot90 here
// while rejecting it for NV12 there.
func (v *Validator) IsTransformSupported(c PlaneClass, t Transform) bool {
	caps := capsFor(c)
	if caps == nil {
		v.reportInvalidPlane(QueryTransform, c)
		return false
	}
	if !caps.transforms.allows(t) {
		v.reject(QueryTransform, c, LevelVerbose, "transform not supported",
			slog.String("transform", t.String()))
		return false
	}
	return true
}
