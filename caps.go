package hwplane

// transformRule says which transforms a plane can apply to a format.
type transformRule uint8

const (
	// transformIdentityOnly rejects every rotation and flip.
	transformIdentityOnly transformRule = iota
	// transformAny accepts every transform value.
	transformAny
)

// strideRule selects which stride limit applies to a format.
type strideRule uint8

const (
	strideLinear strideRule = iota
	strideOverlayPacked
	strideOverlayPlanar
)

// formatCaps is the per-format row of a plane capability table.
type formatCaps struct {
	transform transformRule
	stride    strideRule
	// rot180Pending marks formats whose 180° rotation the hardware can do
	// but which is not enabled yet.
	rot180Pending bool
}

// planeCaps is the capability table of one plane class.
type planeCaps struct {
	formats    map[PixelFormat]formatCaps
	blends     map[BlendMode]bool
	transforms transformRule
	scaling    bool
}

// rgbPlaneCaps serves both primary and sprite planes.
var rgbPlaneCaps = planeCaps{
	formats: map[PixelFormat]formatCaps{
		FormatBGRA8888: {transform: transformIdentityOnly, stride: strideLinear},
		FormatBGRX8888: {transform: transformIdentityOnly, stride: strideLinear},
		FormatRGBA8888: {transform: transformIdentityOnly, stride: strideLinear},
		FormatRGBX8888: {transform: transformIdentityOnly, stride: strideLinear},
		FormatRGB565:   {transform: transformIdentityOnly, stride: strideLinear},
	},
	blends: map[BlendMode]bool{
		BlendNone:          true,
		BlendPremultiplied: true,
	},
	transforms: transformIdentityOnly,
	scaling:    false,
}

var overlayPlaneCaps = planeCaps{
	formats: map[PixelFormat]formatCaps{
		FormatI420: {transform: transformIdentityOnly, stride: strideOverlayPlanar, rot180Pending: true},
		FormatNV12: {transform: transformIdentityOnly, stride: strideOverlayPlanar, rot180Pending: true},
		FormatYUY2: {transform: transformIdentityOnly, stride: strideOverlayPacked, rot180Pending: true},
		FormatUYVY: {transform: transformIdentityOnly, stride: strideOverlayPacked, rot180Pending: true},

		FormatYV12:                        {transform: transformAny, stride: strideOverlayPlanar},
		FormatYUV420PackedSemiPlanar:      {transform: transformAny, stride: strideOverlayPlanar},
		FormatYUV420PackedSemiPlanarTiled: {transform: transformAny, stride: strideOverlayPlanar},
	},
	blends: map[BlendMode]bool{
		BlendNone: true,
	},
	transforms: transformAny,
	scaling:    true,
}

// planeCapsTable is indexed by PlaneClass.
var planeCapsTable = [planeClassCount]*planeCaps{
	PlaneSprite:  &rgbPlaneCaps,
	PlaneOverlay: &overlayPlaneCaps,
	PlanePrimary: &rgbPlaneCaps,
}

// capsFor returns the capability table of c, or nil for an invalid class.
func capsFor(c PlaneClass) *planeCaps {
	if !c.Valid() {
		return nil
	}
	return planeCapsTable[c]
}

// allows reports whether the rule accepts t.
func (r transformRule) allows(t Transform) bool {
	return r == transformAny || t.IsIdentity()
}

// limit returns the stride value the rule constrains and its maximum.
func (r strideRule) limit(l *Limits, s Stride) (stride, maxStride uint32) {
	switch r {
	case strideOverlayPacked:
		return s.Luma(), l.OverlayMaxStridePacked
	case strideOverlayPlanar:
		return s.Luma(), l.OverlayMaxStridePlanar
	default:
		return s.Linear(), l.PrimaryMaxStride
	}
}

// SupportedFormats returns the formats a plane class can scan out, in no
// particular order. It returns nil for an invalid class.
func SupportedFormats(c PlaneClass) []PixelFormat {
	caps := capsFor(c)
	if caps == nil {
		return nil
	}
	formats := make([]PixelFormat, 0, len(caps.formats))
	for f := range caps.formats {
		formats = append(formats, f)
	}
	return formats
}
