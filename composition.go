package hwplane

import "image"

// CompositionPath is the route a layer takes to the screen.
type CompositionPath int

const (
	// PathPlane presents the layer directly on a hardware plane.
	PathPlane CompositionPath = iota

	// PathGPU composites the layer with the GPU (or software) renderer
	// into the framebuffer.
	PathGPU
)

// String returns the composition path name.
func (p CompositionPath) String() string {
	switch p {
	case PathPlane:
		return "Plane"
	case PathGPU:
		return "GPU"
	default:
		return "Unknown"
	}
}

// Candidate holds every per-layer input the five queries need.
type Candidate struct {
	Format     PixelFormat
	Width      uint32
	Height     uint32
	Stride     Stride
	Blend      BlendMode
	PlaneAlpha uint8
	Source     FRect
	Display    image.Rectangle
	Transform  Transform
}

// Result is the outcome of Check.
type Result struct {
	Path CompositionPath

	// Rejected is the first query that answered false. It is meaningful
	// only when Path is PathGPU.
	Rejected Query
}

// Supported reports whether the candidate can use the plane.
func (r Result) Supported() bool {
	return r.Path == PathPlane
}

// Check runs the five queries for one (candidate, plane class) pair in the
// usual order: format, size, blending, scaling, transform. It stops at the
// first rejection. Check does not pick a plane; the assignment component
// calls it once per plane class it is considering.
func (v *Validator) Check(c PlaneClass, cand Candidate) Result {
	switch {
	case !v.IsFormatSupported(c, cand.Format, cand.Transform):
		return Result{Path: PathGPU, Rejected: QueryFormat}
	case !v.IsSizeSupported(c, cand.Format, cand.Width, cand.Height, cand.Stride):
		return Result{Path: PathGPU, Rejected: QuerySize}
	case !v.IsBlendingSupported(c, cand.Blend, cand.PlaneAlpha):
		return Result{Path: PathGPU, Rejected: QueryBlending}
	case !v.IsScalingSupported(c, cand.Source, cand.Display, cand.Transform):
		return Result{Path: PathGPU, Rejected: QueryScaling}
	case !v.IsTransformSupported(c, cand.Transform):
		return Result{Path: PathGPU, Rejected: QueryTransform}
	}
	return Result{Path: PathPlane}
}
