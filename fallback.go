package hwplane

import "github.com/gogpu/gputypes"

// GPUTarget describes how the GPU compositor should draw a layer that no
// plane accepted.
type GPUTarget struct {
	// Format is the texture format to sample the buffer as. It is
	// TextureFormatUndefined when the buffer must be converted first
	// (YUV and 16/24-bit RGB sources).
	Format gputypes.TextureFormat

	// Blend is the blend state for the draw, or nil for opaque layers.
	Blend *gputypes.BlendState

	// Size is the destination extent in device pixels.
	Size gputypes.Extent3D
}

// NeedsConversion reports whether the source must be converted before the
// compositor can sample it.
func (t GPUTarget) NeedsConversion() bool {
	return t.Format == gputypes.TextureFormatUndefined
}

// FallbackTarget returns the GPU composition description for cand.
// ok is false when the blend mode is unknown to the compositor too, or when
// the destination rectangle is empty.
func FallbackTarget(cand Candidate) (target GPUTarget, ok bool) {
	blend, ok := cand.Blend.GPUBlendState()
	if !ok {
		return GPUTarget{}, false
	}
	w, h := cand.Display.Dx(), cand.Display.Dy()
	if w <= 0 || h <= 0 {
		return GPUTarget{}, false
	}
	return GPUTarget{
		Format: cand.Format.TextureFormat(),
		Blend:  blend,
		Size: gputypes.Extent3D{
			Width:              uint32(w),
			Height:             uint32(h),
			DepthOrArrayLayers: 1,
		},
	}, true
}
