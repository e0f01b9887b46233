package hwplane

import (
	"fmt"
	"strings"

	"github.com/gogpu/gputypes"
)

// BlendMode controls how a plane combines with the content beneath it.
// Values match the composer's blending constants.
type BlendMode uint32

const (
	// BlendNone is opaque: the source replaces the destination.
	BlendNone BlendMode = 0x0100

	// BlendPremultiplied is a premultiplied-alpha source-over blend.
	BlendPremultiplied BlendMode = 0x0105
)

// String returns the blend mode name.
func (b BlendMode) String() string {
	switch b {
	case BlendNone:
		return "None"
	case BlendPremultiplied:
		return "Premultiplied"
	default:
		return fmt.Sprintf("BlendMode(%#x)", uint32(b))
	}
}

// GPUBlendState returns the blend state a GPU compositor uses for b.
// BlendNone yields nil (blending disabled). ok is false for unknown modes.
func (b BlendMode) GPUBlendState() (state *gputypes.BlendState, ok bool) {
	switch b {
	case BlendNone:
		return nil, true
	case BlendPremultiplied:
		premul := gputypes.BlendStatePremultiplied()
		return &premul, true
	default:
		return nil, false
	}
}

// ParseBlendMode returns the blend mode with the given name.
// Matching is case-insensitive; "premult" is accepted as a short form.
func ParseBlendMode(s string) (BlendMode, error) {
	switch strings.ToLower(s) {
	case "none", "":
		return BlendNone, nil
	case "premultiplied", "premult":
		return BlendPremultiplied, nil
	}
	return 0, fmt.Errorf("hwplane: unknown blend mode %q", s)
}
