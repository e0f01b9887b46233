package hwplane

import (
	"fmt"
	"strings"

	"github.com/gogpu/gputypes"
)

// PixelFormat identifies a buffer memory layout and color encoding.
// Values match the platform graphics-buffer format constants; vendor YUV
// layouts use their fourcc or codec color-format codes.
type PixelFormat uint32

const (
	// FormatRGBA8888 is 32-bit RGBA, 8 bits per channel.
	FormatRGBA8888 PixelFormat = 0x1

	// FormatRGBX8888 is 32-bit RGB with an ignored fourth byte.
	FormatRGBX8888 PixelFormat = 0x2

	// FormatRGB888 is packed 24-bit RGB. No plane scans it out.
	FormatRGB888 PixelFormat = 0x3

	// FormatRGB565 is 16-bit RGB (5-6-5).
	FormatRGB565 PixelFormat = 0x4

	// FormatBGRA8888 is 32-bit BGRA, 8 bits per channel.
	FormatBGRA8888 PixelFormat = 0x5

	// FormatNV21 is semi-planar 4:2:0 YCrCb. No plane scans it out.
	FormatNV21 PixelFormat = 0x11

	// FormatBGRX8888 is 32-bit BGR with an ignored fourth byte.
	FormatBGRX8888 PixelFormat = 0x1FF

	// FormatYV12 is planar 4:2:0 YCrCb (Y, then V, then U).
	FormatYV12 PixelFormat = 0x32315659

	// FormatI420 is planar 4:2:0 YCbCr (Y, then U, then V).
	FormatI420 PixelFormat = 0x30323449

	// FormatNV12 is semi-planar 4:2:0 YCbCr with interleaved UV.
	FormatNV12 PixelFormat = 0x3231564E

	// FormatYUY2 is packed 4:2:2 in Y0 U Y1 V order.
	FormatYUY2 PixelFormat = 0x32595559

	// FormatUYVY is packed 4:2:2 in U Y0 V Y1 order.
	FormatUYVY PixelFormat = 0x59565955

	// FormatYUV420PackedSemiPlanar is the video decoder's linear
	// semi-planar 4:2:0 output.
	FormatYUV420PackedSemiPlanar PixelFormat = 0x7FA00E00

	// FormatYUV420PackedSemiPlanarTiled is the video decoder's tiled
	// semi-planar 4:2:0 output.
	FormatYUV420PackedSemiPlanarTiled PixelFormat = 0x7FA00F00
)

// Layout describes how a pixel format arranges its samples in memory.
type Layout uint8

const (
	// LayoutUnknown is reported for unrecognized formats.
	LayoutUnknown Layout = iota

	// LayoutRGB is a single plane of packed RGB(A) pixels.
	LayoutRGB

	// LayoutYUVPacked is a single plane of interleaved 4:2:2 YUV.
	LayoutYUVPacked

	// LayoutYUVPlanar keeps Y, U and V in separate planes.
	LayoutYUVPlanar

	// LayoutYUVSemiPlanar keeps Y in one plane and interleaved UV in another.
	LayoutYUVSemiPlanar
)

// String returns the layout name.
func (l Layout) String() string {
	switch l {
	case LayoutRGB:
		return "RGB"
	case LayoutYUVPacked:
		return "YUVPacked"
	case LayoutYUVPlanar:
		return "YUVPlanar"
	case LayoutYUVSemiPlanar:
		return "YUVSemiPlanar"
	default:
		return "Unknown"
	}
}

// FormatInfo contains metadata about a pixel format.
type FormatInfo struct {
	// Name is the canonical format name.
	Name string

	// Layout is the memory arrangement.
	Layout Layout

	// BitsPerPixel is the average storage cost per pixel across all planes.
	BitsPerPixel int

	// HasAlpha indicates if the format carries an alpha channel.
	HasAlpha bool

	// Tiled indicates a tiled (non-linear) memory arrangement.
	Tiled bool

	// TextureFormat is the GPU texture format a compositor can sample the
	// buffer as directly, or TextureFormatUndefined when the buffer needs
	// a conversion pass first.
	TextureFormat gputypes.TextureFormat
}

// formatInfoTable contains metadata for each known format.
var formatInfoTable = map[PixelFormat]FormatInfo{
	FormatRGBA8888: {
		Name:          "RGBA_8888",
		Layout:        LayoutRGB,
		BitsPerPixel:  32,
		HasAlpha:      true,
		TextureFormat: gputypes.TextureFormatRGBA8Unorm,
	},
	FormatRGBX8888: {
		Name:          "RGBX_8888",
		Layout:        LayoutRGB,
		BitsPerPixel:  32,
		TextureFormat: gputypes.TextureFormatRGBA8Unorm,
	},
	FormatRGB888: {
		Name:          "RGB_888",
		Layout:        LayoutRGB,
		BitsPerPixel:  24,
		TextureFormat: gputypes.TextureFormatUndefined,
	},
	FormatRGB565: {
		Name:          "RGB_565",
		Layout:        LayoutRGB,
		BitsPerPixel:  16,
		TextureFormat: gputypes.TextureFormatUndefined,
	},
	FormatBGRA8888: {
		Name:          "BGRA_8888",
		Layout:        LayoutRGB,
		BitsPerPixel:  32,
		HasAlpha:      true,
		TextureFormat: gputypes.TextureFormatBGRA8Unorm,
	},
	FormatBGRX8888: {
		Name:          "BGRX_8888",
		Layout:        LayoutRGB,
		BitsPerPixel:  32,
		TextureFormat: gputypes.TextureFormatBGRA8Unorm,
	},
	FormatNV21: {
		Name:          "NV21",
		Layout:        LayoutYUVSemiPlanar,
		BitsPerPixel:  12,
		TextureFormat: gputypes.TextureFormatUndefined,
	},
	FormatYV12: {
		Name:          "YV12",
		Layout:        LayoutYUVPlanar,
		BitsPerPixel:  12,
		TextureFormat: gputypes.TextureFormatUndefined,
	},
	FormatI420: {
		Name:          "I420",
		Layout:        LayoutYUVPlanar,
		BitsPerPixel:  12,
		TextureFormat: gputypes.TextureFormatUndefined,
	},
	FormatNV12: {
		Name:          "NV12",
		Layout:        LayoutYUVSemiPlanar,
		BitsPerPixel:  12,
		TextureFormat: gputypes.TextureFormatUndefined,
	},
	FormatYUY2: {
		Name:          "YUY2",
		Layout:        LayoutYUVPacked,
		BitsPerPixel:  16,
		TextureFormat: gputypes.TextureFormatUndefined,
	},
	FormatUYVY: {
		Name:          "UYVY",
		Layout:        LayoutYUVPacked,
		BitsPerPixel:  16,
		TextureFormat: gputypes.TextureFormatUndefined,
	},
	FormatYUV420PackedSemiPlanar: {
		Name:          "YUV420PackedSemiPlanar",
		Layout:        LayoutYUVSemiPlanar,
		BitsPerPixel:  12,
		TextureFormat: gputypes.TextureFormatUndefined,
	},
	FormatYUV420PackedSemiPlanarTiled: {
		Name:          "YUV420PackedSemiPlanarTiled",
		Layout:        LayoutYUVSemiPlanar,
		BitsPerPixel:  12,
		Tiled:         true,
		TextureFormat: gputypes.TextureFormatUndefined,
	},
}

// Info returns the FormatInfo for this format.
// Unknown formats return the zero FormatInfo (LayoutUnknown).
func (f PixelFormat) Info() FormatInfo {
	return formatInfoTable[f]
}

// Known reports whether f is a recognized format.
func (f PixelFormat) Known() bool {
	_, ok := formatInfoTable[f]
	return ok
}

// Layout returns the memory layout of the format.
func (f PixelFormat) Layout() Layout {
	return f.Info().Layout
}

// IsYUV reports whether f stores YUV samples.
func (f PixelFormat) IsYUV() bool {
	switch f.Layout() {
	case LayoutYUVPacked, LayoutYUVPlanar, LayoutYUVSemiPlanar:
		return true
	default:
		return false
	}
}

// IsPackedYUV reports whether f is an interleaved 4:2:2 YUV format.
func (f PixelFormat) IsPackedYUV() bool {
	return f.Layout() == LayoutYUVPacked
}

// TextureFormat returns the GPU texture format for direct sampling.
func (f PixelFormat) TextureFormat() gputypes.TextureFormat {
	return f.Info().TextureFormat
}

// String returns the format name, or the hex code for unknown formats.
func (f PixelFormat) String() string {
	if info, ok := formatInfoTable[f]; ok {
		return info.Name
	}
	return fmt.Sprintf("PixelFormat(%#x)", uint32(f))
}

// ParsePixelFormat returns the format with the given name.
// Matching is case-insensitive and ignores '_' and '-'.
func ParsePixelFormat(s string) (PixelFormat, error) {
	want := normalizeFormatName(s)
	for f, info := range formatInfoTable {
		if normalizeFormatName(info.Name) == want {
			return f, nil
		}
	}
	return 0, fmt.Errorf("hwplane: unknown pixel format %q", s)
}

func normalizeFormatName(s string) string {
	return strings.ToLower(strings.NewReplacer("_", "", "-", "").Replace(s))
}
