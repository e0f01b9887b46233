// Command planecheck reports whether a layer can be presented on each
// hardware plane class, and why not.
//
// Usage:
//
//	planecheck -format nv12 -src 0,0,1920,1080 -dst 0,0,1280,720 -stride 2048
//	planecheck -plane primary -format rgba_8888 -blend premult -transform rot90
package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/gogpu/hwplane"
	"github.com/gogpu/hwplane/profile"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "planecheck:", err)
		os.Exit(2)
	}
}

type options struct {
	config    string
	profile   string
	plane     string
	format    string
	transform string
	blend     string
	alpha     uint
	width     uint
	height    uint
	stride    uint
	chroma    uint
	src       string
	dst       string
}

func parseFlags(args []string, stderr io.Writer) (*options, error) {
	fs := flag.NewFlagSet("planecheck", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var o options
	fs.StringVar(&o.config, "config", "", "config file (yaml, json or toml)")
	fs.StringVar(&o.profile, "profile", "", "hardware profile name or file (overrides config)")
	fs.StringVar(&o.plane, "plane", "", "plane class to check (default: all)")
	fs.StringVar(&o.format, "format", "rgba_8888", "pixel format")
	fs.StringVar(&o.transform, "transform", "none", "transform (none, flipH, flipV, rot90, rot180, rot270, ...)")
	fs.StringVar(&o.blend, "blend", "none", "blend mode (none, premult)")
	fs.UintVar(&o.alpha, "alpha", 0xff, "plane alpha")
	fs.UintVar(&o.width, "width", 0, "buffer width (default: source width)")
	fs.UintVar(&o.height, "height", 0, "buffer height (default: source height)")
	fs.UintVar(&o.stride, "stride", 0, "linear or luma stride in bytes (default: derived from width)")
	fs.UintVar(&o.chroma, "chroma-stride", 0, "chroma stride in bytes for planar formats")
	fs.StringVar(&o.src, "src", "0,0,1920,1080", "source crop left,top,right,bottom")
	fs.StringVar(&o.dst, "dst", "", "display frame left,top,right,bottom (default: source size)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if o.alpha > 0xff {
		return nil, fmt.Errorf("alpha %d out of range", o.alpha)
	}
	return &o, nil
}

func run(args []string, stdout, stderr io.Writer) error {
	o, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	cfg, err := LoadConfig(o.config)
	if err != nil {
		return err
	}
	if o.profile != "" {
		cfg.Profile = o.profile
	}
	logger := SetupLogger(cfg, stderr)

	prof, err := profile.Resolve(cfg.Profile)
	if err != nil {
		return err
	}

	planes := []hwplane.PlaneClass{hwplane.PlanePrimary, hwplane.PlaneSprite, hwplane.PlaneOverlay}
	if o.plane != "" {
		c, err := hwplane.ParsePlaneClass(o.plane)
		if err != nil {
			return err
		}
		planes = []hwplane.PlaneClass{c}
	}

	cand, err := buildCandidate(o)
	if err != nil {
		return err
	}

	var reasons []string
	v, err := prof.Validator(hwplane.WithReporter(hwplane.ReporterFunc(func(d hwplane.Diagnostic) {
		reasons = append(reasons, d.Err.Error())
		logger.Log(context.Background(), d.Level, d.Err.Error(), "query", d.Query.String(), "plane", d.Plane.String())
	})))
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "profile %s: %s %dx%d stride %d, %s, %s, src %v dst %v\n",
		prof.Name, cand.Format, cand.Width, cand.Height, cand.Stride.Linear(),
		cand.Blend, cand.Transform, cand.Source.Rect(), cand.Display)

	for _, c := range planes {
		reasons = reasons[:0]
		res := v.Check(c, cand)
		if res.Supported() {
			fmt.Fprintf(stdout, "%-8s plane\n", c)
			continue
		}
		fmt.Fprintf(stdout, "%-8s gpu (%s)", c, res.Rejected)
		if len(reasons) > 0 {
			fmt.Fprintf(stdout, ": %s", strings.Join(reasons, "; "))
		}
		fmt.Fprintln(stdout)
	}

	if target, ok := hwplane.FallbackTarget(cand); ok {
		conv := ""
		if target.NeedsConversion() {
			conv = ", needs conversion"
		}
		fmt.Fprintf(stdout, "fallback texture %v %dx%d, blended=%t%s\n",
			target.Format, target.Size.Width, target.Size.Height, target.Blend != nil, conv)
	}
	return nil
}

func buildCandidate(o *options) (hwplane.Candidate, error) {
	var cand hwplane.Candidate

	format, err := hwplane.ParsePixelFormat(o.format)
	if err != nil {
		return cand, err
	}
	tr, err := hwplane.ParseTransform(o.transform)
	if err != nil {
		return cand, err
	}
	blend, err := hwplane.ParseBlendMode(o.blend)
	if err != nil {
		return cand, err
	}
	src, err := parseEdges(o.src)
	if err != nil {
		return cand, fmt.Errorf("-src: %w", err)
	}
	source := hwplane.FRect{
		Left:   float32(src[0]),
		Top:    float32(src[1]),
		Right:  float32(src[2]),
		Bottom: float32(src[3]),
	}

	dst := image.Rect(0, 0, int(source.Right-source.Left), int(source.Bottom-source.Top))
	if o.dst != "" {
		d, err := parseEdges(o.dst)
		if err != nil {
			return cand, fmt.Errorf("-dst: %w", err)
		}
		dst = image.Rectangle{Min: image.Pt(int(d[0]), int(d[1])), Max: image.Pt(int(d[2]), int(d[3]))}
	}

	width, height := uint32(o.width), uint32(o.height)
	if width == 0 {
		width = uint32(max(source.Right, 0))
	}
	if height == 0 {
		height = uint32(max(source.Bottom, 0))
	}

	var stride hwplane.Stride
	row := uint32(o.stride)
	if format.IsYUV() && !format.IsPackedYUV() {
		if row == 0 {
			row = width
		}
		stride = hwplane.PlanarStride(row, uint32(o.chroma))
	} else {
		if row == 0 {
			row = width * uint32(format.Info().BitsPerPixel) / 8
		}
		stride = hwplane.LinearStride(row)
	}

	return hwplane.Candidate{
		Format:     format,
		Width:      width,
		Height:     height,
		Stride:     stride,
		Blend:      blend,
		PlaneAlpha: uint8(o.alpha),
		Source:     source,
		Display:    dst,
		Transform:  tr,
	}, nil
}

// parseEdges parses "left,top,right,bottom".
func parseEdges(s string) ([4]float64, error) {
	var edges [4]float64
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return edges, fmt.Errorf("want left,top,right,bottom, got %q", s)
	}
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return edges, fmt.Errorf("edge %d: %w", i, err)
		}
		edges[i] = f
	}
	return edges, nil
}
