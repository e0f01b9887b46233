package hwplane

// Stride carries the row pitch of a buffer. RGB and packed formats use a
// single linear stride; planar and semi-planar YUV formats carry a luma and
// a chroma stride. Only the linear and luma strides are constrained by the
// plane rules.
//
// The linear and luma strides share storage: Linear on a planar stride
// reports its luma stride and Luma on a linear stride reports the linear
// stride. This mirrors how buffer descriptors hand strides to the composer.
type Stride struct {
	row    uint32
	chroma uint32
	planar bool
}

// LinearStride returns a stride for RGB and packed formats.
func LinearStride(bytes uint32) Stride {
	return Stride{row: bytes}
}

// PlanarStride returns a stride for planar and semi-planar YUV formats.
func PlanarStride(luma, chroma uint32) Stride {
	return Stride{row: luma, chroma: chroma, planar: true}
}

// IsPlanar reports whether s was built with PlanarStride.
func (s Stride) IsPlanar() bool { return s.planar }

// Linear returns the linear row stride in bytes.
func (s Stride) Linear() uint32 { return s.row }

// Luma returns the luma-plane row stride in bytes.
func (s Stride) Luma() uint32 { return s.row }

// Chroma returns the chroma-plane row stride in bytes, or 0 for linear strides.
func (s Stride) Chroma() uint32 { return s.chroma }
