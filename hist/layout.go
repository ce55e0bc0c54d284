package hist

import (
	"fmt"
	"unsafe"

	"github.com/arloliu/ihist/errs"
)

// Sample is the set of supported sample storage types.
type Sample interface {
	~uint8 | ~uint16
}

// SampleWidth returns the storage width of T in bits.
func SampleWidth[T Sample]() uint {
	var zero T
	return uint(unsafe.Sizeof(zero)) * 8
}

// Layout describes how samples are binned and grouped into pixels.
type Layout struct {
	// Bits is the number of significant bits; the histogram has 1<<Bits bins
	// per component.
	Bits uint
	// LoBit is the position of the lowest significant bit.
	LoBit uint
	// Stride is the number of samples per pixel.
	Stride int
	// Offsets are the positions, within a pixel, of the histogrammed samples.
	Offsets []int
	// HiPattern is the value the bits above LoBit+Bits must hold for a sample
	// to be counted. The default zero discards any sample with high bits set.
	HiPattern uint16
}

// Mono returns the layout of single-sample pixels with bits significant bits.
func Mono(bits uint) Layout {
	return Layout{Bits: bits, Stride: 1, Offsets: []int{0}}
}

// Interleaved returns the layout of stride-sample pixels histogramming the
// samples at offsets.
func Interleaved(bits uint, stride int, offsets ...int) Layout {
	return Layout{Bits: bits, Stride: stride, Offsets: offsets}
}

// NBins returns the number of bins per component.
func (l Layout) NBins() int {
	return 1 << l.Bits
}

// NComponents returns the number of histogrammed components.
func (l Layout) NComponents() int {
	return len(l.Offsets)
}

// HistLen returns the required histogram length.
func (l Layout) HistLen() int {
	return l.NComponents() << l.Bits
}

// Component returns the bins of component c within h.
func (l Layout) Component(h []uint32, c int) []uint32 {
	n := l.NBins()
	return h[c*n : (c+1)*n : (c+1)*n]
}

// filters reports whether samples of width-bit storage can carry high bits.
func (l Layout) filters(width uint) bool {
	return l.LoBit+l.Bits < width
}

// ValidateLayout checks l against storage type T.
func ValidateLayout[T Sample](l Layout) error {
	width := SampleWidth[T]()
	switch {
	case l.Bits == 0:
		return fmt.Errorf("%w: zero bits", errs.ErrInvalidLayout)
	case l.LoBit+l.Bits > width:
		return fmt.Errorf("%w: bits %d at offset %d exceed %d-bit samples",
			errs.ErrInvalidLayout, l.Bits, l.LoBit, width)
	case l.Stride < 1:
		return fmt.Errorf("%w: stride %d", errs.ErrInvalidLayout, l.Stride)
	case len(l.Offsets) == 0:
		return fmt.Errorf("%w: no components", errs.ErrInvalidLayout)
	}

	for _, off := range l.Offsets {
		if off < 0 || off >= l.Stride {
			return fmt.Errorf("%w: component offset %d not in [0, %d)",
				errs.ErrInvalidLayout, off, l.Stride)
		}
	}

	if l.HiPattern != 0 {
		hiBits := width - l.LoBit - l.Bits
		if hiBits == 0 || uint(l.HiPattern)>>hiBits != 0 {
			return fmt.Errorf("%w: high-bit pattern 0x%x does not fit %d high bits",
				errs.ErrInvalidLayout, l.HiPattern, hiBits)
		}
	}

	return nil
}

// Grid is the logical sample grid of a 2D image.
type Grid struct {
	// Width is the row stride in pixels.
	Width int
	// Height is the number of rows.
	Height int
	// MaskStride is the row stride of the mask in pixels. Zero means the mask
	// shares Width.
	MaskStride int
}

func (g Grid) maskStride() int {
	if g.MaskStride > 0 {
		return g.MaskStride
	}

	return g.Width
}

// ROI is a rectangle within a Grid.
type ROI struct {
	X, Y, Width, Height int
}

// Full returns the ROI covering all of g.
func (g Grid) Full() ROI {
	return ROI{Width: g.Width, Height: g.Height}
}

// Empty reports whether r has zero area.
func (r ROI) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Pixels returns the area of r.
func (r ROI) Pixels() int {
	if r.Empty() {
		return 0
	}

	return r.Width * r.Height
}

// Contains reports whether r lies within g.
func (g Grid) Contains(r ROI) bool {
	return r.X >= 0 && r.Y >= 0 && r.Width >= 0 && r.Height >= 0 &&
		r.X+r.Width <= g.Width && r.Y+r.Height <= g.Height
}

func maskAt(mask []uint8, from int) []uint8 {
	if mask == nil {
		return nil
	}

	return mask[from:]
}
