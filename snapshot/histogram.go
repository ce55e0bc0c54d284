package snapshot

import (
	"fmt"

	"github.com/arloliu/ihist/errs"
	"github.com/arloliu/ihist/format"
	"github.com/arloliu/ihist/section"
)

// Histogram is a dense histogram with its layout.
type Histogram struct {
	// Sample is the storage type of the histogrammed samples.
	Sample format.SampleType
	// Bits is the number of significant bits; each component has 1<<Bits bins.
	Bits uint
	// LoBit is the position of the lowest significant bit.
	LoBit uint
	// Components is the number of histogrammed components.
	Components int
	// Counts holds Components blocks of 1<<Bits counters.
	Counts []uint32
}

// NBins returns the number of bins per component.
func (h Histogram) NBins() int {
	return 1 << h.Bits
}

// Component returns the bins of component i.
func (h Histogram) Component(i int) []uint32 {
	n := h.NBins()
	return h.Counts[i*n : (i+1)*n : (i+1)*n]
}

// Total returns the number of samples counted in component i.
func (h Histogram) Total(i int) uint64 {
	var sum uint64
	for _, c := range h.Component(i) {
		sum += uint64(c)
	}

	return sum
}

// Validate checks that the layout is representable and matches Counts.
func (h Histogram) Validate() error {
	width := h.Sample.Width()
	switch {
	case width == 0:
		return fmt.Errorf("%w: unknown sample type %d", errs.ErrInvalidLayout, h.Sample)
	case h.Bits == 0 || h.Bits+h.LoBit > width:
		return fmt.Errorf("%w: %d bits at offset %d in %s samples", errs.ErrInvalidBits, h.Bits, h.LoBit, h.Sample)
	case h.Components < 1 || h.Components > section.MaxComponents:
		return fmt.Errorf("%w: %d components", errs.ErrInvalidComponent, h.Components)
	}

	want := h.Components << h.Bits
	if len(h.Counts) != want {
		return fmt.Errorf("%w: %d counters, layout needs %d", errs.ErrInvalidLayout, len(h.Counts), want)
	}
	if uint64(want)*4 > section.MaxPayloadLength {
		return fmt.Errorf("%w: %d counters exceed the snapshot payload limit", errs.ErrUnsupported, want)
	}

	return nil
}
