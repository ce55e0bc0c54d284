// Package ihist computes per-bin histograms of 8-bit and 16-bit images.
//
// Histogram8 and Histogram16 validate a request, pick tuning parameters for
// the pixel format and run the striped counting core from package hist, on
// multiple goroutines when the region is large enough.
//
// # Basic Usage
//
// Histogram of a grayscale image:
//
//	h, err := ihist.Histogram8(img, width, height)
//	// h[v] is the number of pixels with value v
//
// Histogram of the RGB components of a 12-bit RGBX image inside a region,
// restricted to masked pixels:
//
//	h, err := ihist.Histogram16(img, width, height,
//	    ihist.WithComponents(4),
//	    ihist.WithSelect(0, 1, 2),
//	    ihist.WithBits(12),
//	    ihist.WithROI(x, y, w, h),
//	    ihist.WithMask(mask, 0),
//	)
//	// h[c<<12 + v] counts value v of component c
//
// Counting never fails once a request validates. Validation errors wrap the
// sentinels of package errs.
package ihist

import (
	"fmt"

	"github.com/arloliu/ihist/errs"
	"github.com/arloliu/ihist/hist"
	"github.com/arloliu/ihist/internal/options"
	"github.com/arloliu/ihist/tuning"
)

// Histogram8 histograms an 8-bit image of width by height pixels.
//
// The result holds 1<<bits counters per selected component, components
// back to back. It is the WithOutput buffer when one is given.
func Histogram8(image []uint8, width, height int, opts ...Option) ([]uint32, error) {
	return histogram(image, width, height, opts)
}

// Histogram16 histograms a 16-bit image of width by height pixels.
func Histogram16(image []uint16, width, height int, opts ...Option) ([]uint32, error) {
	return histogram(image, width, height, opts)
}

// request is a validated histogram request.
type request struct {
	layout hist.Layout
	grid   hist.Grid
	roi    hist.ROI
	offset int // first pixel of the ROI
	mask   []uint8
	out    []uint32
}

func histogram[T hist.Sample](image []T, width, height int, opts []Option) ([]uint32, error) {
	cfg := newConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	req, err := validate[T](cfg, len(image), width, height)
	if err != nil {
		return nil, err
	}

	if !cfg.accumulate {
		clear(req.out)
	}
	if req.roi.Empty() {
		return req.out, nil
	}

	table := cfg.table
	if table == nil {
		table = tuning.Default()
	}
	l := req.layout
	p := table.LookupLayout(hist.SampleWidth[T](), l.Bits, l.Stride, l.Offsets, req.mask != nil)
	if err := p.Validate(); err != nil {
		return nil, err
	}

	data := image[req.offset*l.Stride:]
	if cfg.parallel && req.roi.Pixels() >= table.ParallelThreshold {
		r := hist.Reducer{Cores: cfg.cores}
		hist.StripedXYMT(r, p, l, data, req.mask, req.grid, req.roi, req.out)
	} else {
		hist.StripedXY(p, l, data, req.mask, req.grid, req.roi, req.out)
	}

	return req.out, nil
}

func validate[T hist.Sample](cfg *Config, imageLen, width, height int) (request, error) {
	var req request

	if width < 0 || height < 0 {
		return req, fmt.Errorf("%w: %dx%d", errs.ErrInvalidDimensions, width, height)
	}
	stride := cfg.imageStride
	if stride == 0 {
		stride = width
	}
	if stride < width {
		return req, fmt.Errorf("%w: row stride %d less than width %d", errs.ErrInvalidDimensions, stride, width)
	}

	sampleWidth := hist.SampleWidth[T]()
	bits := sampleWidth
	if cfg.bitsSet {
		bits = cfg.bits
	}
	if bits == 0 || bits > sampleWidth {
		return req, fmt.Errorf("%w: %d bits in %d-bit samples", errs.ErrInvalidBits, bits, sampleWidth)
	}

	if cfg.components < 1 {
		return req, fmt.Errorf("%w: %d components per pixel", errs.ErrInvalidComponent, cfg.components)
	}
	offsets := cfg.selected
	if offsets == nil {
		offsets = make([]int, cfg.components)
		for i := range offsets {
			offsets[i] = i
		}
	}
	if len(offsets) == 0 {
		return req, fmt.Errorf("%w: empty selection", errs.ErrInvalidComponent)
	}
	maxOffset := 0
	for _, off := range offsets {
		if off < 0 || off >= cfg.components {
			return req, fmt.Errorf("%w: component %d of %d", errs.ErrInvalidComponent, off, cfg.components)
		}
		maxOffset = max(maxOffset, off)
	}
	req.layout = hist.Layout{Bits: bits, Stride: cfg.components, Offsets: offsets}

	roi := hist.ROI{Width: width, Height: height}
	if cfg.hasROI {
		roi = cfg.roi
	}
	if !(hist.Grid{Width: width, Height: height}).Contains(roi) {
		return req, fmt.Errorf("%w: roi %+v in %dx%d image", errs.ErrROIOutOfBounds, roi, width, height)
	}

	histLen := req.layout.HistLen()
	req.out = cfg.out
	if req.out == nil {
		req.out = make([]uint32, histLen)
	} else if len(req.out) < histLen {
		return req, fmt.Errorf("%w: %d counters, need %d", errs.ErrOutputTooSmall, len(req.out), histLen)
	}
	req.out = req.out[:histLen]

	// The grid starts at the ROI origin so that the mask, which is relative
	// to it, shares the core's coordinates.
	req.offset = roi.Y*stride + roi.X
	req.grid = hist.Grid{Width: stride, Height: roi.Height}
	req.roi = hist.ROI{Width: roi.Width, Height: roi.Height}
	if roi.Empty() {
		return req, nil
	}

	lastSample := (req.offset+(roi.Height-1)*stride+roi.Width-1)*cfg.components + maxOffset
	if lastSample >= imageLen {
		return req, fmt.Errorf("%w: %d samples, need %d", errs.ErrImageTooSmall, imageLen, lastSample+1)
	}

	if cfg.mask != nil {
		ms := cfg.maskStride
		if ms == 0 {
			ms = roi.Width
		}
		if ms < 0 || cfg.maskX < 0 || cfg.maskY < 0 || cfg.maskX+roi.Width > ms {
			return req, fmt.Errorf("%w: roi width %d at mask offset (%d, %d) with stride %d",
				errs.ErrMaskOutOfBounds, roi.Width, cfg.maskX, cfg.maskY, ms)
		}
		start := cfg.maskY*ms + cfg.maskX
		need := start + (roi.Height-1)*ms + roi.Width
		if need > len(cfg.mask) {
			return req, fmt.Errorf("%w: %d bytes, need %d", errs.ErrMaskTooSmall, len(cfg.mask), need)
		}
		req.mask = cfg.mask[start:]
		req.grid.MaskStride = ms
	}

	return req, nil
}
