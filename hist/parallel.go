package hist

import (
	"sync/atomic"
	"unsafe"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sys/cpu"

	"github.com/arloliu/ihist/internal/cores"
	"github.com/arloliu/ihist/tuning"
)

// CountFunc is a sequential 1D counting function such as Unoptimized or
// Striped with its layout and tuning bound.
type CountFunc[T Sample] func(data []T, mask []uint8, n int, h []uint32)

// CountXYFunc is a sequential 2D counting function such as UnoptimizedXY or
// StripedXY with its layout and tuning bound.
type CountXYFunc[T Sample] func(data []T, mask []uint8, g Grid, r ROI, h []uint32)

// CoreCounter returns the number of physical cores, or a non-positive value
// when unknown.
type CoreCounter func() int

// Reducer runs sequential counting functions over partitions of a run on
// worker goroutines and sums the partial histograms.
//
// The zero Reducer queries the host's physical core count.
type Reducer struct {
	// Cores bounds the number of workers. Nil means cores.Physical.
	Cores CoreCounter
}

// Workers returns the number of workers used for chunks units of work.
func (r Reducer) Workers(chunks int) int {
	counter := r.Cores
	if counter == nil {
		counter = cores.Physical
	}

	return max(1, min(chunks, cores.Limit(counter())))
}

// CountMT counts the first n pixels of data into h by running fn over chunks
// of at most grain pixels on worker-local histograms. A grain of zero means
// one pixel.
func CountMT[T Sample](r Reducer, l Layout, fn CountFunc[T], data []T, mask []uint8, n int, h []uint32, grain int) {
	if n <= 0 {
		return
	}
	grain = max(1, grain)
	stride := max(1, l.Stride)

	forChunks(r, l.HistLen(), n, grain, h, func(begin, size int, local []uint32) {
		fn(data[begin*stride:], maskAt(mask, begin), size, local)
	})
}

// CountXYMT counts the pixels of roi within g into h by running fn over bands
// of rows. The pixel grain is converted to rows by dividing by the ROI width,
// with a minimum of one row.
func CountXYMT[T Sample](r Reducer, l Layout, fn CountXYFunc[T], data []T, mask []uint8, g Grid, roi ROI, h []uint32, grain int) {
	if roi.Empty() {
		return
	}
	rowGrain := max(1, grain/max(1, roi.Width))

	forChunks(r, l.HistLen(), roi.Height, rowGrain, h, func(begin, size int, local []uint32) {
		band := ROI{X: roi.X, Y: roi.Y + begin, Width: roi.Width, Height: size}
		fn(data, mask, g, band, local)
	})
}

// UnoptimizedMT is CountMT with Unoptimized.
func UnoptimizedMT[T Sample](r Reducer, l Layout, data []T, mask []uint8, n int, h []uint32, grain int) {
	CountMT(r, l, func(d []T, m []uint8, n int, h []uint32) {
		Unoptimized(l, d, m, n, h)
	}, data, mask, n, h, grain)
}

// StripedMT is CountMT with Striped, using p's grain size.
func StripedMT[T Sample](r Reducer, p tuning.Parameters, l Layout, data []T, mask []uint8, n int, h []uint32) {
	CountMT(r, l, func(d []T, m []uint8, n int, h []uint32) {
		Striped(p, l, d, m, n, h)
	}, data, mask, n, h, p.Grain())
}

// UnoptimizedXYMT is CountXYMT with UnoptimizedXY.
func UnoptimizedXYMT[T Sample](r Reducer, l Layout, data []T, mask []uint8, g Grid, roi ROI, h []uint32, grain int) {
	CountXYMT(r, l, func(d []T, m []uint8, g Grid, roi ROI, h []uint32) {
		UnoptimizedXY(l, d, m, g, roi, h)
	}, data, mask, g, roi, h, grain)
}

// StripedXYMT is CountXYMT with StripedXY, using p's grain size.
func StripedXYMT[T Sample](r Reducer, p tuning.Parameters, l Layout, data []T, mask []uint8, g Grid, roi ROI, h []uint32) {
	CountXYMT(r, l, func(d []T, m []uint8, g Grid, roi ROI, h []uint32) {
		StripedXY(p, l, d, m, g, roi, h)
	}, data, mask, g, roi, h, p.Grain())
}

// cacheLineWords is the number of uint32 counters per cache line.
var cacheLineWords = max(1, int(unsafe.Sizeof(cpu.CacheLinePad{}))/4)

// forChunks splits [0, n) into chunks of at most grain units and calls count
// for each chunk on one of the reducer's workers. Each worker owns one local
// histogram of histLen counters. After all workers finish, the local
// histograms are added to h on the calling goroutine.
func forChunks(r Reducer, histLen, n, grain int, h []uint32, count func(begin, size int, local []uint32)) {
	// n > 0, so this cannot overflow for any grain.
	chunks := (n-1)/grain + 1
	workers := r.Workers(chunks)

	// One backing array; a cache line of padding between locals keeps
	// workers off each other's lines.
	slot := histLen + cacheLineWords
	backing := make([]uint32, workers*slot)
	local := func(w int) []uint32 {
		return backing[w*slot : w*slot+histLen : w*slot+histLen]
	}

	var next atomic.Int64
	var eg errgroup.Group
	for w := 0; w < workers; w++ {
		dst := local(w)
		eg.Go(func() error {
			for {
				ci := int(next.Add(1) - 1)
				if ci >= chunks {
					return nil
				}
				begin := ci * grain
				count(begin, min(grain, n-begin), dst)
			}
		})
	}
	// Workers never return an error; Wait is only the join.
	_ = eg.Wait()

	dst := h[:histLen]
	for w := 0; w < workers; w++ {
		for i, v := range local(w) {
			dst[i] += v
		}
	}
}
