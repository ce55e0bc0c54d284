package hist

import "github.com/arloliu/ihist/tuning"

// Striped counts the first n pixels of data into h using p.NStripes() counter
// banks.
//
// The run is split into an alignment prologue, blocks of p.NUnroll() pixels
// and an epilogue. Prologue and epilogue pixels are counted directly into h;
// block pixels are spread over the stripes, which are summed into h at the
// end. The result equals Unoptimized for any p.
func Striped[T Sample](p tuning.Parameters, l Layout, data []T, mask []uint8, n int, h []uint32) {
	if n <= 0 {
		return
	}
	s := newStriper[T](p, l, h)
	s.run(data, mask, n, h)
	s.reduce(h)
}

// StripedXY counts the pixels of r within grid g into h using stripes.
//
// A region spanning full rows of a multi-row grid is contiguous, so it is
// counted as a single 1D run; otherwise each row is split into prologue,
// blocks and epilogue on its own.
func StripedXY[T Sample](p tuning.Parameters, l Layout, data []T, mask []uint8, g Grid, r ROI, h []uint32) {
	if r.Empty() {
		return
	}
	stride := max(1, l.Stride)

	if r.Width == g.Width && g.Height > 1 && g.maskStride() == g.Width {
		start := r.Y * g.Width
		Striped(p, l, data[start*stride:], maskAt(mask, start), r.Height*g.Width, h)

		return
	}

	s := newStriper[T](p, l, h)
	ms := g.maskStride()
	for y := r.Y; y < r.Y+r.Height; y++ {
		row := y*g.Width + r.X
		s.run(data[row*stride:], maskAt(mask, y*ms+r.X), r.Width, h)
	}
	s.reduce(h)
}

// striper holds the per-call state of the striped strategy.
type striper[T Sample] struct {
	b          binner[T]
	l          Layout
	stride     int
	ncomp      int
	nbins      int
	nstripes   int
	unroll     int
	stripeLen  int
	branchless bool

	// banks is nstripes*ncomp stripes of stripeLen counters, stripe-major.
	// It aliases the caller's histogram when one stripe without an overflow
	// bin suffices.
	banks []uint32
	owned bool

	bins    []int // resolved bins of one block, [pixel*ncomp + component]
	bankOff []int // bank offset of each pixel of the current block
}

func newStriper[T Sample](p tuning.Parameters, l Layout, h []uint32) *striper[T] {
	s := &striper[T]{
		b:          newBinner[T](l),
		l:          l,
		stride:     max(1, l.Stride),
		ncomp:      l.NComponents(),
		nbins:      l.NBins(),
		nstripes:   p.NStripes(),
		unroll:     p.NUnroll(),
		branchless: p.PreferBranchless,
	}

	// An extra bin per stripe absorbs filtered samples without a branch.
	s.stripeLen = s.nbins
	if l.filters(SampleWidth[T]()) {
		s.stripeLen++
	}

	if s.nstripes > 1 || s.stripeLen > s.nbins {
		s.banks = make([]uint32, s.nstripes*s.ncomp*s.stripeLen)
		s.owned = true
	} else {
		s.banks = h
	}

	s.bins = make([]int, s.unroll*s.ncomp)
	s.bankOff = make([]int, s.unroll)

	return s
}

// run counts n pixels: prologue and epilogue into h, blocks into the banks.
func (s *striper[T]) run(data []T, mask []uint8, n int, h []uint32) {
	plan := planRun(data, n, s.stride, s.unroll)

	countRun(&s.b, s.l, data, mask, plan.prologue, h)

	start := plan.prologue
	if plan.blocks > 0 {
		s.blocks(data[start*s.stride:], maskAt(mask, start), plan.blocks)
	}

	if plan.epilogue > 0 {
		epi := start + plan.blocks*s.unroll
		countRun(&s.b, s.l, data[epi*s.stride:], maskAt(mask, epi), plan.epilogue, h)
	}
}

// blocks counts nblocks blocks of unroll pixels into the banks. Pixel k of
// block i goes to stripe (i*unroll + k) mod nstripes.
func (s *striper[T]) blocks(data []T, mask []uint8, nblocks int) {
	unroll, stride, ncomp := s.unroll, s.stride, s.ncomp
	compLen := s.stripeLen
	bins, bankOff := s.bins, s.bankOff

	// With unroll a multiple of nstripes every block starts on stripe 0, so
	// the bank offsets are fixed.
	fixed := unroll%s.nstripes == 0
	s.fillBankOffsets(0)

	first := 0
	for block := 0; block < nblocks; block++ {
		if !fixed {
			s.fillBankOffsets(first)
		}

		// Resolve every bin of the block before incrementing.
		base := block * unroll * stride
		for k := 0; k < unroll; k++ {
			i := base + k*stride
			for c, off := range s.l.Offsets {
				bins[k*ncomp+c] = s.b.bin(data[i+off])
			}
		}

		var blockMask []uint8
		if mask != nil {
			blockMask = mask[block*unroll : (block+1)*unroll]
		}

		for c := 0; c < ncomp; c++ {
			compBase := c * compLen
			switch {
			case blockMask == nil:
				for k := 0; k < unroll; k++ {
					s.banks[bankOff[k]+compBase+bins[k*ncomp+c]]++
				}
			case s.branchless:
				for k := 0; k < unroll; k++ {
					s.banks[bankOff[k]+compBase+bins[k*ncomp+c]] += nonzero(blockMask[k])
				}
			default:
				for k := 0; k < unroll; k++ {
					if blockMask[k] != 0 {
						s.banks[bankOff[k]+compBase+bins[k*ncomp+c]]++
					}
				}
			}
		}

		first += unroll
	}
}

// fillBankOffsets sets the bank offset of each pixel of a block whose first
// pixel has run index first.
func (s *striper[T]) fillBankOffsets(first int) {
	stripeSize := s.ncomp * s.stripeLen
	for k := range s.bankOff {
		s.bankOff[k] = ((first + k) % s.nstripes) * stripeSize
	}
}

// reduce adds the sum over stripes of every real bin to h. Overflow bins are
// dropped.
func (s *striper[T]) reduce(h []uint32) {
	if !s.owned {
		return
	}
	stripeSize := s.ncomp * s.stripeLen
	for c := 0; c < s.ncomp; c++ {
		dst := h[c*s.nbins : (c+1)*s.nbins]
		for st := 0; st < s.nstripes; st++ {
			src := s.banks[st*stripeSize+c*s.stripeLen:]
			src = src[:s.nbins]
			for bin, v := range src {
				dst[bin] += v
			}
		}
	}
}

func nonzero(m uint8) uint32 {
	if m != 0 {
		return 1
	}

	return 0
}
