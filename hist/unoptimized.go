package hist

// Unoptimized counts the first n pixels of data into h, one increment at a
// time.
//
// If mask is non-nil, pixel j is counted only when mask[j] != 0. data may be
// nil when n is zero.
func Unoptimized[T Sample](l Layout, data []T, mask []uint8, n int, h []uint32) {
	if n <= 0 {
		return
	}
	b := newBinner[T](l)
	countRun(&b, l, data, mask, n, h)
}

// UnoptimizedXY counts the pixels of r within grid g into h.
//
// Pixel (x, y) is data[(x + y*g.Width)*l.Stride:]; its mask byte is
// mask[x + y*maskStride] where maskStride defaults to g.Width.
func UnoptimizedXY[T Sample](l Layout, data []T, mask []uint8, g Grid, r ROI, h []uint32) {
	if r.Empty() {
		return
	}
	b := newBinner[T](l)
	stride := max(1, l.Stride)
	ms := g.maskStride()
	for y := r.Y; y < r.Y+r.Height; y++ {
		row := y*g.Width + r.X
		countRun(&b, l, data[row*stride:], maskAt(mask, y*ms+r.X), r.Width, h)
	}
}

// countRun is the shared direct-increment loop. It is also the prologue and
// epilogue of the striped strategy.
func countRun[T Sample](b *binner[T], l Layout, data []T, mask []uint8, n int, h []uint32) {
	if n <= 0 {
		return
	}
	stride := max(1, l.Stride)
	nbins := b.overflow

	if len(l.Offsets) == 1 {
		off := l.Offsets[0]
		for j := 0; j < n; j++ {
			if mask != nil && mask[j] == 0 {
				continue
			}
			if bin := b.bin(data[j*stride+off]); bin != nbins {
				h[bin]++
			}
		}

		return
	}

	for j := 0; j < n; j++ {
		if mask != nil && mask[j] == 0 {
			continue
		}
		i := j * stride
		for c, off := range l.Offsets {
			if bin := b.bin(data[i+off]); bin != nbins {
				h[c*nbins+bin]++
			}
		}
	}
}
