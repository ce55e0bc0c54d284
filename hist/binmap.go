package hist

// BinIndex maps v to its bin: the bits significant bits of v starting at
// loBit. If v has any bit set above loBit+bits, the overflow sentinel 1<<bits
// is returned instead.
func BinIndex[T Sample](v T, bits, loBit uint) int {
	return BinIndexPattern(v, bits, loBit, 0)
}

// BinIndexPattern is BinIndex with the high bits compared against hiPattern
// rather than zero.
func BinIndexPattern[T Sample](v T, bits, loBit uint, hiPattern uint16) int {
	bin := int(v>>loBit) & (1<<bits - 1)
	if loBit+bits < SampleWidth[T]() && uint16(v>>(loBit+bits)) != hiPattern {
		return 1 << bits
	}

	return bin
}

// binner is BinIndexPattern with the layout resolved once per call.
type binner[T Sample] struct {
	loBit    uint
	hiShift  uint
	mask     int
	overflow int
	hi       T
	filter   bool
}

func newBinner[T Sample](l Layout) binner[T] {
	return binner[T]{
		loBit:    l.LoBit,
		hiShift:  l.LoBit + l.Bits,
		mask:     1<<l.Bits - 1,
		overflow: 1 << l.Bits,
		hi:       T(l.HiPattern),
		filter:   l.filters(SampleWidth[T]()),
	}
}

func (b *binner[T]) bin(v T) int {
	if b.filter && v>>b.hiShift != b.hi {
		return b.overflow
	}

	return int(v>>b.loBit) & b.mask
}
