package hist

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"
)

func newRNG(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// randomSamples returns n samples below 1<<valueBits.
func randomSamples[T Sample](rng *rand.Rand, n int, valueBits uint) []T {
	out := make([]T, n)
	limit := uint32(1) << valueBits
	for i := range out {
		out[i] = T(rng.Uint32N(limit))
	}

	return out
}

// randomMask returns a mask with roughly half the pixels selected, using
// several non-zero values.
func randomMask(rng *rand.Rand, n int) []uint8 {
	out := make([]uint8, n)
	for i := range out {
		if rng.IntN(2) == 1 {
			out[i] = uint8(1 + rng.IntN(255))
		}
	}

	return out
}

func constSamples[T Sample](n int, v T) []T {
	out := make([]T, n)
	for i := range out {
		out[i] = v
	}

	return out
}

func countNonzero(mask []uint8) int {
	n := 0
	for _, m := range mask {
		if m != 0 {
			n++
		}
	}

	return n
}

func componentTotals(l Layout, h []uint32) []uint64 {
	totals := make([]uint64, l.NComponents())
	for c := range totals {
		for _, v := range l.Component(h, c) {
			totals[c] += uint64(v)
		}
	}

	return totals
}

func requireTotals(t *testing.T, l Layout, h []uint32, want int) {
	t.Helper()
	for c, total := range componentTotals(l, h) {
		require.Equal(t, uint64(want), total, "component %d", c)
	}
}

// seeded returns a histogram pre-filled with a recognizable pattern.
func seeded(n int) []uint32 {
	h := make([]uint32, n)
	for i := range h {
		h[i] = uint32(i*7 + 3)
	}

	return h
}
