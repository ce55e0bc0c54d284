package hist

import (
	"fmt"
	"testing"

	"github.com/arloliu/ihist/tuning"
)

func BenchmarkMono8(b *testing.B) {
	const n = 1 << 20
	data := randomSamples[uint8](newRNG(1), n, 8)
	h := make([]uint32, 256)

	b.Run("unoptimized", func(b *testing.B) {
		b.SetBytes(n)
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			Unoptimized(Mono(8), data, nil, n, h)
		}
	})

	for _, st := range []int{1, 2, 4, 8} {
		p := tuning.Parameters{Stripes: st, Unroll: 16}
		b.Run(fmt.Sprintf("striped_%dx%d", st, p.Unroll), func(b *testing.B) {
			b.SetBytes(n)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				Striped(p, Mono(8), data, nil, n, h)
			}
		})
	}
}

func BenchmarkRGBX16(b *testing.B) {
	const n = 1 << 18
	l := Interleaved(12, 4, 0, 1, 2)
	data := randomSamples[uint16](newRNG(2), n*4, 12)
	mask := randomMask(newRNG(3), n)
	h := make([]uint32, l.HistLen())
	p := tuning.Parameters{Stripes: 2, Unroll: 4, GrainSize: 1 << 14}

	b.Run("striped", func(b *testing.B) {
		b.SetBytes(n * 8)
		for i := 0; i < b.N; i++ {
			Striped(p, l, data, mask, n, h)
		}
	})

	b.Run("striped_mt", func(b *testing.B) {
		b.SetBytes(n * 8)
		for i := 0; i < b.N; i++ {
			StripedMT(Reducer{}, p, l, data, mask, n, h)
		}
	})
}
