package hash

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChecksum(t *testing.T) {
	tests := []struct {
		name string
		data string
		sum  uint64
	}{
		{"empty", "", 0xef46db3751d8e999},
		{"short", "test", 0x4fdcca5ddb678139},
		{"long", "this is a longer test string to hash", 0x69275f7f7ee59dbd},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.sum, Checksum([]byte(tt.data)))
		})
	}
}

func TestChecksumParts(t *testing.T) {
	data := make([]byte, 5000)
	rng := rand.New(rand.NewPCG(1, 2))
	for i := range data {
		data[i] = byte(rng.Uint32())
	}

	want := Checksum(data)
	assert.Equal(t, want, ChecksumParts(data))
	assert.Equal(t, want, ChecksumParts(data[:32], data[32:1000], nil, data[1000:]))
	assert.Equal(t, Checksum(nil), ChecksumParts())
}

func BenchmarkChecksum(b *testing.B) {
	data := make([]byte, 3*4096*4)
	b.SetBytes(int64(len(data)))
	for b.Loop() {
		Checksum(data)
	}
}
