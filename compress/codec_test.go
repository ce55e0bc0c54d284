package compress

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math/rand/v2"
	"sync"
	"testing"

	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/ihist/format"
)

var allTypes = []format.CompressionType{
	format.CompressionNone,
	format.CompressionZstd,
	format.CompressionS2,
	format.CompressionLZ4,
}

// histogramPayload returns the little-endian counters of a sparse histogram
// with nbins bins.
func histogramPayload(nbins int, seed uint64) []byte {
	rng := rand.New(rand.NewPCG(seed, 7))
	out := make([]byte, nbins*4)
	for i := 0; i < nbins; i++ {
		if rng.IntN(4) == 0 {
			binary.LittleEndian.PutUint32(out[i*4:], rng.Uint32N(5000))
		}
	}

	return out
}

func TestForType(t *testing.T) {
	for _, ct := range allTypes {
		codec, err := ForType(ct)
		require.NoError(t, err, ct.String())
		require.NotNil(t, codec)
	}

	_, err := ForType(format.CompressionType(0))
	require.Error(t, err)
	_, err = ForType(format.CompressionType(99))
	require.Error(t, err)
}

func TestCodecs_RoundTrip(t *testing.T) {
	for _, ct := range allTypes {
		codec, err := ForType(ct)
		require.NoError(t, err)

		for _, nbins := range []int{1, 256, 4096, 3 * 4096, 65536} {
			t.Run(fmt.Sprintf("%s/%d", ct, nbins), func(t *testing.T) {
				payload := histogramPayload(nbins, uint64(nbins))
				packed, err := codec.Compress(payload)
				require.NoError(t, err)

				got, err := codec.Decompress(packed, len(payload))
				require.NoError(t, err)
				require.Equal(t, payload, got)
			})
		}
	}
}

func TestCodecs_ZeroHistogramShrinks(t *testing.T) {
	payload := make([]byte, 65536*4)
	for _, ct := range allTypes[1:] {
		codec, err := ForType(ct)
		require.NoError(t, err)

		packed, err := codec.Compress(payload)
		require.NoError(t, err)
		require.Less(t, len(packed), len(payload)/10, ct.String())
	}
}

func TestCodecs_Empty(t *testing.T) {
	for _, ct := range allTypes {
		codec, err := ForType(ct)
		require.NoError(t, err)

		packed, err := codec.Compress(nil)
		require.NoError(t, err)
		require.Empty(t, packed)

		got, err := codec.Decompress(nil, 0)
		require.NoError(t, err, ct.String())
		require.Empty(t, got)

		_, err = codec.Decompress(nil, 16)
		require.Error(t, err, ct.String())
	}
}

func TestCodecs_WrongSize(t *testing.T) {
	payload := histogramPayload(1024, 3)
	for _, ct := range allTypes {
		codec, err := ForType(ct)
		require.NoError(t, err)

		packed, err := codec.Compress(payload)
		require.NoError(t, err)

		_, err = codec.Decompress(packed, len(payload)-4)
		require.Error(t, err, "%s smaller", ct)
		_, err = codec.Decompress(packed, len(payload)+4)
		require.Error(t, err, "%s larger", ct)
	}
}

func TestCodecs_ImplausibleSize(t *testing.T) {
	payload := histogramPayload(256, 5)
	for _, ct := range []format.CompressionType{format.CompressionZstd, format.CompressionLZ4} {
		codec, err := ForType(ct)
		require.NoError(t, err)

		packed, err := codec.Compress(payload)
		require.NoError(t, err)

		_, err = codec.Decompress(packed, 1<<30)
		require.ErrorContains(t, err, "cannot decode to", ct.String())
	}

	_, err := NewLZ4Compressor().Decompress([]byte{0x00}, 4096)
	require.ErrorContains(t, err, "cannot decode to")
}

func TestZstd_DecodeLimitedToSize(t *testing.T) {
	zeros := make([]byte, 1<<20)

	// A streamed frame does not record its content size.
	var stream bytes.Buffer
	enc, err := zstd.NewWriter(&stream)
	require.NoError(t, err)
	_, err = enc.Write(zeros)
	require.NoError(t, err)
	require.NoError(t, enc.Close())

	codec := NewZstdCompressor()
	_, err = codec.Decompress(stream.Bytes(), 1<<16)
	require.Error(t, err)

	packed, err := codec.Compress(zeros)
	require.NoError(t, err)
	_, err = codec.Decompress(packed, 1<<16)
	require.ErrorContains(t, err, "frame holds")

	out, err := codec.Decompress(stream.Bytes(), len(zeros))
	require.NoError(t, err)
	require.Equal(t, zeros, out)
}

func TestCodecs_CorruptData(t *testing.T) {
	garbage := []byte{0xde, 0xad, 0xbe, 0xef, 0x01, 0x02, 0x03, 0x04, 0x05}
	for _, ct := range allTypes[1:] {
		codec, err := ForType(ct)
		require.NoError(t, err)

		_, err = codec.Decompress(garbage, 4096)
		require.Error(t, err, ct.String())
	}
}

func TestCodecs_Concurrent(t *testing.T) {
	payload := histogramPayload(4096, 11)
	for _, ct := range allTypes {
		codec, err := ForType(ct)
		require.NoError(t, err)

		var wg sync.WaitGroup
		errs := make(chan error, 16)
		for i := 0; i < 16; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for j := 0; j < 20; j++ {
					packed, err := codec.Compress(payload)
					if err != nil {
						errs <- err
						return
					}
					got, err := codec.Decompress(packed, len(payload))
					if err != nil {
						errs <- err
						return
					}
					if string(got) != string(payload) {
						errs <- fmt.Errorf("%s: round trip mismatch", ct)
						return
					}
				}
			}()
		}
		wg.Wait()
		close(errs)
		for err := range errs {
			require.NoError(t, err)
		}
	}
}

func TestStats(t *testing.T) {
	s := Stats{Algorithm: format.CompressionZstd, OriginalSize: 1000, CompressedSize: 250}
	require.InDelta(t, 0.25, s.Ratio(), 1e-9)
	require.InDelta(t, 75.0, s.Savings(), 1e-9)

	require.Zero(t, Stats{}.Ratio())
	require.Zero(t, Stats{}.Savings())
}
