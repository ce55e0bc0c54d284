package section

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/ihist/endian"
	"github.com/arloliu/ihist/errs"
	"github.com/arloliu/ihist/format"
)

func validHeader() *Header {
	h := NewHeader()
	h.Sample = format.SampleUint16
	h.Bits = 12
	h.Components = 3
	h.RawLength = 3 * 4096 * 4
	h.PayloadLength = h.RawLength
	h.Checksum = 0x0123456789abcdef

	return h
}

func TestFlag(t *testing.T) {
	f := NewFlag()
	require.True(t, f.IsLittleEndian())
	require.Equal(t, endian.Little(), f.GetEndianEngine())
	require.Equal(t, format.CompressionNone, f.CompressionType())
	require.NoError(t, f.Validate())

	f.WithBigEndian()
	require.True(t, f.IsBigEndian())
	require.Equal(t, endian.Big(), f.GetEndianEngine())
	f.WithLittleEndian()
	require.False(t, f.IsBigEndian())

	f.SetCompression(format.CompressionLZ4)
	require.Equal(t, format.CompressionLZ4, f.CompressionType())

	f.Options = 0x04
	require.ErrorIs(t, f.Validate(), errs.ErrInvalidSnapshot)

	f = NewFlag()
	f.Compression = 9
	require.ErrorIs(t, f.Validate(), errs.ErrInvalidSnapshot)
}

func TestHeader_RoundTrip(t *testing.T) {
	h := validHeader()
	h.Flag.WithBigEndian()
	h.Flag.SetCompression(format.CompressionZstd)
	h.PayloadLength = 999
	h.LoBit = 4

	data := h.Bytes()
	require.Len(t, data, HeaderSize)
	require.Equal(t, Magic, string(data[:4]))

	got, err := ParseHeader(append(data, 1, 2, 3))
	require.NoError(t, err)
	require.Equal(t, *h, got)
	require.Equal(t, 4096, got.NBins())
	require.Equal(t, 3*4096, got.CounterCount())
}

func TestHeader_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(h *Header)
		want   error
	}{
		{"version", func(h *Header) { h.Version = 2 }, errs.ErrUnsupported},
		{"reserved bits", func(h *Header) { h.Flag.Options = 0x80 }, errs.ErrInvalidSnapshot},
		{"compression", func(h *Header) { h.Flag.Compression = 0 }, errs.ErrInvalidSnapshot},
		{"sample type", func(h *Header) { h.Sample = 7 }, errs.ErrInvalidSnapshot},
		{"zero bits", func(h *Header) { h.Bits = 0 }, errs.ErrInvalidSnapshot},
		{"bits exceed sample", func(h *Header) { h.LoBit = 5 }, errs.ErrInvalidSnapshot},
		{"no components", func(h *Header) { h.Components = 0 }, errs.ErrInvalidSnapshot},
		{"raw length", func(h *Header) { h.RawLength -= 4 }, errs.ErrInvalidSnapshot},
		{"stored length", func(h *Header) { h.PayloadLength = 10 }, errs.ErrInvalidSnapshot},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := validHeader()
			tt.mutate(h)
			_, err := ParseHeader(h.Bytes())
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestParseHeader_Malformed(t *testing.T) {
	_, err := ParseHeader(nil)
	require.ErrorIs(t, err, errs.ErrInvalidSnapshot)

	data := validHeader().Bytes()
	_, err = ParseHeader(data[:HeaderSize-1])
	require.ErrorIs(t, err, errs.ErrInvalidSnapshot)

	data[0] = 'X'
	_, err = ParseHeader(data)
	require.ErrorIs(t, err, errs.ErrInvalidSnapshot)

	var h Header
	require.ErrorIs(t, h.Parse(make([]byte, HeaderSize+1)), errs.ErrInvalidSnapshot)
}
