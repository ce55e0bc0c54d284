package format

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseCompression(t *testing.T) {
	tests := []struct {
		name string
		want CompressionType
		ok   bool
	}{
		{"none", CompressionNone, true},
		{"", CompressionNone, true},
		{"zstd", CompressionZstd, true},
		{"s2", CompressionS2, true},
		{"lz4", CompressionLZ4, true},
		{"gzip", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseCompression(tt.name)
			require.Equal(t, tt.ok, ok)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestSampleType(t *testing.T) {
	require.Equal(t, uint(8), SampleUint8.Width())
	require.Equal(t, uint(16), SampleUint16.Width())
	require.Equal(t, uint(0), SampleType(0).Width())
	require.Equal(t, "uint16", SampleUint16.String())
	require.Equal(t, "Unknown", SampleType(9).String())
	require.Equal(t, "LZ4", CompressionLZ4.String())
}
