package compress

import (
	"fmt"

	"github.com/arloliu/ihist/format"
)

// Compressor compresses a snapshot payload.
type Compressor interface {
	// Compress returns the compressed form of data. The result may alias
	// data for codecs that do not transform it.
	Compress(data []byte) ([]byte, error)
}

// Decompressor restores a snapshot payload.
type Decompressor interface {
	// Decompress returns the decompressed form of data. size is the expected
	// decompressed length; a codec may fail if the stream decodes to more.
	Decompress(data []byte, size int) ([]byte, error)
}

// Codec combines both directions.
type Codec interface {
	Compressor
	Decompressor
}

// Stats describes the effect of compressing one payload.
type Stats struct {
	Algorithm      format.CompressionType
	OriginalSize   int
	CompressedSize int
}

// Ratio returns compressed size over original size, or 0 for an empty
// payload.
func (s Stats) Ratio() float64 {
	if s.OriginalSize == 0 {
		return 0
	}

	return float64(s.CompressedSize) / float64(s.OriginalSize)
}

// Savings returns the space saved in percent.
func (s Stats) Savings() float64 {
	if s.OriginalSize == 0 {
		return 0
	}

	return (1 - s.Ratio()) * 100
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
}

// ForType returns the built-in codec for t.
func ForType(t format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[t]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("unsupported compression type: %s", t)
}

// checkSize rejects a decompressed payload whose length differs from size.
func checkSize(algo string, got []byte, size int) ([]byte, error) {
	if len(got) != size {
		return nil, fmt.Errorf("%s: decompressed %d bytes, want %d", algo, len(got), size)
	}

	return got, nil
}
