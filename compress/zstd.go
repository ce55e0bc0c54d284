package compress

import (
	"fmt"

	"github.com/klauspost/compress/zstd"
)

// ZstdCompressor compresses payloads with Zstandard.
//
// Builds with the gozstd tag use the cgo binding valyala/gozstd; other builds
// use the pure Go klauspost/compress/zstd. Both produce standard zstd frames,
// so snapshots written by one decode with the other.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a Zstd codec at the default level.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}

// zstdMaxRatio bounds zstd expansion: the densest block is a 4-byte RLE block
// of 128 KiB.
const zstdMaxRatio = 1 << 15

// checkZstdFrame rejects a payload that is too short to decode to size bytes
// or whose first frame declares another content size, before any output is
// allocated.
func checkZstdFrame(data []byte, size int) error {
	if size <= 0 || size/zstdMaxRatio > len(data) {
		return fmt.Errorf("zstd: %d compressed bytes cannot decode to %d bytes", len(data), size)
	}

	var hdr zstd.Header
	if err := hdr.Decode(data); err != nil {
		return fmt.Errorf("zstd: invalid frame header: %w", err)
	}
	if hdr.HasFCS && hdr.FrameContentSize != uint64(size) {
		return fmt.Errorf("zstd: frame holds %d bytes, want %d", hdr.FrameContentSize, size)
	}

	return nil
}
