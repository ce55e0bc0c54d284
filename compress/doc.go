// Package compress provides the payload codecs of histogram snapshots.
//
// A snapshot payload is a dense run of fixed-width bin counters. Histograms of
// real images are mostly zero bins and small counts, so general-purpose
// compressors shrink them well:
//   - None: payload stored as is
//   - Zstd: best ratio; klauspost/compress by default, valyala/gozstd with the
//     gozstd build tag
//   - S2: fast with a good ratio
//   - LZ4: fastest decompression
//
// Every decompressor is told the expected decompressed length, which the
// snapshot header always records, so output buffers are allocated once.
//
//	codec, err := compress.ForType(format.CompressionZstd)
//	packed, err := codec.Compress(payload)
//	payload, err = codec.Decompress(packed, len(payload))
//
// All codecs are safe for concurrent use.
package compress
