// Package snapshot encodes dense histograms for storage and transport.
//
// A snapshot carries the histogram's layout (sample type, significant bits,
// component count) next to its counters, so a reader can interpret the bins
// without out-of-band information:
//
//	h := snapshot.Histogram{Sample: format.SampleUint16, Bits: 12, Components: 3, Counts: counts}
//	data, err := snapshot.Encode(h, snapshot.WithCompression(format.CompressionZstd))
//
//	got, err := snapshot.Decode(data)
//	red := got.Component(0)
//
// The layout of the header is documented in package section. Decode verifies
// the header, the payload length and the xxHash64 checksum of the
// uncompressed counters.
package snapshot
