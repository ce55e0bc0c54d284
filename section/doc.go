// Package section defines the fixed-size header of a histogram snapshot.
//
// A snapshot is a 32-byte header followed by the (possibly compressed)
// counter payload:
//
//	offset  size  field
//	0       4     magic "IHST"
//	4       1     format version
//	5       1     options (bit 0: payload byte order, 0 little, 1 big)
//	6       1     payload compression (format.CompressionType)
//	7       1     sample storage type (format.SampleType)
//	8       1     significant bits per sample
//	9       1     position of the lowest significant bit
//	10      2     number of components
//	12      4     uncompressed payload length in bytes
//	16      4     stored payload length in bytes
//	20      4     reserved, zero
//	24      8     xxHash64 of the uncompressed payload
//
// Header fields are always little-endian; the options byte only selects the
// byte order of the payload counters.
package section
