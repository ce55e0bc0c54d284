package section

import (
	"fmt"

	"github.com/arloliu/ihist/endian"
	"github.com/arloliu/ihist/errs"
	"github.com/arloliu/ihist/format"
)

// Flag holds the payload encoding options of a snapshot.
type Flag struct {
	// Options is a packed field. Bit 0 is the payload byte order; the other
	// bits are reserved and must be zero.
	Options uint8
	// Compression is the payload compression type.
	Compression uint8
}

var validCompressions = map[uint8]struct{}{
	uint8(format.CompressionNone): {},
	uint8(format.CompressionZstd): {},
	uint8(format.CompressionS2):   {},
	uint8(format.CompressionLZ4):  {},
}

// NewFlag returns the default flag: little-endian, uncompressed.
func NewFlag() Flag {
	return Flag{Compression: uint8(format.CompressionNone)}
}

// IsLittleEndian reports whether payload counters are little-endian.
func (f Flag) IsLittleEndian() bool {
	return f.Options&EndiannessMask == 0
}

// IsBigEndian reports whether payload counters are big-endian.
func (f Flag) IsBigEndian() bool {
	return f.Options&EndiannessMask != 0
}

// WithLittleEndian selects little-endian payload counters.
func (f *Flag) WithLittleEndian() {
	f.Options &^= EndiannessMask
}

// WithBigEndian selects big-endian payload counters.
func (f *Flag) WithBigEndian() {
	f.Options |= EndiannessMask
}

// GetEndianEngine returns the payload byte order.
func (f Flag) GetEndianEngine() endian.EndianEngine {
	if f.IsBigEndian() {
		return endian.Big()
	}

	return endian.Little()
}

// CompressionType returns the payload compression.
func (f Flag) CompressionType() format.CompressionType {
	return format.CompressionType(f.Compression)
}

// SetCompression sets the payload compression.
func (f *Flag) SetCompression(c format.CompressionType) {
	f.Compression = uint8(c)
}

// Validate checks the reserved bits and the compression type.
func (f Flag) Validate() error {
	if f.Options&ReservedBitsMask != 0 {
		return fmt.Errorf("%w: reserved option bits 0x%02x set", errs.ErrInvalidSnapshot, f.Options&ReservedBitsMask)
	}
	if _, ok := validCompressions[f.Compression]; !ok {
		return fmt.Errorf("%w: unknown compression %d", errs.ErrInvalidSnapshot, f.Compression)
	}

	return nil
}
