package section

import "math"

const (
	// HeaderSize is the fixed header size in bytes.
	HeaderSize = 32
	// Magic identifies a snapshot.
	Magic = "IHST"
	// Version1 is the only format version.
	Version1 uint8 = 1

	// MaxComponents is the largest component count a header can record.
	MaxComponents = math.MaxUint16
	// MaxPayloadLength is the largest payload a header can record.
	MaxPayloadLength = math.MaxUint32
)

// Options bits.
const (
	EndiannessMask   uint8 = 0x01 // 0 little-endian, 1 big-endian
	ReservedBitsMask uint8 = 0xFE
)
