package format

type (
	CompressionType uint8
	SampleType      uint8
)

const (
	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.

	SampleUint8  SampleType = 0x1 // SampleUint8 represents 8-bit storage samples.
	SampleUint16 SampleType = 0x2 // SampleUint16 represents 16-bit storage samples.
)

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// ParseCompression maps a case-sensitive lower-case name to a CompressionType.
func ParseCompression(name string) (CompressionType, bool) {
	switch name {
	case "none", "":
		return CompressionNone, true
	case "zstd":
		return CompressionZstd, true
	case "s2":
		return CompressionS2, true
	case "lz4":
		return CompressionLZ4, true
	default:
		return 0, false
	}
}

func (s SampleType) String() string {
	switch s {
	case SampleUint8:
		return "uint8"
	case SampleUint16:
		return "uint16"
	default:
		return "Unknown"
	}
}

// Width returns the storage width of the sample type in bits, or 0 if unknown.
func (s SampleType) Width() uint {
	switch s {
	case SampleUint8:
		return 8
	case SampleUint16:
		return 16
	default:
		return 0
	}
}
