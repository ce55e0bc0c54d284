package tuning

import (
	"fmt"
	"strings"
)

// Class groups significant-bit counts that share tuning.
type Class uint8

const (
	Class8  Class = 8  // Class8 covers 8-bit storage samples.
	Class12 Class = 12 // Class12 covers 16-bit storage with at most 12 significant bits.
	Class16 Class = 16 // Class16 covers 16-bit storage with more than 12 significant bits.
)

// ClassOf returns the tuning class for samples of storageWidth bits holding
// bits significant bits.
func ClassOf(storageWidth, bits uint) Class {
	switch {
	case storageWidth <= 8:
		return Class8
	case bits <= 12:
		return Class12
	default:
		return Class16
	}
}

// Format names the pixel layouts the built-in tables distinguish.
type Format uint8

const (
	FormatMono  Format = iota // FormatMono is one sample per pixel.
	FormatABC                 // FormatABC is three samples per pixel, all histogrammed.
	FormatABCX                // FormatABCX is four samples per pixel, the first three histogrammed.
	FormatXABC                // FormatXABC is four samples per pixel, the last three histogrammed.
	FormatOther               // FormatOther is any other layout.
)

var formatNames = [...]string{"mono", "abc", "abcx", "xabc", "other"}

func (f Format) String() string {
	if int(f) < len(formatNames) {
		return formatNames[f]
	}

	return "unknown"
}

// ParseFormat parses a format name as printed by Format.String.
func ParseFormat(s string) (Format, error) {
	for i, name := range formatNames {
		if strings.EqualFold(s, name) {
			return Format(i), nil
		}
	}

	return 0, fmt.Errorf("unknown pixel format %q", s)
}

// FormatOf classifies a pixel layout given its stride and component offsets.
func FormatOf(stride int, offsets []int) Format {
	switch {
	case stride == 1 && len(offsets) == 1 && offsets[0] == 0:
		return FormatMono
	case stride == 3 && equalInts(offsets, 0, 1, 2):
		return FormatABC
	case stride == 4 && equalInts(offsets, 0, 1, 2):
		return FormatABCX
	case stride == 4 && equalInts(offsets, 1, 2, 3):
		return FormatXABC
	default:
		return FormatOther
	}
}

func equalInts(got []int, want ...int) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}

	return true
}

// Key identifies a tuning table entry.
type Key struct {
	Class  Class
	Format Format
	Masked bool
}

func (k Key) String() string {
	mask := 0
	if k.Masked {
		mask = 1
	}

	return fmt.Sprintf("%dbit_%s_mask%d", k.Class, k.Format, mask)
}
