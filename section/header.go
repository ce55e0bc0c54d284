package section

import (
	"encoding/binary"
	"fmt"

	"github.com/arloliu/ihist/errs"
	"github.com/arloliu/ihist/format"
)

// Header is the fixed-size header at the start of a snapshot.
type Header struct {
	Version    uint8             // byte offset 4
	Flag       Flag              // byte offsets 5-6
	Sample     format.SampleType // byte offset 7
	Bits       uint8             // byte offset 8
	LoBit      uint8             // byte offset 9
	Components uint16            // byte offset 10-11
	// RawLength is the uncompressed payload length in bytes.
	RawLength uint32 // byte offset 12-15
	// PayloadLength is the stored payload length in bytes.
	PayloadLength uint32 // byte offset 16-19
	// Checksum is the xxHash64 of the uncompressed payload.
	Checksum uint64 // byte offset 24-31
}

// NewHeader returns a version 1 header with the default flag.
func NewHeader() *Header {
	return &Header{
		Version: Version1,
		Flag:    NewFlag(),
	}
}

// NBins returns the number of bins per component.
func (h *Header) NBins() int {
	return 1 << h.Bits
}

// CounterCount returns the number of counters the payload holds.
func (h *Header) CounterCount() int {
	return int(h.Components) << h.Bits
}

// Bytes serializes the header.
func (h *Header) Bytes() []byte {
	return h.AppendTo(make([]byte, 0, HeaderSize))
}

// AppendTo appends the serialized header to dst.
func (h *Header) AppendTo(dst []byte) []byte {
	le := binary.LittleEndian

	dst = append(dst, Magic...)
	dst = append(dst, h.Version, h.Flag.Options, h.Flag.Compression, uint8(h.Sample), h.Bits, h.LoBit)
	dst = le.AppendUint16(dst, h.Components)
	dst = le.AppendUint32(dst, h.RawLength)
	dst = le.AppendUint32(dst, h.PayloadLength)
	dst = le.AppendUint32(dst, 0)
	dst = le.AppendUint64(dst, h.Checksum)

	return dst
}

// Parse parses and validates the header from exactly HeaderSize bytes.
func (h *Header) Parse(data []byte) error {
	if len(data) != HeaderSize {
		return fmt.Errorf("%w: header is %d bytes, want %d", errs.ErrInvalidSnapshot, len(data), HeaderSize)
	}
	if string(data[0:4]) != Magic {
		return fmt.Errorf("%w: bad magic %q", errs.ErrInvalidSnapshot, data[0:4])
	}

	le := binary.LittleEndian
	h.Version = data[4]
	h.Flag.Options = data[5]
	h.Flag.Compression = data[6]
	h.Sample = format.SampleType(data[7])
	h.Bits = data[8]
	h.LoBit = data[9]
	h.Components = le.Uint16(data[10:12])
	h.RawLength = le.Uint32(data[12:16])
	h.PayloadLength = le.Uint32(data[16:20])
	h.Checksum = le.Uint64(data[24:32])

	return h.Validate()
}

// Validate checks that the header describes a well-formed histogram.
func (h *Header) Validate() error {
	if h.Version != Version1 {
		return fmt.Errorf("%w: snapshot version %d", errs.ErrUnsupported, h.Version)
	}
	if err := h.Flag.Validate(); err != nil {
		return err
	}

	width := h.Sample.Width()
	switch {
	case width == 0:
		return fmt.Errorf("%w: unknown sample type %d", errs.ErrInvalidSnapshot, h.Sample)
	case h.Bits == 0 || uint(h.Bits)+uint(h.LoBit) > width:
		return fmt.Errorf("%w: %d bits at offset %d in %s samples", errs.ErrInvalidSnapshot, h.Bits, h.LoBit, h.Sample)
	case h.Components == 0:
		return fmt.Errorf("%w: no components", errs.ErrInvalidSnapshot)
	}

	want := (uint64(h.Components) << h.Bits) * 4
	if uint64(h.RawLength) != want {
		return fmt.Errorf("%w: payload length %d, want %d", errs.ErrInvalidSnapshot, h.RawLength, want)
	}
	if h.Flag.CompressionType() == format.CompressionNone && h.PayloadLength != h.RawLength {
		return fmt.Errorf("%w: uncompressed payload length %d, want %d", errs.ErrInvalidSnapshot, h.PayloadLength, h.RawLength)
	}

	return nil
}

// ParseHeader parses the header at the start of data.
func ParseHeader(data []byte) (Header, error) {
	if len(data) < HeaderSize {
		return Header{}, fmt.Errorf("%w: %d bytes is shorter than the header", errs.ErrInvalidSnapshot, len(data))
	}

	var h Header
	if err := h.Parse(data[:HeaderSize]); err != nil {
		return Header{}, err
	}

	return h, nil
}
