package snapshot

import (
	"fmt"

	"github.com/arloliu/ihist/compress"
	"github.com/arloliu/ihist/endian"
	"github.com/arloliu/ihist/errs"
	"github.com/arloliu/ihist/internal/hash"
	"github.com/arloliu/ihist/internal/options"
	"github.com/arloliu/ihist/internal/pool"
	"github.com/arloliu/ihist/section"
)

// Encode serializes h.
func Encode(h Histogram, opts ...EncoderOption) ([]byte, error) {
	data, _, err := EncodeStats(h, opts...)
	return data, err
}

// EncodeStats is Encode that also reports the payload compression.
func EncodeStats(h Histogram, opts ...EncoderOption) ([]byte, compress.Stats, error) {
	cfg := newEncoderConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, compress.Stats{}, err
	}
	if err := h.Validate(); err != nil {
		return nil, compress.Stats{}, err
	}

	codec, err := compress.ForType(cfg.flag.CompressionType())
	if err != nil {
		return nil, compress.Stats{}, err
	}

	buf := pool.GetPayloadBuffer()
	defer pool.PutPayloadBuffer(buf)

	rawLen := len(h.Counts) * 4
	buf.Grow(rawLen)
	buf.B = endian.AppendCounts(cfg.flag.GetEndianEngine(), buf.B, h.Counts)

	packed, err := codec.Compress(buf.Bytes())
	if err != nil {
		return nil, compress.Stats{}, fmt.Errorf("failed to compress snapshot payload: %w", err)
	}

	hdr := section.NewHeader()
	hdr.Flag = cfg.flag
	hdr.Sample = h.Sample
	hdr.Bits = uint8(h.Bits)
	hdr.LoBit = uint8(h.LoBit)
	hdr.Components = uint16(h.Components)
	hdr.RawLength = uint32(rawLen)
	hdr.PayloadLength = uint32(len(packed))
	hdr.Checksum = hash.Checksum(buf.Bytes())

	out := make([]byte, 0, section.HeaderSize+len(packed))
	out = hdr.AppendTo(out)
	out = append(out, packed...)

	stats := compress.Stats{
		Algorithm:      cfg.flag.CompressionType(),
		OriginalSize:   rawLen,
		CompressedSize: len(packed),
	}

	return out, stats, nil
}

// Decode parses a snapshot produced by Encode.
func Decode(data []byte) (Histogram, error) {
	hdr, err := section.ParseHeader(data)
	if err != nil {
		return Histogram{}, err
	}

	payload := data[section.HeaderSize:]
	if uint64(len(payload)) != uint64(hdr.PayloadLength) {
		return Histogram{}, fmt.Errorf("%w: payload is %d bytes, header says %d",
			errs.ErrInvalidSnapshot, len(payload), hdr.PayloadLength)
	}

	codec, err := compress.ForType(hdr.Flag.CompressionType())
	if err != nil {
		return Histogram{}, fmt.Errorf("%w: %w", errs.ErrInvalidSnapshot, err)
	}
	raw, err := codec.Decompress(payload, int(hdr.RawLength))
	if err != nil {
		return Histogram{}, fmt.Errorf("%w: %w", errs.ErrInvalidSnapshot, err)
	}

	if sum := hash.Checksum(raw); sum != hdr.Checksum {
		return Histogram{}, fmt.Errorf("%w: got %016x, header says %016x", errs.ErrChecksumMismatch, sum, hdr.Checksum)
	}

	counts, err := endian.DecodeCounts(hdr.Flag.GetEndianEngine(), raw)
	if err != nil {
		return Histogram{}, fmt.Errorf("%w: %w", errs.ErrInvalidSnapshot, err)
	}

	return Histogram{
		Sample:     hdr.Sample,
		Bits:       uint(hdr.Bits),
		LoBit:      uint(hdr.LoBit),
		Components: int(hdr.Components),
		Counts:     counts,
	}, nil
}

// ReadHeader parses and validates only the header of a snapshot.
func ReadHeader(data []byte) (section.Header, error) {
	return section.ParseHeader(data)
}
