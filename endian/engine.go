// Package endian provides the byte order of snapshot payloads.
//
// A snapshot stores its bin counters as fixed-width uint32 values in either
// byte order; the header records which one. Little-endian is the default:
//
//	engine := endian.Little()
//	payload := endian.AppendCounts(engine, nil, hist)
//	counts, err := endian.DecodeCounts(engine, payload)
//
// When the engine matches the host byte order, counters are copied as raw
// memory instead of being converted one at a time.
//
// All functions in this package are safe for concurrent use.
package endian

import (
	"encoding/binary"
	"fmt"
	"unsafe"
)

// EndianEngine combines binary.ByteOrder and binary.AppendByteOrder.
//
// binary.LittleEndian and binary.BigEndian satisfy it.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// Native returns the host byte order.
func Native() EndianEngine {
	var i uint16 = 0x0100
	b := (*[2]byte)(unsafe.Pointer(&i))
	if b[0] == 0x01 {
		return binary.BigEndian
	}

	return binary.LittleEndian
}

// IsNativeLittleEndian reports whether the host is little-endian.
func IsNativeLittleEndian() bool {
	return Native() == binary.LittleEndian
}

// IsNative reports whether engine is the host byte order.
func IsNative(engine EndianEngine) bool {
	return engine == Native()
}

// Little returns the little-endian engine.
func Little() EndianEngine {
	return binary.LittleEndian
}

// Big returns the big-endian engine.
func Big() EndianEngine {
	return binary.BigEndian
}

// AppendCounts appends counts to dst as 4-byte values in engine's order.
func AppendCounts(engine EndianEngine, dst []byte, counts []uint32) []byte {
	if len(counts) == 0 {
		return dst
	}

	if IsNative(engine) {
		raw := unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(counts))), len(counts)*4)
		return append(dst, raw...)
	}

	dst = growBy(dst, len(counts)*4)
	for _, c := range counts {
		dst = engine.AppendUint32(dst, c)
	}

	return dst
}

// DecodeCounts decodes a payload written by AppendCounts.
func DecodeCounts(engine EndianEngine, src []byte) ([]uint32, error) {
	if len(src)%4 != 0 {
		return nil, fmt.Errorf("counter payload length %d is not a multiple of 4", len(src))
	}

	counts := make([]uint32, len(src)/4)
	if len(counts) == 0 {
		return counts, nil
	}

	if IsNative(engine) {
		raw := unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(counts))), len(src))
		copy(raw, src)

		return counts, nil
	}

	for i := range counts {
		counts[i] = engine.Uint32(src[i*4:])
	}

	return counts, nil
}

func growBy(b []byte, n int) []byte {
	if cap(b)-len(b) >= n {
		return b
	}
	grown := make([]byte, len(b), len(b)+n)
	copy(grown, b)

	return grown
}
