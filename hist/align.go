package hist

import "unsafe"

// firstAlignedIndex returns the index of the first element of a buffer at
// addr whose address is a multiple of alignment. The index may lie beyond the
// end of the buffer; callers clamp it to the run length. alignment must be a
// power of two.
func firstAlignedIndex(addr, alignment, elemSize uintptr) int {
	if alignment <= elemSize {
		return 0
	}
	aligned := (addr + alignment - 1) &^ (alignment - 1)

	return int((aligned - addr) / elemSize)
}

func isPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

func addressOf[T Sample](data []T) uintptr {
	return uintptr(unsafe.Pointer(unsafe.SliceData(data)))
}

// runPlan splits a run of pixels into an unaligned prologue, whole blocks and
// an epilogue shorter than one block.
type runPlan struct {
	prologue int // pixels counted directly before the first block
	blocks   int // number of unroll-pixel blocks
	epilogue int // pixels counted directly after the last block
}

// planRun splits n pixels of data so that blocks start on a block-size
// boundary when the block size in bytes is a power of two. Otherwise, or when
// no pixel boundary is block aligned, the prologue is empty.
func planRun[T Sample](data []T, n, stride, unroll int) runPlan {
	var zero T
	elem := int(unsafe.Sizeof(zero))
	blockBytes := unroll * stride * elem

	prologue := 0
	if isPowerOfTwo(blockBytes) {
		idx := firstAlignedIndex(addressOf(data), uintptr(blockBytes), uintptr(elem))
		if idx%stride == 0 {
			prologue = min(n, idx/stride)
		}
	}

	rest := n - prologue

	return runPlan{
		prologue: prologue,
		blocks:   rest / unroll,
		epilogue: rest % unroll,
	}
}
