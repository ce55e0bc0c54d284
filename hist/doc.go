// Package hist is the counting engine of ihist: it computes per-bin frequency
// counts over runs of 8- or 16-bit unsigned samples.
//
// # Data model
//
// Samples are grouped into pixels of Layout.Stride consecutive samples. The
// samples at Layout.Offsets within each pixel are histogrammed as independent
// components. Only Layout.Bits bits starting at Layout.LoBit participate in
// binning; samples whose higher bits are set are discarded.
//
// The histogram is a caller-owned []uint32 of Layout.HistLen() counters: one
// contiguous block of 1<<Bits bins per component, in component order. Every
// entry point in this package accumulates into it (+=); zeroing before a
// one-shot count is the caller's job.
//
// An optional mask holds one byte per pixel; pixels with a zero mask byte are
// skipped entirely.
//
// # Strategies
//
//   - Unoptimized / UnoptimizedXY increment the final histogram directly. They
//     are also the reference the other strategies are tested against.
//   - Striped / StripedXY spread increments for adjacent pixels over several
//     counter banks (stripes) to break store-to-load dependency chains, and
//     reduce the banks into the histogram at the end.
//   - CountMT / CountXYMT split a run (or the rows of a region of interest)
//     into grain-sized chunks, count each chunk into a worker-local histogram
//     and add all local histograms into the caller's buffer. Workers are
//     capped at the number of physical cores.
//
// # Contract
//
// Layout validity, ROI bounds and buffer sizes are the caller's
// responsibility; ValidateLayout is provided for callers that accept
// untrusted layouts. Out-of-contract input may panic with an index error.
// Degenerate input (zero-length runs, zero-area regions, nil masks, nil data
// with zero length) is always a no-op.
//
// All functions are re-entrant and keep no state across calls; scratch
// buffers live only for the duration of a call.
package hist
