// Package errs defines the sentinel errors returned by ihist.
//
// Callers should match errors with errors.Is; returned errors wrap these
// sentinels with call-specific detail:
//
//	_, err := ihist.Histogram8(img, w, h, ihist.WithROI(0, 0, w+1, h))
//	if errors.Is(err, errs.ErrROIOutOfBounds) {
//	    // ...
//	}
//
// The counting core in package hist never returns errors; these are produced
// by the request facade, the tuning loader and the snapshot codec.
package errs

import "errors"

// Request validation errors.
var (
	ErrInvalidBits       = errors.New("invalid sample bits")
	ErrInvalidDimensions = errors.New("invalid image dimensions")
	ErrInvalidComponent  = errors.New("invalid component selection")
	ErrROIOutOfBounds    = errors.New("roi exceeds image bounds")
	ErrMaskOutOfBounds   = errors.New("roi exceeds mask bounds")
	ErrImageTooSmall     = errors.New("image buffer too small")
	ErrMaskTooSmall      = errors.New("mask buffer too small")
	ErrOutputTooSmall    = errors.New("output histogram buffer too small")
	ErrInvalidLayout     = errors.New("invalid sample layout")
)

// Tuning errors.
var (
	ErrInvalidTuning = errors.New("invalid tuning parameters")
)

// Snapshot errors.
var (
	ErrInvalidSnapshot  = errors.New("invalid histogram snapshot")
	ErrChecksumMismatch = errors.New("histogram snapshot checksum mismatch")
	ErrUnsupported      = errors.New("unsupported snapshot feature")
)
