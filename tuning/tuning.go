package tuning

import (
	"fmt"

	"github.com/arloliu/ihist/errs"
)

// MaxStripes bounds Stripes so stripe banks stay cache resident.
const MaxStripes = 64

// MaxUnroll bounds Unroll; larger blocks only grow the per-block bin scratch.
const MaxUnroll = 256

// Parameters configures the striped counting strategy and the reducer.
type Parameters struct {
	// Stripes is the number of counter banks. 0 or 1 selects the unoptimized
	// direct-increment behavior inside the striped entry points.
	Stripes int `yaml:"stripes"`
	// Unroll is the number of pixels processed per block.
	Unroll int `yaml:"unroll"`
	// GrainSize is the maximum number of pixels per parallel work unit.
	GrainSize int `yaml:"grain_size,omitempty"`
	// PreferBranchless makes masked blocks add the mask test result (0 or 1)
	// instead of branching on it.
	PreferBranchless bool `yaml:"prefer_branchless,omitempty"`
}

// NStripes returns the effective stripe count (at least 1).
func (p Parameters) NStripes() int {
	return max(1, p.Stripes)
}

// NUnroll returns the effective block size in pixels (at least 1).
func (p Parameters) NUnroll() int {
	return max(1, p.Unroll)
}

// Grain returns the effective grain size in pixels (at least 1).
func (p Parameters) Grain() int {
	return max(1, p.GrainSize)
}

// Striped reports whether more than one counter bank is requested.
func (p Parameters) Striped() bool {
	return p.Stripes > 1
}

// Validate checks that p is usable.
func (p Parameters) Validate() error {
	switch {
	case p.Stripes < 0 || p.Stripes > MaxStripes:
		return fmt.Errorf("%w: stripes %d not in [0, %d]", errs.ErrInvalidTuning, p.Stripes, MaxStripes)
	case p.Unroll < 0 || p.Unroll > MaxUnroll:
		return fmt.Errorf("%w: unroll %d not in [0, %d]", errs.ErrInvalidTuning, p.Unroll, MaxUnroll)
	case p.GrainSize < 0:
		return fmt.Errorf("%w: negative grain size %d", errs.ErrInvalidTuning, p.GrainSize)
	}

	return nil
}

func (p Parameters) String() string {
	return fmt.Sprintf("stripes=%d unroll=%d grain=%d branchless=%t",
		p.Stripes, p.Unroll, p.GrainSize, p.PreferBranchless)
}
