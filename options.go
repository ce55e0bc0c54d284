package ihist

import (
	"github.com/arloliu/ihist/hist"
	"github.com/arloliu/ihist/internal/options"
	"github.com/arloliu/ihist/tuning"
)

// Config holds the settings of one histogram request.
type Config struct {
	components int
	selected   []int
	bits       uint
	bitsSet    bool

	imageStride int

	roi    hist.ROI
	hasROI bool

	mask       []uint8
	maskStride int
	maskX      int
	maskY      int

	out        []uint32
	accumulate bool
	parallel   bool

	table *tuning.Table
	cores hist.CoreCounter
}

func newConfig() *Config {
	return &Config{
		components: 1,
		parallel:   true,
	}
}

// Option configures a histogram request.
type Option = options.Option[*Config]

// WithComponents sets the number of samples per pixel. The default is 1.
func WithComponents(n int) Option {
	return options.NoError(func(c *Config) {
		c.components = n
	})
}

// WithSelect sets the component offsets to histogram, in output order.
// By default every component is histogrammed.
func WithSelect(indices ...int) Option {
	return options.NoError(func(c *Config) {
		c.selected = append([]int(nil), indices...)
	})
}

// WithBits sets the number of significant bits per sample. Samples with any
// bit set at or above bits are not counted. The default is the full sample
// width.
func WithBits(bits uint) Option {
	return options.NoError(func(c *Config) {
		c.bits = bits
		c.bitsSet = true
	})
}

// WithImageStride sets the distance between rows in pixels. The default is
// the image width.
func WithImageStride(stride int) Option {
	return options.NoError(func(c *Config) {
		c.imageStride = stride
	})
}

// WithROI restricts counting to the rectangle at (x, y) of size w by h.
func WithROI(x, y, w, h int) Option {
	return options.NoError(func(c *Config) {
		c.roi = hist.ROI{X: x, Y: y, Width: w, Height: h}
		c.hasROI = true
	})
}

// WithMask counts only pixels whose mask byte is non-zero. The mask is
// indexed relative to the ROI origin with rows stride pixels apart; a stride
// of zero means the ROI width.
func WithMask(mask []uint8, stride int) Option {
	return options.NoError(func(c *Config) {
		c.mask = mask
		c.maskStride = stride
	})
}

// WithMaskOffset shifts the mask position that corresponds to the ROI origin.
func WithMaskOffset(x, y int) Option {
	return options.NoError(func(c *Config) {
		c.maskX = x
		c.maskY = y
	})
}

// WithOutput writes into buf instead of a newly allocated histogram.
func WithOutput(buf []uint32) Option {
	return options.NoError(func(c *Config) {
		c.out = buf
	})
}

// WithAccumulate keeps the existing counts of the output buffer instead of
// zeroing it first.
func WithAccumulate(accumulate bool) Option {
	return options.NoError(func(c *Config) {
		c.accumulate = accumulate
	})
}

// WithParallel allows or forbids counting on multiple goroutines. Parallel
// counting is only used for regions above the tuning table's threshold.
func WithParallel(parallel bool) Option {
	return options.NoError(func(c *Config) {
		c.parallel = parallel
	})
}

// WithTuningTable replaces the built-in tuning table.
func WithTuningTable(t *tuning.Table) Option {
	return options.NoError(func(c *Config) {
		c.table = t
	})
}

// WithCoreCounter replaces the physical core query used to size the worker
// pool.
func WithCoreCounter(fn func() int) Option {
	return options.NoError(func(c *Config) {
		c.cores = fn
	})
}
