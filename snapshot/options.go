package snapshot

import (
	"fmt"

	"github.com/arloliu/ihist/format"
	"github.com/arloliu/ihist/internal/options"
	"github.com/arloliu/ihist/section"
)

// EncoderConfig holds the encoding settings of a snapshot.
type EncoderConfig struct {
	flag section.Flag
}

func newEncoderConfig() *EncoderConfig {
	return &EncoderConfig{flag: section.NewFlag()}
}

// EncoderOption configures Encode.
type EncoderOption = options.Option[*EncoderConfig]

// WithCompression sets the payload compression. The default is none.
func WithCompression(c format.CompressionType) EncoderOption {
	return options.New(func(cfg *EncoderConfig) error {
		switch c {
		case format.CompressionNone, format.CompressionZstd, format.CompressionS2, format.CompressionLZ4:
			cfg.flag.SetCompression(c)
			return nil
		default:
			return fmt.Errorf("invalid snapshot compression: %v", c)
		}
	})
}

// WithLittleEndian stores counters little-endian. It is the default.
func WithLittleEndian() EncoderOption {
	return options.NoError(func(cfg *EncoderConfig) {
		cfg.flag.WithLittleEndian()
	})
}

// WithBigEndian stores counters big-endian.
func WithBigEndian() EncoderOption {
	return options.NoError(func(cfg *EncoderConfig) {
		cfg.flag.WithBigEndian()
	})
}
