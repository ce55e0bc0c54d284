package main

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/arloliu/ihist"
	"github.com/arloliu/ihist/format"
	"github.com/arloliu/ihist/snapshot"
	"github.com/arloliu/ihist/tuning"
)

type histFlags struct {
	depth       int
	width       int
	height      int
	components  int
	selected    []int
	bits        uint
	roi         []int
	mask        string
	maskStride  int
	tuningFile  string
	noParallel  bool
	out         string
	compression string
}

func newHistCommand(a *app) *cobra.Command {
	f := &histFlags{}

	cmd := &cobra.Command{
		Use:   "hist FILE",
		Short: "histogram a raw image file",
		Long: "Histogram a headerless image file of interleaved samples. " +
			"16-bit samples are read little-endian. Without --out the non-zero " +
			"bins are printed as 'component bin count' lines.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runHist(cmd.OutOrStdout(), args[0], f)
		},
	}

	fl := cmd.Flags()
	fl.IntVar(&f.depth, "depth", 8, "sample storage depth, 8 or 16")
	fl.IntVar(&f.width, "width", 0, "image width in pixels")
	fl.IntVar(&f.height, "height", 0, "image height in pixels")
	fl.IntVar(&f.components, "components", 1, "samples per pixel")
	fl.IntSliceVar(&f.selected, "select", nil, "component offsets to histogram (default all)")
	fl.UintVar(&f.bits, "bits", 0, "significant bits per sample (default depth)")
	fl.IntSliceVar(&f.roi, "roi", nil, "region of interest as x,y,w,h")
	fl.StringVar(&f.mask, "mask", "", "raw 8-bit mask file covering the region")
	fl.IntVar(&f.maskStride, "mask-stride", 0, "mask row stride in pixels (default region width)")
	fl.StringVar(&f.tuningFile, "tuning", "", "YAML tuning table")
	fl.BoolVar(&f.noParallel, "no-parallel", false, "count on a single goroutine")
	fl.StringVarP(&f.out, "out", "o", "", "write a snapshot to this file")
	fl.StringVar(&f.compression, "compression", "none", "snapshot compression: none, zstd, s2 or lz4")
	_ = cmd.MarkFlagRequired("width")
	_ = cmd.MarkFlagRequired("height")

	return cmd
}

func (f *histFlags) options(a *app) ([]ihist.Option, error) {
	opts := []ihist.Option{
		ihist.WithComponents(f.components),
		ihist.WithParallel(!f.noParallel),
	}
	if f.selected != nil {
		opts = append(opts, ihist.WithSelect(f.selected...))
	}
	if f.bits != 0 {
		opts = append(opts, ihist.WithBits(f.bits))
	}
	if f.roi != nil {
		if len(f.roi) != 4 {
			return nil, fmt.Errorf("--roi needs 4 values x,y,w,h, got %d", len(f.roi))
		}
		opts = append(opts, ihist.WithROI(f.roi[0], f.roi[1], f.roi[2], f.roi[3]))
	}
	if f.mask != "" {
		mask, err := os.ReadFile(f.mask)
		if err != nil {
			return nil, fmt.Errorf("read mask: %w", err)
		}
		opts = append(opts, ihist.WithMask(mask, f.maskStride))
	}
	if f.tuningFile != "" {
		table, err := tuning.LoadFile(f.tuningFile)
		if err != nil {
			return nil, err
		}
		a.logger.Debug("loaded tuning table", "name", table.Name, "entries", table.Len())
		opts = append(opts, ihist.WithTuningTable(table))
	}

	return opts, nil
}

func (a *app) runHist(w io.Writer, path string, f *histFlags) error {
	compression, ok := format.ParseCompression(f.compression)
	if !ok {
		return fmt.Errorf("unknown compression %q", f.compression)
	}

	opts, err := f.options(a)
	if err != nil {
		return err
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read image: %w", err)
	}

	start := time.Now()
	var (
		counts []uint32
		sample format.SampleType
	)
	switch f.depth {
	case 8:
		sample = format.SampleUint8
		counts, err = ihist.Histogram8(raw, f.width, f.height, opts...)
	case 16:
		sample = format.SampleUint16
		counts, err = ihist.Histogram16(samples16(raw), f.width, f.height, opts...)
	default:
		return fmt.Errorf("unsupported depth %d", f.depth)
	}
	if err != nil {
		return err
	}

	bits := f.bits
	if bits == 0 {
		bits = sample.Width()
	}
	h := snapshot.Histogram{
		Sample:     sample,
		Bits:       bits,
		Components: len(counts) >> bits,
		Counts:     counts,
	}
	a.logger.Debug("histogram computed",
		"file", path,
		"bytes", len(raw),
		"components", h.Components,
		"bits", h.Bits,
		"elapsed", time.Since(start))

	if f.out == "" {
		return printBins(w, h)
	}

	data, stats, err := snapshot.EncodeStats(h, snapshot.WithCompression(compression))
	if err != nil {
		return err
	}
	if err := os.WriteFile(f.out, data, 0o644); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	a.logger.Info("snapshot written",
		"file", f.out,
		"bytes", len(data),
		"compression", stats.Algorithm,
		"ratio", fmt.Sprintf("%.3f", stats.Ratio()))

	return nil
}

// samples16 decodes little-endian 16-bit samples. A trailing odd byte is
// ignored.
func samples16(raw []byte) []uint16 {
	out := make([]uint16, len(raw)/2)
	for i := range out {
		out[i] = binary.LittleEndian.Uint16(raw[i*2:])
	}

	return out
}

func printBins(w io.Writer, h snapshot.Histogram) error {
	for c := 0; c < h.Components; c++ {
		for bin, n := range h.Component(c) {
			if n == 0 {
				continue
			}
			if _, err := fmt.Fprintf(w, "%d %d %d\n", c, bin, n); err != nil {
				return err
			}
		}
	}

	return nil
}
