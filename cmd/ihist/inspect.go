package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/arloliu/ihist/snapshot"
)

func newInspectCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect FILE",
		Short: "print the header and per-component totals of a snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runInspect(cmd.OutOrStdout(), args[0])
		},
	}
}

func (a *app) runInspect(w io.Writer, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read snapshot: %w", err)
	}

	hdr, err := snapshot.ReadHeader(data)
	if err != nil {
		return err
	}
	order := "little"
	if hdr.Flag.IsBigEndian() {
		order = "big"
	}
	fmt.Fprintf(w, "version:     %d\n", hdr.Version)
	fmt.Fprintf(w, "sample:      %s\n", hdr.Sample)
	fmt.Fprintf(w, "bits:        %d (low bit %d)\n", hdr.Bits, hdr.LoBit)
	fmt.Fprintf(w, "components:  %d\n", hdr.Components)
	fmt.Fprintf(w, "byte order:  %s\n", order)
	fmt.Fprintf(w, "compression: %s (%d -> %d bytes)\n", hdr.Flag.CompressionType(), hdr.RawLength, hdr.PayloadLength)
	fmt.Fprintf(w, "checksum:    %016x\n", hdr.Checksum)

	h, err := snapshot.Decode(data)
	if err != nil {
		return err
	}
	a.logger.Debug("snapshot decoded", "file", path, "counters", len(h.Counts))

	for c := 0; c < h.Components; c++ {
		used := 0
		for _, n := range h.Component(c) {
			if n != 0 {
				used++
			}
		}
		fmt.Fprintf(w, "component %d: total %d, %d non-zero bins\n", c, h.Total(c), used)
	}

	return nil
}
