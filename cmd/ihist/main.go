// Command ihist computes image histograms from raw sample files and inspects
// histogram snapshots.
//
//	ihist hist image.raw --depth 16 --width 640 --height 480 --components 4 --select 0,1,2 --bits 12
//	ihist hist image.raw --depth 8 --width 640 --height 480 --out image.ihst --compression zstd
//	ihist inspect image.ihst
//	ihist tuning
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// app carries state shared by the subcommands.
type app struct {
	verbose bool
	logger  *slog.Logger
}

func (a *app) setupLogger(w io.Writer) {
	level := slog.LevelInfo
	if a.verbose {
		level = slog.LevelDebug
	}
	a.logger = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func newRootCommand() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "ihist",
		Short:         "compute and inspect image histograms",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			a.setupLogger(cmd.ErrOrStderr())
		},
	}
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newHistCommand(a), newInspectCommand(a), newTuningCommand(a))

	return root
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "ihist:", err)
		os.Exit(1)
	}
}
