package main

import (
	"github.com/spf13/cobra"

	"github.com/arloliu/ihist/tuning"
)

func newTuningCommand(a *app) *cobra.Command {
	var (
		arch string
		file string
	)

	cmd := &cobra.Command{
		Use:   "tuning",
		Short: "print a tuning table as YAML",
		Long:  "Print the built-in tuning table of this platform, of --arch, or the table loaded from --file.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var table *tuning.Table
			switch {
			case file != "":
				t, err := tuning.LoadFile(file)
				if err != nil {
					return err
				}
				table = t
			case arch != "":
				table = tuning.ForArch(arch)
			default:
				table = tuning.Default()
			}
			a.logger.Debug("tuning table", "name", table.Name, "entries", table.Len())

			return table.WriteYAML(cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVar(&arch, "arch", "", "GOARCH whose built-in table to print")
	cmd.Flags().StringVar(&file, "file", "", "YAML tuning table to load and print")

	return cmd
}
