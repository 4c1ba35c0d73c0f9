package cmd

import (
	"os"

	"github.com/eernst/contigtable/coverage"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func addSourceFlags(cmd *cobra.Command) {
	cmd.Flags().BoolP("histograms", "", false, "Inputs are pre-computed genomeCoverageBed histograms instead of BAM files.")
	cmd.Flags().BoolP("native", "", false, "Compute coverage histograms from BAM files without running an external program.")
}

// coverageSources returns one coverage source per input according to the
// source flags of cmd.
func coverageSources(cmd *cobra.Command, inputs []string) ([]coverage.Source, error) {
	flags := cmd.Flags()
	histograms, err := flags.GetBool("histograms")
	if err != nil {
		return nil, err
	}
	native, err := flags.GetBool("native")
	if err != nil {
		return nil, err
	}
	if histograms && native {
		return nil, errors.New("--histograms and --native are mutually exclusive")
	}

	genomeCov := viper.GetString("coverage-cmd")
	sources := make([]coverage.Source, len(inputs))
	for i, in := range inputs {
		switch {
		case histograms:
			sources[i] = coverage.HistogramFile(in)
		case native:
			sources[i] = coverage.BAM(in)
		default:
			sources[i] = coverage.Bedtools(in, genomeCov, os.Stderr)
		}
	}
	return sources, nil
}
