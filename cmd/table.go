package cmd

import (
	"github.com/eernst/contigtable/pipeline"

	"github.com/spf13/cobra"
)

func init() {
	RootCmd.AddCommand(tableCmd)

	tableCmd.Flags().StringP("samplenames", "", "", "File with sample names, one per line. Must list as many names as BAM files.")
	addSourceFlags(tableCmd)
}

var tableCmd = &cobra.Command{
	Use:   "table FASTA_FILE TAXONOMY_FILE BAM_FILE...",
	Short: "Write the per-contig input table for genome binning.",
	Long: `

table writes one tab-delimited row per contig of FASTA_FILE to standard output:
contig, length, GC, the six taxonomy ranks of TAXONOMY_FILE and, for every
BAM_FILE, the mean coverage and percentage of bases covered.

TAXONOMY_FILE is comma-delimited with seven fields per line and no header:
contig, phylum, class, order, family, genus, species.

Coverage is computed with genomeCoverageBed -ibam, one BAM file at a time.`,
	Args: cobra.MinimumNArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		flags := cmd.Flags()

		var names []string
		namesFile, err := flags.GetString("samplenames")
		if err != nil {
			return err
		}
		if namesFile != "" {
			if names, err = pipeline.ReadSampleNames(namesFile); err != nil {
				return err
			}
		}

		sources, err := coverageSources(cmd, args[2:])
		if err != nil {
			return err
		}
		return pipeline.Run(pipeline.Config{
			Fasta:       args[0],
			Taxonomy:    args[1],
			Sources:     sources,
			SampleNames: names,
			Out:         cmd.OutOrStdout(),
		})
	},
}
