package cmd

import (
	"fmt"
	"sort"

	"github.com/eernst/contigtable/coverage"
	"github.com/eernst/contigtable/table"

	"github.com/shenwei356/xopen"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func init() {
	RootCmd.AddCommand(coverageCmd)

	coverageCmd.Flags().BoolP("print-header", "", false, "Include column header in output.")
	addSourceFlags(coverageCmd)
}

var coverageCmd = &cobra.Command{
	Use:   "coverage BAM_FILE...",
	Short: "Show per-contig mean coverage and percentage covered.",
	Long: `

Print sample, contig, mean coverage and percentage of bases covered for every
contig of every input, sorted by contig. Inputs are processed in order.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		printHeader, err := cmd.Flags().GetBool("print-header")
		if err != nil {
			return err
		}
		sources, err := coverageSources(cmd, args)
		if err != nil {
			return err
		}

		writer, err := xopen.Wopen("-") // "-" for STDOUT
		if err != nil {
			return err
		}
		defer writer.Close()

		if printHeader {
			fmt.Fprintf(writer, "sample\tcontig\tcov_mean\tpercentage_covered\n")
		}
		for _, src := range sources {
			log.Debugf("computing coverage for %s", src.Name())
			t, err := src.Table()
			if err != nil {
				return err
			}
			ids := make([]string, 0, len(t))
			for id := range t {
				if id != coverage.GenomeKey {
					ids = append(ids, id)
				}
			}
			sort.Strings(ids)
			for _, id := range ids {
				fmt.Fprintf(writer, "%s\t%s\t%s\n", src.Name(), id, table.CoverageCells(t, id))
			}
		}
		return nil
	},
}
