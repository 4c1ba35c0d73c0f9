package cmd

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/eernst/contigtable/seqmath"
	"github.com/eernst/contigtable/seqstats"
	"github.com/eernst/contigtable/table"

	"github.com/pkg/errors"
	"github.com/shenwei356/xopen"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/stat"
)

func init() {
	RootCmd.AddCommand(infoCmd)

	infoCmd.Flags().BoolP("summary", "s", false, "Only output summary info for all sequences.")
	infoCmd.Flags().BoolP("print-header", "", false, "Include column header in output.")
}

var infoCmd = &cobra.Command{
	Use:   "info [FASTA_FILE]",
	Short: "Show contig length and GC content.",
	Long: `

Print contig name, length and GC content in a tabular format, one contig per
row, with the values used by the table command. A summary of the assembly is
written to STDERR, or to STDOUT alone with --summary.

Sequences are read from STDIN when no file is given. Compressed input is
detected automatically.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		flags := cmd.Flags()
		summaryOnly, err := flags.GetBool("summary")
		if err != nil {
			return err
		}
		printHeader, err := flags.GetBool("print-header")
		if err != nil {
			return err
		}

		fastaFile := "-"
		if len(args) == 1 {
			fastaFile = args[0]
		}
		contigs, err := seqstats.ReadFile(fastaFile)
		if err != nil {
			return err
		}
		if contigs.Len() == 0 {
			return errors.Errorf("no sequences in %s", fastaFile)
		}

		writer, err := xopen.Wopen("-") // "-" for STDOUT
		if err != nil {
			return err
		}
		defer writer.Close()

		var summaryOut io.Writer = os.Stderr
		if summaryOnly {
			summaryOut = writer
		} else {
			if printHeader {
				fmt.Fprintf(writer, "contig\tlength\tGC\n")
			}
			for _, c := range contigs.Contigs() {
				fmt.Fprintf(writer, "%s\t%d\t%s\n", c.ID, c.Length, table.FormatGC(c.GC))
			}
			// Keep the summary after the rows when both go to a terminal.
			if err := writer.Flush(); err != nil {
				return err
			}
		}
		writeSummary(summaryOut, summarize(contigs))
		return nil
	},
}

type assemblySummary struct {
	seqs     int
	length   int
	gcMean   float64 // weighted by length
	gcStdDev float64
	shortest int
	longest  int
	median   int
	n50      int
	n75      int
}

func summarize(contigs *seqstats.Set) assemblySummary {
	var (
		s       = assemblySummary{seqs: contigs.Len()}
		gcs     = make([]float64, 0, contigs.Len())
		weights = make([]float64, 0, contigs.Len())
		seqLens = make([]int, 0, contigs.Len())
	)
	for _, c := range contigs.Contigs() {
		s.length += c.Length
		gcs = append(gcs, c.GC)
		weights = append(weights, float64(c.Length))
		seqLens = append(seqLens, c.Length)
	}
	sort.Ints(seqLens)
	s.shortest = seqLens[0]
	s.longest = seqLens[len(seqLens)-1]
	s.median = seqmath.Median(seqLens)
	nxx := seqmath.Nxx(seqLens, s.length)
	s.n50, s.n75 = nxx[50], nxx[75]
	if s.length > 0 {
		s.gcMean, s.gcStdDev = stat.MeanStdDev(gcs, weights)
	}
	return s
}

func writeSummary(w io.Writer, s assemblySummary) {
	const sep string = "--------------------\n"
	fmt.Fprintf(w, "\nSUMMARY\n"+sep)
	fmt.Fprintf(w, "Total Seqs (#): %23d\n", s.seqs)
	fmt.Fprintf(w, "Total Length (bp): %20d\n", s.length)
	fmt.Fprintf(w, "Overall GC Content (%%): %15.2f\n", s.gcMean)
	fmt.Fprintf(w, "GC Std. Dev. (%%): %21.2f\n", s.gcStdDev)
	fmt.Fprintf(w, "Shortest (bp): %24d\n", s.shortest)
	fmt.Fprintf(w, "Longest (bp): %25d\n", s.longest)
	fmt.Fprintf(w, "Median (bp): %26d\n", s.median)
	fmt.Fprintf(w, "N50 (bp): %29d\n", s.n50)
	fmt.Fprintf(w, "N75 (bp): %29d\n", s.n75)
}
