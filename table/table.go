// Package table writes the per-contig feature table consumed by the binning
// classifier.
package table

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/eernst/contigtable/coverage"
	"github.com/eernst/contigtable/seqstats"
	"github.com/eernst/contigtable/taxonomy"

	"github.com/pkg/errors"
)

// Missing is written in place of a taxonomy rank absent for a contig.
const Missing = "N/A"

var (
	ErrNoContigs   = errors.New("table: no contigs")
	ErrSampleCount = errors.New("table: number of sample names does not match number of coverage tables")
)

// Header returns the column names for nsamples samples. names may be nil,
// in which case samples are labelled by their zero-based index.
func Header(nsamples int, names []string) []string {
	cols := []string{"contig", "length", "GC"}
	cols = append(cols, taxonomy.Ranks[:]...)
	for i := 0; i < nsamples; i++ {
		label := "sample_" + strconv.Itoa(i)
		if names != nil {
			label = names[i]
		}
		cols = append(cols, "cov_mean_"+label, "percentage_covered_"+label)
	}
	return cols
}

// Write writes the header and one row per contig to w, in contig order.
// Each row is written as soon as it is formatted, so a failing writer leaves
// the rows written so far in place.
func Write(w io.Writer, contigs *seqstats.Set, tax taxonomy.Table, covs []coverage.Table, names []string) error {
	if contigs == nil || contigs.Len() == 0 {
		return ErrNoContigs
	}
	if names != nil && len(names) != len(covs) {
		return errors.Wrapf(ErrSampleCount, "%d names, %d tables", len(names), len(covs))
	}

	if _, err := io.WriteString(w, strings.Join(Header(len(covs), names), "\t")+"\n"); err != nil {
		return err
	}
	var b strings.Builder
	for _, c := range contigs.Contigs() {
		b.Reset()
		b.WriteString(c.ID)
		b.WriteByte('\t')
		b.WriteString(strconv.Itoa(c.Length))
		b.WriteByte('\t')
		b.WriteString(FormatGC(c.GC))
		for i := range taxonomy.Ranks {
			v, ok := tax.Rank(c.ID, i)
			if !ok {
				v = Missing
			}
			b.WriteByte('\t')
			b.WriteString(v)
		}
		for _, t := range covs {
			b.WriteByte('\t')
			b.WriteString(CoverageCells(t, c.ID))
		}
		b.WriteByte('\n')
		if _, err := io.WriteString(w, b.String()); err != nil {
			return err
		}
	}
	return nil
}

// CoverageCells formats the mean depth and percentage covered of contig id
// as two tab-separated cells. A contig without mapped reads is written as
// "0\t0"; one without a zero-depth bucket is 100% covered.
func CoverageCells(t coverage.Table, id string) string {
	s, ok := t.Lookup(id)
	if !ok || !s.HasMeanDepth {
		return "0\t0"
	}
	return fmt.Sprintf("%f\t%f", s.MeanDepth, s.Covered())
}

// FormatGC returns the shortest decimal representation of v that parses
// back to v, with a trailing ".0" for integral values.
func FormatGC(v float64) string {
	var s string
	if a := abs(v); a != 0 && (a < 1e-4 || a >= 1e16) {
		s = strconv.FormatFloat(v, 'e', -1, 64)
	} else {
		s = strconv.FormatFloat(v, 'f', -1, 64)
	}
	if !strings.ContainsAny(s, ".eIN") {
		s += ".0"
	}
	return s
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
