// Package coverage turns genomeCoverageBed depth histograms into per-contig
// mean depth and percentage of bases covered.
package coverage

// GenomeKey is the pseudo-contig under which genomeCoverageBed reports the
// histogram of the whole genome.
const GenomeKey = "genome"

// Bin is one line of a genomeCoverageBed histogram: Count of the Size bases
// of Contig have depth Depth, and Fraction is Count/Size.
type Bin struct {
	Contig   string
	Depth    int
	Count    int64
	Size     int64
	Fraction float64
}

// Stats summarizes the coverage of one contig. The Has fields record whether
// the corresponding value was observed in the histogram.
type Stats struct {
	MeanDepth         float64
	PercentCovered    float64
	HasMeanDepth      bool // some bases had depth > 0
	HasPercentCovered bool // some bases had depth 0
}

// Covered returns the percentage of bases with non-zero depth. A contig
// without a zero-depth bucket is fully covered.
func (s Stats) Covered() float64 {
	if !s.HasPercentCovered {
		return 100
	}
	return s.PercentCovered
}

// Table maps contig IDs to their coverage statistics for one sample.
type Table map[string]Stats

// Lookup returns the statistics for id and whether any histogram line
// mentioned it.
func (t Table) Lookup(id string) (Stats, bool) {
	s, ok := t[id]
	return s, ok
}

// Aggregator accumulates histogram bins into a Table. Bins for a contig may
// arrive in any order.
type Aggregator struct {
	table Table
}

func NewAggregator() *Aggregator {
	return &Aggregator{table: make(Table)}
}

// Add folds b into the running statistics of b.Contig.
func (a *Aggregator) Add(b Bin) {
	s := a.table[b.Contig]
	if b.Depth == 0 {
		s.PercentCovered = 100 - b.Fraction*100.0
		s.HasPercentCovered = true
	} else {
		s.MeanDepth += float64(b.Depth) * b.Fraction
		s.HasMeanDepth = true
	}
	a.table[b.Contig] = s
}

// Table returns the accumulated statistics. The Aggregator must not be used
// afterwards.
func (a *Aggregator) Table() Table { return a.table }

// Aggregate builds a Table from bins.
func Aggregate(bins []Bin) Table {
	a := NewAggregator()
	for _, b := range bins {
		a.Add(b)
	}
	return a.Table()
}
