package coverage

import (
	"io"
	"os"
	"sort"

	"github.com/biogo/hts/bam"
	"github.com/biogo/hts/sam"
	"github.com/pkg/errors"
)

// ReadBAMFile computes the depth histogram of the BAM file at path.
func ReadBAMFile(path string) ([]Bin, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open bam %s", path)
	}
	defer f.Close()
	bins, err := ReadBAM(f)
	if err != nil {
		return nil, errors.Wrapf(err, "bam %s", path)
	}
	return bins, nil
}

// ReadBAM computes a genomeCoverageBed style depth histogram from a BAM
// stream. Each mapped record covers its whole reference span, deletions and
// skipped regions included. Bins are ordered by reference as listed in the
// header, then by depth; the whole-genome bins under GenomeKey come last.
func ReadBAM(r io.Reader) ([]Bin, error) {
	br, err := bam.NewReader(r, 1)
	if err != nil {
		return nil, err
	}
	defer br.Close()

	refs := br.Header().Refs()
	// diffs[i][p] holds the change in depth at position p of reference i.
	diffs := make([][]int32, len(refs))
	for {
		rec, err := br.Read()
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, err
		}
		if rec.Flags&sam.Unmapped != 0 || rec.Ref == nil {
			continue
		}
		id := rec.Ref.ID()
		if id < 0 || id >= len(refs) {
			continue
		}
		if diffs[id] == nil {
			diffs[id] = make([]int32, refs[id].Len()+1)
		}
		start, end := clamp(rec.Pos, rec.End(), refs[id].Len())
		if start >= end {
			continue
		}
		diffs[id][start]++
		diffs[id][end]--
	}

	var (
		bins   []Bin
		genome = make(map[int]int64)
		total  int64
	)
	for i, ref := range refs {
		size := int64(ref.Len())
		if size == 0 {
			continue
		}
		hist := depthHistogram(diffs[i], ref.Len())
		for _, d := range sortedDepths(hist) {
			bins = append(bins, Bin{
				Contig:   ref.Name(),
				Depth:    d,
				Count:    hist[d],
				Size:     size,
				Fraction: float64(hist[d]) / float64(size),
			})
			genome[d] += hist[d]
		}
		total += size
	}
	for _, d := range sortedDepths(genome) {
		bins = append(bins, Bin{
			Contig:   GenomeKey,
			Depth:    d,
			Count:    genome[d],
			Size:     total,
			Fraction: float64(genome[d]) / float64(total),
		})
	}
	return bins, nil
}

func clamp(start, end, length int) (int, int) {
	if start < 0 {
		start = 0
	}
	if end > length {
		end = length
	}
	return start, end
}

// depthHistogram counts positions of a reference of the given length by
// depth. A nil diff means no record mapped to the reference.
func depthHistogram(diff []int32, length int) map[int]int64 {
	hist := make(map[int]int64)
	if diff == nil {
		hist[0] = int64(length)
		return hist
	}
	var depth int32
	for p := 0; p < length; p++ {
		depth += diff[p]
		hist[int(depth)]++
	}
	return hist
}

func sortedDepths(hist map[int]int64) []int {
	depths := make([]int, 0, len(hist))
	for d := range hist {
		depths = append(depths, d)
	}
	sort.Ints(depths)
	return depths
}
