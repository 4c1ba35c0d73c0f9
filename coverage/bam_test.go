package coverage

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/biogo/hts/bam"
	"github.com/biogo/hts/sam"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRecord(t *testing.T, name string, ref *sam.Reference, pos int, cigar []sam.CigarOp, seq string) *sam.Record {
	t.Helper()
	qual := bytes.Repeat([]byte{30}, len(seq))
	r, err := sam.NewRecord(name, ref, nil, pos, -1, 0, 60, cigar, []byte(seq), qual, nil)
	require.NoError(t, err)
	return r
}

func testBAM(t *testing.T) []byte {
	t.Helper()
	refA, err := sam.NewReference("ctgA", "", "", 10, nil, nil)
	require.NoError(t, err)
	refB, err := sam.NewReference("ctgB", "", "", 5, nil, nil)
	require.NoError(t, err)
	h, err := sam.NewHeader(nil, []*sam.Reference{refA, refB})
	require.NoError(t, err)

	var buf bytes.Buffer
	w, err := bam.NewWriter(&buf, h, 1)
	require.NoError(t, err)

	unmapped := newRecord(t, "r3", refA, 0, []sam.CigarOp{sam.NewCigarOp(sam.CigarMatch, 4)}, "ACGT")
	unmapped.Flags |= sam.Unmapped
	for _, r := range []*sam.Record{
		newRecord(t, "r1", refA, 0, []sam.CigarOp{sam.NewCigarOp(sam.CigarMatch, 4)}, "ACGT"),
		newRecord(t, "r2", refA, 2, []sam.CigarOp{
			sam.NewCigarOp(sam.CigarMatch, 3),
			sam.NewCigarOp(sam.CigarDeletion, 1),
			sam.NewCigarOp(sam.CigarMatch, 2),
		}, "GTACG"),
		unmapped,
	} {
		require.NoError(t, w.Write(r))
	}
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func TestReadBAM(t *testing.T) {
	bins, err := ReadBAM(bytes.NewReader(testBAM(t)))
	require.NoError(t, err)

	want := []Bin{
		{Contig: "ctgA", Depth: 0, Count: 2, Size: 10, Fraction: 0.2},
		{Contig: "ctgA", Depth: 1, Count: 6, Size: 10, Fraction: 0.6},
		{Contig: "ctgA", Depth: 2, Count: 2, Size: 10, Fraction: 0.2},
		{Contig: "ctgB", Depth: 0, Count: 5, Size: 5, Fraction: 1},
		{Contig: GenomeKey, Depth: 0, Count: 7, Size: 15, Fraction: 7.0 / 15},
		{Contig: GenomeKey, Depth: 1, Count: 6, Size: 15, Fraction: 6.0 / 15},
		{Contig: GenomeKey, Depth: 2, Count: 2, Size: 15, Fraction: 2.0 / 15},
	}
	assert.Equal(t, want, bins)
}

func TestBAMSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reads.bam")
	require.NoError(t, os.WriteFile(path, testBAM(t), 0o644))

	table, err := BAM(path).Table()
	require.NoError(t, err)

	a, ok := table.Lookup("ctgA")
	require.True(t, ok)
	assert.InDelta(t, 1.0, a.MeanDepth, 1e-12)
	assert.InDelta(t, 80.0, a.Covered(), 1e-12)

	b, ok := table.Lookup("ctgB")
	require.True(t, ok)
	assert.False(t, b.HasMeanDepth)
}
