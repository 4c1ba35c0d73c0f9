package seqstats

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/eernst/contigtable/seqmath"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
	return path
}

func TestReadFile(t *testing.T) {
	path := writeFile(t, "contigs.fa", ">ctgA some description\nAACCG\nGTTAC\n>ctgB\nGGGGGGGG\n>ctgC\nattn\n")

	set, err := ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, 3, set.Len())

	want := []Contig{
		{ID: "ctgA", Length: 10, GC: 50},
		{ID: "ctgB", Length: 8, GC: 100},
		{ID: "ctgC", Length: 4, GC: seqmath.GC([]byte("attn"))},
	}
	assert.Equal(t, want, set.Contigs())

	c, ok := set.Lookup("ctgB")
	assert.True(t, ok)
	assert.Equal(t, 8, c.Length)
	_, ok = set.Lookup("missing")
	assert.False(t, ok)
}

func TestReadFileMissing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "nope.fa"))
	assert.Error(t, err)
}

func TestSetDuplicateKeepsPosition(t *testing.T) {
	s := NewSet()
	s.Add(Contig{ID: "a", Length: 1})
	s.Add(Contig{ID: "b", Length: 2})
	s.Add(Contig{ID: "a", Length: 3})

	require.Equal(t, 2, s.Len())
	assert.Equal(t, "a", s.Contigs()[0].ID)
	assert.Equal(t, 3, s.Contigs()[0].Length)
}
