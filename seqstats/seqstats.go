// Package seqstats reads per-contig length and GC content from FASTA files.
package seqstats

import (
	"io"

	"github.com/eernst/contigtable/seqmath"

	"github.com/pkg/errors"
	"github.com/shenwei356/bio/seq"
	"github.com/shenwei356/bio/seqio/fastx"
)

// Contig holds the sequence statistics of one FASTA record.
type Contig struct {
	ID     string
	Length int
	GC     float64 // percent, 0-100
}

// Set is an ordered collection of contigs keyed by ID. Iteration follows
// the order in which IDs were first added.
type Set struct {
	contigs []Contig
	index   map[string]int
}

// NewSet returns an empty Set.
func NewSet() *Set {
	return &Set{index: make(map[string]int)}
}

// Add inserts c. A contig whose ID is already present replaces the earlier
// entry in place.
func (s *Set) Add(c Contig) {
	if i, ok := s.index[c.ID]; ok {
		s.contigs[i] = c
		return
	}
	s.index[c.ID] = len(s.contigs)
	s.contigs = append(s.contigs, c)
}

// Lookup returns the contig with the given ID.
func (s *Set) Lookup(id string) (Contig, bool) {
	i, ok := s.index[id]
	if !ok {
		return Contig{}, false
	}
	return s.contigs[i], true
}

func (s *Set) Len() int { return len(s.contigs) }

// Contigs returns the contigs in insertion order. The slice must not be
// modified.
func (s *Set) Contigs() []Contig { return s.contigs }

// ReadFile parses the FASTA file at path ("-" for stdin, compressed files
// are detected) and returns the length and GC content of every record.
func ReadFile(path string) (*Set, error) {
	seq.ValidateSeq = false
	reader, err := fastx.NewDefaultReader(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open fasta %s", path)
	}
	defer reader.Close()

	set := NewSet()
	for {
		record, err := reader.Read()
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, errors.Wrapf(err, "read fasta %s", path)
		}
		set.Add(Contig{
			ID:     string(record.ID),
			Length: len(record.Seq.Seq),
			GC:     seqmath.GC(record.Seq.Seq),
		})
	}
	return set, nil
}
