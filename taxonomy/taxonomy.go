// Package taxonomy reads per-contig taxonomic assignments.
//
// The input is comma-delimited with no header and exactly seven fields per
// line: contig, phylum, class, order, family, genus, species. Fields are not
// quoted.
package taxonomy

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/shenwei356/xopen"
)

// Ranks lists the classification levels in file order.
var Ranks = [NumRanks]string{"phylum", "class", "order", "family", "genus", "species"}

const NumRanks = 6

// Record is the classification of one contig.
type Record struct {
	Contig string
	Ranks  [NumRanks]string
}

// FieldCountError reports a line that does not have exactly NumRanks+1
// fields.
type FieldCountError struct {
	Line   int
	Fields int
}

func (e *FieldCountError) Error() string {
	return fmt.Sprintf("taxonomy line %d: expected %d fields, got %d", e.Line, NumRanks+1, e.Fields)
}

// Table maps contig IDs to their classification.
type Table map[string]Record

// Lookup returns the record for contig.
func (t Table) Lookup(contig string) (Record, bool) {
	r, ok := t[contig]
	return r, ok
}

// Rank returns the value of rank i (an index into Ranks) for contig.
func (t Table) Rank(contig string, i int) (string, bool) {
	r, ok := t[contig]
	if !ok || i < 0 || i >= NumRanks {
		return "", false
	}
	return r.Ranks[i], true
}

// ReadFile reads the taxonomy file at path.
func ReadFile(path string) (Table, error) {
	r, err := xopen.Ropen(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open taxonomy %s", path)
	}
	defer r.Close()
	t, err := Read(r)
	if err != nil {
		return nil, errors.Wrapf(err, "taxonomy %s", path)
	}
	return t, nil
}

// Read parses taxonomy lines from r. Only the line terminator is removed from
// the last field; all other bytes are kept as is. A later line for the same
// contig replaces an earlier one.
func Read(r io.Reader) (Table, error) {
	br := bufio.NewReader(r)
	t := make(Table)
	for n := 1; ; n++ {
		line, err := br.ReadString('\n')
		if len(line) > 0 {
			fields := strings.Split(line, ",")
			if len(fields) != NumRanks+1 {
				return nil, &FieldCountError{Line: n, Fields: len(fields)}
			}
			fields[NumRanks] = strings.TrimSuffix(fields[NumRanks], "\n")
			rec := Record{Contig: fields[0]}
			copy(rec.Ranks[:], fields[1:])
			t[rec.Contig] = rec
		}
		if err == io.EOF {
			return t, nil
		}
		if err != nil {
			return nil, err
		}
	}
}
