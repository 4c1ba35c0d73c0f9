package coverage

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/shenwei356/xopen"
)

// ParseFile reads a genomeCoverageBed histogram from the file at path.
func ParseFile(path string) (Table, error) {
	r, err := xopen.Ropen(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open histogram %s", path)
	}
	defer r.Close()
	t, err := Parse(r)
	if err != nil {
		return nil, errors.Wrapf(err, "histogram %s", path)
	}
	return t, nil
}

// ParseText reads a genomeCoverageBed histogram held in memory, as captured
// from the tool's standard output.
func ParseText(text string) (Table, error) {
	return Parse(strings.NewReader(text))
}

// Parse reads genomeCoverageBed histogram lines from r. Blank lines are
// ignored; any other line must have at least five whitespace-separated
// fields.
func Parse(r io.Reader) (Table, error) {
	a := NewAggregator()
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for n := 1; sc.Scan(); n++ {
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		b, err := parseBin(fields)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", n)
		}
		a.Add(b)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return a.Table(), nil
}

func parseBin(fields []string) (Bin, error) {
	if len(fields) < 5 {
		return Bin{}, errors.Errorf("expected 5 fields, got %d", len(fields))
	}
	var (
		b   = Bin{Contig: fields[0]}
		err error
	)
	if b.Depth, err = strconv.Atoi(fields[1]); err != nil {
		return Bin{}, errors.Wrap(err, "depth")
	}
	if b.Count, err = strconv.ParseInt(fields[2], 10, 64); err != nil {
		return Bin{}, errors.Wrap(err, "count")
	}
	if b.Size, err = strconv.ParseInt(fields[3], 10, 64); err != nil {
		return Bin{}, errors.Wrap(err, "size")
	}
	if b.Fraction, err = strconv.ParseFloat(fields[4], 64); err != nil {
		return Bin{}, errors.Wrap(err, "fraction")
	}
	return b, nil
}
