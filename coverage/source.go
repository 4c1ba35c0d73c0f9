package coverage

// Source produces the coverage table of one sample.
type Source interface {
	Name() string
	Table() (Table, error)
}

type fileSource string

// HistogramFile returns a Source reading a pre-computed genomeCoverageBed
// histogram from path.
func HistogramFile(path string) Source { return fileSource(path) }

func (f fileSource) Name() string          { return string(f) }
func (f fileSource) Table() (Table, error) { return ParseFile(string(f)) }

type bamSource string

// BAM returns a Source computing the depth histogram of the BAM file at path
// in-process.
func BAM(path string) Source { return bamSource(path) }

func (b bamSource) Name() string { return string(b) }

func (b bamSource) Table() (Table, error) {
	bins, err := ReadBAMFile(string(b))
	if err != nil {
		return nil, err
	}
	return Aggregate(bins), nil
}
