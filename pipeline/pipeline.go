// Package pipeline joins sequence statistics, taxonomy and per-sample
// coverage into the contig feature table.
package pipeline

import (
	"io"

	"github.com/eernst/contigtable/coverage"
	"github.com/eernst/contigtable/seqstats"
	"github.com/eernst/contigtable/table"
	"github.com/eernst/contigtable/taxonomy"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

var ErrSampleCount = errors.New("number of sample names must equal number of coverage inputs")

// Config describes one run.
type Config struct {
	Fasta       string
	Taxonomy    string
	Sources     []coverage.Source // one per sample, in output column order
	SampleNames []string          // nil to label samples by index
	Out         io.Writer
}

// Run computes the coverage of every source in turn, then reads the FASTA
// and taxonomy files and writes the table to cfg.Out. The first error aborts
// the run; rows already written are not retracted.
func Run(cfg Config) error {
	if cfg.SampleNames != nil && len(cfg.SampleNames) != len(cfg.Sources) {
		return errors.Wrapf(ErrSampleCount, "%d names, %d inputs", len(cfg.SampleNames), len(cfg.Sources))
	}

	covs := make([]coverage.Table, 0, len(cfg.Sources))
	for _, src := range cfg.Sources {
		log.Debugf("computing coverage for %s", src.Name())
		t, err := src.Table()
		if err != nil {
			return errors.Wrapf(err, "coverage of %s", src.Name())
		}
		log.Debugf("%s: %d coverage entries", src.Name(), len(t))
		covs = append(covs, t)
	}

	log.Debugf("reading contigs from %s", cfg.Fasta)
	contigs, err := seqstats.ReadFile(cfg.Fasta)
	if err != nil {
		return err
	}
	log.Debugf("reading taxonomy from %s", cfg.Taxonomy)
	tax, err := taxonomy.ReadFile(cfg.Taxonomy)
	if err != nil {
		return err
	}

	if err := table.Write(cfg.Out, contigs, tax, covs, cfg.SampleNames); err != nil {
		return err
	}
	log.Debugf("wrote %d contigs", contigs.Len())
	return nil
}
