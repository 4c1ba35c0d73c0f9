package coverage

import (
	"io"
	"os/exec"

	"github.com/eernst/contigtable/proc"

	"github.com/biogo/external"
	log "github.com/sirupsen/logrus"
)

// DefaultGenomeCovCmd is the bedtools program producing depth histograms.
const DefaultGenomeCovCmd = "genomeCoverageBed"

// GenomeCov runs a genome coverage histogram for a BAM file:
//
//	genomeCoverageBed -ibam <bam>
type GenomeCov struct {
	Cmd string `buildarg:"{{if .}}{{.}}{{else}}genomeCoverageBed{{end}}"`
	BAM string `buildarg:"{{if .}}-ibam{{split}}{{.}}{{end}}"`
}

func (g GenomeCov) BuildCommand() (*exec.Cmd, error) {
	cl, err := external.Build(g)
	if err != nil {
		return nil, err
	}
	return exec.Command(cl[0], cl[1:]...), nil
}

type commandSource struct {
	cb     external.CommandBuilder
	name   string
	stderr io.Writer
}

// Bedtools returns a Source that runs genomeCoverageBed (or cmd, when not
// empty) on the BAM file at path and parses its standard output. A non-zero
// exit of the tool is returned as a *proc.ExitError.
func Bedtools(path, cmd string, stderr io.Writer) Source {
	return commandSource{cb: GenomeCov{Cmd: cmd, BAM: path}, name: path, stderr: stderr}
}

// Command returns a Source that runs cb and parses its standard output as a
// depth histogram.
func Command(name string, cb external.CommandBuilder, stderr io.Writer) Source {
	return commandSource{cb: cb, name: name, stderr: stderr}
}

func (s commandSource) Name() string { return s.name }

func (s commandSource) Table() (Table, error) {
	res := proc.Run(s.cb, s.stderr)
	if !res.OK() {
		if len(res.Stdout) > 0 {
			log.Errorf("coverage tool output for %s:\n%s", s.name, res.Stdout)
		}
		return nil, res.Err
	}
	return ParseText(string(res.Stdout))
}
