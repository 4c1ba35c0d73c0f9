package coverage

import (
	"os/exec"
	"testing"

	"github.com/eernst/contigtable/proc"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenomeCovCommand(t *testing.T) {
	cmd, err := GenomeCov{BAM: "reads.bam"}.BuildCommand()
	require.NoError(t, err)
	assert.Equal(t, []string{DefaultGenomeCovCmd, "-ibam", "reads.bam"}, cmd.Args)

	cmd, err = GenomeCov{Cmd: "/opt/bedtools/genomeCoverageBed", BAM: "x.bam"}.BuildCommand()
	require.NoError(t, err)
	assert.Equal(t, []string{"/opt/bedtools/genomeCoverageBed", "-ibam", "x.bam"}, cmd.Args)
}

type shell string

func (s shell) BuildCommand() (*exec.Cmd, error) {
	return exec.Command("sh", "-c", string(s)), nil
}

func TestCommandSource(t *testing.T) {
	src := Command("s1", shell(`printf 'ctgA\t0\t1\t4\t0.25\nctgA\t2\t3\t4\t0.75\n'`), nil)
	assert.Equal(t, "s1", src.Name())

	table, err := src.Table()
	require.NoError(t, err)
	s, ok := table.Lookup("ctgA")
	require.True(t, ok)
	assert.InDelta(t, 1.5, s.MeanDepth, 1e-12)
	assert.InDelta(t, 75.0, s.Covered(), 1e-12)
}

func TestCommandSourceFailure(t *testing.T) {
	_, err := Command("s1", shell("echo oops; exit 1"), nil).Table()
	require.Error(t, err)
	var exitErr *proc.ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, "oops\n", string(exitErr.Stdout))
}
