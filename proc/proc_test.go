package proc

import (
	"os/exec"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type shell string

func (s shell) BuildCommand() (*exec.Cmd, error) {
	return exec.Command("sh", "-c", string(s)), nil
}

func TestRunOK(t *testing.T) {
	res := Run(shell("printf 'a\\tb\\n'"), nil)
	require.True(t, res.OK(), "%v", res.Err)
	assert.Equal(t, "a\tb\n", string(res.Stdout))
	assert.Equal(t, []string{"sh", "-c", "printf 'a\\tb\\n'"}, res.Args)
}

func TestRunExitStatus(t *testing.T) {
	res := Run(shell("echo partial; exit 3"), nil)
	require.False(t, res.OK())

	var exitErr *ExitError
	require.ErrorAs(t, res.Err, &exitErr)
	assert.Equal(t, 3, exitErr.Status)
	assert.Equal(t, "partial\n", string(exitErr.Stdout))
	assert.Contains(t, exitErr.Error(), "exit status 3")
}

func TestRunMissingBinary(t *testing.T) {
	res := Run(missing{}, nil)
	require.False(t, res.OK())
	var exitErr *ExitError
	assert.False(t, errors.As(res.Err, &exitErr))
}

type missing struct{}

func (missing) BuildCommand() (*exec.Cmd, error) {
	return exec.Command("contigtable-no-such-binary"), nil
}
