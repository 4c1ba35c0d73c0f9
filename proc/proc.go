// Package proc runs external tools to completion and reports their output.
// There is no retry, timeout or cancellation.
package proc

import (
	"bytes"
	"fmt"
	"io"
	"os/exec"
	"strings"

	"github.com/biogo/external"
	"github.com/pkg/errors"
)

// ExitError is returned when a command exits with a non-zero status. Stdout
// holds everything the command wrote before exiting.
type ExitError struct {
	Args   []string
	Status int
	Stdout []byte
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("%s: exit status %d", strings.Join(e.Args, " "), e.Status)
}

// Result is the outcome of a single command run.
type Result struct {
	Args   []string
	Stdout []byte
	Err    error
}

// OK reports whether the command ran and exited with status zero.
func (r Result) OK() bool { return r.Err == nil }

// Run builds the command from cb, waits for it to exit and collects its
// standard output. The command's standard error goes to stderr, which may be
// nil to discard it.
func Run(cb external.CommandBuilder, stderr io.Writer) Result {
	cmd, err := cb.BuildCommand()
	if err != nil {
		return Result{Err: errors.Wrap(err, "build command")}
	}
	res := Result{Args: cmd.Args}

	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = stderr
	err = cmd.Run()
	res.Stdout = stdout.Bytes()

	var exitErr *exec.ExitError
	switch {
	case err == nil:
	case errors.As(err, &exitErr):
		res.Err = &ExitError{Args: cmd.Args, Status: exitErr.ExitCode(), Stdout: res.Stdout}
	default:
		res.Err = errors.Wrapf(err, "run %s", strings.Join(cmd.Args, " "))
	}
	return res
}
