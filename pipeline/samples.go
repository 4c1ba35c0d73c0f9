package pipeline

import (
	"bufio"
	"strings"

	"github.com/pkg/errors"
	"github.com/shenwei356/xopen"
)

// ReadSampleNames reads one sample name per line from path. Line terminators
// are removed; a blank line is an empty name.
func ReadSampleNames(path string) ([]string, error) {
	r, err := xopen.Ropen(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open sample names %s", path)
	}
	defer r.Close()

	names := []string{}
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		names = append(names, strings.TrimSuffix(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrapf(err, "read sample names %s", path)
	}
	return names, nil
}
