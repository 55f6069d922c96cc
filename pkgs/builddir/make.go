package builddir

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"iter"
	"os/exec"
	"regexp"
	"slices"
	"strings"
)

// ErrMakeNotFound is returned when a Make target query runs without a
// resolved make executable.
var ErrMakeNotFound = errors.New("make executable not found")

// MakeError reports a failed "make -pn" run. Its output says nothing reliable
// about which targets exist, so it is never turned into a false result.
type MakeError struct {
	Make   string
	Dir    string
	Stderr string
	Err    error
}

func (e *MakeError) Error() string {
	msg := fmt.Sprintf("%s -pn in %s: %v", e.Make, e.Dir, e.Err)
	if s := strings.TrimSpace(e.Stderr); s != "" {
		msg += ": " + s
	}
	return msg
}

func (e *MakeError) Unwrap() error { return e.Err }

// A rule line in make's database starts with the target name and a colon.
var targetRe = regexp.MustCompile(`^([a-zA-Z0-9][a-zA-Z0-9_.]*):`)

// ParseMakeTargets returns the target names defined by lines of
// "make -pn" output, in order of appearance. Prerequisites listed after the
// colon are not targets.
func ParseMakeTargets(lines iter.Seq[string]) []string {
	var targets []string
	for line := range lines {
		if m := targetRe.FindStringSubmatch(line); m != nil {
			targets = append(targets, m[1])
		}
	}
	return targets
}

// MakeTargets runs "make -pn" in dir and returns the targets it defines.
// An empty makePath fails with ErrMakeNotFound; a failed run returns a
// *MakeError.
func MakeTargets(ctx context.Context, makePath, dir string) ([]string, error) {
	if makePath == "" {
		return nil, ErrMakeNotFound
	}
	cmd := exec.CommandContext(ctx, makePath, "-pn")
	cmd.Dir = dir
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	out, err := cmd.Output()
	if err != nil {
		return nil, &MakeError{Make: makePath, Dir: dir, Stderr: stderr.String(), Err: err}
	}
	return ParseMakeTargets(splitLines(string(out))), nil
}

// HasMakeTarget reports whether make defines target in dir.
func HasMakeTarget(ctx context.Context, makePath, dir, target string) (bool, error) {
	targets, err := MakeTargets(ctx, makePath, dir)
	if err != nil {
		return false, err
	}
	return slices.Contains(targets, target), nil
}
