package builddir

import (
	"iter"
	"strings"
)

// splitLines yields the lines of s without their terminators. Both "\n" and
// "\r\n" endings are accepted.
func splitLines(s string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for line := range strings.Lines(s) {
			line = strings.TrimSuffix(line, "\n")
			line = strings.TrimSuffix(line, "\r")
			if !yield(line) {
				return
			}
		}
	}
}
