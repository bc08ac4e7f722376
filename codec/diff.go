package codec

import (
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Diff returns a line-oriented diff of two renderings. Each changed line is
// prefixed with "-" or "+", unchanged lines with a space. If colored is true the
// output uses ANSI colors instead of prefixes.
func Diff(before, after []byte, colored bool) string {
	dmp := diffpatch.New()

	a, b, lines := dmp.DiffLinesToChars(string(before), string(after))
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	if colored {
		return dmp.DiffPrettyText(diffs)
	}

	var out []byte

	for _, d := range diffs {
		prefix := byte(' ')

		switch d.Type {
		case diffpatch.DiffDelete:
			prefix = '-'
		case diffpatch.DiffInsert:
			prefix = '+'
		case diffpatch.DiffEqual:
		}

		for _, line := range splitLines(d.Text) {
			out = append(out, prefix)
			out = append(out, line...)
		}
	}

	return string(out)
}

// splitLines splits s after every newline, keeping the newline.
func splitLines(s string) []string {
	lines := strings.SplitAfter(s, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	return lines
}
