package dotpath

import (
	"fmt"
	"strings"
)

// Separator delimits path segments.
const Separator = "."

// Path is a parsed dot path. It always holds at least one non-empty segment when
// produced by Parse.
type Path []string

// Parse splits s on Separator.
func Parse(s string) (Path, error) {
	if s == "" {
		return nil, ErrEmptyPath
	}

	segments := strings.Split(s, Separator)
	for _, segment := range segments {
		if segment == "" {
			return nil, fmt.Errorf("%w: %q", ErrEmptySegment, s)
		}
	}

	return Path(segments), nil
}

// MustParse is like Parse but panics on error. It is meant for paths known at
// compile time.
func MustParse(s string) Path {
	path, err := Parse(s)
	if err != nil {
		panic(err)
	}

	return path
}

// String joins the segments back into dot notation.
func (p Path) String() string {
	return strings.Join(p, Separator)
}

// Parent returns the path without its last segment, or nil for a single-segment
// path.
func (p Path) Parent() Path {
	if len(p) <= 1 {
		return nil
	}

	return p[:len(p)-1]
}

// Last returns the final segment.
func (p Path) Last() string {
	if len(p) == 0 {
		return ""
	}

	return p[len(p)-1]
}
