package dotpath

import (
	"errors"
	"fmt"
)

// ErrEmptyPath is returned when an empty string is parsed as a path.
var ErrEmptyPath = errors.New("path must not be empty")

// ErrEmptySegment is returned when a path contains an empty segment, e.g. "a..b".
var ErrEmptySegment = errors.New("path segment must not be empty")

// ErrNilDocument is returned when a write or delete targets a nil document.
var ErrNilDocument = errors.New("document must not be nil")

// InvalidPathError is returned by Get when an intermediate segment does not
// resolve to a container.
//
// Depth is the index of the last segment that was successfully descended into,
// so a failure at the very first step reports -1.
type InvalidPathError struct {
	Path  Path
	Depth int
}

func (e *InvalidPathError) Error() string {
	return fmt.Sprintf("path %q is invalid at depth %d", e.Path.String(), e.Depth)
}

// NotTraversableError is returned by Set and Delete when a segment that must be
// descended into holds a value that is neither a container nor null.
type NotTraversableError struct {
	Path Path
	// Step is the key holding the blocking value.
	Step string
	// Value is the string form of the blocking value.
	Value string
}

func (e *NotTraversableError) Error() string {
	return fmt.Sprintf("path %q is not traversable on step %q: expected container, got %q",
		e.Path.String(), e.Step, e.Value)
}

// NotSerializableError is returned by DeepCopy for values that have no plain
// data representation, such as functions, channels or cyclic references.
type NotSerializableError struct {
	// Path locates the offending value; empty for the root.
	Path   string
	Reason string
}

func (e *NotSerializableError) Error() string {
	return fmt.Sprintf("value at %q is not serializable: %s", e.Path, e.Reason)
}

// stringify renders a blocking value the way it is reported to callers.
func stringify(value any) string {
	if s, ok := value.(string); ok {
		return s
	}

	return fmt.Sprint(value)
}
