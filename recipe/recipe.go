package recipe

import (
	"errors"
	"fmt"
	"strings"

	"github.com/0xalexb/objectops/config"
	filefetcher "github.com/0xalexb/objectops/config/fetcher/file"
	yamlparser "github.com/0xalexb/objectops/config/parser/yaml"
	"github.com/0xalexb/objectops/dotpath"
)

// DefaultName is given to recipes that do not name themselves.
const DefaultName = "recipe"

// Op names a step operation.
type Op string

// Supported step operations.
const (
	OpMove      Op = "move"
	OpRemove    Op = "remove"
	OpTransform Op = "transform"
	OpSet       Op = "set"
	OpPatch     Op = "patch"
)

var (
	// ErrNoSteps is returned when a recipe has no steps.
	ErrNoSteps = errors.New("recipe has no steps")

	// ErrUnknownOp is returned for a step whose op is not supported.
	ErrUnknownOp = errors.New("unknown op")

	// ErrMissingField is returned when a step lacks a field its op requires.
	ErrMissingField = errors.New("missing field")
)

// Step is a single edit.
// Which fields are used depends on Op.
type Step struct {
	Op    Op               `yaml:"op"`
	From  string           `yaml:"from,omitempty"`
	To    string           `yaml:"to,omitempty"`
	Path  string           `yaml:"path,omitempty"`
	Paths []string         `yaml:"paths,omitempty"`
	Expr  string           `yaml:"expr,omitempty"`
	Value any              `yaml:"value,omitempty"`
	Patch []map[string]any `yaml:"patch,omitempty"`
}

// Recipe is a named, ordered list of steps.
// When Atomic is set a failing run leaves the input document untouched.
type Recipe struct {
	Name   string `yaml:"name"`
	Atomic bool   `yaml:"atomic"`
	Steps  []Step `yaml:"steps"`
}

// SetDefaults names an anonymous recipe, lower-cases ops and folds a single
// remove path into paths.
func (r *Recipe) SetDefaults() bool {
	changed := false

	if r.Name == "" {
		r.Name = DefaultName
		changed = true
	}

	for i := range r.Steps {
		step := &r.Steps[i]

		normalized := Op(strings.ToLower(strings.TrimSpace(string(step.Op))))
		if normalized != step.Op {
			step.Op = normalized
			changed = true
		}

		if step.Op == OpRemove && step.Path != "" && len(step.Paths) == 0 {
			step.Paths = []string{step.Path}
			step.Path = ""
			changed = true
		}
	}

	return changed
}

// Validate checks every step. The error names the zero-based index of the
// first invalid step.
func (r *Recipe) Validate() error {
	if len(r.Steps) == 0 {
		return ErrNoSteps
	}

	for i, step := range r.Steps {
		err := step.validate()
		if err != nil {
			return fmt.Errorf("step %d (%s): %w", i, step.Op, err)
		}
	}

	return nil
}

func (s Step) validate() error {
	switch s.Op {
	case OpMove:
		return validatePaths(field{"from", s.From}, field{"to", s.To})
	case OpRemove:
		if len(s.Paths) == 0 {
			return fmt.Errorf("%w: paths", ErrMissingField)
		}

		for _, path := range s.Paths {
			err := validatePaths(field{"paths", path})
			if err != nil {
				return err
			}
		}

		return nil
	case OpTransform:
		if s.Expr == "" {
			return fmt.Errorf("%w: expr", ErrMissingField)
		}

		return validatePaths(field{"path", s.Path})
	case OpSet:
		return validatePaths(field{"path", s.Path})
	case OpPatch:
		if len(s.Patch) == 0 {
			return fmt.Errorf("%w: patch", ErrMissingField)
		}

		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownOp, s.Op)
	}
}

type field struct {
	name  string
	value string
}

func validatePaths(fields ...field) error {
	for _, f := range fields {
		if f.value == "" {
			return fmt.Errorf("%w: %s", ErrMissingField, f.name)
		}

		_, err := dotpath.Parse(f.value)
		if err != nil {
			return fmt.Errorf("%s: %w", f.name, err)
		}
	}

	return nil
}

// Load reads a recipe from a YAML file, or from the section of it selected by
// section when that is not empty. Unknown fields are rejected.
func Load(path, section string) (*Recipe, error) {
	fetcher, err := filefetcher.NewFetcher(path)()
	if err != nil {
		return nil, fmt.Errorf("loading recipe: %w", err)
	}

	loaded, err := config.Load(&Recipe{}, section, yamlparser.NewParser(yamlparser.WithStrict()), fetcher)
	if err != nil {
		return nil, fmt.Errorf("loading recipe %q: %w", path, err)
	}

	return loaded, nil
}
