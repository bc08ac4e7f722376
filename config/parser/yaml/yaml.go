package yaml

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/0xalexb/objectops/dotpath"

	"github.com/goccy/go-yaml"
)

// ErrEmptyData is returned when the input data is empty.
var ErrEmptyData = errors.New("empty data")

// ErrPathNotFound is returned when the specified path is not found in the YAML document.
var ErrPathNotFound = errors.New("path not found")

// Parser implements config.Parser interface for YAML data.
// It uses goccy/go-yaml PathString for path navigation.
type Parser struct {
	strict bool
}

// Option configures a Parser.
type Option func(*Parser)

// WithStrict rejects fields that do not exist in the target structure.
func WithStrict() Option {
	return func(p *Parser) {
		p.strict = true
	}
}

// NewParser creates a new YAML parser instance.
func NewParser(opts ...Option) *Parser {
	parser := &Parser{}

	for _, apply := range opts {
		apply(parser)
	}

	return parser
}

// Parse parses YAML data and unmarshals it into the target.
// The path parameter is a dot path selecting a section of the document.
// Empty path parses the entire document.
func (p *Parser) Parse(data []byte, target any, path string) error {
	if len(data) == 0 {
		return ErrEmptyData
	}

	var decodeOpts []yaml.DecodeOption
	if p.strict {
		decodeOpts = append(decodeOpts, yaml.Strict())
	}

	if path == "" {
		err := yaml.UnmarshalWithOptions(data, target, decodeOpts...)
		if err != nil {
			return fmt.Errorf("unmarshal error: %w", err)
		}

		return nil
	}

	yamlPath, err := convertToYAMLPath(path)
	if err != nil {
		return fmt.Errorf("invalid path %q: %w", path, err)
	}

	pathObj, err := yaml.PathString(yamlPath)
	if err != nil {
		return fmt.Errorf("invalid path %q: %w", path, err)
	}

	node, err := pathObj.ReadNode(bytes.NewReader(data))
	if err != nil {
		if isKeyNotFoundError(err) {
			return fmt.Errorf("%w: %s", ErrPathNotFound, path)
		}

		return fmt.Errorf("reading path %q: %w", path, err)
	}

	err = yaml.NodeToValue(node, target, decodeOpts...)
	if err != nil {
		return fmt.Errorf("unmarshal error at %q: %w", path, err)
	}

	return nil
}

// convertToYAMLPath converts a dot path to goccy/go-yaml PathString format.
// Examples:
//   - "key" -> "$.key"
//   - "recipes.cleanup" -> "$.recipes.cleanup"
func convertToYAMLPath(path string) (string, error) {
	parsed, err := dotpath.Parse(path)
	if err != nil {
		return "", err //nolint:wrapcheck // wrapped by the caller
	}

	return "$." + parsed.String(), nil
}

// isKeyNotFoundError checks if the error indicates a key was not found.
func isKeyNotFoundError(err error) bool {
	return yaml.IsNotFoundNodeError(err)
}
