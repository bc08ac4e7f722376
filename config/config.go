package config

import (
	"errors"
	"fmt"
	"log/slog"
	"reflect"

	"github.com/0xalexb/objectops/dotpath"
)

// ErrInvalidPath is returned by a provider whose section path does not parse.
var ErrInvalidPath = errors.New("invalid section path")

// Parser defines an interface for parsing configuration data into a target structure.
//
// The path parameter selects a section of the document using the same dot
// syntax as the rest of this module. For example:
//   - "service" selects config["service"]
//   - "recipes.cleanup" selects config["recipes"]["cleanup"]
//   - "" (empty path) means parse the entire document
//
// Parser implementations are responsible for path navigation internally.
// See config/parser/yaml for an implementation using goccy/go-yaml PathString.
type Parser interface {
	Parse(data []byte, target any, path string) error
}

// DataFetcher defines an interface for reading configuration data.
type DataFetcher interface {
	Fetch() ([]byte, error)
}

// Validator defines an interface for validating configuration structures.
type Validator interface {
	Validate() error
}

// Defaulter defines an interface for setting default values in configuration structures.
type Defaulter interface {
	SetDefaults() (changed bool)
}

// Provider returns a function that reads, parses, sets defaults, and validates configuration data.
// A non-empty path must be a valid dot path; it is checked before any data is fetched.
func Provider[T any](target *T, path string) func(Parser, DataFetcher) (*T, error) {
	return func(parser Parser, dataSourcer DataFetcher) (*T, error) {
		if path != "" {
			_, err := dotpath.Parse(path)
			if err != nil {
				return nil, fmt.Errorf("%w: %w", ErrInvalidPath, err)
			}
		}

		data, err := dataSourcer.Fetch()
		if err != nil {
			return nil, fmt.Errorf("reading data error: %w", err)
		}

		err = parser.Parse(data, target, path)
		if err != nil {
			return nil, fmt.Errorf("parsing error: %w", err)
		}

		targetDefaulter, isDefaulter := any(target).(Defaulter)
		if isDefaulter {
			changed := targetDefaulter.SetDefaults()
			if changed {
				slog.Debug("defaults applied",
					slog.String("path", path),
					slog.String("type", reflect.TypeFor[T]().String()))
			}
		}

		targetValidatable, isValidatable := any(target).(Validator)
		if isValidatable {
			err := targetValidatable.Validate()
			if err != nil {
				return nil, fmt.Errorf("validating error: %w", err)
			}
		}

		return target, nil
	}
}

// Load runs Provider once, for callers that do not use dependency injection.
func Load[T any](target *T, path string, parser Parser, fetcher DataFetcher) (*T, error) {
	return Provider(target, path)(parser, fetcher)
}
