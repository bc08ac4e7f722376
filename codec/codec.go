// Package codec decodes and encodes documents as JSON or YAML.
package codec

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
)

// Format is a document serialization format.
type Format string

const (
	// JSON is RFC 8259 JSON.
	JSON Format = "json"
	// YAML is YAML 1.2.
	YAML Format = "yaml"
)

// ErrUnknownFormat is returned for a format name or media type that is not supported.
var ErrUnknownFormat = errors.New("unknown format")

// ErrNotADocument is returned when the input decodes to something other than a mapping.
var ErrNotADocument = errors.New("input is not a mapping")

// ParseFormat parses a format name. "yml" is accepted as YAML.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "json":
		return JSON, nil
	case "yaml", "yml":
		return YAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// FormatFromPath guesses the format from a file extension, falling back to YAML,
// which also reads JSON.
func FormatFromPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return JSON
	}

	return YAML
}

// FormatFromMediaType maps a Content-Type value to a format. An empty media type
// is read as JSON.
func FormatFromMediaType(mediaType string) (Format, error) {
	base, _, _ := strings.Cut(mediaType, ";")

	switch strings.ToLower(strings.TrimSpace(base)) {
	case "", "application/json":
		return JSON, nil
	case "application/yaml", "application/x-yaml", "text/yaml", "text/x-yaml":
		return YAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, mediaType)
	}
}

// MediaType returns the Content-Type used when serving f.
func (f Format) MediaType() string {
	if f == YAML {
		return "application/yaml"
	}

	return "application/json"
}

// Decode parses data into a document. Empty input decodes to an empty document.
func Decode(data []byte, format Format) (map[string]any, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return map[string]any{}, nil
	}

	value, err := DecodeValue(data, format)
	if err != nil {
		return nil, err
	}

	doc, ok := value.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: got %T", ErrNotADocument, value)
	}

	return doc, nil
}

// DecodeValue parses data as any JSON or YAML value, such as a scalar given on
// the command line. Numbers are normalized as in Decode.
func DecodeValue(data []byte, format Format) (any, error) {
	var value any

	switch format {
	case JSON:
		decoder := json.NewDecoder(bytes.NewReader(data))
		decoder.UseNumber()

		err := decoder.Decode(&value)
		if err != nil {
			return nil, fmt.Errorf("decoding json: %w", err)
		}
	case YAML:
		err := yaml.Unmarshal(data, &value)
		if err != nil {
			return nil, fmt.Errorf("decoding yaml: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	return normalizeNumbers(value), nil
}

// Encode renders doc. JSON output is indented with two spaces and ends with a
// newline; map keys are sorted in both formats.
func Encode(doc map[string]any, format Format) ([]byte, error) {
	switch format {
	case JSON:
		out, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("encoding json: %w", err)
		}

		return append(out, '\n'), nil
	case YAML:
		out, err := yaml.Marshal(doc)
		if err != nil {
			return nil, fmt.Errorf("encoding yaml: %w", err)
		}

		return out, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// normalizeNumbers turns json.Number into int64 when the number is integral and
// into float64 otherwise, and narrows YAML's uint64 to int64 when it fits, so
// that JSON and YAML input yield comparable values.
func normalizeNumbers(value any) any {
	switch typed := value.(type) {
	case int:
		return int64(typed)
	case uint64:
		if typed <= math.MaxInt64 {
			return int64(typed) //nolint:gosec // bounds checked above
		}

		return typed
	case json.Number:
		if i, err := typed.Int64(); err == nil {
			return i
		}

		f, _ := typed.Float64()

		return f
	case map[string]any:
		for key, elem := range typed {
			typed[key] = normalizeNumbers(elem)
		}

		return typed
	case []any:
		for i, elem := range typed {
			typed[i] = normalizeNumbers(elem)
		}

		return typed
	default:
		return value
	}
}
