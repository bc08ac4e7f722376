package config

import (
	"errors"
	"testing"
)

var errFetch = errors.New("fetch failed")

type stubParser func(data []byte, target any, path string) error

func (p stubParser) Parse(data []byte, target any, path string) error {
	return p(data, target, path)
}

type stubFetcher func() ([]byte, error)

func (f stubFetcher) Fetch() ([]byte, error) {
	return f()
}

func staticData() stubFetcher {
	return func() ([]byte, error) { return []byte("doc"), nil }
}

// editConfig mimics a recipe section: a name defaulted by SetDefaults and a
// step count checked by Validate.
type editConfig struct {
	Name  string
	Steps int
}

var errNoSteps = errors.New("no steps")

func (c *editConfig) SetDefaults() bool {
	if c.Name != "" {
		return false
	}

	c.Name = "recipe"

	return true
}

func (c *editConfig) Validate() error {
	if c.Steps == 0 {
		return errNoSteps
	}

	return nil
}

func TestLoad_SectionPathDefaultsAndValidation(t *testing.T) {
	t.Parallel()

	var gotPath string

	parser := stubParser(func(_ []byte, target any, path string) error {
		gotPath = path
		target.(*editConfig).Steps = 2 //nolint:forcetypeassert // test target

		return nil
	})

	cfg, err := Load(&editConfig{}, "recipes.cleanup", parser, staticData())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotPath != "recipes.cleanup" {
		t.Errorf("expected parser to receive %q, got %q", "recipes.cleanup", gotPath)
	}

	if cfg.Name != "recipe" || cfg.Steps != 2 {
		t.Errorf("unexpected config: %+v", cfg)
	}
}

func TestLoad_Errors(t *testing.T) {
	t.Parallel()

	errParse := errors.New("bad yaml")

	testCases := []struct {
		name    string
		parser  stubParser
		fetcher stubFetcher
		want    error
		message string
	}{
		{
			name:    "fetch",
			parser:  func([]byte, any, string) error { return nil },
			fetcher: func() ([]byte, error) { return nil, errFetch },
			want:    errFetch,
			message: "reading data error: fetch failed",
		},
		{
			name:    "parse",
			parser:  func([]byte, any, string) error { return errParse },
			fetcher: staticData(),
			want:    errParse,
			message: "parsing error: bad yaml",
		},
		{
			name:    "validate",
			parser:  func([]byte, any, string) error { return nil },
			fetcher: staticData(),
			want:    errNoSteps,
			message: "validating error: no steps",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			cfg, err := Load(&editConfig{}, "recipe", tc.parser, tc.fetcher)
			if cfg != nil {
				t.Errorf("expected nil config, got %+v", cfg)
			}

			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}

			if err.Error() != tc.message {
				t.Errorf("expected message %q, got %q", tc.message, err.Error())
			}
		})
	}
}

func TestProvider_InvalidPathIsRejectedBeforeFetch(t *testing.T) {
	t.Parallel()

	fetched := false
	fetcher := stubFetcher(func() ([]byte, error) {
		fetched = true

		return nil, nil
	})

	for _, path := range []string{"a..b", ".a", "a.", "."} {
		cfg, err := Provider(&editConfig{}, path)(stubParser(func([]byte, any, string) error { return nil }), fetcher)
		if cfg != nil {
			t.Errorf("path %q: expected nil config", path)
		}

		if !errors.Is(err, ErrInvalidPath) {
			t.Errorf("path %q: expected ErrInvalidPath, got %v", path, err)
		}
	}

	if fetched {
		t.Error("expected no fetch for an invalid path")
	}
}

func TestProvider_EmptyPathSelectsWholeDocument(t *testing.T) {
	t.Parallel()

	parser := stubParser(func(_ []byte, target any, path string) error {
		if path != "" {
			t.Errorf("expected empty path, got %q", path)
		}

		target.(*editConfig).Steps = 1 //nolint:forcetypeassert // test target

		return nil
	})

	target := &editConfig{Name: "kept"}

	cfg, err := Provider(target, "")(parser, staticData())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg != target {
		t.Error("expected the provider to return its target")
	}

	if cfg.Name != "kept" {
		t.Errorf("defaults must not overwrite a set name, got %q", cfg.Name)
	}
}
