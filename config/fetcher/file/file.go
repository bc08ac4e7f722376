package file

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/0xalexb/objectops/codec"
)

// Stdin is the path that selects standard input instead of a file.
const Stdin = "-"

// ErrPathIsDirectory is returned when the path provided to the Fetcher points to a directory instead of a file.
var ErrPathIsDirectory = errors.New("path is a directory, not a file")

// Fetcher implements config.DataFetcher for documents read from a file or a stream.
// The contents are read once at construction time and cached.
type Fetcher struct {
	filepath string
	data     []byte
}

// NewFetcher returns a constructor function that creates a new Fetcher for fpath.
// The path Stdin reads standard input. Construction is deferred so an Fx
// container controls when the read happens.
func NewFetcher(fpath string) func() (*Fetcher, error) {
	return func() (*Fetcher, error) {
		if fpath == Stdin {
			return NewReaderFetcher(Stdin, os.Stdin)
		}

		cleanPath := filepath.Clean(fpath)

		stat, err := os.Stat(cleanPath)
		if err != nil {
			return nil, fmt.Errorf("stat file %q: %w", cleanPath, err)
		}

		if stat.IsDir() {
			return nil, fmt.Errorf("path %q: %w", cleanPath, ErrPathIsDirectory)
		}

		data, err := os.ReadFile(cleanPath) // #nosec G304 -- path is cleaned and validated
		if err != nil {
			return nil, fmt.Errorf("reading file %q: %w", cleanPath, err)
		}

		return &Fetcher{
			filepath: cleanPath,
			data:     data,
		}, nil
	}
}

// NewReaderFetcher drains r and caches its contents under name.
func NewReaderFetcher(name string, r io.Reader) (*Fetcher, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading %q: %w", name, err)
	}

	return &Fetcher{
		filepath: name,
		data:     data,
	}, nil
}

// Fetch returns a copy of the cached data.
func (f *Fetcher) Fetch() ([]byte, error) {
	result := make([]byte, len(f.data))
	copy(result, f.data)

	return result, nil
}

// Path returns the cleaned path the data was read from.
func (f *Fetcher) Path() string {
	return f.filepath
}

// Format guesses the document format from the file extension.
// Standard input and unknown extensions are treated as YAML.
func (f *Fetcher) Format() codec.Format {
	return codec.FormatFromPath(f.filepath)
}
