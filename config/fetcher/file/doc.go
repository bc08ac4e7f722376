// Package file provides a file-based DataFetcher implementation for the config package.
//
// The fetcher reads a document once at construction time and caches it, so
// every Fetch returns the same bytes for the lifetime of the process. The
// special path "-" reads standard input, which lets the objops command sit
// in a shell pipeline.
//
// Usage:
//
//	fetcher, err := file.NewFetcher("recipe.yaml")()
//	if err != nil {
//	    // file not found, permission denied, path is directory, etc.
//	}
//	data, err := fetcher.Fetch()
//	doc, err := codec.Decode(data, fetcher.Format())
//
// Use errors.Is(err, file.ErrPathIsDirectory) to check for directory errors.
package file
