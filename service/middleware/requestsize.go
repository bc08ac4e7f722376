package middleware

import (
	"errors"
	"log/slog"
	"net/http"
)

// DefaultMaxRequestSize is used when MaxRequestSize is given a non-positive limit.
const DefaultMaxRequestSize int64 = 1 << 20

// MaxRequestSize returns a middleware that limits the size of incoming request
// bodies using http.MaxBytesReader. Reads past the limit fail with an error for
// which TooLarge reports true; handlers should respond with 413.
//
// If limit is zero or negative, DefaultMaxRequestSize is used and a warning is logged.
func MaxRequestSize(limit int64) func(http.Handler) http.Handler {
	if limit <= 0 {
		slog.Warn("middleware: request size limit must be positive, using default",
			"provided", limit, "default", DefaultMaxRequestSize)

		limit = DefaultMaxRequestSize
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, limit)
			next.ServeHTTP(w, r)
		})
	}
}

// TooLarge reports whether err came from reading past a MaxRequestSize limit.
func TooLarge(err error) bool {
	var maxBytesErr *http.MaxBytesError

	return errors.As(err, &maxBytesErr)
}
