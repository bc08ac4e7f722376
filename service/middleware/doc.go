// Package middleware provides the net/http middleware used by the edit
// service: request IDs, access logging, panic recovery and request body
// limits. Every middleware has the shape func(http.Handler) http.Handler and
// logs through the global slog logger.
package middleware
