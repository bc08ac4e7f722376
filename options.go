package objectops

import "log/slog"

// Options holds configuration settings for an Ops.
type Options struct {
	Logger   *slog.Logger
	Rollback bool
}

// Option defines a function type for applying configuration options.
type Option func(*Options)

// WithLogger sets the logger used for debug-level operation logs.
// Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(opts *Options) {
		opts.Logger = logger
	}
}

// WithRollback makes every edit method all-or-nothing: if any part of a Move,
// Remove, Transform or Set fails, the changes it already made are undone.
//
// Without it, a Move whose destination write succeeded but whose source delete
// failed leaves the written value in place, and a Remove of several paths keeps
// the removals performed before the failing path.
func WithRollback() Option {
	return func(opts *Options) {
		opts.Rollback = true
	}
}
