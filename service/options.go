package service

import (
	"io"

	"go.uber.org/fx"
)

// Options holds configuration settings for the application.
type Options struct {
	Modules   []fx.Option
	LogLevel  string
	LogFormat string
	LogOutput io.Writer
}

// Option defines a function type for applying application options.
type Option func(*Options)

// WithModules adds Fx modules to the application.
func WithModules(modules ...fx.Option) Option {
	return func(opts *Options) {
		opts.Modules = append(opts.Modules, modules...)
	}
}

// WithEditService adds a named edit service module to the application.
// When options are provided, Config is supplied to DI automatically;
// otherwise a Config tagged with the name must be provided by another module.
func WithEditService(name string, opts ...ModuleOption) Option {
	return func(o *Options) {
		o.Modules = append(o.Modules, NewModule(name, opts...))
	}
}

// WithLogLevel sets the log level for the application.
// Valid levels are: "debug", "info", "warn", "error".
// If not set or invalid, defaults to "info".
func WithLogLevel(level string) Option {
	return func(opts *Options) {
		opts.LogLevel = level
	}
}

// WithLogFormat selects "json" (default) or "text" log output.
func WithLogFormat(format string) Option {
	return func(opts *Options) {
		opts.LogFormat = format
	}
}

// WithLogOutput redirects logs, which go to stderr by default.
func WithLogOutput(w io.Writer) Option {
	return func(opts *Options) {
		opts.LogOutput = w
	}
}

// ModuleOption configures an edit service module.
type ModuleOption func(*Config)

// WithAddress sets the listen address.
func WithAddress(addr string) ModuleOption {
	return func(cfg *Config) {
		cfg.Address = addr
	}
}

// WithMaxBodyBytes sets the request body limit.
func WithMaxBodyBytes(limit int64) ModuleOption {
	return func(cfg *Config) {
		cfg.MaxBodyBytes = limit
	}
}

// WithRecipeFile sets the recipe file and the section of it holding the recipe.
// An empty section uses the whole file.
func WithRecipeFile(path, section string) ModuleOption {
	return func(cfg *Config) {
		cfg.RecipeFile = path
		cfg.RecipeSection = section
	}
}

// WithConfig replaces the whole Config.
func WithConfig(config Config) ModuleOption {
	return func(cfg *Config) {
		*cfg = config
	}
}
