package service

import (
	"errors"
	"fmt"
)

const (
	// DefaultAddress is the default address for the edit service.
	DefaultAddress = ":8080"

	// DefaultMaxBodyBytes is the default request body limit.
	DefaultMaxBodyBytes int64 = 1 << 20
)

var (
	// ErrEmptyAddress is returned when the address is empty.
	ErrEmptyAddress = errors.New("address must not be empty")

	// ErrInvalidBodyLimit is returned when the body limit is not positive.
	ErrInvalidBodyLimit = errors.New("max body bytes must be positive")

	// ErrNoRecipe is returned when a module has no recipe file configured.
	ErrNoRecipe = errors.New("recipe file must be set")

	// ErrListenFailed is returned when the server fails to listen on the configured address.
	ErrListenFailed = errors.New("failed to listen")

	// ErrShutdownFailed is returned when the server fails to shut down gracefully.
	ErrShutdownFailed = errors.New("shutdown failed")

	// ErrEmptyName is returned when the service name is empty.
	ErrEmptyName = errors.New("service name must not be empty")

	// ErrNilProgram is returned when a handler is built without a program.
	ErrNilProgram = errors.New("program must not be nil")
)

// Config holds the configuration for an edit service.
type Config struct {
	Address       string `yaml:"address"`
	MaxBodyBytes  int64  `yaml:"maxBodyBytes"`
	RecipeFile    string `yaml:"recipeFile"`
	RecipeSection string `yaml:"recipeSection"`
}

// SetDefaults sets default values for the Config.
func (c *Config) SetDefaults() bool {
	changed := false

	if c.Address == "" {
		c.Address = DefaultAddress
		changed = true
	}

	if c.MaxBodyBytes == 0 {
		c.MaxBodyBytes = DefaultMaxBodyBytes
		changed = true
	}

	return changed
}

// Validate validates the Config.
func (c *Config) Validate() error {
	if c.Address == "" {
		return ErrEmptyAddress
	}

	if c.MaxBodyBytes <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidBodyLimit, c.MaxBodyBytes)
	}

	return nil
}
