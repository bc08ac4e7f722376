// Package config provides configuration management functionalities and interfaces.
//
// The package uses an interface-based design with four extension points:
//   - Parser: deserializes raw data into config struct, with path navigation support
//   - DataFetcher: retrieves raw config data (file, stdin, etc.)
//   - Validator: validates config after parsing
//   - Defaulter: applies default values before validation
//
// Recipes (package recipe) and the edit service configuration (package service)
// are both loaded through Provider.
//
// # Path Navigation
//
// The Provider function accepts a path parameter that allows targeting a specific
// section within configuration files. Paths are dot paths, as everywhere else in
// this module:
//
//	"service"            -> config["service"]
//	"recipes.cleanup"    -> config["recipes"]["cleanup"]
//	""                   -> entire document
//
// Parser implementations handle path navigation internally. For example, the
// YAML parser in config/parser/yaml uses goccy/go-yaml PathString to
// navigate to the target section before unmarshaling.
//
// # Example
//
//	type ServiceConfig struct {
//	    Address string `yaml:"address"`
//	}
//
//	provider := config.Provider(&ServiceConfig{}, "service")
//	cfg, err := provider(yamlparser.NewParser(), fetcher)
package config
