// Package yaml provides a YAML parser implementation for the config package.
//
// This package uses github.com/goccy/go-yaml for YAML parsing with native
// PathString support for path navigation. Paths use the same dot syntax as
// the dotpath package (e.g., "recipes.cleanup") and are validated with
// dotpath.Parse before being converted to YAML path format
// (e.g., "$.recipes.cleanup").
//
// Usage:
//
//	parser := yaml.NewParser(yaml.WithStrict())
//	var r recipe.Recipe
//	err := parser.Parse(data, &r, "recipes.cleanup")
//
// Path Conversion:
//   - Empty path "" -> unmarshal entire document
//   - Single key "key" -> "$.key"
//   - Nested path "recipes.cleanup" -> "$.recipes.cleanup"
//   - Empty segments ("a..b", ".a", "a.") -> error
package yaml
