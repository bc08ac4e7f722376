// Package recipe describes a sequence of document edits in YAML and runs it
// against an objectops.Ops.
//
// A recipe names its steps by operation:
//
//	name: rename-user
//	atomic: true
//	steps:
//	  - op: move
//	    from: user.name
//	    to: profile.displayName
//	  - op: remove
//	    paths: [user.password, debug]
//	  - op: transform
//	    path: profile.age
//	    expr: value + 1
//	  - op: set
//	    path: meta.version
//	    value: 2
//	  - op: patch
//	    patch:
//	      - {op: add, path: /meta/tags, value: [a]}
//
// Transform expressions are evaluated with github.com/expr-lang/expr. The only
// variable in scope is value, the current value at the step's path. Patch steps
// hold RFC 6902 operations and are applied with Ops.Patch.
//
// Recipe implements the config package's Defaulter and Validator, so it can be
// loaded with config.Load or provided to an Fx container with config.Provider.
// Compile turns a valid Recipe into an immutable Program that is safe to share
// between goroutines.
package recipe
