// Package objectops provides chainable edit operations on nested
// map[string]any documents addressed by dot paths ("a.b.c").
//
// Wrap copies the top-level keys of a document into a new Ops; nested maps stay
// shared with the source until Clone is used. Every edit method returns the same
// Ops so calls can be chained; the first failing call records its error and
// turns the remaining calls into no-ops:
//
//	ops := objectops.Wrap(doc).
//	    Move("user.name", "profile.displayName").
//	    Remove("user.password", "debug").
//	    Transform("profile.age", func(v any) any { return v.(int) + 1 })
//	if err := ops.Err(); err != nil {
//	    return err
//	}
//
// The free functions Clone, Move, Remove and Transform edit a caller's document
// in place, without an explicit Ops.
//
// Path semantics and error types come from the dotpath package.
package objectops
