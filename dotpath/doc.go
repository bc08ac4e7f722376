// Package dotpath resolves dot-delimited paths such as "a.b.c" against nested
// map[string]any documents.
//
// Three primitives operate on a path: Get reads, Set writes (creating missing or
// null intermediate containers along the way) and Delete removes. DeepCopy
// produces a reference-independent copy of a document.
//
// # Traversal rules
//
// Every segment but the last must resolve to a container. Get and Delete never
// create containers. Set replaces an absent or null intermediate value with a new
// empty container, but fails with *NotTraversableError instead of overwriting any
// other value.
//
// Deleting a path that does not exist is not an error.
//
// # Undo
//
// The primitives never roll back. A Journal records the previous state of every
// key it changes, so a composite edit such as "write here, then delete there" can
// be undone as a unit when a later step fails.
//
// Keys containing a literal "." cannot be addressed. Array elements cannot be
// addressed either: slices are treated like any other scalar value.
package dotpath
