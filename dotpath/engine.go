package dotpath

// Get returns the value at path, starting from root.
//
// present is false when the final key does not exist; that is not an error. When
// an intermediate segment is absent, null or not a container, Get fails with
// *InvalidPathError. root itself must be a container; otherwise the error reports
// depth -1.
func Get(root any, path Path) (value any, present bool, err error) {
	if len(path) == 0 {
		return nil, false, ErrEmptyPath
	}

	acc, present := root, true

	for idx, step := range path {
		if Classify(acc, present) != KindContainer {
			return nil, false, &InvalidPathError{Path: path, Depth: idx - 1}
		}

		acc, present = acc.(Container)[step]
	}

	return acc, present, nil
}

// Set stores value at path, creating a container for every absent or null
// intermediate segment. The final key is overwritten whatever it held.
//
// A non-container intermediate value fails with *NotTraversableError. Set never
// rolls back on failure; use a Journal to undo a sequence of edits.
func Set(doc Container, path Path, value any) error {
	return set(doc, path, value, nil)
}

// Delete removes the key at path.
//
// Walking stops silently at the first absent or null segment, including the final
// one, so deleting a missing path is a no-op. A scalar where a container is
// needed fails with *NotTraversableError.
func Delete(doc Container, path Path) error {
	return del(doc, path, nil)
}

func set(doc Container, path Path, value any, journal *Journal) error {
	if doc == nil {
		return ErrNilDocument
	}

	if len(path) == 0 {
		return ErrEmptyPath
	}

	current := doc

	for _, step := range path.Parent() {
		child, kind := lookup(current, step)

		switch kind {
		case KindContainer:
			current = child.(Container) //nolint:forcetypeassert // guaranteed by kind
		case KindAbsent, KindNull:
			created := Container{}

			journal.record(current, step)
			current[step] = created
			current = created
		case KindScalar:
			return &NotTraversableError{Path: path, Step: step, Value: stringify(child)}
		}
	}

	journal.record(current, path.Last())
	current[path.Last()] = value

	return nil
}

func del(doc Container, path Path, journal *Journal) error {
	if doc == nil {
		return ErrNilDocument
	}

	if len(path) == 0 {
		return ErrEmptyPath
	}

	return remove(doc, path, path, journal)
}

func remove(current Container, path, steps Path, journal *Journal) error {
	key := steps[0]

	child, kind := lookup(current, key)

	switch {
	case kind == KindAbsent || kind == KindNull:
		return nil
	case len(steps) == 1:
		journal.record(current, key)
		delete(current, key)

		return nil
	case kind != KindContainer:
		return &NotTraversableError{Path: path, Step: key, Value: stringify(child)}
	}

	return remove(child.(Container), path, steps[1:], journal) //nolint:forcetypeassert // guaranteed by kind
}
