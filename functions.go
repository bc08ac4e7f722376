package objectops

// Clone returns a deep copy of doc.
func Clone(doc map[string]any) (map[string]any, error) {
	cloned := Edit(doc).Clone()

	return cloned.doc, cloned.err
}

// Move moves the value at src to dst inside doc, editing doc in place.
func Move(doc map[string]any, src, dst string) error {
	return Edit(doc).Move(src, dst).Err()
}

// Remove deletes each path from doc, editing doc in place.
func Remove(doc map[string]any, paths ...string) error {
	return Edit(doc).Remove(paths...).Err()
}

// Transform replaces the value at path in doc with fn's result, editing doc in
// place.
func Transform(doc map[string]any, path string, fn func(any) any) error {
	return Edit(doc).Transform(path, fn).Err()
}
