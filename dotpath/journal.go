package dotpath

// Journal records the previous state of every key changed through it so that a
// sequence of Set and Delete calls can be undone as a unit.
//
// The zero value is ready to use. Set and Delete on a nil *Journal apply the edit
// without recording it. A Journal is not safe for concurrent use.
type Journal struct {
	entries []entry
}

type entry struct {
	container Container
	key       string
	previous  any
	present   bool
}

// Set is Set with undo information recorded.
func (j *Journal) Set(doc Container, path Path, value any) error {
	return set(doc, path, value, j)
}

// Delete is Delete with undo information recorded.
func (j *Journal) Delete(doc Container, path Path) error {
	return del(doc, path, j)
}

// Len returns the number of recorded changes.
func (j *Journal) Len() int {
	return len(j.entries)
}

// Rollback restores every recorded key, newest first, and empties the journal.
// Containers that existed before the edits are restored by identity.
func (j *Journal) Rollback() {
	for i := len(j.entries) - 1; i >= 0; i-- {
		e := j.entries[i]
		if e.present {
			e.container[e.key] = e.previous
		} else {
			delete(e.container, e.key)
		}
	}

	j.entries = nil
}

// Commit forgets the recorded changes.
func (j *Journal) Commit() {
	j.entries = nil
}

func (j *Journal) record(container Container, key string) {
	if j == nil {
		return
	}

	previous, present := container[key]
	j.entries = append(j.entries, entry{container: container, key: key, previous: previous, present: present})
}
