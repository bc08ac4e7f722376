package objectops

import (
	"log/slog"
	"maps"

	"github.com/0xalexb/objectops/dotpath"
)

// Ops wraps a document and exposes chainable edits on it.
//
// An Ops is not safe for concurrent use.
type Ops struct {
	doc     dotpath.Container
	options Options
	err     error
}

// Wrap returns an Ops over a shallow copy of source: top-level keys are copied,
// nested containers are shared with source. A nil source yields an empty
// document.
func Wrap(source map[string]any, opts ...Option) *Ops {
	doc := make(dotpath.Container, len(source))
	maps.Copy(doc, source)

	return Edit(doc, opts...)
}

// Edit returns an Ops that edits doc itself rather than a copy of it.
func Edit(doc map[string]any, opts ...Option) *Ops {
	var options Options

	for _, apply := range opts {
		apply(&options)
	}

	if options.Logger == nil {
		options.Logger = slog.Default()
	}

	return &Ops{doc: doc, options: options}
}

// Document returns the wrapped document. Edits made through the Ops are visible
// in it, and vice versa.
func (o *Ops) Document() map[string]any {
	return o.doc
}

// Err returns the first error encountered by an edit method, if any.
func (o *Ops) Err() error {
	return o.err
}

// Clone returns a new Ops over a deep copy of the document, configured with the
// same options. If the document cannot be copied, or o already failed, the
// returned Ops carries the error.
func (o *Ops) Clone() *Ops {
	if o.err != nil {
		return &Ops{doc: dotpath.Container{}, options: o.options, err: o.err}
	}

	copied, err := dotpath.DeepCopy(o.doc)
	if err != nil {
		return &Ops{doc: dotpath.Container{}, options: o.options, err: err}
	}

	return &Ops{doc: copied, options: o.options}
}

// Get returns the value at path. present is false if the final key is absent.
func (o *Ops) Get(path string) (value any, present bool, err error) {
	parsed, err := dotpath.Parse(path)
	if err != nil {
		return nil, false, err
	}

	return dotpath.Get(o.doc, parsed)
}

// Move reads the value at src, writes it to dst and removes src.
//
// All of src's intermediate segments must exist. An absent final key moves as nil.
// If src cannot be read nothing changes. If dst is blocked by a non-container value
// src is left intact.
func (o *Ops) Move(src, dst string) *Ops {
	return o.edit("move", func(journal *dotpath.Journal) error {
		srcPath, err := dotpath.Parse(src)
		if err != nil {
			return err
		}

		dstPath, err := dotpath.Parse(dst)
		if err != nil {
			return err
		}

		value, _, err := dotpath.Get(o.doc, srcPath)
		if err != nil {
			return err
		}

		err = journal.Set(o.doc, dstPath, value)
		if err != nil {
			return err
		}

		return journal.Delete(o.doc, srcPath)
	}, slog.String("src", src), slog.String("dst", dst))
}

// Remove deletes each path in order. Paths that do not exist are skipped.
func (o *Ops) Remove(paths ...string) *Ops {
	return o.edit("remove", func(journal *dotpath.Journal) error {
		for _, path := range paths {
			parsed, err := dotpath.Parse(path)
			if err != nil {
				return err
			}

			err = journal.Delete(o.doc, parsed)
			if err != nil {
				return err
			}
		}

		return nil
	}, slog.Any("paths", paths))
}

// Transform replaces the value at path with fn's result. fn is called exactly
// once with the current value, or not at all if path cannot be read.
func (o *Ops) Transform(path string, fn func(any) any) *Ops {
	return o.edit("transform", func(journal *dotpath.Journal) error {
		parsed, err := dotpath.Parse(path)
		if err != nil {
			return err
		}

		value, _, err := dotpath.Get(o.doc, parsed)
		if err != nil {
			return err
		}

		return journal.Set(o.doc, parsed, fn(value))
	}, slog.String("path", path))
}

// TryTransform is Transform for callbacks that can fail. An error from fn is
// recorded like any other edit failure and the value at path is left as it was.
func (o *Ops) TryTransform(path string, fn func(any) (any, error)) *Ops {
	return o.edit("transform", func(journal *dotpath.Journal) error {
		parsed, err := dotpath.Parse(path)
		if err != nil {
			return err
		}

		value, _, err := dotpath.Get(o.doc, parsed)
		if err != nil {
			return err
		}

		replacement, err := fn(value)
		if err != nil {
			return err
		}

		return journal.Set(o.doc, parsed, replacement)
	}, slog.String("path", path))
}

// Set writes value at path, creating missing intermediate containers.
func (o *Ops) Set(path string, value any) *Ops {
	return o.edit("set", func(journal *dotpath.Journal) error {
		parsed, err := dotpath.Parse(path)
		if err != nil {
			return err
		}

		return journal.Set(o.doc, parsed, value)
	}, slog.String("path", path))
}

// edit runs one operation unless a previous one failed. The journal is nil
// unless rollback is enabled; nil journals write without recording.
func (o *Ops) edit(op string, run func(*dotpath.Journal) error, attrs ...any) *Ops {
	if o.err != nil {
		return o
	}

	var journal *dotpath.Journal
	if o.options.Rollback {
		journal = &dotpath.Journal{}
	}

	err := run(journal)
	if err != nil {
		if journal != nil {
			journal.Rollback()
		}

		o.err = err

		o.options.Logger.Debug("edit failed", append(attrs, slog.String("op", op), slog.Any("error", err))...)

		return o
	}

	o.options.Logger.Debug("edit applied", append(attrs, slog.String("op", op))...)

	return o
}
