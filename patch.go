package objectops

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"maps"

	"github.com/0xalexb/objectops/dotpath"

	jsonpatch "github.com/evanphx/json-patch"
)

// Patch applies an RFC 6902 JSON Patch document to the wrapped document.
//
// The document is round-tripped through JSON, so numbers come back as float64.
// The patch is all-or-nothing: on failure the document is unchanged. Top-level
// keys are replaced in place, so the map returned by Document stays valid.
func (o *Ops) Patch(patch []byte) *Ops {
	return o.edit("patch", func(_ *dotpath.Journal) error {
		if o.doc == nil {
			return dotpath.ErrNilDocument
		}

		decoded, err := jsonpatch.DecodePatch(patch)
		if err != nil {
			return fmt.Errorf("decoding patch: %w", err)
		}

		original, err := json.Marshal(o.doc)
		if err != nil {
			return fmt.Errorf("encoding document: %w", err)
		}

		patched, err := decoded.Apply(original)
		if err != nil {
			return fmt.Errorf("applying patch: %w", err)
		}

		var result dotpath.Container

		err = json.Unmarshal(patched, &result)
		if err != nil {
			return fmt.Errorf("decoding patched document: %w", err)
		}

		clear(o.doc)
		maps.Copy(o.doc, result)

		return nil
	}, slog.Int("bytes", len(patch)))
}
