package taxonomy

import "errors"

// Structural load errors. These abort a run; nothing partial is written.
var (
	// ErrMissingID is returned when a core verb entry has no id.
	ErrMissingID = errors.New("core verb entry missing id")

	// ErrInvalidShape is returned when a document's top-level rels value
	// is not a mapping.
	ErrInvalidShape = errors.New("rels must be a top-level mapping")
)
