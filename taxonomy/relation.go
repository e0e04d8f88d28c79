package taxonomy

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// explicitNull is the scalar inverse_of value some producers emit instead
// of a real null. It is treated as an explicit absence marker, never as a
// relation reference. Almost certainly a serialization artifact of an
// upstream YAML producer; kept for compatibility with existing documents.
const explicitNull = "null"

// InverseRefs holds a relation's inverse_of field in whichever shape it
// was authored: null, a single relation id, or a list of relation ids.
// The authored shape is preserved for output; Targets exposes the ids
// that must resolve against the relation vocabulary.
type InverseRefs struct {
	raw any // nil, string, or []string as authored
}

func parseInverseRefs(raw any) (*InverseRefs, error) {
	switch val := raw.(type) {
	case nil:
		return &InverseRefs{}, nil
	case string:
		return &InverseRefs{raw: val}, nil
	case []any:
		targets := make([]string, 0, len(val))
		for i, item := range val {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("element %d: expected string, got %T", i, item)
			}
			targets = append(targets, s)
		}
		return &InverseRefs{raw: targets}, nil
	default:
		return nil, fmt.Errorf("expected string or list of strings, got %T", raw)
	}
}

// Targets returns the relation ids that must exist in the vocabulary.
// The literal "null" (any casing) is an absence marker in both scalar
// and list position and is never a target; an empty scalar means no
// targets either.
func (ir *InverseRefs) Targets() []string {
	switch val := ir.raw.(type) {
	case string:
		if val == "" || strings.EqualFold(val, explicitNull) {
			return nil
		}
		return []string{val}
	case []string:
		targets := make([]string, 0, len(val))
		for _, item := range val {
			if strings.EqualFold(item, explicitNull) {
				continue
			}
			targets = append(targets, item)
		}
		return targets
	default:
		return nil
	}
}

// Value returns the authored shape for serialization.
func (ir *InverseRefs) Value() any {
	return ir.raw
}

// Relation fields tracked for authored-presence. A staged copy gains id
// and verbs_resolved; everything else keeps exactly what the source had.
const (
	fieldID            = "id"
	fieldDescription   = "description"
	fieldLexRef        = "lex_ref"
	fieldInverseOf     = "inverse_of"
	fieldVerbs         = "verbs"
	fieldVerbsResolved = "verbs_resolved"
)

// RelationEntry is one semantic relation in the relation vocabulary.
// It remembers which fields were authored so that staging and merging
// never invent fields the source did not carry.
type RelationEntry struct {
	ID            string // as authored; may be empty when the mapping key names the relation
	Description   string
	LexRef        string
	InverseOf     *InverseRefs // nil when the field is absent
	Verbs         []string     // legacy field, droppable at staging
	VerbsResolved []string     // derived by the resolver, never authored

	Extra   map[string]any
	present map[string]bool
}

func (e *RelationEntry) fromMap(m map[string]any) error {
	e.present = make(map[string]bool, len(m))
	for key, raw := range m {
		var err error
		switch key {
		case fieldID:
			e.ID, err = optionalString(raw)
		case fieldDescription:
			e.Description, err = optionalString(raw)
		case fieldLexRef:
			e.LexRef, err = optionalString(raw)
		case fieldInverseOf:
			e.InverseOf, err = parseInverseRefs(raw)
		case fieldVerbs:
			e.Verbs, err = optionalStringSlice(raw)
		default:
			if e.Extra == nil {
				e.Extra = make(map[string]any)
			}
			e.Extra[key] = raw
			continue
		}
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		e.present[key] = true
	}
	return nil
}

// UnmarshalYAML decodes a relation record, keeping unknown fields in Extra.
func (e *RelationEntry) UnmarshalYAML(node *yaml.Node) error {
	var m map[string]any
	if err := node.Decode(&m); err != nil {
		return err
	}
	return e.fromMap(m)
}

// UnmarshalJSON decodes a relation record, keeping unknown fields in Extra.
func (e *RelationEntry) UnmarshalJSON(data []byte) error {
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	return e.fromMap(m)
}

// Authored reports whether the named field was present in the source
// document (even if empty).
func (e *RelationEntry) Authored(field string) bool {
	return e.present[field]
}

// EffectiveID resolves the relation's id: the authored id when non-empty,
// otherwise the mapping key that owns the record.
func (e *RelationEntry) EffectiveID(key string) string {
	if e.ID != "" {
		return e.ID
	}
	return key
}

// Clone returns an independent copy safe for the resolver to annotate.
func (e *RelationEntry) Clone() *RelationEntry {
	c := *e
	if e.Verbs != nil {
		c.Verbs = append([]string(nil), e.Verbs...)
	}
	if e.VerbsResolved != nil {
		c.VerbsResolved = append([]string(nil), e.VerbsResolved...)
	}
	if e.Extra != nil {
		c.Extra = make(map[string]any, len(e.Extra))
		for k, v := range e.Extra {
			c.Extra[k] = v
		}
	}
	c.present = make(map[string]bool, len(e.present))
	for k, v := range e.present {
		c.present[k] = v
	}
	return &c
}

// SetID pins the effective id onto the record, as staged previews always
// carry an explicit id.
func (e *RelationEntry) SetID(id string) {
	e.ID = id
	e.markPresent(fieldID)
}

// SetVerbsResolved attaches the resolver's derived verb set.
func (e *RelationEntry) SetVerbsResolved(verbs []string) {
	if verbs == nil {
		verbs = []string{}
	}
	e.VerbsResolved = verbs
	e.markPresent(fieldVerbsResolved)
}

// StripVerbs removes the legacy verbs field from the record.
func (e *RelationEntry) StripVerbs() {
	e.Verbs = nil
	delete(e.present, fieldVerbs)
}

func (e *RelationEntry) markPresent(field string) {
	if e.present == nil {
		e.present = make(map[string]bool)
	}
	e.present[field] = true
}

func (e *RelationEntry) asMap() map[string]any {
	m := make(map[string]any, len(e.Extra)+6)
	for k, v := range e.Extra {
		m[k] = v
	}
	if e.present[fieldID] {
		m[fieldID] = e.ID
	}
	if e.present[fieldDescription] {
		m[fieldDescription] = e.Description
	}
	if e.present[fieldLexRef] {
		m[fieldLexRef] = e.LexRef
	}
	if e.present[fieldInverseOf] {
		m[fieldInverseOf] = e.InverseOf.Value()
	}
	if e.present[fieldVerbs] {
		verbs := e.Verbs
		if verbs == nil {
			verbs = []string{}
		}
		m[fieldVerbs] = verbs
	}
	if e.present[fieldVerbsResolved] {
		m[fieldVerbsResolved] = e.VerbsResolved
	}
	return m
}

// MarshalJSON emits the record with only its authored and derived fields,
// keys sorted.
func (e *RelationEntry) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.asMap())
}

// MarshalYAML emits the record with only its authored and derived fields,
// keys sorted.
func (e *RelationEntry) MarshalYAML() (any, error) {
	return e.asMap(), nil
}
