package taxonomy

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// VerbEntry is one canonical verb in the core lexicon. The id is the
// case-sensitive canonical key; synonyms are stored sorted
// case-insensitively for deterministic output. Fields other than id and
// synonyms are carried through staging untouched in Extra.
type VerbEntry struct {
	ID       string
	Synonyms []string
	Extra    map[string]any
}

func (v *VerbEntry) fromMap(m map[string]any) error {
	for key, raw := range m {
		switch key {
		case "id":
			s, err := optionalString(raw)
			if err != nil {
				return fmt.Errorf("verb id: %w", err)
			}
			v.ID = s
		case "synonyms":
			items, err := optionalStringSlice(raw)
			if err != nil {
				return fmt.Errorf("verb %q synonyms: %w", v.ID, err)
			}
			v.Synonyms = items
		default:
			if v.Extra == nil {
				v.Extra = make(map[string]any)
			}
			v.Extra[key] = raw
		}
	}
	return nil
}

// UnmarshalYAML decodes a verb entry, keeping unknown fields in Extra.
func (v *VerbEntry) UnmarshalYAML(node *yaml.Node) error {
	var m map[string]any
	if err := node.Decode(&m); err != nil {
		return err
	}
	return v.fromMap(m)
}

// UnmarshalJSON decodes a verb entry, keeping unknown fields in Extra.
func (v *VerbEntry) UnmarshalJSON(data []byte) error {
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	return v.fromMap(m)
}

func (v *VerbEntry) asMap() map[string]any {
	m := make(map[string]any, len(v.Extra)+2)
	for k, val := range v.Extra {
		m[k] = val
	}
	m["id"] = v.ID
	syns := v.Synonyms
	if syns == nil {
		syns = []string{}
	}
	m["synonyms"] = syns
	return m
}

// MarshalJSON emits the entry with its extra fields, keys sorted.
func (v *VerbEntry) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.asMap())
}

// MarshalYAML emits the entry with its extra fields, keys sorted.
func (v *VerbEntry) MarshalYAML() (any, error) {
	return v.asMap(), nil
}

// optionalString accepts a string or null. Null becomes the empty string,
// mirroring how absent and null ids are treated alike.
func optionalString(raw any) (string, error) {
	switch val := raw.(type) {
	case nil:
		return "", nil
	case string:
		return val, nil
	default:
		return "", fmt.Errorf("expected string, got %T", raw)
	}
}

// optionalStringSlice accepts a list of strings or null.
func optionalStringSlice(raw any) ([]string, error) {
	switch val := raw.(type) {
	case nil:
		return nil, nil
	case []any:
		out := make([]string, 0, len(val))
		for i, item := range val {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("element %d: expected string, got %T", i, item)
			}
			out = append(out, s)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("expected list of strings, got %T", raw)
	}
}
