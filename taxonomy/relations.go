package taxonomy

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Relations is the relation vocabulary keyed by mapping key. Mapping keys
// are the authoritative relation id set: inverse_of targets resolve
// against keys, and a record without an authored id is named by its key.
type Relations struct {
	entries map[string]*RelationEntry
}

// NewRelations wraps an already-decoded relation mapping.
func NewRelations(entries map[string]*RelationEntry) *Relations {
	if entries == nil {
		entries = make(map[string]*RelationEntry)
	}
	return &Relations{entries: entries}
}

// Get returns the record for a mapping key.
func (r *Relations) Get(key string) (*RelationEntry, bool) {
	entry, ok := r.entries[key]
	return entry, ok
}

// Has reports whether an id is a known relation mapping key.
func (r *Relations) Has(id string) bool {
	_, ok := r.entries[id]
	return ok
}

// Len returns the number of relations.
func (r *Relations) Len() int {
	return len(r.entries)
}

// All returns the underlying key-to-record mapping. Callers must treat
// it as read-only.
func (r *Relations) All() map[string]*RelationEntry {
	return r.entries
}

// Keys returns all mapping keys sorted case-insensitively (byte order
// breaks ties), the one iteration order every pass over the vocabulary
// uses so output stays reproducible.
func (r *Relations) Keys() []string {
	keys := make([]string, 0, len(r.entries))
	for key := range r.entries {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		li, lj := strings.ToLower(keys[i]), strings.ToLower(keys[j])
		if li != lj {
			return li < lj
		}
		return keys[i] < keys[j]
	})
	return keys
}

// decodeRelations extracts the rels mapping from a parsed document node.
// A missing rels key yields an empty vocabulary; a present rels value of
// any non-mapping kind is ErrInvalidShape.
func decodeRelations(data []byte, path string) (map[string]*RelationEntry, error) {
	var doc struct {
		Rels yaml.Node `yaml:"rels"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse relations %s: %w", path, err)
	}
	if doc.Rels.IsZero() {
		return map[string]*RelationEntry{}, nil
	}
	if doc.Rels.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%s: %w", path, ErrInvalidShape)
	}
	var entries map[string]*RelationEntry
	if err := doc.Rels.Decode(&entries); err != nil {
		return nil, fmt.Errorf("parse relations %s: %w", path, err)
	}
	return entries, nil
}

// LoadRelationsFiles parses one or more relation vocabulary documents and
// merges their rels mappings. On a duplicate key the later file wins,
// matching shallow key-overwrite semantics elsewhere in the toolkit.
func LoadRelationsFiles(paths ...string) (*Relations, error) {
	merged := make(map[string]*RelationEntry)
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read relations: %w", err)
		}
		entries, err := decodeRelations(data, path)
		if err != nil {
			return nil, err
		}
		for key, entry := range entries {
			merged[key] = entry
		}
	}
	return NewRelations(merged), nil
}

// LoadSeedFile parses a combined seed document carrying verbs and rels
// alongside unrelated top-level keys, and returns both vocabularies.
func LoadSeedFile(path string) (*Lexicon, *Relations, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("read seed: %w", err)
	}
	var doc lexiconDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, nil, fmt.Errorf("parse seed %s: %w", path, err)
	}
	lex, err := NewLexicon(doc.Verbs)
	if err != nil {
		return nil, nil, fmt.Errorf("index seed lexicon: %w", err)
	}
	entries, err := decodeRelations(data, path)
	if err != nil {
		return nil, nil, err
	}
	return lex, NewRelations(entries), nil
}
