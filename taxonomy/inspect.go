package taxonomy

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// DocumentInfo summarizes the top-level shape of a taxonomy document,
// for a quick look before running the heavier tooling.
type DocumentInfo struct {
	Path      string   `json:"path"`
	Kind      string   `json:"kind"` // mapping, sequence, or scalar
	Keys      []string `json:"keys,omitempty"`
	VerbCount int      `json:"verb_count"`
	RelCount  int      `json:"rel_count"`
}

// Describe parses a document just far enough to report its top-level
// kind, keys, and verb/relation counts.
func Describe(path string) (*DocumentInfo, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse document %s: %w", path, err)
	}

	info := &DocumentInfo{Path: path}
	switch doc := raw.(type) {
	case map[string]any:
		info.Kind = "mapping"
		info.Keys = make([]string, 0, len(doc))
		for key := range doc {
			info.Keys = append(info.Keys, key)
		}
		sort.Strings(info.Keys)
		if verbs, ok := doc["verbs"].([]any); ok {
			info.VerbCount = len(verbs)
		}
		if rels, ok := doc["rels"].(map[string]any); ok {
			info.RelCount = len(rels)
		}
	case []any:
		info.Kind = "sequence"
	default:
		info.Kind = "scalar"
	}
	return info, nil
}
