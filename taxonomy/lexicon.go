package taxonomy

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Lexicon is the indexed core verb lexicon: entries in document order plus
// an id index and a per-entry lowercased token set for O(1) membership
// checks by the resolver and validator.
type Lexicon struct {
	Entries []*VerbEntry

	byID   map[string]*VerbEntry
	tokens map[string]*FoldSet
}

// NewLexicon indexes the given entries. Each entry must carry a non-empty
// id (ErrMissingID otherwise). Synonyms are normalized in place: trimmed,
// empties dropped, sorted case-insensitively. Duplicates survive
// normalization so the validator can flag them.
func NewLexicon(entries []*VerbEntry) (*Lexicon, error) {
	lex := &Lexicon{
		Entries: entries,
		byID:    make(map[string]*VerbEntry, len(entries)),
		tokens:  make(map[string]*FoldSet, len(entries)),
	}
	for i, entry := range entries {
		entry.ID = strings.TrimSpace(entry.ID)
		if entry.ID == "" {
			return nil, fmt.Errorf("verbs[%d]: %w", i, ErrMissingID)
		}
		entry.Synonyms = normalizeSynonyms(entry.Synonyms)

		lex.byID[entry.ID] = entry
		tokens := NewFoldSet(entry.ID)
		for _, syn := range entry.Synonyms {
			tokens.Add(syn)
		}
		lex.tokens[entry.ID] = tokens
	}
	return lex, nil
}

// normalizeSynonyms trims each synonym, drops empties, and sorts the rest
// case-insensitively (stable, so equal-fold synonyms keep source order).
func normalizeSynonyms(synonyms []string) []string {
	out := make([]string, 0, len(synonyms))
	for _, syn := range synonyms {
		syn = strings.TrimSpace(syn)
		if syn == "" {
			continue
		}
		out = append(out, syn)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return strings.ToLower(out[i]) < strings.ToLower(out[j])
	})
	return out
}

// Lookup returns the entry for a canonical verb id.
func (l *Lexicon) Lookup(id string) (*VerbEntry, bool) {
	entry, ok := l.byID[id]
	return entry, ok
}

// Tokens returns the lowercased token set (id plus synonyms) for a verb.
func (l *Lexicon) Tokens(id string) *FoldSet {
	return l.tokens[id]
}

// Len returns the number of lexicon entries.
func (l *Lexicon) Len() int {
	return len(l.Entries)
}

type lexiconDoc struct {
	Verbs []*VerbEntry `yaml:"verbs"`
}

// LoadLexiconFiles parses one or more lexicon documents and indexes the
// concatenation of their verbs sequences. A document without a verbs key
// contributes nothing.
func LoadLexiconFiles(paths ...string) (*Lexicon, error) {
	var entries []*VerbEntry
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read lexicon: %w", err)
		}
		var doc lexiconDoc
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parse lexicon %s: %w", path, err)
		}
		entries = append(entries, doc.Verbs...)
	}
	lex, err := NewLexicon(entries)
	if err != nil {
		return nil, fmt.Errorf("index lexicon: %w", err)
	}
	return lex, nil
}
