package taxonomy

import "strings"

// FoldSet is a case-insensitive string set. Membership is keyed on the
// lowercased form while the first original-cased occurrence is retained,
// so casing never leaks into membership decisions but is preserved for
// output.
type FoldSet struct {
	seen map[string]string // lowercased key -> first original occurrence
}

// NewFoldSet creates a FoldSet seeded with the given items.
func NewFoldSet(items ...string) *FoldSet {
	s := &FoldSet{seen: make(map[string]string, len(items))}
	for _, item := range items {
		s.Add(item)
	}
	return s
}

// Add inserts an item and reports whether it was newly added.
func (s *FoldSet) Add(item string) bool {
	key := strings.ToLower(item)
	if _, ok := s.seen[key]; ok {
		return false
	}
	s.seen[key] = item
	return true
}

// Has reports case-insensitive membership.
func (s *FoldSet) Has(item string) bool {
	_, ok := s.seen[strings.ToLower(item)]
	return ok
}

// Len returns the number of distinct members.
func (s *FoldSet) Len() int {
	return len(s.seen)
}

// DedupeFold removes case-insensitive duplicates from items while
// preserving first-seen order and original casing.
func DedupeFold(items []string) []string {
	seen := NewFoldSet()
	out := make([]string, 0, len(items))
	for _, item := range items {
		if seen.Add(item) {
			out = append(out, item)
		}
	}
	return out
}
