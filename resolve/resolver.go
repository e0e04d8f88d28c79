// Package resolve computes each relation's canonical verb set
// (verbs_resolved) against the core verb lexicon. Resolution never
// fails on bad data: a dangling or empty lex_ref yields an empty verb
// set and an accumulated issue, so a single bad reference cannot block
// visibility into the rest of the taxonomy.
package resolve

import (
	"strings"

	"github.com/magazine233/lexstage/taxonomy"
)

// RefIssue records a relation whose lex_ref is empty or names no
// lexicon verb.
type RefIssue struct {
	Rel    string `json:"rel"`
	LexRef string `json:"lex_ref"`
}

// TargetIssue records an inverse_of target that names no relation.
type TargetIssue struct {
	Rel    string `json:"rel"`
	Target string `json:"target"`
}

// Issues accumulates everything resolution flagged, in resolution order.
type Issues struct {
	InvalidLexRef         []RefIssue    `json:"invalid_lex_ref"`
	InvalidInverseTargets []TargetIssue `json:"invalid_inverse_targets"`
}

// Counts returns the per-kind issue counts for the staging summary.
func (i *Issues) Counts() map[string]int {
	return map[string]int{
		"invalid_lex_ref":         len(i.InvalidLexRef),
		"invalid_inverse_targets": len(i.InvalidInverseTargets),
	}
}

// Total returns the combined issue count.
func (i *Issues) Total() int {
	return len(i.InvalidLexRef) + len(i.InvalidInverseTargets)
}

// Result holds the staged relation copies, in case-insensitive id order,
// plus everything resolution flagged along the way.
type Result struct {
	Relations []*taxonomy.RelationEntry
	Issues    Issues
}

// Relations resolves every relation in the vocabulary. Each staged copy
// carries an explicit id and a verbs_resolved list: the referenced verb's
// id followed by its synonyms, deduplicated case-insensitively with
// first-seen order (and casing) kept. When dropVerbs is set the legacy
// verbs field is stripped from the copies. Source records are never
// mutated.
func Relations(lex *taxonomy.Lexicon, rels *taxonomy.Relations, dropVerbs bool) *Result {
	result := &Result{
		Relations: make([]*taxonomy.RelationEntry, 0, rels.Len()),
		Issues: Issues{
			InvalidLexRef:         []RefIssue{},
			InvalidInverseTargets: []TargetIssue{},
		},
	}

	for _, key := range rels.Keys() {
		entry, _ := rels.Get(key)
		staged := entry.Clone()
		staged.SetID(staged.EffectiveID(key))

		lexRef := strings.TrimSpace(staged.LexRef)
		verb, ok := lex.Lookup(lexRef)
		if lexRef == "" || !ok {
			result.Issues.InvalidLexRef = append(result.Issues.InvalidLexRef, RefIssue{
				Rel:    key,
				LexRef: lexRef,
			})
			// Keep the relation visible in the preview regardless.
			staged.SetVerbsResolved(nil)
		} else {
			staged.SetVerbsResolved(taxonomy.DedupeFold(append([]string{verb.ID}, verb.Synonyms...)))
		}

		if dropVerbs {
			staged.StripVerbs()
		}

		if staged.InverseOf != nil {
			for _, target := range staged.InverseOf.Targets() {
				if !rels.Has(target) {
					result.Issues.InvalidInverseTargets = append(result.Issues.InvalidInverseTargets, TargetIssue{
						Rel:    key,
						Target: target,
					})
				}
			}
		}

		result.Relations = append(result.Relations, staged)
	}
	return result
}
