// Package validate checks referential integrity and term hygiene across
// the whole taxonomy. Every finding is data, never an error: validation
// always completes and reports a structured, deterministic issue list so
// the absence of a failure cannot hide a data-quality problem.
package validate

import (
	"github.com/magazine233/lexstage/taxonomy"
)

// Kind identifies one class of data-quality issue.
type Kind string

// Issue kinds. The first three mirror the relation checks, the last
// three the duplicate-term checks over the lexicon.
const (
	KindMissingLexRef         Kind = "missing_lex_ref_in_core"
	KindInvalidInverseTargets Kind = "invalid_inverse_targets"
	KindMissingFields         Kind = "empty_or_missing_fields"
	KindPrimaryAsSynonym      Kind = "primary_term_as_synonym"
	KindSharedSynonym         Kind = "synonym_in_multiple_entries"
	KindRepeatedSynonym       Kind = "duplicate_synonyms_in_entry"
)

// kinds lists every issue kind; the report always carries all of them,
// empty or not, so downstream tools need no existence checks.
var kinds = []Kind{
	KindMissingLexRef,
	KindInvalidInverseTargets,
	KindMissingFields,
	KindPrimaryAsSynonym,
	KindSharedSynonym,
	KindRepeatedSynonym,
}

// Issue is one finding, with enough context to locate the source data.
// Which fields are set depends on the kind.
type Issue struct {
	Rel          string   `json:"rel,omitempty"`           // owning relation
	LexRef       string   `json:"lex_ref,omitempty"`       // dangling lexicon reference
	Target       string   `json:"target,omitempty"`        // dangling inverse target
	MissingField string   `json:"missing_field,omitempty"` // absent or empty required field
	Term         string   `json:"term,omitempty"`          // colliding term
	Owners       []string `json:"owners,omitempty"`        // verb ids owning the term
	Verb         string   `json:"verb,omitempty"`          // entry with internal repeats
	Repeated     []string `json:"repeated,omitempty"`      // tokens repeated within the entry
}

// Status is the overall validation outcome.
type Status string

// Validation outcomes.
const (
	StatusOK          Status = "OK"
	StatusIssuesFound Status = "ISSUES_FOUND"
)

// Report is the structured validation result: issues grouped by kind in
// detection order, per-kind counts, a total, and an overall status that
// is OK iff every count is zero.
type Report struct {
	Summary map[Kind]int     `json:"summary"`
	Total   int              `json:"total"`
	Issues  map[Kind][]Issue `json:"issues"`
	Status  Status           `json:"status"`
}

func newReport() *Report {
	r := &Report{
		Summary: make(map[Kind]int, len(kinds)),
		Issues:  make(map[Kind][]Issue, len(kinds)),
	}
	for _, kind := range kinds {
		r.Issues[kind] = []Issue{}
	}
	return r
}

func (r *Report) add(kind Kind, issue Issue) {
	r.Issues[kind] = append(r.Issues[kind], issue)
}

func (r *Report) finalize() {
	r.Total = 0
	for _, kind := range kinds {
		count := len(r.Issues[kind])
		r.Summary[kind] = count
		r.Total += count
	}
	r.Status = StatusOK
	if r.Total > 0 {
		r.Status = StatusIssuesFound
	}
}

// Run validates the loaded taxonomy: relation referential integrity and
// required fields, then the three duplicate-term checks. The two passes
// are independent; neither short-circuits the other.
func Run(lex *taxonomy.Lexicon, rels *taxonomy.Relations) *Report {
	report := newReport()
	checkRelations(report, lex, rels)
	checkDuplicates(report, lex)
	report.finalize()
	return report
}

func checkRelations(report *Report, lex *taxonomy.Lexicon, rels *taxonomy.Relations) {
	for _, key := range rels.Keys() {
		entry, _ := rels.Get(key)

		// The mapping key names a relation whose record has no id of its
		// own, so id only goes missing when the key is empty too.
		if entry.EffectiveID(key) == "" {
			report.add(KindMissingFields, Issue{Rel: key, MissingField: "id"})
		}
		if !entry.Authored("description") || entry.Description == "" {
			report.add(KindMissingFields, Issue{Rel: key, MissingField: "description"})
		}

		if entry.LexRef != "" {
			if _, ok := lex.Lookup(entry.LexRef); !ok {
				report.add(KindMissingLexRef, Issue{Rel: key, LexRef: entry.LexRef})
			}
		}

		if entry.InverseOf != nil {
			for _, target := range entry.InverseOf.Targets() {
				if !rels.Has(target) {
					report.add(KindInvalidInverseTargets, Issue{Rel: key, Target: target})
				}
			}
		}
	}
}
