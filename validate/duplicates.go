package validate

import (
	"sort"

	"github.com/magazine233/lexstage/taxonomy"
)

// checkDuplicates runs the three duplicate-term checks over the lexicon:
//
//  1. a primary id that also appears (case-sensitive) as a synonym on any
//     entry, including its own;
//  2. a synonym owned by two or more distinct entries;
//  3. a synonym repeated within one entry's own list.
//
// All three are reported, none are fatal. Colliding terms are emitted in
// sorted order; owner lists keep lexicon document order.
func checkDuplicates(report *Report, lex *taxonomy.Lexicon) {
	// synonym -> ids of every entry listing it, in document order.
	owners := make(map[string][]string)
	for _, entry := range lex.Entries {
		for _, syn := range entry.Synonyms {
			owners[syn] = append(owners[syn], entry.ID)
		}
	}

	primaries := make([]string, 0, len(lex.Entries))
	for _, entry := range lex.Entries {
		primaries = append(primaries, entry.ID)
	}
	sort.Strings(primaries)
	for _, primary := range primaries {
		if ids, ok := owners[primary]; ok {
			report.add(KindPrimaryAsSynonym, Issue{Term: primary, Owners: ids})
		}
	}

	synonyms := make([]string, 0, len(owners))
	for syn := range owners {
		synonyms = append(synonyms, syn)
	}
	sort.Strings(synonyms)
	for _, syn := range synonyms {
		if ids := owners[syn]; len(distinct(ids)) > 1 {
			report.add(KindSharedSynonym, Issue{Term: syn, Owners: ids})
		}
	}

	for _, entry := range lex.Entries {
		seen := make(map[string]bool, len(entry.Synonyms))
		var repeated []string
		for _, syn := range entry.Synonyms {
			if seen[syn] {
				repeated = append(repeated, syn)
			}
			seen[syn] = true
		}
		if len(repeated) > 0 {
			report.add(KindRepeatedSynonym, Issue{Verb: entry.ID, Repeated: repeated})
		}
	}
}

func distinct(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	out := ids[:0:0]
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}
