package validate

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magazine233/lexstage/taxonomy"
)

func loadTaxonomy(t *testing.T, core, rels string) (*taxonomy.Lexicon, *taxonomy.Relations) {
	t.Helper()
	dir := t.TempDir()
	corePath := filepath.Join(dir, "core.yaml")
	relsPath := filepath.Join(dir, "rels.yaml")
	require.NoError(t, os.WriteFile(corePath, []byte(core), 0o644))
	require.NoError(t, os.WriteFile(relsPath, []byte(rels), 0o644))

	lex, err := taxonomy.LoadLexiconFiles(corePath)
	require.NoError(t, err)
	relations, err := taxonomy.LoadRelationsFiles(relsPath)
	require.NoError(t, err)
	return lex, relations
}

func TestRunCleanTaxonomy(t *testing.T) {
	lex, rels := loadTaxonomy(t, `
verbs:
  - id: enable
    synonyms: [allow, permit]
`, `
rels:
  r1:
    description: d
    lex_ref: enable
    inverse_of: "null"
`)

	report := Run(lex, rels)
	assert.Equal(t, StatusOK, report.Status)
	assert.Equal(t, 0, report.Total)
	for kind, issues := range report.Issues {
		assert.Empty(t, issues, "kind %s", kind)
		assert.Equal(t, 0, report.Summary[kind])
	}
}

func TestRunUnknownLexRef(t *testing.T) {
	lex, rels := loadTaxonomy(t, "verbs: []\n", `
rels:
  r1:
    description: d
    lex_ref: missing_verb
`)

	report := Run(lex, rels)
	assert.Equal(t, StatusIssuesFound, report.Status)
	assert.Equal(t, []Issue{{Rel: "r1", LexRef: "missing_verb"}}, report.Issues[KindMissingLexRef])
}

func TestRunEmptyLexRefNotFlagged(t *testing.T) {
	lex, rels := loadTaxonomy(t, "verbs: []\n", `
rels:
  r1:
    description: d
    lex_ref: ""
`)

	report := Run(lex, rels)
	assert.Empty(t, report.Issues[KindMissingLexRef])
}

func TestRunInverseTargets(t *testing.T) {
	lex, rels := loadTaxonomy(t, "verbs: []\n", `
rels:
  r1:
    description: d
    inverse_of: [r2, nope]
  r2:
    description: d
    inverse_of: "Null"
  r3:
    description: d
    inverse_of: gone
`)

	report := Run(lex, rels)
	assert.Equal(t, []Issue{
		{Rel: "r1", Target: "nope"},
		{Rel: "r3", Target: "gone"},
	}, report.Issues[KindInvalidInverseTargets])
}

func TestRunMissingDescription(t *testing.T) {
	lex, rels := loadTaxonomy(t, "verbs: []\n", `
rels:
  r1:
    lex_ref: enable
  r2:
    description: ""
`)

	report := Run(lex, rels)
	assert.Equal(t, []Issue{
		{Rel: "r1", MissingField: "description"},
		{Rel: "r2", MissingField: "description"},
	}, report.Issues[KindMissingFields])
}

func TestRunIDDefaultedFromKeyIsNotMissing(t *testing.T) {
	lex, rels := loadTaxonomy(t, "verbs: []\n", `
rels:
  r1:
    description: d
`)

	report := Run(lex, rels)
	for _, issue := range report.Issues[KindMissingFields] {
		assert.NotEqual(t, "id", issue.MissingField)
	}
}

func TestReportSummaryAndTotal(t *testing.T) {
	lex, rels := loadTaxonomy(t, `
verbs:
  - id: enable
    synonyms: [enable]
`, `
rels:
  r1:
    description: d
    lex_ref: nope
`)

	report := Run(lex, rels)
	assert.Equal(t, StatusIssuesFound, report.Status)
	assert.Equal(t, 1, report.Summary[KindMissingLexRef])
	assert.Equal(t, 1, report.Summary[KindPrimaryAsSynonym])
	assert.Equal(t, 2, report.Total)
	// Every kind is present in the report, populated or not.
	assert.Len(t, report.Summary, len(kinds))
	assert.Len(t, report.Issues, len(kinds))
}
