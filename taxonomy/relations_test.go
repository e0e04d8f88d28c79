package taxonomy

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadRelationsFiles(t *testing.T) {
	path := writeFile(t, "rels.yaml", `
rels:
  enables:
    description: makes possible
    lex_ref: enable
    inverse_of: "null"
  Requires:
    id: requires
    description: depends on
    lex_ref: require
    inverse_of: [required_by, "null"]
    priority: 3
  blocks:
    description: prevents
    lex_ref: block
    verbs: [block, stop]
`)

	rels, err := LoadRelationsFiles(path)
	require.NoError(t, err)
	require.Equal(t, 3, rels.Len())

	// Case-insensitive key order.
	assert.Equal(t, []string{"blocks", "enables", "Requires"}, rels.Keys())

	enables, ok := rels.Get("enables")
	require.True(t, ok)
	assert.False(t, enables.Authored("id"))
	assert.Equal(t, "enables", enables.EffectiveID("enables"))
	require.NotNil(t, enables.InverseOf)
	assert.Empty(t, enables.InverseOf.Targets())

	requires, ok := rels.Get("Requires")
	require.True(t, ok)
	assert.True(t, requires.Authored("id"))
	assert.Equal(t, "requires", requires.ID)
	// "null" is an absence marker even inside a list.
	assert.Equal(t, []string{"required_by"}, requires.InverseOf.Targets())
	assert.Equal(t, map[string]any{"priority": 3}, requires.Extra)

	blocks, ok := rels.Get("blocks")
	require.True(t, ok)
	assert.True(t, blocks.Authored("verbs"))
	assert.Equal(t, []string{"block", "stop"}, blocks.Verbs)
}

func TestLoadRelationsFilesInvalidShape(t *testing.T) {
	path := writeFile(t, "rels.yaml", `
rels:
  - not
  - a
  - mapping
`)

	_, err := LoadRelationsFiles(path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidShape))
}

func TestLoadRelationsFilesMissingKey(t *testing.T) {
	path := writeFile(t, "rels.yaml", "other: value\n")

	rels, err := LoadRelationsFiles(path)
	require.NoError(t, err)
	assert.Equal(t, 0, rels.Len())
}

func TestLoadRelationsFilesLaterFileWins(t *testing.T) {
	a := writeFile(t, "a.yaml", "rels:\n  enables:\n    description: first\n")
	b := writeFile(t, "b.yaml", "rels:\n  enables:\n    description: second\n")

	rels, err := LoadRelationsFiles(a, b)
	require.NoError(t, err)
	entry, ok := rels.Get("enables")
	require.True(t, ok)
	assert.Equal(t, "second", entry.Description)
}

func TestRelationEntryMarshalAuthoredFieldsOnly(t *testing.T) {
	path := writeFile(t, "rels.yaml", `
rels:
  enables:
    description: makes possible
    lex_ref: enable
    weight: 2
`)

	rels, err := LoadRelationsFiles(path)
	require.NoError(t, err)
	entry, _ := rels.Get("enables")

	data, err := json.Marshal(entry)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(data, &m))
	assert.NotContains(t, m, "id")
	assert.NotContains(t, m, "inverse_of")
	assert.NotContains(t, m, "verbs")
	assert.NotContains(t, m, "verbs_resolved")
	assert.Equal(t, "makes possible", m["description"])
	assert.Equal(t, float64(2), m["weight"])
}

func TestRelationEntryCloneIsIndependent(t *testing.T) {
	path := writeFile(t, "rels.yaml", `
rels:
  enables:
    description: makes possible
    verbs: [enable]
`)

	rels, err := LoadRelationsFiles(path)
	require.NoError(t, err)
	entry, _ := rels.Get("enables")

	clone := entry.Clone()
	clone.SetID("enables")
	clone.SetVerbsResolved([]string{"enable"})
	clone.StripVerbs()

	assert.False(t, entry.Authored("id"))
	assert.Nil(t, entry.VerbsResolved)
	assert.Equal(t, []string{"enable"}, entry.Verbs)
	assert.True(t, clone.Authored("id"))
	assert.Nil(t, clone.Verbs)
}

func TestLoadSeedFile(t *testing.T) {
	path := writeFile(t, "seed.json", `{
  "name": "seed-taxonomies",
  "verbs": [{"id": "enable", "synonyms": ["allow"]}],
  "rels": {"enables": {"description": "d", "lex_ref": "enable"}}
}`)

	lex, rels, err := LoadSeedFile(path)
	require.NoError(t, err)
	assert.Equal(t, 1, lex.Len())
	assert.Equal(t, 1, rels.Len())
	entry, ok := rels.Get("enables")
	require.True(t, ok)
	assert.Equal(t, "enable", entry.LexRef)
}
