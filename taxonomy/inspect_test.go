package taxonomy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDescribeMapping(t *testing.T) {
	path := writeFile(t, "seed.json", `{
  "name": "seed-taxonomies",
  "verbs": [{"id": "enable"}, {"id": "require"}],
  "rels": {"enables": {"description": "d"}}
}`)

	info, err := Describe(path)
	require.NoError(t, err)
	assert.Equal(t, "mapping", info.Kind)
	assert.Equal(t, []string{"name", "rels", "verbs"}, info.Keys)
	assert.Equal(t, 2, info.VerbCount)
	assert.Equal(t, 1, info.RelCount)
}

func TestDescribeSequence(t *testing.T) {
	path := writeFile(t, "doc.yaml", "- a\n- b\n")

	info, err := Describe(path)
	require.NoError(t, err)
	assert.Equal(t, "sequence", info.Kind)
	assert.Empty(t, info.Keys)
}

func TestDescribeUnreadable(t *testing.T) {
	_, err := Describe("does/not/exist.yaml")
	assert.Error(t, err)
}
