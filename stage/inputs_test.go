package stage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandInputs(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.yaml", "a.yaml", "c.json"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("{}"), 0o644))
	}

	files, err := ExpandInputs([]string{filepath.Join(dir, "*.yaml")})
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "a.yaml"), filepath.Join(dir, "b.yaml")}, files)
}

func TestExpandInputsLiteralPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "core.yaml")
	require.NoError(t, os.WriteFile(path, []byte("{}"), 0o644))

	files, err := ExpandInputs([]string{path})
	require.NoError(t, err)
	assert.Equal(t, []string{path}, files)
}

func TestExpandInputsDeduplicates(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "core.yaml")
	require.NoError(t, os.WriteFile(path, []byte("{}"), 0o644))

	files, err := ExpandInputs([]string{path, filepath.Join(dir, "*.yaml")})
	require.NoError(t, err)
	assert.Equal(t, []string{path}, files)
}

func TestExpandInputsNoMatches(t *testing.T) {
	_, err := ExpandInputs([]string{filepath.Join(t.TempDir(), "*.yaml")})
	assert.Error(t, err)
}
