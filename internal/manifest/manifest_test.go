package manifest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeManifest(t *testing.T, dir, content string) string {
	t.Helper()

	path := filepath.Join(dir, Filename)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestLoad(t *testing.T) {
	path := writeManifest(t, t.TempDir(), `
marker = "m_"
output = "./accessors"
force_non_null = true
`)

	m, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "m_", m.Marker)
	assert.Equal(t, "./accessors", m.Output)
	assert.True(t, m.ForceNonNull)
	assert.Empty(t, m.Header)
}

func TestLoad_UnknownKey(t *testing.T) {
	path := writeManifest(t, t.TempDir(), `markr = "_"`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "markr")
}

func TestLoadNearest_WalksUp(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, `marker = "p_"`)

	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	m, found, err := LoadNearest(nested)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "p_", m.Marker)
}

func TestLoadNearest_Missing(t *testing.T) {
	m, found, err := LoadNearest(t.TempDir())
	require.NoError(t, err)
	assert.False(t, found)
	assert.Equal(t, &Manifest{}, m)
}
