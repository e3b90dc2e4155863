package schema

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleModel = `
version: "1"
classes:
  - name: User
    fields:
      - name: _username
        type: String
        getter: {}
      - name: _nickname
        type: String?
        getter: { forceNonNull: true }
      - name: _password
        type: String
  - name: Registry
    fields:
      - name: _instance
        type: Logger
        static: true
        getter: true
`

func TestParse_SampleModel(t *testing.T) {
	m, err := Parse([]byte(sampleModel))
	require.NoError(t, err)

	require.Len(t, m.Classes, 2)
	assert.Equal(t, "1", m.Version)
	assert.Equal(t, "_", m.Marker)

	user := m.Classes[0]
	require.Len(t, user.Fields, 3)

	assert.True(t, user.Fields[0].HasGetter())
	assert.False(t, user.Fields[0].Getter.ForceNonNull)

	assert.True(t, user.Fields[1].HasGetter())
	assert.True(t, user.Fields[1].Getter.ForceNonNull)

	// Unannotated fields stay alone.
	assert.False(t, user.Fields[2].HasGetter())

	registry := m.Classes[1]
	require.Len(t, registry.Fields, 1)
	assert.True(t, registry.Fields[0].Static)
	assert.True(t, registry.Fields[0].HasGetter())
}

func TestParse_GetterShorthands(t *testing.T) {
	m, err := Parse([]byte(`
classes:
  - name: C
    fields:
      - name: _a
        type: int
        getter: true
      - name: _b
        type: int
        getter: false
      - name: _c
        type: int
        getter:
`))
	require.NoError(t, err)

	fields := m.Classes[0].Fields
	require.Len(t, fields, 3)

	// Bool shorthand.
	assert.True(t, fields[0].HasGetter())
	assert.False(t, fields[1].HasGetter())
	// Bare key with null value is the same as no annotation.
	assert.False(t, fields[2].HasGetter())
}

func TestParse_CustomMarker(t *testing.T) {
	m, err := Parse([]byte(`
marker: "m_"
classes:
  - name: C
    fields:
      - name: m_count
        type: int
        getter: {}
`))
	require.NoError(t, err)
	assert.Equal(t, "m_", m.Marker)
}

func TestParse_InvalidYAML(t *testing.T) {
	_, err := Parse([]byte("classes: [broken"))
	assert.Error(t, err)
}

func TestParse_BadGetterShape(t *testing.T) {
	_, err := Parse([]byte(`
classes:
  - name: C
    fields:
      - name: _a
        type: int
        getter: "yes please"
`))
	assert.Error(t, err)
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestWriteFile_Roundtrip(t *testing.T) {
	m, err := Parse([]byte(sampleModel))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "model.yaml")
	require.NoError(t, WriteFile(m, path))

	loaded, err := LoadFile(path)
	require.NoError(t, err)

	require.Len(t, loaded.Classes, 2)
	assert.True(t, loaded.Classes[0].Fields[1].Getter.ForceNonNull)
	assert.False(t, loaded.Classes[0].Fields[2].HasGetter())
}
