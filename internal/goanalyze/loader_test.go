package goanalyze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzer_Load_Webapp(t *testing.T) {
	analyzer := NewAnalyzer()

	structs, err := analyzer.Load("getter-generator/examples/webapp")
	require.NoError(t, err)
	require.Len(t, structs, 2)
	assert.True(t, analyzer.Diagnostics().IsValid())

	// Scope names are sorted, so Session comes first.
	session := structs[0]
	assert.Equal(t, "Session", session.Name)
	assert.Equal(t, "webapp", session.PkgName)
	require.Len(t, session.Fields, 1)
	assert.Equal(t, "_token", session.Fields[0].Descriptor.Name)

	user := structs[1]
	assert.Equal(t, "User", user.Name)
	require.Len(t, user.Fields, 3)

	username := user.Fields[0]
	assert.Equal(t, "_username", username.Descriptor.Name)
	assert.Equal(t, "string", username.Descriptor.Type.Code())
	assert.False(t, username.ForceNonNull)

	nickname := user.Fields[1]
	assert.Equal(t, "_nickname", nickname.Descriptor.Name)
	assert.True(t, nickname.Descriptor.Type.Nullable())
	assert.True(t, nickname.ForceNonNull)

	lastSeen := user.Fields[2]
	assert.Equal(t, "_lastSeen", lastSeen.Descriptor.Name)
	assert.Equal(t, "time.Time?", lastSeen.Descriptor.Type.Code())
	assert.False(t, lastSeen.ForceNonNull)
}

func TestAnalyzer_Load_UntaggedFieldsSkipped(t *testing.T) {
	analyzer := NewAnalyzer()

	structs, err := analyzer.Load("getter-generator/examples/webapp")
	require.NoError(t, err)

	for _, s := range structs {
		for _, f := range s.Fields {
			assert.NotEqual(t, "_password", f.Descriptor.Name)
			assert.NotEqual(t, "_expires", f.Descriptor.Name)
			assert.NotEqual(t, "ID", f.Descriptor.Name)
		}
	}
}

func TestAnalyzer_Load_BadPattern(t *testing.T) {
	analyzer := NewAnalyzer()

	_, err := analyzer.Load("getter-generator/does/not/exist")
	assert.Error(t, err)
}

func TestParseTag(t *testing.T) {
	tests := []struct {
		name      string
		tag       string
		wantOK    bool
		wantForce bool
		wantErr   bool
	}{
		{name: "no tag", tag: ``, wantOK: false},
		{name: "empty getter", tag: `getter:""`, wantOK: true},
		{name: "force", tag: `getter:"forcenonnull"`, wantOK: true, wantForce: true},
		{name: "force with spaces", tag: `getter:" forcenonnull "`, wantOK: true, wantForce: true},
		{name: "other tags only", tag: `json:"name"`, wantOK: false},
		{name: "alongside json", tag: `json:"u" getter:""`, wantOK: true},
		{name: "unknown option", tag: `getter:"readonly"`, wantOK: true, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			force, ok, err := parseTag(tt.tag)

			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantForce, force)
		})
	}
}
