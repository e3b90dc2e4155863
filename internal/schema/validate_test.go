package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_CleanModel(t *testing.T) {
	m, err := Parse([]byte(sampleModel))
	require.NoError(t, err)

	ds := Validate(m)
	assert.True(t, ds.IsValid())
	assert.Empty(t, ds.Warnings)
}

func TestValidate_NilModel(t *testing.T) {
	ds := Validate(nil)
	require.True(t, ds.HasErrors())
	assert.Equal(t, "model_is_nil", ds.Errors[0].Code)
}

func TestValidate_Errors(t *testing.T) {
	tests := []struct {
		name     string
		yaml     string
		wantCode string
	}{
		{
			name: "empty class name",
			yaml: `
classes:
  - fields:
      - {name: _a, type: int, getter: {}}
`,
			wantCode: "empty_class_name",
		},
		{
			name: "duplicate class",
			yaml: `
classes:
  - name: C
    fields: [{name: _a, type: int, getter: {}}]
  - name: C
    fields: [{name: _a, type: int, getter: {}}]
`,
			wantCode: "duplicate_class",
		},
		{
			name: "empty field name",
			yaml: `
classes:
  - name: C
    fields: [{type: int}]
`,
			wantCode: "empty_field_name",
		},
		{
			name: "duplicate field",
			yaml: `
classes:
  - name: C
    fields:
      - {name: _a, type: int, getter: {}}
      - {name: _a, type: String}
`,
			wantCode: "duplicate_field",
		},
		{
			name: "missing type",
			yaml: `
classes:
  - name: C
    fields: [{name: _a, getter: {}}]
`,
			wantCode: "missing_type",
		},
		{
			name: "unparsable type",
			yaml: `
classes:
  - name: C
    fields: [{name: _a, type: "List<", getter: {}}]
`,
			wantCode: "bad_type",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := Parse([]byte(tt.yaml))
			require.NoError(t, err)

			ds := Validate(m)
			require.True(t, ds.HasErrors())
			assert.Equal(t, tt.wantCode, ds.Errors[0].Code)
		})
	}
}

func TestValidate_WarnsOnGetterlessClass(t *testing.T) {
	m, err := Parse([]byte(`
classes:
  - name: Plain
    fields: [{name: _a, type: int}]
`))
	require.NoError(t, err)

	ds := Validate(m)
	assert.True(t, ds.IsValid())
	require.Len(t, ds.Warnings, 1)
	assert.Equal(t, "no_getters", ds.Warnings[0].Code)
	assert.Equal(t, "Plain", ds.Warnings[0].Class)
}

func TestValidate_UnmarkedFieldNameIsStructurallyLegal(t *testing.T) {
	// The private-marker check belongs to synthesis, not validation.
	m, err := Parse([]byte(`
classes:
  - name: C
    fields: [{name: username, type: String, getter: {}}]
`))
	require.NoError(t, err)

	ds := Validate(m)
	assert.True(t, ds.IsValid())
}
