package diagnostic

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnostics_Buckets(t *testing.T) {
	var ds Diagnostics

	ds.AddError("invalid_target", "not a private field", "User", "username")
	ds.AddWarning("empty_class", "class has no getter fields", "Empty", "")
	ds.AddInfo("generated", "2 accessors generated", "", "")

	assert.Len(t, ds.Errors, 1)
	assert.Len(t, ds.Warnings, 1)
	assert.Len(t, ds.Infos, 1)
	assert.True(t, ds.HasErrors())
	assert.False(t, ds.IsValid())

	all := ds.All()
	require.Len(t, all, 3)
	assert.Equal(t, SeverityError, all[0].Severity)
	assert.Equal(t, SeverityWarning, all[1].Severity)
	assert.Equal(t, SeverityInfo, all[2].Severity)
}

func TestDiagnostics_Merge(t *testing.T) {
	var a, b Diagnostics

	a.AddError("e1", "first", "", "")
	b.AddError("e2", "second", "", "")
	b.AddWarning("w1", "warn", "", "")

	a.Merge(b)

	assert.Len(t, a.Errors, 2)
	assert.Len(t, a.Warnings, 1)
}

func TestDiagnostics_Error(t *testing.T) {
	var ds Diagnostics
	assert.NoError(t, ds.Error())

	ds.AddError("bad_type", "cannot parse type", "User", "_age")

	err := ds.Error()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad_type")
	assert.Contains(t, err.Error(), "_age")
}

func TestDiagnostic_String(t *testing.T) {
	tests := []struct {
		name     string
		diag     Diagnostic
		expected string
	}{
		{
			name: "full",
			diag: Diagnostic{
				Code:    "invalid_target",
				Message: "not private",
				Class:   "User",
				Field:   "username",
			},
			expected: "[User] username: [invalid_target] not private",
		},
		{
			name:     "message only",
			diag:     Diagnostic{Message: "something happened"},
			expected: "something happened",
		},
		{
			name:     "field only",
			diag:     Diagnostic{Message: "oops", Field: "_x"},
			expected: "_x: oops",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.diag.String())
		})
	}
}

func TestReporter_PlainOutput(t *testing.T) {
	var buf bytes.Buffer

	var ds Diagnostics
	ds.AddError("invalid_target", "not private", "User", "username")
	ds.AddWarning("w", "heads up", "", "")

	r := NewReporter(&buf, ColorOff)
	errCount := r.ReportAll(&ds)

	assert.Equal(t, 1, errCount)
	assert.Equal(t,
		"error: [User] username: [invalid_target] not private\n"+
			"warning: heads up\n",
		buf.String())
}

func TestSeverity_String(t *testing.T) {
	assert.Equal(t, "error", SeverityError.String())
	assert.Equal(t, "warning", SeverityWarning.String())
	assert.Equal(t, "info", SeverityInfo.String())
	assert.Equal(t, "unknown", Severity(42).String())
}
