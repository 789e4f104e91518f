package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnostics_Add(t *testing.T) {
	var d Diagnostics

	d.AddInfo(CodeTieBroken, "2 candidates tied", 0, "ab")
	d.AddWarning(CodeUnmatchedReference, "no unused candidates", 3, "xyz", "xy", "yz")

	assert.False(t, d.HasErrors())
	assert.NoError(t, d.Error())
	assert.Equal(t, 2, d.Len())

	d.AddError(CodeEmptyInput, "reference is empty", -1, "")
	require.True(t, d.HasErrors())
	assert.EqualError(t, d.Error(), "[empty_input] reference is empty")

	all := d.All()
	require.Len(t, all, 3)
	assert.Equal(t, SeverityError, all[0].Severity)
	assert.Equal(t, SeverityWarning, all[1].Severity)
	assert.Equal(t, SeverityInfo, all[2].Severity)
}

func TestDiagnostic_String(t *testing.T) {
	tests := []struct {
		name     string
		diag     Diagnostic
		expected string
	}{
		{
			name: "with position and suggestions",
			diag: Diagnostic{
				Code:        CodeUnmatchedReference,
				Message:     "best available 0.40 below threshold 0.50",
				Position:    4,
				Word:        "xyz",
				Suggestions: []string{"xya", "zzz"},
			},
			expected: `#4 "xyz": [unmatched_reference] best available 0.40 below threshold 0.50 (nearest: xya, zzz)`,
		},
		{
			name:     "run level",
			diag:     Diagnostic{Code: CodeUnusedCandidates, Message: "3 candidates unused", Position: -1},
			expected: "[unused_candidates] 3 candidates unused",
		},
		{
			name:     "no code",
			diag:     Diagnostic{Message: "plain", Position: -1},
			expected: "plain",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.diag.String())
		})
	}
}

func TestDiagnostics_Merge(t *testing.T) {
	var a, b Diagnostics

	a.AddInfo("a", "first", -1, "")
	b.AddWarning("b", "second", -1, "")
	b.AddError("c", "third", -1, "")

	a.Merge(b)
	assert.Equal(t, 3, a.Len())
	assert.True(t, a.HasErrors())
}

func TestSeverity_String(t *testing.T) {
	assert.Equal(t, "info", SeverityInfo.String())
	assert.Equal(t, "warning", SeverityWarning.String())
	assert.Equal(t, "error", SeverityError.String())
	assert.Equal(t, "unknown", Severity(42).String())
}
