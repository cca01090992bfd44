package diagnostic

import (
	"go/token"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnostics_AddBySeverity(t *testing.T) {
	var d Diagnostics
	d.AddError(CodeUnresolvedType, "cannot resolve Money", "money.Cents", "Value")
	d.AddWarning("W1", "warn", "money.Cents", "")
	d.AddInfo(CodeCustomString, "String preserved", "money.Cents", "")

	assert.Len(t, d.Errors, 1)
	assert.Len(t, d.Warnings, 1)
	assert.Len(t, d.Infos, 1)
	assert.True(t, d.HasErrors())
	assert.False(t, d.IsValid())
	assert.True(t, d.HasCode(CodeCustomString))
	assert.False(t, d.HasCode(CodeNotExtensible))

	all := d.All()
	require.Len(t, all, 3)
	assert.Equal(t, DiagnosticError, all[0].Severity)
	assert.Equal(t, DiagnosticWarning, all[1].Severity)
	assert.Equal(t, DiagnosticInfo, all[2].Severity)
}

func TestDiagnostics_Merge(t *testing.T) {
	var a, b Diagnostics
	a.AddError(CodeNestedDeclaration, "nested", "A", "")
	b.AddError(CodeNotExtensible, "not extensible", "B", "")
	b.AddInfo(CodeCustomString, "kept", "B", "")

	a.Merge(b)

	assert.Len(t, a.Errors, 2)
	assert.Len(t, a.Infos, 1)
	assert.Equal(t, "A", a.Errors[0].Target)
	assert.Equal(t, "B", a.Errors[1].Target)
}

func TestDiagnostics_At(t *testing.T) {
	pos := token.Position{Filename: "money/cents.go", Line: 7, Column: 6}
	keep := token.Position{Filename: "money/rate.go", Line: 3, Column: 6}

	var d Diagnostics
	d.AddError(CodeUnresolvedType, "cannot resolve", "Cents", "")
	d.Add(Diagnostic{Severity: DiagnosticInfo, Code: CodeCustomString, Position: keep})
	d.At(pos)

	assert.Equal(t, pos, d.Errors[0].Position)
	assert.Equal(t, keep, d.Infos[0].Position)
}

func TestDiagnostics_Error(t *testing.T) {
	var d Diagnostics
	require.NoError(t, d.Error())

	d.AddInfo(CodeCustomString, "kept", "Label", "")
	require.NoError(t, d.Error())

	d.AddError(CodeNestedDeclaration, "nested", "A", "")
	d.AddError(CodeNotExtensible, "not extensible", "B", "")

	err := d.Error()
	require.Error(t, err)
	assert.Equal(t, "[A]: [WVOG00001] nested; [B]: [WVOG00002] not extensible", err.Error())
}

func TestDiagnostic_String(t *testing.T) {
	tests := []struct {
		name string
		diag Diagnostic
		want string
	}{
		{
			name: "full",
			diag: Diagnostic{
				Code:     CodeUnresolvedType,
				Message:  "cannot resolve Money",
				Target:   "money.Cents",
				Field:    "Value",
				Position: token.Position{Filename: "money/cents.go", Line: 7, Column: 6},
			},
			want: "money/cents.go:7:6: [money.Cents] Value: [WVOG00003] cannot resolve Money",
		},
		{
			name: "position only",
			diag: Diagnostic{
				Message:  "boom",
				Position: token.Position{Filename: "a.go", Line: 1, Column: 1},
			},
			want: "a.go:1:1: boom",
		},
		{
			name: "message only",
			diag: Diagnostic{Message: "boom"},
			want: "boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.diag.String())
		})
	}
}

func TestDiagnosticSeverity_String(t *testing.T) {
	assert.Equal(t, "info", DiagnosticInfo.String())
	assert.Equal(t, "warning", DiagnosticWarning.String())
	assert.Equal(t, "error", DiagnosticError.String())
	assert.Equal(t, "unknown", DiagnosticSeverity(42).String())
}
