package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wrapper-generator/internal/analyze/analyzetest"
	"wrapper-generator/internal/diagnostic"
	"wrapper-generator/internal/validate"
)

func TestStructure_Valid(t *testing.T) {
	target := analyzetest.Target(t, `package wrappers

//wrapgen:wrap int64
type Cents struct {
	centsBacking
}
`)

	diags := validate.Structure(target)
	assert.True(t, diags.IsValid())
	assert.Empty(t, diags.All())
}

func TestStructure_ExtraFieldsAndTags(t *testing.T) {
	target := analyzetest.Target(t, `package wrappers

//wrapgen:wrap "X" int "Y" int
type Point struct {
	pointBacking ` + "`json:\"-\"`" + `

	label string
}
`)

	diags := validate.Structure(target)
	assert.True(t, diags.IsValid())
}

func TestStructure_Nested(t *testing.T) {
	target := analyzetest.Target(t, `package wrappers

func run() {
	//wrapgen:wrap int64
	type Cents int64
}
`)

	diags := validate.Structure(target)
	require.Len(t, diags.Errors, 1, "nesting short-circuits the extensibility check")
	assert.Equal(t, diagnostic.CodeNestedDeclaration, diags.Errors[0].Code)
	assert.Contains(t, diags.Errors[0].Message, "run")
	assert.Equal(t, "example.com/wrappers.Cents", diags.Errors[0].Target)
	assert.Equal(t, 5, diags.Errors[0].Position.Line)
}

func TestStructure_NotExtensible(t *testing.T) {
	tests := []struct {
		name   string
		src    string
		reason string
	}{
		{
			name:   "alias",
			src:    "//wrapgen:wrap int64\ntype Cents = int64\n",
			reason: "alias",
		},
		{
			name:   "generic",
			src:    "//wrapgen:wrap int64\ntype Cents[T any] struct{ centsBacking }\n",
			reason: "generic",
		},
		{
			name:   "not a struct",
			src:    "//wrapgen:wrap int64\ntype Cents int64\n",
			reason: "not a struct",
		},
		{
			name:   "pointer embed",
			src:    "//wrapgen:wrap int64\ntype Cents struct{ *centsBacking }\n",
			reason: "by value",
		},
		{
			name:   "missing embed",
			src:    "//wrapgen:wrap int64\ntype Cents struct{ amount int64 }\n",
			reason: "does not embed centsBacking",
		},
		{
			name:   "named field",
			src:    "//wrapgen:wrap int64\ntype Cents struct{ backing centsBacking }\n",
			reason: "does not embed centsBacking",
		},
		{
			name:   "other backing",
			src:    "//wrapgen:wrap int64\ntype Cents struct{ rateBacking }\n",
			reason: "does not embed centsBacking",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target := analyzetest.Target(t, "package wrappers\n\n"+tt.src)

			diags := validate.Structure(target)
			require.Len(t, diags.Errors, 1)

			d := diags.Errors[0]
			assert.Equal(t, diagnostic.CodeNotExtensible, d.Code)
			assert.Contains(t, d.Message, tt.reason)
			assert.Equal(t, []string{"declare it as: type Cents struct { centsBacking }"}, d.Suggestions)
		})
	}
}
