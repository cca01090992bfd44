package analyze_test

import (
	"go/types"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wrapper-generator/internal/analyze"
	"wrapper-generator/internal/analyze/analyzetest"
)

const resolveSource = `package wrappers

import (
	"time"

	dec "github.com/shopspring/decimal"
)

type Celsius float64

func helper() {}

var (
	_ time.Time
	_ dec.Decimal
)
`

func newResolver(t *testing.T) *analyze.Resolver {
	t.Helper()

	other := types.NewPackage("example.com/other", "other")
	analyzetest.NamedType(other, "Public", types.Typ[types.Int])
	analyzetest.NamedType(other, "hidden", types.Typ[types.Int])
	other.MarkComplete()

	imports := analyzetest.Importer{
		"time":                          analyzetest.TimePackage(),
		"github.com/shopspring/decimal": analyzetest.DecimalPackage(),
		"example.com/other":             other,
	}

	pkg := analyzetest.Package(t, "example.com/wrappers", map[string]string{"wrappers.go": resolveSource}, imports)
	require.Empty(t, pkg.TypeErrors)

	return analyze.NewResolver(pkg, pkg.Files[0], imports.Lookup)
}

func TestResolver_Resolve(t *testing.T) {
	r := newResolver(t)

	tests := []struct {
		expr string
		want analyze.TypeID
	}{
		{expr: "int64", want: analyze.TypeID{Name: "int64"}},
		{expr: "string", want: analyze.TypeID{Name: "string"}},
		{expr: "Celsius", want: analyze.TypeID{PkgPath: "example.com/wrappers", Name: "Celsius"}},
		{expr: "time.Time", want: analyze.TypeID{PkgPath: "time", Name: "Time"}},
		{expr: "time.Duration", want: analyze.TypeID{PkgPath: "time", Name: "Duration"}},
		{expr: "dec.Decimal", want: analyze.TypeID{PkgPath: "github.com/shopspring/decimal", Name: "Decimal"}},
		{
			expr: "github.com/shopspring/decimal.Decimal",
			want: analyze.TypeID{PkgPath: "github.com/shopspring/decimal", Name: "Decimal"},
		},
		{expr: "example.com/other.Public", want: analyze.TypeID{PkgPath: "example.com/other", Name: "Public"}},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			ref, err := r.Resolve(tt.expr)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ref.ID)
			assert.Equal(t, tt.expr, ref.Expr)
			assert.NotNil(t, ref.Type)
		})
	}
}

func TestResolver_ResolveBasicType(t *testing.T) {
	r := newResolver(t)

	ref, err := r.Resolve("int64")
	require.NoError(t, err)
	assert.Same(t, types.Typ[types.Int64], ref.Type)
	assert.Equal(t, "int64", ref.String())

	ref, err = r.Resolve("Celsius")
	require.NoError(t, err)
	assert.Equal(t, "example.com/wrappers.Celsius", ref.String())

	basic, ok := ref.Type.Underlying().(*types.Basic)
	require.True(t, ok)
	assert.Equal(t, types.Float64, basic.Kind())
}

func TestResolver_Unresolved(t *testing.T) {
	r := newResolver(t)

	for _, expr := range []string{
		"Missing",
		"helper",
		"[]int",
		"*int",
		"time.Nope",
		"example.com/other.hidden",
		"example.com/missing.Type",
		"nope.Type",
	} {
		t.Run(expr, func(t *testing.T) {
			_, err := r.Resolve(expr)
			require.Error(t, err)
			assert.True(t, errors.Is(err, analyze.ErrUnresolved), "got %v", err)
		})
	}
}

func TestResolver_WithoutLookup(t *testing.T) {
	pkg := analyzetest.Source(t, `package wrappers

type Local int
`)

	r := analyze.NewResolver(pkg, pkg.Files[0], nil)

	_, err := r.Resolve("Local")
	require.NoError(t, err)

	_, err = r.Resolve("github.com/shopspring/decimal.Decimal")
	require.Error(t, err)
	assert.True(t, errors.Is(err, analyze.ErrUnresolved))
}

func TestResolver_Candidates(t *testing.T) {
	r := newResolver(t)

	bare := r.Candidates("Celcius")
	assert.Contains(t, bare, "Celsius")
	assert.Contains(t, bare, "int64")
	assert.Contains(t, bare, "time.Duration")
	assert.Contains(t, bare, "dec.Decimal")
	assert.NotContains(t, bare, "helper")

	assert.ElementsMatch(t, []string{"time.Duration", "time.Time"}, r.Candidates("time.Tme"))
	assert.Equal(t, []string{"example.com/other.Public"}, r.Candidates("example.com/other.Pubic"))
	assert.Empty(t, r.Candidates("nowhere.Type"))
}
