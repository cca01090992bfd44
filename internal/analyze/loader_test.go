package analyze_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wrapper-generator/internal/analyze"
)

func TestLoader_LoadExamples(t *testing.T) {
	loader := analyze.NewLoader("", nil)
	pkgs, err := loader.Load(t.Context(), "wrapper-generator/examples/money", "wrapper-generator/examples/geo")
	require.NoError(t, err)
	require.Len(t, pkgs, 2)

	paths := []string{pkgs[0].Path, pkgs[1].Path}
	assert.ElementsMatch(t, []string{"wrapper-generator/examples/money", "wrapper-generator/examples/geo"}, paths)

	for _, pkg := range pkgs {
		assert.NotEmpty(t, pkg.Files)
		assert.NotEmpty(t, pkg.Dir)
		assert.NotNil(t, pkg.Types)
	}
}

func TestLoader_DiscoverMoney(t *testing.T) {
	loader := analyze.NewLoader("", nil)
	pkgs, err := loader.Load(t.Context(), "wrapper-generator/examples/money")
	require.NoError(t, err)

	targets := analyze.Discover(pkgs[0])

	names := make([]string, 0, len(targets))
	for _, target := range targets {
		names = append(names, target.Name())
	}

	assert.Contains(t, names, "Cents")
	assert.Contains(t, names, "Rate")
}

func TestLoader_Lookup(t *testing.T) {
	loader := analyze.NewLoader("", nil)

	pkg, err := loader.Lookup("time")
	require.NoError(t, err)
	assert.NotNil(t, pkg.Scope().Lookup("Time"))

	again, err := loader.Lookup("time")
	require.NoError(t, err)
	assert.Same(t, pkg, again)

	_, err = loader.Lookup("wrapper-generator/does/not/exist")
	require.Error(t, err)
}

func TestLoader_NoMatch(t *testing.T) {
	loader := analyze.NewLoader("", nil)

	_, err := loader.Load(t.Context(), "wrapper-generator/does/not/exist")
	require.Error(t, err)
}

func TestTypeID_String(t *testing.T) {
	id := analyze.TypeID{PkgPath: "wrapper-generator/examples/money", Name: "Cents"}
	assert.Equal(t, "wrapper-generator/examples/money.Cents", id.String())

	// Empty package path
	idNoPkg := analyze.TypeID{Name: "int"}
	assert.Equal(t, "int", idNoPkg.String())
}
