// Package plantest builds plans from in-memory sources for tests of the
// planning and generation stages.
package plantest

import (
	"testing"

	"wrapper-generator/internal/analyze"
	"wrapper-generator/internal/analyze/analyzetest"
	"wrapper-generator/internal/diagnostic"
	"wrapper-generator/internal/directive"
	"wrapper-generator/internal/plan"
)

// PkgPath is the import path of the packages built by this package.
const PkgPath = "example.com/wrappers"

// Imports returns an importer serving the fake time and decimal packages.
func Imports() analyzetest.Importer {
	return analyzetest.Importer{
		"time":                          analyzetest.TimePackage(),
		"github.com/shopspring/decimal": analyzetest.DecimalPackage(),
	}
}

// BuildSources plans the only annotated type of a package built from sources.
func BuildSources(t testing.TB, sources map[string]string, imports analyzetest.Importer) (*plan.Plan, diagnostic.Diagnostics) {
	t.Helper()

	pkg := analyzetest.Package(t, PkgPath, sources, imports)

	targets := analyze.Discover(pkg)
	if len(targets) != 1 {
		t.Fatalf("expected exactly one target, got %d", len(targets))
	}

	target := targets[0]
	if target.DirectiveErr != nil {
		t.Fatalf("directive: %v", target.DirectiveErr)
	}

	spec, err := directive.Parse(target.Directive.Args)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	resolver := analyze.NewResolver(pkg, target.File, imports.Lookup)

	refs := make([]analyze.TypeRef, 0, len(spec.Fields))
	for _, f := range spec.Fields {
		ref, err := resolver.Resolve(f.TypeExpr)
		if err != nil {
			t.Fatalf("resolve %s: %v", f.TypeExpr, err)
		}

		refs = append(refs, ref)
	}

	return plan.Build(target, spec, refs, plan.DetectCapabilities(target, refs))
}

// Build plans the only annotated type of a single-file package.
func Build(t testing.TB, src string) (*plan.Plan, diagnostic.Diagnostics) {
	t.Helper()

	return BuildSources(t, map[string]string{"wrappers.go": src}, Imports())
}

// MustBuild is Build failing the test on error diagnostics.
func MustBuild(t testing.TB, src string) *plan.Plan {
	t.Helper()

	p, diags := Build(t, src)
	if diags.HasErrors() || p == nil {
		t.Fatalf("unexpected errors: %v", diags.Error())
	}

	return p
}
