// Package analyzetest builds analyze.Package values from in-memory sources so
// the pipeline stages can be tested without invoking the go tool.
package analyzetest

import (
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	"sort"
	"testing"

	"github.com/cockroachdb/errors"

	"wrapper-generator/internal/analyze"
)

// Importer serves fake packages by import path.
type Importer map[string]*types.Package

// Import implements types.Importer.
func (im Importer) Import(path string) (*types.Package, error) {
	if pkg, ok := im[path]; ok {
		return pkg, nil
	}

	return nil, errors.Newf("package %s not found", path)
}

// Lookup adapts the importer to analyze.LookupFunc.
func (im Importer) Lookup(path string) (*types.Package, error) {
	return im.Import(path)
}

// Package parses and type-checks sources (file name -> content) as the package
// with import path pkgPath. Type errors are tolerated, as the loader does.
func Package(t testing.TB, pkgPath string, sources map[string]string, imports Importer) *analyze.Package {
	t.Helper()

	fset := token.NewFileSet()

	names := make([]string, 0, len(sources))
	for name := range sources {
		names = append(names, name)
	}

	sort.Strings(names)

	var files []*ast.File
	for _, name := range names {
		f, err := parser.ParseFile(fset, "/src/"+pkgPath+"/"+name, sources[name], parser.ParseComments)
		if err != nil {
			t.Fatalf("parse %s: %v", name, err)
		}

		files = append(files, f)
	}

	info := &types.Info{
		Types: make(map[ast.Expr]types.TypeAndValue),
		Defs:  make(map[*ast.Ident]types.Object),
		Uses:  make(map[*ast.Ident]types.Object),
	}

	var typeErrs []error
	conf := types.Config{
		Importer: imports,
		Error:    func(err error) { typeErrs = append(typeErrs, err) },
	}

	pkg, _ := conf.Check(pkgPath, fset, files, info)

	return &analyze.Package{
		Path:       pkgPath,
		Name:       pkg.Name(),
		Dir:        "/src/" + pkgPath,
		Fset:       fset,
		Files:      files,
		Types:      pkg,
		Info:       info,
		TypeErrors: typeErrs,
	}
}

// Source is a shorthand for a single-file package.
func Source(t testing.TB, src string) *analyze.Package {
	t.Helper()

	return Package(t, "example.com/wrappers", map[string]string{"wrappers.go": src}, nil)
}

// NamedType adds a named type with the given underlying type to pkg and
// returns it.
func NamedType(pkg *types.Package, name string, underlying types.Type) *types.Named {
	obj := types.NewTypeName(token.NoPos, pkg, name, nil)
	named := types.NewNamed(obj, underlying, nil)
	pkg.Scope().Insert(obj)

	return named
}

// AddMethod declares method name on named with the given params and results.
func AddMethod(named *types.Named, name string, params, results []types.Type) {
	pkg := named.Obj().Pkg()

	vars := func(ts []types.Type) *types.Tuple {
		vs := make([]*types.Var, len(ts))
		for i, t := range ts {
			vs[i] = types.NewParam(token.NoPos, pkg, "", t)
		}

		return types.NewTuple(vs...)
	}

	recv := types.NewParam(token.NoPos, pkg, "", named)
	sig := types.NewSignatureType(recv, nil, nil, vars(params), vars(results), false)
	named.AddMethod(types.NewFunc(token.NoPos, pkg, name, sig))
}

// TimePackage returns a fake "time" package with Time (Equal, Compare, String
// methods) and Duration.
func TimePackage() *types.Package {
	pkg := types.NewPackage("time", "time")

	tm := NamedType(pkg, "Time", types.NewStruct(nil, nil))
	AddMethod(tm, "Equal", []types.Type{tm}, []types.Type{types.Typ[types.Bool]})
	AddMethod(tm, "Compare", []types.Type{tm}, []types.Type{types.Typ[types.Int]})
	AddMethod(tm, "String", nil, []types.Type{types.Typ[types.String]})

	NamedType(pkg, "Duration", types.Typ[types.Int64])

	pkg.MarkComplete()

	return pkg
}

// DecimalPackage returns a fake "github.com/shopspring/decimal" package.
func DecimalPackage() *types.Package {
	pkg := types.NewPackage("github.com/shopspring/decimal", "decimal")

	dec := NamedType(pkg, "Decimal", types.NewStruct(nil, nil))
	AddMethod(dec, "Equal", []types.Type{dec}, []types.Type{types.Typ[types.Bool]})
	AddMethod(dec, "Compare", []types.Type{dec}, []types.Type{types.Typ[types.Int]})
	AddMethod(dec, "String", nil, []types.Type{types.Typ[types.String]})

	for _, op := range []string{"Add", "Sub", "Mul", "Div", "Mod"} {
		AddMethod(dec, op, []types.Type{dec}, []types.Type{dec})
	}

	pkg.MarkComplete()

	return pkg
}

// Targets discovers the targets of a single-file package.
func Targets(t testing.TB, src string) []*analyze.Target {
	t.Helper()

	return analyze.Discover(Source(t, src))
}

// Target returns the only target of a single-file package.
func Target(t testing.TB, src string) *analyze.Target {
	t.Helper()

	targets := Targets(t, src)
	if len(targets) != 1 {
		t.Fatalf("expected exactly one target, got %d", len(targets))
	}

	return targets[0]
}
