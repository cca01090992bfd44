package analyze

import (
	"go/ast"
	"go/token"
	"go/types"
	"sort"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"

	"wrapper-generator/internal/common"
)

// ErrUnresolved marks a type reference that does not name a type.
var ErrUnresolved = errors.New("cannot resolve type")

// LookupFunc returns the type-checked package for an import path.
type LookupFunc func(path string) (*types.Package, error)

// Resolver resolves directive type references in the scope of one file.
type Resolver struct {
	pkg     *types.Package
	imports map[string]string // local name -> import path
	lookup  LookupFunc
}

// NewResolver creates a Resolver for references written in file of pkg.
// lookup may be nil, in which case only the package, its direct imports and
// the universe are visible.
func NewResolver(pkg *Package, file *ast.File, lookup LookupFunc) *Resolver {
	r := &Resolver{
		pkg:     pkg.Types,
		imports: make(map[string]string),
		lookup:  lookup,
	}

	if file == nil {
		return r
	}

	for _, spec := range file.Imports {
		path, err := strconv.Unquote(spec.Path.Value)
		if err != nil {
			continue
		}

		name := ""
		switch {
		case spec.Name != nil:
			name = spec.Name.Name
		case r.imported(path) != nil:
			name = r.imported(path).Name()
		default:
			name = common.PkgAlias(path)
		}

		if name == "_" || name == "." {
			continue
		}

		r.imports[name] = path
	}

	return r
}

// imported returns a package directly imported by the resolver's package.
func (r *Resolver) imported(path string) *types.Package {
	if r.pkg == nil {
		return nil
	}

	if r.pkg.Path() == path {
		return r.pkg
	}

	for _, imp := range r.pkg.Imports() {
		if imp.Path() == path {
			return imp
		}
	}

	return nil
}

func (r *Resolver) packageFor(path string) (*types.Package, error) {
	if pkg := r.imported(path); pkg != nil {
		return pkg, nil
	}

	if r.lookup == nil {
		return nil, errors.Newf("package %s is not imported", path)
	}

	return r.lookup(path)
}

// Resolve resolves a type reference: a predeclared or package-level
// identifier, "name.Type" through the file's imports, or
// "full/import/path.Type".
func (r *Resolver) Resolve(expr string) (TypeRef, error) {
	qualifier, name := splitQualified(expr)
	if !token.IsIdentifier(name) {
		return TypeRef{}, errors.Wrapf(ErrUnresolved, "%q is not a type name", expr)
	}

	var obj types.Object

	if qualifier == "" {
		if r.pkg != nil {
			obj = r.pkg.Scope().Lookup(name)
		}

		if obj == nil {
			obj = types.Universe.Lookup(name)
		}
	} else {
		path := qualifier
		if imported, ok := r.imports[qualifier]; ok {
			path = imported
		}

		pkg, err := r.packageFor(path)
		if err != nil {
			return TypeRef{}, errors.Wrapf(errors.Mark(err, ErrUnresolved), "resolving %s", expr)
		}

		obj = pkg.Scope().Lookup(name)
		if obj != nil && !obj.Exported() {
			return TypeRef{}, errors.Wrapf(ErrUnresolved, "%s is not exported by %s", name, path)
		}
	}

	typeName, ok := obj.(*types.TypeName)
	if !ok || typeName.Type() == nil || typeName.Type() == types.Typ[types.Invalid] {
		return TypeRef{}, errors.Wrapf(ErrUnresolved, "%s does not name a type", expr)
	}

	id := TypeID{Name: typeName.Name()}
	if typeName.Pkg() != nil {
		id.PkgPath = typeName.Pkg().Path()
	}

	return TypeRef{Expr: expr, ID: id, Type: typeName.Type()}, nil
}

// Candidates lists the type names a reference shaped like expr could have
// meant, spelled as a directive would spell them. Bare names draw from the
// package, the universe and the file's imports; qualified names from the
// qualifying package.
func (r *Resolver) Candidates(expr string) []string {
	qualifier, _ := splitQualified(expr)

	if qualifier != "" {
		path := qualifier
		if imported, ok := r.imports[qualifier]; ok {
			path = imported
		}

		pkg, err := r.packageFor(path)
		if err != nil {
			return nil
		}

		return qualify(qualifier, typeNames(pkg.Scope(), true))
	}

	var names []string
	if r.pkg != nil {
		names = append(names, typeNames(r.pkg.Scope(), false)...)
	}

	names = append(names, typeNames(types.Universe, false)...)

	locals := make([]string, 0, len(r.imports))
	for local := range r.imports {
		locals = append(locals, local)
	}

	sort.Strings(locals)

	for _, local := range locals {
		if pkg := r.imported(r.imports[local]); pkg != nil {
			names = append(names, qualify(local, typeNames(pkg.Scope(), true))...)
		}
	}

	return names
}

func typeNames(scope *types.Scope, exportedOnly bool) []string {
	var names []string
	for _, name := range scope.Names() {
		obj, ok := scope.Lookup(name).(*types.TypeName)
		if !ok || (exportedOnly && !obj.Exported()) {
			continue
		}

		names = append(names, name)
	}

	return names
}

func qualify(qualifier string, names []string) []string {
	out := make([]string, len(names))
	for i, name := range names {
		out[i] = qualifier + "." + name
	}

	return out
}

// splitQualified splits "github.com/x/y.Type" into "github.com/x/y" and "Type".
// The qualifier is empty for a bare identifier.
func splitQualified(expr string) (string, string) {
	slash := strings.LastIndex(expr, "/")

	dot := strings.LastIndex(expr, ".")
	if dot <= slash {
		return "", expr
	}

	return expr[:dot], expr[dot+1:]
}
