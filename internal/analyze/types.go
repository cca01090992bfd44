package analyze

import (
	"go/ast"
	"go/token"
	"go/types"
	"path/filepath"

	"wrapper-generator/internal/common"
	"wrapper-generator/internal/directive"
)

// TypeID uniquely identifies a type by its package path and name.
type TypeID struct {
	PkgPath string // e.g., "wrapper-generator/examples/money"; empty for predeclared types
	Name    string // e.g., "Cents"
}

// String returns a human-readable representation of the TypeID.
func (t TypeID) String() string {
	if t.PkgPath == "" {
		return t.Name
	}

	return t.PkgPath + "." + t.Name
}

// Package is a loaded, parsed and (possibly partially) type-checked package.
type Package struct {
	Path  string
	Name  string
	Dir   string
	Fset  *token.FileSet
	Files []*ast.File
	Types *types.Package
	Info  *types.Info
	// TypeErrors are the type-checking errors that were tolerated.
	TypeErrors []error
}

// Filename returns the path of a file of the package.
func (p *Package) Filename(file *ast.File) string {
	return p.Fset.Position(file.Pos()).Filename
}

// Target describes one annotated declaration.
type Target struct {
	ID       TypeID
	Package  *Package
	File     *ast.File
	Position token.Position
	Decl     *ast.GenDecl
	Spec     *ast.TypeSpec

	// Directive holds the raw directive arguments.
	Directive directive.Directive
	// DirectiveErr is set when the doc comment carries a malformed directive.
	DirectiveErr error

	// Immutable is false when the declaration carries wrapgen:mutable.
	Immutable bool
	// Nested is true when the type is declared inside a function body.
	Nested bool
	// EnclosingFunc names the function containing a nested declaration.
	EnclosingFunc string

	// Members are the methods the author declared on the type, excluding
	// generated files.
	Members []Member
}

// Name returns the declared type name.
func (t *Target) Name() string {
	return t.ID.Name
}

// BackingName returns the name of the generator-owned type the target must
// embed, e.g. "centsBacking" for Cents.
func (t *Target) BackingName() string {
	return common.UnexportedName(t.ID.Name) + "Backing"
}

// Dir returns the directory of the file declaring the target.
func (t *Target) Dir() string {
	return filepath.Dir(t.Position.Filename)
}

// Member looks up an author-declared method by name.
func (t *Target) Member(name string) (Member, bool) {
	for _, m := range t.Members {
		if m.Name == name {
			return m, true
		}
	}

	return Member{}, false
}

// Member is a method declared by the author on a target type.
type Member struct {
	Name            string
	Params          int
	Results         []string
	PointerReceiver bool
	Position        token.Position
}

// IsStringer reports whether the member is a String() string method.
func (m Member) IsStringer() bool {
	return m.Name == "String" && m.Params == 0 && len(m.Results) == 1 && m.Results[0] == "string"
}

// TypeRef is a resolved backing type reference.
type TypeRef struct {
	// Expr is the reference as written in the directive.
	Expr string
	// ID is the fully-qualified identity of the type.
	ID TypeID
	// Type is the resolved go/types type.
	Type types.Type
}

// String returns the fully-qualified type name.
func (r TypeRef) String() string {
	return r.ID.String()
}
