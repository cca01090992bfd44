package plan

import (
	"fmt"
	"go/ast"
	"slices"
	"strconv"
	"strings"

	"wrapper-generator/internal/analyze"
	"wrapper-generator/internal/common"
	"wrapper-generator/internal/diagnostic"
	"wrapper-generator/internal/directive"
	"wrapper-generator/primitive"
)

const (
	// ArtifactSuffix is appended to the target name to form the artifact name.
	ArtifactSuffix = "_Implementation"
	// FileSuffix is appended to the snake-cased target name to form the file name.
	FileSuffix = "_implementation.go"
	// StorageField is the field of the backing type holding the wrapped value.
	StorageField = "wrapped"
)

// builder accumulates the plan and the diagnostics of one target.
type builder struct {
	target  *analyze.Target
	caps    Capabilities
	plan    *Plan
	imports *importSet
	diags   diagnostic.Diagnostics
}

// Build normalizes a parsed spec with its resolved field types into a plan.
// refs holds one resolved type per spec field, in order. The plan is nil when
// any error diagnostic was reported.
func Build(
	t *analyze.Target,
	spec *directive.WrapperSpec,
	refs []analyze.TypeRef,
	caps Capabilities,
) (*Plan, diagnostic.Diagnostics) {
	if len(spec.Fields) != len(refs) {
		panic(fmt.Sprintf("plan: %d fields but %d resolved types", len(spec.Fields), len(refs)))
	}

	name := t.Name()
	b := &builder{
		target:  t,
		caps:    caps,
		imports: newImportSet(t.ID.PkgPath),
		plan: &Plan{
			Target:       t.ID,
			Package:      packageName(t),
			Dir:          t.Dir(),
			Artifact:     name + ArtifactSuffix,
			FileName:     common.SnakeCase(name) + FileSuffix,
			Mode:         ModeSingle,
			Capabilities: caps,
			Receiver:     common.ReceiverName(name),
			Backing:      t.BackingName(),
			HashSeed:     common.UnexportedName(name) + "HashSeed",
		},
	}

	if common.IsMultiple(spec.Fields) {
		b.plan.Mode = ModeMulti
		b.plan.Tuple = name + "Tuple"
	}

	b.fields(spec, refs)
	b.arithmetic()
	b.members()
	b.conflicts()
	b.plan.Imports = b.collectImports()

	if caps.HasCustomToString {
		b.diags.AddInfo(diagnostic.CodeCustomString,
			fmt.Sprintf("%s declares String(); the generated implementation keeps it", name),
			t.ID.String(), "")
	}

	b.diags.At(t.Position)

	if b.diags.HasErrors() {
		return nil, b.diags
	}

	return b.plan, b.diags
}

func packageName(t *analyze.Target) string {
	if t.Package != nil && t.Package.Name != "" {
		return t.Package.Name
	}

	if t.File != nil {
		return t.File.Name.Name
	}

	return common.PkgAlias(t.ID.PkgPath)
}

func (b *builder) fields(spec *directive.WrapperSpec, refs []analyze.TypeRef) {
	p := b.plan
	reserved := map[string]bool{p.Name(): true, p.Backing: true, p.Tuple: true}
	params := make(map[string]bool, len(spec.Fields))

	for i, fs := range spec.Fields {
		ref := refs[i]

		field := Field{
			Name:   fs.Name,
			Setter: "Set" + common.ExportedName(fs.Name),
			Type:   b.imports.typeString(ref.Type),
			Ref:    ref,
			Kind:   primitive.FromType(ref.Type),
		}

		field.Param = common.SafeIdent(common.UnexportedName(fs.Name))
		if reserved[field.Param] {
			field.Param += "Value"
		}

		for n := 2; params[field.Param]; n++ {
			field.Param = common.SafeIdent(common.UnexportedName(fs.Name)) + strconv.Itoa(n)
		}

		params[field.Param] = true

		field.SetterParam = field.Param
		if field.SetterParam == p.Receiver {
			field.SetterParam += "Value"
		}

		equality, ok := equalityOf(ref.Type)
		if !ok {
			b.unsupported(field, "it is not comparable and has no Equal(%s) bool method")
		}

		ordering, ok := orderingOf(ref.Type)
		if !ok {
			b.unsupported(field, "it is not ordered and has no Compare(%s) int method")
		}

		field.Equality = equality
		field.Ordering = ordering
		p.Fields = append(p.Fields, field)
	}

	p.NativeRelational = p.Mode == ModeSingle && b.caps.IsMath && b.caps.Kind.IsNative()
}

func (b *builder) unsupported(field Field, reason string) {
	b.diags.Add(diagnostic.Diagnostic{
		Severity: diagnostic.DiagnosticError,
		Code:     diagnostic.CodeUnsupportedBacking,
		Message: fmt.Sprintf("backing type %s cannot be wrapped: "+reason,
			field.Ref.Expr, field.Type),
		Target: b.target.ID.String(),
		Field:  field.Name,
		Suggestions: []string{
			"use a basic type, a comparable named type with an order, or a type with Equal and Compare methods",
		},
	})
}

func (b *builder) arithmetic() {
	p := b.plan
	if p.Mode != ModeSingle || !b.caps.IsMath {
		return
	}

	// the operator set is emitted whole or not at all
	field := p.Field()
	if !primitive.Supported(field.Kind) {
		return
	}

	for _, op := range primitive.Operators {
		expr, imports, ok := primitive.Arithmetic(field.Kind, op,
			p.Storage(p.Receiver, field), p.Storage("other", field))
		if !ok {
			continue
		}

		for _, imp := range imports {
			b.imports.use(imp, imp)
		}

		p.Arithmetic = append(p.Arithmetic, ArithmeticMethod{Method: op.Method(), Expr: expr})
	}
}

// members lists the generated names in emission order.
func (b *builder) members() {
	p := b.plan

	p.Members = append(p.Members, p.Backing)
	if p.Mode == ModeMulti {
		p.Members = append(p.Members, p.Tuple)
	}

	p.Members = append(p.Members, p.HashSeed, p.Constructor())

	if p.Mode == ModeMulti {
		p.Members = append(p.Members, p.TupleConstructor())
	}

	p.Members = append(p.Members, p.CopyConstructor())

	if p.Mode == ModeSingle {
		p.Members = append(p.Members, p.Conversion(), "Underlying")
	} else {
		p.Members = append(p.Members, "Tuple")
	}

	for _, f := range p.Fields {
		p.Members = append(p.Members, f.Name)
	}

	if !b.caps.IsImmutable {
		for _, f := range p.Fields {
			p.Members = append(p.Members, f.Setter)
		}
	}

	p.Members = append(p.Members, "Equal")
	if b.caps.IsImmutable {
		p.Members = append(p.Members, "EqualPtr")
	}

	p.Members = append(p.Members, "Hash", "Compare", "Less", "LessOrEqual", "Greater", "GreaterOrEqual")

	if !b.caps.HasCustomToString {
		p.Members = append(p.Members, "String")
	}

	if p.Mode == ModeSingle && b.caps.IsMath {
		p.Members = append(p.Members, "Format")
		for _, m := range p.Arithmetic {
			p.Members = append(p.Members, m.Method)
		}
	}
}

// conflicts reports generated members colliding with each other, with the
// author's methods and fields, or with other package-level declarations.
func (b *builder) conflicts() {
	p := b.plan
	target := b.target.ID.String()

	packageLevel := p.PackageLevel()
	methods := slices.DeleteFunc(slices.Clone(p.Members), func(m string) bool {
		return slices.Contains(packageLevel, m)
	})

	for _, dup := range common.Duplicates(methods) {
		b.diags.Add(diagnostic.Diagnostic{
			Severity:    diagnostic.DiagnosticError,
			Code:        diagnostic.CodeMemberConflict,
			Message:     fmt.Sprintf("generated member %s of %s is produced twice", dup, p.Name()),
			Target:      target,
			Field:       dup,
			Suggestions: []string{"rename the field so it does not clash with a generated method"},
		})
	}

	for _, m := range b.target.Members {
		if !slices.Contains(methods, m.Name) {
			continue
		}

		b.diags.Add(diagnostic.Diagnostic{
			Severity:    diagnostic.DiagnosticError,
			Code:        diagnostic.CodeMemberConflict,
			Message:     fmt.Sprintf("method %s.%s clashes with a generated method", p.Name(), m.Name),
			Target:      target,
			Position:    m.Position,
			Suggestions: []string{fmt.Sprintf("rename or remove %s.%s", p.Name(), m.Name)},
		})
	}

	for _, field := range structFields(b.target) {
		if !slices.Contains(methods, field) {
			continue
		}

		b.diags.Add(diagnostic.Diagnostic{
			Severity:    diagnostic.DiagnosticError,
			Code:        diagnostic.CodeMemberConflict,
			Message:     fmt.Sprintf("field %s.%s clashes with a generated method", p.Name(), field),
			Target:      target,
			Suggestions: []string{fmt.Sprintf("rename the field %s", field)},
		})
	}

	for _, decl := range authorDeclared(b.target, packageLevel) {
		b.diags.Add(diagnostic.Diagnostic{
			Severity:    diagnostic.DiagnosticError,
			Code:        diagnostic.CodeMemberConflict,
			Message:     fmt.Sprintf("%s is already declared in package %s", decl, p.Package),
			Target:      target,
			Suggestions: []string{fmt.Sprintf("rename or remove %s", decl)},
		})
	}
}

// structFields returns the named fields of the target's struct declaration.
func structFields(t *analyze.Target) []string {
	st, ok := t.Spec.Type.(*ast.StructType)
	if !ok {
		return nil
	}

	var names []string
	for _, f := range st.Fields.List {
		for _, n := range f.Names {
			names = append(names, n.Name)
		}
	}

	return names
}

// authorDeclared returns the names already declared at package level outside
// generated files.
func authorDeclared(t *analyze.Target, names []string) []string {
	pkg := t.Package
	if pkg == nil || pkg.Types == nil {
		return nil
	}

	generated := make(map[string]bool)
	for _, f := range pkg.Files {
		if ast.IsGenerated(f) {
			generated[pkg.Filename(f)] = true
		}
	}

	var out []string
	for _, name := range names {
		obj := pkg.Types.Scope().Lookup(name)
		if obj == nil {
			continue
		}

		if generated[pkg.Fset.Position(obj.Pos()).Filename] {
			continue
		}

		out = append(out, name)
	}

	return out
}

func (b *builder) collectImports() []Import {
	p := b.plan

	b.imports.use(importMaphash, "maphash")

	for _, f := range p.Fields {
		if f.Ordering == OrderingCmp {
			b.imports.use(importCmp, importCmp)
			break
		}
	}

	if !b.caps.HasCustomToString || (p.Mode == ModeSingle && b.caps.IsMath) {
		b.imports.use(importFmt, importFmt)
	}

	return b.imports.list()
}

// PackageLevel returns the generated names declared at package scope.
func (p *Plan) PackageLevel() []string {
	names := []string{p.Backing, p.HashSeed, p.Constructor(), p.CopyConstructor()}

	if p.Mode == ModeSingle {
		return append(names, p.Conversion())
	}

	return append(names, p.Tuple, p.TupleConstructor())
}

// Constructor returns the name of the field-wise constructor, e.g. "NewCents".
func (p *Plan) Constructor() string {
	return "New" + common.ExportedName(p.Name())
}

// TupleConstructor returns the name of the tuple constructor of a multi-field plan.
func (p *Plan) TupleConstructor() string {
	return p.Constructor() + "FromTuple"
}

// CopyConstructor returns the name of the copy constructor, e.g. "CopyCents".
func (p *Plan) CopyConstructor() string {
	return "Copy" + common.ExportedName(p.Name())
}

// Conversion returns the name of the bare-to-wrapper conversion, e.g. "CentsOf".
func (p *Plan) Conversion() string {
	return p.Name() + "Of"
}

// Storage renders the access path of a field's value through owner.
func (p *Plan) Storage(owner string, f Field) string {
	path := owner + "." + p.Backing + "." + StorageField
	if p.Mode == ModeMulti {
		path += "." + f.Name
	}

	return path
}

// TypeName renders the target type as used in signatures: a pointer for
// mutable targets.
func (p *Plan) TypeName() string {
	if p.Capabilities.IsImmutable {
		return p.Name()
	}

	return "*" + p.Name()
}

// Summary is a one-line description used in logs.
func (p *Plan) Summary() string {
	fields := make([]string, len(p.Fields))
	for i, f := range p.Fields {
		fields[i] = f.Name + " " + f.Type
	}

	return fmt.Sprintf("%s %s(%s)", p.Mode, p.Name(), strings.Join(fields, ", "))
}
