package gen

import (
	"text/template"
)

// Header is the first line of every generated file.
const Header = "// Code generated by wrapper-generator. DO NOT EDIT."

var funcs = template.FuncMap{
	"header": func() string { return Header },
}

var wrapperTemplate = template.Must(template.New("wrapper").Funcs(funcs).Parse(`{{header}}

package {{.Package}}

import (
{{range .Imports}}	{{if .Name}}{{.Name}} {{end}}"{{.Path}}"
{{end}})
{{if .Single}}
// {{.Backing}} holds the wrapped value of {{.Name}}.
type {{.Backing}} struct {
	wrapped {{.Value.Type}}
}
{{else}}
// {{.Tuple}} holds the fields of {{.Name}} in declaration order.
type {{.Tuple}} struct {
{{range .Fields}}	{{.Name}} {{.Type}}
{{end}}}

// {{.Backing}} holds the wrapped tuple of {{.Name}}.
type {{.Backing}} struct {
	wrapped {{.Tuple}}
}
{{end}}
var {{.HashSeed}} = maphash.MakeSeed()
{{if .Single}}
// {{.Constructor}} wraps {{.Value.Param}}.
func {{.Constructor}}({{.Value.Param}} {{.Value.Type}}) {{.TypeName}} {
	return {{.Literal}}{{"{"}}{{.Backing}}: {{.Backing}}{wrapped: {{.Value.Param}}}}
}

// {{.CopyConstructor}} returns a {{.Name}} holding the value of other.
func {{.CopyConstructor}}(other {{.TypeName}}) {{.TypeName}} {
	return {{.Constructor}}(other.{{.Backing}}.wrapped)
}

// {{.Conversion}} converts a bare {{.Value.Type}} to {{.Name}}.
func {{.Conversion}}({{.Value.Param}} {{.Value.Type}}) {{.TypeName}} {
	return {{.Constructor}}({{.Value.Param}})
}

// Underlying converts {{.Receiver}} back to a bare {{.Value.Type}}.
func ({{.Receiver}} {{.TypeName}}) Underlying() {{.Value.Type}} {
	return {{.Value.Self}}
}
{{else}}
// {{.Constructor}} builds a {{.Name}} from its fields.
func {{.Constructor}}({{range $i, $f := .Fields}}{{if $i}}, {{end}}{{$f.Param}} {{$f.Type}}{{end}}) {{.TypeName}} {
	return {{.TupleConstructor}}({{.Tuple}}{{"{"}}{{range $i, $f := .Fields}}{{if $i}}, {{end}}{{$f.Name}}: {{$f.Param}}{{end}}})
}

// {{.TupleConstructor}} builds a {{.Name}} from a tuple.
func {{.TupleConstructor}}(tuple {{.Tuple}}) {{.TypeName}} {
	return {{.Literal}}{{"{"}}{{.Backing}}: {{.Backing}}{wrapped: tuple}}
}

// {{.CopyConstructor}} returns a {{.Name}} holding the fields of other.
func {{.CopyConstructor}}(other {{.TypeName}}) {{.TypeName}} {
	return {{.TupleConstructor}}(other.{{.Backing}}.wrapped)
}

// Tuple returns the fields of {{.Receiver}} as a tuple.
func ({{.Receiver}} {{.TypeName}}) Tuple() {{.Tuple}} {
	return {{.Receiver}}.{{.Backing}}.wrapped
}
{{end}}{{range .Fields}}
// {{.Name}} returns the {{.Name}} field.
func ({{$.Receiver}} {{$.TypeName}}) {{.Name}}() {{.Type}} {
	return {{.Self}}
}
{{end}}{{if not .Immutable}}{{range .Fields}}
// {{.Setter}} replaces the {{.Name}} field.
func ({{$.Receiver}} {{$.TypeName}}) {{.Setter}}({{.SetterParam}} {{.Type}}) {
	{{.Self}} = {{.SetterParam}}
}
{{end}}{{end}}
// Equal reports whether {{.Receiver}} and other hold equal values.
func ({{.Receiver}} {{.TypeName}}) Equal(other {{.TypeName}}) bool {
{{- if not .Immutable}}
	if {{.Receiver}} == nil || other == nil {
		return {{.Receiver}} == other
	}
{{end}}
	return {{.EqualExpr}}
}
{{if .Immutable}}
// EqualPtr reports whether other is not nil and equal to {{.Receiver}}.
func ({{.Receiver}} {{.TypeName}}) EqualPtr(other *{{.Name}}) bool {
	return other != nil && {{.Receiver}}.Equal(*other)
}
{{end}}
// Hash returns a hash of {{.Receiver}} consistent with Equal.
func ({{.Receiver}} {{.TypeName}}) Hash() uint64 {
	var hash maphash.Hash
	hash.SetSeed({{.HashSeed}})
{{range .HashStmts}}{{.}}{{end}}
	return hash.Sum64()
}

// Compare returns -1, 0 or +1 when {{.Receiver}} is less than, equal to or greater than other.
func ({{.Receiver}} {{.TypeName}}) Compare(other {{.TypeName}}) int {
{{.CompareBody}}}
{{range .Relations}}
// {{.Method}} reports whether {{$.Receiver}} is {{.Phrase}} other.
func ({{$.Receiver}} {{$.TypeName}}) {{.Method}}(other {{$.TypeName}}) bool {
	return {{.Expr}}
}
{{end}}{{if not .CustomString}}
// String formats the wrapped {{if .Single}}value{{else}}fields{{end}}.
func ({{.Receiver}} {{.TypeName}}) String() string {
	return {{.StringExpr}}
}
{{end}}{{if .Math}}
// Format implements fmt.Formatter: the v, s and q verbs print String, other
// verbs format the wrapped value{{if .DecimalFormat}} with the requested precision{{end}}.
func ({{.Receiver}} {{.TypeName}}) Format(state fmt.State, verb rune) {
	switch verb {
	case 'v', 's', 'q':
		fmt.Fprintf(state, fmt.FormatString(state, verb), {{.Receiver}}.String())
	default:
{{- if .DecimalFormat}}
		precision, ok := state.Precision()
		if !ok {
			fmt.Fprint(state, {{.Value.Self}}.String())
			return
		}

		fmt.Fprint(state, {{.Value.Self}}.StringFixed(int32(precision)))
{{- else}}
		fmt.Fprintf(state, fmt.FormatString(state, verb), {{.Value.Self}})
{{- end}}
	}
}
{{range .Arithmetic}}
// {{.Method}} returns the {{.Phrase}} of {{$.Receiver}} and other.
func ({{$.Receiver}} {{$.TypeName}}) {{.Method}}(other {{$.TypeName}}) {{$.TypeName}} {
	return {{$.Constructor}}({{.Expr}})
}
{{end}}{{end}}`))
