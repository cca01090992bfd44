package directive

import (
	"strings"
)

// Directive prefixes.
const (
	Prefix        = "//wrapgen:"
	WrapPrefix    = Prefix + "wrap"
	MutablePrefix = Prefix + "mutable"
)

// DefaultFieldName is the name given to a field whose type reference is not
// preceded by a name literal.
const DefaultFieldName = "Value"

// MaxFields is the largest number of fields a wrapper may declare.
const MaxFields = 4

// TokenKind tags a directive argument.
type TokenKind int

const (
	TokenType TokenKind = iota // bare type reference
	TokenName                  // quoted field name literal
)

// Token is one directive argument.
type Token struct {
	Kind  TokenKind
	Text  string // unquoted for names, verbatim for types
	Index int    // position within the argument list
}

// FieldSpec is one named backing field with its unresolved type reference.
type FieldSpec struct {
	Name     string
	TypeExpr string
	// Explicit is false when the name was defaulted to DefaultFieldName.
	Explicit bool
}

// WrapperSpec is the parsed, ordered list of backing fields of one target.
type WrapperSpec struct {
	Fields []FieldSpec
}

// Names returns the field names in declaration order.
func (s *WrapperSpec) Names() []string {
	names := make([]string, len(s.Fields))
	for i, f := range s.Fields {
		names[i] = f.Name
	}

	return names
}

// String renders the spec back in directive argument form.
func (s *WrapperSpec) String() string {
	var parts []string
	for _, f := range s.Fields {
		if f.Explicit {
			parts = append(parts, `"`+f.Name+`"`)
		}

		parts = append(parts, f.TypeExpr)
	}

	return strings.Join(parts, " ")
}

// Directive is what was found in a declaration's doc comment.
type Directive struct {
	// Args is the raw text following wrapgen:wrap.
	Args string
	// Mutable is true when wrapgen:mutable is present.
	Mutable bool
}
