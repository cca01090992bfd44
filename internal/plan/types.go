package plan

import (
	"wrapper-generator/internal/analyze"
	"wrapper-generator/internal/common"
	"wrapper-generator/primitive"
)

// Plan is everything the code generator needs to emit one artifact.
type Plan struct {
	// Target is the annotated type.
	Target analyze.TypeID
	// Package is the name of the target's package.
	Package string
	// Dir is the directory the artifact is written to.
	Dir string
	// Artifact is the artifact name, e.g. "Cents_Implementation".
	Artifact string
	// FileName is the artifact file name, e.g. "cents_implementation.go".
	FileName string

	Mode         Mode
	Capabilities Capabilities
	Fields       []Field

	// Receiver is the receiver name used by every generated method.
	Receiver string
	// Backing is the generator-owned type embedded by the target.
	Backing string
	// Tuple is the exported composite type of a multi-field plan.
	Tuple string
	// HashSeed is the package-level maphash seed variable.
	HashSeed string

	// NativeRelational is set when relational methods compare the backing
	// values with Go's operators instead of going through Compare.
	NativeRelational bool
	// Arithmetic holds the arithmetic methods of a math plan.
	Arithmetic []ArithmeticMethod

	// Members are the generated member names in emission order.
	Members []string
	// Imports are the imports of the generated file, sorted by path.
	Imports []Import
}

// Name returns the target type name.
func (p *Plan) Name() string {
	return p.Target.Name
}

// Field returns the single backing field of a single-field plan.
func (p *Plan) Field() Field {
	field, _ := common.First(p.Fields)
	return field
}

// Mode selects the shape of the generated code.
type Mode int

const (
	// ModeSingle wraps one scalar backing value.
	ModeSingle Mode = iota
	// ModeMulti wraps 2-4 named fields stored as one tuple value.
	ModeMulti
)

// String returns a human-readable mode name.
func (m Mode) String() string {
	switch m {
	case ModeSingle:
		return "single"
	case ModeMulti:
		return "multi"
	default:
		return common.UnknownStr
	}
}

// MarshalText implements encoding.TextMarshaler.
func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// Capabilities are the flags controlling which optional member groups are emitted.
type Capabilities struct {
	// IsMath is set for single-field plans over a numeric allow-listed type.
	IsMath bool `yaml:"math"`
	// HasCustomToString is set when the author already declares String().
	HasCustomToString bool `yaml:"custom_string"`
	// IsImmutable selects value semantics; otherwise pointer semantics.
	IsImmutable bool `yaml:"immutable"`
	// Kind classifies the backing type of a single-field plan.
	Kind primitive.KindEnum `yaml:"-"`
}

// Field is one planned backing field.
type Field struct {
	// Name is the field name, e.g. "Value" or "X".
	Name string
	// Param is the keyword-safe constructor parameter name.
	Param string
	// SetterParam is the parameter name of the setter, distinct from the receiver.
	SetterParam string
	// Setter is the setter method name of a mutable plan.
	Setter string
	// Type is the type expression as written in the generated file.
	Type string
	// Ref is the resolved backing type.
	Ref analyze.TypeRef
	// Kind classifies the backing type.
	Kind primitive.KindEnum

	Equality EqualityStrategy
	Ordering OrderingStrategy
}

// EqualityStrategy describes how two field values are compared for equality.
type EqualityStrategy int

const (
	// EqualityOperator - the type is comparable, use ==.
	EqualityOperator EqualityStrategy = iota
	// EqualityMethod - the type declares Equal(T) bool.
	EqualityMethod
	// EqualityCmp - floating-point underlying type, use cmp.Compare so that
	// NaN equals NaN the same way Compare orders it.
	EqualityCmp
)

// String returns a human-readable strategy name.
func (s EqualityStrategy) String() string {
	switch s {
	case EqualityOperator:
		return "operator"
	case EqualityMethod:
		return "method"
	case EqualityCmp:
		return "cmp"
	default:
		return common.UnknownStr
	}
}

// OrderingStrategy describes how two field values are ordered.
type OrderingStrategy int

const (
	// OrderingCmp - ordered basic underlying type, use cmp.Compare.
	OrderingCmp OrderingStrategy = iota
	// OrderingMethod - the type declares Compare(T) int.
	OrderingMethod
	// OrderingBool - false orders before true.
	OrderingBool
)

// String returns a human-readable strategy name.
func (s OrderingStrategy) String() string {
	switch s {
	case OrderingCmp:
		return "cmp"
	case OrderingMethod:
		return "method"
	case OrderingBool:
		return "bool"
	default:
		return common.UnknownStr
	}
}

// ArithmeticMethod is one generated arithmetic method.
type ArithmeticMethod struct {
	// Method is the method name, e.g. "Add".
	Method string
	// Expr computes the backing result from the receiver and other.
	Expr string
}

// Import is an import of the generated file.
type Import struct {
	// Name is the explicit import name, empty when it matches the package name.
	Name string
	Path string
}
