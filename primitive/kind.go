package primitive

import (
	"go/types"
)

//go:generate go tool stringer -type=KindEnum -output=kind_string.go

type KindEnum int

const (
	_ KindEnum = iota // skip zero value, use it as a default (invalid) value for KindEnum

	KindInt
	KindInt8
	KindInt16
	KindInt32
	KindInt64
	KindUint
	KindUint8
	KindUint16
	KindUint32
	KindUint64
	KindFloat32
	KindFloat64
	KindDecimal
	KindBool
	KindString
	KindTime
	KindDuration
	KindPrimitiveEnum // named type over any integer number, boolean or string

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

const (
	timePkgPath    = "time"
	DecimalPkgPath = "github.com/shopspring/decimal"
)

func (k KindEnum) IsNumber() bool {
	switch k {
	default:
		return false
	case KindInt, KindInt8, KindInt16, KindInt32, KindInt64,
		KindUint, KindUint8, KindUint16, KindUint32, KindUint64,
		KindFloat32, KindFloat64:
		return true
	}
}

func (k KindEnum) IsInteger() bool {
	switch k {
	default:
		return false
	case KindInt, KindInt8, KindInt16, KindInt32, KindInt64,
		KindUint, KindUint8, KindUint16, KindUint32, KindUint64:
		return true
	}
}

func (k KindEnum) IsFloat() bool {
	switch k {
	default:
		return false
	case KindFloat32, KindFloat64:
		return true
	}
}

// IsMath reports whether wrappers over the kind get arithmetic methods:
// every fixed and platform sized integer, both floats and decimal.
func (k KindEnum) IsMath() bool {
	return k.IsNumber() || k == KindDecimal
}

// IsNative reports whether values of the kind work with Go's arithmetic and
// relational operators.
func (k KindEnum) IsNative() bool {
	return k.IsNumber()
}

var basicKinds = map[types.BasicKind]KindEnum{
	types.Int:     KindInt,
	types.Int8:    KindInt8,
	types.Int16:   KindInt16,
	types.Int32:   KindInt32,
	types.Int64:   KindInt64,
	types.Uint:    KindUint,
	types.Uint8:   KindUint8,
	types.Uint16:  KindUint16,
	types.Uint32:  KindUint32,
	types.Uint64:  KindUint64,
	types.Float32: KindFloat32,
	types.Float64: KindFloat64,
	types.Bool:    KindBool,
	types.String:  KindString,
}

// FromType classifies a resolved type. Only predeclared types map to the
// number, bool and string kinds; a named type over one of them is a
// KindPrimitiveEnum.
func FromType(t types.Type) KindEnum {
	if t == nil {
		return 0
	}

	t = types.Unalias(t)

	// check if true primitive type
	if basic, ok := t.(*types.Basic); ok {
		return basicKinds[basic.Kind()]
	}

	named, ok := t.(*types.Named)
	if !ok {
		return 0
	}

	if pkg := named.Obj().Pkg(); pkg != nil {
		switch pkg.Path() + "." + named.Obj().Name() {
		case timePkgPath + ".Time":
			return KindTime
		case timePkgPath + ".Duration":
			return KindDuration
		case DecimalPkgPath + ".Decimal":
			return KindDecimal
		}
	}

	// check if it's a primitive enum type
	basic, ok := named.Underlying().(*types.Basic)
	if !ok {
		return 0
	}

	switch kind := basicKinds[basic.Kind()]; {
	default:
		return 0
	case kind.IsInteger(), kind == KindBool, kind == KindString:
		return KindPrimitiveEnum
	}
}
