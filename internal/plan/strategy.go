package plan

import (
	"go/types"
	"strings"
)

// equalityOf selects how values of t are compared for equality.
func equalityOf(t types.Type) (EqualityStrategy, bool) {
	if hasMethod(t, "Equal", types.Typ[types.Bool]) {
		return EqualityMethod, true
	}

	if basic, ok := t.Underlying().(*types.Basic); ok && basic.Info()&types.IsFloat != 0 {
		return EqualityCmp, true
	}

	if types.Comparable(t) {
		return EqualityOperator, true
	}

	return 0, false
}

// orderingOf selects how values of t are ordered.
func orderingOf(t types.Type) (OrderingStrategy, bool) {
	if hasMethod(t, "Compare", types.Typ[types.Int]) {
		return OrderingMethod, true
	}

	basic, ok := t.Underlying().(*types.Basic)
	if !ok {
		return 0, false
	}

	switch info := basic.Info(); {
	case info&types.IsBoolean != 0:
		return OrderingBool, true
	case info&types.IsOrdered != 0:
		return OrderingCmp, true
	default:
		return 0, false
	}
}

// hasMethod reports whether the value method set of t has name(t) result.
func hasMethod(t types.Type, name string, result types.Type) bool {
	sel := types.NewMethodSet(t).Lookup(nil, name)
	if sel == nil {
		return false
	}

	sig, ok := sel.Type().(*types.Signature)
	if !ok || sig.Params().Len() != 1 || sig.Results().Len() != 1 || sig.Variadic() {
		return false
	}

	return types.Identical(sig.Params().At(0).Type(), t) &&
		types.Identical(sig.Results().At(0).Type(), result)
}

// EqualExpr renders the equality test of a and b.
func (f Field) EqualExpr(a, b string) string {
	switch f.Equality {
	case EqualityMethod:
		return a + ".Equal(" + b + ")"
	case EqualityCmp:
		return "cmp.Compare(" + a + ", " + b + ") == 0"
	default:
		return a + " == " + b
	}
}

// CompareExpr renders the three-way comparison of a and b. Boolean fields
// have no expression form and return "".
func (f Field) CompareExpr(a, b string) string {
	switch f.Ordering {
	case OrderingMethod:
		return a + ".Compare(" + b + ")"
	case OrderingCmp:
		return "cmp.Compare(" + a + ", " + b + ")"
	default:
		return ""
	}
}

// Hashed reports whether the field takes part in Hash. Fields compared with
// an Equal method may be equal with different representations, so they are
// left out to keep Hash consistent with Equal.
func (f Field) Hashed() bool {
	return f.Equality == EqualityOperator || f.Equality == EqualityCmp
}

// HashStmt renders the statement feeding expr into hash. NaN is not equal to
// itself under ==, so floating-point fields hash NaN as a fixed byte.
func (f Field) HashStmt(hash, expr string) string {
	if f.Equality == EqualityCmp {
		return "\tif value := " + expr + "; value == value {\n" +
			"\t\tmaphash.WriteComparable(" + hash + ", value)\n" +
			"\t} else {\n" +
			"\t\t" + strings.TrimPrefix(hash, "&") + ".WriteByte(0)\n" +
			"\t}\n"
	}

	return "\tmaphash.WriteComparable(" + hash + ", " + expr + ")\n"
}
