package primitive_test

import (
	"fmt"
	"go/token"
	"go/types"

	"wrapper-generator/primitive"
)

func named(pkgPath, name string, underlying types.Type) *types.Named {
	pkg := types.NewPackage(pkgPath, pkgPath)
	return types.NewNamed(types.NewTypeName(token.NoPos, pkg, name, nil), underlying, nil)
}

func Example() {
	fmt.Println(primitive.FromType(types.Typ[types.Int]))
	fmt.Println(primitive.FromType(types.Typ[types.Byte]))
	fmt.Println(primitive.FromType(types.Typ[types.String]))
	fmt.Println(primitive.FromType(named("example.com/enum", "IntEnum", types.Typ[types.Int])))
	fmt.Println(primitive.FromType(named("example.com/enum", "StringEnum", types.Typ[types.String])))
	fmt.Println(primitive.FromType(named("time", "Duration", types.Typ[types.Int64])))
	fmt.Println(primitive.FromType(named("time", "Time", types.NewStruct(nil, nil))))
	fmt.Println(primitive.FromType(named("github.com/shopspring/decimal", "Decimal", types.NewStruct(nil, nil))))
	fmt.Println(primitive.FromType(named("example.com/enum", "Empty", types.NewStruct(nil, nil))))
	fmt.Println(primitive.FromType(types.NewSlice(types.Typ[types.Int])))
	// Output:
	// KindInt
	// KindUint8
	// KindString
	// KindPrimitiveEnum
	// KindPrimitiveEnum
	// KindDuration
	// KindTime
	// KindDecimal
	// KindEnum(0)
	// KindEnum(0)
}
