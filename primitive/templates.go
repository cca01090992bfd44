package primitive

// Operator is an arithmetic operation generated for math wrappers.
type Operator int

const (
	OpAdd Operator = iota + 1
	OpSub
	OpMul
	OpDiv
	OpMod
)

// Operators lists the arithmetic operators in emission order.
var Operators = []Operator{OpAdd, OpSub, OpMul, OpDiv, OpMod}

var operatorInfo = map[Operator]struct {
	symbol string
	method string
}{
	OpAdd: {symbol: "+", method: "Add"},
	OpSub: {symbol: "-", method: "Sub"},
	OpMul: {symbol: "*", method: "Mul"},
	OpDiv: {symbol: "/", method: "Div"},
	OpMod: {symbol: "%", method: "Mod"},
}

// Symbol returns the Go operator, e.g. "+".
func (o Operator) Symbol() string {
	return operatorInfo[o].symbol
}

// Method returns the name of the generated method, e.g. "Add".
func (o Operator) Method() string {
	return operatorInfo[o].method
}

// OperatorPair identifies the template for an operator applied to a kind.
type OperatorPair struct {
	Kind KindEnum
	Op   Operator
}

type exprTemplate struct {
	expr    string
	imports []string
}

var (
	templates map[OperatorPair]exprTemplate
)

func init() {
	templates = map[OperatorPair]exprTemplate{}

	// integers: every operator is native
	for kind := KindEnum(0); int(kind) < KindTotal; kind++ {
		if !kind.IsInteger() {
			continue
		}

		for _, op := range Operators {
			templates[OperatorPair{kind, op}] = exprTemplate{expr: "{{.a}} {{.symbol}} {{.b}}"}
		}
	}

	// floats: % is not defined, go through math.Mod
	for kind := KindEnum(0); int(kind) < KindTotal; kind++ {
		if !kind.IsFloat() {
			continue
		}

		for _, op := range []Operator{OpAdd, OpSub, OpMul, OpDiv} {
			templates[OperatorPair{kind, op}] = exprTemplate{expr: "{{.a}} {{.symbol}} {{.b}}"}
		}
	}

	templates[OperatorPair{KindFloat32, OpMod}] = exprTemplate{
		expr:    "float32(math.Mod(float64({{.a}}), float64({{.b}})))",
		imports: []string{"math"},
	}
	templates[OperatorPair{KindFloat64, OpMod}] = exprTemplate{
		expr:    "math.Mod({{.a}}, {{.b}})",
		imports: []string{"math"},
	}

	// decimal: method calls
	for _, op := range Operators {
		templates[OperatorPair{KindDecimal, op}] = exprTemplate{expr: "{{.a}}.{{.method}}({{.b}})"}
	}
}
