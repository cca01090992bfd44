package primitive

import (
	"bytes"
	"slices"
	"text/template"
)

// Arithmetic renders the expression applying op to operands a and b of the
// given kind, together with the imports the expression needs. It returns
// ok == false when the kind has no arithmetic.
func Arithmetic(kind KindEnum, op Operator, a, b string) (expr string, imports []string, ok bool) {
	tpl, ok := templates[OperatorPair{kind, op}]
	if !ok {
		return "", nil, false
	}

	tmpl, err := template.New("expr").Parse(tpl.expr)
	if err != nil {
		panic(err)
	}

	var buf bytes.Buffer
	err = tmpl.Execute(&buf, map[string]any{
		"a":      a,
		"b":      b,
		"symbol": op.Symbol(),
		"method": op.Method(),
	})
	if err != nil {
		panic(err)
	}

	return buf.String(), slices.Clone(tpl.imports), true
}

// Supported reports whether every arithmetic operator is available for kind.
func Supported(kind KindEnum) bool {
	for _, op := range Operators {
		if _, ok := templates[OperatorPair{kind, op}]; !ok {
			return false
		}
	}

	return true
}
