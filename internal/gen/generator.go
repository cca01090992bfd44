package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"

	"wrapper-generator/internal/plan"
	"wrapper-generator/primitive"
)

// GeneratorConfig holds configuration for code generation.
type GeneratorConfig struct {
	// Debug writes an .unformatted.go sidecar next to output that fails to format.
	Debug bool
}

// DefaultGeneratorConfig returns the default generator configuration.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{}
}

// Generator generates Go code from wrapper plans.
type Generator struct {
	config GeneratorConfig
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config GeneratorConfig) *Generator {
	return &Generator{config: config}
}

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	// Artifact is the artifact name, e.g. "Cents_Implementation".
	Artifact string
	// Target is the qualified name of the wrapper type.
	Target string
	// Dir is the package directory the file belongs to.
	Dir string
	// Filename is the name of the file (e.g., "cents_implementation.go").
	Filename string
	// Content is the formatted Go source code.
	Content []byte
}

// Path returns the location of the file inside its package directory.
func (f GeneratedFile) Path() string {
	return filepath.Join(f.Dir, f.Filename)
}

// Generate renders the artifact of one plan. When formatting fails the
// unformatted source is returned together with the error.
func (g *Generator) Generate(p *plan.Plan) (*GeneratedFile, error) {
	file := &GeneratedFile{
		Artifact: p.Artifact,
		Target:   p.Target.String(),
		Dir:      p.Dir,
		Filename: p.FileName,
	}

	var buf bytes.Buffer
	if err := wrapperTemplate.Execute(&buf, buildTemplateData(p)); err != nil {
		return nil, errors.Wrapf(err, "executing template for %s", p.Target)
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		if g.config.Debug {
			_ = writeDebugUnformatted(p.Dir, p.FileName, buf.Bytes())
		}

		file.Content = buf.Bytes()

		return file, errors.Wrapf(err, "formatting code for %s", p.Target)
	}

	file.Content = formatted

	return file, nil
}

// templateData holds all data needed for the wrapper template.
type templateData struct {
	Package string
	Imports []plan.Import

	Name      string
	TypeName  string
	Literal   string
	Receiver  string
	Backing   string
	Tuple     string
	HashSeed  string
	Single    bool
	Immutable bool
	Math      bool

	// DecimalFormat selects Format over decimal.Decimal, which has no fmt.Formatter.
	DecimalFormat bool
	CustomString  bool

	Constructor      string
	TupleConstructor string
	CopyConstructor  string
	Conversion       string

	Value  fieldData
	Fields []fieldData

	EqualExpr   string
	HashStmts   []string
	CompareBody string
	Relations   []methodData
	StringExpr  string
	Arithmetic  []methodData
}

type fieldData struct {
	Name        string
	Param       string
	SetterParam string
	Setter      string
	Type        string
	// Self is the access path through the receiver.
	Self string
}

// methodData is a one-expression method with its doc phrase.
type methodData struct {
	Method string
	Phrase string
	Expr   string
}

var arithmeticPhrases = map[string]string{
	"Add": "sum",
	"Sub": "difference",
	"Mul": "product",
	"Div": "quotient",
	"Mod": "remainder",
}

func buildTemplateData(p *plan.Plan) *templateData {
	caps := p.Capabilities
	recv := p.Receiver

	data := &templateData{
		Package:          p.Package,
		Imports:          p.Imports,
		Name:             p.Name(),
		TypeName:         p.TypeName(),
		Literal:          p.Name(),
		Receiver:         recv,
		Backing:          p.Backing,
		Tuple:            p.Tuple,
		HashSeed:         p.HashSeed,
		Single:           p.Mode == plan.ModeSingle,
		Immutable:        caps.IsImmutable,
		Math:             p.Mode == plan.ModeSingle && caps.IsMath,
		DecimalFormat:    p.Mode == plan.ModeSingle && caps.Kind == primitive.KindDecimal,
		CustomString:     caps.HasCustomToString,
		Constructor:      p.Constructor(),
		TupleConstructor: p.TupleConstructor(),
		CopyConstructor:  p.CopyConstructor(),
		Conversion:       p.Conversion(),
	}

	if !caps.IsImmutable {
		data.Literal = "&" + p.Name()
	}

	var (
		equal  []string
		values []string
	)

	for _, f := range p.Fields {
		self := p.Storage(recv, f)

		data.Fields = append(data.Fields, fieldData{
			Name:        f.Name,
			Param:       f.Param,
			SetterParam: f.SetterParam,
			Setter:      f.Setter,
			Type:        f.Type,
			Self:        self,
		})

		equal = append(equal, f.EqualExpr(self, p.Storage("other", f)))
		values = append(values, self)

		if f.Hashed() {
			data.HashStmts = append(data.HashStmts, f.HashStmt("&hash", self))
		}
	}

	if data.Single {
		data.Value = data.Fields[0]
		data.StringExpr = "fmt.Sprint(" + values[0] + ")"
	} else {
		data.StringExpr = fmt.Sprintf("fmt.Sprintf(%q, %s)",
			"("+strings.Repeat(", %v", len(values))[2:]+")", strings.Join(values, ", "))
	}

	data.EqualExpr = strings.Join(equal, " && ")
	data.CompareBody = compareBody(p)
	data.Relations = relations(p)

	for _, m := range p.Arithmetic {
		data.Arithmetic = append(data.Arithmetic, methodData{
			Method: m.Method,
			Phrase: arithmeticPhrases[m.Method],
			Expr:   m.Expr,
		})
	}

	return data
}

// compareBody renders the statements of Compare: a lexicographic comparison
// over the fields in declaration order.
func compareBody(p *plan.Plan) string {
	var sb strings.Builder

	last := len(p.Fields) - 1
	for i, f := range p.Fields {
		a, b := p.Storage(p.Receiver, f), p.Storage("other", f)

		if f.Ordering == plan.OrderingBool {
			fmt.Fprintf(&sb, "\tif %s != %s {\n", a, b)
			fmt.Fprintf(&sb, "\t\tif %s {\n\t\t\treturn 1\n\t\t}\n\n\t\treturn -1\n\t}\n\n", a)

			if i == last {
				sb.WriteString("\treturn 0\n")
			}

			continue
		}

		expr := f.CompareExpr(a, b)
		if i == last {
			fmt.Fprintf(&sb, "\treturn %s\n", expr)
			continue
		}

		fmt.Fprintf(&sb, "\tif order := %s; order != 0 {\n\t\treturn order\n\t}\n\n", expr)
	}

	return sb.String()
}

// relations renders the four relational methods. Math wrappers over native
// numbers compare the backing values directly; everything else goes through
// Compare.
func relations(p *plan.Plan) []methodData {
	ops := []struct {
		method, phrase, op string
	}{
		{"Less", "less than", "<"},
		{"LessOrEqual", "less than or equal to", "<="},
		{"Greater", "greater than", ">"},
		{"GreaterOrEqual", "greater than or equal to", ">="},
	}

	out := make([]methodData, 0, len(ops))
	for _, op := range ops {
		var expr string
		if p.NativeRelational {
			f := p.Field()
			expr = fmt.Sprintf("%s %s %s", p.Storage(p.Receiver, f), op.op, p.Storage("other", f))
		} else {
			expr = fmt.Sprintf("%s.Compare(other) %s 0", p.Receiver, op.op)
		}

		out = append(out, methodData{Method: op.method, Phrase: op.phrase, Expr: expr})
	}

	return out
}
