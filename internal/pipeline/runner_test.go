package pipeline_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wrapper-generator/internal/analyze"
	"wrapper-generator/internal/analyze/analyzetest"
	"wrapper-generator/internal/diagnostic"
	"wrapper-generator/internal/gen"
	"wrapper-generator/internal/pipeline"
)

const mixedSource = `package wrappers

import "time"

//wrapgen:wrap int64
type Cents struct {
	centsBacking
}

//wrapgen:wrap "Lat" float64 "Lon" float64
type Point struct {
	pointBacking
}

//wrapgen:wrap int
type Plain struct{}

//wrapgen:wrap Missing
type Ghost struct {
	ghostBacking
}

//wrapgen:wrap "A" int "A" int
type Twice struct {
	twiceBacking
}

//wrapgen:wrap "a b" int
type Bad struct {
	badBacking
}

func build() {
	//wrapgen:wrap int
	type Local struct {
		localBacking
	}
}

//wrapgen:wrap time.Time
type Stamp struct {
	stampBacking
}
`

func mixedPackage(t *testing.T) *analyze.Package {
	t.Helper()

	return analyzetest.Package(t, "example.com/wrappers",
		map[string]string{"wrappers.go": mixedSource},
		analyzetest.Importer{"time": analyzetest.TimePackage()})
}

func run(t *testing.T, concurrency int) *pipeline.Report {
	t.Helper()

	runner := pipeline.NewRunner(pipeline.Options{
		Concurrency: concurrency,
		Generator:   gen.DefaultGeneratorConfig(),
	}, nil)

	report, err := runner.Run(context.Background(), []*analyze.Package{mixedPackage(t)})
	require.NoError(t, err)

	return report
}

func TestRunIsolatesTargets(t *testing.T) {
	report := run(t, 4)
	require.Len(t, report.Results, 8)

	expected := []struct {
		name string
		code string
	}{
		{"Cents", ""},
		{"Point", ""},
		{"Plain", diagnostic.CodeNotExtensible},
		{"Ghost", diagnostic.CodeUnresolvedType},
		{"Twice", diagnostic.CodeDuplicateField},
		{"Bad", diagnostic.CodeMalformedDirective},
		{"Local", diagnostic.CodeNestedDeclaration},
		{"Stamp", ""},
	}

	for i, want := range expected {
		res := report.Results[i]
		assert.Equal(t, want.name, res.Target.Name(), "result %d", i)

		if want.code == "" {
			assert.False(t, res.Diagnostics.HasErrors(), "%s: %v", want.name, res.Diagnostics.Error())
			require.NotNil(t, res.File, want.name)
			assert.NotNil(t, res.Plan, want.name)

			continue
		}

		assert.True(t, res.Diagnostics.HasCode(want.code), "%s: %v", want.name, res.Diagnostics.Error())
		assert.Nil(t, res.File, want.name)

		for _, d := range res.Diagnostics.Errors {
			assert.Equal(t, res.Target.Position, d.Position)
			assert.Equal(t, "example.com/wrappers."+want.name, d.Target)
		}
	}

	assert.True(t, report.HasErrors())
	assert.Equal(t, 5, report.Failed())

	var files []string
	for _, f := range report.Artifacts() {
		files = append(files, f.Filename)
	}

	assert.Equal(t, []string{
		"cents_implementation.go",
		"point_implementation.go",
		"stamp_implementation.go",
	}, files)
	assert.Len(t, report.Plans(), 3)
	assert.Len(t, report.Diagnostics().Errors, 5)
}

func TestRunFieldDiagnostics(t *testing.T) {
	report := run(t, 1)

	byName := make(map[string]pipeline.Result)
	for _, res := range report.Results {
		byName[res.Target.Name()] = res
	}

	assert.Equal(t, "Value", byName["Ghost"].Diagnostics.Errors[0].Field)
	assert.Equal(t, "A", byName["Twice"].Diagnostics.Errors[0].Field)
	assert.Equal(t, "a b", byName["Bad"].Diagnostics.Errors[0].Field)
	require.Len(t, byName["Local"].Diagnostics.Errors, 1)
}

func TestRunIsDeterministic(t *testing.T) {
	serial := run(t, 1)
	parallel := run(t, 8)

	require.Len(t, parallel.Results, len(serial.Results))

	for i := range serial.Results {
		a, b := serial.Results[i], parallel.Results[i]
		assert.Equal(t, a.Target.Name(), b.Target.Name())
		assert.Equal(t, a.Diagnostics.All(), b.Diagnostics.All())

		if a.File != nil {
			require.NotNil(t, b.File)
			assert.Equal(t, string(a.File.Content), string(b.File.Content))
		}
	}
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	runner := pipeline.NewRunner(pipeline.Options{Concurrency: 2}, nil)

	report, err := runner.Run(ctx, []*analyze.Package{mixedPackage(t)})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, report)
}

func TestProcessCustomString(t *testing.T) {
	target := analyzetest.Target(t, `package wrappers

//wrapgen:wrap string
type Label struct {
	labelBacking
}

func (l Label) String() string { return "label" }
`)

	res := pipeline.NewRunner(pipeline.Options{}, nil).Process(target)

	require.NotNil(t, res.File)
	assert.True(t, res.Diagnostics.HasCode(diagnostic.CodeCustomString))
	assert.NotContains(t, string(res.File.Content), ") String() string")
}

func TestRunEmpty(t *testing.T) {
	report, err := pipeline.NewRunner(pipeline.Options{}, nil).Run(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, report.Results)
	assert.False(t, report.HasErrors())
	assert.Empty(t, report.Artifacts())
}

func TestProcessSuggestsCloseTypeNames(t *testing.T) {
	target := analyzetest.Target(t, `package wrappers

type Celsius float64

//wrapgen:wrap Celcius
type Temperature struct {
	temperatureBacking
}
`)

	res := pipeline.NewRunner(pipeline.Options{}, nil).Process(target)

	require.Len(t, res.Diagnostics.Errors, 1)
	d := res.Diagnostics.Errors[0]
	assert.Equal(t, diagnostic.CodeUnresolvedType, d.Code)
	assert.Equal(t, []string{"did you mean Celsius?"}, d.Suggestions)
	assert.Nil(t, res.File)
}
