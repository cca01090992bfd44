// Package pipeline runs every annotated declaration through parsing,
// validation, planning and generation. Targets are independent: each one
// yields either an artifact or diagnostics, and a failing target never stops
// the others.
package pipeline

import (
	"context"
	"fmt"
	"runtime"
	"sort"
	"strings"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"wrapper-generator/internal/analyze"
	"wrapper-generator/internal/diagnostic"
	"wrapper-generator/internal/directive"
	"wrapper-generator/internal/gen"
	"wrapper-generator/internal/logger"
	"wrapper-generator/internal/match"
	"wrapper-generator/internal/plan"
	"wrapper-generator/internal/validate"
)

// Options configures a Runner.
type Options struct {
	// Concurrency is the number of targets processed at once; 0 means GOMAXPROCS.
	Concurrency int
	// Generator configures code generation.
	Generator gen.GeneratorConfig
}

// Runner processes the targets of loaded packages.
type Runner struct {
	opts      Options
	lookup    analyze.LookupFunc
	generator *gen.Generator
	log       *zap.SugaredLogger
}

// NewRunner creates a Runner. lookup resolves packages referenced by full
// import path in directives and may be nil.
func NewRunner(opts Options, lookup analyze.LookupFunc) *Runner {
	if opts.Concurrency <= 0 {
		opts.Concurrency = runtime.GOMAXPROCS(0)
	}

	return &Runner{
		opts:      opts,
		lookup:    lookup,
		generator: gen.NewGenerator(opts.Generator),
		log:       logger.ComponentLogger("pipeline"),
	}
}

// Run discovers the targets of pkgs and processes them concurrently. The only
// error is cancellation of ctx; per-target problems are in the report.
func (r *Runner) Run(ctx context.Context, pkgs []*analyze.Package) (*Report, error) {
	var targets []*analyze.Target
	for _, pkg := range pkgs {
		targets = append(targets, analyze.Discover(pkg)...)
	}

	r.log.Debugw("processing targets", logger.FieldCount, len(targets), logger.FieldWorkers, r.opts.Concurrency)

	sink := diagnostic.NewSink[Result]()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.opts.Concurrency)

	for i, target := range targets {
		if gctx.Err() != nil {
			break
		}

		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			res := r.Process(target)
			res.index = i
			sink.Append(res)

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, errors.Wrap(err, "run aborted")
	}

	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(err, "run aborted")
	}

	results := sink.Items()
	sort.Slice(results, func(i, j int) bool {
		return results[i].index < results[j].index
	})

	return &Report{Results: results}, nil
}

// Process runs one target through every stage. It stops after the first stage
// that reports an error.
func (r *Runner) Process(t *analyze.Target) Result {
	res := Result{Target: t}
	r.process(t, &res)
	res.Diagnostics.At(t.Position)

	return res
}

func (r *Runner) process(t *analyze.Target, res *Result) {
	log := r.log.With(logger.FieldTarget, t.ID.String())

	spec := r.parse(t, &res.Diagnostics)
	res.Diagnostics.Merge(validate.Structure(t))

	if res.Diagnostics.HasErrors() {
		log.Debugw("target rejected", logger.FieldCode, firstCode(res.Diagnostics))
		return
	}

	refs := r.resolve(t, spec, &res.Diagnostics)
	if res.Diagnostics.HasErrors() {
		log.Debugw("unresolved backing types", logger.FieldCode, firstCode(res.Diagnostics))
		return
	}

	caps := plan.DetectCapabilities(t, refs)

	p, diags := plan.Build(t, spec, refs, caps)
	res.Diagnostics.Merge(diags)

	if p == nil {
		log.Debugw("planning failed", logger.FieldCode, firstCode(res.Diagnostics))
		return
	}

	res.Plan = p

	file, err := r.generator.Generate(p)
	if err != nil {
		res.Diagnostics.AddError(diagnostic.CodeGenerationFailed,
			fmt.Sprintf("generating %s: %v", p.Artifact, err), t.ID.String(), "")

		return
	}

	res.File = file
	log.Debugw("generated", logger.FieldFile, file.Filename, "plan", p.Summary())
}

func (r *Runner) parse(t *analyze.Target, diags *diagnostic.Diagnostics) *directive.WrapperSpec {
	target := t.ID.String()

	if t.DirectiveErr != nil {
		diags.AddError(diagnostic.CodeMalformedDirective, t.DirectiveErr.Error(), target, "")
		return nil
	}

	spec, err := directive.Parse(t.Directive.Args)
	if err == nil {
		return spec
	}

	var field string

	var fieldErr *directive.FieldError
	if errors.As(err, &fieldErr) {
		field = fieldErr.Field
	}

	code := diagnostic.CodeMalformedDirective
	if errors.Is(err, directive.ErrDuplicateField) {
		code = diagnostic.CodeDuplicateField
	}

	diags.AddError(code, err.Error(), target, field)

	return nil
}

func (r *Runner) resolve(t *analyze.Target, spec *directive.WrapperSpec, diags *diagnostic.Diagnostics) []analyze.TypeRef {
	resolver := analyze.NewResolver(t.Package, t.File, r.lookup)

	refs := make([]analyze.TypeRef, 0, len(spec.Fields))
	for _, f := range spec.Fields {
		ref, err := resolver.Resolve(f.TypeExpr)
		if err != nil {
			suggestion := "use a predeclared type, a type of this package, or import/path.Type"
			if closest := match.Closest(f.TypeExpr, resolver.Candidates(f.TypeExpr), 3); len(closest) > 0 {
				suggestion = "did you mean " + strings.Join(closest, ", ") + "?"
			}

			diags.Add(diagnostic.Diagnostic{
				Severity:    diagnostic.DiagnosticError,
				Code:        diagnostic.CodeUnresolvedType,
				Message:     err.Error(),
				Target:      t.ID.String(),
				Field:       f.Name,
				Suggestions: []string{suggestion},
			})

			continue
		}

		refs = append(refs, ref)
	}

	return refs
}

func firstCode(diags diagnostic.Diagnostics) string {
	if len(diags.Errors) == 0 {
		return ""
	}

	return diags.Errors[0].Code
}
