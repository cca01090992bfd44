package pipeline

import (
	"wrapper-generator/internal/analyze"
	"wrapper-generator/internal/diagnostic"
	"wrapper-generator/internal/gen"
	"wrapper-generator/internal/plan"
)

// Result is the outcome of one target.
type Result struct {
	Target *analyze.Target
	// Plan is nil when the target failed before planning completed.
	Plan *plan.Plan
	// File is nil when no artifact was produced.
	File        *gen.GeneratedFile
	Diagnostics diagnostic.Diagnostics

	index int
}

// Report holds the results of a run in discovery order.
type Report struct {
	Results []Result
}

// Artifacts returns the generated files.
func (r *Report) Artifacts() []gen.GeneratedFile {
	var files []gen.GeneratedFile
	for _, res := range r.Results {
		if res.File != nil {
			files = append(files, *res.File)
		}
	}

	return files
}

// Plans returns the successful plans.
func (r *Report) Plans() []*plan.Plan {
	var plans []*plan.Plan
	for _, res := range r.Results {
		if res.Plan != nil && res.File != nil {
			plans = append(plans, res.Plan)
		}
	}

	return plans
}

// Diagnostics merges the diagnostics of all targets in discovery order.
func (r *Report) Diagnostics() diagnostic.Diagnostics {
	var all diagnostic.Diagnostics
	for _, res := range r.Results {
		all.Merge(res.Diagnostics)
	}

	return all
}

// HasErrors reports whether any target failed.
func (r *Report) HasErrors() bool {
	for _, res := range r.Results {
		if res.Diagnostics.HasErrors() {
			return true
		}
	}

	return false
}

// Failed counts the targets with error diagnostics.
func (r *Report) Failed() int {
	n := 0
	for _, res := range r.Results {
		if res.Diagnostics.HasErrors() {
			n++
		}
	}

	return n
}
