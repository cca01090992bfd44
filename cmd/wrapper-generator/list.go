package main

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"wrapper-generator/internal/common"
	"wrapper-generator/internal/pipeline"
	"wrapper-generator/internal/plan"
)

func (a *app) newListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list [packages]",
		Short: "List annotated types and their status",
		RunE: func(cmd *cobra.Command, _ []string) error {
			report, _, err := a.run(cmd.Context())
			if err != nil {
				return err
			}

			if common.IsEmpty(report.Results) {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "(no annotated types)")
				return nil
			}

			t := table.NewWriter()
			t.SetOutputMirror(cmd.OutOrStdout())
			t.SetStyle(table.StyleLight)
			t.AppendHeader(table.Row{"Target", "Fields", "Mode", "Kind", "Status"})

			for _, res := range report.Results {
				t.AppendRow(listRow(res))
			}

			t.Render()

			return nil
		},
	}
}

func listRow(res pipeline.Result) table.Row {
	name := res.Target.ID.String()

	if res.Plan == nil || res.File == nil {
		codes := make([]string, 0, len(res.Diagnostics.Errors))
		for _, d := range res.Diagnostics.Errors {
			codes = append(codes, d.Code)
		}

		return table.Row{name, res.Target.Directive.Args, "", "", strings.Join(codes, ", ")}
	}

	p := res.Plan

	fields := make([]string, len(p.Fields))
	for i, f := range p.Fields {
		fields[i] = f.Name + " " + f.Type
	}

	kind := ""
	if k := p.Field().Kind; p.Mode == plan.ModeSingle && k != 0 {
		kind = strings.TrimPrefix(k.String(), "Kind")
	}

	status := "ok"
	if p.Capabilities.IsMath {
		status = "ok (math)"
	}

	return table.Row{name, strings.Join(fields, ", "), p.Mode.String(), kind, status}
}
