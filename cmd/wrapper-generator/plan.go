package main

import (
	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"wrapper-generator/internal/plan"
)

func (a *app) newPlanCommand() *cobra.Command {
	var dump bool

	cmd := &cobra.Command{
		Use:   "plan [packages]",
		Short: "Print the generation plan of every target",
		RunE: func(cmd *cobra.Command, _ []string) error {
			report, _, err := a.run(cmd.Context())
			if err != nil {
				return err
			}

			printDiagnostics(cmd.ErrOrStderr(), report.Diagnostics())

			if dump {
				cfg := spew.ConfigState{Indent: "  ", DisablePointerAddresses: true, SortKeys: true}
				cfg.Fdump(cmd.OutOrStdout(), plan.Export(report.Plans()))

				return failure(report)
			}

			data, err := plan.ExportYAML(report.Plans())
			if err != nil {
				return err
			}

			if _, err := cmd.OutOrStdout().Write(data); err != nil {
				return err
			}

			return failure(report)
		},
	}

	cmd.Flags().BoolVar(&dump, "dump", false, "print a Go value dump instead of YAML")

	return cmd
}
