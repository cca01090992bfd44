package main

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"wrapper-generator/internal/gen"
)

func (a *app) newCheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check [packages]",
		Short: "Verify that implementation files are up to date",
		Long: `Generate in memory and compare with the files on disk. Differences are printed
as unified diffs and the command exits non-zero.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			report, _, err := a.run(cmd.Context())
			if err != nil {
				return err
			}

			printDiagnostics(cmd.ErrOrStderr(), report.Diagnostics())

			stale := 0

			for _, file := range report.Artifacts() {
				diff, err := gen.Diff(file, a.cfg.Output)
				if err != nil {
					return err
				}

				if diff == "" {
					continue
				}

				stale++

				_, _ = fmt.Fprint(cmd.OutOrStdout(), diff)
			}

			if err := failure(report); err != nil {
				return err
			}

			if stale > 0 {
				return errors.Wrapf(errStale, "%d file(s)", stale)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%d file(s) up to date\n", len(report.Artifacts()))

			return nil
		},
	}
}
