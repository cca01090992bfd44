package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"wrapper-generator/internal/gen"
	"wrapper-generator/internal/logger"
)

func (a *app) newGenCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "gen [packages]",
		Short: "Generate implementation files",
		Long: `Generate the implementation file of every annotated type in the packages.
Targets with errors are reported and skipped; the others are still written.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			report, _, err := a.run(cmd.Context())
			if err != nil {
				return err
			}

			printDiagnostics(cmd.ErrOrStderr(), report.Diagnostics())

			written, err := gen.WriteFiles(report.Artifacts(), a.cfg.Output)
			if err != nil {
				return err
			}

			for _, path := range written {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
			}

			logger.Logger.Infow("generation finished",
				logger.FieldCount, len(report.Artifacts()),
				"written", len(written),
				"failed", report.Failed())

			return failure(report)
		},
	}
}
