package main

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"wrapper-generator/internal/gen"
	"wrapper-generator/internal/logger"
	"wrapper-generator/internal/watch"
)

func (a *app) newWatchCommand() *cobra.Command {
	var debounce time.Duration

	cmd := &cobra.Command{
		Use:   "watch [packages]",
		Short: "Regenerate whenever the packages change",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			log := logger.ComponentLogger("watch")

			var dirs []string

			rebuild := func(ctx context.Context) error {
				report, pkgs, err := a.run(ctx)
				if err != nil {
					return err
				}

				printDiagnostics(cmd.ErrOrStderr(), report.Diagnostics())

				written, err := gen.WriteFiles(report.Artifacts(), a.cfg.Output)
				if err != nil {
					return err
				}

				if dirs == nil {
					for _, pkg := range pkgs {
						if pkg.Dir != "" {
							dirs = append(dirs, pkg.Dir)
						}
					}
				}

				log.Infow("regenerated", "written", len(written), "failed", report.Failed())

				return nil
			}

			if err := rebuild(ctx); err != nil {
				return err
			}

			return watch.New(dirs, debounce, rebuild).Run(ctx)
		},
	}

	cmd.Flags().DurationVar(&debounce, "debounce", watch.DefaultDebounce, "quiet period before regenerating")

	return cmd
}
