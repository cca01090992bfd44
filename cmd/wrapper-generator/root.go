package main

import (
	"context"
	"fmt"
	"io"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"wrapper-generator/internal/analyze"
	"wrapper-generator/internal/config"
	"wrapper-generator/internal/diagnostic"
	"wrapper-generator/internal/gen"
	"wrapper-generator/internal/logger"
	"wrapper-generator/internal/pipeline"
)

// errStale is returned by check when artifacts are out of date.
var errStale = errors.New("generated files are out of date")

// app is the state shared by the subcommands.
type app struct {
	cfgFile string
	cfg     *config.Config
}

// NewRootCmd creates the root command with all subcommands.
func NewRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "wrapper-generator",
		Short: "Generate value-object implementations for annotated Go types",
		Long: `wrapper-generator generates the implementation of every type declared with a
//wrapgen:wrap directive, for example:

  //wrapgen:wrap int64
  type Cents struct {
  	centsBacking
  }

The implementation is written to <type>_implementation.go next to the
declaration.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}

			loader := &config.Loader{File: a.cfgFile, Flags: cmd.Flags(), Args: args}

			cfg, err := loader.Load()
			if err != nil {
				return err
			}

			a.cfg = cfg

			if err := logger.Initialize(logger.Options{JSON: cfg.Log.JSON, Level: cfg.Log.Level}); err != nil {
				return errors.Wrap(err, "failed to initialize logger")
			}

			if used := loader.FileUsed(); used != "" {
				logger.Logger.Debugw("using config file", logger.FieldFile, used)
			}

			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default: ./"+config.FileName+")")
	flags.StringP("output", "o", "", "write artifacts to this directory instead of beside each type")
	flags.IntP("concurrency", "j", 0, "targets processed at once (default: GOMAXPROCS)")
	flags.StringSlice("tags", nil, "build tags used when loading packages")
	flags.Bool("debug", false, "write an .unformatted.go sidecar when output does not format")
	flags.Bool("log-json", false, "log as JSON")
	flags.String("log-level", config.DefaultLogLevel, "log level (debug|info|warn|error)")

	rootCmd.AddCommand(a.newGenCommand())
	rootCmd.AddCommand(a.newCheckCommand())
	rootCmd.AddCommand(a.newPlanCommand())
	rootCmd.AddCommand(a.newListCommand())
	rootCmd.AddCommand(a.newWatchCommand())

	return rootCmd
}

// run loads the configured packages and processes every target.
func (a *app) run(ctx context.Context) (*pipeline.Report, []*analyze.Package, error) {
	loader := analyze.NewLoader("", a.cfg.Tags)

	pkgs, err := loader.Load(ctx, a.cfg.Packages...)
	if err != nil {
		return nil, nil, err
	}

	runner := pipeline.NewRunner(pipeline.Options{
		Concurrency: a.cfg.Concurrency,
		Generator:   gen.GeneratorConfig{Debug: a.cfg.Debug},
	}, loader.Lookup)

	report, err := runner.Run(ctx, pkgs)
	if err != nil {
		return nil, nil, err
	}

	return report, pkgs, nil
}

// printDiagnostics writes all diagnostics of the report, errors first.
func printDiagnostics(w io.Writer, diags diagnostic.Diagnostics) {
	for _, d := range diags.All() {
		_, _ = fmt.Fprintf(w, "%s: %s\n", d.Severity, d)
	}
}

// failure turns error diagnostics into the command error.
func failure(report *pipeline.Report) error {
	if !report.HasErrors() {
		return nil
	}

	return errors.Newf("%d of %d targets failed", report.Failed(), len(report.Results))
}
