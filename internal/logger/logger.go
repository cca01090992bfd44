// Package logger holds the process-wide zap logger.
package logger

import (
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Standard field names for consistent structured logging.
const (
	FieldComponent = "component"
	FieldPackage   = "package"
	FieldTarget    = "target"
	FieldFile      = "file"
	FieldCode      = "code"
	FieldCount     = "count"
	FieldError     = "error"
	FieldPattern   = "patterns"
	FieldWorkers   = "workers"
)

// Logger is the global logger. It is a no-op until Initialize is called, so
// library code and tests stay quiet.
var Logger = zap.NewNop().Sugar()

// Options control logger construction.
type Options struct {
	JSON  bool
	Level string
}

// Initialize replaces the global logger.
func Initialize(opts Options) error {
	level, err := parseLevel(opts.Level)
	if err != nil {
		return err
	}

	var zapLogger *zap.Logger

	if opts.JSON {
		config := zap.NewProductionConfig()
		config.Level = zap.NewAtomicLevelAt(level)
		config.OutputPaths = []string{"stderr"}

		zapLogger, err = config.Build()
		if err != nil {
			return errors.Wrap(err, "building JSON logger")
		}
	} else {
		encoderConfig := zap.NewDevelopmentEncoderConfig()
		encoderConfig.TimeKey = ""
		encoderConfig.CallerKey = ""
		encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder

		zapLogger = zap.New(zapcore.NewCore(
			zapcore.NewConsoleEncoder(encoderConfig),
			zapcore.AddSync(os.Stderr),
			level,
		))
	}

	Logger = zapLogger.Sugar()

	return nil
}

func parseLevel(s string) (zapcore.Level, error) {
	if s == "" {
		return zapcore.InfoLevel, nil
	}

	level, err := zapcore.ParseLevel(strings.ToLower(s))
	if err != nil {
		return level, errors.WithHint(errors.Wrapf(err, "invalid log level %q", s),
			"use one of debug, info, warn, error")
	}

	return level, nil
}

// ComponentLogger returns a named logger for a specific component.
//
// Example:
//
//	type Runner struct {
//	    log *zap.SugaredLogger
//	}
//
//	func NewRunner() *Runner {
//	    return &Runner{log: logger.ComponentLogger("pipeline")}
//	}
func ComponentLogger(name string) *zap.SugaredLogger {
	return Logger.Named(name)
}

// Sync flushes any buffered log entries.
func Sync() {
	_ = Logger.Sync()
}
