// Package config loads wrapper-generator settings. Values are layered, later
// sources winning: built-in defaults, the wrapgen.yaml file, WRAPGEN_*
// environment variables and finally flags set on the command line.
package config

import (
	"github.com/cockroachdb/errors"
)

// Config holds all settings of a run.
type Config struct {
	// Packages are the go/packages patterns to process.
	Packages []string `koanf:"packages"`
	// Output redirects artifacts to a directory instead of beside each target.
	Output string `koanf:"output"`
	// Concurrency bounds the number of targets processed at once; 0 means GOMAXPROCS.
	Concurrency int `koanf:"concurrency"`
	// Tags are build tags passed to the package loader.
	Tags []string `koanf:"tags"`
	// Debug writes an unformatted sidecar when generated code does not format.
	Debug bool      `koanf:"debug"`
	Log   LogConfig `koanf:"log"`
}

// LogConfig configures the logger.
type LogConfig struct {
	JSON  bool   `koanf:"json"`
	Level string `koanf:"level"`
}

const (
	// FileName is the configuration file looked up in the working directory.
	FileName = "wrapgen.yaml"
	// EnvPrefix prefixes environment variables, e.g. WRAPGEN_LOG_LEVEL.
	EnvPrefix = "WRAPGEN_"

	DefaultPackage  = "./..."
	DefaultLogLevel = "info"
)

var validLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// Defaults returns the built-in configuration as a flat key map.
func Defaults() map[string]any {
	return map[string]any{
		"packages":    []string{DefaultPackage},
		"output":      "",
		"concurrency": 0,
		"tags":        []string{},
		"debug":       false,
		"log.json":    false,
		"log.level":   DefaultLogLevel,
	}
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if c.Concurrency < 0 {
		return errors.Newf("concurrency must not be negative, got %d", c.Concurrency)
	}

	if !validLevels[c.Log.Level] {
		return errors.WithHint(
			errors.Newf("unknown log level %q", c.Log.Level),
			"use one of debug, info, warn, error")
	}

	if len(c.Packages) == 0 {
		return errors.New("no packages to process")
	}

	return nil
}
