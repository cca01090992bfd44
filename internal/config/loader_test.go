package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.StringP("output", "o", "", "")
	flags.IntP("concurrency", "j", 0, "")
	flags.StringSlice("tags", nil, "")
	flags.Bool("debug", false, "")
	flags.Bool("log-json", false, "")
	flags.String("log-level", DefaultLogLevel, "")

	require.NoError(t, flags.Parse(args))

	return flags
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(content), 0o600))

	return dir
}

func TestLoadDefaults(t *testing.T) {
	loader := &Loader{Dir: t.TempDir(), Flags: testFlags(t)}

	cfg, err := loader.Load()
	require.NoError(t, err)

	assert.Equal(t, []string{DefaultPackage}, cfg.Packages)
	assert.Empty(t, cfg.Output)
	assert.Zero(t, cfg.Concurrency)
	assert.Empty(t, cfg.Tags)
	assert.False(t, cfg.Debug)
	assert.Equal(t, LogConfig{Level: "info"}, cfg.Log)
	assert.Empty(t, loader.FileUsed())
}

func TestLoadPrecedence(t *testing.T) {
	dir := writeConfig(t, `
packages:
  - ./examples/...
output: gen
concurrency: 2
tags: [integration]
log:
  level: warn
`)

	t.Run("file", func(t *testing.T) {
		loader := &Loader{Dir: dir, Flags: testFlags(t)}

		cfg, err := loader.Load()
		require.NoError(t, err)

		assert.Equal(t, []string{"./examples/..."}, cfg.Packages)
		assert.Equal(t, "gen", cfg.Output)
		assert.Equal(t, 2, cfg.Concurrency)
		assert.Equal(t, []string{"integration"}, cfg.Tags)
		assert.Equal(t, "warn", cfg.Log.Level)
		assert.Equal(t, filepath.Join(dir, FileName), loader.FileUsed())
	})

	t.Run("env over file", func(t *testing.T) {
		t.Setenv("WRAPGEN_CONCURRENCY", "3")
		t.Setenv("WRAPGEN_LOG_LEVEL", "DEBUG")
		t.Setenv("WRAPGEN_TAGS", "a, b")

		cfg, err := (&Loader{Dir: dir, Flags: testFlags(t)}).Load()
		require.NoError(t, err)

		assert.Equal(t, 3, cfg.Concurrency)
		assert.Equal(t, "debug", cfg.Log.Level)
		assert.Equal(t, []string{"a", "b"}, cfg.Tags)
		assert.Equal(t, "gen", cfg.Output)
	})

	t.Run("flags over env", func(t *testing.T) {
		t.Setenv("WRAPGEN_CONCURRENCY", "3")

		flags := testFlags(t, "-j", "5", "--log-json", "--debug", "-o", "out")

		cfg, err := (&Loader{Dir: dir, Flags: flags}).Load()
		require.NoError(t, err)

		assert.Equal(t, 5, cfg.Concurrency)
		assert.True(t, cfg.Log.JSON)
		assert.True(t, cfg.Debug)
		assert.Equal(t, "out", cfg.Output)
		assert.Equal(t, "warn", cfg.Log.Level, "unset flag must not override the file")
	})

	t.Run("args replace packages", func(t *testing.T) {
		cfg, err := (&Loader{Dir: dir, Flags: testFlags(t), Args: []string{"./a", "./b"}}).Load()
		require.NoError(t, err)

		assert.Equal(t, []string{"./a", "./b"}, cfg.Packages)
	})
}

func TestLoadExplicitFile(t *testing.T) {
	dir := writeConfig(t, "debug: true\n")

	cfg, err := (&Loader{File: filepath.Join(dir, FileName)}).Load()
	require.NoError(t, err)
	assert.True(t, cfg.Debug)

	_, err = (&Loader{File: filepath.Join(dir, "missing.yaml")}).Load()
	require.Error(t, err)
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		errText string
	}{
		{"negative concurrency", "concurrency: -1\n", "concurrency must not be negative"},
		{"unknown level", "log:\n  level: loud\n", `unknown log level "loud"`},
		{"no packages", "packages: []\n", "no packages"},
		{"bad yaml", "packages: [\n", "error reading config file"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := (&Loader{Dir: writeConfig(t, tt.content)}).Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errText)
		})
	}
}

func TestFlagKey(t *testing.T) {
	assert.Equal(t, "log.level", flagKey("log-level"))
	assert.Equal(t, "log.json", flagKey("log-json"))
	assert.Equal(t, "concurrency", flagKey("concurrency"))
}
