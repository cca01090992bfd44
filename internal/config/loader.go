package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// listKeys are split on commas when they come from the environment.
var listKeys = map[string]bool{
	"packages": true,
	"tags":     true,
}

// Loader assembles a Config.
type Loader struct {
	// Dir is where the configuration file is looked up; empty means the
	// working directory.
	Dir string
	// File is an explicit configuration file; it must exist.
	File string
	// Flags are the command line flags; only flags the user set are applied.
	Flags *pflag.FlagSet
	// Args are positional package patterns; they replace configured packages.
	Args []string

	used string
}

// FileUsed returns the configuration file read by the last Load, if any.
func (l *Loader) FileUsed() string {
	return l.used
}

// Load reads every layer and validates the result.
func (l *Loader) Load() (*Config, error) {
	k := koanf.New(".")
	l.used = ""

	if err := k.Load(confmap.Provider(Defaults(), "."), nil); err != nil {
		return nil, errors.Wrap(err, "failed to load defaults")
	}

	path, err := l.configFile()
	if err != nil {
		return nil, err
	}

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, errors.Wrapf(err, "error reading config file %s", path)
		}

		l.used = path
	}

	// WRAPGEN_LOG_LEVEL -> log.level
	if err := k.Load(env.ProviderWithValue(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, errors.Wrap(err, "failed to load env vars")
	}

	if l.Flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(l.Flags, ".", k, func(f *pflag.Flag) (string, any) {
			if !f.Changed {
				return "", nil
			}

			return flagKey(f.Name), posflag.FlagVal(l.Flags, f)
		}), nil); err != nil {
			return nil, errors.Wrap(err, "failed to load flags")
		}
	}

	if len(l.Args) > 0 {
		if err := k.Set("packages", l.Args); err != nil {
			return nil, errors.Wrap(err, "failed to set packages")
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, errors.Wrap(err, "unable to decode config")
	}

	cfg.Log.Level = strings.ToLower(cfg.Log.Level)

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}

	return &cfg, nil
}

func (l *Loader) configFile() (string, error) {
	if l.File != "" {
		if _, err := os.Stat(l.File); err != nil {
			return "", errors.Wrapf(err, "config file %s", l.File)
		}

		return l.File, nil
	}

	for _, name := range []string{FileName, "wrapgen.yml"} {
		candidate := filepath.Join(l.Dir, name)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}

	return "", nil
}

func envKey(name, value string) (string, any) {
	key := strings.ToLower(strings.TrimPrefix(name, EnvPrefix))
	key = strings.Replace(key, "_", ".", 1)

	if listKeys[key] {
		return key, splitList(value)
	}

	return key, value
}

// flagKey maps kebab-case flag names to configuration keys, e.g.
// log-level -> log.level.
func flagKey(name string) string {
	if rest, ok := strings.CutPrefix(name, "log-"); ok {
		return "log." + rest
	}

	return strings.ReplaceAll(name, "-", "_")
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}

	return out
}
