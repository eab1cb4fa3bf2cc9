// Package config loads polarconv.toml, applies POLARCONV_* environment
// overrides and validates the result.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/kelseyhightower/envconfig"

	"polarconv/internal/resolve"
	"polarconv/internal/source"
)

// FileName is the configuration file looked up next to the input.
const FileName = "polarconv.toml"

// EnvPrefix prefixes every environment override, e.g. POLARCONV_RESOLVE_POLICY.
const EnvPrefix = "POLARCONV"

// Config is the merged run configuration.
type Config struct {
	Input       InputConfig       `toml:"input" envconfig:"INPUT"`
	Output      OutputConfig      `toml:"output" envconfig:"OUTPUT"`
	Resolve     ResolveConfig     `toml:"resolve" envconfig:"RESOLVE"`
	Diagnostics DiagnosticsConfig `toml:"diagnostics" envconfig:"DIAGNOSTICS"`

	// Path is the file the values were read from, empty for defaults only.
	Path string `toml:"-" ignored:"true"`
}

// InputConfig controls how input files are read.
type InputConfig struct {
	Encoding  string `toml:"encoding" envconfig:"ENCODING" validate:"encoding"`
	Delimiter string `toml:"delimiter" envconfig:"DELIMITER" validate:"delimiter"`
}

// OutputConfig controls native output.
type OutputConfig struct {
	Precision int `toml:"precision" envconfig:"PRECISION" validate:"min=-1,max=17"`
}

// ResolveConfig controls duplicate conflict handling.
type ResolveConfig struct {
	Policy   string `toml:"policy" envconfig:"POLICY" validate:"policy"`
	UI       string `toml:"ui" envconfig:"UI" validate:"oneof=auto on off"`
	Remember bool   `toml:"remember" envconfig:"REMEMBER"`
}

// DiagnosticsConfig controls diagnostic collection.
type DiagnosticsConfig struct {
	Max int `toml:"max" envconfig:"MAX" validate:"min=0,max=65535"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Input:       InputConfig{Encoding: string(source.EncodingUTF8)},
		Output:      OutputConfig{Precision: -1},
		Resolve:     ResolveConfig{Policy: string(resolve.PolicyPrompt), UI: "auto"},
		Diagnostics: DiagnosticsConfig{Max: 100},
	}
}

// Options select where configuration comes from.
type Options struct {
	// Path forces a config file; it must exist.
	Path string
	// StartDir is searched upwards for FileName when Path is empty.
	StartDir string
	// SkipEnv disables POLARCONV_* overrides.
	SkipEnv bool
}

// Load builds the configuration: defaults, then the file, then environment.
func Load(opts Options) (*Config, error) {
	cfg := Default()

	path := opts.Path
	if path == "" {
		found, ok, err := Find(opts.StartDir)
		if err != nil {
			return nil, err
		}
		if ok {
			path = found
		}
	}
	if path != "" {
		if err := decodeFile(path, &cfg); err != nil {
			return nil, err
		}
		cfg.Path = path
	}

	if !opts.SkipEnv {
		if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
			return nil, fmt.Errorf("failed to load config from env: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func decodeFile(path string, cfg *Config) error {
	meta, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fmt.Errorf("%s: unknown key(s): %s", path, strings.Join(keys, ", "))
	}
	return nil
}

// Find walks up from startDir to locate FileName.
func Find(startDir string) (path string, ok bool, err error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}
