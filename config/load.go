package config

import (
	"fmt"
	"strings"

	core_config "github.com/grovetools/core/config"
	kyaml "github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/grovetools/codeclean/internal/lineio"
	"github.com/grovetools/codeclean/internal/transform"
)

const (
	// ExtensionName is the key of the codeclean section in grove.yml.
	ExtensionName = "codeclean"

	// EnvPrefix prefixes environment overrides. Nested keys use "__",
	// e.g. CODECLEAN_TRANSFORM__ON_EMPTY=skip.
	EnvPrefix = "CODECLEAN_"
)

// groveExtension fills cfg from the codeclean extension of the grove.yml
// found for the working directory. Tests replace it.
var groveExtension = func(cfg *Config) error {
	coreCfg, err := core_config.LoadDefault()
	if err != nil {
		return err
	}
	return coreCfg.UnmarshalExtension(ExtensionName, cfg)
}

// Load builds the effective configuration. Later sources win:
// defaults, the grove.yml extension, the YAML file at path (if any),
// then CODECLEAN_* environment variables.
func Load(path string) (Config, error) {
	cfg := Default()

	if groveExtension != nil {
		// No grove.yml is the normal case outside an ecosystem.
		_ = groveExtension(&cfg)
	}

	k := koanf.New(".")
	if path != "" {
		if err := k.Load(file.Provider(path), kyaml.Parser()); err != nil {
			return cfg, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	}
	if err := k.Load(env.Provider(EnvPrefix, "__", envKey), nil); err != nil {
		return cfg, fmt.Errorf("failed to load environment overrides: %w", err)
	}
	if err := k.Unmarshal("", &cfg); err != nil {
		return cfg, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func envKey(s string) string {
	return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
}

// Validate rejects settings no run could use.
func (c Config) Validate() error {
	if _, err := transform.New(c.Transform.Default); err != nil {
		return fmt.Errorf("transform.default: %w", err)
	}
	if _, err := lineio.ParseEmptyPolicy(c.Transform.OnEmpty); err != nil {
		return fmt.Errorf("transform.on_empty: %w", err)
	}
	if c.Transform.MaxLineBytes < 0 {
		return fmt.Errorf("transform.max_line_bytes: must not be negative, got %d", c.Transform.MaxLineBytes)
	}
	if c.LogLevel != "" {
		if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
			return fmt.Errorf("log_level: %w", err)
		}
	}
	return nil
}

// Marshal renders the configuration as YAML, in the shape the grove.yml
// extension and --config-file expect.
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
