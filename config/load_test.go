package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func withoutGrove(t *testing.T) {
	t.Helper()
	orig := groveExtension
	groveExtension = nil
	t.Cleanup(func() { groveExtension = orig })
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "codeclean.yml")
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func TestLoad_Defaults(t *testing.T) {
	withoutGrove(t)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, "codes.txt", cfg.Transform.Input)
	assert.Equal(t, "output.txt", cfg.Transform.Output)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	withoutGrove(t)
	path := writeConfig(t, `transform:
  default: squeeze
  on_empty: skip
log_level: debug
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "squeeze", cfg.Transform.Default)
	assert.Equal(t, "skip", cfg.Transform.OnEmpty)
	assert.Equal(t, "debug", cfg.LogLevel)
	// Untouched keys keep their defaults.
	assert.Equal(t, "codes.txt", cfg.Transform.Input)
	assert.Zero(t, cfg.Transform.MaxLineBytes)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	withoutGrove(t)
	path := writeConfig(t, "transform:\n  on_empty: skip\n  output: from-file.txt\n")
	t.Setenv("CODECLEAN_TRANSFORM__ON_EMPTY", "zero")
	t.Setenv("CODECLEAN_TRANSFORM__MAX_LINE_BYTES", "4096")
	t.Setenv("CODECLEAN_METRICS_FILE", "/tmp/codeclean.prom")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "zero", cfg.Transform.OnEmpty)
	assert.Equal(t, 4096, cfg.Transform.MaxLineBytes)
	assert.Equal(t, "from-file.txt", cfg.Transform.Output)
	assert.Equal(t, "/tmp/codeclean.prom", cfg.MetricsFile)
}

func TestLoad_GroveExtensionBelowFile(t *testing.T) {
	orig := groveExtension
	groveExtension = func(cfg *Config) error {
		cfg.Transform.Default = "squeeze"
		cfg.Transform.Input = "grove-input.txt"
		return nil
	}
	t.Cleanup(func() { groveExtension = orig })

	path := writeConfig(t, "transform:\n  input: file-input.txt\n")
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "squeeze", cfg.Transform.Default)
	assert.Equal(t, "file-input.txt", cfg.Transform.Input)
}

func TestLoad_GroveExtensionErrorIgnored(t *testing.T) {
	orig := groveExtension
	groveExtension = func(*Config) error { return errors.New("no grove.yml") }
	t.Cleanup(func() { groveExtension = orig })

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_MissingFile(t *testing.T) {
	withoutGrove(t)
	_, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	assert.Error(t, err)
}

func TestLoad_Invalid(t *testing.T) {
	withoutGrove(t)
	tests := map[string]string{
		"policy":    "transform:\n  on_empty: ignore\n",
		"transform": "transform:\n  default: rot13\n",
		"size":      "transform:\n  max_line_bytes: -1\n",
		"level":     "log_level: loud\n",
	}
	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeConfig(t, content))
			assert.Error(t, err)
		})
	}
}

func TestConfig_MarshalRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Transform.OnEmpty = "zero"

	data, err := cfg.Marshal()
	require.NoError(t, err)
	assert.Contains(t, string(data), "on_empty: zero")

	var back Config
	require.NoError(t, yaml.Unmarshal(data, &back))
	assert.Equal(t, cfg, back)
}
