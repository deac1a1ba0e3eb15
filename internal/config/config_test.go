package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultConfigValid(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())
}

func TestLoadWithoutFileUsesDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, "warn", cfg.Logging.Level)
	require.Equal(t, 30, cfg.Preview.FPS)
	require.Equal(t, 10, cfg.Sampling.Samples)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "choreo.yaml")
	data := `logging:
  level: debug
  format: json
preview:
  fps: 60
sampling:
  samples: 4
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "debug", cfg.Logging.Level)
	require.Equal(t, "json", cfg.Logging.Format)
	require.Equal(t, 60, cfg.Preview.FPS)
	require.Equal(t, 48, cfg.Preview.Width)
	require.Equal(t, 4, cfg.Sampling.Samples)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("CHOREO_SAMPLING_SAMPLES", "25")
	t.Setenv("CHOREO_LOGGING_LEVEL", "error")

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, 25, cfg.Sampling.Samples)
	require.Equal(t, "error", cfg.Logging.Level)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"bad format", func(c *Config) { c.Logging.Format = "xml" }},
		{"zero fps", func(c *Config) { c.Preview.FPS = 0 }},
		{"narrow preview", func(c *Config) { c.Preview.Width = 2 }},
		{"no samples", func(c *Config) { c.Sampling.Samples = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}
