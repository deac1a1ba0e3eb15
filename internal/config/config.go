// Package config loads choreo configuration from files and the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is the prefix for environment overrides, e.g. CHOREO_LOGGING_LEVEL.
const EnvPrefix = "CHOREO"

// MaxPreviewFPS caps the preview frame rate.
const MaxPreviewFPS = 240

// Config is the top-level configuration.
type Config struct {
	Logging   LoggingConfig   `mapstructure:"logging"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Sequences SequencesConfig `mapstructure:"sequences"`
	Preview   PreviewConfig   `mapstructure:"preview"`
	Sampling  SamplingConfig  `mapstructure:"sampling"`
}

// LoggingConfig controls the process logger.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// DatabaseConfig locates the event history database.
type DatabaseConfig struct {
	// Path is the SQLite file. Empty disables history.
	Path string `mapstructure:"path"`
}

// SequencesConfig controls where sequence files are found.
type SequencesConfig struct {
	// Dir is the project directory searched for .choreo/sequences.
	Dir string `mapstructure:"dir"`
}

// PreviewConfig controls the live terminal preview.
type PreviewConfig struct {
	FPS   int    `mapstructure:"fps"`
	Width int    `mapstructure:"width"`
	Theme string `mapstructure:"theme"`
}

// SamplingConfig controls oscillator sampling output.
type SamplingConfig struct {
	Samples int `mapstructure:"samples"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	dbPath := ""
	if home, err := os.UserHomeDir(); err == nil && home != "" {
		dbPath = filepath.Join(home, ".local", "share", "choreo", "history.db")
	}

	return &Config{
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "console",
		},
		Database: DatabaseConfig{
			Path: dbPath,
		},
		Sequences: SequencesConfig{
			Dir: ".",
		},
		Preview: PreviewConfig{
			FPS:   30,
			Width: 48,
			Theme: "default",
		},
		Sampling: SamplingConfig{
			Samples: 10,
		},
	}
}

// Validate checks that values are usable.
func (c *Config) Validate() error {
	var errs []error

	switch strings.ToLower(c.Logging.Format) {
	case "console", "json":
	default:
		errs = append(errs, fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format))
	}
	if c.Preview.FPS <= 0 || c.Preview.FPS > MaxPreviewFPS {
		errs = append(errs, fmt.Errorf("preview.fps must be between 1 and %d, got %d", MaxPreviewFPS, c.Preview.FPS))
	}
	if c.Preview.Width < 8 {
		errs = append(errs, fmt.Errorf("preview.width must be at least 8, got %d", c.Preview.Width))
	}
	if c.Sampling.Samples <= 0 {
		errs = append(errs, fmt.Errorf("sampling.samples must be greater than 0, got %d", c.Sampling.Samples))
	}

	return errors.Join(errs...)
}

// Load reads configuration. An empty path searches ./choreo.yaml and
// $HOME/.config/choreo/choreo.yaml; a missing file is not an error unless
// path was given explicitly.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v, DefaultConfig())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("choreo")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil && home != "" {
			v.AddConfigPath(filepath.Join(home, ".config", "choreo"))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper, cfg *Config) {
	v.SetDefault("logging.level", cfg.Logging.Level)
	v.SetDefault("logging.format", cfg.Logging.Format)
	v.SetDefault("database.path", cfg.Database.Path)
	v.SetDefault("sequences.dir", cfg.Sequences.Dir)
	v.SetDefault("preview.fps", cfg.Preview.FPS)
	v.SetDefault("preview.width", cfg.Preview.Width)
	v.SetDefault("preview.theme", cfg.Preview.Theme)
	v.SetDefault("sampling.samples", cfg.Sampling.Samples)
}
