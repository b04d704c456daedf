// Package config provides configuration for the minefield command.
//
// Config file locations (priority order):
//  1. an explicit path (the --config flag)
//  2. $MINEFIELD_CONFIG
//  3. $XDG_CONFIG_HOME/minefield/config.yaml (and the XDG config dirs)
//
// When no file is found the built-in defaults are used.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/adrg/xdg"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/minefield/montecarlo"
)

// EnvConfig names the environment variable holding a config path.
const EnvConfig = "MINEFIELD_CONFIG"

// xdgRelPath is the config file location relative to the XDG config dirs.
const xdgRelPath = "minefield/config.yaml"

// Log formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config is the on-disk configuration.
type Config struct {
	// Samples is the Monte Carlo sample count for area estimates.
	Samples int `yaml:"samples"`

	// Seed fixes the estimator's random stream; 0 seeds from the clock.
	Seed int64 `yaml:"seed"`

	// Workers is the number of sampling goroutines.
	Workers int `yaml:"workers"`

	Log LogConfig `yaml:"log"`
}

// LogConfig selects the logrus level and output format.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Samples: montecarlo.DefaultSamples,
		Seed:    0,
		Workers: 1,
		Log: LogConfig{
			Level:  logrus.InfoLevel.String(),
			Format: FormatText,
		},
	}
}

// FindConfigPath returns the first existing config file in lookup order,
// or "" when there is none.
func FindConfigPath() string {
	if p := os.Getenv(EnvConfig); p != "" {
		return p
	}
	if p, err := xdg.SearchConfigFile(xdgRelPath); err == nil {
		return p
	}

	return ""
}

// Load resolves the config path (explicit path first) and loads it, or
// returns the defaults if no file exists. The resolved path is returned
// alongside, empty when defaults were used.
func Load(path string) (*Config, string, error) {
	if path == "" {
		path = FindConfigPath()
	}
	if path == "" {
		return DefaultConfig(), "", nil
	}
	cfg, err := LoadFromPath(path)

	return cfg, path, err
}

// LoadFromPath reads and validates the YAML file at path. Missing keys
// take their default values.
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}

	return &cfg, nil
}

// applyDefaults fills in zero values.
func (c *Config) applyDefaults() {
	def := DefaultConfig()
	if c.Samples == 0 {
		c.Samples = def.Samples
	}
	if c.Workers == 0 {
		c.Workers = def.Workers
	}
	if c.Log.Level == "" {
		c.Log.Level = def.Log.Level
	}
	if c.Log.Format == "" {
		c.Log.Format = def.Log.Format
	}
}

// Validate checks ranges and enumerations.
func (c *Config) Validate() error {
	var errs []string
	if c.Samples <= 0 {
		errs = append(errs, fmt.Sprintf("samples must be > 0, got %d", c.Samples))
	}
	if c.Workers < 1 {
		errs = append(errs, fmt.Sprintf("workers must be >= 1, got %d", c.Workers))
	}
	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Sprintf("log.level: %v", err))
	}
	if c.Log.Format != FormatText && c.Log.Format != FormatJSON {
		errs = append(errs, fmt.Sprintf("log.format must be %q or %q, got %q", FormatText, FormatJSON, c.Log.Format))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation errors:\n  - %s", strings.Join(errs, "\n  - "))
	}

	return nil
}

// EstimatorOptions converts the sampling settings into montecarlo options.
func (c *Config) EstimatorOptions() []montecarlo.Option {
	return []montecarlo.Option{
		montecarlo.WithSeed(c.Seed),
		montecarlo.WithWorkers(c.Workers),
	}
}
