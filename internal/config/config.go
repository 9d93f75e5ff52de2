// Package config loads quatcalc settings from YAML with environment overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// Config holds all quatcalc configuration.
type Config struct {
	Log LogConfig `yaml:"log"`

	// Prompt is printed before each line in the repl.
	Prompt string `yaml:"prompt"`

	// Vars are expressions bound before the first statement runs.
	Vars map[string]string `yaml:"vars"`
}

// LogConfig configures the zap logger.
type LogConfig struct {
	Level       string `yaml:"level"` // debug, info, warn, error
	Development bool   `yaml:"development"`
}

// ValidLevels lists the accepted log levels.
var ValidLevels = []string{"debug", "info", "warn", "error"}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Log:    LogConfig{Level: "info"},
		Prompt: "q> ",
		Vars:   map[string]string{},
	}
}

// Load loads configuration from a YAML file. A missing file yields the
// defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if cfg.Vars == nil {
		cfg.Vars = map[string]string{}
	}
	return cfg, nil
}

// Save writes the configuration as YAML.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// ApplyEnv overrides settings from QUATCALC_LOG_LEVEL and QUATCALC_PROMPT.
// lookup is usually os.LookupEnv.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) {
	if v, ok := lookup("QUATCALC_LOG_LEVEL"); ok && v != "" {
		c.Log.Level = strings.ToLower(v)
	}
	if v, ok := lookup("QUATCALC_PROMPT"); ok {
		c.Prompt = v
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	for _, l := range ValidLevels {
		if c.Log.Level == l {
			return nil
		}
	}
	return fmt.Errorf("invalid log level: %s (valid: %v)", c.Log.Level, ValidLevels)
}

// VarNames returns the configured variable names in evaluation order.
func (c *Config) VarNames() []string {
	names := make([]string, 0, len(c.Vars))
	for name := range c.Vars {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ZapConfig builds the logger configuration. Validate first.
func (c *Config) ZapConfig() (zap.Config, error) {
	zc := zap.NewProductionConfig()
	if c.Log.Development {
		zc = zap.NewDevelopmentConfig()
	}
	level, err := zapcore.ParseLevel(c.Log.Level)
	if err != nil {
		return zap.Config{}, fmt.Errorf("log level: %w", err)
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	return zc, nil
}
