package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ColorMode controls styling of diagnostic output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// Config captures the launcher's own settings. None of them influence the
// programs or arguments that are launched.
type Config struct {
	Version int       `yaml:"version"`
	Log     LogConfig `yaml:"log"`
	Color   ColorMode `yaml:"color"`
}

// LogConfig describes the per-run log file.
type LogConfig struct {
	Level string `yaml:"level"`
	// Dir is resolved against the project root when relative.
	Dir string `yaml:"dir"`
	// Keep caps the number of run logs left in Dir.
	Keep int `yaml:"keep"`
}

// Default returns the baseline configuration.
func Default() Config {
	return Config{
		Version: 1,
		Log: LogConfig{
			Level: "info",
			Dir:   ".dinos/logs",
			Keep:  20,
		},
		Color: ColorAuto,
	}
}

// Load reads the YAML configuration from disk if it exists, otherwise returns
// the default configuration.
func Load(path string) (Config, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(contents, &cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// ApplyDefaults ensures fields fall back to defaults when the YAML blanks
// them out.
func (c *Config) ApplyDefaults() {
	defaults := Default()

	if c.Version == 0 {
		c.Version = defaults.Version
	}
	if c.Log.Level == "" {
		c.Log.Level = defaults.Log.Level
	}
	if c.Log.Dir == "" {
		c.Log.Dir = defaults.Log.Dir
	}
	if c.Log.Keep == 0 {
		c.Log.Keep = defaults.Log.Keep
	}
	if c.Color == "" {
		c.Color = defaults.Color
	}
}
