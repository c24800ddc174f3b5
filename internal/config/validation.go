package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
)

// ValidationResult captures a single validation finding.
type ValidationResult struct {
	Level   string `json:"level"` // "error" or "warning"
	Message string `json:"message"`
}

// Check runs every validation and returns the findings.
func (c Config) Check() []ValidationResult {
	var results []ValidationResult
	results = append(results, c.validateVersion()...)
	results = append(results, c.validateLogLevel()...)
	results = append(results, c.validateLogKeep()...)
	results = append(results, c.validateColor()...)
	return results
}

// Validate joins the error-level findings of Check into one error.
func (c Config) Validate() error {
	var errs []string
	for _, r := range c.Check() {
		if r.Level == "error" {
			errs = append(errs, r.Message)
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return errors.New("invalid config: " + strings.Join(errs, "; "))
}

func (c Config) validateVersion() []ValidationResult {
	if c.Version == 1 {
		return nil
	}
	return []ValidationResult{{
		Level:   "error",
		Message: fmt.Sprintf("unsupported config version %d", c.Version),
	}}
}

func (c Config) validateLogLevel() []ValidationResult {
	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		return []ValidationResult{{
			Level:   "error",
			Message: fmt.Sprintf("log.level %q is not a valid level", c.Log.Level),
		}}
	}
	return nil
}

func (c Config) validateLogKeep() []ValidationResult {
	if c.Log.Keep > 0 {
		return nil
	}
	return []ValidationResult{{
		Level:   "error",
		Message: fmt.Sprintf("log.keep %d must be at least 1", c.Log.Keep),
	}}
}

func (c Config) validateColor() []ValidationResult {
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
		return nil
	}
	return []ValidationResult{{
		Level:   "error",
		Message: fmt.Sprintf("color %q must be one of auto, always, never", c.Color),
	}}
}
