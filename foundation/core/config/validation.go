// File: validation.go
// Title: Configuration Validation
// Description: Validates a loaded configuration and collects every problem
//              into a single structured error.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation of validation

package config

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"

	palerror "github.com/msto63/palc/foundation/core/error"
	pallog "github.com/msto63/palc/foundation/core/log"
)

// ValidationResult contains the results of configuration validation
type ValidationResult struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors,omitempty"`
}

// Verify validates every setting and returns all problems found
func (c *Config) Verify() *ValidationResult {
	result := &ValidationResult{
		Valid:  true,
		Errors: make([]string, 0),
	}
	fail := func(format string, args ...interface{}) {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf(format, args...))
	}

	if _, err := pallog.ParseLevel(c.Log.Level); err != nil {
		fail("log.level: %v", err)
	}
	if _, err := pallog.ParseFormat(c.Log.Format); err != nil {
		fail("log.format: %v", err)
	}

	switch c.Check.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		fail("check.color: %q is not one of auto, always, never", c.Check.Color)
	}
	if c.Check.MaxSourceBytes <= 0 {
		fail("check.max_source_bytes: must be positive, got %d", c.Check.MaxSourceBytes)
	}

	if c.Watch.Debounce.Duration < 0 {
		fail("watch.debounce: must not be negative, got %s", c.Watch.Debounce.Duration)
	}

	if c.RequiredVersion != "" {
		if _, err := semver.NewConstraint(c.RequiredVersion); err != nil {
			fail("required_version: %v", err)
		}
	}

	return result
}

// Validate returns an INVALID_CONFIG error listing every problem, or nil
func (c *Config) Validate() error {
	result := c.Verify()
	if result.Valid {
		return nil
	}

	err := palerror.New("invalid configuration: "+strings.Join(result.Errors, "; ")).
		WithCode(palerror.CodeInvalidConfig).
		WithOperation("config.Validate").
		WithDetail("problems", result.Errors)
	if c.path != "" {
		err = err.WithDetail("filePath", c.path)
	}
	return err
}
