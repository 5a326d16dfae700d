// File: config.go
// Title: Tool Configuration
// Description: Typed palc configuration loaded from TOML or YAML files with
//              defaults and PALC_ environment variable overrides.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation with TOML/YAML support

package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	palerror "github.com/msto63/palc/foundation/core/error"
)

// EnvPrefix prefixes every environment override
const EnvPrefix = "PALC_"

// Format represents the configuration file format
type Format int

const (
	// FormatTOML represents TOML format (default)
	FormatTOML Format = iota

	// FormatYAML represents YAML format
	FormatYAML

	// FormatAuto detects the format from the file extension
	FormatAuto
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	case FormatAuto:
		return "auto"
	default:
		return "unknown"
	}
}

// Color modes for terminal output
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config holds the palc settings
type Config struct {
	Log   LogConfig   `toml:"log" yaml:"log"`
	Check CheckConfig `toml:"check" yaml:"check"`
	Watch WatchConfig `toml:"watch" yaml:"watch"`

	// RequiredVersion is a semver constraint the tool version must satisfy
	RequiredVersion string `toml:"required_version" yaml:"required_version"`

	path   string
	format Format
}

// LogConfig configures logging
type LogConfig struct {
	Level  string `toml:"level" yaml:"level"`
	Format string `toml:"format" yaml:"format"`
}

// CheckConfig configures the check command
type CheckConfig struct {
	MaxSourceBytes int64  `toml:"max_source_bytes" yaml:"max_source_bytes"`
	Color          string `toml:"color" yaml:"color"`
	ShowSummary    bool   `toml:"show_summary" yaml:"show_summary"`
}

// WatchConfig configures the watch command
type WatchConfig struct {
	Debounce Duration `toml:"debounce" yaml:"debounce"`
}

// Duration is a time.Duration written as a string such as "250ms"
type Duration struct {
	time.Duration
}

// UnmarshalText parses a duration string
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText formats the duration
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// UnmarshalYAML parses a duration scalar
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	return d.UnmarshalText([]byte(s))
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Log: LogConfig{
			Level:  "warn",
			Format: "text",
		},
		Check: CheckConfig{
			MaxSourceBytes: 1 << 20,
			Color:          ColorAuto,
			ShowSummary:    true,
		},
		Watch: WatchConfig{
			Debounce: Duration{250 * time.Millisecond},
		},
	}
}

// Path returns the file the configuration was loaded from, if any
func (c *Config) Path() string {
	return c.path
}

// Format returns the format of the loaded file
func (c *Config) Format() Format {
	return c.format
}

// Load loads a configuration file, applies environment overrides and
// validates the result
func Load(filePath string) (*Config, error) {
	if strings.TrimSpace(filePath) == "" {
		return nil, palerror.New("config file path cannot be empty").
			WithCode(palerror.CodeInvalidConfig).
			WithOperation("config.Load")
	}

	content, err := os.ReadFile(filePath)
	if err != nil {
		code := palerror.CodeInvalidConfig
		if os.IsNotExist(err) {
			code = palerror.CodeConfigNotFound
		}
		return nil, palerror.Wrap(err, "failed to read config file").
			WithCode(code).
			WithOperation("config.Load").
			WithDetail("filePath", filePath)
	}

	cfg, err := LoadFromString(string(content), detectFormat(filePath))
	if err != nil {
		return nil, palerror.Wrap(err, "failed to load config file").
			WithCode(palerror.CodeInvalidConfig).
			WithOperation("config.Load").
			WithDetail("filePath", filePath)
	}
	cfg.path = filePath
	return cfg, nil
}

// LoadFromString parses content on top of the defaults, then applies
// environment overrides and validates
func LoadFromString(content string, format Format) (*Config, error) {
	if format == FormatAuto {
		format = FormatTOML
	}

	cfg := Default()
	if err := parseContent([]byte(content), format, cfg); err != nil {
		return nil, err
	}
	cfg.format = format

	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// detectFormat determines the configuration format from file extension
func detectFormat(filePath string) Format {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// parseContent decodes content into cfg
func parseContent(content []byte, format Format, cfg *Config) error {
	switch format {
	case FormatTOML:
		md, err := toml.Decode(string(content), cfg)
		if err != nil {
			return palerror.Wrap(err, "TOML parse error").
				WithCode(palerror.CodeInvalidConfig).
				WithOperation("config.parseContent")
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return palerror.Newf("unknown config key %q", undecoded[0].String()).
				WithCode(palerror.CodeInvalidConfig).
				WithOperation("config.parseContent")
		}
	case FormatYAML:
		dec := yaml.NewDecoder(strings.NewReader(string(content)))
		dec.KnownFields(true)
		if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
			return palerror.Wrap(err, "YAML parse error").
				WithCode(palerror.CodeInvalidConfig).
				WithOperation("config.parseContent")
		}
	default:
		return palerror.New(fmt.Sprintf("unsupported format: %s", format)).
			WithCode(palerror.CodeInvalidConfig).
			WithOperation("config.parseContent").
			WithDetail("format", format.String())
	}
	return nil
}

// ApplyEnv overrides settings from PALC_ environment variables read
// through lookup
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvPrefix + "LOG_LEVEL"); ok {
		c.Log.Level = v
	}
	if v, ok := lookup(EnvPrefix + "LOG_FORMAT"); ok {
		c.Log.Format = v
	}
	if v, ok := lookup(EnvPrefix + "COLOR"); ok {
		c.Check.Color = v
	}
	if v, ok := lookup(EnvPrefix + "MAX_SOURCE_BYTES"); ok {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return envError(EnvPrefix+"MAX_SOURCE_BYTES", v, err)
		}
		c.Check.MaxSourceBytes = n
	}
	if v, ok := lookup(EnvPrefix + "WATCH_DEBOUNCE"); ok {
		if err := c.Watch.Debounce.UnmarshalText([]byte(v)); err != nil {
			return envError(EnvPrefix+"WATCH_DEBOUNCE", v, err)
		}
	}
	return nil
}

func envError(key, value string, err error) error {
	return palerror.Wrap(err, fmt.Sprintf("invalid value for %s", key)).
		WithCode(palerror.CodeInvalidConfig).
		WithOperation("config.ApplyEnv").
		WithDetail("variable", key).
		WithDetail("value", value)
}
