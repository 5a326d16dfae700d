// File: config_test.go
// Title: Configuration Tests
// Description: Tests for loading, environment overrides, validation and
//              discovery of the palc configuration.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial test implementation

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	palerror "github.com/msto63/palc/foundation/core/error"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v, want nil", err)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("Log.Level = %q, want %q", cfg.Log.Level, "warn")
	}
	if cfg.Check.Color != ColorAuto {
		t.Errorf("Check.Color = %q, want %q", cfg.Check.Color, ColorAuto)
	}
	if cfg.Watch.Debounce.Duration != 250*time.Millisecond {
		t.Errorf("Watch.Debounce = %v, want 250ms", cfg.Watch.Debounce.Duration)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	t.Run("load TOML config", func(t *testing.T) {
		path := writeFile(t, dir, "palc.toml", `
required_version = ">= 0.1.0"

[log]
level = "debug"
format = "json"

[check]
max_source_bytes = 4096
color = "never"
show_summary = false

[watch]
debounce = "1s"
`)
		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if cfg.Log.Level != "debug" || cfg.Log.Format != "json" {
			t.Errorf("Log = %+v, want debug/json", cfg.Log)
		}
		if cfg.Check.MaxSourceBytes != 4096 {
			t.Errorf("Check.MaxSourceBytes = %d, want 4096", cfg.Check.MaxSourceBytes)
		}
		if cfg.Check.Color != ColorNever || cfg.Check.ShowSummary {
			t.Errorf("Check = %+v, want color never, no summary", cfg.Check)
		}
		if cfg.Watch.Debounce.Duration != time.Second {
			t.Errorf("Watch.Debounce = %v, want 1s", cfg.Watch.Debounce.Duration)
		}
		if cfg.RequiredVersion != ">= 0.1.0" {
			t.Errorf("RequiredVersion = %q, want %q", cfg.RequiredVersion, ">= 0.1.0")
		}
		if cfg.Path() != path || cfg.Format() != FormatTOML {
			t.Errorf("Path()/Format() = %q/%v, want %q/toml", cfg.Path(), cfg.Format(), path)
		}
	})

	t.Run("load YAML config", func(t *testing.T) {
		path := writeFile(t, dir, "palc.yaml", `
log:
  level: info
check:
  color: always
watch:
  debounce: 100ms
`)
		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if cfg.Log.Level != "info" {
			t.Errorf("Log.Level = %q, want info", cfg.Log.Level)
		}
		if cfg.Log.Format != "text" {
			t.Errorf("Log.Format = %q, want default text", cfg.Log.Format)
		}
		if cfg.Check.Color != ColorAlways {
			t.Errorf("Check.Color = %q, want always", cfg.Check.Color)
		}
		if cfg.Watch.Debounce.Duration != 100*time.Millisecond {
			t.Errorf("Watch.Debounce = %v, want 100ms", cfg.Watch.Debounce.Duration)
		}
		if cfg.Format() != FormatYAML {
			t.Errorf("Format() = %v, want yaml", cfg.Format())
		}
	})

	t.Run("empty YAML keeps defaults", func(t *testing.T) {
		cfg, err := Load(writeFile(t, dir, "empty.yml", ""))
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if cfg.Check.MaxSourceBytes != Default().Check.MaxSourceBytes {
			t.Errorf("Check.MaxSourceBytes = %d, want default", cfg.Check.MaxSourceBytes)
		}
	})
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name     string
		path     string
		wantCode palerror.Code
	}{
		{"empty path", "", palerror.CodeInvalidConfig},
		{"missing file", filepath.Join(dir, "missing.toml"), palerror.CodeConfigNotFound},
		{"malformed TOML", writeFile(t, dir, "bad.toml", "[log\nlevel ="), palerror.CodeInvalidConfig},
		{"unknown TOML key", writeFile(t, dir, "unknown.toml", "[log]\nverbosity = 3\n"), palerror.CodeInvalidConfig},
		{"unknown YAML key", writeFile(t, dir, "unknown.yaml", "check:\n  colour: never\n"), palerror.CodeInvalidConfig},
		{"invalid level", writeFile(t, dir, "level.toml", "[log]\nlevel = \"loud\"\n"), palerror.CodeInvalidConfig},
		{"invalid debounce", writeFile(t, dir, "debounce.toml", "[watch]\ndebounce = \"soon\"\n"), palerror.CodeInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.path)
			if !palerror.HasCode(err, tt.wantCode) {
				t.Errorf("Load() error = %v, want code %s", err, tt.wantCode)
			}
		})
	}
}

func TestVerify(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		errors int
	}{
		{"defaults", func(*Config) {}, 0},
		{"bad color", func(c *Config) { c.Check.Color = "sometimes" }, 1},
		{"zero limit", func(c *Config) { c.Check.MaxSourceBytes = 0 }, 1},
		{"negative debounce", func(c *Config) { c.Watch.Debounce.Duration = -time.Second }, 1},
		{"bad constraint", func(c *Config) { c.RequiredVersion = "newest" }, 1},
		{"valid constraint", func(c *Config) { c.RequiredVersion = "^0.1" }, 0},
		{"several problems", func(c *Config) {
			c.Log.Level = "loud"
			c.Log.Format = "xml"
			c.Check.Color = "blue"
		}, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)
			result := cfg.Verify()
			if len(result.Errors) != tt.errors {
				t.Errorf("Verify() errors = %v, want %d", result.Errors, tt.errors)
			}
			if result.Valid != (tt.errors == 0) {
				t.Errorf("Verify().Valid = %v, want %v", result.Valid, tt.errors == 0)
			}
		})
	}
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		"PALC_LOG_LEVEL":        "trace",
		"PALC_LOG_FORMAT":       "console",
		"PALC_COLOR":            "never",
		"PALC_MAX_SOURCE_BYTES": "512",
		"PALC_WATCH_DEBOUNCE":   "2s",
	}
	lookup := func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}

	cfg := Default()
	if err := cfg.ApplyEnv(lookup); err != nil {
		t.Fatalf("ApplyEnv() error = %v", err)
	}
	if cfg.Log.Level != "trace" || cfg.Log.Format != "console" {
		t.Errorf("Log = %+v, want trace/console", cfg.Log)
	}
	if cfg.Check.Color != ColorNever || cfg.Check.MaxSourceBytes != 512 {
		t.Errorf("Check = %+v, want never/512", cfg.Check)
	}
	if cfg.Watch.Debounce.Duration != 2*time.Second {
		t.Errorf("Watch.Debounce = %v, want 2s", cfg.Watch.Debounce.Duration)
	}

	env = map[string]string{"PALC_MAX_SOURCE_BYTES": "lots"}
	if err := Default().ApplyEnv(lookup); !palerror.HasCode(err, palerror.CodeInvalidConfig) {
		t.Errorf("ApplyEnv() error = %v, want code %s", err, palerror.CodeInvalidConfig)
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	t.Setenv("PALC_LOG_LEVEL", "error")
	path := writeFile(t, t.TempDir(), "palc.toml", "[log]\nlevel = \"debug\"\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Log.Level != "error" {
		t.Errorf("Log.Level = %q, want %q", cfg.Log.Level, "error")
	}
}

func TestDiscover(t *testing.T) {
	first := t.TempDir()
	second := t.TempDir()
	writeFile(t, second, "palc.yaml", "log:\n  level: info\n")

	options := DiscoveryOptions{
		Paths:     []string{first, second},
		Filenames: []string{"palc.toml", "palc.yaml"},
	}

	t.Run("finds file in later path", func(t *testing.T) {
		path, err := FindConfigFile(options)
		if err != nil {
			t.Fatalf("FindConfigFile() error = %v", err)
		}
		if want := filepath.Join(second, "palc.yaml"); path != want {
			t.Errorf("FindConfigFile() = %q, want %q", path, want)
		}
		cfg, err := Discover(options)
		if err != nil {
			t.Fatalf("Discover() error = %v", err)
		}
		if cfg.Log.Level != "info" {
			t.Errorf("Log.Level = %q, want info", cfg.Log.Level)
		}
	})

	t.Run("earlier path wins", func(t *testing.T) {
		writeFile(t, first, "palc.toml", "[log]\nlevel = \"error\"\n")
		cfg, err := Discover(options)
		if err != nil {
			t.Fatalf("Discover() error = %v", err)
		}
		if cfg.Log.Level != "error" {
			t.Errorf("Log.Level = %q, want error", cfg.Log.Level)
		}
	})

	t.Run("nothing found", func(t *testing.T) {
		empty := DiscoveryOptions{Paths: []string{t.TempDir()}, Filenames: []string{"palc.toml"}}

		cfg, err := Discover(empty)
		if err != nil {
			t.Fatalf("Discover() error = %v", err)
		}
		if cfg.Path() != "" {
			t.Errorf("Path() = %q, want empty", cfg.Path())
		}

		empty.Required = true
		if _, err := Discover(empty); !palerror.HasCode(err, palerror.CodeConfigNotFound) {
			t.Errorf("Discover() error = %v, want code %s", err, palerror.CodeConfigNotFound)
		}
	})
}

func TestListPossibleConfigFiles(t *testing.T) {
	got := ListPossibleConfigFiles(DiscoveryOptions{
		Paths:     []string{"a", "b"},
		Filenames: []string{"palc.toml", "palc.yaml"},
	})
	want := []string{
		filepath.Join("a", "palc.toml"),
		filepath.Join("a", "palc.yaml"),
		filepath.Join("b", "palc.toml"),
		filepath.Join("b", "palc.yaml"),
	}
	if len(got) != len(want) {
		t.Fatalf("ListPossibleConfigFiles() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("ListPossibleConfigFiles()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
