// File: discovery.go
// Title: Configuration File Discovery
// Description: Finds the palc configuration file in the working directory
//              or the user configuration directory.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation of file discovery

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	palerror "github.com/msto63/palc/foundation/core/error"
)

// DiscoveryOptions defines options for automatic configuration file discovery
type DiscoveryOptions struct {
	Paths     []string // Directories to search, in order
	Filenames []string // File names to look for in each directory
	Required  bool     // Whether finding a config file is required
}

// DefaultDiscoveryOptions searches the working directory, then
// $HOME/.config/palc
func DefaultDiscoveryOptions() DiscoveryOptions {
	paths := []string{"."}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "palc"))
	}
	return DiscoveryOptions{
		Paths:     paths,
		Filenames: []string{"palc.toml", "palc.yaml", "palc.yml", ".palc.toml"},
	}
}

// ListPossibleConfigFiles returns every candidate path in search order
func ListPossibleConfigFiles(options DiscoveryOptions) []string {
	paths := make([]string, 0, len(options.Paths)*len(options.Filenames))
	for _, dir := range options.Paths {
		for _, name := range options.Filenames {
			paths = append(paths, filepath.Join(dir, name))
		}
	}
	return paths
}

// FindConfigFile returns the first candidate that exists
func FindConfigFile(options DiscoveryOptions) (string, error) {
	candidates := ListPossibleConfigFiles(options)
	for _, path := range candidates {
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, nil
		}
	}

	return "", palerror.New(fmt.Sprintf("no configuration file found in: %s", strings.Join(candidates, ", "))).
		WithCode(palerror.CodeConfigNotFound).
		WithOperation("config.FindConfigFile").
		WithDetail("searchPaths", candidates)
}

// Discover loads the first configuration file found. When none exists and
// the file is not required, the defaults with environment overrides are
// returned.
func Discover(options DiscoveryOptions) (*Config, error) {
	path, err := FindConfigFile(options)
	if err != nil {
		if options.Required {
			return nil, err
		}
		return LoadFromString("", FormatTOML)
	}
	return Load(path)
}

// Resolve loads path when set, and discovers a configuration file otherwise
func Resolve(path string) (*Config, error) {
	if path != "" {
		return Load(path)
	}
	return Discover(DefaultDiscoveryOptions())
}
