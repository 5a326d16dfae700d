// File: doc.go
// Title: Package config documentation
// Description: Package config loads the palc tool configuration.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial documentation

/*
Package config loads the palc tool configuration.

Configuration is read from TOML or YAML, chosen by file extension, on top
of the built-in defaults. Environment variables with the PALC_ prefix
override file values:

	PALC_LOG_LEVEL         log.level
	PALC_LOG_FORMAT        log.format
	PALC_COLOR             check.color
	PALC_MAX_SOURCE_BYTES  check.max_source_bytes
	PALC_WATCH_DEBOUNCE    watch.debounce

Example palc.toml:

	required_version = ">= 0.1.0"

	[log]
	level = "info"
	format = "console"

	[check]
	max_source_bytes = 65536
	color = "auto"
	show_summary = true

	[watch]
	debounce = "250ms"

Without an explicit path, Resolve searches palc.toml, palc.yaml, palc.yml
and .palc.toml in the working directory and then in $HOME/.config/palc.
Unknown keys and invalid values are rejected with an INVALID_CONFIG error.
*/
package config
