// Package log provides structured logging for the palc toolchain.
//
// Package: log
// Title: palc Structured Logging
// Description: Leveled, structured logging with persistent context fields,
//              a per-run correlation id, JSON/text/console output formats,
//              integration with the palc error type and timers for measuring
//              operations such as a single check run.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation
//
// Logs are written to stderr by default so that diagnostics printed on
// stdout stay machine-readable.
//
// Usage:
//
//	import pallog "github.com/msto63/palc/foundation/core/log"
//
//	logger := pallog.New().
//		WithLevel(pallog.LevelDebug).
//		WithFormat(pallog.FormatConsole).
//		WithName("palc").
//		WithCorrelationID(runID)
//
//	logger.Debug("parse finished", pallog.Fields{
//		"source":      "prog.pal",
//		"diagnostics": 2,
//	})
//
//	timer := logger.StartTimer("check")
//	// ... run the check
//	timer.Stop()
package log
