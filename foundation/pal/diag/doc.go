// File: doc.go
// Title: Package diag documentation
// Description: Package diag defines PAL diagnostics.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial documentation

// Package diag defines the four diagnostic kinds produced while checking a
// PAL program and the Collector that keeps them in source order.
//
// Diagnostics are data, not Go errors: a parse always runs to completion
// and returns every diagnostic it found. AsError converts a single
// diagnostic into a structured error when it has to travel through the
// logging or error infrastructure.
//
//	1:30: type conflict: expected INTEGER, found REAL
//	2:5: identifier "y" is not declared
package diag
