// Package error provides structured error values for the palc toolchain.
//
// Package: error
// Title: palc Error Handling
// Description: Implements a structured error type carrying a stable code, a
//              severity, the failing operation and free-form details. Used for
//              every failure that is not a source diagnostic: unreadable
//              sources, invalid configuration, version mismatches. Source
//              diagnostics can be converted into this type for logging.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation with codes, severity and wrapping
//
// Usage:
//
//	import palerror "github.com/msto63/palc/foundation/core/error"
//
//	err := palerror.New("cannot open source").
//		WithCode(palerror.CodeSourceUnavailable).
//		WithOperation("pal.CheckFile").
//		WithDetail("path", path)
//
//	if palerror.HasCode(err, palerror.CodeSourceUnavailable) {
//		// report and skip the file
//	}
package error
