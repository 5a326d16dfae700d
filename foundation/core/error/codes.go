// File: codes.go
// Title: Error Code Definitions
// Description: Defines the stable error codes used by palc. Source diagnostic
//              codes mirror the four diagnostic kinds; the remaining codes
//              cover source access, configuration and versioning failures.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial code set for the PAL front end

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeInvalidInput Code = "INVALID_INPUT"

	// Source access
	CodeSourceUnavailable Code = "SOURCE_UNAVAILABLE"
	CodeSourceRead        Code = "SOURCE_READ"
	CodeSourceClose       Code = "SOURCE_CLOSE"
	CodeSourceTooLarge    Code = "SOURCE_TOO_LARGE"

	// PAL diagnostics
	CodeSyntaxMismatch  Code = "PAL_SYNTAX"
	CodeNotDeclared     Code = "PAL_NOT_DECLARED"
	CodeAlreadyDeclared Code = "PAL_ALREADY_DECLARED"
	CodeTypeConflict    Code = "PAL_TYPE_CONFLICT"

	// Configuration and environment
	CodeConfigNotFound  Code = "CONFIG_NOT_FOUND"
	CodeInvalidConfig   Code = "INVALID_CONFIG"
	CodeVersionMismatch Code = "VERSION_MISMATCH"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeInvalidInput,
		CodeSourceUnavailable, CodeSourceRead, CodeSourceClose, CodeSourceTooLarge,
		CodeSyntaxMismatch, CodeNotDeclared, CodeAlreadyDeclared, CodeTypeConflict,
		CodeConfigNotFound, CodeInvalidConfig, CodeVersionMismatch:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeSourceUnavailable, CodeSourceRead, CodeSourceClose, CodeSourceTooLarge:
		return "source"
	case CodeSyntaxMismatch:
		return "syntax"
	case CodeNotDeclared, CodeAlreadyDeclared, CodeTypeConflict:
		return "semantic"
	case CodeConfigNotFound, CodeInvalidConfig, CodeVersionMismatch:
		return "configuration"
	default:
		return "generic"
	}
}

// IsDiagnostic reports whether the code belongs to a source diagnostic
func (c Code) IsDiagnostic() bool {
	switch c.Category() {
	case "syntax", "semantic":
		return true
	}
	return false
}
