// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels used to pick the log level of an error
//              and to decide whether a failure stops a command.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow is a problem in the checked program itself
	SeverityLow Severity = iota

	// SeverityMedium affects one input but the tool keeps going
	SeverityMedium

	// SeverityHigh stops the current command
	SeverityHigh

	// SeverityCritical means the tool cannot run at all
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// IsFatal returns true if the severity should stop the current command
func (s Severity) IsFatal() bool {
	return s >= SeverityHigh
}

// GetSeverityFromCode determines appropriate severity level based on error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeInternal:
		return SeverityCritical

	case CodeInvalidConfig, CodeConfigNotFound, CodeVersionMismatch:
		return SeverityHigh

	case CodeSourceUnavailable, CodeSourceRead, CodeSourceClose, CodeSourceTooLarge:
		return SeverityMedium

	case CodeSyntaxMismatch, CodeNotDeclared, CodeAlreadyDeclared, CodeTypeConflict,
		CodeInvalidInput:
		return SeverityLow

	default:
		return SeverityMedium
	}
}
