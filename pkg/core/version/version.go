// ============================================================================
// palc - PAL compiler front end
// ============================================================================
//
// Package:     version
// Description: Version of the palc tool and the PAL language it accepts
// Author:      msto63
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package version

import (
	"fmt"

	"github.com/Masterminds/semver/v3"

	palerror "github.com/msto63/palc/foundation/core/error"
)

// Version constants
const (
	// Tool is the palc release
	Tool = "0.1.0"

	// Language is the PAL language revision the front end accepts
	Language = "1.0.0"
)

// Commit is set at build time via -ldflags "-X ...version.Commit=<sha>"
var Commit = "unknown"

// String returns the one-line version banner
func String() string {
	return fmt.Sprintf("palc %s (PAL %s, commit %s)", Tool, Language, Commit)
}

// Satisfies checks the tool version against a semver constraint such as
// ">= 0.1, < 1". An empty constraint is always satisfied.
func Satisfies(constraint string) error {
	return check(Tool, constraint)
}

func check(current, constraint string) error {
	if constraint == "" {
		return nil
	}

	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return palerror.Wrap(err, fmt.Sprintf("invalid version constraint %q", constraint)).
			WithCode(palerror.CodeInvalidConfig).
			WithOperation("version.Satisfies").
			WithDetail("constraint", constraint)
	}

	v, err := semver.NewVersion(current)
	if err != nil {
		return palerror.Wrap(err, fmt.Sprintf("invalid tool version %q", current)).
			WithCode(palerror.CodeInternal).
			WithOperation("version.Satisfies")
	}

	if ok, reasons := c.Validate(v); !ok {
		msg := fmt.Sprintf("palc %s does not satisfy %q", current, constraint)
		if len(reasons) > 0 {
			msg += ": " + reasons[0].Error()
		}
		return palerror.New(msg).
			WithCode(palerror.CodeVersionMismatch).
			WithOperation("version.Satisfies").
			WithDetail("version", current).
			WithDetail("constraint", constraint)
	}
	return nil
}
