// File: types.go
// Title: PAL Types
// Description: The PAL type enumeration. Undefined is the zero value and
//              marks the result of an unresolved identifier.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

// Package types defines the PAL type enumeration.
package types

import (
	"github.com/msto63/palc/foundation/pal/token"
)

// Type is a PAL value type
type Type int

const (
	// Undefined is produced only after a semantic error and can never be
	// declared by a program
	Undefined Type = iota
	Integer
	Real
)

// String returns the type name as written in PAL source
func (t Type) String() string {
	switch t {
	case Integer:
		return "INTEGER"
	case Real:
		return "REAL"
	default:
		return "UNDEFINED"
	}
}

// IsDefined reports whether the type is Integer or Real
func (t Type) IsDefined() bool {
	return t == Integer || t == Real
}

// FromKeyword maps a type keyword to its Type
func FromKeyword(k token.Kind) Type {
	switch k {
	case token.INTEGER:
		return Integer
	case token.REAL:
		return Real
	default:
		return Undefined
	}
}

// OfLiteral returns the type fixed by a literal's lexical class
func OfLiteral(k token.Kind) Type {
	switch k {
	case token.IntegerLiteral:
		return Integer
	case token.RealLiteral:
		return Real
	default:
		return Undefined
	}
}
