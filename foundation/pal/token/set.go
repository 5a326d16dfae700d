// File: set.go
// Title: Token Kind Sets
// Description: A bit set over token kinds used for statement starters,
//              block terminators and recovery synchronisation.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package token

import (
	"strings"
)

// Set is an immutable set of token kinds
type Set uint64

// NewSet returns a set containing the given kinds
func NewSet(kinds ...Kind) Set {
	var s Set
	for _, k := range kinds {
		s |= 1 << uint(k)
	}
	return s
}

// Has reports whether k is in the set
func (s Set) Has(k Kind) bool {
	return k >= 0 && k < kindCount && s&(1<<uint(k)) != 0
}

// Add returns a set with the given kinds added
func (s Set) Add(kinds ...Kind) Set {
	return s | NewSet(kinds...)
}

// Union returns the union of both sets
func (s Set) Union(o Set) Set {
	return s | o
}

// Kinds returns the members in declaration order
func (s Set) Kinds() []Kind {
	var kinds []Kind
	for k := Kind(0); k < kindCount; k++ {
		if s.Has(k) {
			kinds = append(kinds, k)
		}
	}
	return kinds
}

// String renders the set as "{a, b}"
func (s Set) String() string {
	kinds := s.Kinds()
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = k.String()
	}
	return "{" + strings.Join(names, ", ") + "}"
}

// Predefined sets used by the grammar
var (
	StatementStarters = NewSet(Identifier, UNTIL, IF, INPUT, OUTPUT)
	TypeKeywords      = NewSet(REAL, INTEGER)
	ValueStarters     = NewSet(Identifier, IntegerLiteral, RealLiteral)
	FactorStarters    = ValueStarters.Add(LParen, Plus, Minus)
	AddOps            = NewSet(Plus, Minus)
	MulOps            = NewSet(Star, Slash)
	RelOps            = NewSet(Less, Assign, Greater)
)
