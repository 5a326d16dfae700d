// File: scope.go
// Title: Symbol Scope
// Description: A flat, single-region symbol table owned by one parse.
//              Names are unique while the scope is open; closing the
//              scope discards every symbol.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

// Package scope provides the symbol table used by the PAL grammar engine.
package scope

import (
	"fmt"

	"github.com/msto63/palc/foundation/pal/token"
	"github.com/msto63/palc/foundation/pal/types"
)

// Symbol is a declared identifier
type Symbol struct {
	Name  string
	Type  types.Type
	Token token.Token // declaring occurrence
}

// NewSymbol creates a symbol declared by tok
func NewSymbol(tok token.Token, typ types.Type) Symbol {
	return Symbol{Name: tok.Value, Type: typ, Token: tok}
}

// DuplicateError is returned by Add when the name is already declared
type DuplicateError struct {
	Existing Symbol
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("%q already declared at %s", e.Existing.Name, e.Existing.Token.Pos)
}

// Scope maps names to symbols for a single open region
type Scope struct {
	symbols map[string]Symbol
	order   []string
	open    bool
}

// New returns a closed, empty scope
func New() *Scope {
	return &Scope{}
}

// Open starts a fresh region, dropping anything left from a previous one
func (s *Scope) Open() {
	s.symbols = make(map[string]Symbol)
	s.order = nil
	s.open = true
}

// Close ends the region and discards its symbols
func (s *Scope) Close() {
	s.symbols = nil
	s.order = nil
	s.open = false
}

// IsOpen reports whether a region is active
func (s *Scope) IsOpen() bool {
	return s.open
}

// Add inserts sym. A name already present is never overwritten; a
// *DuplicateError carrying the existing symbol is returned instead.
func (s *Scope) Add(sym Symbol) error {
	if !s.open {
		return fmt.Errorf("scope is not open")
	}
	if existing, ok := s.symbols[sym.Name]; ok {
		return &DuplicateError{Existing: existing}
	}
	s.symbols[sym.Name] = sym
	s.order = append(s.order, sym.Name)
	return nil
}

// Lookup returns the symbol declared under name
func (s *Scope) Lookup(name string) (Symbol, bool) {
	sym, ok := s.symbols[name]
	return sym, ok
}

// IsDefined reports whether name is declared
func (s *Scope) IsDefined(name string) bool {
	_, ok := s.symbols[name]
	return ok
}

// Len returns the number of declared symbols
func (s *Scope) Len() int {
	return len(s.order)
}

// Symbols returns the declared symbols in declaration order
func (s *Scope) Symbols() []Symbol {
	out := make([]Symbol, 0, len(s.order))
	for _, name := range s.order {
		out = append(out, s.symbols[name])
	}
	return out
}
