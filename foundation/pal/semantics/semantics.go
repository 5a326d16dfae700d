// File: semantics.go
// Title: PAL Semantic Checker
// Description: Identifier resolution, declaration conflicts and type
//              equality rules applied by the grammar engine while it
//              parses. Every violation is reported to the collector;
//              none of them stops the parse.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

// Package semantics implements the PAL semantic rules on top of a scope
// and a diagnostic collector owned by one parse.
package semantics

import (
	"errors"

	"github.com/msto63/palc/foundation/pal/diag"
	"github.com/msto63/palc/foundation/pal/scope"
	"github.com/msto63/palc/foundation/pal/token"
	"github.com/msto63/palc/foundation/pal/types"
)

// Checker applies the semantic rules against one scope
type Checker struct {
	scope *scope.Scope
	diags *diag.Collector
}

// New creates a checker reporting into diags
func New(s *scope.Scope, diags *diag.Collector) *Checker {
	return &Checker{scope: s, diags: diags}
}

// CheckID resolves an identifier token to its declared type.
// A token that is not an identifier yields Undefined silently; an
// undeclared identifier is reported as NotDeclared and yields Undefined.
func (c *Checker) CheckID(tok token.Token) types.Type {
	if !tok.Is(token.Identifier) {
		return types.Undefined
	}

	sym, ok := c.scope.Lookup(tok.Value)
	if !ok {
		c.diags.Add(diag.Undeclared(tok))
		return types.Undefined
	}
	return sym.Type
}

// CompareTypes reports a TypeConflict at tok when want and got differ.
// Integer and Real are never widened. It returns true when they match.
func (c *Checker) CompareTypes(tok token.Token, want, got types.Type) bool {
	if want == got {
		return true
	}
	c.diags.Add(diag.Conflict(tok, want, got))
	return false
}

// AddToScope declares sym. A second declaration of the same name is
// reported as AlreadyDeclared and the first declaration is kept.
func (c *Checker) AddToScope(sym scope.Symbol) bool {
	err := c.scope.Add(sym)
	if err == nil {
		return true
	}

	var dup *scope.DuplicateError
	if errors.As(err, &dup) {
		c.diags.Add(diag.Redeclared(sym.Token, dup.Existing))
	}
	return false
}

// LiteralType returns the type fixed by a literal token
func (c *Checker) LiteralType(tok token.Token) types.Type {
	return types.OfLiteral(tok.Kind)
}
