// File: diag.go
// Title: PAL Diagnostics
// Description: Diagnostic kinds reported during a parse, their rendering,
//              conversion to structured errors, and the ordered collector
//              that accumulates them.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package diag

import (
	"fmt"

	palerror "github.com/msto63/palc/foundation/core/error"
	"github.com/msto63/palc/foundation/pal/scope"
	"github.com/msto63/palc/foundation/pal/token"
	"github.com/msto63/palc/foundation/pal/types"
)

// Kind identifies the class of a diagnostic
type Kind int

const (
	// SyntaxMismatch: the expected token or token class was not found
	SyntaxMismatch Kind = iota
	// NotDeclared: an identifier was used without a declaration
	NotDeclared
	// AlreadyDeclared: an identifier was declared twice
	AlreadyDeclared
	// TypeConflict: two typed constructs compared unequal
	TypeConflict
)

// String returns the kind name
func (k Kind) String() string {
	switch k {
	case SyntaxMismatch:
		return "SyntaxMismatch"
	case NotDeclared:
		return "NotDeclared"
	case AlreadyDeclared:
		return "AlreadyDeclared"
	case TypeConflict:
		return "TypeConflict"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Code returns the structured error code of the kind
func (k Kind) Code() palerror.Code {
	switch k {
	case SyntaxMismatch:
		return palerror.CodeSyntaxMismatch
	case NotDeclared:
		return palerror.CodeNotDeclared
	case AlreadyDeclared:
		return palerror.CodeAlreadyDeclared
	case TypeConflict:
		return palerror.CodeTypeConflict
	default:
		return palerror.CodeUnknown
	}
}

// Diagnostic is one reported problem. Token locates it in the source;
// the remaining fields are set according to Kind.
type Diagnostic struct {
	Kind  Kind
	Token token.Token

	Expected string       // SyntaxMismatch
	Symbol   scope.Symbol // AlreadyDeclared: the first declaration
	Want     types.Type   // TypeConflict
	Got      types.Type   // TypeConflict
}

// Syntax creates a SyntaxMismatch diagnostic
func Syntax(tok token.Token, expected string) Diagnostic {
	return Diagnostic{Kind: SyntaxMismatch, Token: tok, Expected: expected}
}

// Undeclared creates a NotDeclared diagnostic
func Undeclared(tok token.Token) Diagnostic {
	return Diagnostic{Kind: NotDeclared, Token: tok}
}

// Redeclared creates an AlreadyDeclared diagnostic for tok, which
// conflicts with the existing symbol
func Redeclared(tok token.Token, existing scope.Symbol) Diagnostic {
	return Diagnostic{Kind: AlreadyDeclared, Token: tok, Symbol: existing}
}

// Conflict creates a TypeConflict diagnostic
func Conflict(tok token.Token, want, got types.Type) Diagnostic {
	return Diagnostic{Kind: TypeConflict, Token: tok, Want: want, Got: got}
}

// Pos returns the source position of the diagnostic
func (d Diagnostic) Pos() token.Pos {
	return d.Token.Pos
}

// Message returns the diagnostic text without position
func (d Diagnostic) Message() string {
	switch d.Kind {
	case SyntaxMismatch:
		return fmt.Sprintf("expected %s, found %s", d.Expected, d.Token)
	case NotDeclared:
		return fmt.Sprintf("identifier %q is not declared", d.Token.Value)
	case AlreadyDeclared:
		return fmt.Sprintf("identifier %q is already declared at %s", d.Token.Value, d.Symbol.Token.Pos)
	case TypeConflict:
		return fmt.Sprintf("type conflict: expected %s, found %s", d.Want, d.Got)
	default:
		return d.Kind.String()
	}
}

// String renders "line:col: message"
func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %s", d.Token.Pos, d.Message())
}

// AsError converts the diagnostic into a structured error
func (d Diagnostic) AsError() *palerror.Error {
	err := palerror.New(d.Message()).
		WithCode(d.Kind.Code()).
		WithOperation("check").
		WithDetail("line", d.Token.Pos.Line).
		WithDetail("column", d.Token.Pos.Column)

	switch d.Kind {
	case SyntaxMismatch:
		err = err.WithDetail("expected", d.Expected)
	case NotDeclared, AlreadyDeclared:
		err = err.WithDetail("identifier", d.Token.Value)
	case TypeConflict:
		err = err.WithDetails(map[string]interface{}{
			"want": d.Want.String(),
			"got":  d.Got.String(),
		})
	}
	return err
}
