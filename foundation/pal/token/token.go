// File: token.go
// Title: PAL Tokens
// Description: Defines the closed set of PAL token kinds, the immutable
//              Token value with source position, and the keyword table.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial token definitions

package token

import (
	"fmt"
)

// Kind represents the lexical class of a token
type Kind int

const (
	// Special tokens
	EOF Kind = iota
	Illegal

	// Identifiers and literals
	Identifier     // total, x1
	IntegerLiteral // 42
	RealLiteral    // 3.14

	// Keywords
	PROGRAM
	WITH
	IN
	END
	AS
	REAL
	INTEGER
	UNTIL
	REPEAT
	ENDLOOP
	IF
	THEN
	ELSE
	ENDIF
	INPUT
	OUTPUT

	// Operators and delimiters
	Assign  // =
	Less    // <
	Greater // >
	Plus    // +
	Minus   // -
	Star    // *
	Slash   // /
	LParen  // (
	RParen  // )
	Comma   // ,

	kindCount
)

var kindNames = [...]string{
	EOF:            "EOF",
	Illegal:        "ILLEGAL",
	Identifier:     "IDENTIFIER",
	IntegerLiteral: "INTEGER_LITERAL",
	RealLiteral:    "REAL_LITERAL",
	PROGRAM:        "PROGRAM",
	WITH:           "WITH",
	IN:             "IN",
	END:            "END",
	AS:             "AS",
	REAL:           "REAL",
	INTEGER:        "INTEGER",
	UNTIL:          "UNTIL",
	REPEAT:         "REPEAT",
	ENDLOOP:        "ENDLOOP",
	IF:             "IF",
	THEN:           "THEN",
	ELSE:           "ELSE",
	ENDIF:          "ENDIF",
	INPUT:          "INPUT",
	OUTPUT:         "OUTPUT",
	Assign:         "=",
	Less:           "<",
	Greater:        ">",
	Plus:           "+",
	Minus:          "-",
	Star:           "*",
	Slash:          "/",
	LParen:         "(",
	RParen:         ")",
	Comma:          ",",
}

// String returns the name of the kind. Keywords and operators are
// rendered as their lexeme.
func (k Kind) String() string {
	if k >= 0 && k < kindCount {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Label returns the kind as it appears in "expected ..." messages
func (k Kind) Label() string {
	switch k {
	case EOF:
		return "end of input"
	case Identifier:
		return "identifier"
	case IntegerLiteral:
		return "integer literal"
	case RealLiteral:
		return "real literal"
	case Illegal:
		return "illegal character"
	default:
		if k.IsKeyword() {
			return k.String()
		}
		return fmt.Sprintf("%q", k.String())
	}
}

// IsKeyword reports whether the kind is a reserved word
func (k Kind) IsKeyword() bool {
	return k >= PROGRAM && k <= OUTPUT
}

// IsOperator reports whether the kind is an operator or delimiter
func (k Kind) IsOperator() bool {
	return k >= Assign && k <= Comma
}

// IsLiteral reports whether the kind is a numeric literal
func (k Kind) IsLiteral() bool {
	return k == IntegerLiteral || k == RealLiteral
}

// Pos is a position in the source text
type Pos struct {
	Offset int // Byte offset (0-based)
	Line   int // Line number (1-based)
	Column int // Column number (1-based)
}

// String returns "line:column"
func (p Pos) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Token is one lexical unit with its source position
type Token struct {
	Kind  Kind
	Value string
	Pos   Pos
}

// Is reports whether the token has the given kind
func (t Token) Is(k Kind) bool {
	return t.Kind == k
}

// String returns a short description of the token for diagnostics
func (t Token) String() string {
	switch t.Kind {
	case EOF:
		return "end of input"
	case Identifier:
		return fmt.Sprintf("identifier %q", t.Value)
	case IntegerLiteral, RealLiteral:
		return t.Value
	case Illegal:
		return fmt.Sprintf("illegal character %q", t.Value)
	default:
		return fmt.Sprintf("%q", t.Value)
	}
}

var keywords = map[string]Kind{
	"PROGRAM": PROGRAM,
	"WITH":    WITH,
	"IN":      IN,
	"END":     END,
	"AS":      AS,
	"REAL":    REAL,
	"INTEGER": INTEGER,
	"UNTIL":   UNTIL,
	"REPEAT":  REPEAT,
	"ENDLOOP": ENDLOOP,
	"IF":      IF,
	"THEN":    THEN,
	"ELSE":    ELSE,
	"ENDIF":   ENDIF,
	"INPUT":   INPUT,
	"OUTPUT":  OUTPUT,
}

// Lookup maps a word to its keyword kind, or Identifier.
// Keywords are case-sensitive.
func Lookup(word string) Kind {
	if k, ok := keywords[word]; ok {
		return k
	}
	return Identifier
}
