// File: doc.go
// Title: Package token documentation
// Description: Package token defines the lexical vocabulary of PAL.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial documentation

// Package token defines the closed set of PAL token kinds, the Token value
// with its source position, and Set, a bit set over kinds.
//
// Keywords are upper-case and case-sensitive:
//
//	PROGRAM WITH IN END AS REAL INTEGER UNTIL REPEAT ENDLOOP
//	IF THEN ELSE ENDIF INPUT OUTPUT
//
// Operators and delimiters are = < > + - * / ( ) and the comma.
//
// The grammar matches tokens by Kind only; no lexeme comparisons happen
// outside of Lookup.
package token
