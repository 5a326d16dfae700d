// File: doc.go
// Title: Package parser documentation
// Description: Package parser implements the PAL grammar engine.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial documentation

/*
Package parser implements the PAL grammar engine: a recursive descent
parser that checks syntax, declarations and types in one left-to-right
pass.

Grammar:

	Program     := "PROGRAM" Identifier "WITH" {VarDecl} "IN" {Statement} "END"
	VarDecl     := IdentList "AS" Type
	Type        := "REAL" | "INTEGER"
	Statement   := Assignment | Loop | Conditional | IOStmt
	Assignment  := Identifier "=" Expression
	Loop        := "UNTIL" BoolExpr "REPEAT" {Statement} "ENDLOOP"
	Conditional := "IF" BoolExpr "THEN" {Statement} ["ELSE" {Statement}] "ENDIF"
	IOStmt      := "INPUT" IdentList | "OUTPUT" Expression {"," Expression}
	BoolExpr    := Expression ("<" | "=" | ">") Expression
	Expression  := Term {("+" | "-") Term}
	Term        := Factor {("*" | "/") Factor}
	Factor      := ["+" | "-"] ( "(" Expression ")" | Value )
	Value       := Identifier | IntegerLiteral | RealLiteral
	IdentList   := Identifier {"," Identifier}

Errors never stop the parse. A syntax error is recorded and the parser
skips tokens until it reaches one that an enclosing production can resume
at: a statement starter, the terminator of an open block, or a keyword
pushed by a loop or conditional header. Block loops leave as soon as they
see a token that belongs to an enclosing block, so a missing ENDLOOP or
ENDIF costs one diagnostic and never hangs the parser.

Type rules: the type of a binary expression is the type of its left
operand; both operands must have the same type, and Integer is never
widened to Real. An undeclared identifier has type Undefined, which takes
part in comparisons like any other type. Operands that could not be
parsed are not compared.

Usage:

	p := parser.New(parser.Options{Logger: logger})
	result := p.Parse(lexer.New(source))
	for _, d := range result.Diagnostics {
		fmt.Println(d)
	}
*/
package parser
