// File: doc.go
// Title: Package ast documentation
// Description: Package ast defines the PAL syntax tree.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial documentation

// Package ast defines the syntax tree produced by the PAL grammar engine.
//
// Expression nodes carry the type computed during the single checking
// pass; a BinaryExpr has the type of its left operand. BadExpr marks input
// skipped by error recovery, and IsBroken reports whether an expression
// contains one.
//
// Trees can be rendered back to canonical source with String, traversed
// with Inspect or a Visitor, and converted into generic maps with Dump
// for YAML or JSON output.
package ast
