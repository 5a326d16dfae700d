// File: printer.go
// Title: PAL Source Printer
// Description: Renders a syntax tree back to canonical PAL source with
//              one statement per line and fully parenthesised arithmetic.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package ast

import (
	"fmt"
	"strings"
)

// StringVisitor converts AST nodes to their string representation
type StringVisitor struct {
	builder strings.Builder
	indent  int
}

// NewStringVisitor creates a new string visitor
func NewStringVisitor() *StringVisitor {
	return &StringVisitor{}
}

// String returns the accumulated output
func (sv *StringVisitor) String() string {
	return sv.builder.String()
}

// Reset clears the visitor state
func (sv *StringVisitor) Reset() {
	sv.builder.Reset()
	sv.indent = 0
}

func (sv *StringVisitor) line(format string, args ...interface{}) {
	sv.builder.WriteString(strings.Repeat("  ", sv.indent))
	fmt.Fprintf(&sv.builder, format, args...)
	sv.builder.WriteByte('\n')
}

func (sv *StringVisitor) block(stmts []Stmt) {
	sv.indent++
	for _, s := range stmts {
		s.Accept(sv)
	}
	sv.indent--
}

func (sv *StringVisitor) VisitProgram(n *Program) interface{} {
	sv.line("PROGRAM %s", n.Name.Value)
	sv.line("WITH")
	sv.indent++
	for _, d := range n.Decls {
		d.Accept(sv)
	}
	sv.indent--
	sv.line("IN")
	sv.block(n.Body)
	sv.line("END")
	return nil
}

func (sv *StringVisitor) VisitVarDecl(n *VarDecl) interface{} {
	sv.line("%s", n.String())
	return nil
}

func (sv *StringVisitor) VisitAssign(n *AssignStmt) interface{} {
	sv.line("%s", n.String())
	return nil
}

func (sv *StringVisitor) VisitLoop(n *LoopStmt) interface{} {
	sv.line("UNTIL %s REPEAT", n.Cond)
	sv.block(n.Body)
	sv.line("ENDLOOP")
	return nil
}

func (sv *StringVisitor) VisitIf(n *IfStmt) interface{} {
	sv.line("IF %s THEN", n.Cond)
	sv.block(n.Then)
	if n.HasElse {
		sv.line("ELSE")
		sv.block(n.Else)
	}
	sv.line("ENDIF")
	return nil
}

func (sv *StringVisitor) VisitInput(n *InputStmt) interface{} {
	sv.line("%s", n.String())
	return nil
}

func (sv *StringVisitor) VisitOutput(n *OutputStmt) interface{} {
	sv.line("%s", n.String())
	return nil
}

func (sv *StringVisitor) VisitCondition(n *Condition) interface{} {
	sv.builder.WriteString(n.String())
	return nil
}

func (sv *StringVisitor) VisitBinary(n *BinaryExpr) interface{} {
	sv.builder.WriteString(n.String())
	return nil
}

func (sv *StringVisitor) VisitUnary(n *UnaryExpr) interface{} {
	sv.builder.WriteString(n.String())
	return nil
}

func (sv *StringVisitor) VisitParen(n *ParenExpr) interface{} {
	sv.builder.WriteString(n.String())
	return nil
}

func (sv *StringVisitor) VisitIdent(n *Ident) interface{} {
	sv.builder.WriteString(n.String())
	return nil
}

func (sv *StringVisitor) VisitBasicLit(n *BasicLit) interface{} {
	sv.builder.WriteString(n.String())
	return nil
}

func (sv *StringVisitor) VisitBad(n *BadExpr) interface{} {
	sv.builder.WriteString(n.String())
	return nil
}

// String implementations

func (n *Program) String() string {
	sv := NewStringVisitor()
	n.Accept(sv)
	return sv.String()
}

func (n *VarDecl) String() string {
	names := make([]string, len(n.Names))
	for i, t := range n.Names {
		names[i] = t.Value
	}
	return fmt.Sprintf("%s AS %s", strings.Join(names, ", "), n.Type)
}

func (n *AssignStmt) String() string {
	return fmt.Sprintf("%s = %s", n.Target, exprString(n.Value))
}

func (n *LoopStmt) String() string {
	sv := NewStringVisitor()
	n.Accept(sv)
	return strings.TrimRight(sv.String(), "\n")
}

func (n *IfStmt) String() string {
	sv := NewStringVisitor()
	n.Accept(sv)
	return strings.TrimRight(sv.String(), "\n")
}

func (n *InputStmt) String() string {
	names := make([]string, len(n.Names))
	for i, id := range n.Names {
		names[i] = id.String()
	}
	return "INPUT " + strings.Join(names, ", ")
}

func (n *OutputStmt) String() string {
	values := make([]string, len(n.Values))
	for i, e := range n.Values {
		values[i] = exprString(e)
	}
	return "OUTPUT " + strings.Join(values, ", ")
}

func (n *Condition) String() string {
	if n == nil {
		return "<bad>"
	}
	return fmt.Sprintf("%s %s %s", exprString(n.Left), n.Op.Value, exprString(n.Right))
}

func (n *BinaryExpr) String() string {
	return fmt.Sprintf("(%s %s %s)", exprString(n.Left), n.Op.Value, exprString(n.Right))
}

func (n *UnaryExpr) String() string {
	return n.Op.Value + exprString(n.X)
}

func (n *ParenExpr) String() string {
	if _, ok := n.X.(*BinaryExpr); ok {
		return n.X.String()
	}
	return "(" + exprString(n.X) + ")"
}

func (n *Ident) String() string    { return n.Tok.Value }
func (n *BasicLit) String() string { return n.Tok.Value }
func (n *BadExpr) String() string  { return "<bad>" }

func exprString(e Expr) string {
	if e == nil {
		return "<bad>"
	}
	return e.String()
}
