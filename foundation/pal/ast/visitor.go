// File: visitor.go
// Title: PAL AST Visitor Pattern Implementation
// Description: Implements the visitor pattern for PAL syntax trees and a
//              depth-first Inspect helper.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial visitor implementation

package ast

// Visitor interface for traversing AST nodes using the visitor pattern
type Visitor interface {
	// Visit program structure
	VisitProgram(n *Program) interface{}
	VisitVarDecl(n *VarDecl) interface{}

	// Visit statements
	VisitAssign(n *AssignStmt) interface{}
	VisitLoop(n *LoopStmt) interface{}
	VisitIf(n *IfStmt) interface{}
	VisitInput(n *InputStmt) interface{}
	VisitOutput(n *OutputStmt) interface{}
	VisitCondition(n *Condition) interface{}

	// Visit expressions
	VisitBinary(n *BinaryExpr) interface{}
	VisitUnary(n *UnaryExpr) interface{}
	VisitParen(n *ParenExpr) interface{}
	VisitIdent(n *Ident) interface{}
	VisitBasicLit(n *BasicLit) interface{}
	VisitBad(n *BadExpr) interface{}
}

func (n *Program) Accept(v Visitor) interface{}    { return v.VisitProgram(n) }
func (n *VarDecl) Accept(v Visitor) interface{}    { return v.VisitVarDecl(n) }
func (n *AssignStmt) Accept(v Visitor) interface{} { return v.VisitAssign(n) }
func (n *LoopStmt) Accept(v Visitor) interface{}   { return v.VisitLoop(n) }
func (n *IfStmt) Accept(v Visitor) interface{}     { return v.VisitIf(n) }
func (n *InputStmt) Accept(v Visitor) interface{}  { return v.VisitInput(n) }
func (n *OutputStmt) Accept(v Visitor) interface{} { return v.VisitOutput(n) }
func (n *Condition) Accept(v Visitor) interface{}  { return v.VisitCondition(n) }
func (n *BinaryExpr) Accept(v Visitor) interface{} { return v.VisitBinary(n) }
func (n *UnaryExpr) Accept(v Visitor) interface{}  { return v.VisitUnary(n) }
func (n *ParenExpr) Accept(v Visitor) interface{}  { return v.VisitParen(n) }
func (n *Ident) Accept(v Visitor) interface{}      { return v.VisitIdent(n) }
func (n *BasicLit) Accept(v Visitor) interface{}   { return v.VisitBasicLit(n) }
func (n *BadExpr) Accept(v Visitor) interface{}    { return v.VisitBad(n) }

// Inspect traverses the tree depth-first in source order, calling f for
// each node. Children are skipped when f returns false.
func Inspect(node Node, f func(Node) bool) {
	if node == nil || !f(node) {
		return
	}

	switch n := node.(type) {
	case *Program:
		for _, d := range n.Decls {
			Inspect(d, f)
		}
		inspectStmts(n.Body, f)
	case *AssignStmt:
		Inspect(n.Target, f)
		inspectExpr(n.Value, f)
	case *LoopStmt:
		if n.Cond != nil {
			Inspect(n.Cond, f)
		}
		inspectStmts(n.Body, f)
	case *IfStmt:
		if n.Cond != nil {
			Inspect(n.Cond, f)
		}
		inspectStmts(n.Then, f)
		inspectStmts(n.Else, f)
	case *InputStmt:
		for _, id := range n.Names {
			Inspect(id, f)
		}
	case *OutputStmt:
		for _, e := range n.Values {
			inspectExpr(e, f)
		}
	case *Condition:
		inspectExpr(n.Left, f)
		inspectExpr(n.Right, f)
	case *BinaryExpr:
		inspectExpr(n.Left, f)
		inspectExpr(n.Right, f)
	case *UnaryExpr:
		inspectExpr(n.X, f)
	case *ParenExpr:
		inspectExpr(n.X, f)
	}
}

func inspectStmts(stmts []Stmt, f func(Node) bool) {
	for _, s := range stmts {
		Inspect(s, f)
	}
}

func inspectExpr(e Expr, f func(Node) bool) {
	if e != nil {
		Inspect(e, f)
	}
}

// Identifiers returns every identifier reference in source order
func Identifiers(node Node) []*Ident {
	var ids []*Ident
	Inspect(node, func(n Node) bool {
		if id, ok := n.(*Ident); ok {
			ids = append(ids, id)
		}
		return true
	})
	return ids
}
