// File: nodes.go
// Title: PAL AST Node Definitions
// Description: Defines the syntax tree built by the grammar engine: the
//              program, declarations, statements and typed expressions.
//              Every expression carries the type computed while parsing.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial AST node definitions

package ast

import (
	"github.com/msto63/palc/foundation/pal/token"
	"github.com/msto63/palc/foundation/pal/types"
)

// Node represents the base interface for all AST nodes
type Node interface {
	// String returns a string representation of the node
	String() string

	// Accept implements the visitor pattern
	Accept(visitor Visitor) interface{}

	// Pos returns the source position of the node
	Pos() token.Pos
}

// Expr is an expression node with its PAL type
type Expr interface {
	Node
	Type() types.Type
	exprNode()
}

// Stmt is a statement node
type Stmt interface {
	Node
	stmtNode()
}

// Program is the root of the tree
type Program struct {
	Start token.Pos   // Position of PROGRAM
	Name  token.Token // Program name
	Decls []*VarDecl  // WITH section
	Body  []Stmt      // IN section
}

// VarDecl declares one or more identifiers of a type
type VarDecl struct {
	Names   []token.Token // Declared identifiers
	TypeTok token.Token   // Type keyword as written
	Type    types.Type    // Declared type, Undefined if the keyword was missing
}

// Statement types

// AssignStmt represents Identifier "=" Expression
type AssignStmt struct {
	Target *Ident
	Value  Expr
}

// LoopStmt represents UNTIL cond REPEAT body ENDLOOP
type LoopStmt struct {
	Until token.Pos
	Cond  *Condition
	Body  []Stmt
}

// IfStmt represents IF cond THEN body [ELSE body] ENDIF
type IfStmt struct {
	If      token.Pos
	Cond    *Condition
	Then    []Stmt
	Else    []Stmt
	HasElse bool
}

// InputStmt represents INPUT IdentList
type InputStmt struct {
	Input token.Pos
	Names []*Ident
}

// OutputStmt represents OUTPUT Expression {"," Expression}
type OutputStmt struct {
	Output token.Pos
	Values []Expr
}

// Condition is the boolean expression of loops and conditionals
type Condition struct {
	Left  Expr
	Op    token.Token // <, = or >
	Right Expr
}

// Expression types

// BinaryExpr represents a left-associative arithmetic operation. Its type
// is the type of the left operand.
type BinaryExpr struct {
	Left   Expr
	Op     token.Token
	Right  Expr
	broken bool
}

// NewBinary builds a binary node
func NewBinary(left Expr, op token.Token, right Expr) *BinaryExpr {
	return &BinaryExpr{
		Left:   left,
		Op:     op,
		Right:  right,
		broken: IsBroken(left) || IsBroken(right),
	}
}

// UnaryExpr represents a signed factor
type UnaryExpr struct {
	Op token.Token // + or -
	X  Expr
}

// ParenExpr represents a parenthesised expression
type ParenExpr struct {
	Lparen token.Pos
	X      Expr
}

// Ident is a reference to a declared identifier
type Ident struct {
	Tok token.Token
	Typ types.Type // Declared type, Undefined if not declared
}

// BasicLit is an integer or real literal
type BasicLit struct {
	Tok token.Token
}

// BadExpr stands in for an expression that could not be parsed
type BadExpr struct {
	From token.Token
}

// Pos implementations

func (n *Program) Pos() token.Pos    { return n.Start }
func (n *VarDecl) Pos() token.Pos    { return firstPos(n.Names, n.TypeTok) }
func (n *AssignStmt) Pos() token.Pos { return n.Target.Pos() }
func (n *LoopStmt) Pos() token.Pos   { return n.Until }
func (n *IfStmt) Pos() token.Pos     { return n.If }
func (n *InputStmt) Pos() token.Pos  { return n.Input }
func (n *OutputStmt) Pos() token.Pos { return n.Output }
func (n *Condition) Pos() token.Pos  { return n.Left.Pos() }
func (n *BinaryExpr) Pos() token.Pos { return n.Left.Pos() }
func (n *UnaryExpr) Pos() token.Pos  { return n.Op.Pos }
func (n *ParenExpr) Pos() token.Pos  { return n.Lparen }
func (n *Ident) Pos() token.Pos      { return n.Tok.Pos }
func (n *BasicLit) Pos() token.Pos   { return n.Tok.Pos }
func (n *BadExpr) Pos() token.Pos    { return n.From.Pos }

func firstPos(names []token.Token, fallback token.Token) token.Pos {
	if len(names) > 0 {
		return names[0].Pos
	}
	return fallback.Pos
}

// Type implementations

func (n *BinaryExpr) Type() types.Type { return n.Left.Type() }
func (n *UnaryExpr) Type() types.Type  { return n.X.Type() }
func (n *ParenExpr) Type() types.Type  { return n.X.Type() }
func (n *Ident) Type() types.Type      { return n.Typ }
func (n *BasicLit) Type() types.Type   { return types.OfLiteral(n.Tok.Kind) }
func (n *BadExpr) Type() types.Type    { return types.Undefined }

func (*BinaryExpr) exprNode() {}
func (*UnaryExpr) exprNode()  {}
func (*ParenExpr) exprNode()  {}
func (*Ident) exprNode()      {}
func (*BasicLit) exprNode()   {}
func (*BadExpr) exprNode()    {}

func (*AssignStmt) stmtNode() {}
func (*LoopStmt) stmtNode()   {}
func (*IfStmt) stmtNode()     {}
func (*InputStmt) stmtNode()  {}
func (*OutputStmt) stmtNode() {}

// IsBroken reports whether e contains an expression the parser could
// not recognise
func IsBroken(e Expr) bool {
	switch n := e.(type) {
	case nil:
		return true
	case *BadExpr:
		return true
	case *BinaryExpr:
		return n.broken
	case *UnaryExpr:
		return IsBroken(n.X)
	case *ParenExpr:
		return IsBroken(n.X)
	default:
		return false
	}
}
