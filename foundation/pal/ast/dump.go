// File: dump.go
// Title: AST Dump
// Description: Converts a syntax tree into plain maps and slices so it can
//              be encoded as YAML or JSON by the command-line tool.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package ast

// DumpVisitor converts nodes into generic maps. Each map carries a "node"
// key with the node kind and a "pos" key with line:column.
type DumpVisitor struct{}

// Dump returns the generic representation of node
func Dump(node Node) map[string]interface{} {
	if node == nil {
		return nil
	}
	out, _ := node.Accept(DumpVisitor{}).(map[string]interface{})
	return out
}

func dumpNode(kind string, n Node) map[string]interface{} {
	return map[string]interface{}{
		"node": kind,
		"pos":  n.Pos().String(),
	}
}

func dumpStmts(stmts []Stmt) []interface{} {
	out := make([]interface{}, 0, len(stmts))
	for _, s := range stmts {
		out = append(out, Dump(s))
	}
	return out
}

func dumpExpr(e Expr) interface{} {
	if e == nil {
		return nil
	}
	return Dump(e)
}

func (DumpVisitor) VisitProgram(n *Program) interface{} {
	m := dumpNode("Program", n)
	m["name"] = n.Name.Value
	decls := make([]interface{}, 0, len(n.Decls))
	for _, d := range n.Decls {
		decls = append(decls, Dump(d))
	}
	m["declarations"] = decls
	m["body"] = dumpStmts(n.Body)
	return m
}

func (DumpVisitor) VisitVarDecl(n *VarDecl) interface{} {
	m := dumpNode("VarDecl", n)
	names := make([]string, len(n.Names))
	for i, t := range n.Names {
		names[i] = t.Value
	}
	m["names"] = names
	m["type"] = n.Type.String()
	return m
}

func (DumpVisitor) VisitAssign(n *AssignStmt) interface{} {
	m := dumpNode("Assign", n)
	m["target"] = Dump(n.Target)
	m["value"] = dumpExpr(n.Value)
	return m
}

func (DumpVisitor) VisitLoop(n *LoopStmt) interface{} {
	m := dumpNode("Loop", n)
	if n.Cond != nil {
		m["until"] = Dump(n.Cond)
	}
	m["body"] = dumpStmts(n.Body)
	return m
}

func (DumpVisitor) VisitIf(n *IfStmt) interface{} {
	m := dumpNode("If", n)
	if n.Cond != nil {
		m["cond"] = Dump(n.Cond)
	}
	m["then"] = dumpStmts(n.Then)
	if n.HasElse {
		m["else"] = dumpStmts(n.Else)
	}
	return m
}

func (DumpVisitor) VisitInput(n *InputStmt) interface{} {
	m := dumpNode("Input", n)
	names := make([]interface{}, len(n.Names))
	for i, id := range n.Names {
		names[i] = Dump(id)
	}
	m["names"] = names
	return m
}

func (DumpVisitor) VisitOutput(n *OutputStmt) interface{} {
	m := dumpNode("Output", n)
	values := make([]interface{}, len(n.Values))
	for i, e := range n.Values {
		values[i] = dumpExpr(e)
	}
	m["values"] = values
	return m
}

func (DumpVisitor) VisitCondition(n *Condition) interface{} {
	m := dumpNode("Condition", n)
	m["op"] = n.Op.Value
	m["left"] = dumpExpr(n.Left)
	m["right"] = dumpExpr(n.Right)
	return m
}

func (DumpVisitor) VisitBinary(n *BinaryExpr) interface{} {
	m := dumpNode("Binary", n)
	m["op"] = n.Op.Value
	m["type"] = n.Type().String()
	m["left"] = dumpExpr(n.Left)
	m["right"] = dumpExpr(n.Right)
	return m
}

func (DumpVisitor) VisitUnary(n *UnaryExpr) interface{} {
	m := dumpNode("Unary", n)
	m["op"] = n.Op.Value
	m["type"] = n.Type().String()
	m["operand"] = dumpExpr(n.X)
	return m
}

func (DumpVisitor) VisitParen(n *ParenExpr) interface{} {
	m := dumpNode("Paren", n)
	m["type"] = n.Type().String()
	m["inner"] = dumpExpr(n.X)
	return m
}

func (DumpVisitor) VisitIdent(n *Ident) interface{} {
	m := dumpNode("Ident", n)
	m["name"] = n.Tok.Value
	m["type"] = n.Typ.String()
	return m
}

func (DumpVisitor) VisitBasicLit(n *BasicLit) interface{} {
	m := dumpNode("Literal", n)
	m["value"] = n.Tok.Value
	m["type"] = n.Type().String()
	return m
}

func (DumpVisitor) VisitBad(n *BadExpr) interface{} {
	return dumpNode("Bad", n)
}
