// File: parser.go
// Title: PAL Recursive Descent Parser
// Description: Implements the PAL grammar engine: one procedure per
//              non-terminal, semantic checks threaded through expression
//              parsing, and panic-mode recovery so that a single pass
//              reports every independent error.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial parser implementation

package parser

import (
	pallog "github.com/msto63/palc/foundation/core/log"
	"github.com/msto63/palc/foundation/pal/ast"
	"github.com/msto63/palc/foundation/pal/diag"
	"github.com/msto63/palc/foundation/pal/scope"
	"github.com/msto63/palc/foundation/pal/semantics"
	"github.com/msto63/palc/foundation/pal/token"
	"github.com/msto63/palc/foundation/pal/types"
)

// TokenSource is a forward-only token stream. After the last token it
// must keep returning EOF.
type TokenSource interface {
	NextToken() token.Token
}

// Options configures parser behavior
type Options struct {
	Logger *pallog.Logger
}

// Parser checks PAL programs. A Parser holds no per-parse state and may
// be shared between goroutines; every Parse call owns its own scope and
// diagnostics.
type Parser struct {
	logger  *pallog.Logger
	options Options
}

// Result is the outcome of one parse
type Result struct {
	Program     *ast.Program
	Diagnostics []diag.Diagnostic
	Symbols     []scope.Symbol // declared symbols, in declaration order
	Tokens      int            // tokens consumed, EOF excluded
}

// OK reports whether the program produced no diagnostics
func (r *Result) OK() bool {
	return len(r.Diagnostics) == 0
}

// New creates a new PAL parser with the given options
func New(opts Options) *Parser {
	if opts.Logger == nil {
		opts.Logger = pallog.GetDefault()
	}

	return &Parser{
		logger:  opts.Logger.WithField("component", "pal-parser"),
		options: opts,
	}
}

// Parse reads one program from src. It always runs to completion: either
// the program is recognised up to END or the input is exhausted while
// recovering.
func (p *Parser) Parse(src TokenSource) *Result {
	st := &state{
		src:     src,
		scope:   scope.New(),
		diags:   diag.NewCollector(),
		logger:  p.logger,
		lastErr: -1,
	}
	st.sem = semantics.New(st.scope, st.diags)
	st.cur = src.NextToken()

	prog, symbols := st.program()

	result := &Result{
		Program:     prog,
		Diagnostics: st.diags.All(),
		Symbols:     symbols,
		Tokens:      st.tokens,
	}

	p.logger.Debug("Parse finished", pallog.Fields{
		"program":     prog.Name.Value,
		"tokens":      result.Tokens,
		"diagnostics": len(result.Diagnostics),
	})

	return result
}

// state is the mutable state of a single parse
type state struct {
	src    TokenSource
	cur    token.Token
	tokens int

	scope *scope.Scope
	diags *diag.Collector
	sem   *semantics.Checker

	// sync holds the tokens every enclosing production can resume at
	sync token.Set

	// lastErr is the offset of the last reported syntax error
	lastErr int

	logger *pallog.Logger
}

// Program := "PROGRAM" Identifier "WITH" {VarDecl} "IN" {Statement} "END"
func (s *state) program() (*ast.Program, []scope.Symbol) {
	s.scope.Open()

	prog := &ast.Program{Start: s.cur.Pos}

	restore := s.pushSync(token.WITH, token.IN, token.END)
	if s.expect(token.PROGRAM) {
		if s.have(token.Identifier) {
			prog.Name = s.cur
		}
		s.expect(token.Identifier)
	}
	s.expect(token.WITH)
	prog.Decls = s.declarations()
	s.expect(token.IN)
	restore()

	prog.Body = s.block(token.NewSet(token.END))
	s.expect(token.END)

	symbols := s.scope.Symbols()
	s.scope.Close()

	if !s.have(token.EOF) {
		s.mismatch(token.EOF.Label())
	}

	return prog, symbols
}

// declarations parses {VarDecl}. A comma between two declarations is
// accepted.
func (s *state) declarations() []*ast.VarDecl {
	outer := s.sync
	restore := s.pushSync(token.Identifier, token.AS, token.REAL, token.INTEGER, token.IN)
	defer restore()

	var decls []*ast.VarDecl
	for {
		switch {
		case s.have(token.Identifier):
			decls = append(decls, s.varDecl())
			if s.accept(token.Comma) && !s.have(token.Identifier) {
				s.mismatch(token.Identifier.Label())
			}
		case s.have(token.IN), s.have(token.EOF), outer.Has(s.cur.Kind):
			return decls
		default:
			s.mismatch("declaration")
			s.advance()
			if s.recover(0) == exhausted {
				return decls
			}
		}
	}
}

// VarDecl := IdentList "AS" Type
func (s *state) varDecl() *ast.VarDecl {
	decl := &ast.VarDecl{Names: s.identList()}

	if s.expect(token.AS) || s.haveAny(token.TypeKeywords) {
		decl.TypeTok = s.cur
		decl.Type = s.varType()
	}

	for _, name := range decl.Names {
		s.sem.AddToScope(scope.NewSymbol(name, decl.Type))
	}
	return decl
}

// Type := "REAL" | "INTEGER"
func (s *state) varType() types.Type {
	switch {
	case s.haveAny(token.TypeKeywords):
		typ := types.FromKeyword(s.cur.Kind)
		s.advance()
		return typ
	case s.have(token.Identifier):
		s.mismatch("REAL or INTEGER")
		s.advance()
	default:
		s.mismatch("REAL or INTEGER")
	}
	return types.Undefined
}

// IdentList := Identifier {"," Identifier}
func (s *state) identList() []token.Token {
	var names []token.Token
	for {
		if !s.have(token.Identifier) {
			s.mismatch(token.Identifier.Label())
			return names
		}
		names = append(names, s.cur)
		s.advance()

		if !s.accept(token.Comma) {
			return names
		}
	}
}

// block parses {Statement} up to one of the terminators, which it does
// not consume. It returns early when it meets a token an enclosing
// production can resume at.
func (s *state) block(terminators token.Set) []ast.Stmt {
	outer := s.sync
	restore := s.pushSet(token.StatementStarters.Union(terminators))
	defer restore()

	var stmts []ast.Stmt
	for !s.haveAny(terminators) {
		switch {
		case s.haveAny(token.StatementStarters):
			stmts = append(stmts, s.statement())
		case s.have(token.EOF), outer.Has(s.cur.Kind):
			return stmts
		default:
			s.mismatch("statement")
			if s.recover(0) == exhausted {
				return stmts
			}
		}
	}
	return stmts
}

// Statement := Assignment | Loop | Conditional | IOStmt
func (s *state) statement() ast.Stmt {
	switch s.cur.Kind {
	case token.UNTIL:
		return s.loop()
	case token.IF:
		return s.conditional()
	case token.INPUT:
		return s.input()
	case token.OUTPUT:
		return s.output()
	default:
		return s.assignment()
	}
}

// Assignment := Identifier "=" Expression
func (s *state) assignment() ast.Stmt {
	target := s.cur
	s.advance()

	st := &ast.AssignStmt{Target: &ast.Ident{Tok: target, Typ: s.sem.CheckID(target)}}

	if !s.expect(token.Assign) {
		st.Value = &ast.BadExpr{From: s.cur}
		return st
	}

	st.Value = s.expression()
	if !ast.IsBroken(st.Value) {
		s.sem.CompareTypes(target, st.Target.Typ, st.Value.Type())
	}
	return st
}

// Loop := "UNTIL" BoolExpr "REPEAT" {Statement} "ENDLOOP"
func (s *state) loop() ast.Stmt {
	st := &ast.LoopStmt{Until: s.cur.Pos}
	s.advance()

	restore := s.pushSync(token.REPEAT)
	st.Cond = s.condition()
	restore()

	s.expect(token.REPEAT)
	st.Body = s.block(token.NewSet(token.ENDLOOP))
	s.expect(token.ENDLOOP)
	return st
}

// Conditional := "IF" BoolExpr "THEN" {Statement} ["ELSE" {Statement}] "ENDIF"
func (s *state) conditional() ast.Stmt {
	st := &ast.IfStmt{If: s.cur.Pos}
	s.advance()

	restore := s.pushSync(token.THEN)
	st.Cond = s.condition()
	restore()

	s.expect(token.THEN)
	st.Then = s.block(token.NewSet(token.ELSE, token.ENDIF))
	if s.accept(token.ELSE) {
		st.HasElse = true
		st.Else = s.block(token.NewSet(token.ENDIF))
	}
	s.expect(token.ENDIF)
	return st
}

// IOStmt := "INPUT" IdentList
func (s *state) input() ast.Stmt {
	st := &ast.InputStmt{Input: s.cur.Pos}
	s.advance()

	for _, name := range s.identList() {
		st.Names = append(st.Names, &ast.Ident{Tok: name, Typ: s.sem.CheckID(name)})
	}
	return st
}

// IOStmt := "OUTPUT" Expression {"," Expression}
func (s *state) output() ast.Stmt {
	st := &ast.OutputStmt{Output: s.cur.Pos}
	s.advance()

	st.Values = append(st.Values, s.expression())
	for s.accept(token.Comma) {
		st.Values = append(st.Values, s.expression())
	}
	return st
}

// BoolExpr := Expression ("<" | "=" | ">") Expression
func (s *state) condition() *ast.Condition {
	c := &ast.Condition{Left: s.expression()}

	if !s.haveAny(token.RelOps) {
		s.mismatch(`"<", "=" or ">"`)
		c.Right = &ast.BadExpr{From: s.cur}
		return c
	}
	c.Op = s.cur
	s.advance()

	c.Right = s.expression()
	s.compareOperands(c.Op, c.Left, c.Right)
	return c
}

// Expression := Term {("+" | "-") Term}
func (s *state) expression() ast.Expr {
	left := s.term()
	for s.haveAny(token.AddOps) {
		op := s.cur
		s.advance()
		right := s.term()
		s.compareOperands(op, left, right)
		left = ast.NewBinary(left, op, right)
	}
	return left
}

// Term := Factor {("*" | "/") Factor}
func (s *state) term() ast.Expr {
	left := s.factor()
	for s.haveAny(token.MulOps) {
		op := s.cur
		s.advance()
		right := s.factor()
		s.compareOperands(op, left, right)
		left = ast.NewBinary(left, op, right)
	}
	return left
}

// Factor := ["+" | "-"] ( "(" Expression ")" | Value )
func (s *state) factor() ast.Expr {
	if s.haveAny(token.AddOps) {
		op := s.cur
		s.advance()
		return &ast.UnaryExpr{Op: op, X: s.primary()}
	}
	return s.primary()
}

// primary parses "(" Expression ")" or Value
func (s *state) primary() ast.Expr {
	switch {
	case s.have(token.LParen):
		paren := &ast.ParenExpr{Lparen: s.cur.Pos}
		s.advance()

		restore := s.pushSync(token.RParen)
		paren.X = s.expression()
		restore()

		s.expect(token.RParen)
		return paren
	case s.have(token.Identifier):
		id := &ast.Ident{Tok: s.cur, Typ: s.sem.CheckID(s.cur)}
		s.advance()
		return id
	case s.haveAny(token.ValueStarters):
		lit := &ast.BasicLit{Tok: s.cur}
		s.advance()
		return lit
	default:
		s.mismatch("expression")
		return &ast.BadExpr{From: s.cur}
	}
}

// compareOperands applies the type equality rule unless one side could
// not be parsed
func (s *state) compareOperands(op token.Token, left, right ast.Expr) {
	if ast.IsBroken(left) || ast.IsBroken(right) {
		return
	}
	s.sem.CompareTypes(op, left.Type(), right.Type())
}
