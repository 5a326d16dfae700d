// File: lexer.go
// Title: PAL Lexical Analyzer
// Description: Converts PAL source text into a forward-only stream of
//              classified tokens with line/column positions. Unknown
//              characters become Illegal tokens so the grammar engine
//              reports them instead of the scanner failing.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial lexer implementation

package lexer

import (
	"unicode/utf8"

	"github.com/msto63/palc/foundation/pal/token"
)

// Lexer performs lexical analysis of PAL input
type Lexer struct {
	input    string // Input string
	position int    // Current position in input (points to current char)
	readPos  int    // Current reading position (after current char)
	ch       byte   // Current char under examination
	line     int    // Current line number (1-based)
	column   int    // Current column number (1-based)
	count    int    // Tokens produced, EOF excluded
}

// New creates a new lexer for the given input
func New(input string) *Lexer {
	l := &Lexer{
		input: input,
		line:  1,
	}
	l.readChar()
	return l
}

// NextToken returns the next token. At end of input it keeps returning EOF.
func (l *Lexer) NextToken() token.Token {
	l.skipWhitespace()

	pos := token.Pos{Offset: l.position, Line: l.line, Column: l.column}

	if l.atEOF() {
		return token.Token{Kind: token.EOF, Pos: pos}
	}

	var kind token.Kind
	switch l.ch {
	case '=':
		kind = token.Assign
	case '<':
		kind = token.Less
	case '>':
		kind = token.Greater
	case '+':
		kind = token.Plus
	case '-':
		kind = token.Minus
	case '*':
		kind = token.Star
	case '/':
		kind = token.Slash
	case '(':
		kind = token.LParen
	case ')':
		kind = token.RParen
	case ',':
		kind = token.Comma
	default:
		switch {
		case isLetter(l.ch):
			word := l.readIdentifier()
			return l.emit(token.Lookup(word), word, pos)
		case isDigit(l.ch):
			value, isReal := l.readNumber()
			if isReal {
				return l.emit(token.RealLiteral, value, pos)
			}
			return l.emit(token.IntegerLiteral, value, pos)
		default:
			return l.emit(token.Illegal, l.readIllegal(), pos)
		}
	}

	value := string(l.ch)
	l.readChar()
	return l.emit(kind, value, pos)
}

// Count returns the number of tokens produced so far, EOF excluded
func (l *Lexer) Count() int {
	return l.count
}

// Tokenize returns all tokens of the input, terminated by one EOF token
func Tokenize(input string) []token.Token {
	l := New(input)
	var tokens []token.Token
	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			return tokens
		}
	}
}

func (l *Lexer) emit(kind token.Kind, value string, pos token.Pos) token.Token {
	l.count++
	return token.Token{Kind: kind, Value: value, Pos: pos}
}

func (l *Lexer) atEOF() bool {
	return l.position >= len(l.input)
}

// readChar reads the next character and advances position
func (l *Lexer) readChar() {
	if l.position < len(l.input) && l.ch == '\n' {
		l.line++
		l.column = 0
	}

	if l.readPos >= len(l.input) {
		l.ch = 0
		l.position = len(l.input)
		l.readPos = len(l.input) + 1
		l.column++
		return
	}

	l.ch = l.input[l.readPos]
	l.position = l.readPos
	l.readPos++
	l.column++
}

// readIdentifier reads a letter followed by letters and digits
func (l *Lexer) readIdentifier() string {
	start := l.position
	for !l.atEOF() && (isLetter(l.ch) || isDigit(l.ch)) {
		l.readChar()
	}
	return l.input[start:l.position]
}

// readNumber reads an integer literal or a real literal of the form
// digits "." digits
func (l *Lexer) readNumber() (string, bool) {
	start := l.position
	isReal := false

	for !l.atEOF() && isDigit(l.ch) {
		l.readChar()
	}

	if !l.atEOF() && l.ch == '.' && isDigit(l.peekChar()) {
		isReal = true
		l.readChar()
		for !l.atEOF() && isDigit(l.ch) {
			l.readChar()
		}
	}

	return l.input[start:l.position], isReal
}

// readIllegal consumes one complete (possibly multi-byte) character
func (l *Lexer) readIllegal() string {
	_, size := utf8.DecodeRuneInString(l.input[l.position:])
	value := l.input[l.position : l.position+size]
	for i := 0; i < size; i++ {
		l.readChar()
	}
	return value
}

// peekChar returns the next character without advancing position
func (l *Lexer) peekChar() byte {
	if l.readPos >= len(l.input) {
		return 0
	}
	return l.input[l.readPos]
}

func (l *Lexer) skipWhitespace() {
	for !l.atEOF() && (l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r') {
		l.readChar()
	}
}

func isLetter(ch byte) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z'
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}
