// File: lexer_test.go
// Title: Lexer Tests
// Description: Tests for token classification, positions, literals and
//              illegal input.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial test suite

package lexer

import (
	"testing"

	"github.com/msto63/palc/foundation/pal/token"
)

func kinds(tokens []token.Token) []token.Kind {
	out := make([]token.Kind, len(tokens))
	for i, tok := range tokens {
		out[i] = tok.Kind
	}
	return out
}

func TestTokenizeKinds(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []token.Kind
	}{
		{
			name:  "empty input",
			input: "",
			want:  []token.Kind{token.EOF},
		},
		{
			name:  "program header",
			input: "PROGRAM p WITH x AS INTEGER IN",
			want: []token.Kind{
				token.PROGRAM, token.Identifier, token.WITH, token.Identifier,
				token.AS, token.INTEGER, token.IN, token.EOF,
			},
		},
		{
			name:  "operators",
			input: "= < > + - * / ( ) ,",
			want: []token.Kind{
				token.Assign, token.Less, token.Greater, token.Plus, token.Minus,
				token.Star, token.Slash, token.LParen, token.RParen, token.Comma, token.EOF,
			},
		},
		{
			name:  "no whitespace needed around operators",
			input: "x=(a+1)*2.5",
			want: []token.Kind{
				token.Identifier, token.Assign, token.LParen, token.Identifier, token.Plus,
				token.IntegerLiteral, token.RParen, token.Star, token.RealLiteral, token.EOF,
			},
		},
		{
			name:  "keywords are case sensitive",
			input: "program Program PROGRAM",
			want:  []token.Kind{token.Identifier, token.Identifier, token.PROGRAM, token.EOF},
		},
		{
			name:  "incomplete real",
			input: "5.",
			want:  []token.Kind{token.IntegerLiteral, token.Illegal, token.EOF},
		},
		{
			name:  "illegal characters",
			input: "x # y",
			want:  []token.Kind{token.Identifier, token.Illegal, token.Identifier, token.EOF},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := kinds(Tokenize(tt.input))
			if len(got) != len(tt.want) {
				t.Fatalf("Tokenize(%q) = %v, want %v", tt.input, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("token %d = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestLiteralValues(t *testing.T) {
	tokens := Tokenize("total1 42 3.14 007")

	want := []struct {
		kind  token.Kind
		value string
	}{
		{token.Identifier, "total1"},
		{token.IntegerLiteral, "42"},
		{token.RealLiteral, "3.14"},
		{token.IntegerLiteral, "007"},
	}

	for i, w := range want {
		if tokens[i].Kind != w.kind || tokens[i].Value != w.value {
			t.Errorf("token %d = %v(%q), want %v(%q)", i, tokens[i].Kind, tokens[i].Value, w.kind, w.value)
		}
	}
}

func TestPositions(t *testing.T) {
	input := "PROGRAM p\n  WITH\r\n\tx"
	tokens := Tokenize(input)

	want := []token.Pos{
		{Offset: 0, Line: 1, Column: 1},
		{Offset: 8, Line: 1, Column: 9},
		{Offset: 12, Line: 2, Column: 3},
		{Offset: 19, Line: 3, Column: 2},
		{Offset: 20, Line: 3, Column: 3},
	}

	if len(tokens) != len(want) {
		t.Fatalf("got %d tokens, want %d", len(tokens), len(want))
	}
	for i, w := range want {
		if tokens[i].Pos != w {
			t.Errorf("token %d (%v) pos = %+v, want %+v", i, tokens[i].Kind, tokens[i].Pos, w)
		}
	}
}

func TestEOFRepeats(t *testing.T) {
	l := New("x")
	l.NextToken()

	for i := 0; i < 3; i++ {
		if tok := l.NextToken(); tok.Kind != token.EOF {
			t.Fatalf("NextToken() #%d = %v, want EOF", i, tok.Kind)
		}
	}

	if l.Count() != 1 {
		t.Errorf("Count() = %d, want 1", l.Count())
	}
}

func TestIllegalMultiByte(t *testing.T) {
	tokens := Tokenize("x ä y")

	if tokens[1].Kind != token.Illegal || tokens[1].Value != "ä" {
		t.Errorf("token 1 = %v(%q), want ILLEGAL(ä)", tokens[1].Kind, tokens[1].Value)
	}
	if tokens[2].Kind != token.Identifier || tokens[2].Value != "y" {
		t.Errorf("token 2 = %v(%q), want IDENTIFIER(y)", tokens[2].Kind, tokens[2].Value)
	}
}
