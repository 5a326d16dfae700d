// File: recovery.go
// Title: Token Matching and Panic-Mode Recovery
// Description: Lookahead primitives used by the grammar procedures and
//              the single recovery routine that resynchronises the token
//              stream after a syntax error.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package parser

import (
	pallog "github.com/msto63/palc/foundation/core/log"
	"github.com/msto63/palc/foundation/pal/diag"
	"github.com/msto63/palc/foundation/pal/token"
)

// outcome is the result of a recovery attempt
type outcome int

const (
	// resynchronized: the current token belongs to the stop set
	resynchronized outcome = iota
	// exhausted: the input ended before a stop token was found
	exhausted
)

func (o outcome) String() string {
	if o == exhausted {
		return "exhausted"
	}
	return "resynchronized"
}

// have reports whether the current token is of kind k
func (s *state) have(k token.Kind) bool {
	return s.cur.Kind == k
}

// haveAny reports whether the current token is in set
func (s *state) haveAny(set token.Set) bool {
	return set.Has(s.cur.Kind)
}

// advance moves to the next token
func (s *state) advance() {
	if s.cur.Kind != token.EOF {
		s.tokens++
	}
	s.cur = s.src.NextToken()
}

// accept consumes the current token if it is of kind k
func (s *state) accept(k token.Kind) bool {
	if s.have(k) {
		s.advance()
		return true
	}
	return false
}

// expect consumes a token of kind k. On mismatch it reports the error and
// recovers; if recovery stops at k, the token is consumed and the
// expectation is met after all.
func (s *state) expect(k token.Kind) bool {
	if s.accept(k) {
		return true
	}

	s.mismatch(k.Label())
	if s.recover(token.NewSet(k)) == exhausted {
		return false
	}
	return s.accept(k)
}

// mismatch reports a syntax error at the current token. At most one
// syntax error is reported per token.
func (s *state) mismatch(expected string) {
	if s.cur.Pos.Offset == s.lastErr {
		return
	}
	s.lastErr = s.cur.Pos.Offset
	s.diags.Add(diag.Syntax(s.cur, expected))

	if s.logger.IsLevelEnabled(pallog.LevelTrace) {
		s.logger.Trace("Syntax mismatch", pallog.Fields{
			"expected": expected,
			"found":    s.cur.String(),
			"pos":      s.cur.Pos.String(),
		})
	}
}

// recover discards tokens until one in stop or in the active sync set is
// current
func (s *state) recover(stop token.Set) outcome {
	set := stop.Union(s.sync)
	skipped := 0

	for !set.Has(s.cur.Kind) {
		if s.have(token.EOF) {
			s.traceRecovery(set, skipped, exhausted)
			return exhausted
		}
		s.advance()
		skipped++
	}

	s.traceRecovery(set, skipped, resynchronized)
	return resynchronized
}

func (s *state) traceRecovery(set token.Set, skipped int, o outcome) {
	if !s.logger.IsLevelEnabled(pallog.LevelTrace) {
		return
	}
	s.logger.Trace("Recovery finished", pallog.Fields{
		"outcome": o.String(),
		"skipped": skipped,
		"sync":    set.String(),
		"at":      s.cur.String(),
	})
}

// pushSync adds kinds to the active sync set. The returned function
// restores the previous set.
func (s *state) pushSync(kinds ...token.Kind) func() {
	return s.pushSet(token.NewSet(kinds...))
}

// pushSet adds set to the active sync set
func (s *state) pushSet(set token.Set) func() {
	saved := s.sync
	s.sync = s.sync.Union(set)
	return func() {
		s.sync = saved
	}
}
