// File: breakstack.go
// Title: Break Predicates
// Description: Implements breakers and breakstacks. A breaker decides whether
//              a token belongs to an enclosing scope; nested grammars extend
//              the stack inward so that any keyword of any enclosing scope
//              terminates the current group.
// Author: kumekay
// Version: v0.1.0
// Created: 2026-08-05
// Modified: 2026-08-05
//
// Change History:
// - 2026-08-05 v0.1.0: Initial breaker implementation

package parser

import (
	"strings"

	"github.com/kumekay/cmake-format/cmakelang/lexer"
)

// Breaker decides whether a token terminates the scope it guards
type Breaker interface {
	// ShouldBreak returns true if the token belongs to the guarded scope
	// rather than the scope currently parsing
	ShouldBreak(tok lexer.Token) bool
}

// KeywordBreaker breaks on any of a fixed set of keywords, matched
// case-insensitively. A token containing an unresolved variable reference
// never matches: its runtime value is unknown, so it is treated as an
// ordinary argument.
type KeywordBreaker struct {
	keywords map[string]struct{}
}

// NewKeywordBreaker creates a breaker for the given keyword set
func NewKeywordBreaker(keywords ...string) KeywordBreaker {
	set := make(map[string]struct{}, len(keywords))
	for _, kw := range keywords {
		set[strings.ToUpper(kw)] = struct{}{}
	}
	return KeywordBreaker{keywords: set}
}

// ShouldBreak reports whether the token spells one of the breaker's keywords
func (b KeywordBreaker) ShouldBreak(tok lexer.Token) bool {
	word := NormalizedKeyword(tok)
	if word == "" {
		return false
	}
	_, ok := b.keywords[word]
	return ok
}

// ParenBreaker breaks on a closing parenthesis. The root of every breakstack
// is a ParenBreaker: the closing delimiter of the invocation always
// terminates whatever group is currently open.
type ParenBreaker struct{}

// ShouldBreak reports whether the token is a closing parenthesis
func (ParenBreaker) ShouldBreak(tok lexer.Token) bool {
	return tok.Kind == lexer.RightParen
}

// NewBreakStack returns the root breakstack for parsing a single
// invocation's argument list
func NewBreakStack() BreakStack {
	return BreakStack{ParenBreaker{}}
}

// BreakStack is an ordered collection of breakers, outermost first. Stacks
// only ever grow inward: a nested grammar extends its parent's stack and the
// extension is never visible to the parent.
type BreakStack []Breaker

// With returns a new stack extended by the given breakers. The receiver is
// not modified.
func (s BreakStack) With(breakers ...Breaker) BreakStack {
	out := make(BreakStack, 0, len(s)+len(breakers))
	out = append(out, s...)
	return append(out, breakers...)
}

// ShouldBreak reports whether any breaker on the stack claims the token
func (s BreakStack) ShouldBreak(tok lexer.Token) bool {
	for _, b := range s {
		if b.ShouldBreak(tok) {
			return true
		}
	}
	return false
}

// NormalizedKeyword returns the uppercased spelling of a word token for
// keyword comparison. Non-word tokens and tokens containing an unresolved
// variable reference normalize to the empty string, which matches no keyword.
func NormalizedKeyword(tok lexer.Token) string {
	if tok.Kind != lexer.Word {
		return ""
	}
	if strings.Contains(tok.Spelling, "${") {
		return ""
	}
	return strings.ToUpper(tok.Spelling)
}
