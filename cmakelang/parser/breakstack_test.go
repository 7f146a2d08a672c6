// File: breakstack_test.go
// Title: Break Predicate Unit Tests
// Description: Tests for keyword breakers, structural breakers, and
//              breakstack extension.
// Author: kumekay
// Version: v0.1.0
// Created: 2026-08-05
// Modified: 2026-08-05
//
// Change History:
// - 2026-08-05 v0.1.0: Initial test suite

package parser

import (
	"testing"

	"github.com/kumekay/cmake-format/cmakelang/lexer"
)

func word(spelling string) lexer.Token {
	return lexer.Token{Kind: lexer.Word, Spelling: spelling}
}

func TestKeywordBreaker(t *testing.T) {
	breaker := NewKeywordBreaker("DESTINATION", "COMPONENT")

	tests := []struct {
		name string
		tok  lexer.Token
		want bool
	}{
		{
			name: "Exact match",
			tok:  word("DESTINATION"),
			want: true,
		},
		{
			name: "Lowercase match",
			tok:  word("destination"),
			want: true,
		},
		{
			name: "Mixed case match",
			tok:  word("Component"),
			want: true,
		},
		{
			name: "Non-keyword word",
			tok:  word("lib"),
			want: false,
		},
		{
			name: "Variable reference never matches",
			tok:  word("${DESTINATION}"),
			want: false,
		},
		{
			name: "Embedded variable reference never matches",
			tok:  word("DEST${SUFFIX}"),
			want: false,
		},
		{
			name: "Quoted string never matches",
			tok:  lexer.Token{Kind: lexer.QuotedString, Spelling: `"DESTINATION"`},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := breaker.ShouldBreak(tt.tok); got != tt.want {
				t.Errorf("ShouldBreak(%q) = %v, want %v", tt.tok.Spelling, got, tt.want)
			}
		})
	}
}

func TestParenBreaker(t *testing.T) {
	breaker := ParenBreaker{}
	if !breaker.ShouldBreak(lexer.Token{Kind: lexer.RightParen, Spelling: ")"}) {
		t.Error("Expected break on right paren")
	}
	if breaker.ShouldBreak(word(")")) {
		t.Error("Word spelled like a paren must not break")
	}
}

func TestBreakStack_With(t *testing.T) {
	root := NewBreakStack()
	extended := root.With(NewKeywordBreaker("TARGETS"))

	if len(root) != 1 {
		t.Errorf("Parent stack modified by With: len %d, want 1", len(root))
	}
	if len(extended) != 2 {
		t.Errorf("Extended stack len %d, want 2", len(extended))
	}

	if root.ShouldBreak(word("TARGETS")) {
		t.Error("Parent stack must not see nested breakers")
	}
	if !extended.ShouldBreak(word("TARGETS")) {
		t.Error("Extended stack must break on its own keyword")
	}
	if !extended.ShouldBreak(lexer.Token{Kind: lexer.RightParen, Spelling: ")"}) {
		t.Error("Extended stack must keep the parent's breakers")
	}
}

func TestNormalizedKeyword(t *testing.T) {
	tests := []struct {
		name string
		tok  lexer.Token
		want string
	}{
		{
			name: "Word uppercased",
			tok:  word("destination"),
			want: "DESTINATION",
		},
		{
			name: "Variable reference yields empty",
			tok:  word("${FOO}"),
			want: "",
		},
		{
			name: "Comment yields empty",
			tok:  lexer.Token{Kind: lexer.LineComment, Spelling: "# DESTINATION"},
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizedKeyword(tt.tok); got != tt.want {
				t.Errorf("NormalizedKeyword(%q) = %q, want %q", tt.tok.Spelling, got, tt.want)
			}
		})
	}
}
