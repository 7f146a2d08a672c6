// File: engine.go
// Title: Generic Grammar Engine
// Description: Implements the generic grammar engine for the common
//              "positionals, keyword groups, and flags" command shape, plus
//              the shared helpers grammar functions build on.
// Author: kumekay
// Version: v0.1.0
// Created: 2026-08-05
// Modified: 2026-08-05
//
// Change History:
// - 2026-08-05 v0.1.0: Initial engine implementation

package parser

import (
	"fmt"
	"strings"

	"github.com/kumekay/cmake-format/cmakelang/ast"
	"github.com/kumekay/cmake-format/cmakelang/lexer"
)

// ParseStandard parses the common command shape: positional arguments with
// the given arity, keyword groups with per-keyword payload parsers, and
// zero-argument flags. Keyword and flag matching is case-insensitive. The
// breakstack is extended for nested parses; the caller's stack is never
// modified.
func ParseStandard(cur *Cursor, npargs Arity, kwargs map[string]PayloadParser, flags []string, breakstack BreakStack) *ast.TreeNode {
	tree := ast.NewNode(ast.ArgumentGroup)

	keywords := make([]string, 0, len(kwargs))
	for kw := range kwargs {
		keywords = append(keywords, kw)
	}
	kwargBreakstack := breakstack.With(NewKeywordBreaker(append(keywords, flags...)...))
	positionalBreakstack := breakstack.With(NewKeywordBreaker(keywords...))

	normalized := make(map[string]PayloadParser, len(kwargs))
	for kw, payload := range kwargs {
		normalized[strings.ToUpper(kw)] = payload
	}

	for cur.Remaining() > 0 {
		tok := *cur.Peek()

		if breakstack.ShouldBreak(tok) {
			break
		}
		if tok.IsWhitespace() {
			tree.AppendToken(cur.Next())
			continue
		}
		if tok.IsComment() {
			comment := ast.NewNode(ast.Comment)
			comment.AppendToken(cur.Next())
			tree.AppendNode(comment)
			continue
		}

		before := cur.Remaining()

		var subtree *ast.TreeNode
		if payload, ok := normalized[NormalizedKeyword(tok)]; ok {
			subtree = ParseKwarg(cur, payload, kwargBreakstack)
		} else {
			subtree = ParsePositionals(cur, npargs, flags, positionalBreakstack)
			if cur.Remaining() == before {
				// A saturated positional arity admits nothing, so an
				// unclaimed token would stall the dispatch loop. Absorb it
				// and any following excess as extra arguments instead.
				subtree = ParsePositionals(cur, OneOrMore(), flags, positionalBreakstack)
			}
		}
		assertProgress(cur, before, tok)
		tree.AppendNode(subtree)
	}

	return tree
}

// NewStandardParser returns a grammar function closing over a fixed standard
// shape; used for registry entries and user-declared commands
func NewStandardParser(npargs Arity, kwargs map[string]PayloadParser, flags []string) ParseFunc {
	return func(cur *Cursor, breakstack BreakStack) *ast.TreeNode {
		return ParseStandard(cur, npargs, kwargs, flags, breakstack)
	}
}

// ParsePermissive parses any argument list as unbounded positionals with no
// keywords or flags. It is the fallback grammar for commands without a
// registered parser and cannot fail.
func ParsePermissive(cur *Cursor, breakstack BreakStack) *ast.TreeNode {
	return ParseStandard(cur, ZeroOrMore(), nil, nil, breakstack)
}

// ParseKwarg parses a keyword group: the keyword token itself, an optional
// trailing comment, and the keyword's payload. The cursor must be positioned
// on the keyword token.
func ParseKwarg(cur *Cursor, payload PayloadParser, breakstack BreakStack) *ast.TreeNode {
	tree := ast.NewNode(ast.KeywordGroup)
	tree.AppendToken(cur.Next())
	ConsumeTrailingComment(tree, cur)
	tree.AppendNode(payload.ParsePayload(cur, breakstack))
	return tree
}

// ConsumeTrailingComment attaches a comment to node if one follows on the
// same line, optionally separated by non-newline whitespace. Consumes
// nothing otherwise.
func ConsumeTrailingComment(node *ast.TreeNode, cur *Cursor) {
	tok := cur.Peek()
	if tok == nil {
		return
	}
	if tok.Kind == lexer.Whitespace {
		next := cur.PeekAt(1)
		if next == nil || !next.IsComment() {
			return
		}
		node.AppendToken(cur.Next())
		tok = cur.Peek()
	}
	if !tok.IsComment() {
		return
	}
	comment := ast.NewNode(ast.Comment)
	comment.AppendToken(cur.Next())
	node.AppendNode(comment)
}

// OnlyCommentsAndWhitespaceRemain reports whether every unconsumed token up
// to the next break point is whitespace or a comment; used by grammars that
// switch state on the tail of the argument list
func OnlyCommentsAndWhitespaceRemain(cur *Cursor, breakstack BreakStack) bool {
	for _, tok := range cur.Rest() {
		if tok.IsWhitespace() || tok.IsComment() {
			continue
		}
		if breakstack.ShouldBreak(tok) {
			return true
		}
		return false
	}
	return true
}

// assertProgress panics if a grammar dispatch consumed no tokens. A grammar
// that cannot consume the token it dispatched on is a framework defect, not
// an input error.
func assertProgress(cur *Cursor, before int, tok lexer.Token) {
	if cur.Remaining() >= before {
		panic(fmt.Sprintf("parser: no progress at %s on token %q", tok.Location(), tok.Spelling))
	}
}
