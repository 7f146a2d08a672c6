// File: positional.go
// Title: Positional Argument Parsing
// Description: Implements the arity-bounded positional parser and the
//              payload parser abstraction used for keyword payloads.
// Author: kumekay
// Version: v0.1.0
// Created: 2026-08-05
// Modified: 2026-08-05
//
// Change History:
// - 2026-08-05 v0.1.0: Initial positional parser implementation

package parser

import (
	"strings"

	"github.com/kumekay/cmake-format/cmakelang/ast"
	"github.com/kumekay/cmake-format/cmakelang/lexer"
)

// PayloadParser parses the payload following a keyword. Payloads are either
// arity-bounded positional lists or full sub-grammars.
type PayloadParser interface {
	ParsePayload(cur *Cursor, breakstack BreakStack) *ast.TreeNode
}

// ParseFunc adapts a grammar function to the PayloadParser interface
type ParseFunc func(cur *Cursor, breakstack BreakStack) *ast.TreeNode

// ParsePayload invokes the function
func (f ParseFunc) ParsePayload(cur *Cursor, breakstack BreakStack) *ast.TreeNode {
	return f(cur, breakstack)
}

// PositionalParser parses an arity-bounded positional list. Flags lists the
// zero-argument keywords recognized inside the payload itself; they are
// rendered as flag nodes rather than arguments.
type PositionalParser struct {
	Arity Arity
	Flags []string
}

// ParsePayload parses the positional list
func (p PositionalParser) ParsePayload(cur *Cursor, breakstack BreakStack) *ast.TreeNode {
	return ParsePositionals(cur, p.Arity, p.Flags, breakstack)
}

// ParsePositionals parses up to the arity bound of positional arguments into
// a positional group. Flags are matched case-insensitively against flags and
// become flag nodes; each argument may carry a trailing comment.
func ParsePositionals(cur *Cursor, arity Arity, flags []string, breakstack BreakStack) *ast.TreeNode {
	tree := ast.NewNode(ast.PositionalGroup)

	flagSet := make(map[string]struct{}, len(flags))
	for _, flag := range flags {
		flagSet[strings.ToUpper(flag)] = struct{}{}
	}

	consumed := 0
	for cur.Remaining() > 0 {
		tok := *cur.Peek()

		if tok.Kind == lexer.RightParen {
			break
		}
		if arity.Full(consumed) {
			break
		}
		if breakstack.ShouldBreak(tok) {
			// An exact arity that is not yet satisfied wins over a parent
			// keyword. This keeps e.g. the second "runtime" of
			// install(RUNTIME COMPONENT runtime) from matching the RUNTIME
			// sub-group keyword.
			if !(arity.Kind == ArityExact && consumed < arity.Count) {
				break
			}
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

		kind := ast.Argument
		if _, ok := flagSet[NormalizedKeyword(tok)]; ok {
			kind = ast.Flag
		}
		child := ast.NewNode(kind)
		child.AppendToken(cur.Next())
		ConsumeTrailingComment(child, cur)
		tree.AppendNode(child)
		consumed++
	}

	return tree
}
