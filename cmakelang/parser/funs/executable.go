// File: executable.go
// Title: add_executable Grammar
// Description: Implements the grammar for add_executable(). The command has
//              three forms selected by the second semantic argument; the
//              default form uses a custom state machine so that the source
//              list can be marked sortable.
// Author: kumekay
// Version: v0.1.0
// Created: 2026-08-06
// Modified: 2026-08-06
//
// Change History:
// - 2026-08-06 v0.1.0: Initial add_executable grammar

package funs

import (
	"strings"

	"github.com/kumekay/cmake-format/cmakelang/ast"
	"github.com/kumekay/cmake-format/cmakelang/lexer"
	"github.com/kumekay/cmake-format/cmakelang/parser"
	"github.com/kumekay/cmake-format/core/log"
)

// ParseAddExecutable parses add_executable(). The second semantic argument
// discriminates between the imported form, the alias form, and the default
// form:
//
//	add_executable(<name> [WIN32] [MACOSX_BUNDLE] [EXCLUDE_FROM_ALL]
//	               [source1] [source2 ...])
//	add_executable(<name> IMPORTED [GLOBAL])
//	add_executable(<name> ALIAS <target>)
func ParseAddExecutable(cur *parser.Cursor, breakstack parser.BreakStack) *ast.TreeNode {
	second := lexer.NthSemantic(cur.Rest(), 1)
	if second == nil {
		log.Warn("Invalid add_executable() command", log.Fields{
			"location": locationOf(cur),
		})
		return parser.ParsePermissive(cur, breakstack)
	}

	switch strings.ToUpper(second.Spelling) {
	case "IMPORTED":
		return parseAddExecutableImported(cur, breakstack)
	case "ALIAS":
		return parseAddExecutableAlias(cur, breakstack)
	}

	// A variable dereference might hide the discriminator, so sortability
	// is only inferred when the second argument is a plain word
	sortable := !strings.Contains(second.Spelling, "${")
	return parseAddExecutableDefault(cur, breakstack, sortable)
}

// parseAddExecutableImported parses add_executable(<name> IMPORTED [GLOBAL])
func parseAddExecutableImported(cur *parser.Cursor, breakstack parser.BreakStack) *ast.TreeNode {
	return parser.ParseStandard(
		cur, parser.OneOrMore(), nil, []string{"IMPORTED", "GLOBAL"}, breakstack)
}

// parseAddExecutableAlias parses add_executable(<name> ALIAS <target>)
func parseAddExecutableAlias(cur *parser.Cursor, breakstack parser.BreakStack) *ast.TreeNode {
	return parser.ParseStandard(
		cur, parser.Exactly(3), nil, []string{"ALIAS"}, breakstack)
}

// States of the default-form machine, in argument order
const (
	parsingName = iota + 1
	parsingFlags
	parsingSources
)

// parseAddExecutableDefault parses the default form: the target name, then
// any of the three leading flags, then the source list. The source group
// carries the sortable flag unless a comment tag disables it.
func parseAddExecutableDefault(cur *parser.Cursor, breakstack parser.BreakStack, sortable bool) *ast.TreeNode {
	tree := ast.NewNode(ast.ArgumentGroup)

	for cur.Remaining() > 0 && cur.Peek().IsWhitespace() {
		tree.AppendToken(cur.Next())
	}

	state := parsingName
	var pargGroup, srcGroup *ast.TreeNode
	activeDepth := tree

	for cur.Remaining() > 0 {
		tok := *cur.Peek()

		// Parenthetical groups are not allowed in this command, so the first
		// right paren ends the argument list. A paren inside a filename must
		// be quoted and then does not lex as a paren token.
		if tok.Kind == lexer.RightParen {
			break
		}
		if tok.IsWhitespace() {
			activeDepth.AppendToken(cur.Next())
			continue
		}
		if tok.IsComment() {
			if state > parsingName {
				if tag := parser.ExtractTag(tok); tag == parser.TagUnsortable {
					sortable = false
				} else if tag := parser.ExtractTag(tok); tag == parser.TagUnsortable {
					sortable = true
				}
			}
			comment := ast.NewNode(ast.Comment)
			comment.AppendToken(cur.Next())
			activeDepth.AppendNode(comment)
			continue
		}

		switch state {
		case parsingName:
			pargGroup = ast.NewNode(ast.PositionalGroup)
			activeDepth = pargGroup
			tree.AppendNode(pargGroup)

			child := ast.NewNode(ast.Argument)
			child.AppendToken(cur.Next())
			parser.ConsumeTrailingComment(child, cur)
			if trailingTag(child) == parser.TagUnsortable {
				sortable = false
			}
			pargGroup.AppendNode(child)
			state++

		case parsingFlags:
			switch parser.NormalizedKeyword(tok) {
			case "WIN32", "MACOSX_BUNDLE", "EXCLUDE_FROM_ALL":
				child := ast.NewNode(ast.Flag)
				child.AppendToken(cur.Next())
				parser.ConsumeTrailingComment(child, cur)
				if trailingTag(child) == parser.TagUnsortable {
					sortable = false
				}
				pargGroup.AppendNode(child)
			default:
				state++
				srcGroup = ast.NewNode(ast.PositionalGroup)
				srcGroup.SetSortable(sortable)
				activeDepth = srcGroup
				tree.AppendNode(srcGroup)
			}

		case parsingSources:
			child := ast.NewNode(ast.Argument)
			child.AppendToken(cur.Next())
			parser.ConsumeTrailingComment(child, cur)
			srcGroup.AppendNode(child)

			// Trailing comments and whitespace belong to the argument list,
			// not the source group
			if parser.OnlyCommentsAndWhitespaceRemain(cur, breakstack) {
				activeDepth = tree
			}
		}
	}

	return tree
}

// trailingTag returns the tag of the child's trailing comment, if any. A tag
// that trails the name or a flag still precedes the source group and must
// apply to it.
func trailingTag(child *ast.TreeNode) parser.Tag {
	for i := len(child.Children) - 1; i >= 0; i-- {
		if sub, ok := child.Children[i].(*ast.TreeNode); ok && sub.Kind == ast.Comment {
			if toks := sub.Tokens(); len(toks) > 0 {
				return parser.ExtractTag(toks[0])
			}
		}
	}
	return parser.TagNone
}

// locationOf formats the cursor's position for diagnostics
func locationOf(cur *parser.Cursor) string {
	if tok := cur.Peek(); tok != nil {
		return tok.Location()
	}
	return "end of input"
}
