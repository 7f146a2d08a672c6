// File: install.go
// Title: install Grammar
// Description: Implements the grammar for install(). The command has several
//              forms selected by the first semantic argument; the TARGETS
//              form nests designated sub-groups (ARCHIVE, LIBRARY, ...) that
//              share keywords with the enclosing scope and therefore need a
//              custom dispatch loop.
// Author: kumekay
// Version: v0.1.0
// Created: 2026-08-06
// Modified: 2026-08-06
//
// Change History:
// - 2026-08-06 v0.1.0: Initial install grammar

package funs

import (
	"strings"

	"github.com/kumekay/cmake-format/cmakelang/ast"
	"github.com/kumekay/cmake-format/cmakelang/lexer"
	"github.com/kumekay/cmake-format/cmakelang/parser"
	"github.com/kumekay/cmake-format/core/log"
)

// ParseInstall parses install(). The first semantic argument selects the
// form: TARGETS, FILES, PROGRAMS, DIRECTORY, SCRIPT, CODE, or EXPORT.
// Unknown forms are parsed permissively with a warning.
func ParseInstall(cur *parser.Cursor, breakstack parser.BreakStack) *ast.TreeNode {
	discriminator := lexer.FirstSemantic(cur.Rest())
	if discriminator == nil {
		log.Warn("Invalid install() command", log.Fields{
			"location": locationOf(cur),
		})
		return parser.ParsePermissive(cur, breakstack)
	}

	switch strings.ToUpper(discriminator.Spelling) {
	case "TARGETS":
		return parseInstallTargets(cur, breakstack)
	case "FILES", "PROGRAMS":
		return parseInstallFiles(cur, breakstack)
	case "DIRECTORY":
		return parseInstallDirectory(cur, breakstack)
	case "SCRIPT", "CODE":
		return parseInstallScript(cur, breakstack)
	case "EXPORT":
		return parseInstallExport(cur, breakstack)
	}

	log.Warn("Invalid install form", log.Fields{
		"form":     discriminator.Spelling,
		"location": locationOf(cur),
	})
	return parser.ParsePermissive(cur, breakstack)
}

// Designated sub-group keywords of the TARGETS form. Each opens a nested
// scope with the same keyword vocabulary as the enclosing one.
var installDesignatedKwargs = []string{
	"ARCHIVE", "LIBRARY", "RUNTIME", "OBJECTS", "FRAMEWORK",
	"BUNDLE", "PRIVATE_HEADER", "PUBLIC_HEADER", "RESOURCE",
}

// parseInstallTargets parses the TARGETS form:
//
//	install(TARGETS targets... [EXPORT <export-name>]
//	        [[ARCHIVE|LIBRARY|RUNTIME|OBJECTS|FRAMEWORK|BUNDLE|
//	          PRIVATE_HEADER|PUBLIC_HEADER|RESOURCE]
//	         [DESTINATION <dir>]
//	         [PERMISSIONS permissions...]
//	         [CONFIGURATIONS [Debug|Release|...]]
//	         [COMPONENT <component>]
//	         [NAMELINK_COMPONENT <component>]
//	         [OPTIONAL] [EXCLUDE_FROM_ALL]
//	         [NAMELINK_ONLY|NAMELINK_SKIP]
//	        ] [...]
//	        [INCLUDES DESTINATION [<dir> ...]]
//	        )
//
// This is essentially the standard loop, except the designated sub-groups
// share DESTINATION, PERMISSIONS, CONFIGURATIONS, and COMPONENT with the
// enclosing scope, so those keywords cannot go on the sub-group breakstack:
// a sub-group ends only on another sub-group keyword or on INCLUDES.
func parseInstallTargets(cur *parser.Cursor, breakstack parser.BreakStack) *ast.TreeNode {
	kwargs := map[string]parser.PayloadParser{
		"TARGETS":  parser.PositionalParser{Arity: parser.OneOrMore()},
		"EXPORT":   parser.PositionalParser{Arity: parser.Exactly(1)},
		"INCLUDES": parser.PositionalParser{Arity: parser.OneOrMore(), Flags: []string{"DESTINATION"}},
		// Keywords shared with the designated sub-groups
		"DESTINATION":        parser.PositionalParser{Arity: parser.Exactly(1)},
		"PERMISSIONS":        parser.PositionalParser{Arity: parser.OneOrMore()},
		"CONFIGURATIONS":     parser.PositionalParser{Arity: parser.OneOrMore()},
		"COMPONENT":          parser.PositionalParser{Arity: parser.Exactly(1)},
		"NAMELINK_COMPONENT": parser.PositionalParser{Arity: parser.Exactly(1)},
	}
	flags := []string{
		"OPTIONAL",
		"EXCLUDE_FROM_ALL",
		"NAMELINK_ONLY",
		"NAMELINK_SKIP",
	}

	keywords := make([]string, 0, len(kwargs))
	for kw := range kwargs {
		keywords = append(keywords, kw)
	}

	// Sub-groups break only on the start of another sub-group or on INCLUDES
	subtreeBreakstack := breakstack.With(parser.NewKeywordBreaker(
		append(append([]string{}, installDesignatedKwargs...), "INCLUDES")...))

	// Keyword payloads at this depth break on any other keyword or flag
	kwargBreakstack := breakstack.With(parser.NewKeywordBreaker(
		concat(keywords, installDesignatedKwargs, flags)...))

	// Positionals at this depth break only on keywords
	positionalBreakstack := breakstack.With(parser.NewKeywordBreaker(
		concat(keywords, installDesignatedKwargs)...))

	designated := make(map[string]struct{}, len(installDesignatedKwargs))
	for _, kw := range installDesignatedKwargs {
		designated[kw] = struct{}{}
	}

	tree := ast.NewNode(ast.ArgumentGroup)
	for cur.Remaining() > 0 && cur.Peek().IsWhitespace() {
		tree.AppendToken(cur.Next())
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
		word := parser.NormalizedKeyword(tok)

		var subtree *ast.TreeNode
		if _, ok := designated[word]; ok {
			// Each sub-group recursively shares this grammar
			subtree = parser.ParseKwarg(cur, parser.ParseFunc(parseInstallTargets), subtreeBreakstack)
		} else if payload, ok := kwargs[word]; ok {
			subtree = parser.ParseKwarg(cur, payload, kwargBreakstack)
		} else {
			subtree = parser.ParsePositionals(cur, parser.OneOrMore(), flags, positionalBreakstack)
		}

		if cur.Remaining() >= before {
			panic("install targets grammar made no progress")
		}
		tree.AppendNode(subtree)
	}

	return tree
}

// parseInstallFiles parses the FILES and PROGRAMS forms:
//
//	install(<FILES|PROGRAMS> files...
//	        TYPE <type> | DESTINATION <dir>
//	        [PERMISSIONS permissions...]
//	        [CONFIGURATIONS [Debug|Release|...]]
//	        [COMPONENT <component>]
//	        [RENAME <name>] [OPTIONAL] [EXCLUDE_FROM_ALL])
func parseInstallFiles(cur *parser.Cursor, breakstack parser.BreakStack) *ast.TreeNode {
	return parser.ParseStandard(
		cur, parser.ZeroOrMore(),
		map[string]parser.PayloadParser{
			"FILES":          parser.PositionalParser{Arity: parser.OneOrMore()},
			"PROGRAMS":       parser.PositionalParser{Arity: parser.OneOrMore()},
			"TYPE":           parser.PositionalParser{Arity: parser.Exactly(1)},
			"DESTINATION":    parser.PositionalParser{Arity: parser.Exactly(1)},
			"PERMISSIONS":    parser.PositionalParser{Arity: parser.OneOrMore()},
			"CONFIGURATIONS": parser.PositionalParser{Arity: parser.OneOrMore()},
			"COMPONENT":      parser.PositionalParser{Arity: parser.Exactly(1)},
			"RENAME":         parser.PositionalParser{Arity: parser.Exactly(1)},
		},
		[]string{"OPTIONAL", "EXCLUDE_FROM_ALL"},
		breakstack)
}

// parseInstallDirectory parses the DIRECTORY form:
//
//	install(DIRECTORY dirs...
//	        TYPE <type> | DESTINATION <dir>
//	        [FILE_PERMISSIONS permissions...]
//	        [DIRECTORY_PERMISSIONS permissions...]
//	        [USE_SOURCE_PERMISSIONS] [OPTIONAL] [MESSAGE_NEVER]
//	        [CONFIGURATIONS [Debug|Release|...]]
//	        [COMPONENT <component>] [EXCLUDE_FROM_ALL]
//	        [FILES_MATCHING]
//	        [[PATTERN <pattern> | REGEX <regex>]
//	         [EXCLUDE] [PERMISSIONS permissions...]] [...])
func parseInstallDirectory(cur *parser.Cursor, breakstack parser.BreakStack) *ast.TreeNode {
	return parser.ParseStandard(
		cur, parser.ZeroOrMore(),
		map[string]parser.PayloadParser{
			"DIRECTORY":             parser.PositionalParser{Arity: parser.OneOrMore()},
			"TYPE":                  parser.PositionalParser{Arity: parser.Exactly(1)},
			"DESTINATION":           parser.PositionalParser{Arity: parser.Exactly(1)},
			"FILE_PERMISSIONS":      parser.PositionalParser{Arity: parser.OneOrMore()},
			"DIRECTORY_PERMISSIONS": parser.PositionalParser{Arity: parser.OneOrMore()},
			"CONFIGURATIONS":        parser.PositionalParser{Arity: parser.OneOrMore()},
			"COMPONENT":             parser.PositionalParser{Arity: parser.Exactly(1)},
			"RENAME":                parser.PositionalParser{Arity: parser.Exactly(1)},
			"PATTERN":               parser.ParseFunc(parsePattern),
			"REGEX":                 parser.ParseFunc(parsePattern),
		},
		[]string{"USER_SOURCE_PERMISSIONS", "OPTIONAL", "MESSAGE_NEVER", "FILES_MATCHING"},
		breakstack)
}

// parseInstallScript parses the SCRIPT and CODE forms:
//
//	install([[SCRIPT <file>] [CODE <code>]]
//	        [COMPONENT <component>] [EXCLUDE_FROM_ALL] [...])
func parseInstallScript(cur *parser.Cursor, breakstack parser.BreakStack) *ast.TreeNode {
	return parser.ParseStandard(
		cur, parser.ZeroOrMore(),
		map[string]parser.PayloadParser{
			"SCRIPT":    parser.PositionalParser{Arity: parser.Exactly(1)},
			"CODE":      parser.PositionalParser{Arity: parser.Exactly(1)},
			"COMPONENT": parser.PositionalParser{Arity: parser.Exactly(1)},
		},
		[]string{"EXCLUDE_FROM_ALL"},
		breakstack)
}

// parseInstallExport parses the EXPORT form:
//
//	install(EXPORT <export-name> DESTINATION <dir>
//	        [NAMESPACE <namespace>] [FILE <name>.cmake]
//	        [PERMISSIONS permissions...]
//	        [CONFIGURATIONS [Debug|Release|...]]
//	        [COMPONENT <component>]
//	        [EXCLUDE_FROM_ALL])
func parseInstallExport(cur *parser.Cursor, breakstack parser.BreakStack) *ast.TreeNode {
	return parser.ParseStandard(
		cur, parser.ZeroOrMore(),
		map[string]parser.PayloadParser{
			"EXPORT":         parser.PositionalParser{Arity: parser.Exactly(1)},
			"DESTINATION":    parser.PositionalParser{Arity: parser.Exactly(1)},
			"NAMESPACE":      parser.PositionalParser{Arity: parser.Exactly(1)},
			"FILE":           parser.PositionalParser{Arity: parser.Exactly(1)},
			"PERMISSIONS":    parser.PositionalParser{Arity: parser.OneOrMore()},
			"CONFIGURATIONS": parser.PositionalParser{Arity: parser.OneOrMore()},
			"COMPONENT":      parser.PositionalParser{Arity: parser.Exactly(1)},
		},
		[]string{"EXCLUDE_FROM_ALL"},
		breakstack)
}

// parsePattern parses a PATTERN or REGEX payload:
//
//	[PATTERN <pattern> | REGEX <regex>]
//	[EXCLUDE] [PERMISSIONS permissions...]
func parsePattern(cur *parser.Cursor, breakstack parser.BreakStack) *ast.TreeNode {
	return parser.ParseStandard(
		cur, parser.Exactly(1),
		map[string]parser.PayloadParser{
			"PERMISSIONS": parser.PositionalParser{Arity: parser.OneOrMore()},
		},
		[]string{"EXCLUDE"},
		breakstack)
}

// concat joins keyword slices into a fresh slice
func concat(slices ...[]string) []string {
	var out []string
	for _, s := range slices {
		out = append(out, s...)
	}
	return out
}
