// File: tags.go
// Title: Comment Tags
// Description: Extracts formatter directives embedded in comments. Tags are
//              spelled either with an explicit "cmake-format:" or "cmf:"
//              prefix, or as a bare single-word comment.
// Author: kumekay
// Version: v0.1.0
// Created: 2026-08-05
// Modified: 2026-08-05
//
// Change History:
// - 2026-08-05 v0.1.0: Initial tag extraction

package parser

import (
	"strings"

	"github.com/kumekay/cmake-format/cmakelang/lexer"
)

// Tag is a formatter directive carried in a comment
type Tag int

const (
	// TagNone means the comment carries no directive
	TagNone Tag = iota

	// TagSortable requests sorting of the surrounding group
	TagSortable

	// TagUnsortable forbids sorting of the surrounding group
	TagUnsortable
)

// String returns the canonical spelling of the tag
func (t Tag) String() string {
	switch t {
	case TagSortable:
		return "sortable"
	case TagUnsortable:
		return "unsortable"
	default:
		return "none"
	}
}

// ExtractTag returns the directive carried by a comment token. Non-comment
// tokens and comments without a recognized directive yield TagNone; there is
// no error case.
func ExtractTag(tok lexer.Token) Tag {
	if !tok.IsComment() {
		return TagNone
	}
	text := strings.ToLower(strings.TrimSpace(commentText(tok)))
	for _, prefix := range []string{"cmake-format:", "cmf:"} {
		if strings.HasPrefix(text, prefix) {
			fields := strings.Fields(text[len(prefix):])
			if len(fields) == 0 {
				return TagNone
			}
			return tagWord(fields[0])
		}
	}
	// Without a prefix the whole comment must be the tag word
	return tagWord(text)
}

func tagWord(word string) Tag {
	switch word {
	case "sortable", "sort":
		return TagSortable
	case "unsortable", "unsort":
		return TagUnsortable
	}
	return TagNone
}

// commentText strips the comment markers from a comment token's spelling
func commentText(tok lexer.Token) string {
	s := tok.Spelling
	if tok.Kind == lexer.LineComment {
		return strings.TrimLeft(s, "#")
	}
	s = strings.TrimPrefix(s, "#")
	if !strings.HasPrefix(s, "[") {
		return s
	}
	s = s[1:]
	eq := 0
	for eq < len(s) && s[eq] == '=' {
		eq++
	}
	body := s[eq:]
	body = strings.TrimPrefix(body, "[")
	return strings.TrimSuffix(body, "]"+strings.Repeat("=", eq)+"]")
}
