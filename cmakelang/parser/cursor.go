// File: cursor.go
// Title: Token Cursor
// Description: Implements an index-based cursor over an immutable token
//              slice. Grammars consume tokens through the cursor; remaining
//              token counts back the engine's forward-progress assertion.
// Author: kumekay
// Version: v0.1.0
// Created: 2026-08-05
// Modified: 2026-08-05
//
// Change History:
// - 2026-08-05 v0.1.0: Initial cursor implementation

package parser

import (
	"github.com/kumekay/cmake-format/cmakelang/lexer"
)

// Cursor is a single-writer position into an immutable token sequence.
// Exactly one grammar invocation owns the cursor at a time; nested grammars
// receive the same cursor and advance it in place.
type Cursor struct {
	tokens []lexer.Token
	pos    int
}

// NewCursor creates a cursor at the start of the given token sequence. The
// slice is not copied; callers must not mutate it afterwards.
func NewCursor(tokens []lexer.Token) *Cursor {
	return &Cursor{tokens: tokens}
}

// Peek returns the next token without consuming it, or nil when exhausted
func (c *Cursor) Peek() *lexer.Token {
	return c.PeekAt(0)
}

// PeekAt returns the token at the given lookahead distance without consuming
// anything, or nil when fewer tokens remain
func (c *Cursor) PeekAt(n int) *lexer.Token {
	if c.pos+n >= len(c.tokens) {
		return nil
	}
	return &c.tokens[c.pos+n]
}

// Next consumes and returns the next token. Calling Next on an exhausted
// cursor is a framework defect and panics.
func (c *Cursor) Next() lexer.Token {
	if c.pos >= len(c.tokens) {
		panic("parser: Next() called on exhausted token cursor")
	}
	tok := c.tokens[c.pos]
	c.pos++
	return tok
}

// Remaining returns the number of unconsumed tokens
func (c *Cursor) Remaining() int {
	return len(c.tokens) - c.pos
}

// Rest returns the unconsumed tail of the token sequence without consuming
// it; used for semantic-token lookahead
func (c *Cursor) Rest() []lexer.Token {
	return c.tokens[c.pos:]
}
