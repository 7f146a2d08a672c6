// File: nodes.go
// Title: Argument Tree Node Definitions
// Description: Defines the tree node type produced by command grammars.
//              Each node owns an ordered sequence of children that are either
//              nested nodes or single tokens, preserving original token order
//              so the tree can be rendered back losslessly.
// Author: kumekay
// Version: v0.1.0
// Created: 2026-08-04
// Modified: 2026-08-04
//
// Change History:
// - 2026-08-04 v0.1.0: Initial tree node definitions

package ast

import (
	"fmt"
	"strings"

	"github.com/kumekay/cmake-format/cmakelang/lexer"
)

// NodeKind represents the classification of a tree node
type NodeKind int

const (
	// ArgumentGroup is the root grouping of a command's argument list
	ArgumentGroup NodeKind = iota

	// PositionalGroup groups consecutive bare positional arguments
	PositionalGroup

	// Argument is a single positional argument token, possibly with a
	// trailing comment attached
	Argument

	// Flag is a zero-argument keyword
	Flag

	// KeywordGroup is a keyword together with its parsed payload
	KeywordGroup

	// Comment is a standalone comment at the current nesting depth
	Comment

	// Body wraps a whole command invocation: name, parens, and arguments
	Body
)

// String returns a string representation of the node kind
func (k NodeKind) String() string {
	switch k {
	case ArgumentGroup:
		return "ARGUMENT_GROUP"
	case PositionalGroup:
		return "POSITIONAL_GROUP"
	case Argument:
		return "ARGUMENT"
	case Flag:
		return "FLAG"
	case KeywordGroup:
		return "KEYWORD_GROUP"
	case Comment:
		return "COMMENT"
	case Body:
		return "BODY"
	default:
		return "UNKNOWN"
	}
}

// MetaSortable is the metadata key read by the layout engine to decide
// whether a group's elements may be reordered when re-rendering
const MetaSortable = "sortable"

// Meta holds optional per-node metadata for the layout engine
type Meta map[string]interface{}

// Child is either a nested *TreeNode or a single TokenChild. Every child can
// enumerate the tokens it owns in source order.
type Child interface {
	// Tokens returns the tokens owned by this child, in source order
	Tokens() []lexer.Token

	// Text returns the concatenated spelling of all owned tokens
	Text() string

	childNode() // marker method
}

// TokenChild wraps a single token as a tree child
type TokenChild struct {
	Token lexer.Token
}

// Tokens returns the wrapped token
func (t TokenChild) Tokens() []lexer.Token {
	return []lexer.Token{t.Token}
}

// Text returns the token's spelling
func (t TokenChild) Text() string {
	return t.Token.Spelling
}

func (t TokenChild) childNode() {}

// TreeNode is a node of the argument tree. A node exclusively owns its
// children; no token appears in more than one node.
type TreeNode struct {
	Kind     NodeKind
	Children []Child
	Meta     Meta
}

// NewNode creates a tree node of the given kind
func NewNode(kind NodeKind) *TreeNode {
	return &TreeNode{Kind: kind}
}

// AppendToken appends a single token child
func (n *TreeNode) AppendToken(tok lexer.Token) {
	n.Children = append(n.Children, TokenChild{Token: tok})
}

// AppendNode appends a nested node child
func (n *TreeNode) AppendNode(child *TreeNode) {
	n.Children = append(n.Children, child)
}

// SetMeta sets a metadata value on the node
func (n *TreeNode) SetMeta(key string, value interface{}) {
	if n.Meta == nil {
		n.Meta = make(Meta)
	}
	n.Meta[key] = value
}

// SetSortable records whether the layout engine may reorder this group
func (n *TreeNode) SetSortable(sortable bool) {
	n.SetMeta(MetaSortable, sortable)
}

// Sortable reports the sortable metadata flag; groups without the flag are
// not reorderable
func (n *TreeNode) Sortable() bool {
	if n.Meta == nil {
		return false
	}
	v, ok := n.Meta[MetaSortable].(bool)
	return ok && v
}

// Tokens returns all tokens reachable from this node, in source order
func (n *TreeNode) Tokens() []lexer.Token {
	var out []lexer.Token
	for _, child := range n.Children {
		out = append(out, child.Tokens()...)
	}
	return out
}

// Text returns the concatenated spelling of all reachable tokens. For a
// fully parsed tree this reproduces the original input exactly.
func (n *TreeNode) Text() string {
	var sb strings.Builder
	for _, child := range n.Children {
		sb.WriteString(child.Text())
	}
	return sb.String()
}

func (n *TreeNode) childNode() {}

// String returns a multi-line indented dump of the tree for debugging and
// the dump-parse command
func (n *TreeNode) String() string {
	var sb strings.Builder
	n.dump(&sb, 0)
	return sb.String()
}

func (n *TreeNode) dump(sb *strings.Builder, depth int) {
	indent := strings.Repeat("  ", depth)
	sb.WriteString(indent)
	sb.WriteString(n.Kind.String())
	if n.Meta != nil {
		if v, ok := n.Meta[MetaSortable].(bool); ok {
			fmt.Fprintf(sb, " sortable=%v", v)
		}
	}
	sb.WriteString("\n")

	for _, child := range n.Children {
		switch c := child.(type) {
		case *TreeNode:
			c.dump(sb, depth+1)
		case TokenChild:
			if c.Token.IsWhitespace() {
				continue // Whitespace carries no structure worth printing
			}
			fmt.Fprintf(sb, "%s  %s %q\n", indent, c.Token.Kind.String(), c.Token.Spelling)
		}
	}
}
