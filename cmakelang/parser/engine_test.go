// File: engine_test.go
// Title: Grammar Engine Unit Tests
// Description: Tests for the standard grammar engine, positional parsing,
//              arity handling, and trailing comment attachment.
// Author: kumekay
// Version: v0.1.0
// Created: 2026-08-05
// Modified: 2026-08-05
//
// Change History:
// - 2026-08-05 v0.1.0: Initial test suite

package parser

import (
	"strings"
	"testing"

	"github.com/kumekay/cmake-format/cmakelang/ast"
	"github.com/kumekay/cmake-format/cmakelang/lexer"
)

// mustTokenize lexes the input or fails the test
func mustTokenize(t *testing.T, input string) []lexer.Token {
	t.Helper()
	tokens, err := lexer.Tokenize(input)
	if err != nil {
		t.Fatalf("Tokenize(%q) failed: %v", input, err)
	}
	return tokens
}

// kindsOf formats a tree's pre-order kind sequence for comparison
func kindsOf(tree *ast.TreeNode) string {
	kinds := ast.KindSequence(tree)
	parts := make([]string, len(kinds))
	for i, k := range kinds {
		parts[i] = k.String()
	}
	return strings.Join(parts, " ")
}

func TestParseStandard_PositionalsAndKwargs(t *testing.T) {
	input := "foo bar DESTINATION lib"
	cur := NewCursor(mustTokenize(t, input))

	kwargs := map[string]PayloadParser{
		"DESTINATION": PositionalParser{Arity: Exactly(1)},
	}
	tree := ParseStandard(cur, OneOrMore(), kwargs, nil, NewBreakStack())

	want := "ARGUMENT_GROUP POSITIONAL_GROUP ARGUMENT ARGUMENT KEYWORD_GROUP POSITIONAL_GROUP ARGUMENT"
	if got := kindsOf(tree); got != want {
		t.Errorf("Kind sequence:\n  got  %s\n  want %s", got, want)
	}

	if cur.Remaining() != 0 {
		t.Errorf("Expected exhausted cursor, %d tokens remain", cur.Remaining())
	}
	if tree.Text() != input {
		t.Errorf("Lossless render failed: got %q, want %q", tree.Text(), input)
	}
}

func TestParseStandard_FlagsBecomeFlagNodes(t *testing.T) {
	input := "mylib IMPORTED GLOBAL"
	cur := NewCursor(mustTokenize(t, input))

	tree := ParseStandard(cur, OneOrMore(), nil, []string{"IMPORTED", "GLOBAL"}, NewBreakStack())

	want := "ARGUMENT_GROUP POSITIONAL_GROUP ARGUMENT FLAG FLAG"
	if got := kindsOf(tree); got != want {
		t.Errorf("Kind sequence:\n  got  %s\n  want %s", got, want)
	}
	if tree.Text() != input {
		t.Errorf("Lossless render failed: got %q, want %q", tree.Text(), input)
	}
}

func TestParseStandard_StopsAtRightParen(t *testing.T) {
	cur := NewCursor(mustTokenize(t, "foo bar) trailing"))

	tree := ParseStandard(cur, OneOrMore(), nil, nil, NewBreakStack())

	if tree.Text() != "foo bar" {
		t.Errorf("Expected group text %q, got %q", "foo bar", tree.Text())
	}
	next := cur.Peek()
	if next == nil || next.Kind != lexer.RightParen {
		t.Fatalf("Expected cursor at right paren, got %v", next)
	}
}

func TestParseStandard_CaseInsensitiveKeywords(t *testing.T) {
	cur := NewCursor(mustTokenize(t, "foo destination lib"))

	kwargs := map[string]PayloadParser{
		"DESTINATION": PositionalParser{Arity: Exactly(1)},
	}
	tree := ParseStandard(cur, OneOrMore(), kwargs, nil, NewBreakStack())

	want := "ARGUMENT_GROUP POSITIONAL_GROUP ARGUMENT KEYWORD_GROUP POSITIONAL_GROUP ARGUMENT"
	if got := kindsOf(tree); got != want {
		t.Errorf("Kind sequence:\n  got  %s\n  want %s", got, want)
	}
}

func TestParseStandard_VariableReferenceIsNotKeyword(t *testing.T) {
	cur := NewCursor(mustTokenize(t, "${DESTINATION} lib"))

	kwargs := map[string]PayloadParser{
		"DESTINATION": PositionalParser{Arity: Exactly(1)},
	}
	tree := ParseStandard(cur, OneOrMore(), kwargs, nil, NewBreakStack())

	// Both tokens land in one positional group; no keyword group is opened
	want := "ARGUMENT_GROUP POSITIONAL_GROUP ARGUMENT ARGUMENT"
	if got := kindsOf(tree); got != want {
		t.Errorf("Kind sequence:\n  got  %s\n  want %s", got, want)
	}
}

func TestParseStandard_StandaloneComment(t *testing.T) {
	input := "foo\n# a comment\nbar"
	cur := NewCursor(mustTokenize(t, input))

	tree := ParseStandard(cur, Exactly(1), nil, nil, NewBreakStack())

	// The comment sits between two single-argument positional groups
	want := "ARGUMENT_GROUP POSITIONAL_GROUP ARGUMENT COMMENT POSITIONAL_GROUP ARGUMENT"
	if got := kindsOf(tree); got != want {
		t.Errorf("Kind sequence:\n  got  %s\n  want %s", got, want)
	}
	if tree.Text() != input {
		t.Errorf("Lossless render failed: got %q, want %q", tree.Text(), input)
	}
}

func TestParsePositionals_TrailingComment(t *testing.T) {
	input := "foo # keep me\nbar"
	cur := NewCursor(mustTokenize(t, input))

	tree := ParsePositionals(cur, OneOrMore(), nil, NewBreakStack())

	if len(tree.Children) == 0 {
		t.Fatal("Expected children in positional group")
	}
	first, ok := tree.Children[0].(*ast.TreeNode)
	if !ok || first.Kind != ast.Argument {
		t.Fatalf("Expected first child ARGUMENT, got %v", tree.Children[0])
	}
	if first.Text() != "foo # keep me" {
		t.Errorf("Expected trailing comment attached to argument, got %q", first.Text())
	}
	if tree.Text() != input {
		t.Errorf("Lossless render failed: got %q, want %q", tree.Text(), input)
	}
}

func TestParsePositionals_ExactArityConsumesParentKeyword(t *testing.T) {
	// An unsatisfied exact arity consumes a token even when a parent keyword
	// matches, so value arguments spelled like keywords parse as values
	cur := NewCursor(mustTokenize(t, "COMPONENT foo"))
	breakstack := NewBreakStack().With(NewKeywordBreaker("COMPONENT"))

	tree := ParsePositionals(cur, Exactly(1), nil, breakstack)

	want := "POSITIONAL_GROUP ARGUMENT"
	if got := kindsOf(tree); got != want {
		t.Errorf("Kind sequence:\n  got  %s\n  want %s", got, want)
	}
	if tree.Text() != "COMPONENT" {
		t.Errorf("Expected group text %q, got %q", "COMPONENT", tree.Text())
	}
}

func TestParsePositionals_BreaksOnSatisfiedArity(t *testing.T) {
	cur := NewCursor(mustTokenize(t, "one two three"))

	tree := ParsePositionals(cur, Exactly(2), nil, NewBreakStack())

	want := "POSITIONAL_GROUP ARGUMENT ARGUMENT"
	if got := kindsOf(tree); got != want {
		t.Errorf("Kind sequence:\n  got  %s\n  want %s", got, want)
	}
	if cur.Remaining() == 0 {
		t.Error("Expected unconsumed tokens after exact arity")
	}
}

func TestParseStandard_ZeroPositionalArity(t *testing.T) {
	// A zero positional arity never claims a token on its own; unclaimed
	// tokens must still be consumed as excess rather than stall the loop
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "Flag only",
			input: "FORCE",
			want:  "ARGUMENT_GROUP POSITIONAL_GROUP FLAG",
		},
		{
			name:  "Excess arguments",
			input: "a b",
			want:  "ARGUMENT_GROUP POSITIONAL_GROUP ARGUMENT ARGUMENT",
		},
		{
			name:  "Excess before keyword",
			input: "a DESTINATION lib",
			want:  "ARGUMENT_GROUP POSITIONAL_GROUP ARGUMENT KEYWORD_GROUP POSITIONAL_GROUP ARGUMENT",
		},
	}

	kwargs := map[string]PayloadParser{
		"DESTINATION": PositionalParser{Arity: Exactly(1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cur := NewCursor(mustTokenize(t, tt.input))
			tree := ParseStandard(cur, Exactly(0), kwargs, []string{"FORCE"}, NewBreakStack())
			if got := kindsOf(tree); got != tt.want {
				t.Errorf("Kind sequence:\n  got  %s\n  want %s", got, tt.want)
			}
			if tree.Text() != tt.input {
				t.Errorf("Lossless render failed: got %q, want %q", tree.Text(), tt.input)
			}
		})
	}
}

func TestParseStandard_NonConsumingPayloadStillProgresses(t *testing.T) {
	// The keyword token itself is progress, so a payload parser that
	// consumes nothing must not trip the progress assertion
	input := "DESTINATION lib"
	cur := NewCursor(mustTokenize(t, input))

	kwargs := map[string]PayloadParser{
		"DESTINATION": ParseFunc(func(cur *Cursor, breakstack BreakStack) *ast.TreeNode {
			return ast.NewNode(ast.PositionalGroup)
		}),
	}
	tree := ParseStandard(cur, ZeroOrMore(), kwargs, nil, NewBreakStack())

	want := "ARGUMENT_GROUP KEYWORD_GROUP POSITIONAL_GROUP POSITIONAL_GROUP ARGUMENT"
	if got := kindsOf(tree); got != want {
		t.Errorf("Kind sequence:\n  got  %s\n  want %s", got, want)
	}
	if tree.Text() != input {
		t.Errorf("Lossless render failed: got %q, want %q", tree.Text(), input)
	}
}

func TestAssertProgress(t *testing.T) {
	cur := NewCursor(mustTokenize(t, "foo"))
	tok := *cur.Peek()

	// A dispatch that consumed at least one token passes
	assertProgress(cur, cur.Remaining()+1, tok)

	defer func() {
		if recover() == nil {
			t.Error("Expected panic for a dispatch that consumed nothing")
		}
	}()
	assertProgress(cur, cur.Remaining(), tok)
}

func TestParsePermissive_KeywordsAreArguments(t *testing.T) {
	input := "TARGETS foo DESTINATION bar"
	cur := NewCursor(mustTokenize(t, input))

	tree := ParsePermissive(cur, NewBreakStack())

	want := "ARGUMENT_GROUP POSITIONAL_GROUP ARGUMENT ARGUMENT ARGUMENT ARGUMENT"
	if got := kindsOf(tree); got != want {
		t.Errorf("Kind sequence:\n  got  %s\n  want %s", got, want)
	}
	if tree.Text() != input {
		t.Errorf("Lossless render failed: got %q, want %q", tree.Text(), input)
	}
}

func TestConsumeTrailingComment(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantText  string
		remaining int
	}{
		{
			name:      "Comment after space",
			input:     " # note\nrest",
			wantText:  " # note",
			remaining: 2, // newline and rest
		},
		{
			name:      "Comment immediately",
			input:     "# note\nrest",
			wantText:  "# note",
			remaining: 2,
		},
		{
			name:      "Newline blocks attachment",
			input:     "\n# note",
			wantText:  "",
			remaining: 2,
		},
		{
			name:      "No comment",
			input:     " rest",
			wantText:  "",
			remaining: 2,
		},
		{
			name:      "Empty input",
			input:     "",
			wantText:  "",
			remaining: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cur := NewCursor(mustTokenize(t, tt.input))
			node := ast.NewNode(ast.Argument)
			ConsumeTrailingComment(node, cur)
			if node.Text() != tt.wantText {
				t.Errorf("Attached text %q, want %q", node.Text(), tt.wantText)
			}
			if cur.Remaining() != tt.remaining {
				t.Errorf("Remaining %d, want %d", cur.Remaining(), tt.remaining)
			}
		})
	}
}

func TestOnlyCommentsAndWhitespaceRemain(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{
			name:  "Empty",
			input: "",
			want:  true,
		},
		{
			name:  "Comment then paren",
			input: "# note\n)",
			want:  true,
		},
		{
			name:  "Comment then argument",
			input: "# note\nfoo)",
			want:  false,
		},
		{
			name:  "Whitespace only",
			input: " \n\t",
			want:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cur := NewCursor(mustTokenize(t, tt.input))
			if got := OnlyCommentsAndWhitespaceRemain(cur, NewBreakStack()); got != tt.want {
				t.Errorf("OnlyCommentsAndWhitespaceRemain(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseArity(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Arity
		wantErr bool
	}{
		{
			name:  "Plus",
			input: "+",
			want:  OneOrMore(),
		},
		{
			name:  "Star",
			input: "*",
			want:  ZeroOrMore(),
		},
		{
			name:  "Exact",
			input: "3",
			want:  Exactly(3),
		},
		{
			name:    "Negative",
			input:   "-1",
			wantErr: true,
		},
		{
			name:    "Garbage",
			input:   "many",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseArity(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseArity(%q) expected error, got %v", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseArity(%q) failed: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseArity(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
