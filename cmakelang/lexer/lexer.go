// File: lexer.go
// Title: CMake Listfile Lexical Analyzer
// Description: Implements the lexical analysis phase for CMake command
//              invocations. Converts raw source text into a lossless token
//              stream: whitespace and comments are emitted as tokens so that
//              concatenating all spellings reproduces the input exactly.
// Author: kumekay
// Version: v0.1.0
// Created: 2026-08-04
// Modified: 2026-08-04
//
// Change History:
// - 2026-08-04 v0.1.0: Initial lexer implementation

package lexer

import (
	"fmt"
	"strings"
)

// TokenKind represents the classification of a lexical token
type TokenKind int

const (
	// Word is an unquoted argument or command name
	Word TokenKind = iota

	// QuotedString is a double-quoted argument, spelling includes the quotes
	QuotedString

	// BracketComment is a #[[ ... ]] comment (with optional = padding)
	BracketComment

	// LineComment is a # comment running to the end of the line
	LineComment

	// LeftParen is the opening delimiter of an argument list
	LeftParen

	// RightParen is the closing delimiter of an argument list
	RightParen

	// Whitespace is a run of spaces, tabs, or carriage returns
	Whitespace

	// Newline is a single line feed
	Newline

	// FormFeed is a form feed character
	FormFeed
)

// String returns a string representation of the token kind
func (k TokenKind) String() string {
	switch k {
	case Word:
		return "WORD"
	case QuotedString:
		return "QUOTED_STRING"
	case BracketComment:
		return "BRACKET_COMMENT"
	case LineComment:
		return "LINE_COMMENT"
	case LeftParen:
		return "LEFT_PAREN"
	case RightParen:
		return "RIGHT_PAREN"
	case Whitespace:
		return "WHITESPACE"
	case Newline:
		return "NEWLINE"
	case FormFeed:
		return "FORM_FEED"
	default:
		return "UNKNOWN"
	}
}

// Token represents a lexical token with its exact source spelling and position
type Token struct {
	Kind     TokenKind // Token classification
	Spelling string    // Raw source text, reproduced verbatim when rendering
	Line     int       // Line number (1-based)
	Column   int       // Column number (1-based)
	Offset   int       // Byte offset in input (0-based)
}

// String returns a string representation of the token
func (t Token) String() string {
	return fmt.Sprintf("%s(%q)@%s", t.Kind.String(), t.Spelling, t.Location())
}

// Location returns the source position as "line:column"
func (t Token) Location() string {
	return fmt.Sprintf("%d:%d", t.Line, t.Column)
}

// IsWhitespace reports whether the token is whitespace, a newline, or a
// form feed
func (t Token) IsWhitespace() bool {
	switch t.Kind {
	case Whitespace, Newline, FormFeed:
		return true
	}
	return false
}

// IsComment reports whether the token is a line or bracket comment
func (t Token) IsComment() bool {
	return t.Kind == LineComment || t.Kind == BracketComment
}

// IsSemantic reports whether the token carries grammar meaning, i.e. is
// neither whitespace nor a comment
func (t Token) IsSemantic() bool {
	return !t.IsWhitespace() && !t.IsComment()
}

// FirstSemantic returns the first semantic token of the stream, or nil
func FirstSemantic(tokens []Token) *Token {
	return NthSemantic(tokens, 0)
}

// NthSemantic returns the n-th (0-based) semantic token of the stream, or nil
// if fewer semantic tokens remain
func NthSemantic(tokens []Token, n int) *Token {
	for i := range tokens {
		if !tokens[i].IsSemantic() {
			continue
		}
		if n == 0 {
			return &tokens[i]
		}
		n--
	}
	return nil
}

// Lexer performs lexical analysis of CMake listfile source
type Lexer struct {
	input   string // Input string
	pos     int    // Current position in input (points to current char)
	readPos int    // Current reading position (after current char)
	ch      byte   // Current char under examination
	line    int    // Current line number (1-based)
	column  int    // Current column number (1-based)
}

// New creates a new lexer for the given input
func New(input string) *Lexer {
	l := &Lexer{
		input: input,
		line:  1,
	}
	l.readChar() // Load first character
	return l
}

// Tokenize returns the full lossless token stream for the input
func (l *Lexer) Tokenize() ([]Token, error) {
	var tokens []Token

	for l.ch != 0 {
		tok, err := l.next()
		if err != nil {
			return tokens, err
		}
		tokens = append(tokens, tok)
	}

	return tokens, nil
}

// Tokenize is a convenience function that lexes input in one call
func Tokenize(input string) ([]Token, error) {
	return New(input).Tokenize()
}

// next scans one token starting at the current character
func (l *Lexer) next() (Token, error) {
	start := l.pos
	line := l.line
	column := l.column

	mk := func(kind TokenKind) Token {
		return Token{
			Kind:     kind,
			Spelling: l.input[start:l.pos],
			Line:     line,
			Column:   column,
			Offset:   start,
		}
	}

	switch {
	case l.ch == '\n':
		l.readChar()
		return mk(Newline), nil

	case l.ch == '\f':
		l.readChar()
		return mk(FormFeed), nil

	case l.ch == ' ' || l.ch == '\t' || l.ch == '\r':
		for l.ch == ' ' || l.ch == '\t' || l.ch == '\r' {
			l.readChar()
		}
		return mk(Whitespace), nil

	case l.ch == '(':
		l.readChar()
		return mk(LeftParen), nil

	case l.ch == ')':
		l.readChar()
		return mk(RightParen), nil

	case l.ch == '#':
		if pad, ok := l.peekBracketOpen(1); ok {
			if err := l.readBracket(pad); err != nil {
				return mk(BracketComment), err
			}
			return mk(BracketComment), nil
		}
		for l.ch != 0 && l.ch != '\n' {
			l.readChar()
		}
		return mk(LineComment), nil

	case l.ch == '"':
		if err := l.readQuoted(); err != nil {
			return mk(QuotedString), err
		}
		return mk(QuotedString), nil

	default:
		for l.ch != 0 && !isWordBoundary(l.ch) {
			if l.ch == '\\' {
				// An escaped character, including an escaped separator,
				// stays part of the word
				l.readChar()
				if l.ch == 0 {
					break
				}
			}
			l.readChar()
		}
		return mk(Word), nil
	}
}

// readChar reads the next character and advances position. Line and column
// describe the character being loaded, so a newline token is reported at the
// end of the line it terminates.
func (l *Lexer) readChar() {
	if l.ch == '\n' {
		l.line++
		l.column = 0
	}

	if l.readPos >= len(l.input) {
		l.ch = 0 // NUL represents end of input
	} else {
		l.ch = l.input[l.readPos]
	}

	l.pos = l.readPos
	l.readPos++
	l.column++
}

// peekBracketOpen checks for a bracket opener "[=*[" at the given lookahead
// distance and returns the equals-sign padding length
func (l *Lexer) peekBracketOpen(at int) (pad int, ok bool) {
	i := l.readPos - 1 + at
	if i >= len(l.input) || l.input[i] != '[' {
		return 0, false
	}
	i++
	for i < len(l.input) && l.input[i] == '=' {
		pad++
		i++
	}
	if i < len(l.input) && l.input[i] == '[' {
		return pad, true
	}
	return 0, false
}

// readBracket consumes a bracket comment through its "]=*]" terminator
func (l *Lexer) readBracket(pad int) error {
	line := l.line
	column := l.column
	closer := "]" + strings.Repeat("=", pad) + "]"

	for l.ch != 0 {
		if l.ch == ']' && strings.HasPrefix(l.input[l.pos:], closer) {
			for range closer {
				l.readChar()
			}
			return nil
		}
		l.readChar()
	}

	return fmt.Errorf("unterminated bracket comment at %d:%d", line, column)
}

// readQuoted consumes a double-quoted string including both quotes
func (l *Lexer) readQuoted() error {
	line := l.line
	column := l.column

	l.readChar() // Skip opening quote
	for l.ch != 0 {
		if l.ch == '\\' {
			l.readChar()
			if l.ch == 0 {
				break
			}
			l.readChar()
			continue
		}
		if l.ch == '"' {
			l.readChar() // Consume closing quote
			return nil
		}
		l.readChar()
	}

	return fmt.Errorf("unterminated quoted string at %d:%d", line, column)
}

// isWordBoundary reports whether the character terminates an unquoted word
func isWordBoundary(ch byte) bool {
	switch ch {
	case ' ', '\t', '\r', '\n', '\f', '(', ')', '#', '"':
		return true
	}
	return false
}
