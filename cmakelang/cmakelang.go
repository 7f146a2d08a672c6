// File: cmakelang.go
// Title: Listfile Parsing Facade
// Description: Implements the engine tying lexer, registry, and grammars
//              together: it parses a full command invocation into a body
//              node and compiles user-declared command grammars from the
//              configuration.
// Author: kumekay
// Version: v0.1.0
// Created: 2026-08-07
// Modified: 2026-08-07
//
// Change History:
// - 2026-08-07 v0.1.0: Initial engine implementation

package cmakelang

import (
	"fmt"

	"github.com/kumekay/cmake-format/cmakelang/ast"
	"github.com/kumekay/cmake-format/cmakelang/lexer"
	"github.com/kumekay/cmake-format/cmakelang/parser"
	"github.com/kumekay/cmake-format/cmakelang/registry"
	"github.com/kumekay/cmake-format/core/config"
	"github.com/kumekay/cmake-format/core/log"
)

// Engine parses command invocations using a fixed grammar registry. Engines
// are immutable after construction and safe for concurrent use.
type Engine struct {
	registry *registry.Registry
	logger   *log.Logger
}

// Option configures an Engine during construction
type Option func(*Engine)

// WithLogger sets the logger used for parse diagnostics
func WithLogger(logger *log.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithRegistry replaces the built-in grammar registry
func WithRegistry(reg *registry.Registry) Option {
	return func(e *Engine) {
		e.registry = reg
	}
}

// WithConfig compiles the configuration's additional commands into grammars
// and registers them. Invalid command declarations are skipped with a
// warning; they never fail engine construction.
func WithConfig(cfg *config.Config) Option {
	return func(e *Engine) {
		for name, spec := range cfg.AdditionalCommands {
			grammar, err := CompileGrammar(spec)
			if err != nil {
				e.logger.WarnWithErr("Skipping invalid command declaration", err, log.Fields{
					"command": name,
				})
				continue
			}
			e.registry = e.registry.With(name, grammar)
		}
	}
}

// New creates an engine with the built-in grammars and the given options
func New(opts ...Option) *Engine {
	e := &Engine{
		registry: registry.New(),
		logger:   log.GetDefault().WithName("cmakelang"),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Registry returns the engine's grammar registry
func (e *Engine) Registry() *registry.Registry {
	return e.registry
}

// CompileGrammar builds a standard-shape grammar from a user command
// declaration. An empty positional arity defaults to zero-or-more.
func CompileGrammar(spec config.CommandSpec) (parser.ParseFunc, error) {
	pargSpec := spec.Pargs
	if pargSpec == "" {
		pargSpec = "*"
	}
	npargs, err := parser.ParseArity(pargSpec)
	if err != nil {
		return nil, fmt.Errorf("positional arity: %w", err)
	}

	kwargs := make(map[string]parser.PayloadParser, len(spec.Kwargs))
	for keyword, aritySpec := range spec.Kwargs {
		arity, err := parser.ParseArity(aritySpec)
		if err != nil {
			return nil, fmt.Errorf("keyword %s: %w", keyword, err)
		}
		kwargs[keyword] = parser.PositionalParser{Arity: arity}
	}

	return parser.NewStandardParser(npargs, kwargs, spec.Flags), nil
}

// ParseCommand lexes and parses a single command invocation. The returned
// body node owns every token of the source, so rendering it reproduces the
// input exactly. Malformed invocations are parsed permissively with a logged
// warning; the only error case is a lexical one.
func (e *Engine) ParseCommand(source string) (*ast.TreeNode, error) {
	tokens, err := lexer.Tokenize(source)
	if err != nil {
		return nil, fmt.Errorf("tokenize: %w", err)
	}
	return e.ParseTokens(tokens), nil
}

// ParseTokens parses an already-lexed command invocation into a body node
func (e *Engine) ParseTokens(tokens []lexer.Token) *ast.TreeNode {
	body := ast.NewNode(ast.Body)
	cur := parser.NewCursor(tokens)

	for cur.Remaining() > 0 {
		tok := cur.Peek()
		if tok.IsWhitespace() {
			body.AppendToken(cur.Next())
			continue
		}
		if tok.IsComment() {
			comment := ast.NewNode(ast.Comment)
			comment.AppendToken(cur.Next())
			body.AppendNode(comment)
			continue
		}
		break
	}

	name := cur.Peek()
	if name == nil || name.Kind != lexer.Word {
		e.warnMalformed("Expected a command name", cur)
		body.AppendNode(parser.ParsePermissive(cur, parser.NewBreakStack()))
		e.consumeRest(body, cur)
		return body
	}
	commandName := name.Spelling
	body.AppendToken(cur.Next())

	for cur.Remaining() > 0 && cur.Peek().IsWhitespace() {
		body.AppendToken(cur.Next())
	}

	if tok := cur.Peek(); tok == nil || tok.Kind != lexer.LeftParen {
		e.warnMalformed("Expected ( after command name", cur)
		body.AppendNode(parser.ParsePermissive(cur, parser.NewBreakStack()))
		e.consumeRest(body, cur)
		return body
	}
	body.AppendToken(cur.Next())

	grammar := e.registry.Lookup(commandName)
	body.AppendNode(grammar(cur, parser.NewBreakStack()))

	if tok := cur.Peek(); tok != nil && tok.Kind == lexer.RightParen {
		body.AppendToken(cur.Next())
	} else {
		e.warnMalformed("Unclosed command invocation", cur)
	}

	e.consumeRest(body, cur)
	return body
}

// consumeRest attaches everything after the closing paren to the body so
// the render stays lossless. Semantic leftovers indicate malformed input.
func (e *Engine) consumeRest(body *ast.TreeNode, cur *parser.Cursor) {
	warned := false
	for cur.Remaining() > 0 {
		tok := cur.Next()
		if tok.IsSemantic() && !warned {
			e.logger.Warn("Unparsed trailing tokens", log.Fields{
				"location": tok.Location(),
				"token":    tok.Spelling,
			})
			warned = true
		}
		body.AppendToken(tok)
	}
}

func (e *Engine) warnMalformed(message string, cur *parser.Cursor) {
	location := "end of input"
	if tok := cur.Peek(); tok != nil {
		location = tok.Location()
	}
	e.logger.Warn(message, log.Fields{"location": location})
}
