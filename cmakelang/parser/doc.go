// File: doc.go
// Title: Parser Package Documentation
// Description: Package documentation for the grammar engine.
// Author: kumekay
// Version: v0.1.0
// Created: 2026-08-05
// Modified: 2026-08-05
//
// Change History:
// - 2026-08-05 v0.1.0: Initial documentation

/*
Package parser implements the breakstack-driven grammar engine that turns a
command's argument tokens into an argument tree.

A grammar is a function from a token cursor and a breakstack to a tree node.
The breakstack carries the break predicates of every enclosing scope,
outermost first; before a grammar classifies a token it asks the stack whether
the token belongs to someone above it, and stops if so. Stacks grow inward
only, which makes scope termination compositional: a nested group ends on any
keyword of any enclosing group without the grammars knowing about each other.

ParseStandard covers the common command shape of positional arguments,
keyword groups, and flags; commands with irregular shapes supply their own
grammar functions built from the same primitives. All matching is
case-insensitive, and a token containing an unresolved variable reference
never matches a keyword.

Grammars cannot fail on malformed input; they produce a best-effort tree and
leave diagnosis to the caller. A grammar iteration that consumes no tokens is
a defect in the grammar itself and panics.
*/
package parser
