// File: doc.go
// Title: Cmakelang Package Documentation
// Description: Package documentation for the listfile parsing engine.
// Author: kumekay
// Version: v0.1.0
// Created: 2026-08-07
// Modified: 2026-08-07
//
// Change History:
// - 2026-08-07 v0.1.0: Initial documentation

/*
Package cmakelang parses CMake command invocations into lossless argument
trees.

The pipeline is lexer -> registry lookup -> grammar. Whitespace and comments
are tokens like any other and every token ends up in exactly one tree node,
so concatenating the spellings reachable from a parse reproduces the source
byte for byte. Grammars never reject input: commands without a registered
grammar, and malformed invocations, are parsed permissively with a logged
warning.

User projects can declare grammars for their own commands in the
configuration file; declarations are compiled into standard-shape grammars
at engine construction.
*/
package cmakelang
