// File: doc.go
// Title: Lexer Package Documentation
// Description: Package documentation for the CMake listfile tokenizer.
// Author: kumekay
// Version: v0.1.0
// Created: 2026-08-04
// Modified: 2026-08-04
//
// Change History:
// - 2026-08-04 v0.1.0: Initial documentation

/*
Package lexer tokenizes CMake listfile source into a lossless token stream.

Unlike a conventional lexer, whitespace, newlines and comments are emitted as
tokens with their exact spelling preserved, so that the in-order concatenation
of all token spellings reproduces the original input byte for byte. The parser
relies on this property to build argument trees that can be re-rendered
without information loss.

The package also provides semantic-token lookahead helpers (FirstSemantic,
NthSemantic) used by grammar dispatchers to locate discriminator tokens
without consuming input.
*/
package lexer
