// File: doc.go
// Title: Log Package Documentation
// Description: Package documentation for the structured logging package used
//              by the cmake-format tool and its parsing library.
// Author: kumekay
// Version: v0.1.0
// Created: 2026-08-02
// Modified: 2026-08-02
//
// Change History:
// - 2026-08-02 v0.1.0: Initial documentation

/*
Package log provides structured, leveled logging for cmake-format.

Loggers are immutable: the With* methods return clones carrying additional
context fields, so a logger can be specialized per component ("lexer",
"parser", "registry") without affecting its parent. Output is formatted by
pluggable formatters (console with colors, plain text, JSON).

The parsing library only ever logs diagnostics; malformed input degrades to a
permissive parse with a warning instead of an error, so logging is the sole
channel for reporting such conditions.
*/
package log
