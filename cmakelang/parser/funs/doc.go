// File: doc.go
// Title: Grammar Functions Package Documentation
// Description: Package documentation for the per-command grammars.
// Author: kumekay
// Version: v0.1.0
// Created: 2026-08-06
// Modified: 2026-08-06
//
// Change History:
// - 2026-08-06 v0.1.0: Initial documentation

/*
Package funs implements grammars for commands whose argument shape the
standard engine cannot express directly: commands with multiple forms
selected by a discriminating argument, nested sub-groups that share keywords
with their enclosing scope, or groups whose sortability depends on the
arguments themselves.

Each grammar is a parser.ParseFunc suitable for registration. Grammars never
fail; unrecognized forms fall back to a permissive parse with a logged
warning.
*/
package funs
