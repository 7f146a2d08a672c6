// File: doc.go
// Title: AST Package Documentation
// Description: Package documentation for the argument tree data model.
// Author: kumekay
// Version: v0.1.0
// Created: 2026-08-04
// Modified: 2026-08-04
//
// Change History:
// - 2026-08-04 v0.1.0: Initial documentation

/*
Package ast defines the argument tree produced by command grammars.

A TreeNode owns an ordered sequence of children, each either a nested node or
a single token. Children preserve original token order and no token appears in
more than one node, so the in-order concatenation of spellings reachable from
a fully parsed tree reproduces the source exactly.

Nodes may carry metadata for the downstream layout engine; the only key in
use is "sortable", which marks positional groups whose elements may be
reordered when re-rendering.
*/
package ast
