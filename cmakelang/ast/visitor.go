// File: visitor.go
// Title: Argument Tree Traversal
// Description: Provides pre-order traversal over argument trees, used by the
//              layout engine and by structural comparisons in tests.
// Author: kumekay
// Version: v0.1.0
// Created: 2026-08-04
// Modified: 2026-08-04
//
// Change History:
// - 2026-08-04 v0.1.0: Initial traversal implementation

package ast

// Walk visits node and every child reachable from it in pre-order. The visit
// function receives each Child (nested nodes and token children alike);
// returning false prunes the subtree below a nested node.
func Walk(node *TreeNode, visit func(Child) bool) {
	for _, child := range node.Children {
		if !visit(child) {
			continue
		}
		if sub, ok := child.(*TreeNode); ok {
			Walk(sub, visit)
		}
	}
}

// KindSequence returns the node kinds reachable from node in pre-order,
// including the node's own kind. Two trees with equal kind sequences and
// equal sortable flags are structurally identical.
func KindSequence(node *TreeNode) []NodeKind {
	out := []NodeKind{node.Kind}
	Walk(node, func(c Child) bool {
		if sub, ok := c.(*TreeNode); ok {
			out = append(out, sub.Kind)
		}
		return true
	})
	return out
}
