// Package walk provides pre-order depth-first traversal of stmt syntax
// trees. Traversal is read-only: the callbacks receive nodes from a tree
// that the walker never mutates.
package walk

import "github.com/bufbuild/stmtcompile/ast"

// Nodes walks the tree rooted at node in pre-order, calling fn for the node
// itself and then for each child, left to right, recursively. If fn returns
// a non-nil error, the walk stops and that error is returned.
func Nodes(node *ast.Node, fn func(*ast.Node) error) error {
	return NodesEnterAndExit(node, fn, nil)
}

// NodesEnterAndExit walks the tree rooted at node, calling enter before a
// node's children are visited and exit (if non-nil) after. Enter order is
// pre-order; exit order is post-order. If either callback returns a non-nil
// error, the walk stops and that error is returned.
func NodesEnterAndExit(node *ast.Node, enter, exit func(*ast.Node) error) error {
	if err := enter(node); err != nil {
		return err
	}
	for _, child := range node.Children {
		if err := NodesEnterAndExit(child, enter, exit); err != nil {
			return err
		}
	}
	if exit != nil {
		if err := exit(node); err != nil {
			return err
		}
	}
	return nil
}

// NodesIterative is like [Nodes] but uses an explicit worklist instead of
// recursion, so it can visit trees of arbitrary depth without growing the
// call stack. Visit order is identical to [Nodes].
func NodesIterative(node *ast.Node, fn func(*ast.Node) error) error {
	stack := []*ast.Node{node}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if err := fn(n); err != nil {
			return err
		}
		// push children in reverse so the leftmost is visited first
		for i := len(n.Children) - 1; i >= 0; i-- {
			stack = append(stack, n.Children[i])
		}
	}
	return nil
}
