// Package printer serializes stmt syntax trees to a JSON encoding and reads
// that encoding back.
//
// The record shape is fixed: every node becomes
//
//	{ "type": <kind>, "value": <value>, "children": [ ... ] }
//
// with children separated by ", " and no trailing separator. Output is a
// pure function of the tree, so serializing the same tree twice yields
// byte-identical text.
package printer

import (
	"encoding/json"
	"strings"

	"github.com/bufbuild/stmtcompile/ast"
)

// Print serializes the tree rooted at node.
//
// Kind and value strings are emitted with full JSON escaping, so the result
// is valid JSON no matter what the tree contains. Print uses an explicit
// stack rather than recursion and handles trees of arbitrary depth.
func Print(node *ast.Node) string {
	var out strings.Builder

	// Frames either open a node or, when node is nil, emit deferred closing
	// text once the node's subtree has been printed.
	type frame struct {
		node   *ast.Node
		closer string
	}

	stack := []frame{{node: node}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if top.node == nil {
			out.WriteString(top.closer)
			continue
		}

		n := top.node
		out.WriteString(`{ "type": `)
		out.WriteString(quote(n.Kind))
		out.WriteString(`, "value": `)
		out.WriteString(quote(n.Value))
		out.WriteString(`, "children": [`)

		stack = append(stack, frame{closer: "] }"})
		// push children in reverse so the leftmost is printed first; each
		// child but the first is preceded by the ", " separator
		for i := len(n.Children) - 1; i >= 0; i-- {
			if i > 0 {
				stack = append(stack, frame{node: n.Children[i]}, frame{closer: ", "})
			} else {
				stack = append(stack, frame{node: n.Children[i]})
			}
		}
	}
	return out.String()
}

// quote returns s as a JSON string literal.
func quote(s string) string {
	b, err := json.Marshal(s)
	if err != nil {
		// json.Marshal cannot fail for a string
		panic(err)
	}
	return string(b)
}
