package parser

import "github.com/bufbuild/stmtcompile/ast"

// Result is the result of a parse operation. Once returned, the tree it
// holds is read-only: nothing in this package mutates it afterwards.
type Result struct {
	root *ast.Node
	info *ast.FileInfo
}

// NewResult wraps an existing tree, for callers that obtained an AST some
// way other than parsing (info may be nil in that case).
func NewResult(root *ast.Node, info *ast.FileInfo) Result {
	return Result{root: root, info: info}
}

// AST returns the root of the syntax tree. The root's kind is always
// "Program" with an empty value, even when the source contained no
// statements at all.
func (r Result) AST() *ast.Node {
	return r.root
}

// FileInfo returns position information for the parsed file. May be nil if
// the tokens were supplied without one.
func (r Result) FileInfo() *ast.FileInfo {
	return r.info
}
