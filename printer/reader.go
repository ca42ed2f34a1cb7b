package printer

import (
	"encoding/json"
	"fmt"

	"github.com/bufbuild/stmtcompile/ast"
)

type nodeRecord struct {
	Type     string       `json:"type"`
	Value    string       `json:"value"`
	Children []nodeRecord `json:"children"`
}

// Parse reads text produced by [Print] back into a syntax tree. The
// reconstructed tree has identical kind, value, and child count at every
// node, so Print(Parse(Print(t))) == Print(t) for any tree t.
func Parse(text string) (*ast.Node, error) {
	var rec nodeRecord
	if err := json.Unmarshal([]byte(text), &rec); err != nil {
		return nil, fmt.Errorf("malformed serialized tree: %w", err)
	}
	return rec.toNode(), nil
}

func (r nodeRecord) toNode() *ast.Node {
	node := ast.NewNode(r.Type, r.Value)
	for _, child := range r.Children {
		node.AddChild(child.toNode())
	}
	return node
}
