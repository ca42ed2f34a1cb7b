package ast

// KindProgram and KindStatement are the node kinds produced by the stmt
// parser. Kind is a free-form label, so consumers must be prepared to see
// other values in trees built by hand or read back from serialized form.
const (
	KindProgram   = "Program"
	KindStatement = "Statement"
)

// Node is a single node in a syntax tree.
//
// Each node exclusively owns its children; the tree has no sharing and no
// cycles. Nodes are treated as read-only once parsing completes.
type Node struct {
	// Kind labels the grammatical construct, e.g. "Program" or "Statement".
	Kind string
	// Value is the text associated with the node. May be empty.
	Value string
	// Children are the node's ordered children. Nil for a leaf.
	Children []*Node
}

// NewNode creates a leaf node with the given kind and value.
func NewNode(kind, value string) *Node {
	return &Node{Kind: kind, Value: value}
}

// NewProgramNode creates a "Program" root node owning the given statements.
// The children slice is used directly; the caller must not retain it.
func NewProgramNode(children ...*Node) *Node {
	return &Node{Kind: KindProgram, Children: children}
}

// NewStatementNode creates a "Statement" node whose value is the statement's
// identifier text.
func NewStatementNode(ident string) *Node {
	return &Node{Kind: KindStatement, Value: ident}
}

// AddChild appends child to n's children. The child must not already have
// another parent.
func (n *Node) AddChild(child *Node) {
	n.Children = append(n.Children, child)
}
