package ast

import "strings"

// Visit is called once per node during Walk. label is the role the node
// plays in its parent ("" for the root). Returning false skips the node's
// children.
type Visit func(label string, n Node, depth int) bool

type frame struct {
	label string
	node  Node
	depth int
}

// Walk visits root and its descendants in pre-order, children in the order
// Children reports them.
func Walk(root Node, visit Visit) {
	if root == nil {
		return
	}

	s := stack[frame]{}
	s.push(frame{node: root})

	for len(s) > 0 {
		f := s.pop()
		if !visit(f.label, f.node, f.depth) {
			continue
		}

		children := f.node.Children()
		for el := children.Back(); el != nil; el = el.Prev() {
			s.push(frame{label: el.Key, node: el.Value, depth: f.depth + 1})
		}
	}
}

// Dump renders the tree one node per line, indented by depth.
func Dump(root Node) string {
	var sb strings.Builder

	Walk(root, func(label string, n Node, depth int) bool {
		sb.WriteString(strings.Repeat("  ", depth))
		if label != "" {
			sb.WriteString(label)
			sb.WriteString(": ")
		}
		sb.WriteString(n.Describe())
		sb.WriteByte('\n')

		return true
	})

	return sb.String()
}
