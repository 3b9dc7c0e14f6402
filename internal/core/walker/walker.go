package walker

import "github.com/shubhamsWEB/uifinityai/internal/figma"

// Walk visits every node reachable from root in pre-order. A node with no
// children is a leaf; nil children entries are skipped. The document format
// guarantees the tree is acyclic, so no visited-set is kept.
func Walk(root *figma.Node, visit func(*figma.Node)) {
	if root == nil {
		return
	}
	visit(root)
	for _, child := range root.Children {
		Walk(child, visit)
	}
}

// Collect returns every node matching pred, in document order.
func Collect(root *figma.Node, pred func(*figma.Node) bool) []*figma.Node {
	var out []*figma.Node
	Walk(root, func(n *figma.Node) {
		if pred(n) {
			out = append(out, n)
		}
	})
	return out
}

// FindFirst returns the first node matching pred in document order.
func FindFirst(root *figma.Node, pred func(*figma.Node) bool) *figma.Node {
	nodes := Collect(root, pred)
	if len(nodes) == 0 {
		return nil
	}
	return nodes[0]
}
