package tree

import "github.com/reskit/reskit/internal/resource"

// Aggregate mounts the enabled category fragments under one root in the
// caller's registration order. Purely structural: no deduplication, no
// sanitization. Zero fragments yields an empty root.
func Aggregate(fragments []*Node) *Node {
	root := NewNode("", resource.Category(-1))
	root.Children = append(root.Children, fragments...)
	return root
}
