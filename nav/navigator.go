package nav

import (
	"fmt"

	"trailkit/trail"
)

// Navigator owns the authoritative path into a tree. It is the stateful
// counterpart of the stateless breadcrumb: widgets report activations,
// the navigator commits the path change, the caller re-renders.
type Navigator struct {
	root *Node
	path []*Node // always starts at root
}

// NewNavigator starts at the tree's root.
func NewNavigator(root *Node) *Navigator {
	return &Navigator{root: root, path: []*Node{root}}
}

// Path returns the labels along the current path, root to leaf.
func (n *Navigator) Path() []string {
	labels := make([]string, len(n.path))
	for i, node := range n.path {
		labels[i] = node.Label
	}
	return labels
}

// Current returns the leaf of the current path.
func (n *Navigator) Current() *Node {
	return n.path[len(n.path)-1]
}

// Depth returns the number of segments in the current path.
func (n *Navigator) Depth() int {
	return len(n.path)
}

// Descend moves into the named child of the current location.
func (n *Navigator) Descend(label string) error {
	child := n.Current().Child(label)
	if child == nil {
		return fmt.Errorf("no such location: %s", label)
	}
	n.path = append(n.path, child)
	return nil
}

// Up moves to the parent location. At the root it is a no-op.
func (n *Navigator) Up() {
	if len(n.path) > 1 {
		n.path = n.path[:len(n.path)-1]
	}
}

// ActivateItem truncates the path to the first i+1 entries: navigating to
// the item at index i discards everything deeper. Out-of-range indexes
// are ignored.
func (n *Navigator) ActivateItem(i int) {
	if i < 0 || i >= len(n.path) {
		return
	}
	n.path = n.path[:i+1]
}

// Items builds the breadcrumb items for the current path. Every
// non-terminal item activates back into this navigator; the terminal item
// carries no callback. Per-node disabled flags pass through.
func (n *Navigator) Items() []trail.Item {
	items := make([]trail.Item, len(n.path))
	for i, node := range n.path {
		item := trail.Item{
			Label:    node.Label,
			Icon:     node.Icon,
			Disabled: node.Disabled,
		}
		if i < len(n.path)-1 {
			item.OnActivate = n.ActivateItem
		}
		items[i] = item
	}
	return items
}
