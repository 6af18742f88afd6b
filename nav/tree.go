// Package nav owns breadcrumb state on behalf of the widget: a labeled
// tree to walk and the authoritative path into it. The breadcrumb itself
// never mutates the path; it reports activations and the Navigator commits
// the truncation before the next render.
package nav

import (
	"fmt"

	"github.com/buger/jsonparser"

	"trailkit/icons"
)

// Node is one location in a navigation tree.
type Node struct {
	Label    string
	Icon     icons.Name
	Disabled bool
	Children []*Node
}

// Child returns the child with the given label, or nil.
func (n *Node) Child(label string) *Node {
	for _, c := range n.Children {
		if c.Label == label {
			return c
		}
	}
	return nil
}

// ParseTree decodes a navigation tree from JSON:
//
//	{"label": "Home", "icon": "house", "children": [
//	  {"label": "Documents", "children": []}
//	]}
//
// Children without a label are skipped rather than failing the parse;
// unknown icon names are kept and degrade to a placeholder glyph at
// render time.
func ParseTree(data []byte) (*Node, error) {
	root, err := parseNode(data)
	if err != nil {
		return nil, err
	}
	if root == nil {
		return nil, fmt.Errorf("navigation tree has no root label")
	}
	return root, nil
}

func parseNode(data []byte) (*Node, error) {
	label, err := jsonparser.GetString(data, "label")
	if err != nil || label == "" {
		return nil, nil
	}

	node := &Node{Label: label}

	if icon, err := jsonparser.GetString(data, "icon"); err == nil {
		node.Icon = icons.Name(icon)
	}
	if disabled, err := jsonparser.GetBoolean(data, "disabled"); err == nil {
		node.Disabled = disabled
	}

	children, dataType, _, err := jsonparser.Get(data, "children")
	if err != nil || dataType != jsonparser.Array {
		return node, nil
	}

	jsonparser.ArrayEach(children, func(value []byte, dataType jsonparser.ValueType, offset int, err error) {
		if err != nil || dataType != jsonparser.Object {
			return
		}
		child, cerr := parseNode(value)
		if cerr != nil || child == nil {
			return
		}
		node.Children = append(node.Children, child)
	})

	return node, nil
}
