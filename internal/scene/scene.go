// Package scene is a small retained scene graph for track overlays.
package scene

import (
	"image/color"

	"github.com/golang/geo/r3"
)

// Material is the visual resource a node is drawn with.
type Material struct {
	Name  string
	Color color.RGBA
}

// Node is a scene graph node. Leaf nodes carry a Ribbon.
type Node struct {
	Name     string
	Visible  bool
	Material *Material

	Parent   *Node
	Children []*Node

	Ribbon *Ribbon
}

// Ribbon is a quad strip segment: left and right vertices at the start,
// then right and left at the end.
type Ribbon struct {
	Vertices [4]r3.Vector
}

// NewNode returns a visible node without children.
func NewNode(name string) *Node {
	return &Node{Name: name, Visible: true}
}

// AddChild attaches child under n.
func (n *Node) AddChild(child *Node) *Node {
	child.Parent = n
	n.Children = append(n.Children, child)
	return child
}

// Walk visits n and its visible descendants depth first. fn returning false
// skips the node's children.
func (n *Node) Walk(fn func(*Node) bool) {
	if n == nil || !n.Visible {
		return
	}
	if !fn(n) {
		return
	}
	for _, c := range n.Children {
		c.Walk(fn)
	}
}

// EffectiveMaterial returns the nearest material up the parent chain.
func (n *Node) EffectiveMaterial() *Material {
	for p := n; p != nil; p = p.Parent {
		if p.Material != nil {
			return p.Material
		}
	}
	return nil
}
