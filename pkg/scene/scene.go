// Package scene holds the displayable nodes the renderer draws each frame.
package scene

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Node is a drawable object with a transform.
// Each node is drawn as a box of Size scaled by Scale.
type Node struct {
	Name     string
	Position mgl32.Vec3
	Rotation mgl32.Quat
	Scale    mgl32.Vec3
	Size     mgl32.Vec3
	Color    mgl32.Vec3
}

// NewNode creates a unit node at the origin
func NewNode(name string) *Node {
	return &Node{
		Name:     name,
		Rotation: mgl32.QuatIdent(),
		Scale:    mgl32.Vec3{1, 1, 1},
		Size:     mgl32.Vec3{1, 1, 1},
		Color:    mgl32.Vec3{0.8, 0.8, 0.8},
	}
}

// SetScalar sets a uniform scale
func (n *Node) SetScalar(s float32) {
	n.Scale = mgl32.Vec3{s, s, s}
}

// ModelMatrix returns translation * rotation * scale
func (n *Node) ModelMatrix() mgl32.Mat4 {
	extent := mgl32.Vec3{
		n.Size.X() * n.Scale.X(),
		n.Size.Y() * n.Scale.Y(),
		n.Size.Z() * n.Scale.Z(),
	}
	// Boxes sit on the ground plane rather than straddling it
	lift := mgl32.Translate3D(0, extent.Y()/2, 0)
	return mgl32.Translate3D(n.Position.X(), n.Position.Y(), n.Position.Z()).
		Mul4(n.Rotation.Mat4()).
		Mul4(lift).
		Mul4(mgl32.Scale3D(extent.X(), extent.Y(), extent.Z()))
}

// Graph is a flat list of nodes in insertion order
type Graph struct {
	nodes []*Node
}

// NewGraph creates an empty scene
func NewGraph() *Graph {
	return &Graph{}
}

// Add appends a node to the scene
func (g *Graph) Add(n *Node) {
	g.nodes = append(g.nodes, n)
}

// Nodes returns the nodes to draw
func (g *Graph) Nodes() []*Node {
	return g.nodes
}
