package scene

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestModelMatrixPlacesBoxOnGround(t *testing.T) {
	n := NewNode("box")
	n.Size = mgl32.Vec3{1, 2, 1}
	n.SetScalar(3)
	n.Position = mgl32.Vec3{20, 0, 230}

	bottom := n.ModelMatrix().Mul4x1(mgl32.Vec4{0, -0.5, 0, 1}).Vec3()
	top := n.ModelMatrix().Mul4x1(mgl32.Vec4{0, 0.5, 0, 1}).Vec3()

	if !bottom.ApproxEqualThreshold(mgl32.Vec3{20, 0, 230}, 1e-4) {
		t.Errorf("bottom = %v, want (20, 0, 230)", bottom)
	}
	if !top.ApproxEqualThreshold(mgl32.Vec3{20, 6, 230}, 1e-4) {
		t.Errorf("top = %v, want (20, 6, 230)", top)
	}
}

func TestGraphKeepsInsertionOrder(t *testing.T) {
	g := NewGraph()
	a, b := NewNode("a"), NewNode("b")
	g.Add(a)
	g.Add(b)

	nodes := g.Nodes()
	if len(nodes) != 2 || nodes[0] != a || nodes[1] != b {
		t.Errorf("Nodes() = %v, want [a b]", nodes)
	}
}
