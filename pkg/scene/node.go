// Package scene holds the renderer-facing data model the avatar runtime
// mutates: nodes, meshes, materials and textures. The runtime never owns
// these objects; they are supplied by the loading collaborator and only
// their transform/weight/color fields are written in place.
package scene

import "github.com/go-gl/mathgl/mgl32"

// Node is a transform in the scene hierarchy. Position, Rotation and Scale
// are local to the parent node.
type Node struct {
	Name     string
	Position mgl32.Vec3
	Rotation mgl32.Quat
	Scale    mgl32.Vec3

	parent   *Node
	children []*Node
}

// NewNode creates a node with an identity local transform.
func NewNode(name string) *Node {
	return &Node{
		Name:     name,
		Rotation: mgl32.QuatIdent(),
		Scale:    mgl32.Vec3{1, 1, 1},
	}
}

// Parent returns the parent node, or nil for a root.
func (n *Node) Parent() *Node {
	return n.parent
}

// Children returns the direct children. The returned slice must not be mutated.
func (n *Node) Children() []*Node {
	return n.children
}

// AddChild attaches child under n, detaching it from its previous parent.
func (n *Node) AddChild(child *Node) {
	if child.parent != nil {
		child.parent.removeChild(child)
	}
	child.parent = n
	n.children = append(n.children, child)
}

func (n *Node) removeChild(child *Node) {
	for i, c := range n.children {
		if c == child {
			n.children = append(n.children[:i], n.children[i+1:]...)
			child.parent = nil
			return
		}
	}
}

// LocalMatrix returns the local transform as translate * rotate * scale.
func (n *Node) LocalMatrix() mgl32.Mat4 {
	m := mgl32.Translate3D(n.Position.X(), n.Position.Y(), n.Position.Z())
	m = m.Mul4(n.Rotation.Mat4())
	return m.Mul4(mgl32.Scale3D(n.Scale.X(), n.Scale.Y(), n.Scale.Z()))
}

// WorldMatrix returns the transform from local space to world space.
func (n *Node) WorldMatrix() mgl32.Mat4 {
	if n.parent == nil {
		return n.LocalMatrix()
	}
	return n.parent.WorldMatrix().Mul4(n.LocalMatrix())
}

// WorldPosition returns the node's position in world space.
func (n *Node) WorldPosition() mgl32.Vec3 {
	m := n.WorldMatrix()
	return mgl32.Vec3{m.At(0, 3), m.At(1, 3), m.At(2, 3)}
}

// WorldRotation returns the accumulated rotation from root to this node.
// Scale and shear along the chain are ignored.
func (n *Node) WorldRotation() mgl32.Quat {
	if n.parent == nil {
		return n.Rotation
	}
	return n.parent.WorldRotation().Mul(n.Rotation)
}
