package scene

// Layers is a camera layer bitmask, compatible with renderers that cull by
// layer membership.
type Layers uint32

// NewLayers returns a mask with only layer 0 enabled.
func NewLayers() Layers {
	return 1
}

// Set enables exactly the given layer, clearing all others.
func (l *Layers) Set(layer int) {
	*l = 1 << uint(layer)
}

// Enable turns the given layer on.
func (l *Layers) Enable(layer int) {
	*l |= 1 << uint(layer)
}

// Disable turns the given layer off.
func (l *Layers) Disable(layer int) {
	*l &^= 1 << uint(layer)
}

// Test reports whether the given layer is on.
func (l Layers) Test(layer int) bool {
	return l&(1<<uint(layer)) != 0
}

// Skeleton is the joint list a skinned mesh deforms against.
type Skeleton struct {
	Joints []*Node
}

// VertexSkin is one vertex's bone influences: up to four joint indices into
// the skeleton with matching weights.
type VertexSkin struct {
	Joints  [4]int
	Weights [4]float32
}

// Mesh is a renderable primitive: triangle indices over a shared vertex pool,
// optional skinning data and morph target influences. Geometry buffers are
// owned by the loader; a mesh produced by the first-person eraser is the one
// exception and is owned by the runtime.
type Mesh struct {
	Name string
	Node *Node

	Indices []uint32
	Skin    []VertexSkin

	// MorphInfluences holds one weight per morph target, written by
	// expression binds each frame.
	MorphInfluences []float32

	Skeleton  *Skeleton
	Materials []*Material
	Layers    Layers
}

// NewMesh creates a mesh visible on the default layer.
func NewMesh(name string) *Mesh {
	return &Mesh{Name: name, Layers: NewLayers()}
}

// TriangleCount returns the number of triangles in the index buffer.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}
