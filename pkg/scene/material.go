package scene

// MaterialKind tags which shading model a material uses. Binds resolve their
// property names against this tag once, at construction time.
type MaterialKind int

const (
	// MaterialStandard is a PBR-ish lit material (base color + emission).
	MaterialStandard MaterialKind = iota
	// MaterialBasic is an unlit material (base color only).
	MaterialBasic
	// MaterialToon is a toon material with shade/matcap/rim/outline channels.
	MaterialToon
)

// String returns the kind name for logs.
func (k MaterialKind) String() string {
	switch k {
	case MaterialStandard:
		return "standard"
	case MaterialBasic:
		return "basic"
	case MaterialToon:
		return "toon"
	default:
		return "unknown"
	}
}

// Color is a mutable RGB color owned by a material property slot.
type Color struct {
	R, G, B float32
}

// Add adds other to c in place.
func (c *Color) Add(other Color) {
	c.R += other.R
	c.G += other.G
	c.B += other.B
}

// Scale returns c scaled by s.
func (c Color) Scale(s float32) Color {
	return Color{R: c.R * s, G: c.G * s, B: c.B * s}
}

// Sub returns c - other.
func (c Color) Sub(other Color) Color {
	return Color{R: c.R - other.R, G: c.G - other.G, B: c.B - other.B}
}

// Copy overwrites c with other.
func (c *Color) Copy(other Color) {
	*c = other
}

// Material is a shared, externally-owned material. The runtime mutates its
// color, opacity and texture-transform state in place; it never creates or
// destroys materials.
type Material struct {
	Name    string
	Kind    MaterialKind
	Opacity float32

	colors   map[string]*Color
	textures map[string]*Texture
}

// NewMaterial creates a material of the given kind with its supported color
// properties initialized to white and opacity 1.
func NewMaterial(name string, kind MaterialKind) *Material {
	m := &Material{
		Name:     name,
		Kind:     kind,
		Opacity:  1,
		colors:   make(map[string]*Color),
		textures: make(map[string]*Texture),
	}
	for _, prop := range colorPropertiesByKind[kind] {
		m.colors[prop] = &Color{R: 1, G: 1, B: 1}
	}
	return m
}

// colorPropertiesByKind lists the color slots each material kind exposes.
var colorPropertiesByKind = map[MaterialKind][]string{
	MaterialStandard: {"color", "emissive"},
	MaterialBasic:    {"color"},
	MaterialToon:     {"color", "emissive", "shadeColor", "matcapColor", "rimColor", "outlineColor"},
}

// textureSlotsByKind lists the texture slots each material kind may carry.
// Texture transform binds affect every slot that holds a texture.
var textureSlotsByKind = map[MaterialKind][]string{
	MaterialStandard: {"map", "emissiveMap", "normalMap"},
	MaterialBasic:    {"map"},
	MaterialToon:     {"map", "emissiveMap", "normalMap", "shadeMap", "matcapMap", "rimMap", "outlineWidthMap"},
}

// ColorProperty returns the named color slot. Absence is a normal outcome,
// not an error; callers decide whether to warn.
func (m *Material) ColorProperty(name string) (*Color, bool) {
	c, ok := m.colors[name]
	return c, ok
}

// SetColor overwrites the named color slot if the material exposes it.
func (m *Material) SetColor(name string, c Color) bool {
	slot, ok := m.colors[name]
	if !ok {
		return false
	}
	slot.Copy(c)
	return true
}

// Texture returns the texture in the named slot, or nil.
func (m *Material) Texture(slot string) *Texture {
	return m.textures[slot]
}

// SetTexture assigns a texture to a slot the material kind supports.
func (m *Material) SetTexture(slot string, tex *Texture) bool {
	for _, s := range textureSlotsByKind[m.Kind] {
		if s == slot {
			m.textures[slot] = tex
			return true
		}
	}
	return false
}

// TextureSlots returns the slot names the material kind supports.
func (m *Material) TextureSlots() []string {
	return textureSlotsByKind[m.Kind]
}
