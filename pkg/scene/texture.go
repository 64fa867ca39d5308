package scene

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/tiendc/go-deepcopy"
)

// Texture is the UV-transform state of a texture reference. The image data
// itself lives with the renderer; the runtime only animates offset and scale.
type Texture struct {
	Name   string
	Offset mgl32.Vec2
	Scale  mgl32.Vec2
}

// NewTexture creates a texture with identity UV transform.
func NewTexture(name string) *Texture {
	return &Texture{Name: name, Scale: mgl32.Vec2{1, 1}}
}

// Clone returns an independent copy of the texture so binds on different
// materials never share mutable offset/scale state.
func (t *Texture) Clone() *Texture {
	out := &Texture{}
	if err := deepcopy.Copy(out, t); err != nil {
		// Texture is a flat value type; a copy failure would be a bug here.
		clone := *t
		return &clone
	}
	return out
}
