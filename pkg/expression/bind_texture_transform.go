package expression

import (
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/avatarkit/internal/logger"
	"github.com/Faultbox/avatarkit/pkg/scene"
)

// textureTransformEntry tracks one affected texture with its captured initial
// state and deltas.
type textureTransformEntry struct {
	texture       *scene.Texture
	initialOffset mgl32.Vec2
	deltaOffset   mgl32.Vec2
	initialScale  mgl32.Vec2
	deltaScale    mgl32.Vec2
}

// TextureTransformBind drives the UV offset and scale of every texture a
// material carries. The affected textures are cloned at construction so
// binds on different materials never share mutable transform state.
type TextureTransformBind struct {
	entries []textureTransformEntry
}

// NewTextureTransformBind binds all textures of material toward the target
// offset and scale. A material with no textures yields a no-op bind with a
// single construction-time warning.
func NewTextureTransformBind(material *scene.Material, targetOffset, targetScale mgl32.Vec2) *TextureTransformBind {
	var entries []textureTransformEntry
	for _, slot := range material.TextureSlots() {
		tex := material.Texture(slot)
		if tex == nil {
			continue
		}
		clone := tex.Clone()
		material.SetTexture(slot, clone)
		entries = append(entries, textureTransformEntry{
			texture:       clone,
			initialOffset: clone.Offset,
			deltaOffset:   targetOffset.Sub(clone.Offset),
			initialScale:  clone.Scale,
			deltaScale:    targetScale.Sub(clone.Scale),
		})
	}
	if len(entries) == 0 {
		logger.Warn("material has no textures to transform, bind is a no-op",
			zap.String("material", material.Name))
	}
	return &TextureTransformBind{entries: entries}
}

// Apply adds delta * weight to each texture's offset and scale.
func (b *TextureTransformBind) Apply(weight float32) {
	for i := range b.entries {
		e := &b.entries[i]
		e.texture.Offset = e.texture.Offset.Add(e.deltaOffset.Mul(weight))
		e.texture.Scale = e.texture.Scale.Add(e.deltaScale.Mul(weight))
	}
}

// Clear restores each texture's initial offset and scale.
func (b *TextureTransformBind) Clear() {
	for i := range b.entries {
		e := &b.entries[i]
		e.texture.Offset = e.initialOffset
		e.texture.Scale = e.initialScale
	}
}
