package expression

import (
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/avatarkit/internal/logger"
	"github.com/Faultbox/avatarkit/pkg/scene"
)

// MorphTargetBind drives one morph target influence on a set of mesh
// primitives.
type MorphTargetBind struct {
	meshes []*scene.Mesh
	index  int
	weight float32
}

// NewMorphTargetBind binds morph target index on the given primitives with a
// per-bind weight scaling how much of the full morph to use, clamped to
// [0,1]. Primitives that do not carry the index are warned about and dropped;
// the bind degrades to a no-op if none remain.
func NewMorphTargetBind(meshes []*scene.Mesh, index int, weight float32) *MorphTargetBind {
	valid := make([]*scene.Mesh, 0, len(meshes))
	for _, m := range meshes {
		if index < 0 || index >= len(m.MorphInfluences) {
			logger.Warn("morph target index out of range, skipping primitive",
				zap.String("mesh", m.Name),
				zap.Int("index", index),
				zap.Int("targets", len(m.MorphInfluences)))
			continue
		}
		valid = append(valid, m)
	}
	return &MorphTargetBind{meshes: valid, index: index, weight: mgl32.Clamp(weight, 0, 1)}
}

// Apply adds bindWeight * weight to the influence on every primitive.
func (b *MorphTargetBind) Apply(weight float32) {
	for _, m := range b.meshes {
		m.MorphInfluences[b.index] += b.weight * weight
	}
}

// Clear zeroes the influence on every primitive.
func (b *MorphTargetBind) Clear() {
	for _, m := range b.meshes {
		m.MorphInfluences[b.index] = 0
	}
}
