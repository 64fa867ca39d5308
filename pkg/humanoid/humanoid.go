package humanoid

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/avatarkit/pkg/scene"
)

// Humanoid pairs a raw rig with its normalized retargeting rig. Callers must
// be explicit about which space they operate in: animation replay goes through
// the normalized accessors, character-specific inspection through the raw
// ones. Writing raw bones while AutoUpdate is enabled produces undefined
// results; the normalized copy overwrites them every frame.
type Humanoid struct {
	// AutoUpdate controls whether Update copies the normalized pose into the
	// raw bones. Enabled by default.
	AutoUpdate bool

	raw        *Rig
	normalized *HumanoidRig
}

// New builds a humanoid from a bone-name to node mapping. The mapping must
// cover every bone in RequiredBones; a missing required bone is a
// construction error since no meaningful pose math is possible without it.
func New(nodes map[BoneName]*scene.Node) (*Humanoid, error) {
	for _, name := range RequiredBones {
		if nodes[name] == nil {
			return nil, fmt.Errorf("humanoid: required bone %q is not mapped", name)
		}
	}

	raw := NewRig(nodes)
	return &Humanoid{
		AutoUpdate: true,
		raw:        raw,
		normalized: NewHumanoidRig(raw),
	}, nil
}

// Update copies the normalized pose into the raw pose when AutoUpdate is
// enabled. Called once per frame, before any downstream consumer reads the
// raw bones.
func (h *Humanoid) Update() {
	if h.AutoUpdate {
		h.normalized.Update()
	}
}

// RawBone returns the raw bone for name, or nil if unmapped.
func (h *Humanoid) RawBone(name BoneName) *Bone {
	return h.raw.Bone(name)
}

// RawBoneNode returns the raw scene node for name, or nil.
func (h *Humanoid) RawBoneNode(name BoneName) *scene.Node {
	return h.raw.BoneNode(name)
}

// NormalizedBone returns the synthetic bone for name, or nil.
func (h *Humanoid) NormalizedBone(name BoneName) *Bone {
	return h.normalized.Rig().Bone(name)
}

// NormalizedBoneNode returns the synthetic scene node for name, or nil.
func (h *Humanoid) NormalizedBoneNode(name BoneName) *scene.Node {
	return h.normalized.Rig().BoneNode(name)
}

// RawParentRestRotation returns the world rotation the named bone's scene
// parent had at construction, or identity for unmapped bones. Consumers that
// write raw bone rotations directly need it to transport a rotation into the
// raw parent frame the same way Update does.
func (h *Humanoid) RawParentRestRotation(name BoneName) mgl32.Quat {
	if q, ok := h.normalized.parentWorldRotations[name]; ok {
		return q
	}
	return mgl32.QuatIdent()
}

// NormalizedRoot returns the root of the synthetic skeleton.
func (h *Humanoid) NormalizedRoot() *scene.Node {
	return h.normalized.Root()
}

// GetRawPose returns the raw rig's rest-relative pose.
func (h *Humanoid) GetRawPose() Pose { return h.raw.GetPose() }

// GetRawAbsolutePose returns the raw rig's absolute pose, for inspection.
func (h *Humanoid) GetRawAbsolutePose() Pose { return h.raw.GetAbsolutePose() }

// SetRawPose applies a rest-relative pose directly to the raw bones.
func (h *Humanoid) SetRawPose(pose Pose) { h.raw.SetPose(pose) }

// ResetRawPose restores the raw rig's rest pose.
func (h *Humanoid) ResetRawPose() { h.raw.ResetPose() }

// GetNormalizedPose returns the normalized rig's rest-relative pose.
func (h *Humanoid) GetNormalizedPose() Pose { return h.normalized.Rig().GetPose() }

// GetNormalizedAbsolutePose returns the normalized rig's absolute pose.
func (h *Humanoid) GetNormalizedAbsolutePose() Pose { return h.normalized.Rig().GetAbsolutePose() }

// SetNormalizedPose applies a rest-relative pose to the normalized bones.
// Takes effect on the raw skeleton at the next Update.
func (h *Humanoid) SetNormalizedPose(pose Pose) { h.normalized.Rig().SetPose(pose) }

// ResetNormalizedPose restores the normalized rig's rest pose.
func (h *Humanoid) ResetNormalizedPose() { h.normalized.Rig().ResetPose() }
