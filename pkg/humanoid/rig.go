package humanoid

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/avatarkit/pkg/scene"
)

// Bone pairs a humanoid slot with its scene node and the node's rest
// transform, captured once when the rig is built.
type Bone struct {
	Node         *scene.Node
	RestPosition mgl32.Vec3
	RestRotation mgl32.Quat
}

// Transform is one bone's local position and rotation.
type Transform struct {
	Position mgl32.Vec3
	Rotation mgl32.Quat
}

// Pose maps bone names to transforms. Poses returned by GetPose are relative
// to the rest pose and are the unit exchanged with animation systems; poses
// from GetAbsolutePose are raw local transforms for inspection only.
type Pose map[BoneName]Transform

// Rig is a flat map of humanoid bones over externally-owned scene nodes.
// The rest pose is snapshotted at construction and never mutated afterwards.
type Rig struct {
	bones map[BoneName]*Bone
}

// NewRig builds a rig over the given bone nodes, capturing each node's
// current local transform as its rest transform. Bones absent from the map
// are simply not part of the rig.
func NewRig(nodes map[BoneName]*scene.Node) *Rig {
	bones := make(map[BoneName]*Bone, len(nodes))
	for name, node := range nodes {
		if node == nil {
			continue
		}
		bones[name] = &Bone{
			Node:         node,
			RestPosition: node.Position,
			RestRotation: node.Rotation,
		}
	}
	return &Rig{bones: bones}
}

// Bone returns the named bone, or nil if the character does not map it.
func (r *Rig) Bone(name BoneName) *Bone {
	return r.bones[name]
}

// BoneNode returns the scene node of the named bone, or nil.
func (r *Rig) BoneNode(name BoneName) *scene.Node {
	if b := r.bones[name]; b != nil {
		return b.Node
	}
	return nil
}

// HasBone reports whether the rig maps the named bone.
func (r *Rig) HasBone(name BoneName) bool {
	_, ok := r.bones[name]
	return ok
}

// GetAbsolutePose returns each bone's raw local transform as stored. Absolute
// poses are character-specific; use GetPose for transforms that replay across
// characters.
func (r *Rig) GetAbsolutePose() Pose {
	pose := make(Pose, len(r.bones))
	for name, bone := range r.bones {
		pose[name] = Transform{
			Position: bone.Node.Position,
			Rotation: bone.Node.Rotation,
		}
	}
	return pose
}

// GetPose returns each bone's transform relative to the rest pose:
// position = node - rest, rotation = node * inverse(rest).
func (r *Rig) GetPose() Pose {
	pose := make(Pose, len(r.bones))
	for name, bone := range r.bones {
		pose[name] = Transform{
			Position: bone.Node.Position.Sub(bone.RestPosition),
			Rotation: bone.Node.Rotation.Mul(bone.RestRotation.Inverse()),
		}
	}
	return pose
}

// SetPose applies a rest-relative pose. Bones named in the pose but absent
// from the rig are silently skipped; humanoid data is commonly partial. A
// zero-value rotation counts as identity, so position-only transforms work.
func (r *Rig) SetPose(pose Pose) {
	for name, tf := range pose {
		bone, ok := r.bones[name]
		if !ok {
			continue
		}
		rot := tf.Rotation
		if rot == (mgl32.Quat{}) {
			rot = mgl32.QuatIdent()
		}
		bone.Node.Position = tf.Position.Add(bone.RestPosition)
		bone.Node.Rotation = rot.Mul(bone.RestRotation)
	}
}

// ResetPose restores every bone to its rest transform.
func (r *Rig) ResetPose() {
	for _, bone := range r.bones {
		bone.Node.Position = bone.RestPosition
		bone.Node.Rotation = bone.RestRotation
	}
}
