package humanoid

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/avatarkit/pkg/scene"
)

// HumanoidRig is the normalized retargeting layer over a raw rig. It owns a
// parallel synthetic skeleton whose bone lengths are baked from the concrete
// character but whose rest rotations are identity, so a pose authored against
// it replays with the same joint angles on any character.
type HumanoidRig struct {
	source *Rig
	rig    *Rig
	root   *scene.Node

	// World rotation of each raw bone's parent and the raw bone's local
	// rotation, both captured at construction. Update conjugates with these
	// to transport normalized rotations into the raw parent frame.
	parentWorldRotations map[BoneName]mgl32.Quat
	boneRotations        map[BoneName]mgl32.Quat
}

// NewHumanoidRig builds the synthetic skeleton from the source rig's current
// (rest) world transforms. For every mapped bone, the synthetic local position
// is its world position relative to the nearest mapped ancestor; unmapped
// intermediate bones are skipped during the ancestor walk.
func NewHumanoidRig(source *Rig) *HumanoidRig {
	root := scene.NewNode("NormalizedRoot")
	nodes := make(map[BoneName]*scene.Node)
	parentRots := make(map[BoneName]mgl32.Quat)
	boneRots := make(map[BoneName]mgl32.Quat)

	for _, name := range ListedBones {
		bone := source.Bone(name)
		if bone == nil {
			continue
		}

		parentWorldRot := mgl32.QuatIdent()
		if p := bone.Node.Parent(); p != nil {
			parentWorldRot = p.WorldRotation()
		}
		parentRots[name] = parentWorldRot
		boneRots[name] = bone.Node.Rotation

		parentNode := root
		refPos := mgl32.Vec3{}
		if ancestor := nearestMappedAncestor(source, name); ancestor != "" {
			parentNode = nodes[ancestor]
			refPos = source.Bone(ancestor).Node.WorldPosition()
		}

		n := scene.NewNode("Normalized_" + string(name))
		n.Position = bone.Node.WorldPosition().Sub(refPos)
		parentNode.AddChild(n)
		nodes[name] = n
	}

	return &HumanoidRig{
		source:               source,
		rig:                  NewRig(nodes),
		root:                 root,
		parentWorldRotations: parentRots,
		boneRotations:        boneRots,
	}
}

// nearestMappedAncestor walks the static parent table upward from name until
// it finds a bone the rig actually maps. Returns "" if none exists.
func nearestMappedAncestor(rig *Rig, name BoneName) BoneName {
	for {
		parent, ok := ParentBone[name]
		if !ok {
			return ""
		}
		if rig.HasBone(parent) {
			return parent
		}
		name = parent
	}
}

// Rig returns the rig over the synthetic bones. Poses set on it take effect
// on the raw skeleton at the next Update.
func (h *HumanoidRig) Rig() *Rig {
	return h.rig
}

// Root returns the synthetic skeleton's root node.
func (h *HumanoidRig) Root() *scene.Node {
	return h.root
}

// Update copies the normalized pose onto the raw bones. Each raw local
// rotation becomes P^-1 * N * P * B, where N is the normalized bone's local
// rotation, P the raw parent's world rotation at construction and B the raw
// bone's local rotation at construction. Hips is the only bone whose position
// is driven: its raw local position is re-derived from the normalized hips
// world position expressed in the raw parent's current world frame.
func (h *HumanoidRig) Update() {
	for _, name := range ListedBones {
		raw := h.source.Bone(name)
		if raw == nil {
			continue
		}
		norm := h.rig.Bone(name)
		if norm == nil {
			continue
		}

		p := h.parentWorldRotations[name]
		raw.Node.Rotation = p.Inverse().
			Mul(norm.Node.Rotation).
			Mul(p).
			Mul(h.boneRotations[name])

		if name == BoneHips {
			worldPos := norm.Node.WorldPosition()
			if parent := raw.Node.Parent(); parent != nil {
				local := parent.WorldMatrix().Inv().Mul4x1(worldPos.Vec4(1))
				raw.Node.Position = local.Vec3()
			} else {
				raw.Node.Position = worldPos
			}
		}
	}
}
