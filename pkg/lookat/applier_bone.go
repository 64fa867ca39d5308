package lookat

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/avatarkit/pkg/humanoid"
)

// BoneApplier rotates the eye bones toward the gaze. The horizontal maps are
// asymmetric because eyes physically rotate further away from the nose
// (outer) than toward it (inner); the applier swaps them per eye and yaw
// sign.
type BoneApplier struct {
	RangeMapHorizontalInner RangeMap
	RangeMapHorizontalOuter RangeMap
	RangeMapVerticalDown    RangeMap
	RangeMapVerticalUp      RangeMap

	// faceFront is the direction the eye rotation treats as true forward.
	// The owning LookAt pushes its own FaceFront here each update.
	faceFront mgl32.Vec3

	humanoid *humanoid.Humanoid
}

// NewBoneApplier creates a bone applier over the humanoid's eye bones. Eyes
// are optional; a missing eye is simply not driven.
func NewBoneApplier(h *humanoid.Humanoid, inner, outer, down, up RangeMap) *BoneApplier {
	return &BoneApplier{
		RangeMapHorizontalInner: inner,
		RangeMapHorizontalOuter: outer,
		RangeMapVerticalDown:    down,
		RangeMapVerticalUp:      up,
		faceFront:               mgl32.Vec3{0, 0, 1},
		humanoid:                h,
	}
}

func (a *BoneApplier) setFaceFront(front mgl32.Vec3) {
	a.faceFront = front
}

// ApplyYawPitch writes eye rotations for the given gaze angles (degrees).
// Each eye gets its rotation written to both the normalized bone and the raw
// bone so the pose survives the next humanoid auto-update.
func (a *BoneApplier) ApplyYawPitch(yaw, pitch float32) {
	// Vertical term is shared by both eyes.
	var x float32
	if pitch >= 0 {
		x = mgl32.DegToRad(a.RangeMapVerticalDown.Map(pitch))
	} else {
		x = -mgl32.DegToRad(a.RangeMapVerticalUp.Map(-pitch))
	}

	// Left eye: positive yaw is outward.
	var yLeft float32
	if yaw >= 0 {
		yLeft = mgl32.DegToRad(a.RangeMapHorizontalOuter.Map(yaw))
	} else {
		yLeft = -mgl32.DegToRad(a.RangeMapHorizontalInner.Map(-yaw))
	}
	a.applyEye(humanoid.BoneLeftEye, x, yLeft)

	// Right eye: positive yaw is inward.
	var yRight float32
	if yaw >= 0 {
		yRight = mgl32.DegToRad(a.RangeMapHorizontalInner.Map(yaw))
	} else {
		yRight = -mgl32.DegToRad(a.RangeMapHorizontalOuter.Map(-yaw))
	}
	a.applyEye(humanoid.BoneRightEye, x, yRight)
}

// applyEye builds the eye rotation in face-front-compensated space and writes
// it to the named eye bone.
func (a *BoneApplier) applyEye(name humanoid.BoneName, x, y float32) {
	eye := a.humanoid.RawBone(name)
	if eye == nil {
		return
	}

	rot := mgl32.AnglesToQuat(x, y, 0, mgl32.XYZ)

	// Rotate into the space where faceFront is true forward, apply the eye
	// rotation, rotate back.
	front := mgl32.QuatBetweenVectors(mgl32.Vec3{0, 0, 1}, a.faceFront)
	rot = front.Mul(rot).Mul(front.Inverse())

	if n := a.humanoid.NormalizedBoneNode(name); n != nil {
		n.Rotation = rot
	}

	// The direct raw write must land in the same frame the humanoid update
	// would transport the normalized rotation into: conjugate with the eye
	// parent's rest world rotation, then compose the eye's rest rotation.
	p := a.humanoid.RawParentRestRotation(name)
	eye.Node.Rotation = p.Inverse().Mul(rot).Mul(p).Mul(eye.RestRotation)
}
