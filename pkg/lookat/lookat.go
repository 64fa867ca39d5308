package lookat

import (
	"github.com/go-gl/mathgl/mgl32"

	avmath "github.com/Faultbox/avatarkit/pkg/math"
	"github.com/Faultbox/avatarkit/pkg/humanoid"
	"github.com/Faultbox/avatarkit/pkg/scene"
)

// Applier routes a yaw/pitch pair into its final effect: eye bone rotation or
// lookAt expression weights.
type Applier interface {
	ApplyYawPitch(yaw, pitch float32)
}

// faceFronter is implemented by appliers that build rotations relative to a
// face-front direction; the controller keeps it in step with its own.
type faceFronter interface {
	setFaceFront(front mgl32.Vec3)
}

// LookAt converts a world-space target into yaw/pitch angles relative to the
// head's rest orientation and forwards them to an applier when they change.
//
// Angle conventions: yaw and pitch are degrees; positive yaw turns toward the
// face-front-left direction and positive pitch looks down (azimuth/altitude
// decomposition per the formulas in LookAtPoint).
type LookAt struct {
	// OffsetFromHead displaces the gaze origin from the head bone, expressed
	// in head-local space.
	OffsetFromHead mgl32.Vec3
	// FaceFront is the direction the face points at rest, in rest-head space.
	FaceFront mgl32.Vec3
	// Target, when set with AutoUpdate enabled, is re-acquired every frame. A
	// stale target simply stops producing new directions.
	Target *scene.Node
	// AutoUpdate controls whether Update recomputes angles from Target.
	AutoUpdate bool

	humanoid *humanoid.Humanoid
	applier  Applier

	yaw         float32
	pitch       float32
	needsUpdate bool
	restHeadRot mgl32.Quat // head world rotation at construction
}

// New creates a gaze controller over the humanoid's head bone. The head
// bone's current world rotation is captured as the neutral reference.
func New(h *humanoid.Humanoid, applier Applier) *LookAt {
	head := h.RawBoneNode(humanoid.BoneHead)
	return &LookAt{
		FaceFront:   mgl32.Vec3{0, 0, 1},
		AutoUpdate:  true,
		humanoid:    h,
		applier:     applier,
		restHeadRot: head.WorldRotation(),
		needsUpdate: true,
	}
}

// Yaw returns the current yaw in degrees.
func (l *LookAt) Yaw() float32 { return l.yaw }

// Pitch returns the current pitch in degrees.
func (l *LookAt) Pitch() float32 { return l.pitch }

// SetYawPitch sets the angles directly, in degrees.
func (l *LookAt) SetYawPitch(yaw, pitch float32) {
	l.yaw = yaw
	l.pitch = pitch
	l.needsUpdate = true
}

// Reset recenters the gaze.
func (l *LookAt) Reset() {
	l.SetYawPitch(0, 0)
}

// LookAtWorldPosition returns the gaze origin: the head position displaced by
// OffsetFromHead, in world space.
func (l *LookAt) LookAtWorldPosition() mgl32.Vec3 {
	head := l.humanoid.RawBoneNode(humanoid.BoneHead)
	return head.WorldMatrix().Mul4x1(l.OffsetFromHead.Vec4(1)).Vec3()
}

// LookAtPoint computes yaw/pitch so the gaze points at the given world
// position. The head-to-target vector is expressed in the head's
// rest-relative frame, decomposed into azimuth/altitude together with
// FaceFront, and the differences are wrapped to within half a turn and
// stored in degrees.
func (l *LookAt) LookAtPoint(position mgl32.Vec3) {
	head := l.humanoid.RawBoneNode(humanoid.BoneHead)

	// Rotation of the head since rest, inverted: takes world-space vectors
	// into the rest-relative head frame.
	headRotDelta := l.restHeadRot.Mul(head.WorldRotation().Inverse())

	dir := position.Sub(l.LookAtWorldPosition())
	if dir.Len() == 0 {
		return
	}
	dir = headRotDelta.Rotate(dir).Normalize()

	azimuthTo, altitudeTo := avmath.AzimuthAltitude(dir)
	azimuthFrom, altitudeFrom := avmath.AzimuthAltitude(l.FaceFront)

	yaw := avmath.SanitizeAngle(azimuthTo - azimuthFrom)
	pitch := avmath.SanitizeAngle(altitudeFrom - altitudeTo)

	l.yaw = mgl32.RadToDeg(yaw)
	l.pitch = mgl32.RadToDeg(pitch)
	l.needsUpdate = true
}

// LookAtWorldDirection reconstructs the current gaze direction in world
// space from the stored yaw/pitch.
func (l *LookAt) LookAtWorldDirection() mgl32.Vec3 {
	head := l.humanoid.RawBoneNode(humanoid.BoneHead)

	azimuthFrom, altitudeFrom := avmath.AzimuthAltitude(l.FaceFront)
	azimuth := azimuthFrom + mgl32.DegToRad(l.yaw)
	altitude := altitudeFrom - mgl32.DegToRad(l.pitch)
	dir := avmath.DirectionFromAzimuthAltitude(azimuth, altitude)

	// Back from the rest-relative head frame into world space.
	return head.WorldRotation().Mul(l.restHeadRot.Inverse()).Rotate(dir)
}

// Update drives the controller for one frame: re-aim at the target if
// configured, then push changed angles to the applier. The delta parameter
// exists for hosts that drive smoothing layers; the core controller is
// instantaneous.
func (l *LookAt) Update(delta float32) {
	_ = delta

	if l.Target != nil && l.AutoUpdate {
		l.LookAtPoint(l.Target.WorldPosition())
	}

	if l.needsUpdate {
		l.needsUpdate = false
		if l.applier != nil {
			if f, ok := l.applier.(faceFronter); ok {
				f.setFaceFront(l.FaceFront)
			}
			l.applier.ApplyYawPitch(l.yaw, l.pitch)
		}
	}
}
