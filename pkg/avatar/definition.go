package avatar

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/avatarkit/pkg/expression"
	"github.com/Faultbox/avatarkit/pkg/firstperson"
	"github.com/Faultbox/avatarkit/pkg/humanoid"
	"github.com/Faultbox/avatarkit/pkg/scene"
)

// Definition is the contract the loading collaborator fulfills: everything
// the runtime needs, already resolved to live scene objects. The runtime
// never touches the avatar file format itself.
type Definition struct {
	// Bones maps humanoid bone names to scene nodes. Must cover
	// humanoid.RequiredBones.
	Bones map[humanoid.BoneName]*scene.Node

	// Meshes lists every renderable mesh of the avatar.
	Meshes []*scene.Mesh

	Expressions []ExpressionDef

	// LookAt configures gaze control; nil selects bone mode with default
	// range maps.
	LookAt *LookAtDef

	FirstPersonAnnotations []firstperson.MeshAnnotation
}

// ExpressionDef describes one expression with its bind descriptors.
type ExpressionDef struct {
	Name string
	// Preset marks the name as a preset reference; unknown preset names are
	// warned about and skipped.
	Preset   bool
	IsBinary bool

	OverrideBlink  expression.Override
	OverrideLookAt expression.Override
	OverrideMouth  expression.Override

	MorphBinds            []MorphBindDef
	MaterialColorBinds    []MaterialColorBindDef
	TextureTransformBinds []TextureTransformBindDef
}

// MorphBindDef binds one morph target index across mesh primitives.
type MorphBindDef struct {
	Meshes []*scene.Mesh
	Index  int
	Weight float32
}

// MaterialColorBindDef binds one material color channel toward a target.
type MaterialColorBindDef struct {
	Material    *scene.Material
	Type        expression.MaterialColorType
	TargetValue scene.Color
	TargetAlpha float32
}

// TextureTransformBindDef binds a material's texture UV transforms.
type TextureTransformBindDef struct {
	Material *scene.Material
	Offset   mgl32.Vec2
	Scale    mgl32.Vec2
}

// LookAtMode selects how gaze angles are applied.
type LookAtMode string

const (
	// LookAtModeBone rotates the eye bones.
	LookAtModeBone LookAtMode = "bone"
	// LookAtModeExpression drives the lookUp/Down/Left/Right expressions.
	LookAtModeExpression LookAtMode = "expression"
)

// RangeMapDef is one per-axis range map parameter pair.
type RangeMapDef struct {
	InputMaxValue float32
	OutputScale   float32
}

// LookAtDef configures the gaze controller.
type LookAtDef struct {
	OffsetFromHead mgl32.Vec3
	Mode           LookAtMode

	HorizontalInner RangeMapDef
	HorizontalOuter RangeMapDef
	VerticalDown    RangeMapDef
	VerticalUp      RangeMapDef
}

// DefaultLookAtDef returns bone-mode gaze with conventional eye ranges:
// input saturates at 90 degrees and eyes rotate at most 10.
func DefaultLookAtDef() *LookAtDef {
	return &LookAtDef{
		Mode:            LookAtModeBone,
		HorizontalInner: RangeMapDef{InputMaxValue: 90, OutputScale: 10},
		HorizontalOuter: RangeMapDef{InputMaxValue: 90, OutputScale: 10},
		VerticalDown:    RangeMapDef{InputMaxValue: 90, OutputScale: 10},
		VerticalUp:      RangeMapDef{InputMaxValue: 90, OutputScale: 10},
	}
}
