package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/Faultbox/avatarkit/internal/config"
	"github.com/Faultbox/avatarkit/internal/logger"
	"github.com/Faultbox/avatarkit/pkg/avatar"
	"github.com/Faultbox/avatarkit/pkg/expression"
	"github.com/Faultbox/avatarkit/pkg/firstperson"
	"github.com/Faultbox/avatarkit/pkg/humanoid"
	"github.com/Faultbox/avatarkit/pkg/scene"
)

// simulationResult is what simulate dumps after the last frame.
type simulationResult struct {
	Frames  int                   `yaml:"frames" json:"frames"`
	Yaw     float32               `yaml:"yaw" json:"yaw"`
	Pitch   float32               `yaml:"pitch" json:"pitch"`
	Weights map[string]float32    `yaml:"weights" json:"weights"`
	Bones   map[string][4]float32 `yaml:"bones" json:"bones"` // local rotation, wxyz
}

func cmdSimulate() {
	config.ParseFlags()
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	av, err := avatar.New(demoDefinition(cfg))
	if err != nil {
		logger.Error("failed to construct avatar", zap.Error(err))
		os.Exit(1)
	}

	if cfg.LookAt.Enabled {
		target := scene.NewNode("gazeTarget")
		target.Position = mgl32.Vec3{cfg.LookAt.Target[0], cfg.LookAt.Target[1], cfg.LookAt.Target[2]}
		av.LookAt.Target = target
	}

	// A fixed scenario: half smile, speaking "aa", surprised blocks blinking.
	av.Expressions.SetValue(expression.PresetHappy, 0.5)
	av.Expressions.SetValue(expression.PresetAa, 0.8)
	av.Expressions.SetValue(expression.PresetBlink, 1.0)
	av.Expressions.SetValue(expression.PresetSurprised, 1.0)

	for i := 0; i < cfg.Playback.Frames; i++ {
		av.Update(cfg.Playback.Delta)
	}

	result := simulationResult{
		Frames:  cfg.Playback.Frames,
		Yaw:     av.LookAt.Yaw(),
		Pitch:   av.LookAt.Pitch(),
		Weights: make(map[string]float32),
		Bones:   make(map[string][4]float32),
	}
	for _, e := range av.Expressions.Expressions() {
		result.Weights[e.Name] = e.Weight()
	}
	for name, tf := range av.Humanoid.GetRawAbsolutePose() {
		q := tf.Rotation
		result.Bones[string(name)] = [4]float32{q.W, q.X(), q.Y(), q.Z()}
	}

	switch cfg.Output.Format {
	case "json":
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			logger.Error("failed to encode result", zap.Error(err))
			os.Exit(1)
		}
		fmt.Println(string(data))
	default:
		data, err := yaml.Marshal(result)
		if err != nil {
			logger.Error("failed to encode result", zap.Error(err))
			os.Exit(1)
		}
		fmt.Print(string(data))
	}
}

// demoDefinition builds a small synthetic character: a vertical bone chain
// with eyes, one skinned face mesh with two morph targets, and a toon
// material, then wires the standard expression set and gaze config on top.
func demoDefinition(cfg *config.Config) *avatar.Definition {
	root := scene.NewNode("root")

	place := func(parent *scene.Node, name string, y float32) *scene.Node {
		n := scene.NewNode(name)
		n.Position = mgl32.Vec3{0, y, 0}
		parent.AddChild(n)
		return n
	}

	hips := place(root, "hips", 0.9)
	spine := place(hips, "spine", 0.2)
	chest := place(spine, "chest", 0.2)
	neck := place(chest, "neck", 0.2)
	head := place(neck, "head", 0.1)

	leftEye := scene.NewNode("leftEye")
	leftEye.Position = mgl32.Vec3{0.03, 0.05, 0.05}
	head.AddChild(leftEye)
	rightEye := scene.NewNode("rightEye")
	rightEye.Position = mgl32.Vec3{-0.03, 0.05, 0.05}
	head.AddChild(rightEye)

	limb := func(parent *scene.Node, name string, offset mgl32.Vec3) *scene.Node {
		n := scene.NewNode(name)
		n.Position = offset
		parent.AddChild(n)
		return n
	}

	lUpperArm := limb(chest, "leftUpperArm", mgl32.Vec3{0.15, 0.15, 0})
	lLowerArm := limb(lUpperArm, "leftLowerArm", mgl32.Vec3{0.25, 0, 0})
	lHand := limb(lLowerArm, "leftHand", mgl32.Vec3{0.25, 0, 0})
	rUpperArm := limb(chest, "rightUpperArm", mgl32.Vec3{-0.15, 0.15, 0})
	rLowerArm := limb(rUpperArm, "rightLowerArm", mgl32.Vec3{-0.25, 0, 0})
	rHand := limb(rLowerArm, "rightHand", mgl32.Vec3{-0.25, 0, 0})
	lUpperLeg := limb(hips, "leftUpperLeg", mgl32.Vec3{0.1, 0, 0})
	lLowerLeg := limb(lUpperLeg, "leftLowerLeg", mgl32.Vec3{0, -0.4, 0})
	lFoot := limb(lLowerLeg, "leftFoot", mgl32.Vec3{0, -0.4, 0})
	rUpperLeg := limb(hips, "rightUpperLeg", mgl32.Vec3{-0.1, 0, 0})
	rLowerLeg := limb(rUpperLeg, "rightLowerLeg", mgl32.Vec3{0, -0.4, 0})
	rFoot := limb(rLowerLeg, "rightFoot", mgl32.Vec3{0, -0.4, 0})

	bones := map[humanoid.BoneName]*scene.Node{
		humanoid.BoneHips:          hips,
		humanoid.BoneSpine:         spine,
		humanoid.BoneChest:         chest,
		humanoid.BoneNeck:          neck,
		humanoid.BoneHead:          head,
		humanoid.BoneLeftEye:       leftEye,
		humanoid.BoneRightEye:      rightEye,
		humanoid.BoneLeftUpperArm:  lUpperArm,
		humanoid.BoneLeftLowerArm:  lLowerArm,
		humanoid.BoneLeftHand:      lHand,
		humanoid.BoneRightUpperArm: rUpperArm,
		humanoid.BoneRightLowerArm: rLowerArm,
		humanoid.BoneRightHand:     rHand,
		humanoid.BoneLeftUpperLeg:  lUpperLeg,
		humanoid.BoneLeftLowerLeg:  lLowerLeg,
		humanoid.BoneLeftFoot:      lFoot,
		humanoid.BoneRightUpperLeg: rUpperLeg,
		humanoid.BoneRightLowerLeg: rLowerLeg,
		humanoid.BoneRightFoot:     rFoot,
	}

	faceMat := scene.NewMaterial("face", scene.MaterialToon)
	faceMat.SetTexture("map", scene.NewTexture("faceTex"))

	face := scene.NewMesh("face")
	face.Node = head
	face.Materials = []*scene.Material{faceMat}
	face.MorphInfluences = make([]float32, 2) // 0: smile, 1: mouth open
	face.Skeleton = &scene.Skeleton{Joints: []*scene.Node{head, neck}}
	face.Indices = []uint32{0, 1, 2}
	face.Skin = []scene.VertexSkin{
		{Joints: [4]int{0}, Weights: [4]float32{1}},
		{Joints: [4]int{0}, Weights: [4]float32{1}},
		{Joints: [4]int{0}, Weights: [4]float32{1}},
	}

	faceMeshes := []*scene.Mesh{face}

	expressions := []avatar.ExpressionDef{
		{
			Name: expression.PresetHappy, Preset: true,
			MorphBinds: []avatar.MorphBindDef{{Meshes: faceMeshes, Index: 0, Weight: 1}},
			MaterialColorBinds: []avatar.MaterialColorBindDef{{
				Material: faceMat, Type: expression.ColorTypeShade,
				TargetValue: scene.Color{R: 1, G: 0.8, B: 0.8}, TargetAlpha: 1,
			}},
		},
		{
			Name: expression.PresetAa, Preset: true,
			MorphBinds: []avatar.MorphBindDef{{Meshes: faceMeshes, Index: 1, Weight: 1}},
		},
		{
			Name: expression.PresetBlink, Preset: true, IsBinary: true,
			MorphBinds: []avatar.MorphBindDef{{Meshes: faceMeshes, Index: 0, Weight: 1}},
		},
		{
			Name: expression.PresetSurprised, Preset: true,
			OverrideBlink: expression.OverrideBlock,
			MorphBinds:    []avatar.MorphBindDef{{Meshes: faceMeshes, Index: 1, Weight: 0.5}},
		},
		{
			Name: expression.PresetLookUp, Preset: true,
		},
		{
			Name: expression.PresetLookDown, Preset: true,
		},
		{
			Name: expression.PresetLookLeft, Preset: true,
		},
		{
			Name: expression.PresetLookRight, Preset: true,
		},
	}

	lookAtDef := avatar.DefaultLookAtDef()
	if cfg.LookAt.Mode == "expression" {
		lookAtDef.Mode = avatar.LookAtModeExpression
		lookAtDef.HorizontalOuter.OutputScale = 1
		lookAtDef.VerticalDown.OutputScale = 1
		lookAtDef.VerticalUp.OutputScale = 1
	}

	return &avatar.Definition{
		Bones:       bones,
		Meshes:      faceMeshes,
		Expressions: expressions,
		LookAt:      lookAtDef,
		FirstPersonAnnotations: []firstperson.MeshAnnotation{
			{Mesh: face, Type: firstperson.TypeAuto},
		},
	}
}
