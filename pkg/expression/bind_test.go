package expression

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/avatarkit/pkg/scene"
)

const bindEpsilon = 1e-6

func near(a, b float32) bool {
	return math.Abs(float64(a-b)) < bindEpsilon
}

func TestMorphTargetBindApplyClear(t *testing.T) {
	mesh := morphMesh("face", 3)

	b := NewMorphTargetBind([]*scene.Mesh{mesh}, 1, 0.8)

	b.Apply(0.5)
	if !near(mesh.MorphInfluences[1], 0.4) {
		t.Fatalf("influence = %v, want 0.4", mesh.MorphInfluences[1])
	}
	if mesh.MorphInfluences[0] != 0 || mesh.MorphInfluences[2] != 0 {
		t.Fatal("bind touched unrelated morph targets")
	}

	// Apply adds on top of the current value.
	b.Apply(0.5)
	if !near(mesh.MorphInfluences[1], 0.8) {
		t.Fatalf("influence after second apply = %v, want 0.8", mesh.MorphInfluences[1])
	}

	b.Clear()
	if mesh.MorphInfluences[1] != 0 {
		t.Fatalf("influence after clear = %v, want 0", mesh.MorphInfluences[1])
	}
}

func TestMorphTargetBindClampsBindWeight(t *testing.T) {
	mesh := morphMesh("face", 1)

	over := NewMorphTargetBind([]*scene.Mesh{mesh}, 0, 1.5)
	over.Apply(1)
	if mesh.MorphInfluences[0] != 1 {
		t.Fatalf("influence with oversized bind weight = %v, want 1", mesh.MorphInfluences[0])
	}
	over.Clear()

	under := NewMorphTargetBind([]*scene.Mesh{mesh}, 0, -0.5)
	under.Apply(1)
	if mesh.MorphInfluences[0] != 0 {
		t.Fatalf("influence with negative bind weight = %v, want 0", mesh.MorphInfluences[0])
	}
}

func TestMorphTargetBindSkipsOutOfRange(t *testing.T) {
	small := morphMesh("small", 1)
	large := morphMesh("large", 4)

	b := NewMorphTargetBind([]*scene.Mesh{small, large}, 2, 1)

	b.Apply(1)
	if small.MorphInfluences[0] != 0 {
		t.Fatal("out-of-range mesh must be skipped")
	}
	if large.MorphInfluences[2] != 1 {
		t.Fatalf("in-range mesh influence = %v, want 1", large.MorphInfluences[2])
	}
}

func TestMaterialColorBindDelta(t *testing.T) {
	mat := scene.NewMaterial("skin", scene.MaterialToon)
	mat.SetColor("shadeColor", scene.Color{R: 0.2, G: 0.2, B: 0.2})

	b := NewMaterialColorBind(mat, ColorTypeShade, scene.Color{R: 1, G: 0.2, B: 0.6}, 1)

	b.Apply(0.5)
	got, _ := mat.ColorProperty("shadeColor")
	if !near(got.R, 0.6) || !near(got.G, 0.2) || !near(got.B, 0.4) {
		t.Fatalf("shadeColor = %+v, want {0.6 0.2 0.4}", *got)
	}

	b.Clear()
	got, _ = mat.ColorProperty("shadeColor")
	if !near(got.R, 0.2) || !near(got.G, 0.2) || !near(got.B, 0.2) {
		t.Fatalf("shadeColor after clear = %+v, want initial {0.2 0.2 0.2}", *got)
	}
}

func TestMaterialColorBindAlphaOnBaseColorOnly(t *testing.T) {
	mat := scene.NewMaterial("skin", scene.MaterialStandard)
	mat.Opacity = 1

	b := NewMaterialColorBind(mat, ColorTypeColor, scene.Color{R: 1, G: 1, B: 1}, 0.5)
	b.Apply(1)
	if !near(mat.Opacity, 0.5) {
		t.Fatalf("opacity = %v, want 0.5", mat.Opacity)
	}
	b.Clear()
	if !near(mat.Opacity, 1) {
		t.Fatalf("opacity after clear = %v, want 1", mat.Opacity)
	}

	// Non-base channels never touch opacity.
	b2 := NewMaterialColorBind(mat, ColorTypeEmission, scene.Color{R: 1, G: 0, B: 0}, 0)
	b2.Apply(1)
	if !near(mat.Opacity, 1) {
		t.Fatalf("emission bind changed opacity to %v", mat.Opacity)
	}
}

func TestMaterialColorBindUnsupportedChannelIsNoop(t *testing.T) {
	mat := scene.NewMaterial("flat", scene.MaterialBasic)
	before, _ := mat.ColorProperty("color")
	initial := *before

	b := NewMaterialColorBind(mat, ColorTypeRim, scene.Color{R: 1, G: 0, B: 0}, 0)
	b.Apply(1)
	b.Clear()

	after, _ := mat.ColorProperty("color")
	if *after != initial {
		t.Fatalf("no-op bind mutated material: %+v", *after)
	}
}

func TestTextureTransformBind(t *testing.T) {
	mat := scene.NewMaterial("face", scene.MaterialToon)
	original := scene.NewTexture("face_diffuse")
	mat.SetTexture("map", original)

	b := NewTextureTransformBind(mat, mgl32.Vec2{0.5, 0.25}, mgl32.Vec2{2, 2})

	// The bind works on a clone so the caller's texture stays pristine.
	bound := mat.Texture("map")
	if bound == original {
		t.Fatal("bind must clone the texture before transforming it")
	}

	b.Apply(0.5)
	if !near(bound.Offset.X(), 0.25) || !near(bound.Offset.Y(), 0.125) {
		t.Fatalf("offset = %v, want {0.25 0.125}", bound.Offset)
	}
	if !near(bound.Scale.X(), 1.5) || !near(bound.Scale.Y(), 1.5) {
		t.Fatalf("scale = %v, want {1.5 1.5}", bound.Scale)
	}
	if original.Offset != (mgl32.Vec2{}) || original.Scale != (mgl32.Vec2{1, 1}) {
		t.Fatal("original texture was mutated")
	}

	b.Clear()
	if bound.Offset != (mgl32.Vec2{}) || bound.Scale != (mgl32.Vec2{1, 1}) {
		t.Fatalf("clear did not restore transform: offset=%v scale=%v", bound.Offset, bound.Scale)
	}
}
