package expression

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Faultbox/avatarkit/pkg/scene"
)

// morphMesh returns a mesh with the given number of morph targets.
func morphMesh(name string, targets int) *scene.Mesh {
	m := scene.NewMesh(name)
	m.MorphInfluences = make([]float32, targets)
	return m
}

func TestSetValueClamps(t *testing.T) {
	m := NewManager()
	m.Register(New("happy"))

	m.SetValue("happy", 0.25)
	require.Equal(t, float32(0.25), m.GetValue("happy"))

	m.SetValue("happy", 1.8)
	require.Equal(t, float32(1), m.GetValue("happy"))

	m.SetValue("happy", -3)
	require.Equal(t, float32(0), m.GetValue("happy"))

	// Unknown names: setter ignored, getter returns 0.
	m.SetValue("nope", 1)
	require.Equal(t, float32(0), m.GetValue("nope"))
}

func TestRegisterDuplicateSkipped(t *testing.T) {
	m := NewManager()
	first := New("blink")
	m.Register(first)
	m.Register(New("blink"))

	require.Len(t, m.Expressions(), 1)
	require.Same(t, first, m.Expression("blink"))
}

func TestBinaryThreshold(t *testing.T) {
	mesh := morphMesh("face", 1)

	m := NewManager()
	e := New("blink")
	e.IsBinary = true
	e.AddBind(NewMorphTargetBind([]*scene.Mesh{mesh}, 0, 1))
	m.Register(e)

	// 0.49 rounds down to fully off.
	m.SetValue("blink", 0.49)
	m.Update()
	require.Equal(t, float32(0), mesh.MorphInfluences[0])

	// Exactly 0.5 still rounds down.
	m.SetValue("blink", 0.5)
	m.Update()
	require.Equal(t, float32(0), mesh.MorphInfluences[0])

	// 0.51 snaps to fully on.
	m.SetValue("blink", 0.51)
	m.Update()
	require.Equal(t, float32(1), mesh.MorphInfluences[0])
}

func TestMorphBindsAccumulateWithinFrame(t *testing.T) {
	mesh := morphMesh("face", 1)

	m := NewManager()
	for _, name := range []string{"happy", "surprised"} {
		e := New(name)
		e.AddBind(NewMorphTargetBind([]*scene.Mesh{mesh}, 0, 1))
		m.Register(e)
	}

	m.SetValue("happy", 0.3)
	m.SetValue("surprised", 0.2)

	// Two expressions on the same morph add up within one frame, but the
	// clear pass stops growth across frames.
	for i := 0; i < 5; i++ {
		m.Update()
	}
	require.InDelta(t, 0.5, mesh.MorphInfluences[0], 1e-6)
}

func TestOverrideBlockZeroesCategory(t *testing.T) {
	mesh := morphMesh("face", 1)

	m := NewManager()
	blink := New(PresetBlink)
	blink.AddBind(NewMorphTargetBind([]*scene.Mesh{mesh}, 0, 1))
	m.Register(blink)

	surprised := New(PresetSurprised)
	surprised.OverrideBlink = OverrideBlock
	m.Register(surprised)

	m.SetValue(PresetBlink, 1)
	m.SetValue(PresetSurprised, 0.4)
	m.Update()

	require.Equal(t, float32(0), mesh.MorphInfluences[0],
		"an active block must zero the blink category")

	// Inactive blocker releases the category.
	m.SetValue(PresetSurprised, 0)
	m.Update()
	require.Equal(t, float32(1), mesh.MorphInfluences[0])
}

func TestOverrideAccumulationClampsAtZero(t *testing.T) {
	m := NewManager()

	a := New("angry")
	a.OverrideBlink = OverrideBlock
	m.Register(a)
	b := New("happy")
	b.OverrideBlink = OverrideBlock
	m.Register(b)

	m.SetValue("angry", 1)
	m.SetValue("happy", 1)

	mult := m.calculateWeightMultipliers()
	require.Equal(t, float32(0), mult.blink,
		"two blocks must clamp to zero, not go negative")
}

func TestOverrideBlendScalesCategory(t *testing.T) {
	mesh := morphMesh("face", 1)

	m := NewManager()
	blink := New(PresetBlink)
	blink.AddBind(NewMorphTargetBind([]*scene.Mesh{mesh}, 0, 1))
	m.Register(blink)

	happy := New(PresetHappy)
	happy.OverrideBlink = OverrideBlend
	m.Register(happy)

	m.SetValue(PresetBlink, 1)
	m.SetValue(PresetHappy, 0.25)
	m.Update()

	require.InDelta(t, 0.75, mesh.MorphInfluences[0], 1e-6)
}

func TestTrackName(t *testing.T) {
	m := NewManager()
	m.Register(New("happy"))

	require.Equal(t, "Expression_happy.weight", m.TrackName("happy"))
	require.Equal(t, "", m.TrackName("unknown"))
}
