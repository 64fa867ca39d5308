// Package expression implements the expression blending engine: named
// weighted expressions composed of morph-target, material-color and
// texture-transform binds, with override semantics between the blink, lookAt
// and mouth categories.
package expression

// Preset expression names. Custom names outside this set are allowed.
const (
	PresetNeutral = "neutral"

	PresetAa = "aa"
	PresetIh = "ih"
	PresetOu = "ou"
	PresetEe = "ee"
	PresetOh = "oh"

	PresetBlink      = "blink"
	PresetBlinkLeft  = "blinkLeft"
	PresetBlinkRight = "blinkRight"

	PresetLookUp    = "lookUp"
	PresetLookDown  = "lookDown"
	PresetLookLeft  = "lookLeft"
	PresetLookRight = "lookRight"

	PresetHappy     = "happy"
	PresetAngry     = "angry"
	PresetSad       = "sad"
	PresetRelaxed   = "relaxed"
	PresetSurprised = "surprised"
)

// PresetNames lists every preset expression name.
var PresetNames = []string{
	PresetNeutral,
	PresetAa, PresetIh, PresetOu, PresetEe, PresetOh,
	PresetBlink, PresetBlinkLeft, PresetBlinkRight,
	PresetLookUp, PresetLookDown, PresetLookLeft, PresetLookRight,
	PresetHappy, PresetAngry, PresetSad, PresetRelaxed, PresetSurprised,
}

// Category membership used by the manager's override pass.
var (
	blinkExpressionNames  = []string{PresetBlink, PresetBlinkLeft, PresetBlinkRight}
	lookAtExpressionNames = []string{PresetLookUp, PresetLookDown, PresetLookLeft, PresetLookRight}
	mouthExpressionNames  = []string{PresetAa, PresetIh, PresetOu, PresetEe, PresetOh}
)

// IsPreset reports whether name is one of the preset expression names.
func IsPreset(name string) bool {
	for _, p := range PresetNames {
		if p == name {
			return true
		}
	}
	return false
}

func containsName(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}
