// Package lookat implements the gaze controller: yaw/pitch state derived from
// a world-space target, routed into either eye bone rotations or lookAt
// expression weights through saturating range maps.
package lookat

import "github.com/go-gl/mathgl/mgl32"

// minInputMaxValue floors RangeMap.InputMaxValue to keep the division sane.
const minInputMaxValue = 0.01

// RangeMap is a saturating linear curve: Map(x) = OutputScale *
// clamp(x/InputMaxValue, 0, 1).
type RangeMap struct {
	InputMaxValue float32
	OutputScale   float32
}

// NewRangeMap creates a range map, flooring inputMaxValue to a small positive
// minimum.
func NewRangeMap(inputMaxValue, outputScale float32) RangeMap {
	if inputMaxValue < minInputMaxValue {
		inputMaxValue = minInputMaxValue
	}
	return RangeMap{InputMaxValue: inputMaxValue, OutputScale: outputScale}
}

// Map evaluates the curve at x.
func (r RangeMap) Map(x float32) float32 {
	return r.OutputScale * mgl32.Clamp(x/r.InputMaxValue, 0, 1)
}
