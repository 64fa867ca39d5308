package lookat

import "github.com/Faultbox/avatarkit/pkg/expression"

// ExpressionApplier routes gaze angles into the four lookAt expression
// weights instead of rotating bones. Only the outer horizontal map is used;
// expression-driven eyes have no per-eye asymmetry.
type ExpressionApplier struct {
	RangeMapHorizontalOuter RangeMap
	RangeMapVerticalDown    RangeMap
	RangeMapVerticalUp      RangeMap

	expressions *expression.Manager
}

// NewExpressionApplier creates an applier over the given expression manager.
func NewExpressionApplier(m *expression.Manager, outer, down, up RangeMap) *ExpressionApplier {
	return &ExpressionApplier{
		RangeMapHorizontalOuter: outer,
		RangeMapVerticalDown:    down,
		RangeMapVerticalUp:      up,
		expressions:             m,
	}
}

// ApplyYawPitch sets the lookUp/lookDown/lookLeft/lookRight weights for the
// given gaze angles (degrees). The opposing weight of each axis is zeroed.
func (a *ExpressionApplier) ApplyYawPitch(yaw, pitch float32) {
	if pitch >= 0 {
		a.expressions.SetValue(expression.PresetLookUp, 0)
		a.expressions.SetValue(expression.PresetLookDown, a.RangeMapVerticalDown.Map(pitch))
	} else {
		a.expressions.SetValue(expression.PresetLookDown, 0)
		a.expressions.SetValue(expression.PresetLookUp, a.RangeMapVerticalUp.Map(-pitch))
	}

	if yaw >= 0 {
		a.expressions.SetValue(expression.PresetLookRight, 0)
		a.expressions.SetValue(expression.PresetLookLeft, a.RangeMapHorizontalOuter.Map(yaw))
	} else {
		a.expressions.SetValue(expression.PresetLookLeft, 0)
		a.expressions.SetValue(expression.PresetLookRight, a.RangeMapHorizontalOuter.Map(-yaw))
	}
}
