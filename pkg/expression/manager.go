package expression

import (
	"go.uber.org/zap"

	"github.com/Faultbox/avatarkit/internal/logger"
)

// Manager owns all expressions of one avatar and drives their per-frame
// application, including the cross-category override weighting.
type Manager struct {
	expressions []*Expression
	byName      map[string]*Expression
}

// NewManager creates an empty manager.
func NewManager() *Manager {
	return &Manager{byName: make(map[string]*Expression)}
}

// Register adds an expression. A duplicate name is warned about and skipped.
func (m *Manager) Register(e *Expression) {
	if _, exists := m.byName[e.Name]; exists {
		logger.Warn("duplicate expression name, skipping",
			zap.String("name", e.Name))
		return
	}
	m.expressions = append(m.expressions, e)
	m.byName[e.Name] = e
}

// Expression returns the named expression, or nil.
func (m *Manager) Expression(name string) *Expression {
	return m.byName[name]
}

// Expressions returns all registered expressions in registration order.
func (m *Manager) Expressions() []*Expression {
	return m.expressions
}

// SetValue sets the named expression's weight, clamped to [0,1]. Unknown
// names are ignored.
func (m *Manager) SetValue(name string, weight float32) {
	if e := m.byName[name]; e != nil {
		e.SetWeight(weight)
	}
}

// GetValue returns the named expression's weight, or 0 for unknown names.
func (m *Manager) GetValue(name string) float32 {
	if e := m.byName[name]; e != nil {
		return e.Weight()
	}
	return 0
}

// TrackName returns the animation track name that drives the named
// expression's weight ("<nodeName>.weight"), or "" for unknown names.
// External animation-clip systems address expressions through this contract.
func (m *Manager) TrackName(name string) string {
	e := m.byName[name]
	if e == nil {
		return ""
	}
	return e.NodeName() + ".weight"
}

// categoryMultipliers are the override multipliers for one frame.
type categoryMultipliers struct {
	blink  float32
	lookAt float32
	mouth  float32
}

// calculateWeightMultipliers computes how much each category is suppressed
// this frame. Each multiplier starts at 1 and every expression subtracts its
// override amount; the result is clamped at 0, so a single fully-blocking
// expression zeroes the category regardless of the others.
func (m *Manager) calculateWeightMultipliers() categoryMultipliers {
	mult := categoryMultipliers{blink: 1, lookAt: 1, mouth: 1}
	for _, e := range m.expressions {
		mult.blink -= e.overrideAmount(e.OverrideBlink)
		mult.lookAt -= e.overrideAmount(e.OverrideLookAt)
		mult.mouth -= e.overrideAmount(e.OverrideMouth)
	}
	if mult.blink < 0 {
		mult.blink = 0
	}
	if mult.lookAt < 0 {
		mult.lookAt = 0
	}
	if mult.mouth < 0 {
		mult.mouth = 0
	}
	return mult
}

// Update applies all expression weights for this frame. The clear pass must
// complete before any apply because binds accumulate additively; the token
// returned by the clear pass is what the apply pass consumes.
func (m *Manager) Update() {
	multipliers := m.calculateWeightMultipliers()

	tokens := make([]clearToken, len(m.expressions))
	for i, e := range m.expressions {
		tokens[i] = e.clearAppliedWeight()
	}

	for i, e := range m.expressions {
		mult := float32(1)
		if containsName(blinkExpressionNames, e.Name) {
			mult *= multipliers.blink
		}
		if containsName(lookAtExpressionNames, e.Name) {
			mult *= multipliers.lookAt
		}
		if containsName(mouthExpressionNames, e.Name) {
			mult *= multipliers.mouth
		}
		e.applyWeight(tokens[i], mult)
	}
}
