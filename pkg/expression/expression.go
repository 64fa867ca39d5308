package expression

import "github.com/go-gl/mathgl/mgl32"

// Override is the rule by which an active expression suppresses a whole
// category of other expressions (blink/lookAt/mouth).
type Override string

const (
	// OverrideNone leaves the category untouched.
	OverrideNone Override = "none"
	// OverrideBlock zeroes the category while this expression has any weight.
	OverrideBlock Override = "block"
	// OverrideBlend reduces the category proportionally to this expression's
	// weight.
	OverrideBlend Override = "blend"
)

// Expression is a named, weighted combination of binds. Weight is clamped to
// [0,1]; binary expressions snap to 0 or 1 at the 0.5 boundary when applied.
type Expression struct {
	Name     string
	IsBinary bool

	OverrideBlink  Override
	OverrideLookAt Override
	OverrideMouth  Override

	weight float32
	binds  []Bind
}

// New creates an expression with no binds, weight 0 and no overrides.
func New(name string) *Expression {
	return &Expression{
		Name:           name,
		OverrideBlink:  OverrideNone,
		OverrideLookAt: OverrideNone,
		OverrideMouth:  OverrideNone,
	}
}

// NodeName returns the scene-node-style name used in animation track names.
func (e *Expression) NodeName() string {
	return "Expression_" + e.Name
}

// AddBind appends a bind to the expression.
func (e *Expression) AddBind(b Bind) {
	e.binds = append(e.binds, b)
}

// Weight returns the current weight.
func (e *Expression) Weight() float32 {
	return e.weight
}

// SetWeight sets the weight, clamped to [0,1].
func (e *Expression) SetWeight(w float32) {
	e.weight = mgl32.Clamp(w, 0, 1)
}

// outputWeight is the weight after binary resolution: a binary expression is
// fully on above 0.5 and fully off at or below it.
func (e *Expression) outputWeight() float32 {
	if e.IsBinary {
		if e.weight > 0.5 {
			return 1
		}
		return 0
	}
	return e.weight
}

// overrideAmount returns how much this expression suppresses a category under
// the given override mode: 1 for an active block, the output weight for
// blend, 0 otherwise.
func (e *Expression) overrideAmount(mode Override) float32 {
	switch mode {
	case OverrideBlock:
		if e.outputWeight() > 0 {
			return 1
		}
		return 0
	case OverrideBlend:
		return e.outputWeight()
	default:
		return 0
	}
}

// applyWeight feeds outputWeight * multiplier to every bind. Only the
// manager's update loop calls this, holding the token from the clear pass;
// binds accumulate additively and must be cleared first.
func (e *Expression) applyWeight(_ clearToken, multiplier float32) {
	w := e.outputWeight() * multiplier
	for _, b := range e.binds {
		b.Apply(w)
	}
}

// clearAppliedWeight clears every bind and yields the token applyWeight
// requires, making the clear-before-apply ordering explicit at the call site.
func (e *Expression) clearAppliedWeight() clearToken {
	for _, b := range e.binds {
		b.Clear()
	}
	return clearToken{}
}

// clearToken witnesses that the clear pass ran before an apply.
type clearToken struct{}
