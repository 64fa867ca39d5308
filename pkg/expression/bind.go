package expression

// Bind is a single weighted effect owned by an expression. Apply accumulates
// additively, so a frame must Clear every bind before reapplying weights;
// the manager's update loop enforces that ordering.
type Bind interface {
	// Apply adds the bind's effect scaled by weight.
	Apply(weight float32)
	// Clear restores the bound property to its initial value.
	Clear()
}
