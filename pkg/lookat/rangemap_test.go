package lookat

import "testing"

func TestRangeMapSaturates(t *testing.T) {
	r := NewRangeMap(90, 10)

	tests := []struct {
		in   float32
		want float32
	}{
		{0, 0},
		{45, 5},
		{90, 10},
		{180, 10}, // clamps at the input max
		{-30, 0},  // negative input clamps to zero
	}
	for _, tt := range tests {
		if got := r.Map(tt.in); got != tt.want {
			t.Errorf("Map(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestRangeMapFloorsInputMax(t *testing.T) {
	r := NewRangeMap(0, 1)
	if r.InputMaxValue != minInputMaxValue {
		t.Fatalf("InputMaxValue = %v, want floor %v", r.InputMaxValue, minInputMaxValue)
	}
	// Even a degenerate curve saturates instead of dividing by zero.
	if got := r.Map(1); got != 1 {
		t.Fatalf("Map(1) = %v, want 1", got)
	}
}
