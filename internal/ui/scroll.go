package ui

import "math"

// Tween eases a displayed value toward a target each frame.
// Embed it wherever a position should glide instead of jump.
type Tween struct {
	Value  float64
	Target float64
}

// Animate moves Value one step toward Target. Call this from Draw().
func (t *Tween) Animate() {
	t.Value = Lerp(t.Value, t.Target, ScrollAnimSpeed)
	if math.Abs(t.Target-t.Value) < 0.5 {
		t.Value = t.Target
	}
}

// Snap jumps straight to the target.
func (t *Tween) Snap() {
	t.Value = t.Target
}
