package systems

import (
	"math"

	"github.com/pthm-cable/orbitalrace/components"
	"github.com/pthm-cable/orbitalrace/vecmath"
)

// Period returns the Keplerian period 2π·a^1.5 of the orbit, where the
// semi-major axis is a = -1/(2E). It reports false for unbound orbits.
func (r Readout) Period() (float64, bool) {
	if !r.Bound() || !r.Finite() {
		return 0, false
	}
	a := -1 / (2 * r.ETotal)
	return 2 * math.Pi * math.Pow(a, 1.5), true
}

// PredictPath coasts a copy of b for steps steps of length dt and returns
// the positions visited, starting with the current one. b is not modified.
// The path stops early at the first non-finite position.
func PredictPath(b *components.Body, dt float64, steps int) []vecmath.Vector {
	ghost := components.Body{
		Position: b.Position,
		Velocity: b.Velocity,
		Trace:    make([]vecmath.Vector, 0, steps+1),
	}
	for i := 0; i < steps; i++ {
		StepBody(&ghost, dt)
		if !ghost.Position.IsFinite() {
			return ghost.Trace
		}
	}
	// The ghost's trace holds every position but the current one.
	return append(ghost.Trace, ghost.Position)
}

// PredictionSteps picks the number of steps of length dt covering one
// period of a bound orbit, or horizon seconds for an unbound one, capped
// at maxSteps.
func PredictionSteps(r Readout, dt, horizon float64, maxSteps int) int {
	span := horizon
	if p, ok := r.Period(); ok {
		span = p
	}
	n := int(math.Ceil(span / dt))
	if n > maxSteps {
		n = maxSteps
	}
	if n < 0 {
		n = 0
	}
	return n
}
