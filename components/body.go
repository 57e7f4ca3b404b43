package components

import "github.com/pthm-cable/orbitalrace/vecmath"

// Body is a simulated point mass pulled toward the attractor at the origin.
type Body struct {
	Position vecmath.Vector // 2D, world units
	Velocity vecmath.Vector // 2D, world units per second
	Color    vecmath.Vector // RGB in [0, 1]

	// Trace holds past positions, oldest first. Each step appends the
	// position it started from, so the last entry is the pre-step position.
	Trace []vecmath.Vector
}

// NewBody creates a body with an empty trace.
func NewBody(pos, vel, color vecmath.Vector) Body {
	return Body{Position: pos, Velocity: vel, Color: color}
}

// Altitude returns the distance from the attractor.
func (b *Body) Altitude() float64 {
	return b.Position.Norm()
}
