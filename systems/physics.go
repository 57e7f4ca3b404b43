// Package systems contains the physics and readout systems for the simulation.
package systems

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/orbitalrace/components"
	"github.com/pthm-cable/orbitalrace/vecmath"
)

// Gravity returns the acceleration toward the origin for a unit
// gravitational parameter: -p / |p|³. At the origin the result is
// non-finite; it is propagated rather than clamped.
func Gravity(p vecmath.Vector) vecmath.Vector {
	r := p.Norm()
	return p.Neg().Div(r * r * r)
}

// StepBody advances b by dt using semi-implicit Euler.
// The starting position is appended to the trace before anything moves.
func StepBody(b *components.Body, dt float64) {
	b.Trace = append(b.Trace, b.Position)
	f := Gravity(b.Position)
	b.Velocity = b.Velocity.Add(f.Scale(dt))
	b.Position = b.Position.Add(b.Velocity.Scale(dt))
}

// PhysicsSystem steps bodies stored in an ECS world.
type PhysicsSystem struct {
	bodies *ecs.Map1[components.Body]
}

// NewPhysicsSystem creates a new physics system.
func NewPhysicsSystem(w *ecs.World) *PhysicsSystem {
	return &PhysicsSystem{
		bodies: ecs.NewMap1[components.Body](w),
	}
}

// Update steps each entity once, in the given order, with the same dt.
func (s *PhysicsSystem) Update(entities []ecs.Entity, dt float64) {
	for _, e := range entities {
		if b := s.bodies.Get(e); b != nil {
			StepBody(b, dt)
		}
	}
}
