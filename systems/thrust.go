package systems

import (
	"github.com/pthm-cable/orbitalrace/components"
	"github.com/pthm-cable/orbitalrace/vecmath"
)

// ThrustAccel is the acceleration per unit joystick deflection.
const ThrustAccel = 0.01

// Joystick is the per-frame directional thrust state.
// Flags are level-triggered: true while the key is held.
type Joystick struct {
	Right, Left, Up, Down bool
}

// Axes returns the deflection along the radial (x) and tangential (y)
// axes, each in {-1, 0, 1}. Opposing flags cancel.
func (j Joystick) Axes() (jx, jy float64) {
	if j.Right {
		jx++
	}
	if j.Left {
		jx--
	}
	if j.Up {
		jy++
	}
	if j.Down {
		jy--
	}
	return jx, jy
}

// Active reports whether any axis is deflected.
func (j Joystick) Active() bool {
	jx, jy := j.Axes()
	return jx != 0 || jy != 0
}

// LocalFrame returns the radial (away from the origin) and tangential
// (90° counter-clockwise) unit vectors at position p.
func LocalFrame(p vecmath.Vector) (radial, tangential vecmath.Vector) {
	radial = p.Normed()
	return radial, vecmath.Ortho(radial)
}

// ApplyThrust adds the joystick thrust to b's velocity in b's local frame:
// right pushes radially outward, up pushes along the orbit.
func ApplyThrust(b *components.Body, j Joystick, dt float64) {
	jx, jy := j.Axes()
	radial, tangential := LocalFrame(b.Position)
	dir := radial.Scale(jx).Add(tangential.Scale(jy))
	b.Velocity = b.Velocity.Add(dir.Scale(ThrustAccel * dt))
}
