package vecmath

import (
	"fmt"
	"math"
)

func must2(vs ...Vector) {
	for _, v := range vs {
		if v.n != 2 {
			panic(fmt.Sprintf("vecmath: 2D operation on vector of length %d", v.n))
		}
	}
}

// X returns the first component of a 2D vector.
func (v Vector) X() float64 { return v.At(0) }

// Y returns the second component of a 2D vector.
func (v Vector) Y() float64 { return v.At(1) }

// Ortho rotates a 2D vector 90° counter-clockwise: (x, y) -> (-y, x).
func Ortho(v Vector) Vector {
	must2(v)
	return Vec2(-v.c[1], v.c[0])
}

// Cross returns the scalar cross product u.x*v.y - u.y*v.x.
func Cross(u, v Vector) float64 {
	must2(u, v)
	return u.c[0]*v.c[1] - u.c[1]*v.c[0]
}

// SinPhi returns the sine of the signed angle from u to v.
func SinPhi(u, v Vector) float64 {
	return Cross(u, v) / math.Sqrt(u.SquaredNorm()*v.SquaredNorm())
}

// SAngle returns the signed angle from u to v as asin(SinPhi(u, v)).
// The result is confined to [-π/2, π/2]: angles beyond ±90° fold back
// toward zero. Callers displaying it rely on that folding.
func SAngle(u, v Vector) float64 {
	return math.Asin(SinPhi(u, v))
}

// DirectionVector returns (length·cos(angle), length·sin(angle)).
func DirectionVector(angle, length float64) Vector {
	return Vec2(length*math.Cos(angle), length*math.Sin(angle))
}

// UnitDirection is DirectionVector with length 1.
func UnitDirection(angle float64) Vector {
	return DirectionVector(angle, 1)
}
