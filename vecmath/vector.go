// Package vecmath provides the fixed-length float vector used by the orbital
// simulation, plus the 2D helpers (orthogonal complement, cross product,
// signed angle) the physics and HUD are built on.
package vecmath

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// MaxLen is the largest vector length supported. Components live in a fixed
// array so a Vector copies by value and never shares storage.
const MaxLen = 4

var (
	// ErrInvalidLength is returned when a literal list does not match the
	// requested vector length.
	ErrInvalidLength = errors.New("vecmath: invalid vector initializer list length")
	// ErrInvalidDimension is returned for lengths outside [1, MaxLen].
	ErrInvalidDimension = errors.New("vecmath: invalid vector length")
)

// IndexError is the panic value for out-of-range component access.
type IndexError struct {
	Index, Len int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("vecmath: index %d out of range [0,%d)", e.Index, e.Len)
}

// Vector is a fixed-length tuple of float64 components.
// The zero Vector has length 0 and is only useful as a placeholder.
type Vector struct {
	n int
	c [MaxLen]float64
}

// New builds a vector of length n from exactly n values.
func New(n int, values ...float64) (Vector, error) {
	if n < 1 || n > MaxLen {
		return Vector{}, fmt.Errorf("%w: %d", ErrInvalidDimension, n)
	}
	if len(values) != n {
		return Vector{}, fmt.Errorf("%w: got %d values, want %d", ErrInvalidLength, len(values), n)
	}
	v := Vector{n: n}
	copy(v.c[:n], values)
	return v, nil
}

// MustNew is like New but panics on error. Intended for literal data.
func MustNew(n int, values ...float64) Vector {
	v, err := New(n, values...)
	if err != nil {
		panic(err)
	}
	return v
}

// Zero returns the zero vector of length n.
func Zero(n int) Vector {
	if n < 1 || n > MaxLen {
		panic(fmt.Errorf("%w: %d", ErrInvalidDimension, n))
	}
	return Vector{n: n}
}

// Vec2 returns a 2D vector.
func Vec2(x, y float64) Vector {
	return Vector{n: 2, c: [MaxLen]float64{x, y}}
}

// Vec3 returns a 3D vector.
func Vec3(x, y, z float64) Vector {
	return Vector{n: 3, c: [MaxLen]float64{x, y, z}}
}

// Len returns the number of components.
func (v Vector) Len() int { return v.n }

// At returns component i. Panics with *IndexError if i is out of range.
func (v Vector) At(i int) float64 {
	v.check(i)
	return v.c[i]
}

// Set assigns component i. Panics with *IndexError if i is out of range.
func (v *Vector) Set(i int, x float64) {
	v.check(i)
	v.c[i] = x
}

func (v Vector) check(i int) {
	if i < 0 || i >= v.n {
		panic(&IndexError{Index: i, Len: v.n})
	}
}

// SetZero clears every component, keeping the length.
func (v *Vector) SetZero() {
	v.c = [MaxLen]float64{}
}

// Slice returns a copy of the components.
func (v Vector) Slice() []float64 {
	out := make([]float64, v.n)
	copy(out, v.c[:v.n])
	return out
}

func (v *Vector) view() []float64 { return v.c[:v.n] }

// Add returns v + w. Lengths must match.
func (v Vector) Add(w Vector) Vector {
	out := Vector{n: v.n}
	floats.AddTo(out.view(), v.view(), w.view())
	return out
}

// Sub returns v - w. Lengths must match.
func (v Vector) Sub(w Vector) Vector {
	out := Vector{n: v.n}
	floats.SubTo(out.view(), v.view(), w.view())
	return out
}

// Scale returns c * v.
func (v Vector) Scale(c float64) Vector {
	out := Vector{n: v.n}
	floats.ScaleTo(out.view(), c, v.view())
	return out
}

// Div returns v / c, computed as v * (1/c).
func (v Vector) Div(c float64) Vector {
	return v.Scale(1 / c)
}

// Neg returns -v.
func (v Vector) Neg() Vector {
	return v.Scale(-1)
}

// AddInPlace sets v to v + w.
func (v *Vector) AddInPlace(w Vector) {
	floats.Add(v.view(), w.view())
}

// SubInPlace sets v to v - w.
func (v *Vector) SubInPlace(w Vector) {
	floats.Sub(v.view(), w.view())
}

// ScaleInPlace sets v to c * v.
func (v *Vector) ScaleInPlace(c float64) {
	floats.Scale(c, v.view())
}

// Copy returns v. Vectors are values; Copy exists for call sites that
// want the intent spelled out.
func (v Vector) Copy() Vector { return v }

// Dot returns the dot product of u and v. Lengths must match.
func Dot(u, v Vector) float64 {
	return floats.Dot(u.view(), v.view())
}

// Dot returns the dot product of v and w.
func (v Vector) Dot(w Vector) float64 {
	return Dot(v, w)
}

// SquaredNorm returns the sum of squared components.
func (v Vector) SquaredNorm() float64 {
	return Dot(v, v)
}

// Norm returns the Euclidean length.
func (v Vector) Norm() float64 {
	return math.Sqrt(v.SquaredNorm())
}

// Normed returns v / |v|. A zero vector yields non-finite components.
func (v Vector) Normed() Vector {
	return v.Div(v.Norm())
}

// Equal reports whether u and v have the same length and components.
func (v Vector) Equal(w Vector) bool {
	return v.n == w.n && floats.Equal(v.view(), w.view())
}

// ApproxEqual reports whether u and v match within tol per component.
func ApproxEqual(u, v Vector, tol float64) bool {
	return u.n == v.n && floats.EqualApprox(u.view(), v.view(), tol)
}

// IsFinite reports whether no component is NaN or infinite.
func (v Vector) IsFinite() bool {
	for _, x := range v.c[:v.n] {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}
	return true
}

func (v Vector) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i, x := range v.c[:v.n] {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%g", x)
	}
	sb.WriteByte(')')
	return sb.String()
}

// CosPhi returns the cosine of the angle between u and v.
func CosPhi(u, v Vector) float64 {
	return Dot(u, v) / math.Sqrt(u.SquaredNorm()*v.SquaredNorm())
}

// Angle returns the unsigned angle between u and v in [0, π].
func Angle(u, v Vector) float64 {
	return math.Acos(CosPhi(u, v))
}
