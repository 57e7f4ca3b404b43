package systems

import (
	"math"
	"testing"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/orbitalrace/components"
	"github.com/pthm-cable/orbitalrace/vecmath"
)

func newBody(px, py, vx, vy float64) components.Body {
	return components.NewBody(vecmath.Vec2(px, py), vecmath.Vec2(vx, vy), vecmath.Vec3(1, 1, 1))
}

// ---------- Gravity ----------

func TestGravity_InverseSquare(t *testing.T) {
	tests := []struct {
		name string
		p    vecmath.Vector
		want vecmath.Vector
	}{
		{"unit x", vecmath.Vec2(1, 0), vecmath.Vec2(-1, 0)},
		{"unit y", vecmath.Vec2(0, 1), vecmath.Vec2(0, -1)},
		{"radius 2", vecmath.Vec2(0, 2), vecmath.Vec2(0, -0.25)},
		{"diagonal", vecmath.Vec2(3, 4), vecmath.Vec2(-3.0/125, -4.0/125)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Gravity(tt.p)
			if !vecmath.ApproxEqual(got, tt.want, 1e-15) {
				t.Errorf("Gravity(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestGravity_AtOriginIsNotFinite(t *testing.T) {
	if Gravity(vecmath.Zero(2)).IsFinite() {
		t.Error("gravity at the attractor should be non-finite")
	}
}

// ---------- StepBody ----------

func TestStepBody_ExactIntegration(t *testing.T) {
	b := newBody(0, 1, -1, 0)
	StepBody(&b, 0.1)

	if !vecmath.ApproxEqual(b.Velocity, vecmath.Vec2(-1, -0.1), 1e-15) {
		t.Errorf("velocity = %v, want (-1, -0.1)", b.Velocity)
	}
	if !vecmath.ApproxEqual(b.Position, vecmath.Vec2(-0.1, 0.99), 1e-15) {
		t.Errorf("position = %v, want (-0.1, 0.99)", b.Position)
	}
	if len(b.Trace) != 1 || !b.Trace[0].Equal(vecmath.Vec2(0, 1)) {
		t.Errorf("trace = %v, want [(0, 1)]", b.Trace)
	}
}

func TestStepBody_ZeroDT(t *testing.T) {
	b := newBody(0.3, -0.7, 0.2, 0.9)
	pos, vel := b.Position, b.Velocity

	StepBody(&b, 0)

	if !b.Position.Equal(pos) || !b.Velocity.Equal(vel) {
		t.Errorf("zero dt moved body: pos %v -> %v, vel %v -> %v", pos, b.Position, vel, b.Velocity)
	}
	if len(b.Trace) != 1 || !b.Trace[0].Equal(pos) {
		t.Errorf("trace = %v, want [%v]", b.Trace, pos)
	}
}

func TestStepBody_TraceGrowsByOne(t *testing.T) {
	b := newBody(1, 0, 0, 1)
	for i := 1; i <= 50; i++ {
		before := b.Position
		StepBody(&b, 0.01)
		if len(b.Trace) != i {
			t.Fatalf("step %d: trace length %d", i, len(b.Trace))
		}
		if !b.Trace[i-1].Equal(before) {
			t.Fatalf("step %d: last trace entry %v, want pre-step position %v", i, b.Trace[i-1], before)
		}
	}
}

func TestStepBody_TraceDoesNotAlias(t *testing.T) {
	b := newBody(1, 0, 0, 1)
	StepBody(&b, 0.1)
	b.Position.Set(0, 42)
	if b.Trace[0].X() != 1 {
		t.Errorf("trace entry changed with position: %v", b.Trace[0])
	}
}

func TestStepBody_CircularOrbitEnergy(t *testing.T) {
	b := newBody(1, 0, 0, 1)
	const dt = 0.001
	const steps = 20000

	var maxDev float64
	for i := 0; i < steps; i++ {
		StepBody(&b, dt)
		r := ComputeReadout(&b, &b)
		if dev := math.Abs(r.ETotal + 0.5); dev > maxDev {
			maxDev = dev
		}
	}

	if maxDev > 5e-3 {
		t.Errorf("total energy drifted by %g from -0.5", maxDev)
	}
	if h := b.Altitude(); math.Abs(h-1) > 1e-2 {
		t.Errorf("circular orbit altitude = %g, want ~1", h)
	}
}

func TestStepBody_AtOriginPropagatesNaN(t *testing.T) {
	b := newBody(0, 0, 0, 0)
	StepBody(&b, 0.01)
	if b.Position.IsFinite() {
		t.Errorf("expected non-finite position, got %v", b.Position)
	}
}

// ---------- PhysicsSystem ----------

func TestPhysicsSystem_StepsInOrder(t *testing.T) {
	w := ecs.NewWorld()
	bodies := ecs.NewMap1[components.Body](w)

	a := newBody(0, 1, -1, 0)
	c := newBody(1, 0, 0, 1)
	ea := bodies.NewEntity(&a)
	ec := bodies.NewEntity(&c)

	sys := NewPhysicsSystem(w)
	sys.Update([]ecs.Entity{ea, ec}, 0.1)
	sys.Update([]ecs.Entity{ea, ec}, 0.1)

	for _, e := range []ecs.Entity{ea, ec} {
		if n := len(bodies.Get(e).Trace); n != 2 {
			t.Errorf("entity %v: trace length %d, want 2", e, n)
		}
	}

	want := newBody(0, 1, -1, 0)
	StepBody(&want, 0.1)
	StepBody(&want, 0.1)
	if got := bodies.Get(ea).Position; !got.Equal(want.Position) {
		t.Errorf("ECS step = %v, direct step = %v", got, want.Position)
	}
}
