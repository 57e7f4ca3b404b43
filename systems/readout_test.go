package systems

import (
	"math"
	"testing"
)

func TestComputeReadout_CircularOrbit(t *testing.T) {
	player := newBody(1, 0, 0, 1)
	ref := newBody(0, 1, -1, 0)

	r := ComputeReadout(&player, &ref)

	checks := []struct {
		name      string
		got, want float64
	}{
		{"altitude", r.Altitude, 1},
		{"v_orbital", r.VOrbital, 1},
		{"v_vertical", r.VVertical, 0},
		{"v_circular", r.VCircular, 1},
		{"orbital_pct", r.OrbitalExcessPct, 0},
		{"angle", r.AngleDeg, -90},
		{"kinetic", r.EKinetic, 0.5},
		{"potential", r.EPotential, -1},
		{"total", r.ETotal, -0.5},
	}
	for _, c := range checks {
		if math.Abs(c.got-c.want) > 1e-9 {
			t.Errorf("%s = %g, want %g", c.name, c.got, c.want)
		}
	}
	if !r.Bound() {
		t.Error("circular orbit should be bound")
	}
	if !r.Finite() {
		t.Error("expected finite readout")
	}
}

func TestComputeReadout_VelocityDecomposition(t *testing.T) {
	// At radius 4 on +y: radial is +y, tangential is -x.
	player := newBody(0, 4, -0.3, 0.2)
	r := ComputeReadout(&player, &player)

	if math.Abs(r.VVertical-0.2) > 1e-12 {
		t.Errorf("v_vertical = %g, want 0.2", r.VVertical)
	}
	if math.Abs(r.VOrbital-0.3) > 1e-12 {
		t.Errorf("v_orbital = %g, want 0.3", r.VOrbital)
	}
	if math.Abs(r.VCircular-0.5) > 1e-12 {
		t.Errorf("v_circular = %g, want 0.5", r.VCircular)
	}
	if math.Abs(r.OrbitalExcessPct+40) > 1e-9 {
		t.Errorf("orbital_pct = %g, want -40", r.OrbitalExcessPct)
	}
	if r.AngleDeg != 0 {
		t.Errorf("angle to self = %g, want 0", r.AngleDeg)
	}
}

func TestComputeReadout_EscapeIsUnbound(t *testing.T) {
	player := newBody(1, 0, 0, 1.5)
	r := ComputeReadout(&player, &player)
	if r.Bound() {
		t.Errorf("v=1.5 at r=1 should escape, e_total = %g", r.ETotal)
	}
}

func TestComputeReadout_AtOriginNotFinite(t *testing.T) {
	player := newBody(0, 0, 0, 0)
	ref := newBody(0, 1, 0, 0)
	if ComputeReadout(&player, &ref).Finite() {
		t.Error("readout at the attractor should not be finite")
	}
}

func TestReadout_Fields(t *testing.T) {
	player := newBody(1, 0, 0, 1)
	ref := newBody(0, 1, -1, 0)
	fields := ComputeReadout(&player, &ref).Fields()

	want := map[string]string{
		"altitude":    "1.000",
		"angle":       "-90.0",
		"orbital":     "1.000",
		"orbital_pct": "+0.0%",
		"vertical":    "+0.000",
		"kinetic":     "0.500",
		"potential":   "-1.000",
		"total":       "-0.500",
	}
	seen := 0
	for _, f := range fields {
		w, ok := want[f.ID]
		if !ok {
			continue
		}
		seen++
		if got := f.Text(); got != w {
			t.Errorf("%s: Text() = %q, want %q", f.ID, got, w)
		}
	}
	if seen != len(want) {
		t.Errorf("matched %d fields, want %d", seen, len(want))
	}
}
