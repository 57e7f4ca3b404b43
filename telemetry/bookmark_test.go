package telemetry

import (
	"testing"

	"github.com/pthm-cable/orbitalrace/components"
	"github.com/pthm-cable/orbitalrace/systems"
	"github.com/pthm-cable/orbitalrace/vecmath"
)

func hasBookmark(bookmarks []Bookmark, typ BookmarkType) bool {
	for _, bm := range bookmarks {
		if bm.Type == typ {
			return true
		}
	}
	return false
}

func TestBookmarkDetector_Apsides(t *testing.T) {
	tests := []struct {
		name       string
		prevV, vV  float64
		want       BookmarkType
		wantAbsent BookmarkType
	}{
		{"falling to rising", -0.1, 0.1, BookmarkPeriapsis, BookmarkApoapsis},
		{"rising to falling", 0.1, -0.1, BookmarkApoapsis, BookmarkPeriapsis},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bd := NewBookmarkDetector()
			bd.Check(0, 0, systems.Readout{Altitude: 1, VVertical: tt.prevV, ETotal: -0.5}, false)
			got := bd.Check(1, 0.01, systems.Readout{Altitude: 1, VVertical: tt.vV, ETotal: -0.5}, false)
			if !hasBookmark(got, tt.want) {
				t.Errorf("expected %s bookmark, got %v", tt.want, got)
			}
			if hasBookmark(got, tt.wantAbsent) {
				t.Errorf("unexpected %s bookmark", tt.wantAbsent)
			}
		})
	}
}

func TestBookmarkDetector_NoApsisWhenUnbound(t *testing.T) {
	bd := NewBookmarkDetector()
	bd.Check(0, 0, systems.Readout{VVertical: -0.1, ETotal: 0.2}, false)
	got := bd.Check(1, 0.01, systems.Readout{VVertical: 0.1, ETotal: 0.2}, false)
	if len(got) != 0 {
		t.Errorf("expected no bookmarks on a hyperbolic pass, got %v", got)
	}
}

func TestBookmarkDetector_EscapeAndCapture(t *testing.T) {
	bd := NewBookmarkDetector()
	bd.Check(0, 0, systems.Readout{ETotal: -0.01}, false)

	if got := bd.Check(1, 0.01, systems.Readout{ETotal: 0.01}, false); !hasBookmark(got, BookmarkEscape) {
		t.Errorf("expected escape bookmark, got %v", got)
	}
	if got := bd.Check(2, 0.02, systems.Readout{ETotal: -0.01}, false); !hasBookmark(got, BookmarkCapture) {
		t.Errorf("expected capture bookmark, got %v", got)
	}
}

func TestBookmarkDetector_Burn(t *testing.T) {
	bd := NewBookmarkDetector()

	got := bd.Check(0, 0, systems.Readout{ETotal: -0.5}, true)
	if !hasBookmark(got, BookmarkBurnStart) {
		t.Fatalf("expected burn_start, got %v", got)
	}
	if got := bd.Check(1, 0.5, systems.Readout{ETotal: -0.49}, true); len(got) != 0 {
		t.Errorf("held thrust should not re-trigger, got %v", got)
	}
	got = bd.Check(2, 1.5, systems.Readout{ETotal: -0.48}, false)
	if !hasBookmark(got, BookmarkBurnEnd) {
		t.Fatalf("expected burn_end, got %v", got)
	}
	if got[0].SimTime != 1.5 || got[0].Tick != 2 {
		t.Errorf("burn_end at tick %d t=%v", got[0].Tick, got[0].SimTime)
	}
}

func TestBookmarkDetector_IgnoresNonFinite(t *testing.T) {
	bd := NewBookmarkDetector()
	player := components.NewBody(vecmath.Vec2(0, 0), vecmath.Vec2(0, 0), vecmath.Vec3(1, 1, 1))
	r := systems.ComputeReadout(&player, &player)
	if got := bd.Check(0, 0, r, true); got != nil {
		t.Errorf("expected nil for non-finite readout, got %v", got)
	}
}

func TestBookmarkDetector_EllipticalOrbit(t *testing.T) {
	// Starts at periapsis; e_total = -0.28, period about 15 s.
	body := components.NewBody(vecmath.Vec2(1, 0), vecmath.Vec2(0, 1.2), vecmath.Vec3(1, 0, 0))
	bd := NewBookmarkDetector()

	const dt = 0.001
	var apo, peri int
	for i := 0; i < 18000; i++ {
		r := systems.ComputeReadout(&body, &body)
		for _, bm := range bd.Check(int32(i), float64(i)*dt, r, false) {
			switch bm.Type {
			case BookmarkApoapsis:
				apo++
				if bm.Altitude < 2 {
					t.Errorf("apoapsis altitude %v, want > 2", bm.Altitude)
				}
			case BookmarkPeriapsis:
				peri++
			case BookmarkEscape, BookmarkCapture:
				t.Errorf("unexpected %s", bm.Type)
			}
		}
		systems.StepBody(&body, dt)
	}
	if apo != 1 || peri != 1 {
		t.Errorf("apoapsis=%d periapsis=%d over one period, want 1 each", apo, peri)
	}
}
