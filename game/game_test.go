package game

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pthm-cable/orbitalrace/config"
	"github.com/pthm-cable/orbitalrace/systems"
	"github.com/pthm-cable/orbitalrace/telemetry"
	"github.com/pthm-cable/orbitalrace/vecmath"
)

func newHeadlessGame(t *testing.T, opts Options) *Game {
	t.Helper()
	config.MustInit("")
	opts.Headless = true
	g, err := NewGameWithOptions(opts)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(g.Unload)
	return g
}

func TestHeadlessGame_FlushesWindows(t *testing.T) {
	g := newHeadlessGame(t, Options{StatsWindowSec: 1, FixedDT: 0.01})

	var windows []telemetry.WindowStats
	g.SetStatsCallback(func(s telemetry.WindowStats) {
		windows = append(windows, s)
	})

	for i := 0; i < 350; i++ {
		g.UpdateHeadless()
	}

	if g.Tick() != 350 {
		t.Fatalf("tick = %d, want 350", g.Tick())
	}
	if len(windows) != 3 {
		t.Fatalf("got %d windows, want 3", len(windows))
	}
	for _, w := range windows {
		if !w.Bound {
			t.Errorf("window ending %d reports unbound orbit", w.WindowEndTick)
		}
	}
	if math.Abs(g.SimTime()-3.5) > 1e-9 {
		t.Errorf("sim time = %v, want 3.5", g.SimTime())
	}
}

func TestHeadlessGame_StepsPerUpdate(t *testing.T) {
	g := newHeadlessGame(t, Options{StepsPerUpdate: 4, FixedDT: 0.01})
	g.UpdateHeadless()
	if g.Tick() != 4 {
		t.Errorf("tick = %d, want 4", g.Tick())
	}
}

func TestHeadlessGame_ScriptedBurnRaisesOrbit(t *testing.T) {
	script, err := ParseThrustScript("up:5")
	if err != nil {
		t.Fatal(err)
	}
	g := newHeadlessGame(t, Options{FixedDT: 0.01, Input: script})

	start := g.Readout().ETotal
	for !g.Quit() {
		g.UpdateHeadless()
		if g.Tick() > 1000 {
			t.Fatal("script never finished")
		}
	}

	if got := g.Readout().ETotal; got <= start {
		t.Errorf("prograde burn did not raise energy: %v -> %v", start, got)
	}
}

func TestHeadlessGame_Reset(t *testing.T) {
	g := newHeadlessGame(t, Options{FixedDT: 0.01, Input: NewScriptedInput(ScriptStep{
		Joystick: systems.Joystick{Right: true},
		Duration: 10,
	})})
	for i := 0; i < 50; i++ {
		g.UpdateHeadless()
	}

	g.Reset()

	if g.Tick() != 0 || g.SimTime() != 0 {
		t.Errorf("tick %d t=%v after reset", g.Tick(), g.SimTime())
	}
	p := g.Simulation().Player()
	if !p.Position.Equal(vecmath.Vec2(1, 0)) {
		t.Errorf("player position = %v after reset", p.Position)
	}
	if math.Abs(g.Readout().ETotal+0.5) > 1e-12 {
		t.Errorf("readout not refreshed: e_total = %v", g.Readout().ETotal)
	}
}

func TestHeadlessGame_DegenerateStateStopsRecording(t *testing.T) {
	g := newHeadlessGame(t, Options{FixedDT: 0.01})
	g.Simulation().Player().Position = vecmath.Vec2(0, 0)

	g.UpdateHeadless()
	g.UpdateHeadless()

	if !g.degenerate {
		t.Fatal("expected degenerate state after reaching the attractor")
	}
	if g.Readout().Finite() {
		t.Errorf("readout unexpectedly finite: %+v", g.Readout())
	}
}

func TestHeadlessGame_WritesOutput(t *testing.T) {
	dir := t.TempDir()
	g := newHeadlessGame(t, Options{OutputDir: dir, StatsWindowSec: 0.5, FixedDT: 0.01})
	for i := 0; i < 120; i++ {
		g.UpdateHeadless()
	}
	g.Unload()

	for _, name := range []string{"config.yaml", "telemetry.csv", "perf.csv", "bookmarks.csv"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("missing %s: %v", name, err)
		}
	}

	data, err := os.ReadFile(filepath.Join(dir, "telemetry.csv"))
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 3 {
		t.Errorf("telemetry.csv has %d lines, want header + 2 windows", len(lines))
	}
}
