package telemetry

import (
	"math"
	"testing"
	"time"
)

// stepClock is a manual clock for timing tests.
type stepClock struct {
	t time.Time
}

func (c *stepClock) now() time.Time { return c.t }
func (c *stepClock) advance(d time.Duration) { c.t = c.t.Add(d) }

// runTick records one tick with the given phase durations, in order.
func runTick(pc *PerfCollector, clk *stepClock, phases []string, durs []time.Duration) {
	pc.StartTick()
	for i, phase := range phases {
		pc.StartPhase(phase)
		clk.advance(durs[i])
	}
	pc.EndTick()
}

func TestPerfCollector_PhaseShares(t *testing.T) {
	clk := &stepClock{t: time.Unix(0, 0)}
	pc := newPerfCollectorWithClock(10, clk.now)

	for i := 0; i < 5; i++ {
		runTick(pc, clk,
			[]string{PhaseThrust, PhaseIntegrate, PhaseReadout},
			[]time.Duration{10 * time.Microsecond, 70 * time.Microsecond, 20 * time.Microsecond})
	}

	stats := pc.Stats()
	if stats.AvgTickDuration != 100*time.Microsecond {
		t.Fatalf("avg tick = %v, want 100µs", stats.AvgTickDuration)
	}
	tests := []struct {
		phase string
		avg   time.Duration
		pct   float64
	}{
		{PhaseThrust, 10 * time.Microsecond, 10},
		{PhaseIntegrate, 70 * time.Microsecond, 70},
		{PhaseReadout, 20 * time.Microsecond, 20},
	}
	for _, tt := range tests {
		if got := stats.PhaseAvg[tt.phase]; got != tt.avg {
			t.Errorf("%s avg = %v, want %v", tt.phase, got, tt.avg)
		}
		if got := stats.PhasePct[tt.phase]; math.Abs(got-tt.pct) > 1e-9 {
			t.Errorf("%s pct = %v, want %v", tt.phase, got, tt.pct)
		}
	}
	if _, ok := stats.PhaseAvg[PhaseInput]; ok {
		t.Error("input phase was never started but has an average")
	}
	if math.Abs(stats.TicksPerSecond-10000) > 1e-6 {
		t.Errorf("ticks/sec = %v, want 10000", stats.TicksPerSecond)
	}
}

func TestPerfCollector_WindowKeepsMinMax(t *testing.T) {
	clk := &stepClock{t: time.Unix(0, 0)}
	pc := newPerfCollectorWithClock(4, clk.now)

	// The first two ticks are pushed out of the window.
	for _, d := range []time.Duration{900, 1, 30, 40, 50, 60} {
		runTick(pc, clk, []string{PhaseIntegrate}, []time.Duration{d * time.Microsecond})
	}

	stats := pc.Stats()
	if stats.MinTickDuration != 30*time.Microsecond || stats.MaxTickDuration != 60*time.Microsecond {
		t.Errorf("min/max = %v/%v, want 30µs/60µs", stats.MinTickDuration, stats.MaxTickDuration)
	}
	if stats.AvgTickDuration != 45*time.Microsecond {
		t.Errorf("avg = %v, want 45µs", stats.AvgTickDuration)
	}
}

func TestPerfCollector_RepeatedPhaseAccumulates(t *testing.T) {
	clk := &stepClock{t: time.Unix(0, 0)}
	pc := newPerfCollectorWithClock(1, clk.now)

	runTick(pc, clk,
		[]string{PhaseIntegrate, PhaseReadout, PhaseIntegrate},
		[]time.Duration{30 * time.Microsecond, 20 * time.Microsecond, 50 * time.Microsecond})

	if got := pc.Stats().PhasePct[PhaseIntegrate]; math.Abs(got-80) > 1e-9 {
		t.Errorf("integrate pct = %v, want 80", got)
	}
}

func TestPerfCollector_EmptyStats(t *testing.T) {
	stats := NewPerfCollector(10).Stats()

	if stats.AvgTickDuration != 0 || stats.TicksPerSecond != 0 {
		t.Errorf("empty collector: avg %v, ticks/sec %v", stats.AvgTickDuration, stats.TicksPerSecond)
	}
	if stats.PhaseAvg == nil || stats.PhasePct == nil {
		t.Error("expected non-nil phase maps")
	}
}

func TestPerfCollector_FrameTiming(t *testing.T) {
	clk := &stepClock{t: time.Unix(0, 0)}
	pc := newPerfCollectorWithClock(10, clk.now)

	pc.RecordFrame()
	if fps := pc.Stats().FPS; fps != 0 {
		t.Errorf("fps after one frame = %v, want 0", fps)
	}

	clk.advance(20 * time.Millisecond)
	pc.RecordFrame()

	stats := pc.Stats()
	if stats.FrameDuration != 20*time.Millisecond {
		t.Errorf("frame duration = %v, want 20ms", stats.FrameDuration)
	}
	if math.Abs(stats.FPS-50) > 1e-9 {
		t.Errorf("fps = %v, want 50", stats.FPS)
	}
}

func TestPerfStats_ToCSV(t *testing.T) {
	stats := PerfStats{
		AvgTickDuration: 250 * time.Microsecond,
		MinTickDuration: 100 * time.Microsecond,
		MaxTickDuration: 900 * time.Microsecond,
		PhasePct: map[string]float64{
			PhaseIntegrate: 60,
			PhaseReadout:   25,
		},
		TicksPerSecond: 4000,
	}

	row := stats.ToCSV(1200)
	if row.WindowEnd != 1200 {
		t.Errorf("WindowEnd = %d, want 1200", row.WindowEnd)
	}
	if row.AvgTickUS != 250 || row.MinTickUS != 100 || row.MaxTickUS != 900 {
		t.Errorf("tick durations = %d/%d/%d us", row.AvgTickUS, row.MinTickUS, row.MaxTickUS)
	}
	if row.IntegratePct != 60 || row.ReadoutPct != 25 {
		t.Errorf("phase pct = %v/%v", row.IntegratePct, row.ReadoutPct)
	}
	if row.InputPct != 0 || row.TelemetryPct != 0 {
		t.Error("untracked phases should be zero")
	}
}

func TestPhaseOrder_IsCopy(t *testing.T) {
	order := PhaseOrder()
	if len(order) != 5 || order[0] != PhaseInput || order[4] != PhaseTelemetry {
		t.Fatalf("PhaseOrder() = %v", order)
	}
	order[0] = "mutated"
	if PhaseOrder()[0] != PhaseInput {
		t.Error("PhaseOrder returned the shared slice")
	}
}
