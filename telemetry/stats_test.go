package telemetry

import (
	"math"
	"testing"

	"github.com/pthm-cable/orbitalrace/systems"
)

func TestQuantile(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		p      float64
		want   float64
	}{
		{"empty slice", []float64{}, 0.5, 0},
		{"single element", []float64{5.0}, 0.5, 5.0},
		{"p0", []float64{1, 2, 3, 4, 5}, 0.0, 1.0},
		{"p100", []float64{1, 2, 3, 4, 5}, 1.0, 5.0},
		{"p50 odd", []float64{1, 2, 3, 4, 5}, 0.5, 3.0},
		{"p50 even", []float64{1, 2, 3, 4}, 0.5, 2.0},
		{"unsorted", []float64{5, 1, 3}, 0.5, 3.0},
		{"p10", []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, 0.1, 1},
		{"p90", []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, 0.9, 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Quantile(tt.values, tt.p)
			if math.Abs(got-tt.want) > 0.001 {
				t.Errorf("Quantile(%v, %v) = %v, want %v", tt.values, tt.p, got, tt.want)
			}
		})
	}
}

func TestQuantileDoesNotModifyInput(t *testing.T) {
	values := []float64{3, 1, 2}
	Quantile(values, 0.5)
	if values[0] != 3 || values[1] != 1 || values[2] != 2 {
		t.Errorf("input reordered: %v", values)
	}
}

func TestComputeSeriesStats(t *testing.T) {
	values := []float64{0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8, 0.9, 1.0}
	s := ComputeSeriesStats(values)

	checks := []struct {
		name      string
		got, want float64
	}{
		{"mean", s.Mean, 0.55},
		{"std", s.Std, math.Sqrt(8.25) / 10},
		{"min", s.Min, 0.1},
		{"max", s.Max, 1.0},
		{"p10", s.P10, 0.1},
		{"p90", s.P90, 0.9},
	}
	for _, c := range checks {
		if math.Abs(c.got-c.want) > 1e-9 {
			t.Errorf("%s = %v, want %v", c.name, c.got, c.want)
		}
	}
}

func TestComputeSeriesStatsEmpty(t *testing.T) {
	if s := ComputeSeriesStats(nil); s != (SeriesStats{}) {
		t.Errorf("empty slice should return zero stats, got %+v", s)
	}
}

func TestCollector_Windowing(t *testing.T) {
	c := NewCollector(1.0)
	dt := 0.25

	simTime := 0.0
	var tick int32
	for i := 0; i < 4; i++ {
		r := systems.Readout{Altitude: float64(i + 1), ETotal: -0.5 + 0.01*float64(i)}
		c.Record(r, i%2 == 0, dt)
		tick++
		simTime += dt
		if i < 3 && c.ShouldFlush(simTime) {
			t.Fatalf("flush requested early at t=%v", simTime)
		}
	}
	if !c.ShouldFlush(simTime) {
		t.Fatal("expected flush after one window")
	}

	s := c.Flush(tick, simTime)
	if s.Samples != 4 || s.WindowStartTick != 0 || s.WindowEndTick != 4 {
		t.Errorf("window = %d samples [%d, %d]", s.Samples, s.WindowStartTick, s.WindowEndTick)
	}
	if s.AltitudeMin != 1 || s.AltitudeMax != 4 || math.Abs(s.AltitudeMean-2.5) > 1e-12 {
		t.Errorf("altitude = %v/%v/%v", s.AltitudeMin, s.AltitudeMean, s.AltitudeMax)
	}
	if math.Abs(s.EnergyDrift-0.03) > 1e-12 {
		t.Errorf("energy drift = %v, want 0.03", s.EnergyDrift)
	}
	if s.ThrustTicks != 2 || math.Abs(s.ThrustSeconds-0.5) > 1e-12 {
		t.Errorf("thrust = %d ticks / %v s", s.ThrustTicks, s.ThrustSeconds)
	}
	if !s.Bound {
		t.Error("negative energy should be bound")
	}

	// The next window starts empty but keeps the drift baseline.
	if c.ShouldFlush(simTime) {
		t.Error("flush requested right after flushing")
	}
	c.Record(systems.Readout{Altitude: 2, ETotal: -0.4}, false, dt)
	s = c.Flush(tick+1, simTime+dt)
	if s.Samples != 1 || s.WindowStartTick != 4 {
		t.Errorf("second window = %d samples from %d", s.Samples, s.WindowStartTick)
	}
	if math.Abs(s.EnergyDrift-0.1) > 1e-12 {
		t.Errorf("energy drift = %v, want 0.1", s.EnergyDrift)
	}
	if s.ThrustTicks != 0 {
		t.Errorf("thrust ticks not reset: %d", s.ThrustTicks)
	}
}
