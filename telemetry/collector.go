package telemetry

import "github.com/pthm-cable/orbitalrace/systems"

// Collector accumulates per-tick readouts within time windows and
// produces WindowStats. Windows are measured in simulation seconds since
// the graphical loop runs with a variable dt.
type Collector struct {
	windowDurationSec float64

	// Current window tracking
	windowStartTick int32
	windowStartTime float64

	altitudes []float64
	energies  []float64
	last      systems.Readout

	thrustTicks   int
	thrustSeconds float64

	// First energy sample of the run, the drift baseline
	baseline    float64
	hasBaseline bool
}

// NewCollector creates a new stats collector.
// windowDurationSec: how long each stats window lasts in simulation seconds.
func NewCollector(windowDurationSec float64) *Collector {
	if windowDurationSec <= 0 {
		windowDurationSec = 10
	}
	return &Collector{windowDurationSec: windowDurationSec}
}

// Record adds one tick's readout. thrusting marks ticks where the
// joystick was deflected; dt is the tick length.
func (c *Collector) Record(r systems.Readout, thrusting bool, dt float64) {
	if !c.hasBaseline {
		c.baseline = r.ETotal
		c.hasBaseline = true
	}
	c.altitudes = append(c.altitudes, r.Altitude)
	c.energies = append(c.energies, r.ETotal)
	c.last = r
	if thrusting {
		c.thrustTicks++
		c.thrustSeconds += dt
	}
}

// ShouldFlush returns true when the current window has covered its duration.
func (c *Collector) ShouldFlush(simTime float64) bool {
	return simTime-c.windowStartTime >= c.windowDurationSec
}

// Flush produces stats for the current window and starts a new one.
func (c *Collector) Flush(tick int32, simTime float64) WindowStats {
	alt := ComputeSeriesStats(c.altitudes)
	en := ComputeSeriesStats(c.energies)

	stats := WindowStats{
		WindowStartTick:  c.windowStartTick,
		WindowEndTick:    tick,
		SimTimeSec:       simTime,
		Samples:          len(c.energies),
		AltitudeMean:     alt.Mean,
		AltitudeMin:      alt.Min,
		AltitudeMax:      alt.Max,
		EnergyMean:       en.Mean,
		EnergyStd:        en.Std,
		EnergyP10:        en.P10,
		EnergyP90:        en.P90,
		EnergyEnd:        c.last.ETotal,
		OrbitalExcessPct: c.last.OrbitalExcessPct,
		ThrustTicks:      c.thrustTicks,
		ThrustSeconds:    c.thrustSeconds,
		Bound:            c.last.Bound(),
	}
	if c.hasBaseline {
		stats.EnergyDrift = c.last.ETotal - c.baseline
	}

	c.windowStartTick = tick
	c.windowStartTime = simTime
	c.altitudes = c.altitudes[:0]
	c.energies = c.energies[:0]
	c.thrustTicks = 0
	c.thrustSeconds = 0

	return stats
}
