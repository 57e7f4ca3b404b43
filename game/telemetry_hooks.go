package game

import (
	"log/slog"

	"github.com/pthm-cable/orbitalrace/systems"
)

// recordTelemetry feeds one tick's readout to the collectors and flushes
// the stats window when it is due.
func (g *Game) recordTelemetry(r systems.Readout, thrusting bool, dt float64) {
	tick := g.sim.Tick()
	simTime := g.sim.SimTime()

	if !r.Finite() {
		// Report once; the state stays degenerate until reset.
		if !g.degenerate {
			g.degenerate = true
			p := g.sim.Player()
			slog.Warn("orbital state degenerate",
				"tick", tick,
				"sim_time", simTime,
				"position", p.Position.String(),
				"velocity", p.Velocity.String(),
			)
		}
		return
	}

	g.collector.Record(r, thrusting, dt)

	for _, bm := range g.bookmarkDetector.Check(tick, simTime, r, thrusting) {
		if g.logStats {
			bm.LogBookmark()
		}
		if err := g.outputManager.WriteBookmark(bm); err != nil {
			slog.Error("failed to write bookmark", "error", err)
		}
	}

	if g.collector.ShouldFlush(simTime) {
		g.flushTelemetry(tick, simTime)
	}
}

// flushTelemetry closes the current stats window.
func (g *Game) flushTelemetry(tick int32, simTime float64) {
	stats := g.collector.Flush(tick, simTime)
	perfStats := g.perfCollector.Stats()

	// Call stats callback if provided
	if g.statsCallback != nil {
		g.statsCallback(stats)
	}

	// Log stats if enabled (console output)
	if g.logStats {
		stats.LogStats()
		perfStats.LogStats()
	}

	if err := g.outputManager.WriteTelemetry(stats); err != nil {
		slog.Error("failed to write telemetry", "error", err)
	}
	if err := g.outputManager.WritePerf(perfStats, stats.WindowEndTick); err != nil {
		slog.Error("failed to write perf", "error", err)
	}
}
