// Package main measures how the integrator's energy error scales with the
// step size by coasting the configured bodies for a number of orbits at
// several dt values.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/pthm-cable/orbitalrace/config"
	"github.com/pthm-cable/orbitalrace/game"
	"github.com/pthm-cable/orbitalrace/systems"
	"github.com/pthm-cable/orbitalrace/telemetry"
)

// DriftRecord summarizes one coasting run.
type DriftRecord struct {
	DT          float64 `csv:"dt"`
	Steps       int     `csv:"steps"`
	Orbits      float64 `csv:"orbits"`
	EnergyStart float64 `csv:"energy_start"`
	EnergyEnd   float64 `csv:"energy_end"`
	MaxDrift    float64 `csv:"max_drift"`   // largest |E - E0| seen
	FinalDrift  float64 `csv:"final_drift"` // E_end - E0
	EnergyStd   float64 `csv:"energy_std"`
	AltitudeMin float64 `csv:"altitude_min"`
	AltitudeMax float64 `csv:"altitude_max"`
	Degenerate  bool    `csv:"degenerate"`
}

// LogValue implements slog.LogValuer for structured logging.
func (r DriftRecord) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Float64("dt", r.DT),
		slog.Int("steps", r.Steps),
		slog.Float64("max_drift", r.MaxDrift),
		slog.Float64("final_drift", r.FinalDrift),
		slog.Float64("altitude_min", r.AltitudeMin),
		slog.Float64("altitude_max", r.AltitudeMax),
		slog.Bool("degenerate", r.Degenerate),
	)
}

// errUnbound is returned when the player starts on an open orbit, which
// has no period to measure against.
var errUnbound = errors.New("player orbit is not bound")

// orbitalPeriod returns the Keplerian period of a bound readout.
func orbitalPeriod(r systems.Readout) (float64, error) {
	p, ok := r.Period()
	if !ok {
		return 0, errUnbound
	}
	return p, nil
}

// runDrift coasts the bodies for the given number of player orbits.
func runDrift(bodies []config.BodyConfig, dt, orbits float64) (DriftRecord, error) {
	sim, err := game.NewSimulation(bodies)
	if err != nil {
		return DriftRecord{}, err
	}
	start := sim.Readout()
	period, err := orbitalPeriod(start)
	if err != nil {
		return DriftRecord{}, err
	}

	steps := int(math.Ceil(orbits * period / dt))
	energies := make([]float64, 0, steps)
	altitudes := make([]float64, 0, steps)
	rec := DriftRecord{DT: dt, Orbits: orbits, EnergyStart: start.ETotal}

	for i := 0; i < steps; i++ {
		sim.Update(dt, systems.Joystick{})
		r := sim.Readout()
		if !r.Finite() {
			rec.Degenerate = true
			break
		}
		energies = append(energies, r.ETotal)
		altitudes = append(altitudes, r.Altitude)
		rec.MaxDrift = math.Max(rec.MaxDrift, math.Abs(r.ETotal-start.ETotal))
	}
	rec.Steps = len(energies)
	if rec.Steps == 0 {
		return rec, nil
	}

	en := telemetry.ComputeSeriesStats(energies)
	alt := telemetry.ComputeSeriesStats(altitudes)
	rec.EnergyEnd = energies[len(energies)-1]
	rec.FinalDrift = rec.EnergyEnd - start.ETotal
	rec.EnergyStd = en.Std
	rec.AltitudeMin = alt.Min
	rec.AltitudeMax = alt.Max
	return rec, nil
}

// runAll runs every dt concurrently and returns records in dt order.
func runAll(bodies []config.BodyConfig, dts []float64, orbits float64) ([]DriftRecord, error) {
	records := make([]DriftRecord, len(dts))
	errs := make([]error, len(dts))
	var wg sync.WaitGroup

	for i, dt := range dts {
		wg.Add(1)
		go func(idx int, dt float64) {
			defer wg.Done()
			records[idx], errs[idx] = runDrift(bodies, dt, orbits)
		}(i, dt)
	}
	wg.Wait()

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return records, nil
}

// parseDTs parses a comma-separated list of positive step sizes.
func parseDTs(s string) ([]float64, error) {
	var dts []float64
	for _, item := range strings.Split(s, ",") {
		dt, err := strconv.ParseFloat(strings.TrimSpace(item), 64)
		if err != nil || dt <= 0 {
			return nil, fmt.Errorf("invalid dt %q", item)
		}
		dts = append(dts, dt)
	}
	return dts, nil
}

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	dtList := flag.String("dts", "0.001,0.002,0.005,0.01,0.02,0.05", "Comma-separated step sizes")
	orbits := flag.Float64("orbits", 10, "Player orbits to coast per run")
	outPath := flag.String("output", "", "CSV output file (empty = stdout)")
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	dts, err := parseDTs(*dtList)
	if err != nil {
		slog.Error("bad -dts", "error", err)
		os.Exit(1)
	}

	records, err := runAll(config.Cfg().Bodies, dts, *orbits)
	if err != nil {
		slog.Error("drift run failed", "error", err)
		os.Exit(1)
	}
	for _, r := range records {
		slog.Info("drift", "run", r)
	}

	var out io.Writer = os.Stdout
	if *outPath != "" {
		f, err := os.Create(*outPath)
		if err != nil {
			slog.Error("failed to create output", "error", err)
			os.Exit(1)
		}
		defer f.Close()
		out = f
	}
	if err := telemetry.WriteCSV(out, records); err != nil {
		slog.Error("failed to write csv", "error", err)
		os.Exit(1)
	}
}
