package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated orbital statistics for a time window.
type WindowStats struct {
	WindowStartTick int32   `csv:"-"`
	WindowEndTick   int32   `csv:"window_end"`
	SimTimeSec      float64 `csv:"sim_time"`
	Samples         int     `csv:"samples"`

	// Altitude of the player body
	AltitudeMean float64 `csv:"altitude_mean"`
	AltitudeMin  float64 `csv:"altitude_min"`
	AltitudeMax  float64 `csv:"altitude_max"`

	// Specific orbital energy of the player body
	EnergyMean float64 `csv:"energy_mean"`
	EnergyStd  float64 `csv:"energy_std"`
	EnergyP10  float64 `csv:"energy_p10"`
	EnergyP90  float64 `csv:"energy_p90"`
	EnergyEnd  float64 `csv:"energy_end"`

	// Drift of the window-end energy from the first sample of the run.
	// Without thrust this measures integration error.
	EnergyDrift float64 `csv:"energy_drift"`

	// Speed excess over circular at window end, percent
	OrbitalExcessPct float64 `csv:"orbital_pct"`

	// Thrust usage
	ThrustTicks   int     `csv:"thrust_ticks"`
	ThrustSeconds float64 `csv:"thrust_sec"`

	Bound bool `csv:"bound"`
}

// Quantile returns the p-quantile of values using the empirical CDF.
// Returns 0 for an empty slice. values is not modified.
func Quantile(values []float64, p float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)
	return stat.Quantile(p, stat.Empirical, sorted, nil)
}

// SeriesStats summarizes a series.
type SeriesStats struct {
	Mean, Std, Min, Max, P10, P90 float64
}

// ComputeSeriesStats calculates mean, population std, extremes and
// percentiles. Returns the zero value if values is empty.
func ComputeSeriesStats(values []float64) SeriesStats {
	if len(values) == 0 {
		return SeriesStats{}
	}

	mean, std := stat.PopMeanStdDev(values, nil)
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	return SeriesStats{
		Mean: mean,
		Std:  std,
		Min:  floats.Min(values),
		Max:  floats.Max(values),
		P10:  stat.Quantile(0.10, stat.Empirical, sorted, nil),
		P90:  stat.Quantile(0.90, stat.Empirical, sorted, nil),
	}
}

// LogStats logs the window stats via slog.
func (s WindowStats) LogStats() {
	slog.Info("orbit",
		"window_end", s.WindowEndTick,
		"sim_time", s.SimTimeSec,
		"altitude_mean", s.AltitudeMean,
		"altitude_min", s.AltitudeMin,
		"altitude_max", s.AltitudeMax,
		"energy_mean", s.EnergyMean,
		"energy_std", s.EnergyStd,
		"energy_drift", s.EnergyDrift,
		"orbital_pct", s.OrbitalExcessPct,
		"thrust_sec", s.ThrustSeconds,
		"bound", s.Bound,
	)
}
