package main

import (
	"math"
	"sync"

	"github.com/pthm-cable/orbitalrace/config"
	"github.com/pthm-cable/orbitalrace/game"
	"github.com/pthm-cable/orbitalrace/telemetry"
)

// escapePenalty is added to the fitness of schedules that leave orbit,
// on top of the positive specific energy, so escapes always rank last.
const escapePenalty = 1e3

// FitnessEvaluator runs headless burns and scores the resulting orbit.
type FitnessEvaluator struct {
	params     *ParamVector
	bodies     []config.BodyConfig
	dts        []float64
	coastSec   float64
	target     float64
	fuelWeight float64

	mu   sync.Mutex
	last BurnResult // result of the most recent Evaluate call
}

// NewFitnessEvaluator creates a new evaluator. Every schedule is run once
// per dt and the fitness is averaged, so the search does not exploit a
// single step size.
func NewFitnessEvaluator(params *ParamVector, bodies []config.BodyConfig, dts []float64, coastSec, target, fuelWeight float64) *FitnessEvaluator {
	return &FitnessEvaluator{
		params:     params,
		bodies:     bodies,
		dts:        dts,
		coastSec:   coastSec,
		target:     target,
		fuelWeight: fuelWeight,
	}
}

// BurnResult describes the orbit reached after a burn schedule.
type BurnResult struct {
	Apoapsis  float64 // highest altitude while coasting
	Periapsis float64 // lowest altitude while coasting
	Apsides   int     // apsis bookmarks seen while coasting
	Escaped   bool
	ETotal    float64 // specific energy at the end of the burn
	BurnTime  float64
}

// LastResult returns the result from the most recent evaluation.
func (fe *FitnessEvaluator) LastResult() BurnResult {
	fe.mu.Lock()
	defer fe.mu.Unlock()
	return fe.last
}

// Evaluate computes fitness for raw parameter values (lower = better).
func (fe *FitnessEvaluator) Evaluate(x []float64) float64 {
	results := make([]BurnResult, len(fe.dts))
	var wg sync.WaitGroup

	for i, dt := range fe.dts {
		wg.Add(1)
		go func(idx int, dt float64) {
			defer wg.Done()
			results[idx] = fe.Run(x, dt)
		}(i, dt)
	}
	wg.Wait()

	var total float64
	for _, r := range results {
		total += fe.score(r)
	}

	fe.mu.Lock()
	fe.last = results[0]
	fe.mu.Unlock()

	return total / float64(len(results))
}

// score converts a burn result to a fitness value: the squared misses of
// both apsides from the target radius plus the fuel term.
func (fe *FitnessEvaluator) score(r BurnResult) float64 {
	if r.Escaped {
		return escapePenalty + math.Max(r.ETotal, 0)
	}
	apoMiss := r.Apoapsis - fe.target
	periMiss := r.Periapsis - fe.target
	return apoMiss*apoMiss + periMiss*periMiss + fe.fuelWeight*r.BurnTime*r.BurnTime
}

// Run flies one schedule at step size dt: the burns, then a coast during
// which the apsides are measured.
func (fe *FitnessEvaluator) Run(x []float64, dt float64) BurnResult {
	sim, err := game.NewSimulation(fe.bodies)
	if err != nil {
		// Bodies were validated when the config loaded.
		panic(err)
	}
	input := game.NewScriptedInput(fe.params.Schedule(x)...)
	detector := telemetry.NewBookmarkDetector()

	res := BurnResult{
		Apoapsis:  math.Inf(-1),
		Periapsis: math.Inf(1),
		BurnTime:  fe.params.BurnTime(x),
	}
	end := input.Duration() + fe.coastSec

	for sim.SimTime() < end {
		burning := !input.Quit()
		js := input.Poll()
		sim.Update(dt, js)
		input.Advance(dt)

		r := sim.Readout()
		if !r.Finite() {
			res.Escaped = true
			return res
		}
		if burning {
			res.ETotal = r.ETotal
			continue
		}

		for _, bm := range detector.Check(sim.Tick(), sim.SimTime(), r, false) {
			switch bm.Type {
			case telemetry.BookmarkApoapsis, telemetry.BookmarkPeriapsis:
				res.Apsides++
			case telemetry.BookmarkEscape:
				res.Escaped = true
			}
		}
		if !r.Bound() {
			res.Escaped = true
			res.ETotal = r.ETotal
			return res
		}
		res.Apoapsis = math.Max(res.Apoapsis, r.Altitude)
		res.Periapsis = math.Min(res.Periapsis, r.Altitude)
	}
	return res
}
