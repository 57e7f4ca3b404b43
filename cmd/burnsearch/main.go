// Package main searches for a burn schedule that moves the player onto a
// circular orbit of a target radius, with both apsides on target and as
// little thrust as possible.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gocarina/gocsv"
	"gonum.org/v1/gonum/optimize"

	"github.com/pthm-cable/orbitalrace/config"
)

// EvalRecord is one row of the evaluation log.
type EvalRecord struct {
	Eval        int     `csv:"eval"`
	Fitness     float64 `csv:"fitness"`
	ProgradeSec float64 `csv:"prograde_sec"`
	RadialSec   float64 `csv:"radial_sec"`
	Apoapsis    float64 `csv:"apoapsis"`
	Periapsis   float64 `csv:"periapsis"`
	Escaped     bool    `csv:"escaped"`
}

// formatDuration formats a duration as HH:MM:SS or MM:SS for shorter durations.
func formatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	h := d / time.Hour
	d -= h * time.Hour
	m := d / time.Minute
	d -= m * time.Minute
	s := d / time.Second

	if h > 0 {
		return fmt.Sprintf("%dh%02dm%02ds", h, m, s)
	}
	return fmt.Sprintf("%dm%02ds", m, s)
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
	configPath := flag.String("config", "", "Base config YAML file (empty = use defaults)")
	target := flag.Float64("target", 1.5, "Target orbit radius for both apsides")
	coast := flag.Float64("coast", 20, "Coast time after the burn in seconds")
	maxBurn := flag.Float64("max-burn", 40, "Upper bound on prograde burn seconds")
	fuelWeight := flag.Float64("fuel-weight", 1e-5, "Penalty per squared second of thrust")
	dtList := flag.String("dts", "0.002,0.005", "Comma-separated step sizes each schedule is flown with")
	maxEvals := flag.Int("max-evals", 200, "Maximum number of evaluations")
	outputDir := flag.String("output", "", "Output directory for results (empty = print only)")
	flag.Parse()

	if *coast <= 0 || *maxBurn <= 0 {
		log.Fatal("--coast and --max-burn must be positive")
	}
	dts, err := parseDTs(*dtList)
	if err != nil {
		log.Fatal(err)
	}

	if *outputDir != "" {
		if err := os.MkdirAll(*outputDir, 0755); err != nil {
			log.Fatalf("failed to create output directory: %v", err)
		}
	}

	// Load base config
	if err := config.Init(*configPath); err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	cfg := config.Cfg()

	params := NewParamVector(*maxBurn)
	evaluator := NewFitnessEvaluator(params, cfg.Bodies, dts, *coast, *target, *fuelWeight)
	initX := params.Normalize(params.DefaultVector())

	var records []EvalRecord
	var bestFitness = 1e9
	var bestParams []float64
	startTime := time.Now()

	problem := optimize.Problem{
		Func: func(x []float64) float64 {
			clamped := params.Clamp(params.Denormalize(x))
			fitness := evaluator.Evaluate(clamped)
			res := evaluator.LastResult()

			if fitness < bestFitness {
				bestFitness = fitness
				bestParams = clamped
			}
			records = append(records, EvalRecord{
				Eval:        len(records) + 1,
				Fitness:     fitness,
				ProgradeSec: clamped[paramPrograde],
				RadialSec:   clamped[paramRadial],
				Apoapsis:    res.Apoapsis,
				Periapsis:   res.Periapsis,
				Escaped:     res.Escaped,
			})

			elapsed := time.Since(startTime)
			fmt.Printf("Eval %d/%d: apo=%.4f peri=%.4f burn=%.2fs fitness=%.6f (best=%.6f) | elapsed: %s\n",
				len(records), *maxEvals, res.Apoapsis, res.Periapsis, res.BurnTime,
				fitness, bestFitness, formatDuration(elapsed))
			return fitness
		},
	}

	settings := &optimize.Settings{
		FuncEvaluations: *maxEvals,
		Converger: &optimize.FunctionConverge{
			Absolute:   1e-10,
			Iterations: 25,
		},
	}
	method := &optimize.NelderMead{SimplexSize: 0.1}

	fmt.Printf("Searching burn schedules: target radius %.3f, coast %.1fs, dts %v, max_evals=%d\n",
		*target, *coast, dts, *maxEvals)

	result, err := optimize.Minimize(problem, initX, settings, method)
	if err != nil {
		log.Printf("optimization ended: %v", err)
	}
	if bestParams == nil {
		bestParams = params.Clamp(params.Denormalize(result.X))
	}

	best := evaluator.Run(bestParams, dts[0])
	script := params.Script(bestParams)

	fmt.Printf("\nSearch complete after %d evaluations in %s\n", len(records), formatDuration(time.Since(startTime)))
	fmt.Printf("Best fitness: %.6f\n", bestFitness)
	for i, spec := range params.Specs {
		fmt.Printf("  %s: %.4f\n", spec.Name, bestParams[i])
	}
	fmt.Printf("Apoapsis %.4f, periapsis %.4f, escaped %v\n", best.Apoapsis, best.Periapsis, best.Escaped)
	fmt.Printf("Thrust script: %s\n", script)

	if *outputDir == "" {
		return
	}

	logPath := filepath.Join(*outputDir, "burnsearch_log.csv")
	logFile, err := os.Create(logPath)
	if err != nil {
		log.Fatalf("failed to create log file: %v", err)
	}
	defer logFile.Close()
	if err := gocsv.Marshal(records, logFile); err != nil {
		log.Printf("failed to write evaluation log: %v", err)
	}

	scriptPath := filepath.Join(*outputDir, "best_script.txt")
	if err := os.WriteFile(scriptPath, []byte(script+"\n"), 0644); err != nil {
		log.Printf("failed to write best script: %v", err)
	} else {
		fmt.Printf("\nBest script saved to: %s\n", scriptPath)
	}
}
