package main

import (
	"fmt"
	"math"
	"strings"

	"github.com/pthm-cable/orbitalrace/game"
	"github.com/pthm-cable/orbitalrace/systems"
)

// ParamSpec defines a single optimizable burn parameter.
type ParamSpec struct {
	Name    string  // Human-readable name
	Min     float64 // Lower bound
	Max     float64 // Upper bound
	Default float64 // Starting value
}

// ParamVector holds the set of all optimizable parameters.
type ParamVector struct {
	Specs []ParamSpec
}

// Parameter order. Radial burns are signed: positive fires right
// (outward), negative fires left.
const (
	paramPrograde = iota
	paramRadial
)

// NewParamVector creates the burn schedule parameters: seconds of
// prograde thrust followed by seconds of signed radial thrust.
func NewParamVector(maxBurn float64) *ParamVector {
	return &ParamVector{
		Specs: []ParamSpec{
			{Name: "prograde_sec", Min: 0, Max: maxBurn, Default: maxBurn / 4},
			{Name: "radial_sec", Min: -maxBurn / 2, Max: maxBurn / 2, Default: 0},
		},
	}
}

// Dim returns the number of parameters.
func (pv *ParamVector) Dim() int {
	return len(pv.Specs)
}

// DefaultVector returns the default parameter values as a slice.
func (pv *ParamVector) DefaultVector() []float64 {
	v := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		v[i] = spec.Default
	}
	return v
}

// Normalize converts raw parameter values to [0,1] range.
func (pv *ParamVector) Normalize(raw []float64) []float64 {
	normalized := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		normalized[i] = (raw[i] - spec.Min) / (spec.Max - spec.Min)
	}
	return normalized
}

// Denormalize converts [0,1] values back to raw parameter values.
func (pv *ParamVector) Denormalize(normalized []float64) []float64 {
	raw := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		raw[i] = spec.Min + normalized[i]*(spec.Max-spec.Min)
	}
	return raw
}

// Clamp ensures all values are within bounds.
func (pv *ParamVector) Clamp(v []float64) []float64 {
	clamped := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		clamped[i] = math.Max(spec.Min, math.Min(spec.Max, v[i]))
	}
	return clamped
}

// Schedule converts clamped values into scripted input steps.
func (pv *ParamVector) Schedule(values []float64) []game.ScriptStep {
	c := pv.Clamp(values)
	steps := []game.ScriptStep{{
		Joystick: systems.Joystick{Up: true},
		Duration: c[paramPrograde],
	}}
	radial := c[paramRadial]
	js := systems.Joystick{Right: radial > 0, Left: radial < 0}
	return append(steps, game.ScriptStep{Joystick: js, Duration: math.Abs(radial)})
}

// BurnTime returns the total seconds of thrust in the schedule.
func (pv *ParamVector) BurnTime(values []float64) float64 {
	var total float64
	for _, st := range pv.Schedule(values) {
		total += st.Duration
	}
	return total
}

// Script formats the schedule in the thrust script syntax accepted by
// the main program's -thrust flag.
func (pv *ParamVector) Script(values []float64) string {
	var parts []string
	for _, st := range pv.Schedule(values) {
		if st.Duration == 0 {
			continue
		}
		parts = append(parts, fmt.Sprintf("%s:%.4f", directionName(st.Joystick), st.Duration))
	}
	return strings.Join(parts, ",")
}

func directionName(js systems.Joystick) string {
	var names []string
	if js.Up {
		names = append(names, "up")
	}
	if js.Down {
		names = append(names, "down")
	}
	if js.Left {
		names = append(names, "left")
	}
	if js.Right {
		names = append(names, "right")
	}
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, "+")
}
