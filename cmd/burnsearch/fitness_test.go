package main

import (
	"math"
	"testing"

	"github.com/pthm-cable/orbitalrace/config"
)

func newTestEvaluator(t *testing.T) *FitnessEvaluator {
	t.Helper()
	cfg, err := config.Load("")
	if err != nil {
		t.Fatal(err)
	}
	return NewFitnessEvaluator(NewParamVector(40), cfg.Bodies, []float64{0.005}, 10, 1.5, 0)
}

func TestRun_NoBurnStaysCircular(t *testing.T) {
	fe := newTestEvaluator(t)
	res := fe.Run([]float64{0, 0}, 0.005)

	if res.Escaped {
		t.Fatal("circular orbit reported as escaped")
	}
	if math.Abs(res.Apoapsis-1) > 0.01 || math.Abs(res.Periapsis-1) > 0.01 {
		t.Errorf("apsides = %v / %v, want about 1", res.Apoapsis, res.Periapsis)
	}
}

func TestRun_ProgradeBurnRaisesApoapsis(t *testing.T) {
	fe := newTestEvaluator(t)
	res := fe.Run([]float64{10, 0}, 0.005)

	if res.Escaped {
		t.Fatal("short burn escaped")
	}
	// dv = 0.1 gives a = 1/(2 - 1.1^2) ~ 1.27 and apoapsis ~ 1.53
	if res.Apoapsis < 1.3 || res.Apoapsis > 1.8 {
		t.Errorf("apoapsis = %v, want about 1.5", res.Apoapsis)
	}
	if res.Periapsis < 0.9 {
		t.Errorf("periapsis = %v dropped below the burn altitude", res.Periapsis)
	}
	if res.Apsides == 0 {
		t.Error("no apsides detected while coasting")
	}
}

func TestEvaluate_PrefersBurnTowardTarget(t *testing.T) {
	fe := newTestEvaluator(t)
	near := fe.Evaluate([]float64{10, 0})
	far := fe.Evaluate([]float64{0, 0})
	if near >= far {
		t.Errorf("fitness near target %v not better than no burn %v", near, far)
	}
}

func TestScore_EscapeRanksLast(t *testing.T) {
	fe := newTestEvaluator(t)
	escaped := fe.score(BurnResult{Escaped: true, ETotal: 0.1})
	miss := fe.score(BurnResult{Apoapsis: 20})
	if escaped <= miss {
		t.Errorf("escape score %v should exceed a large miss %v", escaped, miss)
	}
}

func TestScore_BothApsidesCount(t *testing.T) {
	fe := newTestEvaluator(t)
	tests := []struct {
		name string
		res  BurnResult
		want float64
	}{
		{"circular on target", BurnResult{Apoapsis: 1.5, Periapsis: 1.5}, 0},
		{"apoapsis only on target", BurnResult{Apoapsis: 1.5, Periapsis: 1.0}, 0.25},
		{"periapsis only on target", BurnResult{Apoapsis: 2.0, Periapsis: 1.5}, 0.25},
		{"both missed", BurnResult{Apoapsis: 1.7, Periapsis: 1.2}, 0.04 + 0.09},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := fe.score(tt.res); math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("score(%+v) = %v, want %v", tt.res, got, tt.want)
			}
		})
	}
}
