// Package game wires the orbital simulation to input, rendering and
// telemetry.
package game

import (
	"fmt"
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/orbitalrace/camera"
	"github.com/pthm-cable/orbitalrace/config"
	"github.com/pthm-cable/orbitalrace/renderer"
	"github.com/pthm-cable/orbitalrace/systems"
	"github.com/pthm-cable/orbitalrace/telemetry"
	"github.com/pthm-cable/orbitalrace/ui"
)

// Game holds the complete game state.
type Game struct {
	sim   *Simulation
	input Input
	timer *FrameTimer

	// Rendering (nil in headless mode)
	camera    *camera.Camera
	orbits    *renderer.OrbitRenderer
	hud       *ui.HUD
	inspector *ui.Inspector
	overlays  *ui.OverlayRegistry
	controls  *ui.ControlsPanel
	perfPanel *ui.PerfPanel

	// Telemetry
	collector        *telemetry.Collector
	perfCollector    *telemetry.PerfCollector
	bookmarkDetector *telemetry.BookmarkDetector
	outputManager    *telemetry.OutputManager
	statsCallback    func(telemetry.WindowStats)
	statsWindowSec   float64
	logStats         bool

	// State
	headless       bool
	paused         bool
	stepsPerUpdate int
	fixedDT        float64
	degenerate     bool // a non-finite readout has been reported
	lastReadout    systems.Readout

	// Inspector selection
	selected     ecs.Entity
	hasSelection bool

	// Window dimensions
	screenWidth, screenHeight float32
}

// NewGameWithOptions creates a game from the global configuration.
// In graphical mode the raylib window must already be open.
func NewGameWithOptions(opts Options) (*Game, error) {
	cfg := config.Cfg()

	sim, err := NewSimulation(cfg.Bodies)
	if err != nil {
		return nil, fmt.Errorf("building simulation: %w", err)
	}

	statsWindow := opts.StatsWindowSec
	if statsWindow <= 0 {
		statsWindow = cfg.Telemetry.StatsWindow
	}
	steps := opts.StepsPerUpdate
	if steps <= 0 {
		steps = cfg.Physics.StepsPerUpdate
	}
	fixedDT := opts.FixedDT
	if fixedDT <= 0 {
		fixedDT = DefaultFixedDT
	}

	om, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return nil, err
	}
	if err := om.WriteConfig(cfg); err != nil {
		om.Close()
		return nil, fmt.Errorf("writing config snapshot: %w", err)
	}

	g := &Game{
		sim:              sim,
		input:            opts.Input,
		timer:            NewFrameTimer(cfg.Physics.MaxDT),
		collector:        telemetry.NewCollector(statsWindow),
		perfCollector:    telemetry.NewPerfCollector(cfg.Telemetry.PerfCollectorWindow),
		bookmarkDetector: telemetry.NewBookmarkDetector(),
		outputManager:    om,
		statsWindowSec:   statsWindow,
		logStats:         opts.LogStats,
		headless:         opts.Headless,
		stepsPerUpdate:   steps,
		fixedDT:          fixedDT,
		screenWidth:      cfg.Derived.ScreenW32,
		screenHeight:     cfg.Derived.ScreenH32,
	}
	sim.SetPerf(g.perfCollector)

	if g.input == nil {
		if g.headless {
			g.input = NewScriptedInput()
		} else {
			g.input = KeyboardInput{}
		}
	}

	if !g.headless {
		g.screenWidth = float32(rl.GetScreenWidth())
		g.screenHeight = float32(rl.GetScreenHeight())
		g.camera = camera.New(g.screenWidth, g.screenHeight, cfg.Render.Scale)
		g.orbits = renderer.NewOrbitRenderer(cfg.Render, int32(g.screenWidth), int32(g.screenHeight))
		g.hud = ui.NewHUD(cfg.HUD)
		g.inspector = ui.NewInspector(ui.DefaultTheme(), 300)
		g.overlays = ui.NewOverlayRegistry()
		g.controls = ui.NewControlsPanel(ui.DefaultTheme(), 260)
		g.perfPanel = ui.NewPerfPanel(ui.DefaultTheme(), 240)
	}

	g.lastReadout = sim.Readout()
	return g, nil
}

// Update handles input and advances the simulation by the measured frame
// time, clamped to physics.max_dt.
func (g *Game) Update() {
	g.handleInput()

	dt := g.timer.Tick()
	if g.paused {
		return
	}
	for i := 0; i < g.stepsPerUpdate; i++ {
		g.step(dt)
	}
}

// UpdateHeadless advances the simulation with the fixed headless dt.
func (g *Game) UpdateHeadless() {
	for i := 0; i < g.stepsPerUpdate; i++ {
		g.step(g.fixedDT)
	}
}

// step runs a single simulation tick.
func (g *Game) step(dt float64) {
	g.perfCollector.StartTick()

	g.perfCollector.StartPhase(telemetry.PhaseInput)
	js := g.input.Poll()

	// Thrust and integrate phases are timed inside Update
	g.sim.Update(dt, js)
	g.input.Advance(dt)

	g.perfCollector.StartPhase(telemetry.PhaseReadout)
	r := g.sim.Readout()
	g.lastReadout = r

	g.perfCollector.StartPhase(telemetry.PhaseTelemetry)
	g.recordTelemetry(r, js.Active(), dt)

	g.perfCollector.EndTick()
}

// togglePause flips the paused state. The frame timer restarts on resume
// so the pause is not replayed as one long frame.
func (g *Game) togglePause() {
	g.paused = !g.paused
	if !g.paused {
		g.timer.Restart()
	}
}

// Reset restores the initial bodies and starts telemetry windows afresh.
func (g *Game) Reset() {
	g.sim.Reset()
	g.collector = telemetry.NewCollector(g.statsWindowSec)
	g.bookmarkDetector.Reset()
	g.degenerate = false
	g.hasSelection = false
	g.lastReadout = g.sim.Readout()
	if s, ok := g.input.(*ScriptedInput); ok {
		s.Restart()
	}
	g.timer.Restart()
	slog.Info("simulation reset")
}

// Simulation returns the underlying simulation.
func (g *Game) Simulation() *Simulation {
	return g.sim
}

// Readout returns the readout after the latest step.
func (g *Game) Readout() systems.Readout {
	return g.lastReadout
}

// Tick returns the current simulation tick.
func (g *Game) Tick() int32 {
	return g.sim.Tick()
}

// SimTime returns the simulated seconds since the last reset.
func (g *Game) SimTime() float64 {
	return g.sim.SimTime()
}

// Paused reports whether the simulation is paused.
func (g *Game) Paused() bool {
	return g.paused
}

// Quit reports whether the input source asked to stop.
func (g *Game) Quit() bool {
	return g.input.Quit()
}

// SetStatsCallback registers a function called with every flushed window.
func (g *Game) SetStatsCallback(fn func(telemetry.WindowStats)) {
	g.statsCallback = fn
}

// Unload releases resources and closes output files.
func (g *Game) Unload() {
	if err := g.outputManager.Close(); err != nil {
		slog.Error("failed to close output files", "error", err)
	}
}
