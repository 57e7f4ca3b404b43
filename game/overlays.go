package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/orbitalrace/systems"
	"github.com/pthm-cable/orbitalrace/telemetry"
	"github.com/pthm-cable/orbitalrace/ui"
	"github.com/pthm-cable/orbitalrace/vecmath"
)

// Overlay drawing parameters.
const (
	frameArrowPx       = 40.0 // length of the thrust axes on screen
	velocityScale      = 0.5  // seconds of travel shown by a velocity arrow
	predictionDT       = 0.01
	predictionHorizon  = 30.0 // seconds predicted for unbound orbits
	predictionMaxSteps = 5000
)

var (
	radialColor     = rl.Color{R: 255, G: 90, B: 90, A: 220}
	tangentialColor = rl.Color{R: 90, G: 160, B: 255, A: 220}
	velocityColor   = rl.Color{R: 255, G: 255, B: 255, A: 160}
	predictionColor = rl.Color{R: 0, G: 255, B: 0, A: 110}
	ringColor       = rl.Color{R: 0, G: 255, B: 0, A: 50}
)

// handleOverlayKeys checks for overlay toggle key presses.
func (g *Game) handleOverlayKeys() {
	for key := rl.GetKeyPressed(); key != 0; key = rl.GetKeyPressed() {
		g.overlays.ToggleKey(key)
	}
	if rl.IsKeyPressed(rl.KeyTab) {
		g.controls.Toggle()
	}
}

// drawWorldOverlays renders the enabled overlays that live in world space.
// Trails are drawn by the orbit renderer.
func (g *Game) drawWorldOverlays() {
	for _, id := range g.overlays.Enabled(ui.SpaceWorld) {
		switch id {
		case ui.OverlayAltitude:
			g.drawAltitudeRing()
		case ui.OverlayPrediction:
			g.drawPrediction()
		case ui.OverlayLocalFrame:
			g.drawLocalFrame()
		case ui.OverlayVelocity:
			g.drawVelocities()
		}
	}
}

// drawScreenOverlays renders overlay panels on top of the HUD.
func (g *Game) drawScreenOverlays() {
	for _, id := range g.overlays.Enabled(ui.SpaceScreen) {
		if id == ui.OverlayPerformance {
			g.perfPanel.Draw(int32(g.screenWidth)-16, int32(g.screenHeight)-40, perfPanelData(g.perfCollector.Stats()))
		}
	}
}

// perfPanelData converts perf stats for display, phases in step order.
func perfPanelData(s telemetry.PerfStats) ui.PerfPanelData {
	data := ui.PerfPanelData{
		AvgTickUS:   s.AvgTickDuration.Microseconds(),
		MaxTickUS:   s.MaxTickDuration.Microseconds(),
		TicksPerSec: s.TicksPerSecond,
	}
	for _, name := range telemetry.PhaseOrder() {
		data.Phases = append(data.Phases, ui.PhaseShare{Name: name, Pct: s.PhasePct[name]})
	}
	return data
}

// screenPoint maps a world position to a raylib vector.
func (g *Game) screenPoint(p vecmath.Vector) rl.Vector2 {
	x, y := g.camera.WorldToScreen(p.X(), p.Y())
	return rl.Vector2{X: x, Y: y}
}

// drawArrow draws a line from world point from along world direction dir.
func (g *Game) drawArrow(from, dir vecmath.Vector, color rl.Color) {
	a := g.screenPoint(from)
	b := g.screenPoint(from.Add(dir))
	rl.DrawLineEx(a, b, 2, color)
	rl.DrawCircleV(b, 3, color)
}

// drawLocalFrame draws the radial and tangential thrust axes at the player.
func (g *Game) drawLocalFrame() {
	p := g.sim.Player().Position
	if !p.IsFinite() || p.Norm() == 0 {
		return
	}
	radial, tangential := systems.LocalFrame(p)
	length := frameArrowPx / float64(g.camera.PixelsPerUnit())
	g.drawArrow(p, radial.Scale(length), radialColor)
	g.drawArrow(p, tangential.Scale(length), tangentialColor)
}

// drawVelocities draws a velocity arrow for every body.
func (g *Game) drawVelocities() {
	for _, b := range g.sim.BodyPointers() {
		if !b.Position.IsFinite() || !b.Velocity.IsFinite() {
			continue
		}
		g.drawArrow(b.Position, b.Velocity.Scale(velocityScale), velocityColor)
	}
}

// drawPrediction draws the player's coasting path as a dashed line.
func (g *Game) drawPrediction() {
	if g.degenerate {
		return
	}
	steps := systems.PredictionSteps(g.lastReadout, predictionDT, predictionHorizon, predictionMaxSteps)
	path := systems.PredictPath(g.sim.Player(), predictionDT, steps)
	for i := 1; i < len(path); i += 2 {
		rl.DrawLineV(g.screenPoint(path[i-1]), g.screenPoint(path[i]), predictionColor)
	}
}

// drawAltitudeRing draws the circular orbit through the player's position.
func (g *Game) drawAltitudeRing() {
	h := g.lastReadout.Altitude
	if g.degenerate || h <= 0 {
		return
	}
	cx, cy := g.camera.WorldToScreen(0, 0)
	rl.DrawCircleLines(int32(cx), int32(cy), float32(h)*g.camera.PixelsPerUnit(), ringColor)
}
