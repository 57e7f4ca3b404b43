package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/orbitalrace/ui"
)

const controlsLegend = "Arrows: thrust | Space: pause | R: reset | Tab: overlays | ,/.: speed | WASD/wheel: view | Home: recenter | Click: inspect"

// Draw renders the current frame.
func (g *Game) Draw() {
	g.perfCollector.RecordFrame()

	rl.BeginDrawing()
	rl.ClearBackground(g.orbits.BackgroundColor())

	g.orbits.ShowTrails = g.overlays.IsEnabled(ui.OverlayTrails)
	g.orbits.Draw(g.camera, g.sim.BodyPointers())
	g.drawWorldOverlays()

	r := g.lastReadout
	actions := g.hud.Draw(ui.HUDData{
		Fields:         r.Fields(),
		Tick:           g.sim.Tick(),
		SimTime:        g.sim.SimTime(),
		FPS:            rl.GetFPS(),
		StepsPerUpdate: g.stepsPerUpdate,
		Paused:         g.paused,
		ShowTrails:     g.orbits.ShowTrails,
		Bound:          r.Bound(),
		Degenerate:     g.degenerate,
		ScreenWidth:    int32(g.screenWidth),
		ScreenHeight:   int32(g.screenHeight),
	})
	g.controls.Draw(g.hud.X(), g.hud.Bottom()+10, g.overlays)
	g.hud.DrawControls(int32(g.screenHeight), controlsLegend)
	g.drawScreenOverlays()
	if data, ok := g.selectedInspectorData(); ok {
		g.inspector.Draw(int32(g.screenWidth), data)
	}

	rl.EndDrawing()

	g.applyActions(actions)
}

// applyActions handles HUD button clicks.
func (g *Game) applyActions(a ui.Actions) {
	if a.TogglePause {
		g.togglePause()
	}
	if a.Reset {
		g.Reset()
	}
	if a.ToggleTrails {
		g.overlays.Toggle(ui.OverlayTrails)
	}
}
