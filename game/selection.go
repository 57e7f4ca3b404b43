package game

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/orbitalrace/camera"
	"github.com/pthm-cable/orbitalrace/ui"
)

// maxPickDistance is how far from a body marker, in pixels, a click still
// selects it.
const maxPickDistance = 20.0

// nearestBody returns the index of the body drawn closest to screen point
// (mx, my), if any lies within maxDist pixels. Bodies with a non-finite
// position are skipped.
func nearestBody(views []BodyView, cam *camera.Camera, mx, my, maxDist float32) (int, bool) {
	closest := -1
	closestDist := maxDist
	for i, v := range views {
		p := v.Body.Position
		if !p.IsFinite() {
			continue
		}
		sx, sy := cam.WorldToScreen(p.X(), p.Y())
		dist := float32(math.Hypot(float64(mx-sx), float64(my-sy)))
		if dist <= closestDist {
			closestDist = dist
			closest = i
		}
	}
	return closest, closest >= 0
}

// handleSelection selects the body under a left click and clears the
// selection on right click.
func (g *Game) handleSelection() {
	if rl.IsMouseButtonPressed(rl.MouseButtonRight) {
		g.hasSelection = false
		return
	}
	if !rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		return
	}
	mouse := rl.GetMousePosition()
	views := g.sim.Bodies()
	if i, ok := nearestBody(views, g.camera, mouse.X, mouse.Y, maxPickDistance); ok {
		g.selected = views[i].Entity
		g.hasSelection = true
	}
}

// selectedInspectorData returns the inspector contents for the selected
// body, or false when nothing is selected.
func (g *Game) selectedInspectorData() (ui.InspectorData, bool) {
	if !g.hasSelection {
		return ui.InspectorData{}, false
	}
	v, ok := g.sim.Body(g.selected)
	if !ok {
		g.hasSelection = false
		return ui.InspectorData{}, false
	}
	return ui.NewInspectorData(v.Label.Name, v.Label.Role.String(), v.Body), true
}
