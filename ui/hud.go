package ui

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/orbitalrace/config"
	"github.com/pthm-cable/orbitalrace/systems"
)

// HUDData holds all the data needed to render the main HUD.
type HUDData struct {
	Fields         []systems.Field
	Tick           int32
	SimTime        float64
	FPS            int32
	StepsPerUpdate int
	Paused         bool
	ShowTrails     bool
	Bound          bool
	Degenerate     bool
	ScreenWidth    int32
	ScreenHeight   int32
}

// Actions reports which HUD buttons were clicked this frame.
type Actions struct {
	TogglePause  bool
	Reset        bool
	ToggleTrails bool
}

// FieldGroup is a heading and the readout fields listed under it.
type FieldGroup struct {
	Title  string
	Fields []systems.Field
}

// GroupFields splits fields by their Group, keeping groups in order of
// first appearance and fields in their original order.
func GroupFields(fields []systems.Field) []FieldGroup {
	var groups []FieldGroup
	index := make(map[string]int)
	for _, f := range fields {
		i, ok := index[f.Group]
		if !ok {
			i = len(groups)
			index[f.Group] = i
			groups = append(groups, FieldGroup{Title: f.Group})
		}
		groups[i].Fields = append(groups[i].Fields, f)
	}
	return groups
}

// ColorFromConfig converts an RGB or RGBA list in [0, 1] to a raylib
// color. Any other length yields fallback.
func ColorFromConfig(v []float64, fallback rl.Color) rl.Color {
	switch len(v) {
	case 3:
		return rl.ColorFromNormalized(rl.Vector4{X: float32(v[0]), Y: float32(v[1]), Z: float32(v[2]), W: 1})
	case 4:
		return rl.ColorFromNormalized(rl.Vector4{X: float32(v[0]), Y: float32(v[1]), Z: float32(v[2]), W: float32(v[3])})
	}
	return fallback
}

// HUD renders the orbital readout panel and its buttons.
type HUD struct {
	renderer *Renderer
	x, y     int32
	bottom   int32 // Y below the button row of the last Draw
}

// NewHUD creates a new HUD renderer.
func NewHUD(cfg config.HUDConfig) *HUD {
	theme := DefaultTheme()
	theme = theme.WithText(ColorFromConfig(cfg.Color, theme.LabelColor), int32(cfg.FontSize), int32(cfg.LineHeight))
	return &HUD{
		renderer: NewRenderer(theme),
		x:        int32(cfg.X),
		y:        int32(cfg.Y),
	}
}

// panelLines is the number of text lines the readout panel needs.
func panelLines(groups []FieldGroup) int32 {
	n := 2 // status and tick lines
	for _, g := range groups {
		n += 1 + len(g.Fields)
	}
	return int32(n)
}

// Draw renders the HUD and returns the button clicks.
func (h *HUD) Draw(data HUDData) Actions {
	r := h.renderer
	th := r.Theme
	groups := GroupFields(data.Fields)

	width := th.LabelWidth + th.FontSize*6 + th.Padding*2
	height := panelLines(groups)*th.LineHeight + th.Padding*2
	r.DrawPanel(h.x, h.y, width, height)

	x := h.x + th.Padding
	y := h.y + th.Padding
	for _, g := range groups {
		y = r.DrawSectionHeader(x, y, g.Title)
		for _, f := range g.Fields {
			y = r.DrawLabelValue(x+th.Padding, y, f.Label, f.Text())
		}
	}

	status, color := "bound", th.ValueColor
	switch {
	case data.Degenerate:
		status, color = "degenerate", th.WarningColor
	case !data.Bound:
		status, color = "escaping", th.WarningColor
	}
	if data.Paused {
		status += " | PAUSED"
	}
	y = r.DrawStatus(x, y, status, color)
	r.DrawStatus(x, y, fmt.Sprintf("t=%.1fs tick %d x%d | %d fps", data.SimTime, data.Tick, data.StepsPerUpdate, data.FPS), th.LabelColor)

	buttonsY := h.y + height + th.Padding
	h.bottom = buttonsY + int32(th.ButtonHeight)
	return h.drawButtons(h.x, buttonsY, data)
}

// X returns the left edge of the HUD.
func (h *HUD) X() int32 {
	return h.x
}

// Bottom returns the Y below the button row drawn by the last Draw call.
func (h *HUD) Bottom() int32 {
	return h.bottom
}

// drawButtons draws the Pause / Reset / Trails row.
func (h *HUD) drawButtons(x, y int32, data HUDData) Actions {
	th := h.renderer.Theme
	bx := float32(x)
	by := float32(y)
	step := th.ButtonWidth + float32(th.Padding)

	var a Actions
	pauseText := "Pause"
	if data.Paused {
		pauseText = "Resume"
	}
	if gui.Button(rl.Rectangle{X: bx, Y: by, Width: th.ButtonWidth, Height: th.ButtonHeight}, pauseText) {
		a.TogglePause = true
	}
	if gui.Button(rl.Rectangle{X: bx + step, Y: by, Width: th.ButtonWidth, Height: th.ButtonHeight}, "Reset") {
		a.Reset = true
	}
	trailsText := "Trails: on"
	if !data.ShowTrails {
		trailsText = "Trails: off"
	}
	if gui.Button(rl.Rectangle{X: bx + 2*step, Y: by, Width: th.ButtonWidth, Height: th.ButtonHeight}, trailsText) {
		a.ToggleTrails = true
	}
	return a
}

// DrawControls renders the control legend at the bottom of the screen.
func (h *HUD) DrawControls(screenHeight int32, controls string) {
	rl.DrawText(controls, h.x, screenHeight-25, 14, rl.Gray)
}
