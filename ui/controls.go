package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// ControlsPanel renders the overlay toggle list under the HUD.
type ControlsPanel struct {
	renderer *Renderer
	width    int32
	visible  bool
}

// NewControlsPanel creates a new controls panel.
func NewControlsPanel(theme Theme, width int32) *ControlsPanel {
	return &ControlsPanel{
		renderer: NewRenderer(theme),
		width:    width,
	}
}

// IsVisible returns whether the panel is shown.
func (c *ControlsPanel) IsVisible() bool {
	return c.visible
}

// Toggle switches panel visibility.
func (c *ControlsPanel) Toggle() bool {
	c.visible = !c.visible
	return c.visible
}

// Draw renders the panel at (x, y) and returns the Y below it.
func (c *ControlsPanel) Draw(x, y int32, overlays *OverlayRegistry) int32 {
	if !c.visible {
		return y
	}

	r := c.renderer
	padding := r.Theme.Padding
	lineHeight := r.Theme.LineHeight

	groups := overlays.Groups()
	totalItems := 0
	for _, g := range groups {
		totalItems += len(g.Overlays) + 1 // +1 for category header
	}
	panelHeight := int32(totalItems+1)*lineHeight + padding*2
	r.DrawPanel(x, y, c.width, panelHeight)

	cy := y + padding
	cy = r.DrawSectionHeader(x+padding, cy, "Overlays")

	for _, g := range groups {
		rl.DrawText(categoryLabel(g.Category), x+padding, cy, r.Theme.FontSize, r.Theme.SectionHeader)
		cy += lineHeight
		for i, desc := range g.Overlays {
			c.drawToggle(x+padding*2, cy, desc, g.On[i], c.width-padding*3)
			cy += lineHeight
		}
	}
	return y + panelHeight
}

// drawToggle draws a single overlay toggle line.
func (c *ControlsPanel) drawToggle(x, y int32, desc OverlayDescriptor, enabled bool, width int32) {
	th := c.renderer.Theme

	statusColor := rl.Color{R: 0, G: 80, B: 0, A: 255}
	nameColor := th.LabelColor
	if enabled {
		statusColor = th.SectionHeader
		nameColor = th.SectionHeader
	}
	box := th.FontSize / 2
	rl.DrawRectangle(x, y+box/2, box, box, statusColor)
	rl.DrawText(desc.Name, x+box*2, y, th.FontSize, nameColor)

	if desc.KeyLabel != "" {
		keyText := fmt.Sprintf("[%s]", desc.KeyLabel)
		keyWidth := rl.MeasureText(keyText, th.FontSize)
		rl.DrawText(keyText, x+width-keyWidth, y, th.FontSize, th.LabelColor)
	}
}

// categoryLabel returns a display label for a category.
func categoryLabel(cat OverlayCategory) string {
	switch cat {
	case CategoryScene:
		return "Scene"
	case CategoryGuides:
		return "Guides"
	case CategoryVectors:
		return "Vectors"
	case CategoryDebug:
		return "Debug"
	default:
		return string(cat)
	}
}

// PhaseShare is one phase's share of the average tick time.
type PhaseShare struct {
	Name string
	Pct  float64
}

// PerfPanelData holds data for the performance panel.
type PerfPanelData struct {
	AvgTickUS   int64
	MaxTickUS   int64
	TicksPerSec float64
	Phases      []PhaseShare
}

// PerfPanel renders tick timing statistics.
type PerfPanel struct {
	renderer *Renderer
	width    int32
}

// NewPerfPanel creates a new performance panel.
func NewPerfPanel(theme Theme, width int32) *PerfPanel {
	return &PerfPanel{
		renderer: NewRenderer(theme),
		width:    width,
	}
}

// Draw renders the panel with its bottom-right corner at (right, bottom).
func (p *PerfPanel) Draw(right, bottom int32, data PerfPanelData) {
	r := p.renderer
	padding := r.Theme.Padding
	lineHeight := r.Theme.LineHeight

	panelHeight := int32(len(data.Phases)+4)*lineHeight + padding*2
	x := right - p.width
	y := bottom - panelHeight
	r.DrawPanel(x, y, p.width, panelHeight)

	cy := y + padding
	cy = r.DrawSectionHeader(x+padding, cy, "Performance")
	cy = r.DrawLabelValue(x+padding, cy, "tick avg", fmt.Sprintf("%d us", data.AvgTickUS))
	cy = r.DrawLabelValue(x+padding, cy, "tick max", fmt.Sprintf("%d us", data.MaxTickUS))
	cy = r.DrawLabelValue(x+padding, cy, "ticks/s", fmt.Sprintf("%.0f", data.TicksPerSec))
	for _, ph := range data.Phases {
		cy = r.DrawLabelValue(x+padding, cy, ph.Name, fmt.Sprintf("%.1f%%", ph.Pct))
	}
}
