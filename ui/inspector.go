package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/orbitalrace/components"
)

// InspectorData holds the values shown for a selected body.
type InspectorData struct {
	Name        string
	Role        string
	Color       rl.Color
	X, Y        float64
	VX, VY      float64
	Altitude    float64
	Speed       float64
	TracePoints int
}

// NewInspectorData extracts the displayed values from a body.
func NewInspectorData(name, role string, b *components.Body) InspectorData {
	c := b.Color
	return InspectorData{
		Name: name,
		Role: role,
		Color: rl.ColorFromNormalized(rl.Vector4{
			X: float32(c.At(0)), Y: float32(c.At(1)), Z: float32(c.At(2)), W: 1,
		}),
		X:           b.Position.X(),
		Y:           b.Position.Y(),
		VX:          b.Velocity.X(),
		VY:          b.Velocity.Y(),
		Altitude:    b.Altitude(),
		Speed:       b.Velocity.Norm(),
		TracePoints: len(b.Trace),
	}
}

// Rows returns the label/value pairs listed under the header.
func (d InspectorData) Rows() [][2]string {
	return [][2]string{
		{"role", d.Role},
		{"position", fmt.Sprintf("(%.4f, %.4f)", d.X, d.Y)},
		{"velocity", fmt.Sprintf("(%.4f, %.4f)", d.VX, d.VY)},
		{"altitude", fmt.Sprintf("%.4f", d.Altitude)},
		{"speed", fmt.Sprintf("%.4f", d.Speed)},
		{"trace", fmt.Sprintf("%d pts", d.TracePoints)},
	}
}

// Inspector renders the selected-body panel in the top-right corner.
type Inspector struct {
	renderer *Renderer
	width    int32
	margin   int32
}

// NewInspector creates a new inspector panel.
func NewInspector(theme Theme, width int32) *Inspector {
	return &Inspector{
		renderer: NewRenderer(theme),
		width:    width,
		margin:   16,
	}
}

// Draw renders the panel for data against the right screen edge.
func (ins *Inspector) Draw(screenWidth int32, data InspectorData) {
	r := ins.renderer
	th := r.Theme
	rows := data.Rows()

	x := screenWidth - ins.width - ins.margin
	y := ins.margin
	height := int32(len(rows)+1)*th.LineHeight + th.Padding*2
	r.DrawPanel(x, y, ins.width, height)

	cx := x + th.Padding
	cy := y + th.Padding
	swatch := th.FontSize / 2
	rl.DrawCircle(cx+swatch, cy+swatch, float32(swatch), data.Color)
	cy = r.DrawSectionHeader(cx+swatch*3, cy, data.Name)

	for _, row := range rows {
		cy = r.DrawLabelValue(cx, cy, row[0], row[1])
	}
}
