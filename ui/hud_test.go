package ui

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/orbitalrace/components"
	"github.com/pthm-cable/orbitalrace/systems"
	"github.com/pthm-cable/orbitalrace/vecmath"
)

func TestGroupFields(t *testing.T) {
	player := components.NewBody(vecmath.Vec2(1, 0), vecmath.Vec2(0, 1), vecmath.Vec3(1, 0, 0))
	fields := systems.ComputeReadout(&player, &player).Fields()

	groups := GroupFields(fields)
	wantTitles := []string{components.GroupPosition, components.GroupVelocity, components.GroupEnergy}
	if len(groups) != len(wantTitles) {
		t.Fatalf("got %d groups, want %d", len(groups), len(wantTitles))
	}

	total := 0
	for i, g := range groups {
		if g.Title != wantTitles[i] {
			t.Errorf("group %d = %q, want %q", i, g.Title, wantTitles[i])
		}
		for _, f := range g.Fields {
			if f.Group != g.Title {
				t.Errorf("field %s listed under %q", f.ID, g.Title)
			}
		}
		total += len(g.Fields)
	}
	if total != len(fields) {
		t.Errorf("grouped %d fields, want %d", total, len(fields))
	}
	if groups[0].Fields[0].ID != components.FieldAltitude {
		t.Errorf("first field = %s, want altitude", groups[0].Fields[0].ID)
	}

	if got := panelLines(groups); got != int32(2+len(groups)+len(fields)) {
		t.Errorf("panelLines = %d", got)
	}
}

func TestColorFromConfig(t *testing.T) {
	fallback := rl.Color{R: 1, G: 2, B: 3, A: 4}
	tests := []struct {
		name string
		in   []float64
		want rl.Color
	}{
		{"rgb", []float64{0, 1, 0}, rl.Color{R: 0, G: 255, B: 0, A: 255}},
		{"rgba", []float64{1, 0, 0, 0}, rl.Color{R: 255, G: 0, B: 0, A: 0}},
		{"wrong length", []float64{1}, fallback},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ColorFromConfig(tt.in, fallback); got != tt.want {
				t.Errorf("ColorFromConfig(%v) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestThemeWithText(t *testing.T) {
	c := rl.Color{R: 10, G: 20, B: 30, A: 40}
	th := DefaultTheme().WithText(c, 20, 0)
	if th.LabelColor != c || th.ValueColor != c {
		t.Errorf("text colors not applied: %+v", th)
	}
	if th.SectionHeader.A != 255 {
		t.Errorf("section header should be opaque, got alpha %d", th.SectionHeader.A)
	}
	if th.FontSize != 20 || th.LineHeight != DefaultTheme().LineHeight {
		t.Errorf("font %d line %d", th.FontSize, th.LineHeight)
	}
}
