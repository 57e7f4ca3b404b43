// Starfield and trail preview tool - interactive tuning with sliders.
//
// Usage: go run ./cmd/starpreview [-config config.yaml]
package main

import (
	"flag"
	"fmt"
	"log"
	"strings"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
	"gopkg.in/yaml.v3"

	"github.com/pthm-cable/orbitalrace/camera"
	"github.com/pthm-cable/orbitalrace/config"
	"github.com/pthm-cable/orbitalrace/game"
	"github.com/pthm-cable/orbitalrace/renderer"
	"github.com/pthm-cable/orbitalrace/systems"
)

const (
	windowWidth  = 1000
	windowHeight = 720
	panelWidth   = 300
	previewDT    = 1.0 / 60.0
)

// slider draws a labelled slider bar and returns the new value.
func slider(x, y float32, label, format string, value, lo, hi float32) float32 {
	rl.DrawText(label, int32(x), int32(y), 14, rl.LightGray)
	v := gui.SliderBar(
		rl.Rectangle{X: x, Y: y + 18, Width: panelWidth - 90, Height: 20},
		"", "",
		value, lo, hi,
	)
	rl.DrawText(fmt.Sprintf(format, v), int32(x+panelWidth-80), int32(y+20), 16, rl.RayWhite)
	return v
}

// renderYAML formats the render section as it would appear in config.yaml.
func renderYAML(cfg config.RenderConfig) (string, error) {
	out, err := yaml.Marshal(struct {
		Render config.RenderConfig `yaml:"render"`
	}{cfg})
	if err != nil {
		return "", err
	}
	return string(out), nil
}

func main() {
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	flag.Parse()

	if err := config.Init(*configPath); err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	cfg := config.Cfg()
	initial := cfg.Render
	params := cfg.Render

	sim, err := game.NewSimulation(cfg.Bodies)
	if err != nil {
		log.Fatalf("failed to build simulation: %v", err)
	}

	rl.InitWindow(windowWidth, windowHeight, "Starfield Preview")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	cam := camera.New(windowWidth, windowHeight, params.Scale)
	orbits := renderer.NewOrbitRenderer(params, windowWidth, windowHeight)
	animating := true
	needsRebuild := false

	for !rl.WindowShouldClose() {
		if animating {
			sim.Update(previewDT, systems.Joystick{})
		}
		if needsRebuild {
			orbits = renderer.NewOrbitRenderer(params, windowWidth, windowHeight)
			needsRebuild = false
		}

		rl.BeginDrawing()
		rl.ClearBackground(orbits.BackgroundColor())
		orbits.Draw(cam, sim.BodyPointers())

		// Control panel
		panelX := float32(windowWidth - panelWidth)
		rl.DrawRectangle(int32(panelX)-10, 0, panelWidth+10, windowHeight, rl.Fade(rl.Black, 0.8))
		panelY := float32(10)

		rl.DrawText("Starfield", int32(panelX), int32(panelY), 20, rl.RayWhite)
		panelY += 30

		seed := slider(panelX, panelY, "Seed", "%.0f", float32(params.Stars.Seed), 0, 9999)
		if int64(seed) != params.Stars.Seed {
			params.Stars.Seed = int64(seed)
			needsRebuild = true
		}
		panelY += 45

		cell := slider(panelX, panelY, "Cell size (px)", "%.0f", float32(params.Stars.CellSize), 2, 32)
		if int(cell) != params.Stars.CellSize {
			params.Stars.CellSize = int(cell)
			needsRebuild = true
		}
		panelY += 45

		threshold := slider(panelX, panelY, "Threshold (higher = sparser)", "%.3f", float32(params.Stars.Threshold), 0.5, 0.99)
		if float64(threshold) != params.Stars.Threshold {
			params.Stars.Threshold = float64(threshold)
			needsRebuild = true
		}
		panelY += 55

		rl.DrawText("Trails", int32(panelX), int32(panelY), 20, rl.RayWhite)
		panelY += 30

		alpha := slider(panelX, panelY, "Trail alpha", "%.2f", float32(params.TrailAlpha), 0, 1)
		if float64(alpha) != params.TrailAlpha {
			params.TrailAlpha = float64(alpha)
			needsRebuild = true
		}
		panelY += 45

		width := slider(panelX, panelY, "Trail width (px)", "%.1f", float32(params.TrailWidth), 0.5, 6)
		if float64(width) != params.TrailWidth {
			params.TrailWidth = float64(width)
			needsRebuild = true
		}
		panelY += 55

		// Buttons
		if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 120, Height: 30}, toggleText(animating, "Stop", "Animate")) {
			animating = !animating
		}
		if gui.Button(rl.Rectangle{X: panelX + 130, Y: panelY, Width: 120, Height: 30}, "Clear Trails") {
			sim.Reset()
		}
		panelY += 40

		if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 120, Height: 30}, "Random Seed") {
			params.Stars.Seed = int64(rl.GetRandomValue(0, 9999))
			needsRebuild = true
		}
		if gui.Button(rl.Rectangle{X: panelX + 130, Y: panelY, Width: 120, Height: 30}, "Reset All") {
			params = initial
			needsRebuild = true
		}
		panelY += 50

		rl.DrawText(fmt.Sprintf("Stars: %d", orbits.StarCount()), int32(panelX), int32(panelY), 16, rl.LightGray)
		panelY += 30

		// Output YAML
		out, err := renderYAML(params)
		if err != nil {
			out = err.Error()
		}
		for _, line := range strings.Split(strings.TrimRight(out, "\n"), "\n") {
			rl.DrawText(line, int32(panelX), int32(panelY), 12, rl.Gray)
			panelY += 14
		}

		rl.DrawText("Press C to copy YAML to clipboard", int32(panelX), int32(windowHeight-20), 12, rl.Gray)
		if rl.IsKeyPressed(rl.KeyC) && err == nil {
			rl.SetClipboardText(out)
		}

		rl.EndDrawing()
	}
}

func toggleText(cond bool, ifTrue, ifFalse string) string {
	if cond {
		return ifTrue
	}
	return ifFalse
}
