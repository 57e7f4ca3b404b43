package game

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/orbitalrace/systems"
)

// Input supplies the joystick state each simulation step.
type Input interface {
	// Poll returns the joystick state for the current step.
	Poll() systems.Joystick
	// Advance moves the input's clock by dt simulated seconds.
	Advance(dt float64)
	// Quit reports whether the input source asked to stop.
	Quit() bool
}

// KeyboardInput reads the arrow keys. Keys are level-triggered: thrust is
// applied for as long as a key is held.
type KeyboardInput struct{}

// Poll reads the arrow keys.
func (KeyboardInput) Poll() systems.Joystick {
	return systems.Joystick{
		Right: rl.IsKeyDown(rl.KeyRight),
		Left:  rl.IsKeyDown(rl.KeyLeft),
		Up:    rl.IsKeyDown(rl.KeyUp),
		Down:  rl.IsKeyDown(rl.KeyDown),
	}
}

// Advance is a no-op; the keyboard has no clock.
func (KeyboardInput) Advance(float64) {}

// Quit reports a window close request (close button or Escape).
func (KeyboardInput) Quit() bool {
	return rl.WindowShouldClose()
}

// ScriptStep holds a joystick state for a duration in simulated seconds.
type ScriptStep struct {
	Joystick systems.Joystick
	Duration float64
}

// ScriptedInput replays a fixed thrust schedule. After the last step the
// joystick is released. An empty script coasts forever.
type ScriptedInput struct {
	steps   []ScriptStep
	elapsed float64
}

// NewScriptedInput creates an input replaying steps in order.
func NewScriptedInput(steps ...ScriptStep) *ScriptedInput {
	return &ScriptedInput{steps: steps}
}

// Poll returns the joystick of the step covering the elapsed time.
func (s *ScriptedInput) Poll() systems.Joystick {
	t := s.elapsed
	for _, st := range s.steps {
		if t < st.Duration {
			return st.Joystick
		}
		t -= st.Duration
	}
	return systems.Joystick{}
}

// Advance moves the script clock.
func (s *ScriptedInput) Advance(dt float64) {
	s.elapsed += dt
}

// Quit reports whether a non-empty script has run to its end.
func (s *ScriptedInput) Quit() bool {
	if len(s.steps) == 0 {
		return false
	}
	return s.elapsed >= s.Duration()
}

// Duration returns the total script length in seconds.
func (s *ScriptedInput) Duration() float64 {
	var total float64
	for _, st := range s.steps {
		total += st.Duration
	}
	return total
}

// Restart rewinds the script to its beginning.
func (s *ScriptedInput) Restart() {
	s.elapsed = 0
}

// ErrInvalidScript is returned for malformed thrust scripts.
var ErrInvalidScript = errors.New("invalid thrust script")

// ParseThrustScript parses a comma-separated list of "direction:seconds"
// steps. Directions are "up", "down", "left", "right", "none", or several
// joined with "+", e.g. "up:2,none:30,up+right:0.5".
func ParseThrustScript(s string) (*ScriptedInput, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return NewScriptedInput(), nil
	}

	var steps []ScriptStep
	for _, item := range strings.Split(s, ",") {
		dir, secs, ok := strings.Cut(strings.TrimSpace(item), ":")
		if !ok {
			return nil, fmt.Errorf("%w: step %q has no duration", ErrInvalidScript, item)
		}
		d, err := strconv.ParseFloat(secs, 64)
		if err != nil || d < 0 {
			return nil, fmt.Errorf("%w: step %q has bad duration", ErrInvalidScript, item)
		}
		js, err := parseDirections(dir)
		if err != nil {
			return nil, err
		}
		steps = append(steps, ScriptStep{Joystick: js, Duration: d})
	}
	return NewScriptedInput(steps...), nil
}

func parseDirections(s string) (systems.Joystick, error) {
	var js systems.Joystick
	for _, d := range strings.Split(s, "+") {
		switch strings.ToLower(strings.TrimSpace(d)) {
		case "up":
			js.Up = true
		case "down":
			js.Down = true
		case "left":
			js.Left = true
		case "right":
			js.Right = true
		case "none":
		default:
			return js, fmt.Errorf("%w: unknown direction %q", ErrInvalidScript, d)
		}
	}
	return js, nil
}

// handleInput processes the keyboard controls that are not thrust.
func (g *Game) handleInput() {
	// Window resize propagation
	g.handleResize()

	if rl.IsKeyPressed(rl.KeyF11) {
		rl.ToggleFullscreen()
	}

	if rl.IsKeyPressed(rl.KeySpace) {
		g.togglePause()
	}

	if rl.IsKeyPressed(rl.KeyR) {
		g.Reset()
	}

	// Steps-per-update control with < > keys (comma and period)
	if rl.IsKeyPressed(rl.KeyComma) && g.stepsPerUpdate > 1 {
		g.stepsPerUpdate--
	}
	if rl.IsKeyPressed(rl.KeyPeriod) && g.stepsPerUpdate < 10 {
		g.stepsPerUpdate++
	}

	g.handleOverlayKeys()
	g.handleCameraInput()
	g.handleSelection()
}

// handleResize checks for window resize and propagates new dimensions.
func (g *Game) handleResize() {
	if !rl.IsWindowResized() {
		return
	}
	w := float32(rl.GetScreenWidth())
	h := float32(rl.GetScreenHeight())
	if w == g.screenWidth && h == g.screenHeight {
		return
	}
	g.screenWidth = w
	g.screenHeight = h

	g.camera.Resize(w, h)
	g.orbits.Resize(int32(w), int32(h))
}

// handleCameraInput processes camera pan/zoom controls. The arrow keys
// steer the ship, so panning uses WASD.
func (g *Game) handleCameraInput() {
	const panSpeed = 8.0

	if rl.IsKeyDown(rl.KeyD) {
		g.camera.Pan(panSpeed, 0)
	}
	if rl.IsKeyDown(rl.KeyA) {
		g.camera.Pan(-panSpeed, 0)
	}
	if rl.IsKeyDown(rl.KeyS) {
		g.camera.Pan(0, panSpeed)
	}
	if rl.IsKeyDown(rl.KeyW) {
		g.camera.Pan(0, -panSpeed)
	}

	// Zoom controls: mouse wheel or +/- keys
	if wheelMove := rl.GetMouseWheelMove(); wheelMove != 0 {
		g.camera.ZoomBy(1 + wheelMove*0.1)
	}
	if rl.IsKeyPressed(rl.KeyEqual) || rl.IsKeyPressed(rl.KeyKpAdd) {
		g.camera.ZoomBy(1.25)
	}
	if rl.IsKeyPressed(rl.KeyMinus) || rl.IsKeyPressed(rl.KeyKpSubtract) {
		g.camera.ZoomBy(0.8)
	}

	// Home key to reset camera
	if rl.IsKeyPressed(rl.KeyHome) {
		g.camera.Reset()
	}
}
