// Package renderer draws the orbital scene: starfield, trails, bodies and
// the attractor.
package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/pthm-cable/orbitalrace/camera"
	"github.com/pthm-cable/orbitalrace/components"
	"github.com/pthm-cable/orbitalrace/config"
	"github.com/pthm-cable/orbitalrace/vecmath"
)

const (
	// trailShades is the number of fade steps per trail.
	trailShades = 32
	// minSegmentPx2 is the squared screen length below which trail points
	// are merged into the next segment.
	minSegmentPx2 = 1.0
)

// ColorFromSlice converts an RGB or RGBA list in [0, 1] to a color,
// ignoring alpha. Any other length yields fallback.
func ColorFromSlice(v []float64, fallback colorful.Color) colorful.Color {
	if len(v) != 3 && len(v) != 4 {
		return fallback
	}
	return colorful.Color{R: v[0], G: v[1], B: v[2]}.Clamped()
}

// ColorFromVector converts a 3D RGB vector to a color.
func ColorFromVector(v vecmath.Vector) colorful.Color {
	return ColorFromSlice(v.Slice(), colorful.Color{R: 1, G: 1, B: 1})
}

// ToRaylib converts a color to a raylib color with the given alpha.
func ToRaylib(c colorful.Color, a uint8) rl.Color {
	r, g, b := c.Clamped().RGB255()
	return rl.Color{R: r, G: g, B: b, A: a}
}

// TrailPalette returns n shades from oldest to newest. Each shade is the
// body color composited over the background at an opacity rising linearly
// to alpha for the newest shade.
func TrailPalette(background, body colorful.Color, alpha float64, n int) []colorful.Color {
	if n < 1 {
		return nil
	}
	out := make([]colorful.Color, n)
	for i := range out {
		t := alpha * float64(i+1) / float64(n)
		out[i] = background.BlendRgb(body, t).Clamped()
	}
	return out
}

// OrbitRenderer draws bodies and their trails in world space.
type OrbitRenderer struct {
	cfg        config.RenderConfig
	background colorful.Color
	attractor  rl.Color
	stars      *Starfield

	// ShowTrails toggles trail drawing; traces keep growing either way.
	ShowTrails bool
}

// NewOrbitRenderer creates a renderer for a screen of the given size.
func NewOrbitRenderer(cfg config.RenderConfig, screenW, screenH int32) *OrbitRenderer {
	return &OrbitRenderer{
		cfg:        cfg,
		background: ColorFromSlice(cfg.Background, colorful.Color{}),
		attractor:  ToRaylib(ColorFromSlice(cfg.AttractorColor, colorful.Color{R: 1, G: 1}), 255),
		stars:      NewStarfield(cfg.Stars, screenW, screenH),
		ShowTrails: true,
	}
}

// Resize propagates a new screen size.
func (r *OrbitRenderer) Resize(screenW, screenH int32) {
	r.stars.Resize(screenW, screenH)
}

// StarCount returns the number of background stars.
func (r *OrbitRenderer) StarCount() int {
	return r.stars.Count()
}

// BackgroundColor returns the clear color.
func (r *OrbitRenderer) BackgroundColor() rl.Color {
	return ToRaylib(r.background, 255)
}

// Draw renders the background, trails, body markers and the attractor.
func (r *OrbitRenderer) Draw(cam *camera.Camera, bodies []*components.Body) {
	r.stars.Draw()

	if r.ShowTrails {
		for _, b := range bodies {
			r.drawTrail(cam, b)
		}
	}

	radius := float32(r.cfg.PointSize) / 2
	for _, b := range bodies {
		if !b.Position.IsFinite() {
			continue
		}
		sx, sy := cam.WorldToScreen(b.Position.X(), b.Position.Y())
		rl.DrawCircleV(rl.Vector2{X: sx, Y: sy}, radius, ToRaylib(ColorFromVector(b.Color), 255))
	}

	ax, ay := cam.WorldToScreen(0, 0)
	rl.DrawCircleV(rl.Vector2{X: ax, Y: ay}, radius, r.attractor)
}

// drawTrail draws the trace of b followed by its current position as a
// polyline fading toward the background with age.
func (r *OrbitRenderer) drawTrail(cam *camera.Camera, b *components.Body) {
	pts := b.Trace
	if limit := r.cfg.TrailMaxPoints; limit > 0 && len(pts) > limit {
		pts = pts[len(pts)-limit:]
	}
	if len(pts) == 0 {
		return
	}

	palette := TrailPalette(r.background, ColorFromVector(b.Color), r.cfg.TrailAlpha, trailShades)
	width := float32(r.cfg.TrailWidth)
	n := len(pts)

	var prev rl.Vector2
	havePrev := false
	for i := 0; i <= n; i++ {
		p := b.Position
		if i < n {
			p = pts[i]
		}
		if !p.IsFinite() {
			havePrev = false
			continue
		}
		sx, sy := cam.WorldToScreen(p.X(), p.Y())
		cur := rl.Vector2{X: sx, Y: sy}
		if !havePrev {
			prev, havePrev = cur, true
			continue
		}
		dx, dy := cur.X-prev.X, cur.Y-prev.Y
		if i < n && dx*dx+dy*dy < minSegmentPx2 {
			continue
		}
		shade := palette[i*(trailShades-1)/n]
		rl.DrawLineEx(prev, cur, width, ToRaylib(shade, 255))
		prev = cur
	}
}
