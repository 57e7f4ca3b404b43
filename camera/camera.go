// Package camera provides a 2D camera system for viewport control.
package camera

import "math"

// Minimum virtual half-extents of the view. The window always shows at
// least 800x600 virtual units; the longer axis grows with the aspect ratio.
const (
	MinHalfWidth  = 400.0
	MinHalfHeight = 300.0
)

// Camera controls the viewport into the simulation world.
// World y points up; screen y points down.
type Camera struct {
	// Position is the camera center in world coordinates
	X, Y float64

	// Zoom level (1.0 = default framing, 2.0 = 2x magnification)
	Zoom float32

	// Scale is virtual units per world unit at zoom 1
	Scale float64

	// Viewport dimensions (screen size)
	ViewportW, ViewportH float32

	// Virtual half-extents for the current viewport
	HalfW, HalfH float64

	// Zoom constraints
	MinZoom, MaxZoom float32
}

// ViewportHalfExtents returns the virtual half-extents for a window of
// w x h pixels: max(400, 300·w/h) by max(300, 400·h/w).
func ViewportHalfExtents(w, h float64) (halfW, halfH float64) {
	halfW = math.Max(MinHalfWidth, MinHalfHeight*w/h)
	halfH = math.Max(MinHalfHeight, MinHalfWidth*h/w)
	return halfW, halfH
}

// New creates a camera centered on the attractor with zoom 1.
func New(viewportW, viewportH float32, scale float64) *Camera {
	c := &Camera{
		Zoom:    1.0,
		Scale:   scale,
		MinZoom: 0.05,
		MaxZoom: 20.0,
	}
	c.Resize(viewportW, viewportH)
	return c
}

// PixelsPerUnit returns how many screen pixels one world unit covers.
func (c *Camera) PixelsPerUnit() float32 {
	return float32(c.Scale*float64(c.ViewportW)/(2*c.HalfW)) * c.Zoom
}

// WorldToScreen converts world coordinates to screen coordinates.
func (c *Camera) WorldToScreen(wx, wy float64) (sx, sy float32) {
	ppu := c.PixelsPerUnit()
	sx = c.ViewportW/2 + float32(wx-c.X)*ppu
	sy = c.ViewportH/2 - float32(wy-c.Y)*ppu
	return sx, sy
}

// ScreenToWorld converts screen coordinates to world coordinates.
func (c *Camera) ScreenToWorld(sx, sy float32) (wx, wy float64) {
	ppu := float64(c.PixelsPerUnit())
	wx = c.X + float64(sx-c.ViewportW/2)/ppu
	wy = c.Y - float64(sy-c.ViewportH/2)/ppu
	return wx, wy
}

// IsVisible returns true if a circle at (wx, wy) with the given radius in
// pixels could be visible on screen (conservative check for culling).
func (c *Camera) IsVisible(wx, wy float64, radius float32) bool {
	sx, sy := c.WorldToScreen(wx, wy)
	return sx >= -radius && sx <= c.ViewportW+radius &&
		sy >= -radius && sy <= c.ViewportH+radius
}

// Resize updates viewport dimensions and the virtual half-extents.
func (c *Camera) Resize(viewportW, viewportH float32) {
	if viewportW <= 0 || viewportH <= 0 {
		return
	}
	c.ViewportW = viewportW
	c.ViewportH = viewportH
	c.HalfW, c.HalfH = ViewportHalfExtents(float64(viewportW), float64(viewportH))
}

// Pan moves the camera by the given delta in screen pixels.
func (c *Camera) Pan(dx, dy float32) {
	ppu := float64(c.PixelsPerUnit())
	c.X += float64(dx) / ppu
	c.Y -= float64(dy) / ppu
}

// SetZoom sets the zoom level, clamped to min/max.
func (c *Camera) SetZoom(zoom float32) {
	c.Zoom = clamp(zoom, c.MinZoom, c.MaxZoom)
}

// ZoomBy multiplies the current zoom by the given factor.
func (c *Camera) ZoomBy(factor float32) {
	c.SetZoom(c.Zoom * factor)
}

// Reset returns the camera to the attractor at zoom 1.
func (c *Camera) Reset() {
	c.X, c.Y = 0, 0
	c.Zoom = 1.0
}

// VisibleWorldBounds returns the world-coordinate bounds of the visible area.
func (c *Camera) VisibleWorldBounds() (minX, minY, maxX, maxY float64) {
	ppu := float64(c.PixelsPerUnit())
	halfW := float64(c.ViewportW) / (2 * ppu)
	halfH := float64(c.ViewportH) / (2 * ppu)
	return c.X - halfW, c.Y - halfH, c.X + halfW, c.Y + halfH
}

// clamp restricts a value to a range.
func clamp(x, min, max float32) float32 {
	if x < min {
		return min
	}
	if x > max {
		return max
	}
	return x
}
