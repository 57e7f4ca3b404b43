package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/ojrac/opensimplex-go"

	"github.com/pthm-cable/orbitalrace/config"
)

// Sampling frequencies for the star mask and brightness fields.
const (
	starMaskFreq   = 0.37
	starBrightFreq = 0.05
)

// Star is a single background point in screen space.
type Star struct {
	X, Y       float32
	Brightness uint8
}

// GenerateStars samples simplex noise on a grid of cellSize pixels and
// places a star in every cell whose normalized noise exceeds threshold.
// The result depends only on the arguments.
func GenerateStars(seed int64, width, height, cellSize int, threshold float64) []Star {
	if cellSize < 1 || width <= 0 || height <= 0 {
		return nil
	}
	mask := opensimplex.New(seed)
	bright := opensimplex.New(seed + 1)

	var stars []Star
	for cy := 0; cy*cellSize < height; cy++ {
		for cx := 0; cx*cellSize < width; cx++ {
			n := normalize(mask.Eval2(float64(cx)*starMaskFreq, float64(cy)*starMaskFreq))
			if n <= threshold {
				continue
			}
			// Offset within the cell from how far above the threshold we are
			frac := (n - threshold) / (1 - threshold)
			x := float64(cx*cellSize) + frac*float64(cellSize-1)
			y := float64(cy*cellSize) + (1-frac)*float64(cellSize-1)
			if x >= float64(width) || y >= float64(height) {
				continue
			}
			b := normalize(bright.Eval2(float64(cx)*starBrightFreq, float64(cy)*starBrightFreq))
			stars = append(stars, Star{
				X:          float32(x),
				Y:          float32(y),
				Brightness: uint8(60 + 140*b),
			})
		}
	}
	return stars
}

// normalize maps simplex output from [-1, 1] to [0, 1].
func normalize(n float64) float64 {
	n = (n + 1) / 2
	if n < 0 {
		return 0
	}
	if n > 1 {
		return 1
	}
	return n
}

// Starfield draws a fixed screen-space starfield.
type Starfield struct {
	cfg   config.StarsConfig
	stars []Star
}

// NewStarfield creates a starfield for a screen of the given size.
func NewStarfield(cfg config.StarsConfig, screenW, screenH int32) *Starfield {
	s := &Starfield{cfg: cfg}
	s.Resize(screenW, screenH)
	return s
}

// Resize regenerates the stars for a new screen size.
func (s *Starfield) Resize(screenW, screenH int32) {
	if !s.cfg.Enabled {
		s.stars = nil
		return
	}
	s.stars = GenerateStars(s.cfg.Seed, int(screenW), int(screenH), s.cfg.CellSize, s.cfg.Threshold)
}

// Count returns the number of stars.
func (s *Starfield) Count() int {
	return len(s.stars)
}

// Draw renders the stars.
func (s *Starfield) Draw() {
	for _, st := range s.stars {
		rl.DrawPixelV(rl.Vector2{X: st.X, Y: st.Y}, rl.Color{R: st.Brightness, G: st.Brightness, B: st.Brightness, A: 255})
	}
}
