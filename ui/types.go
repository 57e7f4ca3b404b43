// Package ui draws the heads-up display over the orbital scene. Readout
// lines are driven by field metadata rather than hard-coded labels.
package ui

import rl "github.com/gen2brain/raylib-go/raylib"

// Theme holds UI styling constants.
type Theme struct {
	PanelBg        rl.Color
	PanelBorder    rl.Color
	SectionHeader  rl.Color
	LabelColor     rl.Color
	ValueColor     rl.Color
	WarningColor   rl.Color
	Padding        int32
	LineHeight     int32
	LabelWidth     int32
	FontSize       int32
	HeaderFontSize int32
	ButtonWidth    float32
	ButtonHeight   float32
}

// DefaultTheme returns the default UI theme.
func DefaultTheme() Theme {
	return Theme{
		PanelBg:        rl.Color{R: 0, G: 0, B: 0, A: 160},
		PanelBorder:    rl.Color{R: 0, G: 90, B: 0, A: 255},
		SectionHeader:  rl.Color{R: 0, G: 255, B: 0, A: 220},
		LabelColor:     rl.Color{R: 0, G: 255, B: 0, A: 153},
		ValueColor:     rl.Color{R: 0, G: 255, B: 0, A: 153},
		WarningColor:   rl.Color{R: 255, G: 160, B: 0, A: 255},
		Padding:        10,
		LineHeight:     22,
		LabelWidth:     120,
		FontSize:       18,
		HeaderFontSize: 18,
		ButtonWidth:    90,
		ButtonHeight:   26,
	}
}

// WithText returns a copy of t using the given text color, font size and
// line height. Zero values keep the defaults.
func (t Theme) WithText(color rl.Color, fontSize, lineHeight int32) Theme {
	t.LabelColor = color
	t.ValueColor = color
	t.SectionHeader = rl.Color{R: color.R, G: color.G, B: color.B, A: 255}
	if fontSize > 0 {
		t.FontSize = fontSize
		t.HeaderFontSize = fontSize
		t.LabelWidth = fontSize * 7
	}
	if lineHeight > 0 {
		t.LineHeight = lineHeight
	}
	return t
}
