package core

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is a non-premultiplied RGBA color.
type Color struct {
	R, G, B, A uint8
}

// RGB returns an opaque color.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

// RGBA returns a color with explicit alpha.
func RGBA(r, g, b, a uint8) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// WithAlpha returns c with its alpha replaced.
func (c Color) WithAlpha(a uint8) Color {
	c.A = a
	return c
}

// Fade multiplies the alpha channel by k.
func (c Color) Fade(k float64) Color {
	c.A = uint8(ClampF(float64(c.A)*k, 0, 255))
	return c
}

// Hex returns the color as #rrggbb, ignoring alpha.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// ParseHex parses #rrggbb or #rrggbbaa.
func ParseHex(s string) (Color, error) {
	h := strings.TrimPrefix(s, "#")
	if len(h) != 6 && len(h) != 8 {
		return Color{}, fmt.Errorf("color %q: want #rrggbb or #rrggbbaa", s)
	}
	rgb, err := colorful.Hex("#" + h[:6])
	if err != nil {
		return Color{}, fmt.Errorf("color %q: %w", s, err)
	}
	c := Color{A: 255}
	c.R, c.G, c.B = rgb.RGB255()
	if len(h) == 8 {
		// Alpha reads as the red channel of a gray
		a, err := colorful.Hex("#" + strings.Repeat(h[6:], 3))
		if err != nil {
			return Color{}, fmt.Errorf("color %q: %w", s, err)
		}
		c.A, _, _ = a.RGB255()
	}
	return c, nil
}

// Palette used by entities and effects.
var (
	ColorBlack   = RGB(0, 0, 0)
	ColorWhite   = RGB(255, 255, 255)
	ColorRed     = RGB(255, 0, 0)
	ColorGreen   = RGB(0, 255, 0)
	ColorBlue    = RGB(0, 0, 255)
	ColorYellow  = RGB(255, 255, 0)
	ColorMagenta = RGB(255, 0, 255)
	ColorCyan    = RGB(0, 255, 255)
	ColorOrange  = RGB(255, 165, 0)
	ColorGray    = RGB(128, 128, 128)
	ColorSkin    = RGB(255, 220, 177)
)
