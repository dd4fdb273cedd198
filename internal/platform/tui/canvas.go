package tui

import (
	"math"

	"github.com/vovakirdan/ghostbrawl/internal/core"
)

// Shapes fainter than this are not rasterized.
const minAlpha = 48

// Canvas rasterizes playfield shapes onto a cell Screen. Each cell covers
// sx by sy playfield pixels.
type Canvas struct {
	screen *core.Screen
	sx, sy float64
}

// NewCanvas maps a worldW x worldH playfield onto s.
func NewCanvas(s *core.Screen, worldW, worldH float64) *Canvas {
	c := &Canvas{screen: s}
	c.Fit(worldW, worldH)
	return c
}

// Fit recomputes the cell scale after the screen or playfield changed size.
func (c *Canvas) Fit(worldW, worldH float64) {
	c.sx = worldW / float64(max(1, c.screen.Width()))
	c.sy = worldH / float64(max(1, c.screen.Height()))
}

// Clear blanks the screen.
func (c *Canvas) Clear() {
	c.screen.Clear()
}

// ToWorld returns the playfield point at the center of cell (x, y).
func (c *Canvas) ToWorld(x, y int) core.Vec2 {
	return core.V((float64(x)+0.5)*c.sx, (float64(y)+0.5)*c.sy)
}

func (c *Canvas) cell(v core.Vec2) (int, int) {
	return int(math.Floor(v.X / c.sx)), int(math.Floor(v.Y / c.sy))
}

// cellSpan returns the on-screen cell range covering a circle's bounding box.
func (c *Canvas) cellSpan(center core.Vec2, radius float64) (x0, y0, x1, y1 int) {
	w, h := c.screen.Width()-1, c.screen.Height()-1
	x0, y0 = c.cell(center.Sub(core.V(radius, radius)))
	x1, y1 = c.cell(center.Add(core.V(radius, radius)))
	return core.Clamp(x0, 0, w), core.Clamp(y0, 0, h), core.Clamp(x1, 0, w), core.Clamp(y1, 0, h)
}

// FillRect fills the cells covered by r. Terminal cells cannot rotate, so
// rotation is ignored.
func (c *Canvas) FillRect(r core.Rect, _ float64, col core.Color) {
	if col.A < minAlpha {
		return
	}
	x0, y0 := c.cell(core.V(r.X, r.Y))
	x1 := int(math.Ceil(r.Right() / c.sx))
	y1 := int(math.Ceil(r.Bottom() / c.sy))
	x1, y1 = max(x1, x0+1), max(y1, y0+1)

	glyph, fg := paint(col)
	c.screen.FillArea(x0, y0, x1, y1, glyph, fg)
}

func (c *Canvas) StrokeRect(r core.Rect, _ float64, col core.Color) {
	if col.A < minAlpha {
		return
	}
	x0, y0 := c.cell(core.V(r.X, r.Y))
	x1 := int(math.Ceil(r.Right() / c.sx))
	y1 := int(math.Ceil(r.Bottom() / c.sy))
	if x1-x0 < 2 || y1-y0 < 2 {
		c.FillRect(r, 0, col)
		return
	}
	c.screen.DrawBox(x0, y0, x1-x0, y1-y0, opaque(col))
}

// FillCircle fills the cells whose centers fall inside the circle. Circles
// smaller than a cell become a single dot.
func (c *Canvas) FillCircle(center core.Vec2, radius float64, col core.Color) {
	if col.A < minAlpha {
		return
	}
	glyph, fg := paint(col)
	if radius < c.sx/2 && radius < c.sy/2 {
		if glyph != ' ' {
			glyph = '•'
		}
		x, y := c.cell(center)
		c.screen.SetCell(x, y, glyph, fg)
		return
	}

	x0, y0, x1, y1 := c.cellSpan(center, radius)
	r2 := radius * radius
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			d := c.ToWorld(x, y).Sub(center)
			if d.X*d.X+d.Y*d.Y <= r2 {
				c.screen.SetCell(x, y, glyph, fg)
			}
		}
	}
}

func (c *Canvas) StrokeCircle(center core.Vec2, radius, _ float64, col core.Color) {
	if col.A < minAlpha {
		return
	}
	tol := max(c.sx, c.sy) / 2
	x0, y0, x1, y1 := c.cellSpan(center, radius+tol)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			d := c.ToWorld(x, y).Sub(center).Len()
			if math.Abs(d-radius) <= tol {
				c.screen.SetCell(x, y, '·', opaque(col))
			}
		}
	}
}

// Text writes s starting at the cell containing pos. Size and font are
// meaningless in a terminal.
func (c *Canvas) Text(_ core.Font, pos core.Vec2, _ float64, s string, col core.Color) {
	x, y := c.cell(pos)
	c.screen.DrawText(x, y, s, opaque(col))
}

// DrawTexture is a no-op; the terminal has no images.
func (c *Canvas) DrawTexture(core.Texture, core.Rect) {}

// paint picks a shade glyph for the alpha of col. Near-black shapes erase
// to blank cells so overlays and ghost faces read as holes.
func paint(col core.Color) (rune, core.Color) {
	if int(col.R)+int(col.G)+int(col.B) < 60 {
		return ' ', core.Color{}
	}
	fg := opaque(col)
	switch {
	case col.A >= 200:
		return '█', fg
	case col.A >= 120:
		return '▓', fg
	case col.A >= 80:
		return '▒', fg
	default:
		return '░', fg
	}
}

func opaque(c core.Color) core.Color {
	return c.WithAlpha(255)
}
