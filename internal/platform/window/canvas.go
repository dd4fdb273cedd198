package window

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/ghostbrawl/internal/core"
)

// Canvas draws playfield shapes onto an ebiten image. Playfield pixels map
// one to one onto the image because Layout returns the playfield size.
type Canvas struct {
	dst   *ebiten.Image
	pixel *ebiten.Image
	face  *text.GoTextFaceSource
}

// NewCanvas wraps dst. pixel is a 1x1 white image used for rotated fills;
// face is the fallback font source.
func NewCanvas(dst, pixel *ebiten.Image, face *text.GoTextFaceSource) *Canvas {
	return &Canvas{dst: dst, pixel: pixel, face: face}
}

func (c *Canvas) FillRect(r core.Rect, rotation float64, col core.Color) {
	if rotation == 0 {
		vector.FillRect(c.dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), toColor(col), true)
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM = rectTransform(r, rotation)
	op.ColorScale.ScaleWithColor(toColor(col))
	op.Filter = ebiten.FilterLinear
	c.dst.DrawImage(c.pixel, op)
}

func (c *Canvas) StrokeRect(r core.Rect, width float64, col core.Color) {
	vector.StrokeRect(c.dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), float32(width), toColor(col), true)
}

func (c *Canvas) FillCircle(center core.Vec2, radius float64, col core.Color) {
	vector.FillCircle(c.dst, float32(center.X), float32(center.Y), float32(radius), toColor(col), true)
}

func (c *Canvas) StrokeCircle(center core.Vec2, radius, width float64, col core.Color) {
	vector.StrokeCircle(c.dst, float32(center.X), float32(center.Y), float32(radius), float32(width), toColor(col), true)
}

// Text draws s at pos. Fonts that did not come from Assets fall back to the
// built-in face.
func (c *Canvas) Text(f core.Font, pos core.Vec2, size float64, s string, col core.Color) {
	src := c.face
	if ft, ok := f.(*Font); ok && ft != nil {
		src = ft.src
	}
	if src == nil {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(pos.X, pos.Y)
	op.ColorScale.ScaleWithColor(toColor(col))
	op.LineSpacing = size * 1.2
	text.Draw(c.dst, s, &text.GoTextFace{Source: src, Size: size}, op)
}

func (c *Canvas) DrawTexture(t core.Texture, dst core.Rect) {
	tex, ok := t.(*Texture)
	if !ok || tex == nil {
		return
	}
	w, h := tex.Size()
	if w == 0 || h == 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(dst.W/float64(w), dst.H/float64(h))
	op.GeoM.Translate(dst.X, dst.Y)
	op.Filter = ebiten.FilterLinear
	c.dst.DrawImage(tex.img, op)
}

// rectTransform maps the unit square onto r rotated by deg around its center.
func rectTransform(r core.Rect, deg float64) ebiten.GeoM {
	var m ebiten.GeoM
	m.Scale(r.W, r.H)
	m.Translate(-r.W/2, -r.H/2)
	m.Rotate(deg * math.Pi / 180)
	center := r.Center()
	m.Translate(center.X, center.Y)
	return m
}

func toColor(c core.Color) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}
