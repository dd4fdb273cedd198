package game

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/ghostbrawl/internal/core"
)

// Asset names looked up through core.Assets.
const (
	TextureHero       = "superman"
	TextureGhost      = "ghost"
	TextureBackground = "background"
	TextureEffects    = "effects"
	FontHUD           = "hud"
)

// UI text
const (
	titleText        = "SUPERMAN VS GHOST"
	instructionsText = "WASD: Move  SPACE: Laser  CLICK: Punch  ESC: Pause\nPress ENTER to start!"
	gameOverText     = "GAME OVER\nPress ENTER to restart"
	pausedText       = "PAUSED\nPress ESC to resume\nPress ENTER to restart"
)

var (
	punchGlow  = core.RGBA(255, 255, 0, 64)
	bossAura   = core.RGBA(255, 100, 100, 32)
	dimOverlay = core.RGBA(0, 0, 0, 128)
)

// Render draws the current frame onto dst.
func (g *Game) Render(dst core.Canvas) {
	if tex, ok := g.assets.Texture(TextureBackground); ok {
		dst.DrawTexture(tex, g.runtime.Bounds())
	}
	font, _ := g.assets.Font(FontHUD)

	if g.phase == core.PhaseMenu {
		g.drawMenu(dst, font)
		return
	}

	for _, p := range g.particles.Items() {
		drawParticle(dst, p)
	}
	for _, p := range g.projectiles {
		drawProjectile(dst, p)
	}
	for _, e := range g.enemies {
		g.drawEnemy(dst, e)
	}
	g.drawPlayer(dst)
	g.drawHUD(dst, font)

	switch g.phase {
	case core.PhasePaused:
		g.drawOverlay(dst, font, pausedText)
	case core.PhaseGameOver:
		g.drawOverlay(dst, font, gameOverText)
	}
}

func (g *Game) drawMenu(dst core.Canvas, font core.Font) {
	w, h := g.runtime.Width, g.runtime.Height
	dst.Text(font, core.V(w/2-220, h/3), 48, titleText, core.ColorWhite)
	drawLines(dst, font, core.V(w/2-260, h/2), 20, instructionsText, core.ColorYellow)
}

func (g *Game) drawPlayer(dst core.Canvas) {
	p := g.player
	pos, s := p.Position(), p.Size()

	if p.IsPunching() {
		dst.FillCircle(pos, g.tun.Player.PunchRange, punchGlow.Fade(p.PunchProgress()))
	}

	if tex, ok := g.assets.Texture(TextureHero); ok {
		dst.DrawTexture(tex, core.RectAround(pos, s/2, s/2))
	} else {
		dst.FillRect(core.RectAround(pos, s*0.3, s*0.4), 0, core.ColorBlue)
		dst.FillRect(core.RectAround(pos.Add(core.V(0, -s*0.1)), s*0.15, s*0.1), 0, core.ColorRed)
		dst.FillCircle(pos.Add(core.V(0, -s*0.55)), s*0.25, core.ColorSkin)
	}

	bar := core.RectAround(pos.Add(core.V(0, -s*0.95)), s/2, 3)
	drawBar(dst, bar, p.HealthFraction())
}

// drawEnemy is the per-variant render rule.
func (g *Game) drawEnemy(dst core.Canvas, e *Enemy) {
	pos, s, col := e.Position(), e.Size(), e.Color()

	if e.Variant() == VariantBoss {
		dst.FillCircle(pos, s*1.2, bossAura)
		pulse := 1 + 0.1*math.Sin(e.AnimTime()*6)
		ring := col
		if e.Boosted() {
			ring = core.ColorRed
		}
		dst.StrokeCircle(pos, s*pulse, 2, ring)
	}

	if tex, ok := g.assets.Texture(TextureGhost); ok {
		dst.DrawTexture(tex, core.RectAround(pos, s, s))
	} else {
		dst.FillCircle(pos, s*0.8, col)
		for i := range 5 {
			x := pos.X - s*0.8 + float64(i)*s*0.4
			wave := math.Sin(e.AnimTime()*4+float64(i)*0.5) * 3
			dst.FillCircle(core.V(x, pos.Y+s*0.6+wave), s*0.25, col)
		}
		dst.FillCircle(pos.Add(core.V(-s*0.3, -s*0.2)), s*0.12, core.ColorBlack)
		dst.FillCircle(pos.Add(core.V(s*0.3, -s*0.2)), s*0.12, core.ColorBlack)
		dst.FillCircle(pos.Add(core.V(0, s*0.2)), s*0.1, core.ColorBlack)
	}

	if e.Variant() == VariantBoss {
		bar := core.RectAround(pos.Add(core.V(0, -s*1.4)), s, 3)
		drawBar(dst, bar, e.Health()/e.MaxHealth())
	}
}

// drawProjectile is the per-kind render rule, trail first.
func drawProjectile(dst core.Canvas, p *Projectile) {
	base := p.Color()
	for _, tp := range p.Trail() {
		dst.FillCircle(tp.Pos, p.Size()*0.5, base.Fade(tp.Alpha*0.5))
	}

	pos := p.Position()
	s := p.Size() * p.Pulse()
	col := base.Fade(p.Fade())

	switch p.Kind() {
	case KindLaser:
		rot := p.Direction().Angle() * 180 / math.Pi
		dst.FillRect(core.RectAround(pos, s*1.5, s*0.5), rot, col)
		dst.FillCircle(pos, s, col.Fade(0.3))
	case KindSuperPunch:
		dst.FillCircle(pos, s, col)
		for i := 1; i <= 3; i++ {
			dst.StrokeCircle(pos, s+float64(i)*4, 1, col.Fade(1-float64(i)*0.25))
		}
	case KindBossAttack:
		dst.FillCircle(pos, s*1.5, col.Fade(0.3))
		dst.FillCircle(pos, s, col)
	}
}

// drawParticle is the per-effect render rule.
func drawParticle(dst core.Canvas, p Particle) {
	switch p.Effect {
	case EffectLaser, EffectSpark:
		dst.FillRect(core.RectAround(p.Pos, p.Size, p.Size/2), p.Rotation, p.Color)
	default:
		dst.FillCircle(p.Pos, p.Size, p.Color)
	}
}

func (g *Game) drawHUD(dst core.Canvas, font core.Font) {
	p := g.player
	dst.Text(font, core.V(10, 10), 20, fmt.Sprintf("Score: %d", g.score), core.ColorWhite)
	dst.Text(font, core.V(10, 35), 20, fmt.Sprintf("Level: %d", g.level), core.ColorWhite)
	dst.Text(font, core.V(10, 60), 20,
		fmt.Sprintf("Health: %d/%d", int(p.Health()), int(p.MaxHealth())), core.ColorWhite)

	bar := core.NewRect(g.runtime.Width-220, 10, 200, 20)
	drawBar(dst, bar, p.HealthFraction())
	dst.StrokeRect(bar, 2, core.ColorWhite)
}

func (g *Game) drawOverlay(dst core.Canvas, font core.Font, text string) {
	w, h := g.runtime.Width, g.runtime.Height
	dst.FillRect(g.runtime.Bounds(), 0, dimOverlay)
	drawLines(dst, font, core.V(w/2-140, h/2-30), 28, text, core.ColorWhite)
}

// drawBar draws a red bar with a green fill covering frac of its width.
func drawBar(dst core.Canvas, r core.Rect, frac float64) {
	frac = core.ClampF(frac, 0, 1)
	dst.FillRect(r, 0, core.ColorRed)
	if frac > 0 {
		dst.FillRect(core.NewRect(r.X, r.Y, r.W*frac, r.H), 0, core.ColorGreen)
	}
}

// drawLines draws newline separated text, one line every 1.2 sizes.
func drawLines(dst core.Canvas, font core.Font, pos core.Vec2, size float64, text string, c core.Color) {
	for i, line := range strings.Split(text, "\n") {
		dst.Text(font, pos.Add(core.V(0, float64(i)*size*1.2)), size, line, c)
	}
}
