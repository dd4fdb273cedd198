package game

import (
	"math"

	"github.com/vovakirdan/ghostbrawl/internal/config"
	"github.com/vovakirdan/ghostbrawl/internal/core"
)

// Kind selects a projectile's constants and motion rule.
type Kind int

const (
	KindLaser Kind = iota
	KindSuperPunch
	KindBossAttack
)

func (k Kind) String() string {
	switch k {
	case KindLaser:
		return "laser"
	case KindSuperPunch:
		return "super_punch"
	case KindBossAttack:
		return "boss_attack"
	default:
		return "unknown"
	}
}

const (
	superPunchDrag = 0.98
	wobbleFreq     = 8.0
	wobbleAmp      = 20.0
	pulseFreq      = 10.0
)

// kindTuning resolves the tuning row for a projectile kind.
func kindTuning(t config.ProjectileTable, k Kind) config.ProjectileTuning {
	switch k {
	case KindSuperPunch:
		return t.SuperPunch
	case KindBossAttack:
		return t.BossAttack
	default:
		return t.Laser
	}
}

// TrailPoint is one past position of a projectile.
type TrailPoint struct {
	Pos   core.Vec2
	Age   float64
	Alpha float64 // 1 when fresh, 0 when faded
}

// Projectile is a ranged attack in flight.
type Projectile struct {
	kind    Kind
	hostile bool

	pos core.Vec2
	dir core.Vec2 // Unit vector, or zero for a degenerate aim
	vel core.Vec2

	damage  float64
	size    float64
	color   core.Color
	life    float64
	maxLife float64
	anim    float64
	active  bool

	trail     []TrailPoint // Newest first
	trailCap  int
	trailFade float64
}

// NewProjectile launches a projectile from origin toward target. When the
// two coincide the projectile never moves.
func NewProjectile(origin, target core.Vec2, kind Kind, t config.ProjectileTable) *Projectile {
	row := kindTuning(t, kind)
	c, err := core.ParseHex(row.Color)
	if err != nil {
		c = core.ColorWhite
	}
	dir := target.Sub(origin).Normalize()
	return &Projectile{
		kind:      kind,
		hostile:   kind == KindBossAttack,
		pos:       origin,
		dir:       dir,
		vel:       dir.Scale(row.Speed),
		damage:    row.Damage,
		size:      row.Size,
		color:     c,
		life:      row.Lifetime,
		maxLife:   row.Lifetime,
		active:    true,
		trail:     make([]TrailPoint, 0, t.TrailLength+1),
		trailCap:  t.TrailLength,
		trailFade: t.TrailFade,
	}
}

// Update advances one frame. Inactive projectiles do nothing.
func (p *Projectile) Update(dt float64) {
	if !p.active {
		return
	}
	p.anim += dt
	p.move(dt)
	p.pos = p.pos.Add(p.vel.Scale(dt))

	p.life -= dt
	if p.life <= 0 {
		p.life = 0
		p.active = false
	}
	p.updateTrail(dt)
}

// move applies the per-kind velocity rule.
func (p *Projectile) move(dt float64) {
	switch p.kind {
	case KindSuperPunch:
		p.vel = p.vel.Scale(superPunchDrag)
	case KindBossAttack:
		// A stationary shot stays stationary.
		if p.dir == (core.Vec2{}) {
			return
		}
		p.vel.Y += math.Sin(p.anim*wobbleFreq) * wobbleAmp * dt
	}
}

func (p *Projectile) updateTrail(dt float64) {
	p.trail = append(p.trail, TrailPoint{})
	copy(p.trail[1:], p.trail)
	p.trail[0] = TrailPoint{Pos: p.pos, Alpha: 1}

	n := 0
	for _, tp := range p.trail {
		tp.Age += dt
		tp.Alpha = 1 - tp.Age/p.trailFade
		if tp.Alpha <= 0 || tp.Age > p.trailFade {
			continue
		}
		p.trail[n] = tp
		n++
	}
	p.trail = p.trail[:min(n, p.trailCap)]
}

// OffField reports whether the projectile left the w x h playfield by more
// than its own size.
func (p *Projectile) OffField(w, h float64) bool {
	return p.pos.X < -p.size || p.pos.X > w+p.size ||
		p.pos.Y < -p.size || p.pos.Y > h+p.size
}

// Bounds returns the collision box.
func (p *Projectile) Bounds() core.Rect {
	return core.RectAround(p.pos, p.size, p.size)
}

// Deactivate marks the projectile for removal.
func (p *Projectile) Deactivate() {
	p.active = false
}

// Pulse is the render scale, oscillating in [0.7, 1.3].
func (p *Projectile) Pulse() float64 {
	return 1 + 0.3*math.Sin(p.anim*pulseFreq)
}

// Fade is the remaining-life fraction used for alpha.
func (p *Projectile) Fade() float64 {
	if p.maxLife <= 0 {
		return 0
	}
	return min(1, p.life/p.maxLife)
}

func (p *Projectile) Kind() Kind { return p.kind }
func (p *Projectile) Hostile() bool { return p.hostile }
func (p *Projectile) Active() bool { return p.active }
func (p *Projectile) Position() core.Vec2 { return p.pos }
func (p *Projectile) Direction() core.Vec2 { return p.dir }
func (p *Projectile) Damage() float64 { return p.damage }
func (p *Projectile) Size() float64 { return p.size }
func (p *Projectile) Color() core.Color { return p.color }
func (p *Projectile) Trail() []TrailPoint { return p.trail }
