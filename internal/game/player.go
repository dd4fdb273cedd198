package game

import (
	"github.com/vovakirdan/ghostbrawl/internal/config"
	"github.com/vovakirdan/ghostbrawl/internal/core"
)

// Player is the hero. Exactly one exists per Game.
type Player struct {
	tun config.PlayerTuning

	pos    core.Vec2
	vel    core.Vec2
	health float64

	punchLeft   float64 // Remaining punch window in seconds
	punchTarget core.Vec2
	regenTimer  float64 // Seconds since the last regen tick or hit
}

// NewPlayer creates a player at pos with full health.
func NewPlayer(t config.PlayerTuning, pos core.Vec2) *Player {
	p := &Player{tun: t}
	p.Reset(pos)
	return p
}

// Reset restores position, zeroes velocity and timers, and restores full health.
func (p *Player) Reset(pos core.Vec2) {
	p.pos = pos
	p.vel = core.Vec2{}
	p.health = p.tun.MaxHealth
	p.punchLeft = 0
	p.punchTarget = core.Vec2{}
	p.regenTimer = 0
}

// Update integrates one frame of movement and advances the combat timers.
func (p *Player) Update(dt float64, in core.InputFrame, field core.Rect) {
	dir := in.Axis().Normalize()

	p.vel = p.vel.Add(dir.Scale(p.tun.Acceleration * dt))
	p.vel = p.vel.Scale(p.tun.Friction)
	p.vel = p.vel.ClampLen(p.tun.MaxSpeed)
	p.pos = p.pos.Add(p.vel.Scale(dt))

	half := p.tun.Size / 2
	p.pos.X = core.ClampF(p.pos.X, field.X+half, field.Right()-half)
	p.pos.Y = core.ClampF(p.pos.Y, field.Y+half, field.Bottom()-half)

	if p.punchLeft > 0 {
		p.punchLeft = max(0, p.punchLeft-dt)
	}
	p.regenTimer += dt
}

// Punch opens the punch window aimed at target.
func (p *Player) Punch(target core.Vec2) {
	p.punchLeft = p.tun.PunchDuration
	p.punchTarget = target
}

// IsPunching reports whether the punch window is open.
func (p *Player) IsPunching() bool {
	return p.punchLeft > 0
}

// PunchProgress returns 1 at the start of a punch, falling to 0.
func (p *Player) PunchProgress() float64 {
	if p.tun.PunchDuration <= 0 {
		return 0
	}
	return p.punchLeft / p.tun.PunchDuration
}

// PunchTarget returns the point of the last punch.
func (p *Player) PunchTarget() core.Vec2 {
	return p.punchTarget
}

// PunchRange approximates the punch reach circle as a box.
func (p *Player) PunchRange() core.Rect {
	return core.RectAround(p.pos, p.tun.PunchRange, p.tun.PunchRange)
}

// TakeDamage lowers health, never below zero. Any hit restarts the
// regeneration interval.
func (p *Player) TakeDamage(d float64) {
	if d <= 0 {
		return
	}
	p.health = max(0, p.health-d)
	p.regenTimer = 0
}

// Regenerate heals one step once a full interval has passed since the last
// step or hit.
func (p *Player) Regenerate() {
	if p.regenTimer < p.tun.RegenInterval || p.health >= p.tun.MaxHealth {
		return
	}
	p.health = min(p.tun.MaxHealth, p.health+p.tun.RegenAmount)
	p.regenTimer = 0
}

// Bounds returns the collision box.
func (p *Player) Bounds() core.Rect {
	half := p.tun.Size / 2
	return core.RectAround(p.pos, half, half)
}

func (p *Player) Position() core.Vec2 { return p.pos }
func (p *Player) Velocity() core.Vec2 { return p.vel }
func (p *Player) Health() float64 { return p.health }
func (p *Player) MaxHealth() float64 { return p.tun.MaxHealth }
func (p *Player) Size() float64 { return p.tun.Size }
func (p *Player) Alive() bool { return p.health > 0 }

// HealthFraction returns health / max health.
func (p *Player) HealthFraction() float64 {
	if p.tun.MaxHealth <= 0 {
		return 0
	}
	return p.health / p.tun.MaxHealth
}
