package game

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/ghostbrawl/internal/core"
)

// Effect tags a particle with its spawn table, physics and render rule.
type Effect int

const (
	EffectExplosion Effect = iota
	EffectLaser
	EffectPunch
	EffectDamage
	EffectLevelComplete
	EffectSmoke
	EffectSpark
)

func (e Effect) String() string {
	switch e {
	case EffectExplosion:
		return "explosion"
	case EffectLaser:
		return "laser"
	case EffectPunch:
		return "punch"
	case EffectDamage:
		return "damage"
	case EffectLevelComplete:
		return "level_complete"
	case EffectSmoke:
		return "smoke"
	case EffectSpark:
		return "spark"
	default:
		return "unknown"
	}
}

// Particle is one visual speck. Rotation and Spin are in degrees.
type Particle struct {
	Pos      core.Vec2
	Vel      core.Vec2
	Color    core.Color
	Life     float64
	MaxLife  float64
	Size     float64
	Rotation float64
	Spin     float64
	Effect   Effect
}

// Emitter is a continuous effect: it emits a small batch every interval
// until its duration has elapsed.
type Emitter struct {
	Pos      core.Vec2
	Effect   Effect
	Duration float64
	Elapsed  float64
	acc      float64
}

var (
	explosionPalette = []core.Color{core.ColorRed, core.ColorYellow, core.ColorOrange, core.ColorWhite}
	levelPalette     = []core.Color{core.ColorYellow, core.ColorCyan, core.ColorMagenta, core.ColorGreen, core.ColorWhite}
	smokeColor       = core.RGBA(128, 128, 128, 180)
)

// burst is the spawn table of one effect. The launch angle is drawn from
// [center-spread, center+spread].
type burst struct {
	count            int
	center, spread   float64
	speedMin, speedX float64
	sizeMin, sizeX   float64
	lifeMin, lifeX   float64
	color            func(i int, rng *rand.Rand) core.Color
}

// burstFor resolves the spawn table of an effect.
func burstFor(e Effect) burst {
	switch e {
	case EffectExplosion:
		return burst{
			count: 20, center: math.Pi, spread: math.Pi,
			speedMin: 50, speedX: 200, sizeMin: 2, sizeX: 8, lifeMin: 0.5, lifeX: 2,
			color: func(i int, _ *rand.Rand) core.Color { return explosionPalette[i%len(explosionPalette)] },
		}
	case EffectLaser:
		return burst{
			count: 8, center: math.Pi, spread: math.Pi,
			speedMin: 20, speedX: 80, sizeMin: 1, sizeX: 4, lifeMin: 0.8, lifeX: 0.8,
			color: func(_ int, rng *rand.Rand) core.Color { return core.RGB(255, uint8(50+rng.Intn(100)), 0) },
		}
	case EffectPunch:
		return burst{
			count: 15, center: math.Pi, spread: math.Pi,
			speedMin: 100, speedX: 300, sizeMin: 3, sizeX: 10, lifeMin: 1.2, lifeX: 1.2,
			color: func(_ int, rng *rand.Rand) core.Color { return core.RGB(uint8(200+rng.Intn(55)), 255, 0) },
		}
	case EffectDamage:
		return burst{
			count: 10, center: -math.Pi / 2, spread: math.Pi / 4,
			speedMin: 30, speedX: 120, sizeMin: 2, sizeX: 6, lifeMin: 1.5, lifeX: 1.5,
			color: func(_ int, rng *rand.Rand) core.Color { return core.RGBA(255, 0, 0, uint8(150+rng.Intn(105))) },
		}
	case EffectLevelComplete:
		return burst{
			count: 50, center: math.Pi, spread: math.Pi,
			speedMin: 80, speedX: 250, sizeMin: 4, sizeX: 12, lifeMin: 2, lifeX: 4,
			color: func(i int, _ *rand.Rand) core.Color { return levelPalette[i%len(levelPalette)] },
		}
	case EffectSmoke:
		return burst{
			count: 12, center: -math.Pi / 2, spread: math.Pi / 6,
			speedMin: 10, speedX: 50, sizeMin: 5, sizeX: 15, lifeMin: 3, lifeX: 3,
			color: func(int, *rand.Rand) core.Color { return smokeColor },
		}
	default: // EffectSpark
		return burst{
			count: 6, center: -math.Pi / 2, spread: 0.5,
			speedMin: 100, speedX: 300, sizeMin: 1, sizeX: 3, lifeMin: 0.5, lifeX: 0.5,
			color: func(_ int, rng *rand.Rand) core.Color { return core.RGB(255, uint8(200+rng.Intn(55)), 0) },
		}
	}
}

// applyForces is the per-effect physics rule.
func applyForces(p *Particle, dt float64) {
	switch p.Effect {
	case EffectExplosion, EffectPunch, EffectDamage:
		p.Vel.Y += 150 * dt
		p.Vel = p.Vel.Scale(0.98)
	case EffectLaser, EffectSpark:
		p.Vel = p.Vel.Scale(0.95)
	case EffectSmoke:
		p.Vel.Y -= 20 * dt
		p.Vel = p.Vel.Scale(0.99)
	case EffectLevelComplete:
		p.Vel.Y += 80 * dt
		p.Vel = p.Vel.Scale(0.99)
	}
	if p.Effect == EffectSmoke || p.Effect == EffectExplosion {
		p.Size *= 1.01
	}
}

// Particles is a bounded particle pool plus its continuous emitters.
type Particles struct {
	items    []Particle
	emitters []Emitter
	capacity int
	interval float64
	rng      *rand.Rand
}

// NewParticles creates a pool holding at most capacity particles.
// Emitters fire every interval seconds.
func NewParticles(capacity int, interval float64, rng *rand.Rand) *Particles {
	return &Particles{
		items:    make([]Particle, 0, capacity),
		capacity: capacity,
		interval: interval,
		rng:      rng,
	}
}

// Emit spawns an effect at pos. count <= 0 selects the effect's default
// count. Particles beyond capacity are dropped.
func (ps *Particles) Emit(e Effect, pos core.Vec2, count int) {
	b := burstFor(e)
	ps.spawn(e, b, pos, count)
}

// Spark spawns sparks fanning out around dir.
func (ps *Particles) Spark(pos, dir core.Vec2, count int) {
	b := burstFor(EffectSpark)
	if dir != (core.Vec2{}) {
		b.center = dir.Angle()
	}
	ps.spawn(EffectSpark, b, pos, count)
}

func (ps *Particles) spawn(e Effect, b burst, pos core.Vec2, count int) {
	if count <= 0 {
		count = b.count
	}
	for i := 0; i < count; i++ {
		if len(ps.items) >= ps.capacity {
			return
		}
		angle := b.center + (ps.rng.Float64()*2-1)*b.spread
		speed := randRange(ps.rng, b.speedMin, b.speedX)
		size := randRange(ps.rng, b.sizeMin, b.sizeX)
		life := randRange(ps.rng, b.lifeMin, b.lifeX)
		ps.items = append(ps.items, Particle{
			Pos:     pos,
			Vel:     core.FromAngle(angle, speed),
			Color:   b.color(i, ps.rng),
			Life:    life,
			MaxLife: life,
			Size:    size,
			Spin:    float64(ps.rng.Intn(360)-180) * 2,
			Effect:  e,
		})
	}
}

// AddContinuous starts an emitter at pos for duration seconds.
func (ps *Particles) AddContinuous(pos core.Vec2, e Effect, duration float64) {
	ps.emitters = append(ps.emitters, Emitter{Pos: pos, Effect: e, Duration: duration})
}

// Update advances every live particle, purges the dead ones and runs the
// emitters.
func (ps *Particles) Update(dt float64) {
	for i := range ps.items {
		p := &ps.items[i]
		p.Life -= dt
		if p.Life <= 0 {
			continue
		}
		p.Pos = p.Pos.Add(p.Vel.Scale(dt))
		applyForces(p, dt)
		p.Color.A = uint8(255 * p.Life / p.MaxLife)
		p.Rotation += p.Spin * dt
	}

	n := 0
	for _, p := range ps.items {
		if p.Life > 0 {
			ps.items[n] = p
			n++
		}
	}
	ps.items = ps.items[:n]

	m := 0
	for _, em := range ps.emitters {
		em.Elapsed += dt
		em.acc += dt
		if em.acc >= ps.interval {
			em.acc = 0
			ps.emitBatch(em)
		}
		if em.Elapsed < em.Duration {
			ps.emitters[m] = em
			m++
		}
	}
	ps.emitters = ps.emitters[:m]
}

func (ps *Particles) emitBatch(em Emitter) {
	switch em.Effect {
	case EffectSpark:
		ps.Spark(em.Pos, core.V(0, -1), 1)
	default:
		ps.Emit(em.Effect, em.Pos, 2)
	}
}

// Clear drops every particle and emitter.
func (ps *Particles) Clear() {
	ps.items = ps.items[:0]
	ps.emitters = ps.emitters[:0]
}

// Items returns the live particles. The slice is only valid until the next
// Update or Emit.
func (ps *Particles) Items() []Particle { return ps.items }

func (ps *Particles) Len() int { return len(ps.items) }
func (ps *Particles) Emitters() int { return len(ps.emitters) }

func randRange(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}
