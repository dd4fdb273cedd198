package game

import (
	"math"
	"math/rand"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/vovakirdan/ghostbrawl/internal/config"
	"github.com/vovakirdan/ghostbrawl/internal/core"
)

// Variant is the fixed category of a ghost.
type Variant int

const (
	VariantRegular Variant = iota
	VariantFast
	VariantBoss
)

func (v Variant) String() string {
	switch v {
	case VariantRegular:
		return "regular"
	case VariantFast:
		return "fast"
	case VariantBoss:
		return "boss"
	default:
		return "unknown"
	}
}

// enemyStats is a variant row after difficulty scaling.
type enemyStats struct {
	health    float64
	speed     float64
	aggro     float64
	damage    float64
	boost     float64 // Boss contact damage while an attack is active
	size      float64
	color     core.Color
	score     int
	floatAmp  float64
	floatFreq float64
}

// statsFor resolves the tuning row for a variant.
func statsFor(t config.EnemyTable, v Variant) enemyStats {
	var row config.EnemyTuning
	switch v {
	case VariantFast:
		row = t.Fast
	case VariantBoss:
		row = t.Boss
	default:
		row = t.Regular
	}
	c, err := core.ParseHex(row.Color)
	if err != nil {
		c = core.ColorWhite
	}
	return enemyStats{
		health:    row.Health,
		speed:     row.Speed,
		aggro:     row.AggroRange,
		damage:    row.Damage,
		size:      row.Size,
		color:     c,
		score:     row.Score,
		floatAmp:  row.FloatAmplitude,
		floatFreq: row.FloatFrequency,
	}
}

// enemyRules are the AI parameters shared by every ghost of a session.
type enemyRules struct {
	think     float64
	jitter    float64
	damping   float64
	orbitRate float64
	radius    float64
	boss      config.BossTuning
}

func rulesFrom(t config.Tuning) *enemyRules {
	return &enemyRules{
		think:     t.Enemies.ThinkInterval,
		jitter:    t.Enemies.Jitter,
		damping:   t.Enemies.IdleDamping,
		orbitRate: t.Enemies.OrbitRate,
		radius:    t.Enemies.CollisionRadius,
		boss:      t.Boss,
	}
}

// Enemy is a ghost.
type Enemy struct {
	variant Variant
	stats   enemyStats
	rules   *enemyRules

	pos  core.Vec2
	base core.Vec2 // Position without the float offset
	vel  core.Vec2

	health     float64
	floatPhase float64
	anim       float64
	thinkTimer float64

	// Boss attack cycle
	damage      float64
	attackTimer float64
	graceLeft   float64
	decay       *gween.Tween
}

func newEnemy(pos core.Vec2, v Variant, stats enemyStats, rules *enemyRules, rng *rand.Rand) *Enemy {
	if stats.boost == 0 {
		stats.boost = rules.boss.BoostDamage
	}
	return &Enemy{
		variant:    v,
		stats:      stats,
		rules:      rules,
		pos:        pos,
		base:       pos,
		health:     stats.health,
		damage:     stats.damage,
		floatPhase: rng.Float64() * 2 * math.Pi,
	}
}

// Update runs one frame of AI and animation. It returns true on the frame a
// boss attack triggers.
func (e *Enemy) Update(dt float64, target core.Vec2, rng *rand.Rand) bool {
	e.anim += dt
	e.thinkTimer += dt

	toTarget := target.Sub(e.pos)
	dist := toTarget.Len()
	inRange := dist > 0 && dist <= e.stats.aggro

	if e.thinkTimer >= e.rules.think {
		if inRange {
			e.think(toTarget.Scale(1/dist), e.thinkTimer, rng)
		}
		e.thinkTimer = 0
	}
	if !inRange {
		e.vel = e.vel.Scale(e.rules.damping)
	}

	e.base = e.base.Add(e.vel.Scale(dt))
	e.floatPhase += dt * e.stats.floatFreq
	e.pos = core.V(e.base.X, e.base.Y+math.Sin(e.floatPhase)*e.stats.floatAmp)

	if e.variant == VariantBoss {
		return e.updateBossAttack(dt)
	}
	return false
}

// think picks a new velocity toward the player. dir is a unit vector and
// elapsed is the time since the previous decision.
func (e *Enemy) think(dir core.Vec2, elapsed float64, rng *rand.Rand) {
	j := e.rules.jitter
	dir = dir.Add(core.V(
		(rng.Float64()*2-1)*j,
		(rng.Float64()*2-1)*j,
	))

	if e.variant == VariantBoss {
		angle := dir.Angle() + elapsed*e.rules.orbitRate
		e.vel = core.FromAngle(angle, e.stats.speed)
		return
	}
	e.vel = dir.Scale(e.stats.speed)
}

// updateBossAttack runs the boost cycle. Every cooldown the contact damage
// jumps to stats.boost, holds for the grace window, then tweens back.
func (e *Enemy) updateBossAttack(dt float64) bool {
	b := e.rules.boss
	e.attackTimer += dt
	if e.attackTimer >= b.AttackCooldown {
		e.attackTimer = 0
		e.damage = e.stats.boost
		e.graceLeft = b.BoostGrace
		e.decay = nil
		return true
	}

	switch {
	case e.graceLeft > 0:
		e.graceLeft -= dt
		if e.graceLeft > 0 {
			break
		}
		if b.BoostDecay <= 0 {
			e.damage = e.stats.damage
			break
		}
		e.decay = gween.New(float32(e.stats.boost), float32(e.stats.damage), float32(b.BoostDecay), ease.OutQuad)
	case e.decay != nil:
		v, done := e.decay.Update(float32(dt))
		e.damage = float64(v)
		if done {
			e.damage = e.stats.damage
			e.decay = nil
		}
	}
	return false
}

// Banish marks the ghost dead; it is removed at the end of the pass.
func (e *Enemy) Banish() {
	e.health = 0
}

// Dead reports whether the ghost is eligible for removal.
func (e *Enemy) Dead() bool {
	return e.health <= 0
}

// Bounds returns the collision box, the same for every variant.
func (e *Enemy) Bounds() core.Rect {
	return core.RectAround(e.pos, e.rules.radius, e.rules.radius)
}

// Alpha is the idle pulse, oscillating in [0.4, 1].
func (e *Enemy) Alpha() float64 {
	return 0.7 + 0.3*math.Sin(e.anim*3)
}

// Color is the variant color with the pulse applied.
func (e *Enemy) Color() core.Color {
	return e.stats.color.WithAlpha(uint8(255 * e.Alpha()))
}

// Boosted reports whether a boss is above its base contact damage.
func (e *Enemy) Boosted() bool {
	return e.damage > e.stats.damage
}

func (e *Enemy) Variant() Variant { return e.variant }
func (e *Enemy) Position() core.Vec2 { return e.pos }
func (e *Enemy) Velocity() core.Vec2 { return e.vel }
func (e *Enemy) Health() float64 { return e.health }
func (e *Enemy) MaxHealth() float64 { return e.stats.health }
func (e *Enemy) Damage() float64 { return e.damage }
func (e *Enemy) Score() int { return e.stats.score }
func (e *Enemy) Size() float64 { return e.stats.size }
func (e *Enemy) AnimTime() float64 { return e.anim }
