package game

import (
	"github.com/vovakirdan/ghostbrawl/internal/core"
)

// bossSmokeDuration is how long a banished boss keeps smoking.
const bossSmokeDuration = 2.0

// resolveCollisions runs the per-frame hit tests in order: friendly shots
// against ghosts, ghosts against the hero, then hostile shots against the
// hero.
func (g *Game) resolveCollisions() {
	g.resolveProjectileHits()
	g.compactEnemies()
	g.resolveContactDamage()
	g.resolveHostileHits()
	g.compactProjectiles()
}

// resolveProjectileHits banishes the first live ghost each friendly
// projectile touches.
func (g *Game) resolveProjectileHits() {
	for _, p := range g.projectiles {
		if !p.Active() || p.Hostile() {
			continue
		}
		pb := p.Bounds()
		for _, e := range g.enemies {
			if e.Dead() || !pb.Intersects(e.Bounds()) {
				continue
			}
			g.banish(e)
			g.particles.Spark(e.Position(), p.Direction(), 0)
			p.Deactivate()
			break
		}
	}
}

// resolveContactDamage applies the full contact damage of every ghost
// overlapping the hero, once per frame.
func (g *Game) resolveContactDamage() {
	pb := g.player.Bounds()
	touching := false
	for _, e := range g.enemies {
		if e.Dead() || !pb.Intersects(e.Bounds()) {
			continue
		}
		g.player.TakeDamage(e.Damage())
		g.particles.Emit(EffectDamage, g.player.Position(), 0)
		touching = true
	}
	if touching && !g.touching {
		g.audio.PlayCue(core.CueHurt)
	}
	g.touching = touching
}

func (g *Game) resolveHostileHits() {
	pb := g.player.Bounds()
	for _, p := range g.projectiles {
		if !p.Active() || !p.Hostile() || !pb.Intersects(p.Bounds()) {
			continue
		}
		g.player.TakeDamage(p.Damage())
		g.particles.Emit(EffectDamage, g.player.Position(), 0)
		g.audio.PlayCue(core.CueHurt)
		p.Deactivate()
	}
}

// resolveMelee banishes every ghost inside the punch box. It only acts
// while the punch window is open.
func (g *Game) resolveMelee() int {
	if !g.player.IsPunching() {
		return 0
	}
	reach := g.player.PunchRange()
	hits := 0
	for _, e := range g.enemies {
		if e.Dead() || !reach.Intersects(e.Bounds()) {
			continue
		}
		g.banish(e)
		hits++
	}
	g.compactEnemies()
	return hits
}

// banish scores a ghost and marks it for compaction.
func (g *Game) banish(e *Enemy) {
	e.Banish()
	g.score += e.Score()
	g.banished++
	g.particles.Emit(EffectExplosion, e.Position(), 0)
	if e.Variant() == VariantBoss {
		g.particles.AddContinuous(e.Position(), EffectSmoke, bossSmokeDuration)
	}
	g.audio.PlayCue(core.CueGhostDeath)
}

func (g *Game) compactEnemies() {
	n := 0
	for _, e := range g.enemies {
		if !e.Dead() {
			g.enemies[n] = e
			n++
		}
	}
	clear(g.enemies[n:])
	g.enemies = g.enemies[:n]
}

// compactProjectiles drops inactive projectiles and those that left the field.
func (g *Game) compactProjectiles() {
	n := 0
	for _, p := range g.projectiles {
		if p.Active() && !p.OffField(g.runtime.Width, g.runtime.Height) {
			g.projectiles[n] = p
			n++
		}
	}
	clear(g.projectiles[n:])
	g.projectiles = g.projectiles[:n]
}
