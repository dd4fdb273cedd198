package game

import "math"

// Snapshot contains the observable game state for determinism checks and
// score records. Uses primitive types only for stable comparison.
type Snapshot struct {
	Tick      uint64
	Phase     string
	Score     int
	Level     int
	Banished  int
	PlayerX   float64
	PlayerY   float64
	PlayerVX  float64
	PlayerVY  float64
	Health    float64
	Punching  bool
	Particles int
	Emitters  int

	// Each enemy is 5 values: Variant, X, Y, Health, Damage
	EnemyCount int
	EnemyData  []float64

	// Each projectile is 4 values: Kind, X, Y, TrailLen
	ProjectileCount int
	ProjectileData  []float64
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	enemyData := make([]float64, 0, len(g.enemies)*5)
	for _, e := range g.enemies {
		pos := e.Position()
		enemyData = append(enemyData, float64(e.Variant()), pos.X, pos.Y, e.Health(), e.Damage())
	}

	projectileData := make([]float64, 0, len(g.projectiles)*4)
	for _, p := range g.projectiles {
		pos := p.Position()
		projectileData = append(projectileData, float64(p.Kind()), pos.X, pos.Y, float64(len(p.Trail())))
	}

	pos, vel := g.player.Position(), g.player.Velocity()
	return Snapshot{
		Tick:      g.tick,
		Phase:     g.phase.String(),
		Score:     g.score,
		Level:     g.level,
		Banished:  g.banished,
		PlayerX:   pos.X,
		PlayerY:   pos.Y,
		PlayerVX:  vel.X,
		PlayerVY:  vel.Y,
		Health:    g.player.Health(),
		Punching:  g.player.IsPunching(),
		Particles: g.particles.Len(),
		Emitters:  g.particles.Emitters(),

		EnemyCount:      len(g.enemies),
		EnemyData:       enemyData,
		ProjectileCount: len(g.projectiles),
		ProjectileData:  projectileData,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	for _, c := range snap.Phase {
		h = h*31 + uint64(c) //#nosec G115 -- hash computation
	}
	h = h*31 + uint64(snap.Score)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Level)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Banished)  //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(snap.PlayerX)
	h = h*31 + math.Float64bits(snap.PlayerY)
	h = h*31 + math.Float64bits(snap.PlayerVX)
	h = h*31 + math.Float64bits(snap.PlayerVY)
	h = h*31 + math.Float64bits(snap.Health)
	if snap.Punching {
		h = h*31 + 1
	}
	h = h*31 + uint64(snap.Particles)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Emitters)        //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.EnemyCount)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.ProjectileCount) //#nosec G115 -- hash computation

	for _, v := range snap.EnemyData {
		h = h*31 + math.Float64bits(v)
	}

	for _, v := range snap.ProjectileData {
		h = h*31 + math.Float64bits(v)
	}

	return h
}
