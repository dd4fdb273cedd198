// Package game implements the Ghost Brawl simulation: a hero fighting waves
// of floating ghosts on a fixed playfield. The core is single threaded and
// deterministic for a given seed and input stream; frontends drive it with
// Step and draw it with Render.
package game

import (
	"io"
	"math"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/ghostbrawl/internal/config"
	"github.com/vovakirdan/ghostbrawl/internal/core"
)

// Game implements the Ghost Brawl game logic.
type Game struct {
	// Collaborators
	log    *log.Logger
	audio  core.Audio
	assets core.Assets

	// Configuration
	runtime    core.RuntimeConfig
	tun        config.Tuning
	pending    *config.Tuning // Applied at the next start
	difficulty *config.DifficultyManager
	rules      *enemyRules
	rng        *rand.Rand

	// Game objects
	player      *Player
	enemies     []*Enemy
	projectiles []*Projectile
	particles   *Particles

	// Session state
	phase     core.Phase
	score     int
	level     int
	bestLevel int
	banished  int
	tick      uint64
	touching  bool // Any ghost overlapped the hero last frame
}

// Option configures a Game.
type Option func(*Game)

// WithLogger routes game events to l. A nil logger discards them.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.log = l
		}
	}
}

// WithAudio sets the audio sink.
func WithAudio(a core.Audio) Option {
	return func(g *Game) {
		if a != nil {
			g.audio = a
		}
	}
}

// WithAssets sets the asset provider used by Render.
func WithAssets(a core.Assets) Option {
	return func(g *Game) {
		if a != nil {
			g.assets = a
		}
	}
}

// WithTuning replaces the default tuning.
func WithTuning(t config.Tuning) Option {
	return func(g *Game) {
		g.tun = t
	}
}

// New creates a game. Call Reset before the first Step.
func New(opts ...Option) *Game {
	g := &Game{
		log:    log.New(io.Discard),
		audio:  core.NopAudio{},
		assets: core.NoAssets{},
		tun:    config.DefaultTuning(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "ghostbrawl"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Superman vs Ghost"
}

// Reset initializes the game in the menu with a freshly seeded RNG.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	if runtime.TickRate <= 0 {
		runtime.TickRate = 60
	}
	g.runtime = runtime
	g.rng = rand.New(rand.NewSource(runtime.Seed)) //#nosec G404 -- gameplay randomness must be reproducible

	if g.pending != nil {
		g.tun = *g.pending
		g.pending = nil
	}
	g.applyTuning()

	g.phase = core.PhaseMenu
	g.score = 0
	g.level = 1
	g.bestLevel = 0
	g.banished = 0
	g.tick = 0
	g.touching = false
	g.enemies = g.enemies[:0]
	g.projectiles = g.projectiles[:0]
}

// ApplyTuning queues t for the next (re)start so a running wave keeps
// consistent rules.
func (g *Game) ApplyTuning(t config.Tuning) {
	g.pending = &t
	g.log.Debug("tuning queued")
}

func (g *Game) applyTuning() {
	g.difficulty = config.NewDifficultyManager(g.tun.Difficulty)
	g.rules = rulesFrom(g.tun)
	g.player = NewPlayer(g.tun.Player, g.center())
	g.particles = NewParticles(g.tun.Particles.Capacity, g.tun.Particles.EmitInterval, g.rng)
}

// Step advances the simulation by one fixed tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	return g.Advance(in, 1/float64(g.runtime.TickRate))
}

// Advance advances the simulation by dt seconds.
func (g *Game) Advance(in core.InputFrame, dt float64) core.StepResult {
	g.tick++
	ended := false

	switch g.phase {
	case core.PhaseMenu:
		if in.Has(core.ActionConfirm) {
			g.start()
		}
	case core.PhasePlaying:
		if in.Has(core.ActionCancel) {
			g.pause()
			break
		}
		ended = g.play(in, dt)
	case core.PhasePaused:
		switch {
		case in.Has(core.ActionConfirm):
			g.start()
		case in.Has(core.ActionCancel):
			g.resume()
		}
	case core.PhaseGameOver:
		if in.Has(core.ActionConfirm) {
			g.start()
			break
		}
		// Let the game over smoke play out.
		g.particles.Update(dt)
	}

	return core.StepResult{State: g.State(), Ended: ended}
}

// play runs one Playing frame. It returns true when the hero died.
func (g *Game) play(in core.InputFrame, dt float64) bool {
	if in.Has(core.ActionFire) {
		g.fire(KindLaser, in.Target)
	}
	if in.Has(core.ActionAltFire) {
		g.fire(KindSuperPunch, in.Target)
	}
	if in.Has(core.ActionMelee) {
		g.melee(in.Target)
	}

	g.player.Update(dt, in, g.runtime.Bounds())

	target := g.player.Position()
	for _, e := range g.enemies {
		if e.Update(dt, target, g.rng) && g.tun.Boss.FiresProjectiles {
			g.projectiles = append(g.projectiles,
				NewProjectile(e.Position(), target, KindBossAttack, g.tun.Projectiles))
		}
	}

	for _, p := range g.projectiles {
		p.Update(dt)
	}
	g.compactProjectiles()

	g.resolveCollisions()
	g.particles.Update(dt)

	if len(g.enemies) == 0 {
		g.nextLevel()
	}
	if !g.player.Alive() {
		g.gameOver()
		return true
	}
	g.player.Regenerate()
	return false
}

// fire launches a friendly projectile from the hero toward target.
func (g *Game) fire(k Kind, target core.Vec2) {
	origin := g.player.Position()
	g.projectiles = append(g.projectiles, NewProjectile(origin, target, k, g.tun.Projectiles))
	switch k {
	case KindLaser:
		g.particles.Emit(EffectLaser, origin, 0)
		g.audio.PlayCue(core.CueLaser)
	default:
		g.particles.Emit(EffectPunch, origin, 5)
		g.audio.PlayCue(core.CuePunch)
	}
}

func (g *Game) melee(target core.Vec2) {
	g.player.Punch(target)
	if hits := g.resolveMelee(); hits > 0 {
		g.log.Debug("melee hit", "ghosts", hits, "score", g.score)
	}
	g.particles.Emit(EffectPunch, target, 0)
	g.audio.PlayCue(core.CuePunch)
}

// start begins a new session at level 1.
func (g *Game) start() {
	if g.pending != nil {
		g.tun = *g.pending
		g.pending = nil
		g.applyTuning()
	}

	g.score = 0
	g.level = 1
	g.bestLevel = 1
	g.banished = 0
	g.touching = false
	g.player.Reset(g.center())
	clear(g.enemies)
	g.enemies = g.enemies[:0]
	clear(g.projectiles)
	g.projectiles = g.projectiles[:0]
	g.particles.Clear()

	g.phase = core.PhasePlaying
	g.spawnWave()
	g.audio.Music(core.MusicStart)
	g.log.Info("session started", "seed", g.runtime.Seed, "enemies", len(g.enemies))
}

func (g *Game) pause() {
	g.phase = core.PhasePaused
	g.audio.Music(core.MusicPause)
}

func (g *Game) resume() {
	g.phase = core.PhasePlaying
	g.audio.Music(core.MusicResume)
}

func (g *Game) gameOver() {
	g.phase = core.PhaseGameOver
	g.audio.Music(core.MusicStop)
	g.particles.AddContinuous(g.player.Position(), EffectSmoke, 2)
	g.log.Info("game over", "score", g.score, "level", g.level, "banished", g.banished, "tick", g.tick)
}

func (g *Game) nextLevel() {
	g.level++
	g.bestLevel = max(g.bestLevel, g.level)
	g.spawnWave()
	g.particles.Emit(EffectLevelComplete, g.center(), 0)
	g.audio.PlayCue(core.CueLevelUp)
	g.log.Info("level up", "level", g.level, "enemies", len(g.enemies), "score", g.score)
}

// spawnWave adds the batch for the current level.
func (g *Game) spawnWave() {
	s := g.tun.Spawn
	count := s.BaseCount + (g.level-1)*s.PerLevel
	withBoss := s.BossEvery > 0 && g.level%s.BossEvery == 0
	fast := g.difficulty.FastChance(s.FastChance, g.level)

	for i := 0; i < count; i++ {
		v := VariantRegular
		switch {
		case withBoss && i == count-1:
			v = VariantBoss
		case g.rng.Float64() < fast:
			v = VariantFast
		}
		g.enemies = append(g.enemies, g.newEnemy(g.spawnPoint(), v))
	}
}

// newEnemy builds a ghost with difficulty scaling for the current level.
func (g *Game) newEnemy(pos core.Vec2, v Variant) *Enemy {
	stats := statsFor(g.tun.Enemies, v)
	stats.speed = g.difficulty.Speed(stats.speed, g.level)
	stats.damage = g.difficulty.Damage(stats.damage, g.level)
	stats.boost = g.difficulty.Damage(g.tun.Boss.BoostDamage, g.level)
	return newEnemy(pos, v, stats, g.rules, g.rng)
}

// spawnPoint samples a position away from the hero. After MaxAttempts
// rejections it falls back to the inset corner farthest from the hero.
func (g *Game) spawnPoint() core.Vec2 {
	s := g.tun.Spawn
	minX, maxX := s.Margin, g.runtime.Width-s.Margin
	minY, maxY := s.Margin, g.runtime.Height-s.Margin
	hero := g.player.Position()

	for range s.MaxAttempts {
		p := core.V(randRange(g.rng, minX, maxX), randRange(g.rng, minY, maxY))
		d := p.Sub(hero)
		if math.Abs(d.X) < s.SafeDistance && math.Abs(d.Y) < s.SafeDistance {
			continue
		}
		return p
	}

	corners := [4]core.Vec2{
		core.V(minX, minY), core.V(maxX, minY),
		core.V(minX, maxY), core.V(maxX, maxY),
	}
	best := corners[0]
	for _, c := range corners[1:] {
		if c.Sub(hero).Len() > best.Sub(hero).Len() {
			best = c
		}
	}
	g.log.Debug("spawn fallback", "x", best.X, "y", best.Y, "attempts", s.MaxAttempts)
	return best
}

func (g *Game) center() core.Vec2 {
	return core.V(g.runtime.Width/2, g.runtime.Height/2)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Phase:     g.phase,
		Score:     g.score,
		Level:     g.level,
		Health:    g.player.Health(),
		MaxHealth: g.player.MaxHealth(),
		Enemies:   len(g.enemies),
		GameOver:  g.phase == core.PhaseGameOver,
		Paused:    g.phase == core.PhasePaused,
	}
}

// BestLevel returns the highest level reached this session.
func (g *Game) BestLevel() int { return g.bestLevel }

// Banished returns the number of ghosts banished this session.
func (g *Game) Banished() int { return g.banished }

// Tick returns the number of simulation ticks since Reset.
func (g *Game) Tick() uint64 { return g.tick }

func (g *Game) Player() *Player { return g.player }
func (g *Game) Enemies() []*Enemy { return g.enemies }
func (g *Game) Projectiles() []*Projectile { return g.projectiles }
func (g *Game) Particles() *Particles { return g.particles }
