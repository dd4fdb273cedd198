package game

import (
	"math"
	"strings"
	"testing"

	"github.com/vovakirdan/ghostbrawl/internal/config"
	"github.com/vovakirdan/ghostbrawl/internal/core"
)

type recordAudio struct {
	cues  []core.Cue
	music []core.MusicCommand
}

func (a *recordAudio) PlayCue(c core.Cue) { a.cues = append(a.cues, c) }
func (a *recordAudio) Music(cmd core.MusicCommand) { a.music = append(a.music, cmd) }

func (a *recordAudio) count(c core.Cue) int {
	n := 0
	for _, got := range a.cues {
		if got == c {
			n++
		}
	}
	return n
}

func testConfig(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		Width:    800,
		Height:   600,
		TickRate: 60,
		Seed:     seed,
	}
}

func press(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

// startedGame returns a game that has left the menu.
func startedGame(t *testing.T, seed int64, opts ...Option) *Game {
	t.Helper()
	g := New(opts...)
	g.Reset(testConfig(seed))
	if res := g.Step(press(core.ActionConfirm)); res.State.Phase != core.PhasePlaying {
		t.Fatalf("Confirm should start the game, phase %s", res.State.Phase)
	}
	return g
}

func TestGameDeterminism(t *testing.T) {
	inputSequence := make([]core.InputFrame, 600)
	for i := range inputSequence {
		in := core.NewInputFrame()
		switch {
		case i == 0:
			in.Set(core.ActionConfirm)
		case i%60 < 30:
			in.Hold(core.ActionRight)
			in.Hold(core.ActionUp)
		default:
			in.Hold(core.ActionLeft)
		}
		if i%15 == 0 {
			in.Set(core.ActionFire)
		}
		if i%40 == 0 {
			in.Set(core.ActionMelee)
		}
		if i%90 == 0 {
			in.Set(core.ActionAltFire)
		}
		in.Target = core.V(float64(100+(i*37)%600), float64(100+(i*53)%400))
		inputSequence[i] = in
	}

	run := func(seed int64) Snapshot {
		g := New()
		g.Reset(testConfig(seed))
		for _, in := range inputSequence {
			g.Step(in)
		}
		return g.Snapshot()
	}

	snap1 := run(12345)
	snap2 := run(12345)

	if snap1.Hash() != snap2.Hash() {
		t.Errorf("Determinism failed: hashes differ. Run1=%d, Run2=%d", snap1.Hash(), snap2.Hash())
	}
	if snap1.Score != snap2.Score {
		t.Errorf("Determinism failed: scores differ. Run1=%d, Run2=%d", snap1.Score, snap2.Score)
	}
	if snap1.Tick != 600 {
		t.Errorf("Tick = %d, expected 600", snap1.Tick)
	}

	other := run(999)
	if other.Hash() == snap1.Hash() {
		t.Error("different seeds should produce different sessions")
	}
}

func TestGameReset(t *testing.T) {
	g := New()
	g.Reset(testConfig(1))

	state := g.State()
	if state.Phase != core.PhaseMenu {
		t.Errorf("Reset should enter the menu, got %s", state.Phase)
	}
	if state.Score != 0 || state.Level != 1 || state.Enemies != 0 {
		t.Errorf("unexpected state after Reset: %+v", state)
	}
	if g.Player().Position() != core.V(400, 300) {
		t.Errorf("player should start at the center, got %v", g.Player().Position())
	}

	// Menu ignores everything but Confirm
	g.Step(press(core.ActionFire, core.ActionCancel))
	if g.State().Phase != core.PhaseMenu || len(g.Projectiles()) != 0 {
		t.Error("menu should ignore gameplay actions")
	}
}

func TestSpawnPolicy(t *testing.T) {
	g := startedGame(t, 7)

	for level := 1; level <= 6; level++ {
		if g.State().Level != level {
			t.Fatalf("Level = %d, expected %d", g.State().Level, level)
		}
		expected := 3 + (level-1)*2
		if len(g.Enemies()) != expected {
			t.Errorf("level %d: %d enemies, expected %d", level, len(g.Enemies()), expected)
		}

		bosses := 0
		for i, e := range g.Enemies() {
			if e.Variant() == VariantBoss {
				bosses++
				if i != len(g.Enemies())-1 {
					t.Errorf("level %d: boss should be spawned last", level)
				}
			}
			pos, hero := e.Position(), g.Player().Position()
			if math.Abs(pos.X-hero.X) < 100 && math.Abs(pos.Y-hero.Y) < 100 {
				t.Errorf("level %d: ghost spawned too close at %v", level, pos)
			}
			if pos.X < 50 || pos.X > 750 || pos.Y < 50 || pos.Y > 550 {
				t.Errorf("level %d: ghost spawned outside the inset area at %v", level, pos)
			}
		}
		wantBoss := 0
		if level%3 == 0 {
			wantBoss = 1
		}
		if bosses != wantBoss {
			t.Errorf("level %d: %d bosses, expected %d", level, bosses, wantBoss)
		}

		// Clear the wave; the next frame levels up
		for _, e := range g.Enemies() {
			e.Banish()
		}
		g.compactEnemies()
		g.Step(core.NewInputFrame())
	}
}

func TestSpawnFallbackOnTinyField(t *testing.T) {
	g := New()
	g.Reset(core.RuntimeConfig{Width: 200, Height: 200, TickRate: 60, Seed: 3})
	g.Step(press(core.ActionConfirm))

	if len(g.Enemies()) != 3 {
		t.Fatalf("expected 3 enemies, got %d", len(g.Enemies()))
	}
	for _, e := range g.Enemies() {
		if e.Position() != core.V(50, 50) {
			t.Errorf("fallback should use the first farthest corner, got %v", e.Position())
		}
	}
}

func TestLevelUpEffects(t *testing.T) {
	audio := &recordAudio{}
	g := startedGame(t, 5, WithAudio(audio))
	for _, e := range g.Enemies() {
		e.Banish()
	}
	g.compactEnemies()

	g.Step(core.NewInputFrame())

	if g.State().Level != 2 || len(g.Enemies()) != 5 {
		t.Errorf("expected level 2 with 5 enemies, got level %d with %d", g.State().Level, len(g.Enemies()))
	}
	if audio.count(core.CueLevelUp) != 1 {
		t.Error("level up cue should play once")
	}
	if g.Particles().Len() != 50 {
		t.Errorf("level complete burst = %d particles, expected 50", g.Particles().Len())
	}
}

func TestMeleeScoring(t *testing.T) {
	g := startedGame(t, 11)
	center := g.Player().Position()
	near := g.newEnemy(center.Add(core.V(50, 0)), VariantRegular)
	nearFast := g.newEnemy(center.Add(core.V(0, -90)), VariantFast)
	far := g.newEnemy(core.V(750, 550), VariantRegular)
	g.enemies = []*Enemy{near, nearFast, far}

	in := press(core.ActionMelee)
	in.Target = center.Add(core.V(50, 0))
	g.Step(in)

	if g.State().Score != 30 {
		t.Errorf("Score = %d, expected 30", g.State().Score)
	}
	if len(g.Enemies()) != 1 || g.Enemies()[0] != far {
		t.Errorf("only the out of range ghost should survive, got %d ghosts", len(g.Enemies()))
	}
	if !g.Player().IsPunching() {
		t.Error("melee should open the punch window")
	}
}

func TestContactDamage(t *testing.T) {
	audio := &recordAudio{}
	g := startedGame(t, 13, WithAudio(audio))
	g.enemies = []*Enemy{g.newEnemy(g.Player().Position(), VariantRegular)}

	for i := 1; i <= 5; i++ {
		res := g.Step(core.NewInputFrame())
		if res.Ended {
			t.Fatal("game ended too early")
		}
		if want := 100 - float64(i)*10; res.State.Health != want {
			t.Fatalf("frame %d: health %f, expected %f", i, res.State.Health, want)
		}
	}

	sprays := 0
	for _, p := range g.Particles().Items() {
		if p.Effect == EffectDamage {
			sprays++
		}
	}
	if sprays != 5*10 {
		t.Errorf("damage particles = %d, expected one spray per frame", sprays)
	}
	if audio.count(core.CueHurt) != 1 {
		t.Errorf("hurt cue played %d times, expected once per contact", audio.count(core.CueHurt))
	}

	var ended []int
	for i := 6; i <= 12; i++ {
		res := g.Step(core.NewInputFrame())
		if res.Ended {
			ended = append(ended, i)
		}
		if res.State.Health < 0 {
			t.Fatalf("health went negative: %f", res.State.Health)
		}
	}
	if len(ended) != 1 || ended[0] != 10 {
		t.Errorf("Ended reported on frames %v, expected [10]", ended)
	}
	if g.State().Phase != core.PhaseGameOver || !g.State().GameOver {
		t.Errorf("phase = %s, expected game_over", g.State().Phase)
	}
	if g.Particles().Emitters() == 0 {
		t.Error("game over should leave a smoke emitter at the hero")
	}
}

func TestProjectileHitScores(t *testing.T) {
	audio := &recordAudio{}
	g := startedGame(t, 17, WithAudio(audio))
	ghost := g.newEnemy(core.V(600, 300), VariantFast)
	g.enemies = []*Enemy{ghost}

	in := press(core.ActionFire)
	in.Target = core.V(600, 300)
	g.Step(in)
	if audio.count(core.CueLaser) != 1 {
		t.Error("firing should play the laser cue")
	}

	for i := 0; i < 120 && g.State().Score == 0; i++ {
		g.Step(core.NewInputFrame())
	}

	if g.State().Score != 20 {
		t.Fatalf("Score = %d, expected 20 for a fast ghost", g.State().Score)
	}
	if !ghost.Dead() {
		t.Error("hit ghost should be banished")
	}
	if g.State().Level != 2 {
		t.Errorf("clearing the wave should level up, Level = %d", g.State().Level)
	}
	if audio.count(core.CueGhostDeath) != 1 {
		t.Errorf("ghost death cue played %d times", audio.count(core.CueGhostDeath))
	}
	for _, p := range g.Projectiles() {
		if p.Kind() == KindLaser {
			t.Error("the laser should be removed after its hit")
		}
	}
}

func TestFirstHitWins(t *testing.T) {
	g := startedGame(t, 19)
	a := g.newEnemy(core.V(600, 300), VariantRegular)
	b := g.newEnemy(core.V(600, 300), VariantRegular)
	g.enemies = []*Enemy{a, b}

	laser := NewProjectile(core.V(600, 300), core.V(700, 300), KindLaser, g.tun.Projectiles)
	g.projectiles = []*Projectile{laser}
	g.resolveCollisions()

	if !a.Dead() || b.Dead() {
		t.Error("a projectile should banish only the first ghost it touches")
	}
	if g.score != 10 || len(g.enemies) != 1 || len(g.projectiles) != 0 {
		t.Errorf("score %d, %d ghosts, %d projectiles", g.score, len(g.enemies), len(g.projectiles))
	}
}

func TestBossBanishLeavesSmoke(t *testing.T) {
	g := startedGame(t, 23)
	boss := g.newEnemy(core.V(600, 300), VariantBoss)
	g.enemies = []*Enemy{boss}
	g.particles.Clear()

	g.banish(boss)

	if g.score != 50 {
		t.Errorf("boss score = %d, expected 50", g.score)
	}
	if g.Particles().Emitters() != 1 {
		t.Errorf("Emitters() = %d, expected a smoke emitter", g.Particles().Emitters())
	}
}

func TestHostileProjectileHitsPlayer(t *testing.T) {
	g := startedGame(t, 29)
	g.enemies = []*Enemy{g.newEnemy(core.V(750, 550), VariantRegular)}
	hero := g.Player().Position()
	shot := NewProjectile(hero, hero.Add(core.V(1, 0)), KindBossAttack, g.tun.Projectiles)
	g.projectiles = []*Projectile{shot}

	g.resolveCollisions()

	if g.Player().Health() != 70 {
		t.Errorf("Health() = %f, expected 70", g.Player().Health())
	}
	if len(g.projectiles) != 0 {
		t.Error("hostile shot should be consumed on hit")
	}
	if g.enemies[0].Dead() {
		t.Error("hostile shots ignore ghosts")
	}
}

func TestStationaryLaser(t *testing.T) {
	g := startedGame(t, 31)
	hero := g.Player().Position()

	in := press(core.ActionFire)
	in.Target = hero
	g.Step(in)
	for range 10 {
		g.Step(core.NewInputFrame())
	}

	if len(g.Projectiles()) != 1 {
		t.Fatalf("expected the stationary laser to survive, got %d projectiles", len(g.Projectiles()))
	}
	if pos := g.Projectiles()[0].Position(); pos != hero {
		t.Errorf("stationary laser moved to %v", pos)
	}
}

func TestGamePause(t *testing.T) {
	audio := &recordAudio{}
	g := startedGame(t, 37, WithAudio(audio))

	move := core.NewInputFrame()
	move.Hold(core.ActionRight)
	g.Step(move)

	g.Step(press(core.ActionCancel))
	if g.State().Phase != core.PhasePaused || !g.State().Paused {
		t.Fatalf("Cancel should pause, phase %s", g.State().Phase)
	}

	before := g.Snapshot()
	for range 30 {
		g.Step(move)
	}
	after := g.Snapshot()
	if before.PlayerX != after.PlayerX || before.EnemyCount != after.EnemyCount {
		t.Error("paused game should not advance the world")
	}

	g.Step(press(core.ActionCancel))
	if g.State().Phase != core.PhasePlaying {
		t.Errorf("Cancel should resume, phase %s", g.State().Phase)
	}

	want := []core.MusicCommand{core.MusicStart, core.MusicPause, core.MusicResume}
	if len(audio.music) != len(want) {
		t.Fatalf("music commands = %v, expected %v", audio.music, want)
	}
	for i := range want {
		if audio.music[i] != want[i] {
			t.Errorf("music[%d] = %v, expected %v", i, audio.music[i], want[i])
		}
	}
}

func TestRestartFromPauseAndGameOver(t *testing.T) {
	g := startedGame(t, 41)
	g.score = 120
	g.level = 4

	g.Step(press(core.ActionCancel))
	g.Step(press(core.ActionConfirm))
	if s := g.State(); s.Phase != core.PhasePlaying || s.Score != 0 || s.Level != 1 || s.Enemies != 3 {
		t.Errorf("Confirm while paused should restart, got %+v", s)
	}

	g.Player().TakeDamage(1000)
	res := g.Step(core.NewInputFrame())
	if !res.Ended || res.State.Phase != core.PhaseGameOver {
		t.Fatalf("dead hero should end the game, got %+v", res)
	}

	g.Step(press(core.ActionConfirm))
	s := g.State()
	if s.Phase != core.PhasePlaying || s.Health != s.MaxHealth || s.Score != 0 {
		t.Errorf("Confirm after game over should restart, got %+v", s)
	}
	if g.Player().Position() != core.V(400, 300) {
		t.Errorf("restart should recenter the hero, got %v", g.Player().Position())
	}
}

func TestApplyTuningAtRestart(t *testing.T) {
	g := startedGame(t, 43)

	tun := config.DefaultTuning()
	tun.Spawn.BaseCount = 1
	g.ApplyTuning(tun)
	if len(g.Enemies()) != 3 {
		t.Fatal("queued tuning must not touch the running wave")
	}

	g.Step(press(core.ActionCancel))
	g.Step(press(core.ActionConfirm))
	if len(g.Enemies()) != 1 {
		t.Errorf("restart should apply queued tuning, got %d enemies", len(g.Enemies()))
	}
}

func TestDifficultyScalesNewGhosts(t *testing.T) {
	tun := config.DefaultTuning()
	tun.Difficulty.Enabled = true
	tun.Difficulty.InitialLevel = 1
	g := startedGame(t, 47, WithTuning(tun))

	e := g.newEnemy(core.V(100, 100), VariantRegular)
	if e.Damage() != 15 {
		t.Errorf("Damage() = %f, expected 15 at full difficulty", e.Damage())
	}
}

// recordCanvas counts draw calls and keeps text.
type recordCanvas struct {
	rects, circles, textures int
	texts                    []string
	fills                    []circleFill
}

type circleFill struct {
	radius float64
	color  core.Color
}

func (c *recordCanvas) FillRect(core.Rect, float64, core.Color) { c.rects++ }
func (c *recordCanvas) StrokeRect(core.Rect, float64, core.Color) { c.rects++ }
func (c *recordCanvas) FillCircle(_ core.Vec2, r float64, col core.Color) {
	c.circles++
	c.fills = append(c.fills, circleFill{r, col})
}
func (c *recordCanvas) StrokeCircle(core.Vec2, float64, float64, core.Color) { c.circles++ }
func (c *recordCanvas) DrawTexture(core.Texture, core.Rect) { c.textures++ }
func (c *recordCanvas) Text(_ core.Font, _ core.Vec2, _ float64, s string, _ core.Color) {
	c.texts = append(c.texts, s)
}

func (c *recordCanvas) hasText(sub string) bool {
	for _, s := range c.texts {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func TestGameRender(t *testing.T) {
	g := New()
	g.Reset(testConfig(53))

	menu := &recordCanvas{}
	g.Render(menu)
	if !menu.hasText("SUPERMAN VS GHOST") || !menu.hasText("Press ENTER to start!") {
		t.Errorf("menu should show the title and instructions, got %v", menu.texts)
	}
	if menu.textures != 0 {
		t.Error("no background should be drawn without assets")
	}

	g.Step(press(core.ActionConfirm))
	play := &recordCanvas{}
	g.Render(play)
	if !play.hasText("Score: 0") || !play.hasText("Level: 1") || !play.hasText("Health: 100/100") {
		t.Errorf("HUD missing, got %v", play.texts)
	}
	if play.circles == 0 || play.rects == 0 {
		t.Error("playing frame should draw shapes")
	}

	g.Step(press(core.ActionCancel))
	paused := &recordCanvas{}
	g.Render(paused)
	for _, want := range []string{"PAUSED", "Press ESC to resume", "Press ENTER to restart"} {
		if !paused.hasText(want) {
			t.Errorf("paused overlay missing %q, got %v", want, paused.texts)
		}
	}
}

func TestPunchGlowFades(t *testing.T) {
	tests := []struct {
		elapsed float64
		alpha   float64
		drawn   bool
	}{
		{0, 64, true},
		{0.15, 32, true},
		{0.225, 16, true},
		{0.3, 0, false},
	}
	for _, tc := range tests {
		g := startedGame(t, 61)
		p := g.player
		p.Punch(p.Position().Add(core.V(50, 0)))
		p.Update(tc.elapsed, core.NewInputFrame(), g.runtime.Bounds())

		c := &recordCanvas{}
		g.Render(c)
		var glow *core.Color
		for _, f := range c.fills {
			if f.radius == g.tun.Player.PunchRange && f.color.R == 255 && f.color.G == 255 && f.color.B == 0 {
				glow = &f.color
			}
		}
		if (glow != nil) != tc.drawn {
			t.Errorf("after %.3fs: glow drawn = %v, expected %v", tc.elapsed, glow != nil, tc.drawn)
			continue
		}
		if glow != nil && math.Abs(float64(glow.A)-tc.alpha) > 1 {
			t.Errorf("after %.3fs: glow alpha %d, expected about %.0f", tc.elapsed, glow.A, tc.alpha)
		}
	}
}
