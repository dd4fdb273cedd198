package game

import (
	"math"
	"math/rand"
	"testing"

	"github.com/vovakirdan/ghostbrawl/internal/config"
	"github.com/vovakirdan/ghostbrawl/internal/core"
)

var testField = core.NewRect(0, 0, 800, 600)

func TestPlayerDiagonalSpeedCapped(t *testing.T) {
	tun := config.DefaultTuning().Player
	tun.Friction = 1 // No friction so the cap is actually reached
	p := NewPlayer(tun, core.V(5000, 5000))
	field := core.NewRect(0, 0, 10000, 10000)

	in := core.NewInputFrame()
	in.Hold(core.ActionUp)
	in.Hold(core.ActionRight)

	for i := 0; i < 120; i++ {
		p.Update(1.0/60, in, field)
		if speed := p.Velocity().Len(); speed > tun.MaxSpeed+1e-9 {
			t.Fatalf("frame %d: speed %f exceeds max %f", i, speed, tun.MaxSpeed)
		}
	}
	if v := p.Velocity(); math.Abs(v.X+v.Y) > 1e-9 {
		t.Errorf("diagonal velocity should have equal magnitude components, got %v", v)
	}
}

func TestPlayerClampedToField(t *testing.T) {
	p := NewPlayer(config.DefaultTuning().Player, core.V(5, 5))
	p.Update(1.0/60, core.NewInputFrame(), testField)

	if got := p.Position(); got != core.V(20, 20) {
		t.Errorf("Position() = %v, expected (20, 20)", got)
	}
}

func TestPlayerHealthBounds(t *testing.T) {
	tests := []struct {
		name     string
		damage   []float64
		expected float64
	}{
		{"single hit", []float64{30}, 70},
		{"overkill floors at zero", []float64{250}, 0},
		{"many hits", []float64{40, 40, 40}, 0},
		{"negative ignored", []float64{-10}, 100},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := NewPlayer(config.DefaultTuning().Player, core.V(100, 100))
			for _, d := range tc.damage {
				p.TakeDamage(d)
			}
			if p.Health() != tc.expected {
				t.Errorf("Health() = %f, expected %f", p.Health(), tc.expected)
			}
		})
	}
}

func TestPlayerRegeneration(t *testing.T) {
	p := NewPlayer(config.DefaultTuning().Player, core.V(100, 100))
	p.TakeDamage(10)

	in := core.NewInputFrame()
	p.Update(0.5, in, testField)
	p.Regenerate()
	if p.Health() != 90 {
		t.Fatalf("regenerated too early: health %f", p.Health())
	}

	p.Update(0.5, in, testField)
	p.Regenerate()
	if p.Health() != 91 {
		t.Errorf("Health() = %f after a full interval, expected 91", p.Health())
	}

	// A hit restarts the interval
	p.Update(0.5, in, testField)
	p.TakeDamage(1)
	p.Update(0.5, in, testField)
	p.Regenerate()
	if p.Health() != 90 {
		t.Errorf("Health() = %f, expected 90 after a hit reset the interval", p.Health())
	}

	full := NewPlayer(config.DefaultTuning().Player, core.V(100, 100))
	full.Update(2, in, testField)
	full.Regenerate()
	if full.Health() != full.MaxHealth() {
		t.Errorf("regeneration should not exceed max health, got %f", full.Health())
	}
}

func TestPlayerPunchWindow(t *testing.T) {
	p := NewPlayer(config.DefaultTuning().Player, core.V(100, 100))
	if p.IsPunching() {
		t.Fatal("new player should not be punching")
	}

	p.Punch(core.V(150, 100))
	if !p.IsPunching() || p.PunchTarget() != core.V(150, 100) {
		t.Fatal("Punch should open the window and record the target")
	}
	if got := p.PunchRange(); got != core.NewRect(20, 20, 160, 160) {
		t.Errorf("PunchRange() = %+v", got)
	}

	if got := p.PunchProgress(); got != 1 {
		t.Errorf("PunchProgress() = %f at the start, expected 1", got)
	}
	p.Update(0.15, core.NewInputFrame(), testField)
	if got := p.PunchProgress(); math.Abs(got-0.5) > 1e-9 {
		t.Errorf("PunchProgress() = %f halfway, expected 0.5", got)
	}

	p.Update(0.15, core.NewInputFrame(), testField)
	if p.IsPunching() || p.PunchProgress() != 0 {
		t.Error("punch window should close after its duration")
	}
}

func newTestEnemy(v Variant, pos core.Vec2) *Enemy {
	tun := config.DefaultTuning()
	rng := rand.New(rand.NewSource(1))
	return newEnemy(pos, v, statsFor(tun.Enemies, v), rulesFrom(tun), rng)
}

func TestStatsForVariants(t *testing.T) {
	tests := []struct {
		variant Variant
		health  float64
		speed   float64
		score   int
		color   core.Color
	}{
		{VariantRegular, 20, 80, 10, core.RGB(255, 255, 255)},
		{VariantFast, 15, 150, 20, core.RGB(200, 200, 255)},
		{VariantBoss, 50, 60, 50, core.RGB(255, 200, 200)},
	}

	tun := config.DefaultTuning()
	for _, tc := range tests {
		t.Run(tc.variant.String(), func(t *testing.T) {
			s := statsFor(tun.Enemies, tc.variant)
			if s.health != tc.health || s.speed != tc.speed || s.score != tc.score || s.color != tc.color {
				t.Errorf("statsFor(%s) = %+v", tc.variant, s)
			}
		})
	}
}

func TestEnemyIdleDamping(t *testing.T) {
	e := newTestEnemy(VariantRegular, core.V(0, 0))
	e.vel = core.V(100, 0)

	e.Update(1.0/60, core.V(700, 500), rand.New(rand.NewSource(1)))

	if got := e.Velocity(); math.Abs(got.X-90) > 1e-9 || got.Y != 0 {
		t.Errorf("Velocity() = %v, expected (90, 0)", got)
	}
}

func TestEnemyPursuesInRange(t *testing.T) {
	e := newTestEnemy(VariantRegular, core.V(100, 100))
	rng := rand.New(rand.NewSource(3))

	// First update reaches the think interval
	e.Update(0.1, core.V(250, 100), rng)

	v := e.Velocity()
	if v.X <= 0 {
		t.Errorf("ghost should head toward the hero, velocity %v", v)
	}
	if math.Abs(v.Y) > 80*0.3+1e-9 {
		t.Errorf("vertical jitter too large: %v", v)
	}
}

func TestEnemyHealthBounds(t *testing.T) {
	e := newTestEnemy(VariantBoss, core.V(100, 100))
	if e.Health() != e.MaxHealth() || e.Dead() {
		t.Fatal("new ghost should be at full health")
	}
	e.Banish()
	if e.Health() != 0 || !e.Dead() {
		t.Errorf("Banish should zero health, got %f", e.Health())
	}
}

func TestBossAttackCycle(t *testing.T) {
	e := newTestEnemy(VariantBoss, core.V(0, 0))
	rng := rand.New(rand.NewSource(1))
	far := core.V(5000, 5000)

	var triggers []int
	damage := make(map[int]float64)
	for i := 1; i <= 24; i++ {
		if e.Update(0.25, far, rng) {
			triggers = append(triggers, i)
		}
		damage[i] = e.Damage()
	}

	if len(triggers) != 2 || triggers[0] != 12 || triggers[1] != 24 {
		t.Fatalf("boss attack triggers = %v, expected [12 24]", triggers)
	}

	tests := []struct {
		step     int
		expected float64
	}{
		{11, 20}, // base
		{12, 30}, // boost
		{13, 30}, // grace
		{14, 30}, // grace ends, decay starts
		{15, 20}, // decayed
		{24, 30}, // next boost
	}
	for _, tc := range tests {
		if damage[tc.step] != tc.expected {
			t.Errorf("step %d: damage %f, expected %f", tc.step, damage[tc.step], tc.expected)
		}
	}
}

func TestBossBoostScalesWithDifficulty(t *testing.T) {
	tests := []struct {
		name       string
		multiplier float64
		level      int
		base       float64
		boost      float64
	}{
		{"hard level 1", 0.5, 1, 23, 34.5},
		{"hard level 10", 0.5, 10, 30, 45},
		{"hard level 12", 0.5, 12, 30, 45},
		{"steep multiplier", 3, 10, 80, 120},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tun := config.DefaultTuning()
			config.ApplyPreset(&tun, config.DifficultyHard)
			tun.Difficulty.Scaling.DamageMultiplier = tc.multiplier
			g := startedGame(t, 59, WithTuning(tun))
			g.level = tc.level

			e := g.newEnemy(core.V(0, 0), VariantBoss)
			if math.Abs(e.Damage()-tc.base) > 1e-9 {
				t.Fatalf("base damage %f, expected %f", e.Damage(), tc.base)
			}

			rng := rand.New(rand.NewSource(1))
			boosted := false
			for range 200 {
				if e.Update(1.0/60, core.V(5000, 5000), rng) {
					if math.Abs(e.Damage()-tc.boost) > 1e-9 {
						t.Errorf("boost damage %f, expected %f", e.Damage(), tc.boost)
					}
				}
				if e.Damage() < tc.base-1e-9 {
					t.Fatalf("damage %f dropped below base %f", e.Damage(), tc.base)
				}
				boosted = boosted || e.Boosted()
			}
			if !boosted {
				t.Error("boss never boosted its contact damage")
			}
		})
	}
}

func TestEnemyThinkHeading(t *testing.T) {
	tests := []struct {
		variant Variant
		speed   float64
		turn    float64 // expected rotation from the direct bearing
	}{
		{VariantRegular, 80, 0},
		{VariantFast, 150, 0},
		{VariantBoss, 60, 0.5 * 2.0}, // elapsed * orbit rate
	}
	for _, tc := range tests {
		t.Run(tc.variant.String(), func(t *testing.T) {
			e := newTestEnemy(tc.variant, core.V(100, 100))
			e.rules.jitter = 0
			rng := rand.New(rand.NewSource(7))

			// Hero is straight up, bearing -pi/2
			hero := core.V(100, -20)
			bearing := hero.Sub(e.Position()).Angle()
			e.Update(0.5, hero, rng)

			v := e.Velocity()
			if math.Abs(v.Len()-tc.speed) > 1e-9 {
				t.Errorf("speed %f, expected %f", v.Len(), tc.speed)
			}
			if d := math.Remainder(v.Angle()-bearing-tc.turn, 2*math.Pi); math.Abs(d) > 1e-9 {
				t.Errorf("heading %f, expected %f", v.Angle(), bearing+tc.turn)
			}
		})
	}
}

func TestRegularGhostNeverAttacks(t *testing.T) {
	e := newTestEnemy(VariantRegular, core.V(0, 0))
	rng := rand.New(rand.NewSource(1))
	for range 40 {
		if e.Update(0.25, core.V(5000, 5000), rng) {
			t.Fatal("only bosses trigger attacks")
		}
	}
	if e.Damage() != 10 {
		t.Errorf("Damage() = %f, expected 10", e.Damage())
	}
}

func TestProjectileStationaryWhenAimedAtOrigin(t *testing.T) {
	tun := config.DefaultTuning().Projectiles
	for _, k := range []Kind{KindLaser, KindSuperPunch, KindBossAttack} {
		t.Run(k.String(), func(t *testing.T) {
			origin := core.V(300, 200)
			p := NewProjectile(origin, origin, k, tun)
			for range 30 {
				p.Update(1.0 / 60)
			}
			if p.Position() != origin {
				t.Errorf("stationary projectile moved to %v", p.Position())
			}
		})
	}
}

func TestProjectileMotion(t *testing.T) {
	tun := config.DefaultTuning().Projectiles

	laser := NewProjectile(core.V(0, 0), core.V(10, 0), KindLaser, tun)
	laser.Update(0.1)
	if got := laser.Position(); math.Abs(got.X-50) > 1e-9 || got.Y != 0 {
		t.Errorf("laser Position() = %v, expected (50, 0)", got)
	}

	punch := NewProjectile(core.V(0, 0), core.V(10, 0), KindSuperPunch, tun)
	punch.Update(0.1)
	if got := punch.Position(); math.Abs(got.X-300*0.98*0.1) > 1e-9 {
		t.Errorf("super punch Position() = %v, expected drag applied before moving", got)
	}

	boss := NewProjectile(core.V(0, 0), core.V(10, 0), KindBossAttack, tun)
	if !boss.Hostile() || laser.Hostile() || punch.Hostile() {
		t.Error("only boss attacks are hostile")
	}
}

func TestProjectileLifetime(t *testing.T) {
	p := NewProjectile(core.V(0, 0), core.V(1, 0), KindLaser, config.DefaultTuning().Projectiles)
	p.Update(1)
	p.Update(1)
	if !p.Active() {
		t.Fatal("laser should still be active after 2s")
	}
	p.Update(1)
	if p.Active() {
		t.Error("laser should expire after 3s")
	}
}

func TestProjectileOffField(t *testing.T) {
	tun := config.DefaultTuning().Projectiles
	tests := []struct {
		name     string
		pos      core.Vec2
		expected bool
	}{
		{"inside", core.V(400, 300), false},
		{"edge within size", core.V(-5, 300), false},
		{"left", core.V(-7, 300), true},
		{"right", core.V(807, 300), true},
		{"top", core.V(400, -7), true},
		{"bottom", core.V(400, 607), true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := NewProjectile(tc.pos, tc.pos, KindLaser, tun)
			if got := p.OffField(800, 600); got != tc.expected {
				t.Errorf("OffField() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestProjectileTrail(t *testing.T) {
	tun := config.DefaultTuning().Projectiles

	p := NewProjectile(core.V(0, 0), core.V(1, 0), KindLaser, tun)
	for range 50 {
		p.Update(0.01)
		if len(p.Trail()) > tun.TrailLength {
			t.Fatalf("trail length %d exceeds cap %d", len(p.Trail()), tun.TrailLength)
		}
	}
	if len(p.Trail()) != tun.TrailLength {
		t.Errorf("trail length = %d, expected %d", len(p.Trail()), tun.TrailLength)
	}
	if head := p.Trail()[0]; head.Pos != p.Position() {
		t.Errorf("newest trail point %v should be the current position %v", head.Pos, p.Position())
	}

	// Points older than the fade window are evicted
	slow := NewProjectile(core.V(0, 0), core.V(1, 0), KindLaser, tun)
	for range 5 {
		slow.Update(0.2)
	}
	if got := len(slow.Trail()); got != 2 {
		t.Errorf("trail length = %d, expected 2 with a 0.5s fade", got)
	}
}
