// Package config provides YAML/TOML tuning loading, difficulty presets and
// hot reload for the game.
package config

import (
	"errors"
	"fmt"
)

// Tuning contains every numeric constant of the simulation.
type Tuning struct {
	Player      PlayerTuning     `yaml:"player" toml:"player"`
	Enemies     EnemyTable       `yaml:"enemies" toml:"enemies"`
	Boss        BossTuning       `yaml:"boss" toml:"boss"`
	Projectiles ProjectileTable  `yaml:"projectiles" toml:"projectiles"`
	Particles   ParticleTuning   `yaml:"particles" toml:"particles"`
	Spawn       SpawnTuning      `yaml:"spawn" toml:"spawn"`
	Difficulty  DifficultyConfig `yaml:"difficulty" toml:"difficulty"`
}

// PlayerTuning defines the hero's movement and combat parameters.
type PlayerTuning struct {
	Size          float64 `yaml:"size" toml:"size"`
	MaxSpeed      float64 `yaml:"max_speed" toml:"max_speed"`
	Acceleration  float64 `yaml:"acceleration" toml:"acceleration"`
	Friction      float64 `yaml:"friction" toml:"friction"` // velocity multiplier per frame
	MaxHealth     float64 `yaml:"max_health" toml:"max_health"`
	PunchDuration float64 `yaml:"punch_duration" toml:"punch_duration"`
	PunchRange    float64 `yaml:"punch_range" toml:"punch_range"`
	RegenAmount   float64 `yaml:"regen_amount" toml:"regen_amount"`
	RegenInterval float64 `yaml:"regen_interval" toml:"regen_interval"`
}

// EnemyTuning defines one ghost variant.
type EnemyTuning struct {
	Health         float64 `yaml:"health" toml:"health"`
	Speed          float64 `yaml:"speed" toml:"speed"`
	AggroRange     float64 `yaml:"aggro_range" toml:"aggro_range"`
	Damage         float64 `yaml:"damage" toml:"damage"`
	Size           float64 `yaml:"size" toml:"size"`
	Color          string  `yaml:"color" toml:"color"`
	Score          int     `yaml:"score" toml:"score"`
	FloatAmplitude float64 `yaml:"float_amplitude" toml:"float_amplitude"`
	FloatFrequency float64 `yaml:"float_frequency" toml:"float_frequency"`
}

// EnemyTable holds the variant table and the AI parameters shared by all variants.
type EnemyTable struct {
	Regular EnemyTuning `yaml:"regular" toml:"regular"`
	Fast    EnemyTuning `yaml:"fast" toml:"fast"`
	Boss    EnemyTuning `yaml:"boss" toml:"boss"`

	ThinkInterval   float64 `yaml:"think_interval" toml:"think_interval"`
	Jitter          float64 `yaml:"jitter" toml:"jitter"`
	IdleDamping     float64 `yaml:"idle_damping" toml:"idle_damping"`
	OrbitRate       float64 `yaml:"orbit_rate" toml:"orbit_rate"`
	CollisionRadius float64 `yaml:"collision_radius" toml:"collision_radius"`
}

// BossTuning defines the boss attack cycle.
type BossTuning struct {
	AttackCooldown   float64 `yaml:"attack_cooldown" toml:"attack_cooldown"`
	BoostDamage      float64 `yaml:"boost_damage" toml:"boost_damage"`
	BoostGrace       float64 `yaml:"boost_grace" toml:"boost_grace"`
	BoostDecay       float64 `yaml:"boost_decay" toml:"boost_decay"`
	FiresProjectiles bool    `yaml:"fires_projectiles" toml:"fires_projectiles"`
}

// ProjectileTuning defines one projectile kind.
type ProjectileTuning struct {
	Speed    float64 `yaml:"speed" toml:"speed"`
	Damage   float64 `yaml:"damage" toml:"damage"`
	Size     float64 `yaml:"size" toml:"size"`
	Lifetime float64 `yaml:"lifetime" toml:"lifetime"`
	Color    string  `yaml:"color" toml:"color"`
}

// ProjectileTable holds the kind table and trail parameters.
type ProjectileTable struct {
	Laser      ProjectileTuning `yaml:"laser" toml:"laser"`
	SuperPunch ProjectileTuning `yaml:"super_punch" toml:"super_punch"`
	BossAttack ProjectileTuning `yaml:"boss_attack" toml:"boss_attack"`

	TrailLength int     `yaml:"trail_length" toml:"trail_length"`
	TrailFade   float64 `yaml:"trail_fade" toml:"trail_fade"`
}

// ParticleTuning defines the particle pool.
type ParticleTuning struct {
	Capacity     int     `yaml:"capacity" toml:"capacity"`
	EmitInterval float64 `yaml:"emit_interval" toml:"emit_interval"`
}

// SpawnTuning defines wave composition and placement.
type SpawnTuning struct {
	BaseCount    int     `yaml:"base_count" toml:"base_count"`
	PerLevel     int     `yaml:"per_level" toml:"per_level"`
	BossEvery    int     `yaml:"boss_every" toml:"boss_every"`
	FastChance   float64 `yaml:"fast_chance" toml:"fast_chance"`
	Margin       float64 `yaml:"margin" toml:"margin"`
	SafeDistance float64 `yaml:"safe_distance" toml:"safe_distance"`
	MaxAttempts  int     `yaml:"max_attempts" toml:"max_attempts"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled" toml:"enabled"`
	InitialLevel float64           `yaml:"initial_level" toml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression" toml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling" toml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over a session.
type ProgressionConfig struct {
	Type  string `yaml:"type" toml:"type"`     // "level" or "none"
	MaxAt int    `yaml:"max_at" toml:"max_at"` // Level at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes at level 1.0.
type ScalingConfig struct {
	SpeedMultiplier  float64 `yaml:"speed_multiplier" toml:"speed_multiplier"`
	DamageMultiplier float64 `yaml:"damage_multiplier" toml:"damage_multiplier"`
	FastChanceBonus  float64 `yaml:"fast_chance_bonus" toml:"fast_chance_bonus"`
}

// ErrInvalidTuning is wrapped by every Validate failure.
var ErrInvalidTuning = errors.New("invalid tuning")

// Validate rejects values the simulation cannot run with.
func (t Tuning) Validate() error {
	positive := []struct {
		name string
		v    float64
	}{
		{"player.size", t.Player.Size},
		{"player.max_speed", t.Player.MaxSpeed},
		{"player.max_health", t.Player.MaxHealth},
		{"player.regen_interval", t.Player.RegenInterval},
		{"enemies.regular.size", t.Enemies.Regular.Size},
		{"enemies.fast.size", t.Enemies.Fast.Size},
		{"enemies.boss.size", t.Enemies.Boss.Size},
		{"enemies.think_interval", t.Enemies.ThinkInterval},
		{"enemies.collision_radius", t.Enemies.CollisionRadius},
		{"projectiles.laser.size", t.Projectiles.Laser.Size},
		{"projectiles.super_punch.size", t.Projectiles.SuperPunch.Size},
		{"projectiles.boss_attack.size", t.Projectiles.BossAttack.Size},
		{"projectiles.trail_fade", t.Projectiles.TrailFade},
		{"particles.emit_interval", t.Particles.EmitInterval},
		{"boss.attack_cooldown", t.Boss.AttackCooldown},
	}
	for _, p := range positive {
		if p.v <= 0 {
			return fmt.Errorf("config: %s must be positive, got %v: %w", p.name, p.v, ErrInvalidTuning)
		}
	}
	if t.Player.Friction < 0 || t.Player.Friction > 1 {
		return fmt.Errorf("config: player.friction must be in [0, 1], got %v: %w", t.Player.Friction, ErrInvalidTuning)
	}
	if t.Particles.Capacity < 0 || t.Projectiles.TrailLength < 0 {
		return fmt.Errorf("config: capacities must not be negative: %w", ErrInvalidTuning)
	}
	if t.Spawn.BaseCount < 1 || t.Spawn.MaxAttempts < 1 {
		return fmt.Errorf("config: spawn.base_count and spawn.max_attempts must be at least 1: %w", ErrInvalidTuning)
	}
	if t.Spawn.FastChance < 0 || t.Spawn.FastChance > 1 {
		return fmt.Errorf("config: spawn.fast_chance must be in [0, 1], got %v: %w", t.Spawn.FastChance, ErrInvalidTuning)
	}
	return nil
}
