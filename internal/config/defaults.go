package config

import (
	_ "embed"
)

//go:embed defaults/ghostbrawl.yaml
var defaultYAML []byte

// DefaultYAML returns the embedded default tuning document.
func DefaultYAML() []byte {
	out := make([]byte, len(defaultYAML))
	copy(out, defaultYAML)
	return out
}

// DefaultTuning returns the built-in tuning. It mirrors defaults/ghostbrawl.yaml.
func DefaultTuning() Tuning {
	return Tuning{
		Player: PlayerTuning{
			Size:          40,
			MaxSpeed:      300,
			Acceleration:  800,
			Friction:      0.85,
			MaxHealth:     100,
			PunchDuration: 0.3,
			PunchRange:    80,
			RegenAmount:   1,
			RegenInterval: 1.0,
		},
		Enemies: EnemyTable{
			Regular: EnemyTuning{
				Health: 20, Speed: 80, AggroRange: 200, Damage: 10,
				Size: 30, Color: "#ffffff", Score: 10,
				FloatAmplitude: 10, FloatFrequency: 2,
			},
			Fast: EnemyTuning{
				Health: 15, Speed: 150, AggroRange: 250, Damage: 15,
				Size: 24, Color: "#c8c8ff", Score: 20,
				FloatAmplitude: 10, FloatFrequency: 4,
			},
			Boss: EnemyTuning{
				Health: 50, Speed: 60, AggroRange: 300, Damage: 20,
				Size: 45, Color: "#ffc8c8", Score: 50,
				FloatAmplitude: 15, FloatFrequency: 2,
			},
			ThinkInterval:   0.1,
			Jitter:          0.3,
			IdleDamping:     0.9,
			OrbitRate:       2.0,
			CollisionRadius: 25,
		},
		Boss: BossTuning{
			AttackCooldown:   3.0,
			BoostDamage:      30,
			BoostGrace:       0.5,
			BoostDecay:       0.25,
			FiresProjectiles: true,
		},
		Projectiles: ProjectileTable{
			Laser:       ProjectileTuning{Speed: 500, Damage: 25, Size: 6, Lifetime: 3.0, Color: "#ff0000"},
			SuperPunch:  ProjectileTuning{Speed: 300, Damage: 40, Size: 12, Lifetime: 1.0, Color: "#ffff00"},
			BossAttack:  ProjectileTuning{Speed: 200, Damage: 30, Size: 15, Lifetime: 5.0, Color: "#ff00ff"},
			TrailLength: 10,
			TrailFade:   0.5,
		},
		Particles: ParticleTuning{
			Capacity:     1000,
			EmitInterval: 0.1,
		},
		Spawn: SpawnTuning{
			BaseCount:    3,
			PerLevel:     2,
			BossEvery:    3,
			FastChance:   0.3,
			Margin:       50,
			SafeDistance: 100,
			MaxAttempts:  32,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "level",
				MaxAt: 10,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier:  0.5,
				DamageMultiplier: 0.5,
				FastChanceBonus:  0.3,
			},
		},
	}
}
