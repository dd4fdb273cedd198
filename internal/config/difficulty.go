package config

import (
	"errors"
	"fmt"
	"math"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ErrUnknownDifficulty is returned for preset names not listed above.
var ErrUnknownDifficulty = errors.New("unknown difficulty")

// ParsePreset validates a preset name. The empty string means normal.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: %q: %w", name, ErrUnknownDifficulty)
	}
}

// ApplyPreset modifies the tuning based on a difficulty preset.
// Normal leaves the loaded values alone.
func ApplyPreset(cfg *Tuning, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Difficulty.Enabled = false
		cfg.Difficulty.InitialLevel = 0
		cfg.Player.RegenAmount *= 2
		for _, e := range []*EnemyTuning{&cfg.Enemies.Regular, &cfg.Enemies.Fast, &cfg.Enemies.Boss} {
			e.Damage *= 0.75
		}
	case DifficultyHard:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = 0.3
		cfg.Spawn.FastChance = math.Min(1, cfg.Spawn.FastChance+0.1)
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
	}
}

// DifficultyManager calculates wave parameters from the current level.
type DifficultyManager struct {
	cfg DifficultyConfig
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	cfg.InitialLevel = clampF(cfg.InitialLevel, 0, 1)
	return &DifficultyManager{cfg: cfg}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the difficulty (0.0 to 1.0) for a game level starting at 1.
// With progression disabled every level maps to 0.
func (d *DifficultyManager) Level(gameLevel int) float64 {
	if !d.IsEnabled() {
		return 0
	}
	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 1 {
		maxAt = 2 // Prevent division by zero
	}
	progress := clampF(float64(gameLevel-1)/(maxAt-1), 0, 1)

	// Interpolate from initial level to 1.0
	return d.cfg.InitialLevel + progress*(1.0-d.cfg.InitialLevel)
}

// Speed scales an enemy speed for the given game level.
func (d *DifficultyManager) Speed(base float64, gameLevel int) float64 {
	return base * (1.0 + d.Level(gameLevel)*d.cfg.Scaling.SpeedMultiplier)
}

// Damage scales an enemy contact damage for the given game level.
func (d *DifficultyManager) Damage(base float64, gameLevel int) float64 {
	return base * (1.0 + d.Level(gameLevel)*d.cfg.Scaling.DamageMultiplier)
}

// FastChance returns the probability of a Fast ghost for the given game level.
func (d *DifficultyManager) FastChance(base float64, gameLevel int) float64 {
	return clampF(base+d.Level(gameLevel)*d.cfg.Scaling.FastChanceBonus, 0, 1)
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
