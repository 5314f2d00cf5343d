package config

import (
	"math"
	"time"
)

// MaxLives is the number of lives a fresh round starts with at most.
const MaxLives = 3

// DifficultyManager calculates dynamic game parameters from round progress.
// Progress counts destroyed words, independent of the scoring policy.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: cfg.InitialLevel,
	}
}

// SetInitialLevel overrides the number of steps granted before any progress.
func (d *DifficultyManager) SetInitialLevel(level float64) {
	d.initialLevel = clampF(level, 0, d.cfg.MaxSteps)
}

// SetEnabled enables or disables difficulty progression.
func (d *DifficultyManager) SetEnabled(enabled bool) {
	d.cfg.Enabled = enabled
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled
}

// Steps returns the saturated step count for the given progress.
func (d *DifficultyManager) Steps(progress int) float64 {
	steps := d.initialLevel
	if d.cfg.Enabled {
		perStep := float64(d.cfg.PerStep)
		if perStep <= 0 {
			perStep = 1 // Prevent division by zero
		}
		steps += float64(progress) / perStep
	}
	return clampF(steps, 0, d.cfg.MaxSteps)
}

// Factor returns the difficulty factor (1 at the start, 3 when saturated
// with default settings).
func (d *DifficultyManager) Factor(progress int) float64 {
	return 1 + d.Steps(progress)*d.cfg.StepGain
}

// Level returns the displayed difficulty level, floor(factor).
func (d *DifficultyManager) Level(progress int) int {
	return int(math.Floor(d.Factor(progress)))
}

// SpawnInterval returns the delay between spawns, interval / sqrt(factor).
func (d *DifficultyManager) SpawnInterval(base time.Duration, progress int) time.Duration {
	return time.Duration(float64(base) / math.Sqrt(d.Factor(progress)))
}

// Speed returns the enemy speed before per-enemy jitter, base * factor.
func (d *DifficultyManager) Speed(baseSpeed float64, progress int) float64 {
	return baseSpeed * d.Factor(progress)
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
