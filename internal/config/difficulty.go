package config

import (
	"math"
	"time"
)

// DifficultyManager calculates the gravity interval based on locks/time.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty level (0.0 to 1.0) based on locks/ticks.
// With difficulty disabled the level is 0 and gravity stays at its base interval.
func (d *DifficultyManager) Level(locks int, ticks uint64) float64 {
	if !d.cfg.Enabled {
		return 0
	}
	if d.cfg.Progression.Type == "none" {
		return d.initialLevel
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}

	var progress float64
	switch d.cfg.Progression.Type {
	case "locks":
		progress = float64(locks) / maxAt
	case "time":
		progress = float64(ticks) / maxAt
	default:
		return d.initialLevel
	}

	progress = clampF(progress, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// Speed returns the gravity speed multiplier (>= 1) for the current level.
func (d *DifficultyManager) Speed(locks int, ticks uint64) float64 {
	return 1.0 + d.Level(locks, ticks)*d.cfg.Scaling.SpeedMultiplier
}

// GravityInterval returns the time between gravity steps, never below minInterval.
func (d *DifficultyManager) GravityInterval(base, minInterval time.Duration, locks int, ticks uint64) time.Duration {
	interval := time.Duration(float64(base) / d.Speed(locks, ticks))
	if interval < minInterval {
		return minInterval
	}
	return interval
}

// TicksPerStep converts an interval into a whole number of platform ticks at
// the given tick rate, at least 1.
func TicksPerStep(interval time.Duration, tickRate int) int {
	if tickRate <= 0 {
		return 1
	}
	frame := time.Second / time.Duration(tickRate)
	n := int(interval / frame)
	if n < 1 {
		return 1
	}
	return n
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
