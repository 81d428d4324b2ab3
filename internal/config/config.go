// Package config provides YAML-based game configuration loading and
// difficulty management for tetris.
package config

import (
	"fmt"

	"github.com/vovakirdan/tui-tetris/internal/core"
	tetris "github.com/vovakirdan/tui-tetris/internal/games/tetris/core"
)

// TetrisConfig contains all configuration for the tetris game.
type TetrisConfig struct {
	Gravity    TetrisGravity    `yaml:"gravity"`
	Spawn      TetrisSpawn      `yaml:"spawn"`
	Render     TetrisRender     `yaml:"render"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// TetrisGravity defines how often the active piece falls.
type TetrisGravity struct {
	IntervalMs    int `yaml:"interval_ms"`
	MinIntervalMs int `yaml:"min_interval_ms"` // Floor reached at max difficulty
}

// TetrisSpawn defines where and what every new piece spawns as.
type TetrisSpawn struct {
	Kind string `yaml:"kind"`
	X    int    `yaml:"x"`
	Y    int    `yaml:"y"`
}

// TetrisRender defines how the board is drawn.
type TetrisRender struct {
	Filled      string `yaml:"filled"`
	Empty       string `yaml:"empty"`
	CellWidth   int    `yaml:"cell_width"`
	ColorActive string `yaml:"color_active"`
	ColorLocked string `yaml:"color_locked"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases during a run.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "locks", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Locks/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Gravity speed added at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. An empty name is not a preset.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", name)
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// SpawnPoint converts the spawn section into an engine spawn point.
// Call Validate first; an unknown kind falls back to the default spawn kind.
func (c TetrisConfig) SpawnPoint() tetris.Spawn {
	sp := tetris.DefaultSpawn()
	if k, ok := tetris.ParseKind(c.Spawn.Kind); ok {
		sp.Kind = k
	}
	sp.X = c.Spawn.X
	sp.Y = c.Spawn.Y
	return sp
}

// ActiveColor returns the colour for the falling piece.
func (c TetrisConfig) ActiveColor() core.Color {
	col, _ := core.ParseColor(c.Render.ColorActive)
	return col
}

// LockedColor returns the colour for locked cells.
func (c TetrisConfig) LockedColor() core.Color {
	col, _ := core.ParseColor(c.Render.ColorLocked)
	return col
}

// Validate reports the first invalid setting.
func (c TetrisConfig) Validate() error {
	if c.Gravity.IntervalMs <= 0 {
		return fmt.Errorf("config: gravity.interval_ms must be positive, got %d", c.Gravity.IntervalMs)
	}
	if c.Gravity.MinIntervalMs <= 0 {
		return fmt.Errorf("config: gravity.min_interval_ms must be positive, got %d", c.Gravity.MinIntervalMs)
	}
	if c.Gravity.MinIntervalMs > c.Gravity.IntervalMs {
		return fmt.Errorf("config: gravity.min_interval_ms (%d) exceeds interval_ms (%d)",
			c.Gravity.MinIntervalMs, c.Gravity.IntervalMs)
	}
	if _, ok := tetris.ParseKind(c.Spawn.Kind); !ok {
		return fmt.Errorf("config: unknown spawn.kind %q", c.Spawn.Kind)
	}
	if c.Render.CellWidth <= 0 {
		return fmt.Errorf("config: render.cell_width must be positive, got %d", c.Render.CellWidth)
	}
	if c.Render.Filled == "" || c.Render.Empty == "" {
		return fmt.Errorf("config: render.filled and render.empty must be set")
	}
	for _, name := range []string{c.Render.ColorActive, c.Render.ColorLocked} {
		if _, ok := core.ParseColor(name); !ok {
			return fmt.Errorf("config: unknown colour %q", name)
		}
	}
	switch c.Difficulty.Progression.Type {
	case "locks", "time", "none", "":
	default:
		return fmt.Errorf("config: unknown difficulty.progression.type %q", c.Difficulty.Progression.Type)
	}
	if c.Difficulty.Scaling.SpeedMultiplier < 0 {
		return fmt.Errorf("config: difficulty.scaling.speed_multiplier must not be negative, got %g",
			c.Difficulty.Scaling.SpeedMultiplier)
	}
	return nil
}
