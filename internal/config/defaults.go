package config

import (
	_ "embed"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultTetrisConfig returns the hardcoded tetris configuration.
// It matches defaults/tetris.yaml.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Gravity: TetrisGravity{
			IntervalMs:    200,
			MinIntervalMs: 50,
		},
		Spawn: TetrisSpawn{
			Kind: "L",
			X:    3,
			Y:    0,
		},
		Render: TetrisRender{
			Filled:      "#",
			Empty:       ".",
			CellWidth:   2,
			ColorActive: "cyan",
			ColorLocked: "white",
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "none",
				MaxAt: 100,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 3.0,
			},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultTetrisYAML
}
