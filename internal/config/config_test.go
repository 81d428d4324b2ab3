package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vovakirdan/tui-tetris/internal/core"
	tetris "github.com/vovakirdan/tui-tetris/internal/games/tetris/core"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded defaults should parse: %v", err)
	}
	if cfg != DefaultTetrisConfig() {
		t.Errorf("embedded defaults differ from DefaultTetrisConfig():\n got %+v\nwant %+v", cfg, DefaultTetrisConfig())
	}
}

func TestDefaultSpawnPoint(t *testing.T) {
	sp := DefaultTetrisConfig().SpawnPoint()
	if sp != tetris.DefaultSpawn() {
		t.Errorf("SpawnPoint() = %+v, expected %+v", sp, tetris.DefaultSpawn())
	}
}

func TestDefaultColors(t *testing.T) {
	cfg := DefaultTetrisConfig()
	if cfg.ActiveColor() != core.ColorCyan {
		t.Errorf("ActiveColor() = %v, expected cyan", cfg.ActiveColor())
	}
	if cfg.LockedColor() != core.ColorWhite {
		t.Errorf("LockedColor() = %v, expected white", cfg.LockedColor())
	}
}

func TestParsePartialOverride(t *testing.T) {
	cfg, err := Parse([]byte("spawn:\n  kind: T\n  x: 0\n"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if cfg.Spawn.Kind != "T" || cfg.Spawn.X != 0 {
		t.Errorf("spawn = %+v, expected T at x=0", cfg.Spawn)
	}
	if cfg.Gravity.IntervalMs != 200 {
		t.Errorf("unset keys should keep defaults, interval_ms = %d", cfg.Gravity.IntervalMs)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*TetrisConfig)
		ok     bool
	}{
		{"defaults", func(*TetrisConfig) {}, true},
		{"zero interval", func(c *TetrisConfig) { c.Gravity.IntervalMs = 0 }, false},
		{"zero min interval", func(c *TetrisConfig) { c.Gravity.MinIntervalMs = 0 }, false},
		{"min above base", func(c *TetrisConfig) { c.Gravity.MinIntervalMs = 500 }, false},
		{"unknown kind", func(c *TetrisConfig) { c.Spawn.Kind = "X" }, false},
		{"lowercase kind", func(c *TetrisConfig) { c.Spawn.Kind = "l" }, false},
		{"zero cell width", func(c *TetrisConfig) { c.Render.CellWidth = 0 }, false},
		{"empty glyph", func(c *TetrisConfig) { c.Render.Empty = "" }, false},
		{"unknown colour", func(c *TetrisConfig) { c.Render.ColorActive = "mauve" }, false},
		{"unknown progression", func(c *TetrisConfig) { c.Difficulty.Progression.Type = "score" }, false},
		{"negative spawn x", func(c *TetrisConfig) { c.Spawn.X = -2 }, true},
		{"negative speed multiplier", func(c *TetrisConfig) { c.Difficulty.Scaling.SpeedMultiplier = -1 }, false},
		{"zero speed multiplier", func(c *TetrisConfig) { c.Difficulty.Scaling.SpeedMultiplier = 0 }, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultTetrisConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if (err == nil) != tc.ok {
				t.Errorf("Validate() = %v, expected ok=%v", err, tc.ok)
			}
		})
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	if err := os.WriteFile(path, []byte("gravity:\n  interval_ms: 400\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Gravity.IntervalMs != 400 {
		t.Errorf("interval_ms = %d, expected 400", cfg.Gravity.IntervalMs)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom config should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("spawn:\n  kind: Q\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("invalid custom config should fail")
	}
}

func TestParsePreset(t *testing.T) {
	for _, name := range []string{"easy", "normal", "hard", "fixed"} {
		if _, err := ParsePreset(name); err != nil {
			t.Errorf("ParsePreset(%q) failed: %v", name, err)
		}
	}
	if _, err := ParsePreset("insane"); err == nil {
		t.Error("unknown preset should fail")
	}
}

func TestApplyPreset(t *testing.T) {
	cfg := DefaultTetrisConfig()
	ApplyPreset(&cfg, DifficultyHard)

	if !cfg.Difficulty.Enabled {
		t.Error("hard preset should enable difficulty")
	}
	if cfg.Difficulty.InitialLevel != 0.7 {
		t.Errorf("InitialLevel = %v, expected 0.7", cfg.Difficulty.InitialLevel)
	}
	if cfg.Difficulty.Progression.Type != "locks" {
		t.Errorf("progression = %q, expected locks", cfg.Difficulty.Progression.Type)
	}

	ApplyPreset(&cfg, DifficultyFixed)
	if cfg.Difficulty.Enabled {
		t.Error("fixed preset should disable difficulty")
	}
}

func TestGravityIntervalDisabled(t *testing.T) {
	d := NewDifficultyManager(DefaultTetrisConfig().Difficulty)

	got := d.GravityInterval(200*time.Millisecond, 50*time.Millisecond, 1000, 1_000_000)
	if got != 200*time.Millisecond {
		t.Errorf("disabled difficulty should keep base interval, got %v", got)
	}
}

func TestGravityIntervalByLocks(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "locks", MaxAt: 10},
		Scaling:     ScalingConfig{SpeedMultiplier: 1.0},
	})

	tests := []struct {
		locks    int
		expected time.Duration
	}{
		{0, 200 * time.Millisecond},
		{10, 100 * time.Millisecond},
		{50, 100 * time.Millisecond}, // progress clamps at max
	}

	for _, tc := range tests {
		got := d.GravityInterval(200*time.Millisecond, 50*time.Millisecond, tc.locks, 0)
		if got != tc.expected {
			t.Errorf("GravityInterval(locks=%d) = %v, expected %v", tc.locks, got, tc.expected)
		}
	}
}

func TestGravityIntervalFloor(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:      true,
		InitialLevel: 1.0,
		Progression:  ProgressionConfig{Type: "time", MaxAt: 1},
		Scaling:      ScalingConfig{SpeedMultiplier: 10},
	})

	got := d.GravityInterval(200*time.Millisecond, 50*time.Millisecond, 0, 0)
	if got != 50*time.Millisecond {
		t.Errorf("interval should clamp to the floor, got %v", got)
	}
}

func TestTicksPerStep(t *testing.T) {
	tests := []struct {
		interval time.Duration
		rate     int
		expected int
	}{
		{200 * time.Millisecond, 60, 12},
		{200 * time.Millisecond, 30, 6},
		{10 * time.Millisecond, 60, 1},
		{time.Second, 0, 1},
	}

	for _, tc := range tests {
		got := TicksPerStep(tc.interval, tc.rate)
		if got != tc.expected {
			t.Errorf("TicksPerStep(%v, %d) = %d, expected %d", tc.interval, tc.rate, got, tc.expected)
		}
	}
}

func TestParseRejectsNegativeSpeedMultiplier(t *testing.T) {
	data := []byte("difficulty:\n  enabled: true\n  scaling:\n    speed_multiplier: -2\n")
	if _, err := Parse(data); err == nil {
		t.Error("a negative speed multiplier should be rejected")
	}
}
