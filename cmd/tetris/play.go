package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play tetris",
	Long: `Start playing right away.

Controls:
  Left/Right/h/l  - Move
  Down/j          - Move down
  Up/k            - Rotate clockwise
  P/Esc           - Pause
  R               - Restart (saves the current run)
  Ctrl+S          - Save a text screenshot to ~/.tetris/screenshots
  ?               - Toggle full help
  Q/Ctrl+C        - Quit

Difficulty options:
  easy   - Gravity starts at the base interval and speeds up with locks
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, gravity stays at the configured interval

Examples:
  tetris play
  tetris play --difficulty hard
  tetris play --config ./my-tetris.yaml --log-file tetris.log --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

// runGame runs one game session; replaced in tests.
var runGame = tui.Run

func runPlay(_ *cobra.Command, _ []string) {
	if err := playGame(); err != nil {
		fail("%v", err)
	}
}

// playGame runs a standalone game. Deferred cleanup runs before any error
// reaches fail, which exits without unwinding.
func playGame() error {
	gameCfg, err := loadGameConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	logger.Info("starting", "gravity_ms", gameCfg.Gravity.IntervalMs, "spawn", gameCfg.Spawn.Kind, "fps", flagFPS)

	if err := runGame(tetris.New(gameCfg), store, logger, runtimeConfig()); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
