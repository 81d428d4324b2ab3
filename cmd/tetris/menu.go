package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start tetris with a menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select.
Quitting a game or the history screen returns to the menu.

Examples:
  tetris menu
  tetris menu --fps 30
  tetris menu --db ./history.db`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	if err := menuLoop(); err != nil {
		fail("%v", err)
	}
}

// menuLoop alternates between the menu and the screen it picks until the
// user quits.
func menuLoop() error {
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

	cfg := runtimeConfig()

	for {
		result, err := tui.RunMenu(cfg)
		if err != nil {
			return err
		}
		cfg = result.Config

		switch result.Choice {
		case tui.ChoicePlay:
			if err := runGame(tetris.New(gameCfg), store, logger, cfg); err != nil {
				return fmt.Errorf("running game: %w", err)
			}

		case tui.ChoiceHistory:
			goBack, err := tui.RunHistory(store, "tetris", cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return err
			}
			if !goBack {
				return nil
			}

		default:
			return nil
		}
	}
}
