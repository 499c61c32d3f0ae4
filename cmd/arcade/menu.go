package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/blitz-arcade/internal/platform/tui"
	"github.com/vovakirdan/blitz-arcade/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the arcade with a game picker menu",
	Long: `Start the arcade in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a game.
Press B or Esc after a game ends to return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select game
  Tab          - High scores
  Q            - Quit

Examples:
  arcade menu
  arcade menu --fps 30
  arcade menu --difficulty easy --mute`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	if err := applyGameFlags(""); err != nil {
		return err
	}

	cfg := runtimeConfig()
	if err := cfg.Validate(); err != nil {
		return err
	}

	sound, closeAudio := openAudio()
	defer closeAudio()

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	for {
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			return err
		}
		cfg = menuResult.Config

		if menuResult.Quit || (menuResult.GameID == "" && !menuResult.WantsScoreboard) {
			return nil
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				return sbErr
			}
			if goBack {
				continue
			}
			return nil
		}

		game, err := registry.Create(menuResult.GameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			continue
		}
		if err := registry.Validate(game); err != nil {
			return err
		}

		gameCfg := cfg
		gameCfg.Audio = sound
		if gameCfg.Seed == 0 {
			gameCfg.Seed = time.Now().UnixNano()
		}

		result, err := tui.Run(game, store, gameCfg)
		if err != nil {
			log.Error("game ended with error", "game", game.ID(), "err", err)
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}
		sound.StopMusic()
		if result.Quit {
			return nil
		}
	}
}
