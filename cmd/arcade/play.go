package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/blitz-arcade/internal/config"
	"github.com/vovakirdan/blitz-arcade/internal/core"
	"github.com/vovakirdan/blitz-arcade/internal/games/invaders"
	"github.com/vovakirdan/blitz-arcade/internal/games/runner"
	"github.com/vovakirdan/blitz-arcade/internal/platform/audio"
	"github.com/vovakirdan/blitz-arcade/internal/platform/tui"
	"github.com/vovakirdan/blitz-arcade/internal/registry"
	"github.com/vovakirdan/blitz-arcade/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagAssets     string
	flagMute       bool
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls (runner):
  Space/Up        - Jump
  X/Shift+Right   - Boost (invulnerable dash)
  Space/R         - Restart after game over

Controls (invaders):
  Left/Right/A/D  - Move
  Space           - Fire
  Any key         - Start / restart

Both games:
  P               - Pause
  B/Esc           - Back (when paused or over)
  Q/Ctrl+C        - Quit

Difficulty options:
  easy   - Slower spawns or more lives
  normal - Defaults from the config file
  hard   - Faster spawns or fewer lives
  fixed  - Speed progression disabled

Examples:
  arcade play runner
  arcade play runner --difficulty hard
  arcade play invaders --mute
  arcade play invaders --config ./my-invaders.yaml
  arcade play invaders --assets ./assets`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	for _, cmd := range []*cobra.Command{playCmd, menuCmd} {
		cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
		cmd.Flags().StringVar(&flagAssets, "assets", "assets", "Directory containing sounds/")
		cmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
	}
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := args[0]

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'arcade list' to see available games", gameID)
	}
	if err := applyGameFlags(flagConfig); err != nil {
		return err
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	cfg := runtimeConfig()
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := registry.Validate(game); err != nil {
		return err
	}

	sound, closeAudio := openAudio()
	defer closeAudio()
	cfg.Audio = sound

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	if _, err := tui.Run(game, store, cfg); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

// applyGameFlags hands the config path and difficulty preset to every game.
func applyGameFlags(configPath string) error {
	if _, err := config.ParsePreset(flagDifficulty); err != nil {
		return err
	}
	runner.SetConfigPath(configPath)
	runner.SetDifficultyPreset(flagDifficulty)
	invaders.SetConfigPath(configPath)
	invaders.SetDifficultyPreset(flagDifficulty)
	return nil
}

// runtimeConfig builds the runtime settings from flags and the terminal size.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// openAudio acquires the speaker unless muted. Audio failures are not fatal.
// The returned func releases the device and is safe to defer.
func openAudio() (core.Audio, func()) {
	if flagMute {
		return core.NopAudio{}, func() {}
	}
	player, err := audio.Open(flagAssets)
	if err != nil {
		log.Warn("sound disabled", "err", err)
		return core.NopAudio{}, func() {}
	}
	return player, player.Close
}

// openStore opens the score database. The games still run without it.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		log.Warn("scores disabled", "err", err)
		return nil
	}
	return store
}
