package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/wordfall/internal/audio"
	"github.com/vovakirdan/wordfall/internal/core"
	"github.com/vovakirdan/wordfall/internal/platform/tui"
	"github.com/vovakirdan/wordfall/internal/registry"
)

const defaultVariant = "wordfall"

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play in the terminal",
	Long: `Start a round in the terminal.

Controls:
  a-z     - Type at the highlighted word
  Enter   - Start / restart after game over
  Tab     - Toggle sound
  Ctrl+S  - Save a screenshot to ~/.wordfall/screenshots
  Esc     - Quit

Variants:
  wordfall          - One point per destroyed word (default)
  wordfall_classic  - Ten points per character hit plus a length bonus

Difficulty options:
  easy   - Slower words, progresses to max
  normal - Starts at the base speed, progresses to max
  hard   - Starts five steps in, progresses to max
  fixed  - No progression

Examples:
  wordfall play
  wordfall play wordfall_classic
  wordfall play --difficulty hard --log-file wordfall.log`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID, err := variantArg(args)
	if err != nil {
		return err
	}

	e, err := setup(false)
	if err != nil {
		return err
	}
	defer e.closeLog()

	player := audio.New(e.config.Audio, e.logger)
	player.Open()
	defer player.Close()
	e.configure(player)

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	if err := tui.Run(game, terminalConfig(), e.logger); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

// variantArg picks the variant named on the command line, or the default.
func variantArg(args []string) (string, error) {
	gameID := defaultVariant
	if len(args) > 0 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		return "", fmt.Errorf("unknown variant %q (run 'wordfall list' to see available variants)", gameID)
	}
	return gameID, nil
}

// terminalConfig sizes the runtime config to the current terminal.
func terminalConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}
