package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/wordfall/internal/audio"
	"github.com/vovakirdan/wordfall/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a variant and difficulty, then play",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to pick a variant and left/right or h/l to pick the
difficulty. Enter starts the game; Esc during a game returns to the menu.

Controls:
  Up/Down/j/k     - Navigate variants
  Left/Right/h/l  - Change difficulty
  Enter/Space     - Select
  Q/Esc           - Quit

Examples:
  wordfall menu
  wordfall menu --difficulty hard --fps 30`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	e, err := setup(false)
	if err != nil {
		return err
	}
	defer e.closeLog()

	player := audio.New(e.config.Audio, e.logger)
	player.Open()
	defer player.Close()
	e.configure(player)

	return tui.RunSession(terminalConfig(), e.difficulty, e.logger)
}
