package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/wordfall/internal/assets"
	"github.com/vovakirdan/wordfall/internal/audio"
	"github.com/vovakirdan/wordfall/internal/games/wordfall"
	"github.com/vovakirdan/wordfall/internal/platform/gui"
	"github.com/vovakirdan/wordfall/internal/registry"
)

var (
	flagWidth  int
	flagHeight int
)

var windowCmd = &cobra.Command{
	Use:   "window [variant]",
	Short: "Play in a desktop window",
	Long: `Open a resizable window and play there.

Controls:
  a-z    - Type at the highlighted word
  Enter  - Start / restart after game over
  Tab    - Toggle sound
  Esc    - Quit

The projectile sprite can be replaced with assets.projectile_image in the
config (png, bmp or webp); a drawn circle is used until it loads.

Examples:
  wordfall window
  wordfall window wordfall_classic --width 1280 --height 720`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWindow,
}

func init() {
	windowCmd.Flags().IntVar(&flagWidth, "width", 800, "Initial window width")
	windowCmd.Flags().IntVar(&flagHeight, "height", 600, "Initial window height")
}

func runWindow(_ *cobra.Command, args []string) error {
	gameID, err := variantArg(args)
	if err != nil {
		return err
	}

	e, err := setup(true)
	if err != nil {
		return err
	}
	defer e.closeLog()

	created, err := registry.Create(gameID)
	if err != nil {
		return err
	}
	game, ok := created.(*wordfall.Game)
	if !ok {
		return fmt.Errorf("%q cannot be played in a window", gameID)
	}
	game.SetDifficulty(e.difficulty)

	// Games read the settings on Reset, which gui.Run does
	player := audio.New(e.config.Audio, e.logger)
	player.Open()
	defer player.Close()
	e.configure(player)

	opts := gui.Options{
		Width:      flagWidth,
		Height:     flagHeight,
		TPS:        flagFPS,
		Seed:       flagSeed,
		Projectile: assets.LoadImage(e.config.Assets.ProjectileImage, e.logger),
		Logger:     e.logger,
	}
	return gui.Run(game, opts)
}
