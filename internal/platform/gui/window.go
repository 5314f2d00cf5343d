// Package gui runs the game in a resizable desktop window with ebiten.
// Every window pixel is one playfield unit.
package gui

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/wordfall/internal/assets"
	"github.com/vovakirdan/wordfall/internal/core"
	"github.com/vovakirdan/wordfall/internal/games/wordfall"
)

// Options configures the window.
type Options struct {
	Width      int
	Height     int
	TPS        int
	Seed       int64
	Projectile *assets.ImageHandle // Optional sprite; circles are drawn until ready
	Logger     *log.Logger
}

// window implements ebiten.Game around a wordfall game.
type window struct {
	game    *wordfall.Game
	painter *painter

	input core.InputFrame
	chars []rune

	width  int
	height int
	quit   bool
}

// Run opens the window and blocks until it is closed.
func Run(game *wordfall.Game, opts Options) error {
	if opts.Width <= 0 || opts.Height <= 0 {
		opts.Width, opts.Height = 800, 600
	}
	if opts.TPS <= 0 {
		opts.TPS = 60
	}

	runtime := core.RuntimeConfig{
		ScreenW:  opts.Width,
		ScreenH:  opts.Height,
		TickRate: opts.TPS,
		Seed:     opts.Seed,
		CellW:    1,
		CellH:    1,
		Measurer: faceMeasurer{face: wordFace},
	}
	game.Reset(runtime)
	defer game.Stop()

	w := &window{
		game:    game,
		painter: newPainter(opts.Projectile),
		input:   core.NewInputFrame(),
		width:   opts.Width,
		height:  opts.Height,
	}

	ebiten.SetWindowSize(opts.Width, opts.Height)
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(opts.TPS)

	if opts.Logger != nil {
		opts.Logger.Info("window opened", "game", game.ID(), "size", fmt.Sprintf("%dx%d", opts.Width, opts.Height))
	}

	if err := ebiten.RunGame(w); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("gui: %w", err)
	}
	return nil
}

// Update collects keyboard input and steps the game once.
func (w *window) Update() error {
	if w.quit {
		return ebiten.Termination
	}

	w.input.Clear()
	w.chars = ebiten.AppendInputChars(w.chars[:0])
	for _, r := range w.chars {
		w.input.Type(r)
	}

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		w.quit = true
		return ebiten.Termination
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter), inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter):
		w.input.Set(core.ActionConfirm)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		w.input.Set(core.ActionMute)
	}

	w.game.Step(time.Now(), w.input)
	return nil
}

// Draw renders the latest snapshot.
func (w *window) Draw(screen *ebiten.Image) {
	ctrl := w.game.Controller()
	if ctrl == nil {
		return
	}
	w.painter.draw(screen, ctrl.Snapshot(), ctrl.Muted())
}

// Layout follows the window size and resizes the playfield on change.
func (w *window) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth <= 0 || outsideHeight <= 0 {
		return w.width, w.height
	}
	if outsideWidth != w.width || outsideHeight != w.height {
		w.width, w.height = outsideWidth, outsideHeight
		w.game.Resize(w.width, w.height)
	}
	return w.width, w.height
}
