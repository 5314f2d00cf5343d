package wordfall

import (
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/wordfall/internal/config"
	"github.com/vovakirdan/wordfall/internal/core"
	"github.com/vovakirdan/wordfall/internal/registry"
)

// Settings are shared by every game created through the registry.
type Settings struct {
	Config     config.WordfallConfig
	Difficulty config.DifficultyPreset // Empty leaves Config untouched
	Logger     *log.Logger
	Sound      SoundPlayer
	Muted      bool
}

var (
	settingsMu sync.RWMutex
	settings   = Settings{Config: config.DefaultWordfallConfig()}
)

// Configure sets the settings used by games created after this call.
func Configure(s Settings) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	settings = s
}

func currentSettings() Settings {
	settingsMu.RLock()
	defer settingsMu.RUnlock()
	return settings
}

// variant describes a registered flavour of the game.
type variant struct {
	id      string
	title   string
	scoring config.ScoringMode // Empty keeps the configured mode
}

var (
	variantStandard = variant{id: "wordfall", title: "Wordfall"}
	variantClassic  = variant{id: "wordfall_classic", title: "Wordfall (Classic Scoring)", scoring: config.ScoringPerChar}
)

// Game adapts the controller to the registry.Game interface.
type Game struct {
	variant    variant
	settings   Settings
	difficulty config.DifficultyPreset
	runtime    core.RuntimeConfig
	ctrl       *Controller
}

// New creates a game scored per completed word.
func New() *Game {
	return &Game{variant: variantStandard}
}

// NewClassic creates a game scored per character plus a completion bonus.
func NewClassic() *Game {
	return &Game{variant: variantClassic}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string { return g.variant.id }

// Title returns the display name for this game.
func (g *Game) Title() string { return g.variant.title }

// Reset builds a new engine for the surface and leaves the round idle.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	muted := currentSettings().Muted
	if g.ctrl != nil {
		muted = g.ctrl.Muted()
		g.ctrl.Stop()
	}

	g.settings = currentSettings()
	g.runtime = runtime

	cfg := g.settings.Config
	preset := g.settings.Difficulty
	if g.difficulty != "" {
		preset = g.difficulty
	}
	if preset != "" {
		config.ApplyPreset(&cfg, preset)
	}
	if g.variant.scoring != "" {
		cfg.Scoring.Mode = g.variant.scoring
	}

	seed := runtime.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	measure := runtime.Measurer
	if measure == nil {
		cellW, _ := runtime.Scale()
		measure = core.MonospaceMeasurer{Advance: cellW}
	}

	w, h := runtime.WorldSize()
	engine := NewEngine(cfg, w, h, seed, measure)

	logger := g.settings.Logger
	if logger != nil {
		logger = logger.With("game", g.variant.id)
	}
	g.ctrl = NewController(engine,
		WithLogger(logger),
		WithSound(g.settings.Sound),
		WithTickThreshold(time.Duration(cfg.Rules.TickThresholdMs)*time.Millisecond),
	)
	g.ctrl.SetMuted(muted)
}

// SetDifficulty overrides the configured preset from the next Reset on.
func (g *Game) SetDifficulty(p config.DifficultyPreset) { g.difficulty = p }

// Step applies control actions and typed letters, then runs at most one tick.
func (g *Game) Step(now time.Time, in core.InputFrame) core.StepResult {
	if g.ctrl == nil {
		return core.StepResult{}
	}

	if in.Has(core.ActionMute) {
		g.ctrl.ToggleMute()
	}
	if in.Has(core.ActionConfirm) {
		switch g.ctrl.Engine().Status() {
		case core.StatusIdle:
			g.ctrl.Start(now)
		case core.StatusGameOver:
			g.ctrl.Restart(now)
		}
	}
	for _, r := range in.Text {
		g.ctrl.Type(r)
	}

	ticked := g.ctrl.Frame(now)
	return core.StepResult{State: g.State(), Ticked: ticked}
}

// Resize applies a new surface size in screen units.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW = w
	g.runtime.ScreenH = h
	if g.ctrl != nil {
		g.ctrl.Resize(g.runtime.WorldSize())
	}
}

// Render draws the current state into a terminal screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.ctrl == nil {
		return
	}
	cellW, cellH := g.runtime.Scale()
	RenderCells(dst, g.ctrl.Snapshot(), cellW, cellH)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.ctrl == nil {
		return core.GameState{}
	}
	st := g.ctrl.Engine().State()
	st.Muted = g.ctrl.Muted()
	return st
}

// Stop cancels pending frames and ignores later input.
func (g *Game) Stop() {
	if g.ctrl != nil {
		g.ctrl.Stop()
	}
}

// Controller exposes the lifecycle controller to frontends that draw the
// snapshot themselves.
func (g *Game) Controller() *Controller { return g.ctrl }

// Register the variants with the registry
func init() {
	registry.Register(variantStandard.id, func() registry.Game {
		return New()
	})
	registry.Register(variantClassic.id, func() registry.Game {
		return NewClassic()
	})
}
