package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/wordfall/internal/core"
)

// recordingGame records what the model passes to it.
type recordingGame struct {
	resets  int
	steps   int
	typed   []rune
	actions []core.Action
	w, h    int
	stopped bool
}

func (g *recordingGame) ID() string    { return "recording" }
func (g *recordingGame) Title() string { return "Recording" }

func (g *recordingGame) Reset(cfg core.RuntimeConfig) {
	g.resets++
	g.w, g.h = cfg.ScreenW, cfg.ScreenH
}

func (g *recordingGame) Step(_ time.Time, in core.InputFrame) core.StepResult {
	g.steps++
	g.typed = append(g.typed, in.Text...)
	for a := range in.Actions {
		g.actions = append(g.actions, a)
	}
	return core.StepResult{Ticked: true}
}

func (g *recordingGame) Resize(w, h int)         { g.w, g.h = w, h }
func (g *recordingGame) Render(dst *core.Screen) { dst.Clear() }
func (g *recordingGame) State() core.GameState   { return core.GameState{} }
func (g *recordingGame) Stop()                   { g.stopped = true }

func newTestModel(g *recordingGame) Model {
	cfg := core.DefaultConfig()
	cfg.Seed = 1
	m := NewModel(g, cfg, nil)
	m.Init()
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm, cmd
}

func TestModelPlayfieldExcludesChrome(t *testing.T) {
	g := &recordingGame{}
	m := newTestModel(g)

	if g.resets != 1 || g.w != 80 || g.h != 22 {
		t.Errorf("reset %d times at %dx%d, expected once at 80x22", g.resets, g.w, g.h)
	}

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	if g.resets != 1 {
		t.Error("resize restarted the game")
	}
	if g.w != 100 || g.h != 38 {
		t.Errorf("resized to %dx%d, expected 100x38", g.w, g.h)
	}
	if m.screen.Width() != 100 || m.screen.Height() != 38 {
		t.Errorf("screen is %dx%d", m.screen.Width(), m.screen.Height())
	}
}

func TestModelBuffersLettersUntilTick(t *testing.T) {
	g := &recordingGame{}
	m := newTestModel(g)

	m, _ = update(t, m, runeKey("c"))
	m, _ = update(t, m, runeKey("a"))
	if g.steps != 0 {
		t.Fatal("keys stepped the game before a tick")
	}

	m, cmd := update(t, m, TickMsg{Time: time.Now(), Epoch: m.epoch})
	if cmd == nil {
		t.Error("tick did not schedule the next one")
	}
	if string(g.typed) != "ca" {
		t.Errorf("typed = %q, expected %q", string(g.typed), "ca")
	}

	update(t, m, TickMsg{Time: time.Now(), Epoch: m.epoch})
	if string(g.typed) != "ca" {
		t.Errorf("letters delivered twice: %q", string(g.typed))
	}
}

func TestModelDropsStaleTicks(t *testing.T) {
	g := &recordingGame{}
	m := newTestModel(g)

	_, cmd := update(t, m, TickMsg{Time: time.Now(), Epoch: m.epoch + 100})
	if cmd != nil || g.steps != 0 {
		t.Error("stale tick reached the game")
	}
}

func TestModelQuitStopsGame(t *testing.T) {
	g := &recordingGame{}
	m := newTestModel(g)
	epoch := m.epoch

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil || !m.IsQuitting() {
		t.Fatal("esc should quit a standalone game")
	}
	if !g.stopped {
		t.Error("game not stopped on quit")
	}

	update(t, m, TickMsg{Time: time.Now(), Epoch: epoch})
	if g.steps != 0 {
		t.Error("pending tick ran after quit")
	}
}

func TestEmbeddedModelGoesBack(t *testing.T) {
	g := &recordingGame{}
	m := newTestModel(g)
	m.embedded = true

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.BackToMenu() || m.IsQuitting() {
		t.Error("esc in a session should return to the menu")
	}

	m2 := newTestModel(&recordingGame{})
	m2.embedded = true
	m2, _ = update(t, m2, tea.KeyMsg{Type: tea.KeyCtrlC})
	if !m2.IsQuitting() {
		t.Error("ctrl+c should always quit")
	}
}

func TestMenuSelectsVariantAndDifficulty(t *testing.T) {
	menu := NewMenuModel(core.DefaultConfig(), "")
	menu.items = []MenuItem{{GameID: "a", Title: "A"}, {GameID: "b", Title: "B"}}

	if got := menu.Difficulty(); got != "normal" {
		t.Fatalf("default difficulty = %q", got)
	}

	steps := []tea.KeyMsg{
		{Type: tea.KeyDown},
		{Type: tea.KeyRight},
		{Type: tea.KeyEnter},
	}
	var model tea.Model = menu
	for _, k := range steps {
		model, _ = model.Update(k)
	}

	menu = model.(MenuModel)
	if sel := menu.Selected(); sel == nil || sel.GameID != "b" {
		t.Errorf("selected %+v, expected b", sel)
	}
	if got := menu.Difficulty(); got != "hard" {
		t.Errorf("difficulty = %q, expected hard", got)
	}
}
