package tui

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/wordfall/internal/config"
	"github.com/vovakirdan/wordfall/internal/core"
	"github.com/vovakirdan/wordfall/internal/registry"
)

// difficultySetter is implemented by games that accept a per-game preset.
type difficultySetter interface {
	SetDifficulty(config.DifficultyPreset)
}

// SessionModel manages the full session flow: menu -> game -> menu.
// It is the top-level model for the menu command and for SSH sessions.
type SessionModel struct {
	config     core.RuntimeConfig
	difficulty config.DifficultyPreset
	logger     *log.Logger
	menu       MenuModel
	gameModel  *Model
	quitting   bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(cfg core.RuntimeConfig, preset config.DifficultyPreset, logger *log.Logger) SessionModel {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return SessionModel{
		config:     cfg,
		difficulty: preset,
		logger:     logger,
		menu:       NewMenuModel(cfg, preset),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window resize globally
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	if m.gameModel != nil {
		return m.updateGame(msg)
	}
	return m.updateMenu(msg)
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	selected := m.menu.Selected()
	if selected == nil {
		return m, cmd
	}

	game, err := registry.Create(selected.GameID)
	if err != nil {
		// Shouldn't happen since menu only shows registered games
		m.logger.Error("cannot create game", "err", err)
		m.menu = NewMenuModel(m.config, m.difficulty)
		return m, nil
	}

	m.difficulty = m.menu.Difficulty()
	if ds, ok := game.(difficultySetter); ok {
		ds.SetDifficulty(m.difficulty)
	}
	m.logger.Info("game selected", "game", game.ID(), "difficulty", m.difficulty)

	gameModel := NewModel(game, m.config, m.logger)
	gameModel.embedded = true
	m.gameModel = &gameModel

	// The menu's tea.Quit is not forwarded; the session keeps running
	return m, m.gameModel.Init()
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.gameModel.Update(msg)
	if gameModel, ok := newModel.(Model); ok {
		m.gameModel = &gameModel
	}

	if m.gameModel.BackToMenu() {
		m.gameModel = nil
		m.menu = NewMenuModel(m.config, m.difficulty)
		return m, m.menu.Init()
	}

	if m.gameModel.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}
	if m.gameModel != nil {
		return m.gameModel.View()
	}
	return m.menu.View()
}

// InGame reports whether a game is running.
func (m SessionModel) InGame() bool {
	return m.gameModel != nil
}

// RunSession runs the menu and games in the local terminal until the user quits.
func RunSession(cfg core.RuntimeConfig, preset config.DifficultyPreset, logger *log.Logger) error {
	p := tea.NewProgram(
		NewSessionModel(cfg, preset, logger),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
