package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-animator/internal/core"
	"github.com/vovakirdan/tui-animator/internal/storage"
)

type sessionScreen int

const (
	screenMenu sessionScreen = iota
	screenPlayer
	screenStats
)

// SessionModel manages the full session flow: menu -> player -> menu,
// with the catalog stats reachable from the menu.
// It is the top-level model for SSH sessions and the local menu command.
type SessionModel struct {
	shelf    Shelf
	store    *storage.Store
	config   core.RuntimeConfig
	look     Appearance
	username string
	screen   sessionScreen
	menu     MenuModel
	player   PlayerModel
	stats    StatsModel
	quitting bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(shelf Shelf, cfg core.RuntimeConfig, look Appearance, username string) SessionModel {
	return SessionModel{
		shelf:    shelf,
		store:    shelf.Store,
		config:   cfg,
		look:     look,
		username: username,
		menu:     NewMenuModel(shelf, cfg, look.Theme),
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

	switch m.screen {
	case screenPlayer:
		return m.updatePlayer(msg)
	case screenStats:
		return m.updateStats(msg)
	}
	return m.updateMenu(msg)
}

// updateMenu handles updates when in menu mode.
// The menu signals its choice with tea.Quit; the session swallows that
// command and switches screens instead.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.menu.WantsStats() {
		m.stats = NewStatsModel(m.store, m.config.ScreenW, m.config.ScreenH, m.look.Theme)
		m.screen = screenStats
		return m, m.stats.Init()
	}

	if selected := m.menu.Selected(); selected != nil {
		model, err := m.shelf.Load(*selected)
		if err != nil {
			m.resetMenu()
			m.menu.loadErr = err
			return m, nil
		}

		m.player = NewPlayerModel(selected.ID, selected.Title, model, m.store, m.config, m.look)
		m.screen = screenPlayer
		return m, m.player.Init()
	}

	return m, cmd
}

// updatePlayer handles updates when the player is showing.
func (m SessionModel) updatePlayer(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.player.Update(msg)
	if playerModel, ok := newModel.(PlayerModel); ok {
		m.player = playerModel
	}

	if m.player.BackToMenu() {
		m.config.TicksPerSecond = m.player.TicksPerSecond()
		m.resetMenu()
		return m, m.menu.Init()
	}

	if m.player.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	return m, cmd
}

// updateStats handles updates when the catalog stats are showing.
func (m SessionModel) updateStats(msg tea.Msg) (tea.Model, tea.Cmd) {
	newStats, cmd := m.stats.Update(msg)
	if statsModel, ok := newStats.(StatsModel); ok {
		m.stats = statsModel
	}

	if m.stats.IsGoingBack() {
		m.resetMenu()
		return m, m.menu.Init()
	}

	if m.stats.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	return m, cmd
}

// resetMenu rebuilds the menu so that the catalog listing is current.
func (m *SessionModel) resetMenu() {
	m.menu = NewMenuModel(m.shelf, m.config, m.look.Theme)
	m.screen = screenMenu
}

// View renders the current screen.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.screen {
	case screenPlayer:
		return m.player.View()
	case screenStats:
		return m.stats.View()
	}
	return m.menu.View()
}

// User returns the name the session was opened with.
func (m SessionModel) User() string {
	return m.username
}

// Screen reports which screen is showing: "menu", "player" or "stats".
func (m SessionModel) Screen() string {
	switch m.screen {
	case screenPlayer:
		return "player"
	case screenStats:
		return "stats"
	}
	return "menu"
}

// RunSession runs the menu, player and stats flow in the local terminal.
func RunSession(shelf Shelf, cfg core.RuntimeConfig, look Appearance) error {
	p := tea.NewProgram(
		NewSessionModel(shelf, cfg, look, ""),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
