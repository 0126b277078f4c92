package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-animator/internal/anim"
	"github.com/vovakirdan/tui-animator/internal/core"
	"github.com/vovakirdan/tui-animator/internal/render"
	"github.com/vovakirdan/tui-animator/internal/storage"
)

// chromeRows is the number of rows around the frame: title, progress and help.
const chromeRows = 3

// PlayerModel is the Bubble Tea model for playing one animation.
type PlayerModel struct {
	id         int64
	name       string // Used to record plays in the catalog
	title      string
	model      *anim.Model
	look       Appearance
	raster     *render.Raster
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	state      core.PlaybackState
	keys       PlayerKeyMap
	help       help.Model
	progress   progress.Model
	err        error // Integrity error that prevents playback
	watched    int   // Ticks advanced by the clock
	playSaved  bool
	exitOnBack bool
	quitting   bool
	backToMenu bool
}

// NewPlayerModel creates a player for m. The store may be nil.
func NewPlayerModel(name, title string, m *anim.Model, store *storage.Store, cfg core.RuntimeConfig, look Appearance) PlayerModel {
	cfg.TicksPerSecond = cfg.ClampTPS(cfg.TicksPerSecond)

	total, err := m.NumTicks()
	h := help.New()
	h.Width = cfg.ScreenW

	p := PlayerModel{
		id:     nextPlayerID(),
		name:   name,
		title:  title,
		model:  m,
		look:   look,
		store:  store,
		config: cfg,
		state: core.PlaybackState{
			Total:  total,
			Paused: cfg.StartPaused,
			Loop:   cfg.Loop,
		},
		keys: DefaultPlayerKeyMap(),
		help: h,
		progress: progress.New(
			progress.WithSolidFill(look.Theme.Progress),
			progress.WithoutPercentage(),
		),
		err: err,
	}
	p.state.Finished = total == 0
	p.layout()
	return p
}

// layout sizes the frame area and raster to the current screen.
func (m *PlayerModel) layout() {
	w, h := max(m.config.ScreenW, 1), max(m.config.ScreenH-chromeRows, 1)
	if m.screen == nil {
		m.screen = core.NewScreen(w, h)
	} else {
		m.screen.Resize(w, h)
	}
	m.screen.SetBackground(m.look.Background)
	m.raster = m.look.raster(m.model.Canvas(), w, h)
	m.progress.Width = w
	m.help.Width = w
}

// Init starts the tick loop.
func (m PlayerModel) Init() tea.Cmd {
	return tickCmd(m.id, m.config.TicksPerSecond)
}

// Update handles messages and updates the model state.
func (m PlayerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Help) {
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}
		return m.apply(m.keys.Action(msg))

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.layout()
		return m, nil

	case TickMsg:
		if msg.Player != m.id {
			return m, nil
		}
		return m.handleTick()
	}

	return m, nil
}

// apply performs a player action.
func (m PlayerModel) apply(a core.Action) (tea.Model, tea.Cmd) {
	switch a {
	case core.ActionQuit:
		m.quitting = true
		m.recordPlay()
		return m, tea.Quit

	case core.ActionBack:
		m.recordPlay()
		if m.exitOnBack {
			m.quitting = true
			return m, tea.Quit
		}
		m.backToMenu = true

	case core.ActionPause:
		m.state.Paused = !m.state.Paused

	case core.ActionRestart:
		m.state.Restart()

	case core.ActionFaster:
		m.config.TicksPerSecond = m.config.ClampTPS(m.config.TicksPerSecond * 2)

	case core.ActionSlower:
		m.config.TicksPerSecond = m.config.ClampTPS(m.config.TicksPerSecond / 2)

	case core.ActionStepForward:
		if m.state.Paused {
			m.state.Advance(1)
		}

	case core.ActionStepBack:
		if m.state.Paused {
			m.state.Advance(-1)
		}

	case core.ActionLoop:
		m.state.Loop = !m.state.Loop
		if m.state.Loop {
			m.state.Finished = false
		}
	}

	return m, nil
}

// handleTick advances the clock. The loop keeps running while paused so that
// speed changes apply to the next tick.
func (m PlayerModel) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting || m.backToMenu {
		return m, nil
	}
	if m.err == nil && !m.state.Paused && !m.state.Finished {
		m.state.Advance(1)
		m.watched++
	}
	return m, tickCmd(m.id, m.config.TicksPerSecond)
}

// recordPlay saves the play to the catalog once.
func (m *PlayerModel) recordPlay() {
	if m.playSaved || m.store == nil || m.watched == 0 {
		return
	}
	//nolint:errcheck // Best-effort save, playback ends regardless
	m.store.RecordPlay(m.name, m.watched)
	m.playSaved = true
}

// View renders the current frame with its title, progress and help rows.
func (m PlayerModel) View() string {
	if m.quitting {
		return ""
	}

	theme := m.look.Theme
	var b strings.Builder

	b.WriteString(theme.Title.Render(m.title))
	b.WriteString("  ")
	b.WriteString(theme.Status.Render(m.status()))
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(theme.Error.Render(m.err.Error()))
		b.WriteString(strings.Repeat("\n", max(m.screen.Height(), 1)))
	} else {
		m.raster.Draw(m.screen, m.model, m.state.Tick)
		b.WriteString(RenderScreen(m.screen))
		b.WriteString("\n")
	}

	b.WriteString(m.progress.ViewAs(m.state.Progress()))
	b.WriteString("\n")
	b.WriteString(theme.Help.Render(m.help.View(m.keys)))
	return b.String()
}

// status describes the playback position and flags.
func (m PlayerModel) status() string {
	s := fmt.Sprintf("tick %d/%d  %d tps", m.state.Tick, max(m.state.Total-1, 0), m.config.TicksPerSecond)
	if m.state.Paused {
		s += "  [paused]"
	}
	if m.state.Loop {
		s += "  [loop]"
	} else if m.state.Finished && m.state.Total > 0 {
		s += "  [end]"
	}
	return s
}

// State returns the playback position.
func (m PlayerModel) State() core.PlaybackState {
	return m.state
}

// TicksPerSecond returns the current playback speed.
func (m PlayerModel) TicksPerSecond() int {
	return m.config.TicksPerSecond
}

// Err returns the error that prevents playback, if any.
func (m PlayerModel) Err() error {
	return m.err
}

// IsQuitting returns true if user requested to quit entirely.
func (m PlayerModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m PlayerModel) BackToMenu() bool {
	return m.backToMenu
}

// Run plays one animation in the terminal until the user quits.
// Back acts as quit since there is no menu to return to.
func Run(name, title string, m *anim.Model, store *storage.Store, cfg core.RuntimeConfig, look Appearance) error {
	model := NewPlayerModel(name, title, m, store, cfg, look)
	model.exitOnBack = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
