package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-animator/internal/storage"
)

// StatsKeyMap defines the key bindings for the catalog stats screen.
type StatsKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Back key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k StatsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k StatsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Back, k.Quit},
	}
}

// DefaultStatsKeyMap returns default key bindings.
func DefaultStatsKeyMap() StatsKeyMap {
	return StatsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b", "tab"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// StatRow is one catalog entry with its play statistics.
type StatRow struct {
	Animation storage.Animation
	Stats     storage.PlayStats
}

// LoadStats reads the catalog and its play statistics.
func LoadStats(store *storage.Store) ([]StatRow, error) {
	if store == nil {
		return nil, nil
	}
	anims, err := store.ListAnimations()
	if err != nil {
		return nil, err
	}
	rows := make([]StatRow, 0, len(anims))
	for _, a := range anims {
		st, err := store.GetPlayStats(a.Name)
		if err != nil {
			return nil, err
		}
		rows = append(rows, StatRow{Animation: a, Stats: *st})
	}
	return rows, nil
}

// StatsModel is the Bubble Tea model for the catalog stats screen.
type StatsModel struct {
	rows      []StatRow
	loadErr   error
	table     table.Model
	help      help.Model
	keys      StatsKeyMap
	theme     Theme
	width     int
	height    int
	quitting  bool
	goingBack bool // True if user pressed back (not quit)
}

// NewStatsModel creates a new stats model over the catalog. The store may be nil.
func NewStatsModel(store *storage.Store, width, height int, theme Theme) StatsModel {
	rows, err := LoadStats(store)

	h := help.New()
	h.ShowAll = false

	m := StatsModel{
		rows:    rows,
		loadErr: err,
		help:    h,
		keys:    DefaultStatsKeyMap(),
		theme:   theme,
		width:   width,
		height:  height,
	}
	m.table = m.createTable()
	m.updateTableRows()
	return m
}

// createTable creates a new table sized to the screen.
func (m *StatsModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Name", Width: 16},
		{Title: "Shapes", Width: 7},
		{Title: "Ticks", Width: 7},
		{Title: "Plays", Width: 6},
		{Title: "Watched", Width: 8},
		{Title: "Last played", Width: 14},
	}

	// Give the name column whatever width is left
	used := 0
	for _, c := range columns[1:] {
		used += c.Width + 2
	}
	if free := m.width - 8 - used; free > columns[0].Width {
		columns[0].Width = min(free, 32)
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)), // Leave room for header, help, and margins
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// updateTableRows fills the table from the loaded statistics.
func (m *StatsModel) updateTableRows() {
	rows := make([]table.Row, len(m.rows))
	for i, r := range m.rows {
		last := "never"
		if !r.Stats.LastPlayed.IsZero() {
			last = r.Stats.LastPlayed.Format("Jan 02 15:04")
		}
		rows[i] = table.Row{
			r.Animation.Name,
			fmt.Sprintf("%d", r.Animation.Shapes),
			fmt.Sprintf("%d", r.Animation.Ticks),
			fmt.Sprintf("%d", r.Stats.Plays),
			fmt.Sprintf("%d", r.Stats.TicksWatched),
			last,
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the stats model.
func (m StatsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the stats screen.
func (m StatsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the stats screen.
func (m StatsModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	b.WriteString(m.theme.Title.Render(centerText("CATALOG", m.width)))
	b.WriteString("\n\n")

	switch {
	case m.loadErr != nil:
		b.WriteString(m.theme.Error.Render(m.loadErr.Error()))
	case len(m.rows) == 0:
		b.WriteString(m.theme.Empty.Render("The catalog is empty.\nImport animations with `animator catalog import`."))
	default:
		b.WriteString(m.theme.Border.Padding(0, 1).Render(m.table.View()))
	}

	b.WriteString("\n")
	b.WriteString(m.theme.Help.Render(m.help.View(m.keys)))

	return b.String()
}

// Rows returns the loaded statistics.
func (m StatsModel) Rows() []StatRow {
	return m.rows
}

// IsGoingBack returns true if user wants to go back to menu.
func (m StatsModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m StatsModel) IsQuitting() bool {
	return m.quitting
}
