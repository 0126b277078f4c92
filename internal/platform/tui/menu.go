package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-animator/internal/anim"
	"github.com/vovakirdan/tui-animator/internal/core"
	"github.com/vovakirdan/tui-animator/internal/library"
	"github.com/vovakirdan/tui-animator/internal/storage"
)

// Origin tells where a menu item comes from.
type Origin string

const (
	OriginLibrary Origin = "library"
	OriginCatalog Origin = "catalog"
)

// MenuItem represents a selectable animation in the menu.
type MenuItem struct {
	ID     string
	Title  string
	Origin Origin
	Detail string
}

// Shelf is the set of animations the picker offers: the files of a library
// directory followed by the catalog entries. Either part may be empty.
type Shelf struct {
	Library []library.Entry
	Store   *storage.Store
}

// Items lists the animations on the shelf.
func (s Shelf) Items() ([]MenuItem, error) {
	items := make([]MenuItem, 0, len(s.Library))
	for _, e := range s.Library {
		detail := fmt.Sprintf("%d shapes", e.Model.Len())
		if n, err := e.Model.NumTicks(); err == nil {
			detail += fmt.Sprintf(", %d ticks", n)
		}
		items = append(items, MenuItem{ID: e.ID, Title: e.Title, Origin: OriginLibrary, Detail: detail})
	}

	if s.Store == nil {
		return items, nil
	}
	anims, err := s.Store.ListAnimations()
	if err != nil {
		return items, err
	}
	for _, a := range anims {
		title := a.Title
		if title == "" {
			title = a.Name
		}
		items = append(items, MenuItem{
			ID:     a.Name,
			Title:  title,
			Origin: OriginCatalog,
			Detail: fmt.Sprintf("%d shapes, %d ticks", a.Shapes, a.Ticks),
		})
	}
	return items, nil
}

// Load returns the model behind a menu item.
func (s Shelf) Load(item MenuItem) (*anim.Model, error) {
	switch item.Origin {
	case OriginLibrary:
		for _, e := range s.Library {
			if e.ID == item.ID {
				return e.Model, nil
			}
		}
		return nil, fmt.Errorf("%w: %s", library.ErrNotFound, item.ID)
	case OriginCatalog:
		if s.Store == nil {
			return nil, fmt.Errorf("%w: %s", storage.ErrNotFound, item.ID)
		}
		a, err := s.Store.GetAnimation(item.ID)
		if err != nil {
			return nil, err
		}
		return a.Model()
	}
	return nil, fmt.Errorf("unknown origin %q", item.Origin)
}

// MenuModel is the Bubble Tea model for the animation picker.
type MenuModel struct {
	items     []MenuItem
	loadErr   error
	cursor    int
	width     int
	height    int
	config    core.RuntimeConfig
	theme     Theme
	keys      MenuKeyMap
	help      help.Model
	quitting  bool
	selected  *MenuItem // Set when user selects an animation
	openStats bool      // True if user pressed Tab for catalog stats
}

// NewMenuModel creates a new menu model over the shelf.
func NewMenuModel(shelf Shelf, cfg core.RuntimeConfig, theme Theme) MenuModel {
	items, err := shelf.Items()
	h := help.New()
	h.Width = cfg.ScreenW

	return MenuModel{
		items:   items,
		loadErr: err,
		width:   cfg.ScreenW,
		height:  cfg.ScreenH,
		config:  cfg,
		theme:   theme,
		keys:    DefaultMenuKeyMap(),
		help:    h,
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Select):
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
			return m, tea.Quit // Exit menu to start the player
		}

	case key.Matches(msg, m.keys.Stats):
		m.openStats = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(m.theme.Title.Render("  A N I M A T O R  "), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select an animation", m.width))
	b.WriteString("\n\n")

	if m.loadErr != nil {
		b.WriteString(centerText(m.theme.Error.Render(m.loadErr.Error()), m.width))
		b.WriteString("\n\n")
	}

	if len(m.items) == 0 {
		b.WriteString(centerText(m.theme.Empty.Render("Nothing to play. Add files to the library or import them into the catalog."), m.width))
		b.WriteString("\n")
	}

	for i, item := range m.items {
		cursor := "  "
		style := m.theme.MenuItem
		if i == m.cursor {
			cursor = "> "
			style = m.theme.Cursor
		}
		line := style.Render(cursor+item.Title) + "  " + m.theme.Origin.Render(fmt.Sprintf("%s · %s", item.Origin, item.Detail))
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(m.theme.Help.Render(m.help.View(m.keys)), m.width))
	b.WriteString("\n")

	return b.String()
}

// Items returns the menu entries.
func (m MenuModel) Items() []MenuItem {
	return m.items
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsStats returns true if user requested the catalog stats.
func (m MenuModel) WantsStats() bool {
	return m.openStats
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width, measuring printable cells.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	padding := (width - w) / 2
	return strings.Repeat(" ", padding) + text
}
