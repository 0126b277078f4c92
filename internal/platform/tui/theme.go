package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-animator/internal/anim"
	"github.com/vovakirdan/tui-animator/internal/config"
	"github.com/vovakirdan/tui-animator/internal/render"
)

// Theme contains the visual styles of the player chrome.
type Theme struct {
	Title    lipgloss.Style
	Status   lipgloss.Style
	Border   lipgloss.Style
	Help     lipgloss.Style
	Error    lipgloss.Style
	MenuItem lipgloss.Style
	Cursor   lipgloss.Style
	Origin   lipgloss.Style // library/catalog tag in the picker
	Empty    lipgloss.Style
	Progress string // Progress bar fill as #rrggbb
}

// NewTheme builds the styles from a parsed palette.
func NewTheme(p config.Palette) Theme {
	return Theme{
		Title:    lipgloss.NewStyle().Foreground(lipgloss.Color(p.Title.Hex())).Bold(true),
		Status:   lipgloss.NewStyle().Foreground(lipgloss.Color(p.Status.Hex())),
		Border:   lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color(p.Border.Hex())),
		Help:     lipgloss.NewStyle().Foreground(lipgloss.Color(p.Status.Hex())),
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		MenuItem: lipgloss.NewStyle(),
		Cursor:   lipgloss.NewStyle().Foreground(lipgloss.Color(p.Cursor.Hex())).Bold(true),
		Origin:   lipgloss.NewStyle().Foreground(lipgloss.Color(p.Border.Hex())).Italic(true),
		Empty:    lipgloss.NewStyle().Foreground(lipgloss.Color(p.Status.Hex())).Italic(true).Padding(1, 4),
		Progress: p.Cursor.Hex(),
	}
}

// Appearance collects everything that decides how frames look.
type Appearance struct {
	Glyphs     map[anim.Kind]rune
	Background rune
	Shade      bool
	Theme      Theme
}

// AppearanceFrom builds an Appearance from the raster and theme sections of cfg.
func AppearanceFrom(cfg config.PlayerConfig) (Appearance, error) {
	glyphs, err := cfg.Raster.GlyphMap()
	if err != nil {
		return Appearance{}, err
	}
	bg, err := cfg.Raster.BackgroundRune()
	if err != nil {
		return Appearance{}, err
	}
	palette, err := cfg.Theme.Colors()
	if err != nil {
		return Appearance{}, err
	}
	return Appearance{
		Glyphs:     glyphs,
		Background: bg,
		Shade:      cfg.Raster.Shade,
		Theme:      NewTheme(palette),
	}, nil
}

// DefaultAppearance returns the appearance of the built-in configuration.
func DefaultAppearance() Appearance {
	a, err := AppearanceFrom(config.DefaultPlayerConfig())
	if err != nil {
		panic("tui: invalid built-in configuration: " + err.Error())
	}
	return a
}

// raster returns a raster for canvas c fitted to a w x h cell area.
func (a Appearance) raster(c anim.Canvas, w, h int) *render.Raster {
	r := render.Fit(c, w, h)
	for k, g := range a.Glyphs {
		r.Glyphs[k] = g
	}
	r.Shade = a.Shade
	return r
}
