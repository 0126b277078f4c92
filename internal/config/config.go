// Package config provides YAML-based configuration for the animation
// player and the views.
package config

import (
	"fmt"
	"unicode/utf8"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/tui-animator/internal/anim"
	"github.com/vovakirdan/tui-animator/internal/core"
)

// PlayerConfig contains all configuration for the player and the views.
type PlayerConfig struct {
	Playback PlaybackConfig `yaml:"playback"`
	Raster   RasterConfig   `yaml:"raster"`
	SVG      SVGConfig      `yaml:"svg"`
	Catalog  CatalogConfig  `yaml:"catalog"`
	Theme    ThemeConfig    `yaml:"theme"`
}

// PlaybackConfig controls the speed and flow of the terminal player.
type PlaybackConfig struct {
	TicksPerSecond int  `yaml:"ticks_per_second"`
	MinTPS         int  `yaml:"min_tps"`
	MaxTPS         int  `yaml:"max_tps"`
	Loop           bool `yaml:"loop"`
	StartPaused    bool `yaml:"start_paused"`
}

// RasterConfig controls how shapes are drawn into terminal cells.
type RasterConfig struct {
	Glyphs     map[string]string `yaml:"glyphs"`     // Kind name to the glyph drawn for it
	Background string            `yaml:"background"` // Glyph for empty cells
	Shade      bool              `yaml:"shade"`      // Pick glyphs by lightness
}

// SVGConfig controls the SVG view.
type SVGConfig struct {
	TicksPerSecond int `yaml:"ticks_per_second"`
}

// CatalogConfig locates the animation catalog database.
type CatalogConfig struct {
	DBPath string `yaml:"db_path"`
}

// ThemeConfig holds the hex colors of the player chrome.
type ThemeConfig struct {
	Title  string `yaml:"title"`
	Status string `yaml:"status"`
	Border string `yaml:"border"`
	Cursor string `yaml:"cursor"`
}

// Validate reports the first setting that cannot be used.
func (c PlayerConfig) Validate() error {
	p := c.Playback
	if p.MinTPS < 1 {
		return fmt.Errorf("playback.min_tps must be at least 1, got %d", p.MinTPS)
	}
	if p.MaxTPS < p.MinTPS {
		return fmt.Errorf("playback.max_tps %d is below min_tps %d", p.MaxTPS, p.MinTPS)
	}
	if p.TicksPerSecond < p.MinTPS || p.TicksPerSecond > p.MaxTPS {
		return fmt.Errorf("playback.ticks_per_second %d is outside [%d, %d]", p.TicksPerSecond, p.MinTPS, p.MaxTPS)
	}
	if c.SVG.TicksPerSecond < 1 {
		return fmt.Errorf("svg.ticks_per_second must be at least 1, got %d", c.SVG.TicksPerSecond)
	}
	if _, err := c.Raster.GlyphMap(); err != nil {
		return err
	}
	if _, err := c.Raster.BackgroundRune(); err != nil {
		return err
	}
	if _, err := c.Theme.Colors(); err != nil {
		return err
	}
	return nil
}

// ToRuntime converts the playback section into the player's runtime config.
func (c PlayerConfig) ToRuntime(screenW, screenH int) core.RuntimeConfig {
	rc := core.RuntimeConfig{
		ScreenW:        screenW,
		ScreenH:        screenH,
		TicksPerSecond: c.Playback.TicksPerSecond,
		MinTPS:         c.Playback.MinTPS,
		MaxTPS:         c.Playback.MaxTPS,
		Loop:           c.Playback.Loop,
		StartPaused:    c.Playback.StartPaused,
	}
	rc.TicksPerSecond = rc.ClampTPS(rc.TicksPerSecond)
	return rc
}

// GlyphMap resolves the configured glyphs by kind.
func (r RasterConfig) GlyphMap() (map[anim.Kind]rune, error) {
	glyphs := make(map[anim.Kind]rune, len(r.Glyphs))
	for name, g := range r.Glyphs {
		k, err := anim.ParseKind(name)
		if err != nil {
			return nil, fmt.Errorf("raster.glyphs: %w", err)
		}
		ch, err := single(g)
		if err != nil {
			return nil, fmt.Errorf("raster.glyphs.%s: %w", name, err)
		}
		glyphs[k] = ch
	}
	return glyphs, nil
}

// BackgroundRune returns the glyph for empty cells, a space when unset.
func (r RasterConfig) BackgroundRune() (rune, error) {
	if r.Background == "" {
		return ' ', nil
	}
	ch, err := single(r.Background)
	if err != nil {
		return 0, fmt.Errorf("raster.background: %w", err)
	}
	return ch, nil
}

func single(s string) (rune, error) {
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("%q is not a single character", s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, nil
}

// Palette is the parsed theme.
type Palette struct {
	Title, Status, Border, Cursor colorful.Color
}

// Colors parses the theme's hex colors.
func (t ThemeConfig) Colors() (Palette, error) {
	var p Palette
	for _, f := range []struct {
		name string
		hex  string
		dst  *colorful.Color
	}{
		{"title", t.Title, &p.Title},
		{"status", t.Status, &p.Status},
		{"border", t.Border, &p.Border},
		{"cursor", t.Cursor, &p.Cursor},
	} {
		c, err := colorful.Hex(f.hex)
		if err != nil {
			return Palette{}, fmt.Errorf("theme.%s: %w", f.name, err)
		}
		*f.dst = c
	}
	return p, nil
}
