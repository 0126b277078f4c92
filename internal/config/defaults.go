package config

import (
	_ "embed"
)

//go:embed defaults/player.yaml
var defaultPlayerYAML []byte

// DefaultPlayerConfig returns the built-in configuration.
// It matches defaults/player.yaml.
func DefaultPlayerConfig() PlayerConfig {
	return PlayerConfig{
		Playback: PlaybackConfig{
			TicksPerSecond: 20,
			MinTPS:         1,
			MaxTPS:         240,
			Loop:           true,
		},
		Raster: RasterConfig{
			Glyphs: map[string]string{
				"rectangle": "█",
				"ellipse":   "●",
				"cross":     "✚",
			},
			Background: " ",
		},
		SVG: SVGConfig{
			TicksPerSecond: 20,
		},
		Catalog: CatalogConfig{
			DBPath: "~/.animator/catalog.db",
		},
		Theme: ThemeConfig{
			Title:  "#FFD787",
			Status: "#8A8A8A",
			Border: "#585858",
			Cursor: "#FF87D7",
		},
	}
}
