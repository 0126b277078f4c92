package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-animator/internal/library"
	"github.com/vovakirdan/tui-animator/internal/platform/tui"
	"github.com/vovakirdan/tui-animator/internal/storage"
)

var flagLibrary string

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the animation picker",
	Long: `Start the interactive picker over a library directory and the catalog.

Use arrow keys or j/k to navigate, Enter to play an animation.
Back from the player returns to the picker; Tab shows catalog stats.

Controls:
  Up/Down/j/k  - Navigate
  Enter/Space  - Play
  Tab          - Catalog stats
  Q/Esc        - Quit

Examples:
  animator menu
  animator menu --library ./examples
  animator menu --db ./catalog.db --speed 30`,
	Run: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagLibrary, "library", "", "Directory of animation files to offer alongside the catalog")
}

func runMenu(_ *cobra.Command, _ []string) {
	cfg := loadPlayerConfig()
	logger := newLogger()

	look, err := tui.AppearanceFrom(cfg)
	if err != nil {
		fail("%v", err)
	}

	var shelf tui.Shelf
	if flagLibrary != "" {
		entries, err := library.NewLoader(flagLibrary, logger).LoadAll()
		if err != nil {
			fail("loading library %s: %v", flagLibrary, err)
		}
		shelf.Library = entries
	}

	store, err := storage.Open(cfg.Catalog.DBPath)
	if err != nil {
		logger.Warn("could not open catalog", "error", err)
	} else {
		shelf.Store = store
	}

	width, height := terminalSize()
	runErr := tui.RunSession(shelf, cfg.ToRuntime(width, height), look)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fail("%v", runErr)
	}
}
