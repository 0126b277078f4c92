package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-animator/internal/platform/tui"
	"github.com/vovakirdan/tui-animator/internal/storage"
)

var flagPaused bool

var playCmd = &cobra.Command{
	Use:   "play <file|name>",
	Short: "Play an animation",
	Long: `Play an animation file, or a catalog entry when no such file exists.

Controls:
  Space/P      - Pause and resume
  Left/Right   - Step one tick (while paused)
  +/-          - Double or halve the speed
  L            - Toggle looping
  R            - Restart
  ?            - Toggle help
  Q/Ctrl+C     - Quit

Examples:
  animator play bounce.txt
  animator play bounce.yaml --speed 60
  animator play bounce --paused`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagPaused, "paused", false, "Start paused on the first tick")
}

func runPlay(_ *cobra.Command, args []string) {
	cfg := loadPlayerConfig()
	logger := newLogger()

	src, err := resolve(args[0], cfg.Catalog.DBPath)
	if err != nil {
		fail("%v", err)
	}

	look, err := tui.AppearanceFrom(cfg)
	if err != nil {
		fail("%v", err)
	}

	width, height := terminalSize()
	rc := cfg.ToRuntime(width, height)
	if flagPaused {
		rc.StartPaused = true
	}

	// Open the catalog to record plays
	store, err := storage.Open(cfg.Catalog.DBPath)
	if err != nil {
		logger.Warn("could not open catalog, plays will not be recorded", "error", err)
		// Continue without storage - playback still works
		store = nil
	}

	runErr := tui.Run(src.Name, src.Title, src.Model, store, rc, look)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fail("running player: %v", runErr)
	}
}
