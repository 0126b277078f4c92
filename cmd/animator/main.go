// animator plays, renders and catalogs keyframe shape animations in the terminal.
//
// Usage:
//
//	animator views                 - List available output views
//	animator render <file>         - Render an animation through a view
//	animator check <file>          - Report each shape's timeline
//	animator play <file|name>      - Play a file or a catalog entry
//	animator menu                  - Pick animations interactively
//	animator serve                 - Start SSH server for remote viewing
//	animator catalog <command>     - Manage the animation catalog
//
// Global flags:
//
//	--speed <tps>      - Override ticks per second (default: from config)
//	--db <path>        - Override catalog database path
//	--config <path>    - Use a specific player config file
//	--log-level <lvl>  - debug, info, warn or error (default: warn)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-animator/internal/config"

	// Import views to register them
	_ "github.com/vovakirdan/tui-animator/internal/views/ascii"
	_ "github.com/vovakirdan/tui-animator/internal/views/svg"
	_ "github.com/vovakirdan/tui-animator/internal/views/text"
)

var (
	// Global flags
	flagSpeed    int
	flagDBPath   string
	flagConfig   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "animator",
	Short: "Animator - keyframe shape animations in your terminal",
	Long: `Animator loads keyframe animations of rectangles, ellipses and crosses
and plays them in the terminal, renders them as SVG or ASCII frames, and keeps
a catalog of favourites that can be shared over SSH.

Available commands:
  views    - Show all output views
  render   - Render an animation through a view
  check    - Check every shape's timeline
  play     - Play an animation directly
  menu     - Interactive animation picker
  serve    - Start SSH server for remote viewing
  catalog  - Import, list, show and remove catalog entries

Examples:
  animator play examples/bounce.yaml
  animator render examples/bounce.yaml --view svg --out bounce.svg
  animator catalog import examples/*.txt
  animator menu --library ./examples
  animator serve --ssh :2222`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagSpeed, "speed", 0, "Ticks per second (0 = from config)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to catalog database (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to player config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(viewsCmd)
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(catalogCmd)
}

// fail prints an error and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

// newLogger returns the command logger at the level chosen by --log-level.
func newLogger() *log.Logger {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		fail("invalid log level %q", flagLogLevel)
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		Level:  level,
		Prefix: "animator",
	})
}

// loadPlayerConfig loads the player config and applies the global overrides.
func loadPlayerConfig() config.PlayerConfig {
	cfg, err := config.LoadPlayer(flagConfig)
	if err != nil {
		fail("%v", err)
	}
	if flagSpeed > 0 {
		cfg.Playback.TicksPerSecond = flagSpeed
		cfg.SVG.TicksPerSecond = flagSpeed
	}
	if flagDBPath != "" {
		cfg.Catalog.DBPath = flagDBPath
	}
	if err := cfg.Validate(); err != nil {
		fail("%v", err)
	}
	return cfg
}

// terminalSize returns the size of stdout, or 80x24 when it is not a terminal.
func terminalSize() (int, int) {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return width, height
}
