package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-animator/internal/anim"
)

var checkCmd = &cobra.Command{
	Use:   "check <file|name>",
	Short: "Check every shape's timeline",
	Long: `Report each shape's kind, motion count and tick range, or the reason
its timeline is broken. Exits with status 1 when any shape is broken.

Examples:
  animator check bounce.txt`,
	Args: cobra.ExactArgs(1),
	Run:  runCheck,
}

func runCheck(_ *cobra.Command, args []string) {
	cfg := loadPlayerConfig()

	src, err := resolve(args[0], cfg.Catalog.DBPath)
	if err != nil {
		fail("%v", err)
	}

	broken := report(src.Model)

	fmt.Println()
	if broken > 0 {
		fmt.Printf("%d of %d shapes are broken.\n", broken, src.Model.Len())
		os.Exit(1)
	}
	ticks, _ := src.Model.NumTicks()
	fmt.Printf("All %d shapes are sound, %d ticks in total.\n", src.Model.Len(), ticks)
}

// report prints one line per shape and returns how many are broken.
func report(m *anim.Model) int {
	c := m.Canvas()
	fmt.Printf("Canvas %d,%d %dx%d\n\n", c.X, c.Y, c.W, c.H)

	maxName := 5 // "Shape" header
	for _, s := range m.Shapes() {
		maxName = max(maxName, len(s.Name()))
	}

	fmt.Printf("  %-*s  %-9s  %-7s  %s\n", maxName, "Shape", "Kind", "Motions", "Ticks")
	fmt.Printf("  %-*s  %-9s  %-7s  %s\n", maxName, "-----", "----", "-------", "-----")

	broken := 0
	for _, s := range m.Shapes() {
		ticks := ""
		if err := s.Check(); err != nil {
			broken++
			ticks = err.Error()
		} else {
			start, _ := s.StartTick()
			end, _ := s.EndTick()
			ticks = fmt.Sprintf("%d..%d", start, end)
		}
		fmt.Printf("  %-*s  %-9s  %-7d  %s\n", maxName, s.Name(), s.Kind(), s.Len(), ticks)
	}
	return broken
}
