package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-animator/internal/registry"
)

var viewsCmd = &cobra.Command{
	Use:   "views",
	Short: "List all output views",
	Long:  `Shows a list of all views that animations can be rendered through.`,
	Run:   runViews,
}

func runViews(cmd *cobra.Command, args []string) {
	views := registry.List()

	if len(views) == 0 {
		fmt.Println("No views available.")
		return
	}

	fmt.Println("Available views:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, v := range views {
		maxIDLen = max(maxIDLen, len(v.ID))
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")

	for _, v := range views {
		fmt.Printf("  %-*s  %s\n", maxIDLen, v.ID, v.Title)
	}

	fmt.Println()
	fmt.Println("Run 'animator render <file> --view <id>' to render an animation.")
}
