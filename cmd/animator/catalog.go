package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-animator/internal/library"
	"github.com/vovakirdan/tui-animator/internal/storage"
)

var (
	flagImportName string
	flagShowSource bool
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Manage the animation catalog",
	Long: `The catalog is a SQLite database of imported animations and their play counts.

Examples:
  animator catalog import bounce.txt spin.yaml
  animator catalog list
  animator catalog show bounce
  animator catalog rm bounce`,
}

var catalogImportCmd = &cobra.Command{
	Use:   "import <file>...",
	Short: "Import animation files into the catalog",
	Long: `Parse each file, check its timelines and store it under its file name.
An entry with the same name is replaced. Files with broken timelines are rejected.`,
	Args: cobra.MinimumNArgs(1),
	Run:  runCatalogImport,
}

var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "List catalog entries",
	Args:  cobra.NoArgs,
	Run:   runCatalogList,
}

var catalogShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Show a catalog entry",
	Args:  cobra.ExactArgs(1),
	Run:   runCatalogShow,
}

var catalogRmCmd = &cobra.Command{
	Use:     "rm <name>",
	Aliases: []string{"remove"},
	Short:   "Remove a catalog entry and its plays",
	Args:    cobra.ExactArgs(1),
	Run:     runCatalogRm,
}

func init() {
	catalogImportCmd.Flags().StringVar(&flagImportName, "name", "", "Catalog name (single file only; default: file name)")
	catalogShowCmd.Flags().BoolVar(&flagShowSource, "source", false, "Print the stored source document")

	catalogCmd.AddCommand(catalogImportCmd)
	catalogCmd.AddCommand(catalogListCmd)
	catalogCmd.AddCommand(catalogShowCmd)
	catalogCmd.AddCommand(catalogRmCmd)
}

// openCatalog opens the configured catalog or exits.
func openCatalog() *storage.Store {
	cfg := loadPlayerConfig()
	store, err := storage.Open(cfg.Catalog.DBPath)
	if err != nil {
		fail("opening catalog: %v", err)
	}
	return store
}

func runCatalogImport(_ *cobra.Command, args []string) {
	if flagImportName != "" && len(args) > 1 {
		fail("--name can only be used with a single file")
	}
	logger := newLogger()
	store := openCatalog()
	defer store.Close()

	failed := 0
	for _, path := range args {
		e, err := library.NewLoader(filepath.Dir(path), logger).LoadFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "skip %s: %v\n", path, err)
			failed++
			continue
		}
		name := e.ID
		if flagImportName != "" {
			name = flagImportName
		}

		a, err := storage.NewAnimation(name, e.Title, e.Format, e.Source, e.Model)
		if err != nil {
			fmt.Fprintf(os.Stderr, "skip %s: %v\n", path, err)
			failed++
			continue
		}
		if _, err := store.SaveAnimation(a); err != nil {
			fmt.Fprintf(os.Stderr, "skip %s: %v\n", path, err)
			failed++
			continue
		}
		logger.Debug("imported", "file", path, "name", name)
		fmt.Printf("Imported %s (%d shapes, %d ticks)\n", name, a.Shapes, a.Ticks)
	}

	if failed > 0 {
		store.Close()
		os.Exit(1)
	}
}

func runCatalogList(_ *cobra.Command, _ []string) {
	store := openCatalog()
	defer store.Close()

	anims, err := store.ListAnimations()
	if err != nil {
		store.Close()
		fail("listing catalog: %v", err)
	}

	if len(anims) == 0 {
		fmt.Println("The catalog is empty.")
		fmt.Println()
		fmt.Println("Run 'animator catalog import <file>' to add an animation.")
		return
	}

	maxName := 4 // "Name" header
	for _, a := range anims {
		maxName = max(maxName, len(a.Name))
	}

	fmt.Printf("  %-*s  %-6s  %-6s  %-6s  %s\n", maxName, "Name", "Format", "Shapes", "Ticks", "Title")
	fmt.Printf("  %-*s  %-6s  %-6s  %-6s  %s\n", maxName, "----", "------", "------", "-----", "-----")
	for _, a := range anims {
		fmt.Printf("  %-*s  %-6s  %-6d  %-6d  %s\n", maxName, a.Name, a.Format, a.Shapes, a.Ticks, a.Title)
	}
}

func runCatalogShow(_ *cobra.Command, args []string) {
	store := openCatalog()
	defer store.Close()

	a, err := store.GetAnimation(args[0])
	if err != nil {
		store.Close()
		fail("%v", err)
	}

	if flagShowSource {
		os.Stdout.Write(a.Source)
		return
	}

	stats, err := store.GetPlayStats(a.Name)
	if err != nil {
		store.Close()
		fail("%v", err)
	}

	fmt.Printf("%s - %s\n", a.Name, a.Title)
	fmt.Printf("  Format:   %s\n", a.Format)
	fmt.Printf("  Imported: %s\n", a.CreatedAt.Format("2006-01-02 15:04"))
	fmt.Printf("  Plays:    %d (%d ticks watched)\n", stats.Plays, stats.TicksWatched)
	if !stats.LastPlayed.IsZero() {
		fmt.Printf("  Last:     %s\n", stats.LastPlayed.Format("2006-01-02 15:04"))
	}
	fmt.Println()

	m, err := a.Model()
	if err != nil {
		store.Close()
		fail("%v", err)
	}
	report(m)
}

func runCatalogRm(_ *cobra.Command, args []string) {
	store := openCatalog()
	defer store.Close()

	err := store.DeleteAnimation(args[0])
	if errors.Is(err, storage.ErrNotFound) {
		store.Close()
		fail("no catalog entry named %q", args[0])
	}
	if err != nil {
		store.Close()
		fail("%v", err)
	}
	fmt.Printf("Removed %s\n", args[0])
}
