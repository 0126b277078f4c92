// Package library loads animation files from a directory tree.
// This package depends on anim but anim does not depend on library.
package library

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/vovakirdan/tui-animator/internal/anim"
	"github.com/vovakirdan/tui-animator/internal/anim/formats"
)

// ErrNotFound is returned when no entry has the requested ID.
var ErrNotFound = errors.New("animation not found")

// Entry represents a parsed animation file.
type Entry struct {
	ID       string // File name without extension
	Title    string
	Format   string // "text" or "yaml"
	Source   []byte
	Model    *anim.Model
	FilePath string
}

// Loader handles loading animations from a directory.
type Loader struct {
	Root   string
	Logger *log.Logger
}

// NewLoader creates a new loader. Skipped files are reported on logger;
// a nil logger discards them.
func NewLoader(root string, logger *log.Logger) *Loader {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Loader{Root: root, Logger: logger}
}

// LoadAll recursively scans and loads all animation files.
// Returns entries sorted by ID for deterministic ordering.
func (l *Loader) LoadAll() ([]Entry, error) {
	var entries []Entry

	err := filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !formats.Supported(filepath.Ext(path)) {
			return nil
		}

		entry, err := l.LoadFile(path)
		if err != nil {
			// Skip invalid files
			l.Logger.Warn("skipping animation", "path", path, "err", err)
			return nil
		}

		entries = append(entries, entry)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking directory %s: %w", l.Root, err)
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].ID < entries[j].ID
	})

	l.Logger.Debug("library loaded", "root", l.Root, "count", len(entries))
	return entries, nil
}

// LoadFile loads a single animation file.
func (l *Loader) LoadFile(path string) (Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Entry{}, fmt.Errorf("reading file %s: %w", path, err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	m, err := formats.ParseBytes(data, ext)
	if err != nil {
		return Entry{}, fmt.Errorf("parsing file %s: %w", path, err)
	}

	id := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return Entry{
		ID:       id,
		Title:    titleOf(id, ext, data),
		Format:   formats.Name(ext),
		Source:   data,
		Model:    m,
		FilePath: path,
	}, nil
}

// LoadByID loads a specific animation by ID.
func (l *Loader) LoadByID(id string) (Entry, error) {
	entries, err := l.LoadAll()
	if err != nil {
		return Entry{}, err
	}

	for _, e := range entries {
		if e.ID == id {
			return e, nil
		}
	}

	return Entry{}, fmt.Errorf("%w: %s", ErrNotFound, id)
}

// ListIDs returns all animation IDs in sorted order.
func (l *Loader) ListIDs() ([]string, error) {
	entries, err := l.LoadAll()
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(entries))
	for i, e := range entries {
		ids[i] = e.ID
	}
	return ids, nil
}

// titleOf prefers the document title and falls back to a readable ID.
func titleOf(id, ext string, data []byte) string {
	if formats.Name(ext) == "yaml" {
		if t := formats.YAMLTitle(data); t != "" {
			return t
		}
	}
	return strings.NewReplacer("-", " ", "_", " ").Replace(id)
}
