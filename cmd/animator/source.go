package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/vovakirdan/tui-animator/internal/anim"
	"github.com/vovakirdan/tui-animator/internal/library"
	"github.com/vovakirdan/tui-animator/internal/storage"
)

// source is an animation resolved from the command line.
type source struct {
	Name  string
	Title string
	Model *anim.Model
}

// resolve loads arg as a file when one exists at that path and otherwise
// looks it up in the catalog at dbPath.
func resolve(arg, dbPath string) (source, error) {
	if _, err := os.Stat(arg); err == nil {
		e, err := library.NewLoader(filepath.Dir(arg), nil).LoadFile(arg)
		if err != nil {
			return source{}, err
		}
		return source{Name: e.ID, Title: e.Title, Model: e.Model}, nil
	}

	store, err := storage.Open(dbPath)
	if err != nil {
		return source{}, fmt.Errorf("no file %q and could not open catalog: %w", arg, err)
	}
	defer store.Close()

	a, err := store.GetAnimation(arg)
	if errors.Is(err, storage.ErrNotFound) {
		return source{}, fmt.Errorf("no file or catalog entry named %q", arg)
	}
	if err != nil {
		return source{}, err
	}
	m, err := a.Model()
	if err != nil {
		return source{}, fmt.Errorf("catalog entry %q: %w", arg, err)
	}
	return source{Name: a.Name, Title: a.Title, Model: m}, nil
}
