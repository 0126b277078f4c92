// Package registry provides a global registry for view factories.
// Views register themselves in init() functions, allowing the CLI
// to discover and run views without hardcoded dependencies.
package registry

import (
	"fmt"
	"io"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-animator/internal/anim"
)

// Options carries the rendering knobs shared by all views.
// A view ignores the options it has no use for.
type Options struct {
	TicksPerSecond int // Playback speed for timed output
	Tick           int // Single frame to render; -1 means every frame
	Width, Height  int // Output size in cells, 0 means derived from the canvas
	Shade          bool
	Title          string
}

// DefaultOptions returns Options for rendering every frame at 20 ticks per second.
func DefaultOptions() Options {
	return Options{TicksPerSecond: 20, Tick: -1}
}

// View turns a model into some output format.
// Views read the model and never modify it.
type View interface {
	// ID returns a unique identifier for this view (e.g., "svg", "text").
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Render writes the model to w.
	Render(w io.Writer, m *anim.Model, opts Options) error
}

// ViewInfo contains metadata about a registered view.
type ViewInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new instance of a view.
type Factory func() View

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a view factory to the registry.
// Typically called from a view's init() function.
// Panics if a view with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: view %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title()
}

// List returns information about all registered views, sorted by ID.
func List() []ViewInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]ViewInfo, 0, len(factories))
	for id := range factories {
		result = append(result, ViewInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new view by its ID.
// Returns an error if the view ID is not registered.
func Create(id string) (View, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown view %q", id)
	}

	return f(), nil
}

// Exists checks if a view with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
