// Package registry provides a global registry for course views.
// Views register themselves in init() functions, so the terminal UI and CLI
// can discover renderers without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/space-course/internal/core"
	"github.com/vovakirdan/space-course/internal/course"
)

// View draws a course snapshot into a character screen.
// Views hold no simulation state; everything they draw comes from the snapshot.
type View interface {
	// ID returns a unique identifier used by the --view flag (e.g., "chase").
	ID() string

	// Title returns a human-readable name for the HUD.
	Title() string

	// Render draws the snapshot into dst. The screen is pre-cleared.
	Render(r course.FrameResult, dst *core.Screen)
}

// ViewInfo contains metadata about a registered view.
type ViewInfo struct {
	ID    string
	Title string
}

// Factory creates a new instance of a view.
type Factory func() View

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a view factory to the registry.
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

// List returns all registered views, sorted by ID.
func List() []ViewInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]ViewInfo, 0, len(factories))
	for id := range factories {
		result = append(result, ViewInfo{ID: id, Title: titles[id]})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Create instantiates a view by its ID.
func Create(id string) (View, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown view %q", id)
	}
	return f(), nil
}

// Exists reports whether a view with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}

// Next returns the ID following id in List order, wrapping around.
// An unknown id yields the first view.
func Next(id string) string {
	views := List()
	if len(views) == 0 {
		return ""
	}
	for i, v := range views {
		if v.ID == id {
			return views[(i+1)%len(views)].ID
		}
	}
	return views[0].ID
}
