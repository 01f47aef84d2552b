// Package registry provides a global registry of board frontends.
// Frontends register themselves in init() functions, so the CLI can list and
// start them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/bigboard/internal/board"
	"github.com/vovakirdan/bigboard/internal/core"
)

// RunOptions carries everything a frontend needs besides the board state.
type RunOptions struct {
	// Title is the window or header title.
	Title string

	// Runtime holds the terminal size and frame rate.
	Runtime core.RuntimeConfig

	// ScreenshotDir is where Ctrl+S screenshots are written.
	ScreenshotDir string

	// Logger receives frontend diagnostics. Never nil.
	Logger *log.Logger
}

// Frontend drives a board: it owns the event loop, translates input into
// board callbacks and renders the state every frame.
type Frontend interface {
	// ID returns a unique identifier (e.g. "window", "terminal").
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Run blocks until the user quits or the framework reports an error.
	// The state is owned by the frontend for the duration of the call.
	Run(s *board.State, opts RunOptions) error
}

// FrontendInfo contains metadata about a registered frontend.
type FrontendInfo struct {
	ID    string
	Title string
}

// Factory creates a new frontend instance.
type Factory func() Frontend

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a frontend factory to the registry.
// Panics if a frontend with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: frontend %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title()
}

// List returns information about all registered frontends, sorted by ID.
func List() []FrontendInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]FrontendInfo, 0, len(factories))
	for id := range factories {
		result = append(result, FrontendInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a frontend by its ID.
func Create(id string) (Frontend, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown frontend %q", id)
	}

	return f(), nil
}

// Exists checks if a frontend with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
