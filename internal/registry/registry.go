// Package registry connects the simulation to its presentation backends.
// Backends register themselves in init() functions, so the CLI can list and
// select them without importing each one by name.
package registry

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/block-breaker/internal/core"
)

// Game is the contract a backend drives. It is pure logic: the backend
// handles input sampling, pacing and display.
type Game interface {
	// ID returns a short identifier used for logging (e.g. "breaker").
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Step advances the simulation by one fixed tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into dst.
	Render(dst *core.Screen)

	// State returns score, lives and outcome.
	State() core.GameState
}

// RunOptions carries what a backend needs besides the game itself.
type RunOptions struct {
	TickRate      int     // Ticks per second
	ViewportWidth float64 // Logical canvas width, for pointer mapping
	Logger        *log.Logger
}

// Backend presents a game and feeds it input until the run ends.
type Backend interface {
	// ID returns the identifier used by --backend.
	ID() string

	// Title returns a one-line description.
	Title() string

	// Run blocks until the game reports a terminal outcome, the user quits
	// or ctx is cancelled.
	Run(ctx context.Context, g Game, opts RunOptions) error
}

// BackendInfo contains metadata about a registered backend.
type BackendInfo struct {
	ID    string
	Title string
}

// Factory creates a backend instance.
type Factory func() Backend

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a backend factory. Panics on a duplicate ID.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: backend %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title()
}

// List returns all registered backends sorted by ID.
func List() []BackendInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]BackendInfo, 0, len(factories))
	for id := range factories {
		result = append(result, BackendInfo{ID: id, Title: titles[id]})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a backend by ID.
func Create(id string) (Backend, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown backend %q", id)
	}

	return f(), nil
}

// Exists reports whether a backend with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
