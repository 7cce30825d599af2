// Package registry provides a global registry for game factories.
// Games register themselves in init() functions, allowing the platform
// to discover and instantiate games without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/vovakirdan/tui-jumper/internal/core"
	"github.com/vovakirdan/tui-jumper/internal/engine"
)

// Env is what a game may know about its host when it sets up.
type Env struct {
	Config    core.RuntimeConfig
	HighScore int    // Best stored score for this game
	Player    string // Player name, empty when unknown
}

// Game is the interface every game implements. Games build entities on an
// engine; the platform owns the engine, the frame clock and the screen.
type Game interface {
	// ID returns a unique identifier for this game (e.g., "jumper").
	// Used for CLI commands and score storage.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Configure loads the game's settings for the coming run and returns
	// the engine options it wants. Called before every engine is built.
	Configure(cfg core.RuntimeConfig) ([]engine.Option, error)

	// Setup adds the game's entities and tick callbacks to a freshly built
	// engine. Called once at start and again on restart, each time with a
	// new engine.
	Setup(eng *engine.Engine, env Env) error

	// State returns the current game state.
	State() core.GameState
}

// Reloader is implemented by games whose settings can change while running.
type Reloader interface {
	// ConfigPath returns the file settings were loaded from, or "" when
	// they came from built-in defaults.
	ConfigPath() string

	// Reload re-reads settings and applies them to the running game.
	Reload() error
}

// KeyHolder is implemented by games that tune how long a terminal key
// stays held after its last repeat.
type KeyHolder interface {
	KeyHold() time.Duration
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new instance of a game.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a game factory to the registry.
// Typically called from a game's init() function.
// Panics if a game with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f

	// Get title by creating a temporary instance
	titles[id] = f().Title()
}

// List returns information about all registered games, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new game by its ID.
// Returns an error if the game ID is not registered.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}

	return f(), nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
