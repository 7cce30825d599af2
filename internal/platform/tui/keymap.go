package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-jumper/internal/core"
)

// DefaultKeyHold is how long a direction stays held after its last key
// repeat when the config does not say otherwise.
const DefaultKeyHold = 180 * time.Millisecond

// GameKeyMap defines the key bindings while a game runs.
type GameKeyMap struct {
	Up         key.Binding
	Left       key.Binding
	Right      key.Binding
	Pause      key.Binding
	Restart    key.Binding
	Back       key.Binding
	Screenshot key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Left, k.Right, k.Pause, k.Restart, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Left, k.Right},
		{k.Pause, k.Restart, k.Back, k.Screenshot, k.Quit},
	}
}

// DefaultGameKeyMap returns default key bindings.
func DefaultGameKeyMap() GameKeyMap {
	return GameKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w", " "),
			key.WithHelp("up/w/space", "jump"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("left/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("right/d", "right"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p/esc", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Back: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "menu"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// KeyMapper translates Bubble Tea key messages to directions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	keys GameKeyMap
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{keys: DefaultGameKeyMap()}
}

// Keys returns the bindings the mapper uses.
func (km *KeyMapper) Keys() GameKeyMap {
	return km.keys
}

// Direction maps a key to a movement direction.
func (km *KeyMapper) Direction(msg tea.KeyMsg) (core.Direction, bool) {
	switch {
	case key.Matches(msg, km.keys.Up):
		return core.DirUp, true
	case key.Matches(msg, km.keys.Left):
		return core.DirLeft, true
	case key.Matches(msg, km.keys.Right):
		return core.DirRight, true
	}
	return core.DirNone, false
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}

	return MenuActionNone
}

// HoldTracker emulates key release for terminals, which only report
// presses and auto-repeats. A direction counts as held until no repeat has
// arrived for the hold duration.
type HoldTracker struct {
	hold     time.Duration
	lastSeen map[core.Direction]time.Time
}

// NewHoldTracker creates a tracker. Non-positive hold uses DefaultKeyHold.
func NewHoldTracker(hold time.Duration) *HoldTracker {
	if hold <= 0 {
		hold = DefaultKeyHold
	}
	return &HoldTracker{hold: hold, lastSeen: make(map[core.Direction]time.Time)}
}

// Press records a press or repeat at now. It returns true when the
// direction was not already held, i.e. when a key-down should be sent.
func (h *HoldTracker) Press(dir core.Direction, now time.Time) bool {
	_, held := h.lastSeen[dir]
	h.lastSeen[dir] = now
	return !held
}

// Expire releases directions not seen for the hold duration and returns
// them in a stable order.
func (h *HoldTracker) Expire(now time.Time) []core.Direction {
	var released []core.Direction
	for _, dir := range []core.Direction{core.DirUp, core.DirLeft, core.DirRight} {
		seen, ok := h.lastSeen[dir]
		if ok && now.Sub(seen) >= h.hold {
			delete(h.lastSeen, dir)
			released = append(released, dir)
		}
	}
	return released
}

// ReleaseAll forgets every held direction and returns them.
func (h *HoldTracker) ReleaseAll() []core.Direction {
	var released []core.Direction
	for _, dir := range []core.Direction{core.DirUp, core.DirLeft, core.DirRight} {
		if _, ok := h.lastSeen[dir]; ok {
			released = append(released, dir)
		}
	}
	clear(h.lastSeen)
	return released
}

// Held reports whether dir is currently held.
func (h *HoldTracker) Held(dir core.Direction) bool {
	_, ok := h.lastSeen[dir]
	return ok
}
