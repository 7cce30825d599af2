package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/tui-jumper/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyMapperDirection(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Direction
		ok   bool
	}{
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.DirUp, true},
		{"w", runeKey('w'), core.DirUp, true},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.DirUp, true},
		{"arrow left", tea.KeyMsg{Type: tea.KeyLeft}, core.DirLeft, true},
		{"a", runeKey('a'), core.DirLeft, true},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, core.DirRight, true},
		{"d", runeKey('d'), core.DirRight, true},
		{"unbound", runeKey('x'), core.DirNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir, ok := km.Direction(tt.msg)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, dir)
		})
	}
}

func TestMenuActions(t *testing.T) {
	km := NewKeyMapper()

	assert.Equal(t, MenuActionUp, km.MapKeyToMenuAction(runeKey('k')))
	assert.Equal(t, MenuActionDown, km.MapKeyToMenuAction(tea.KeyMsg{Type: tea.KeyDown}))
	assert.Equal(t, MenuActionSelect, km.MapKeyToMenuAction(tea.KeyMsg{Type: tea.KeyEnter}))
	assert.Equal(t, MenuActionScoreboard, km.MapKeyToMenuAction(tea.KeyMsg{Type: tea.KeyTab}))
	assert.Equal(t, MenuActionBack, km.MapKeyToMenuAction(tea.KeyMsg{Type: tea.KeyEsc}))
	assert.Equal(t, MenuActionQuit, km.MapKeyToMenuAction(runeKey('q')))
	assert.Equal(t, MenuActionNone, km.MapKeyToMenuAction(runeKey('z')))
}

func TestHoldTrackerPressAndRepeat(t *testing.T) {
	h := NewHoldTracker(100 * time.Millisecond)
	t0 := time.Unix(0, 0)

	assert.True(t, h.Press(core.DirLeft, t0), "first press sends key-down")
	assert.False(t, h.Press(core.DirLeft, t0.Add(50*time.Millisecond)), "repeats do not")
	assert.True(t, h.Held(core.DirLeft))

	// The repeat at 50ms keeps the key held past 100ms.
	assert.Empty(t, h.Expire(t0.Add(120*time.Millisecond)))
	assert.Equal(t, []core.Direction{core.DirLeft}, h.Expire(t0.Add(150*time.Millisecond)))
	assert.False(t, h.Held(core.DirLeft))

	assert.True(t, h.Press(core.DirLeft, t0.Add(200*time.Millisecond)), "pressed again after release")
}

func TestHoldTrackerExpireOrder(t *testing.T) {
	h := NewHoldTracker(10 * time.Millisecond)
	t0 := time.Unix(0, 0)

	h.Press(core.DirRight, t0)
	h.Press(core.DirUp, t0)
	h.Press(core.DirLeft, t0)

	got := h.Expire(t0.Add(time.Second))
	assert.Equal(t, []core.Direction{core.DirUp, core.DirLeft, core.DirRight}, got)
}

func TestHoldTrackerReleaseAll(t *testing.T) {
	h := NewHoldTracker(0)
	t0 := time.Unix(0, 0)

	h.Press(core.DirRight, t0)
	h.Press(core.DirUp, t0)

	assert.Equal(t, []core.Direction{core.DirUp, core.DirRight}, h.ReleaseAll())
	assert.False(t, h.Held(core.DirUp))
	assert.Empty(t, h.ReleaseAll())

	// Zero hold falls back to the default.
	h.Press(core.DirLeft, t0)
	assert.Empty(t, h.Expire(t0.Add(DefaultKeyHold-time.Millisecond)))
	assert.Len(t, h.Expire(t0.Add(DefaultKeyHold)), 1)
}
