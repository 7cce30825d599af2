package tui

import (
	"io"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-jumper/internal/core"
	"github.com/vovakirdan/tui-jumper/internal/games/jumper"
	"github.com/vovakirdan/tui-jumper/internal/storage"
)

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func pressMenu(t *testing.T, m MenuModel, msg tea.KeyMsg) MenuModel {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(MenuModel)
	require.True(t, ok)
	return nm
}

func TestMenuShowsStoredBest(t *testing.T) {
	store := openStore(t)
	_, err := store.SaveScore(jumper.ID, "ada", 17)
	require.NoError(t, err)

	m := NewMenuModel(store, core.DefaultConfig())

	var item *MenuItem
	for i := range m.Items() {
		if m.Items()[i].GameID == jumper.ID {
			item = &m.Items()[i]
		}
	}
	require.NotNil(t, item)
	assert.Equal(t, 17, item.Best)
	assert.Equal(t, 1, item.Played)
	assert.Contains(t, m.View(), "(best 17)")
}

func TestMenuSelectAndScoreboard(t *testing.T) {
	m := NewMenuModel(nil, core.DefaultConfig())

	sel := pressMenu(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, sel.Selected())
	assert.Equal(t, m.Items()[0].GameID, sel.Selected().GameID)

	sb := pressMenu(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.True(t, sb.WantsScoreboard())

	q := pressMenu(t, m, runeKey('q'))
	assert.True(t, q.IsQuitting())
}

func TestMenuTracksResize(t *testing.T) {
	m := NewMenuModel(nil, core.DefaultConfig())
	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	cfg := next.(MenuModel).Config()
	assert.Equal(t, 120, cfg.ScreenW)
	assert.Equal(t, 40, cfg.ScreenH)
}

func TestScoreboardListsRuns(t *testing.T) {
	store := openStore(t)
	_, err := store.SaveScore(jumper.ID, "ada", 30)
	require.NoError(t, err)
	_, err = store.SaveScore(jumper.ID, "", 12)
	require.NoError(t, err)

	sb := NewScoreboardModel(store, 100, 30)
	for sb.Selected() != jumper.ID {
		next, _ := sb.Update(tea.KeyMsg{Type: tea.KeyTab})
		sb = next.(ScoreboardModel)
	}

	view := sb.View()
	assert.Contains(t, view, "HIGH SCORES")
	assert.Contains(t, view, "ada")
	assert.Contains(t, view, "2 runs")

	next, _ := sb.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.True(t, next.(ScoreboardModel).IsGoingBack())
}

func TestScoreboardWithoutStore(t *testing.T) {
	sb := NewScoreboardModel(nil, 60, 20)
	assert.Contains(t, sb.View(), "No scores recorded yet.")
}

func updateSession(t *testing.T, m SessionModel, msg tea.Msg) SessionModel {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(SessionModel)
	require.True(t, ok)
	return nm
}

func TestSessionModelFlow(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg := core.RuntimeConfig{ScreenW: 60, ScreenH: 20, TickRate: 60}
	m := NewSessionModel(nil, cfg, "ada", log.New(io.Discard))

	// Pick the jumper from the menu.
	for m.menu.cursor < len(m.menu.Items()) && m.menu.Items()[m.menu.cursor].GameID != jumper.ID {
		m = updateSession(t, m, tea.KeyMsg{Type: tea.KeyDown})
	}
	m = updateSession(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.True(t, m.InGame())
	assert.Equal(t, jumper.ID, m.game.Session().Game().ID())

	// Pause, then back to the menu.
	m = updateSession(t, m, runeKey('p'))
	m = updateSession(t, m, runeKey('b'))
	assert.False(t, m.InGame())
	assert.Contains(t, m.View(), "J U M P E R")

	// Scoreboard and back.
	m = updateSession(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Contains(t, m.View(), "HIGH SCORES")
	m = updateSession(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Contains(t, m.View(), "J U M P E R")

	next, cmd := m.Update(runeKey('q'))
	assert.Empty(t, next.(SessionModel).View())
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}
