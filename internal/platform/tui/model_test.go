package tui

import (
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-jumper/internal/core"
	"github.com/vovakirdan/tui-jumper/internal/engine"
	"github.com/vovakirdan/tui-jumper/internal/games/jumper"
	"github.com/vovakirdan/tui-jumper/internal/registry"
	"github.com/vovakirdan/tui-jumper/internal/storage"
)

// scriptedGame ends with a fixed score once told to.
type scriptedGame struct {
	state core.GameState
}

func (g *scriptedGame) ID() string    { return "scripted" }
func (g *scriptedGame) Title() string { return "Scripted" }

func (g *scriptedGame) Configure(core.RuntimeConfig) ([]engine.Option, error) { return nil, nil }

func (g *scriptedGame) Setup(*engine.Engine, registry.Env) error {
	g.state = core.GameState{}
	return nil
}

func (g *scriptedGame) State() core.GameState { return g.state }

type wallClock struct{ now time.Time }

func (c *wallClock) Now() time.Time { return c.now }

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	require.True(t, ok)
	return nm, cmd
}

func newJumperModel(t *testing.T) (Model, *wallClock) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	clock := &wallClock{now: time.Unix(1000, 0)}
	cfg := core.RuntimeConfig{ScreenW: 40, ScreenH: 20, TickRate: 60, Seed: 3}
	m, err := NewModel(jumper.New(), cfg, Options{Now: clock.Now})
	require.NoError(t, err)
	t.Cleanup(m.Close)
	m.Init()
	return m, clock
}

func TestModelKeysHoldAndRelease(t *testing.T) {
	m, clock := newJumperModel(t)
	player := m.Session().Game().(*jumper.Game).Player()

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	assert.True(t, player.Holding(core.DirRight))

	clock.now = clock.now.Add(100 * time.Millisecond)
	m, _ = update(t, m, FrameMsg(clock.now))
	assert.True(t, player.Holding(core.DirRight), "still inside the hold window")

	clock.now = clock.now.Add(time.Second)
	_, cmd := update(t, m, FrameMsg(clock.now))
	assert.False(t, player.Holding(core.DirRight), "released after the hold window")
	assert.NotNil(t, cmd, "frames keep ticking")
}

func TestModelPauseDrawsOverlay(t *testing.T) {
	m, _ := newJumperModel(t)

	m, _ = update(t, m, runeKey('p'))
	assert.True(t, m.Session().State().Paused)
	assert.Contains(t, m.Session().Screen().String(), "PAUSED")
	assert.False(t, m.Session().Engine().Running())

	m, _ = update(t, m, runeKey('p'))
	assert.False(t, m.Session().State().Paused)
	assert.True(t, m.Session().Engine().Running())
}

func TestModelQuit(t *testing.T) {
	m, _ := newJumperModel(t)

	m, cmd := update(t, m, runeKey('q'))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
	assert.True(t, m.IsQuitting())
	assert.Empty(t, m.View())
}

func TestModelBackOnlyWhenEmbedded(t *testing.T) {
	m, _ := newJumperModel(t)
	m, _ = update(t, m, runeKey('p'))
	m, _ = update(t, m, runeKey('b'))
	assert.False(t, m.BackToMenu())

	m.embedded = true
	m, _ = update(t, m, runeKey('b'))
	assert.True(t, m.BackToMenu())
}

func TestModelSavesScoreOnce(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	require.NoError(t, err)
	defer store.Close()

	game := &scriptedGame{}
	cfg := core.RuntimeConfig{ScreenW: 10, ScreenH: 5, TickRate: 60, Seed: 1}
	m, err := NewModel(game, cfg, Options{Store: store, Player: "ada"})
	require.NoError(t, err)
	defer m.Close()
	m.Init()

	game.state = core.GameState{Score: 42, GameOver: true}
	ts := time.Unix(0, 0)
	m, _ = update(t, m, FrameMsg(ts))
	m, _ = update(t, m, FrameMsg(ts.Add(time.Second)))

	scores, err := store.TopScores("scripted", 10)
	require.NoError(t, err)
	require.Len(t, scores, 1)
	assert.Equal(t, 42, scores[0].Score)
	assert.Equal(t, "ada", scores[0].Player)

	// Restart is allowed once the run is over and re-arms saving.
	m, _ = update(t, m, runeKey('r'))
	assert.False(t, m.scoreSaved)
	assert.False(t, m.Session().State().GameOver)
}

func TestModelClickReachesPlayer(t *testing.T) {
	m, _ := newJumperModel(t)
	player := m.Session().Game().(*jumper.Game).Player()

	update(t, m, tea.MouseMsg{X: 5, Y: 7, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})

	offset := m.Session().Engine().GameOffset
	assert.InDelta(t, 5-offset.X, player.Pos.X, 1e-9)
	assert.InDelta(t, 7-offset.Y, player.Pos.Y, 1e-9)
}
