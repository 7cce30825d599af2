package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-jumper/internal/config"
	"github.com/vovakirdan/tui-jumper/internal/core"
	"github.com/vovakirdan/tui-jumper/internal/input"
	"github.com/vovakirdan/tui-jumper/internal/registry"
	"github.com/vovakirdan/tui-jumper/internal/session"
	"github.com/vovakirdan/tui-jumper/internal/storage"
)

// Options configures a game Model.
type Options struct {
	Store       *storage.Store // Optional; scores are not saved without it
	Logger      *log.Logger
	Player      string
	WatchConfig bool // Reload the game's config file when it changes
	Embedded    bool // Allow going back to a menu instead of quitting

	// Now is the wall clock used for key hold timing. Defaults to time.Now.
	Now func() time.Time
}

// Model is the Bubble Tea model for running one game.
type Model struct {
	session  *session.Session
	store    *storage.Store
	logger   *log.Logger
	watcher  *config.Watcher
	keys     *KeyMapper
	hold     *HoldTracker
	now      func() time.Time
	player   string
	rate     int
	embedded bool

	quitting   bool
	backToMenu bool
	scoreSaved bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) (Model, error) {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = opts.Now().UnixNano()
	}

	best := 0
	if opts.Store != nil {
		if hs, err := opts.Store.HighScore(game.ID()); err == nil {
			best = hs
		} else {
			opts.Logger.Warn("could not read high score", "game", game.ID(), "error", err)
		}
	}

	sess, err := session.New(game, cfg, session.Options{
		Logger:    opts.Logger,
		HighScore: best,
		Player:    opts.Player,
	})
	if err != nil {
		return Model{}, err
	}

	var hold time.Duration
	if kh, ok := game.(registry.KeyHolder); ok {
		hold = kh.KeyHold()
	}

	m := Model{
		session:  sess,
		store:    opts.Store,
		logger:   opts.Logger,
		keys:     NewKeyMapper(),
		hold:     NewHoldTracker(hold),
		now:      opts.Now,
		player:   opts.Player,
		rate:     cfg.TickRate,
		embedded: opts.Embedded,
	}

	if opts.WatchConfig {
		m.watcher = m.startWatcher(game)
	}
	return m, nil
}

func (m Model) startWatcher(game registry.Game) *config.Watcher {
	r, ok := game.(registry.Reloader)
	if !ok || r.ConfigPath() == "" {
		m.logger.Warn("no config file to watch", "game", game.ID())
		return nil
	}
	w, err := config.NewWatcher(r.ConfigPath())
	if err != nil {
		m.logger.Warn("config watch disabled", "error", err)
		return nil
	}
	m.logger.Info("watching config", "path", w.Path())
	return w
}

// Init starts the engine and the frame loop.
func (m Model) Init() tea.Cmd {
	m.session.Start()
	return tea.Batch(frameCmd(m.rate), waitForReload(m.watcher))
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			m.session.Publish(input.Event{Kind: input.Click, X: float64(msg.X), Y: float64(msg.Y)})
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.session.Resize(msg.Width, msg.Height)
		return m, nil

	case FrameMsg:
		return m.handleFrame(time.Time(msg))

	case reloadMsg:
		return m.handleReload(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.keys.Keys()
	state := m.session.State()

	switch {
	case key.Matches(msg, keys.Quit):
		m.quitting = true
		m.Close()
		return m, tea.Quit

	case key.Matches(msg, keys.Screenshot):
		m.saveScreenshot()
		return m, nil

	case key.Matches(msg, keys.Back):
		if m.embedded && (state.GameOver || state.Paused) {
			m.backToMenu = true
			m.Close()
		}
		return m, nil

	case key.Matches(msg, keys.Pause):
		m.releaseKeys(m.hold.ReleaseAll())
		m.session.TogglePause()
		if m.session.State().Paused {
			m.drawPaused()
		}
		return m, nil

	case key.Matches(msg, keys.Restart):
		if state.GameOver {
			m.restart()
		}
		return m, nil
	}

	if dir, ok := m.keys.Direction(msg); ok {
		if m.hold.Press(dir, m.now()) {
			m.session.Publish(input.Event{Kind: input.KeyDown, Direction: dir})
		}
	}
	return m, nil
}

// handleFrame releases expired keys, fires the engine and saves the score
// once per finished run.
func (m Model) handleFrame(ts time.Time) (tea.Model, tea.Cmd) {
	if m.quitting || m.backToMenu {
		return m, nil
	}

	m.releaseKeys(m.hold.Expire(m.now()))
	m.session.Frame(ts)

	if st := m.session.State(); st.GameOver && !m.scoreSaved {
		m.saveScore(st.Score)
		m.scoreSaved = true
	}

	return m, frameCmd(m.rate)
}

func (m Model) handleReload(msg reloadMsg) (tea.Model, tea.Cmd) {
	if r, ok := m.session.Game().(registry.Reloader); ok {
		if err := r.Reload(); err != nil {
			m.logger.Error("config reload failed", "path", msg.path, "error", err)
		} else {
			m.logger.Info("config reloaded", "path", msg.path)
		}
	}
	return m, waitForReload(m.watcher)
}

func (m Model) releaseKeys(dirs []core.Direction) {
	for _, dir := range dirs {
		m.session.Publish(input.Event{Kind: input.KeyUp, Direction: dir})
	}
}

func (m *Model) restart() {
	m.releaseKeys(m.hold.ReleaseAll())
	if err := m.session.Restart(m.now().UnixNano()); err != nil {
		m.logger.Error("restart failed", "error", err)
		return
	}
	m.scoreSaved = false
}

func (m Model) saveScore(score int) {
	if m.store == nil || score <= 0 {
		return
	}
	id := m.session.Game().ID()
	if _, err := m.store.SaveScore(id, m.player, score); err != nil {
		m.logger.Error("could not save score", "game", id, "error", err)
		return
	}
	m.logger.Info("score saved", "game", id, "player", m.player, "score", score)
}

func (m Model) drawPaused() {
	screen := m.session.Screen()
	screen.DrawTextCentered(screen.Height()/2, " PAUSED ", core.ColorBrightYellow)
	screen.DrawTextCentered(screen.Height()/2+1, " p: resume  q: quit ", core.ColorGray)
}

// saveScreenshot saves the current screen to a file.
func (m Model) saveScreenshot() {
	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".jumper", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not create screenshot directory", "error", err)
		return
	}

	timestamp := m.now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.session.Game().ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.session.Screen().String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}
	return RenderScreen(m.session.Screen())
}

// Close stops the engine and the config watcher.
func (m Model) Close() {
	if m.watcher != nil {
		if err := m.watcher.Close(); err != nil {
			m.logger.Warn("closing config watcher", "error", err)
		}
	}
	m.session.Close()
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Session returns the running session.
func (m Model) Session() *session.Session {
	return m.session
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	model, err := NewModel(game, cfg, opts)
	if err != nil {
		return err
	}
	defer model.Close()

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Clicks move the player
	)

	_, err = p.Run()
	return err
}
