// Package session runs one game on one screen: it owns the engine, the
// frame scheduler and the input bus, and rebuilds the engine on restart.
// Hosts (the terminal UI, the SSH server, headless simulation) drive it by
// firing frames and publishing input.
package session

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-jumper/internal/core"
	"github.com/vovakirdan/tui-jumper/internal/engine"
	"github.com/vovakirdan/tui-jumper/internal/input"
	"github.com/vovakirdan/tui-jumper/internal/registry"
)

// Options configures a Session.
type Options struct {
	Clock     engine.Clock // Defaults to the system clock
	Logger    *log.Logger  // Defaults to discarding
	HighScore int
	Player    string
}

// Session is one game instance bound to a screen.
type Session struct {
	game   registry.Game
	config core.RuntimeConfig
	opts   Options

	screen    *core.Screen
	bus       *input.Bus
	scheduler *engine.QueueScheduler
	engine    *engine.Engine

	paused   bool
	finished bool // game over has been observed
	best     int
}

// New builds a session and sets the game up on a fresh engine. The engine
// is not started; call Start.
func New(game registry.Game, cfg core.RuntimeConfig, opts Options) (*Session, error) {
	if opts.Clock == nil {
		opts.Clock = engine.SystemClock{}
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if cfg.ScreenW <= 0 || cfg.ScreenH <= 0 {
		def := core.DefaultConfig()
		cfg.ScreenW, cfg.ScreenH = def.ScreenW, def.ScreenH
	}

	s := &Session{
		game:      game,
		config:    cfg,
		opts:      opts,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		bus:       input.NewBus(),
		scheduler: engine.NewQueueScheduler(opts.Clock),
		best:      opts.HighScore,
	}
	if err := s.build(); err != nil {
		return nil, err
	}
	return s, nil
}

// build creates a new engine and lets the game populate it.
func (s *Session) build() error {
	gameOpts, err := s.game.Configure(s.config)
	if err != nil {
		return fmt.Errorf("session: configure %s: %w", s.game.ID(), err)
	}

	opts := append([]engine.Option{
		engine.WithScheduler(s.scheduler),
		engine.WithInput(s.bus),
		engine.WithLogger(s.opts.Logger.With("game", s.game.ID())),
	}, gameOpts...)

	eng, err := engine.New(s.screen, opts...)
	if err != nil {
		return fmt.Errorf("session: %w", err)
	}

	env := registry.Env{
		Config:    s.config,
		HighScore: s.best,
		Player:    s.opts.Player,
	}
	if err := s.game.Setup(eng, env); err != nil {
		eng.Clear()
		return fmt.Errorf("session: setup %s: %w", s.game.ID(), err)
	}

	s.engine = eng
	s.paused = false
	s.finished = false
	return nil
}

// Start runs the engine.
func (s *Session) Start() {
	s.engine.Start()
}

// Restart tears the current engine down, destroying its entities, and sets
// the game up again on a new one with a new seed.
func (s *Session) Restart(seed int64) error {
	s.teardown()
	s.config.Seed = seed
	if err := s.build(); err != nil {
		return err
	}
	s.engine.Start()
	return nil
}

func (s *Session) teardown() {
	if s.engine == nil {
		return
	}
	s.engine.Stop()
	s.engine.Clear()
}

// Close stops the engine and destroys its entities.
func (s *Session) Close() {
	s.teardown()
}

// Frame fires pending frames with timestamp ts and returns how many ran.
func (s *Session) Frame(ts time.Time) int {
	n := s.scheduler.Fire(ts)
	if st := s.game.State(); st.GameOver && !s.finished {
		s.finished = true
		s.best = max(s.best, st.Score)
	}
	return n
}

// Active reports whether the engine wants more frames.
func (s *Session) Active() bool {
	return s.scheduler.Pending() > 0
}

// TogglePause stops or restarts the engine. Finished games stay stopped.
func (s *Session) TogglePause() {
	if s.finished || s.game.State().GameOver {
		return
	}
	if s.paused {
		s.paused = false
		s.engine.Start()
		return
	}
	s.paused = true
	s.engine.Stop()
}

// Resize changes the screen size. The engine's context reads the new size
// on the next frame.
func (s *Session) Resize(w, h int) {
	s.config.ScreenW, s.config.ScreenH = w, h
	s.screen.Resize(w, h)
}

// Publish forwards an input event to subscribed entities.
func (s *Session) Publish(ev input.Event) {
	s.bus.Publish(ev)
}

// State returns the game's state with the session's pause flag and best
// score folded in.
func (s *Session) State() core.GameState {
	st := s.game.State()
	st.Paused = s.paused
	st.HighScore = max(s.best, st.HighScore)
	return st
}

// Game returns the running game.
func (s *Session) Game() registry.Game { return s.game }

// Screen returns the screen the engine draws into.
func (s *Session) Screen() *core.Screen { return s.screen }

// Engine returns the current engine. It changes on Restart.
func (s *Session) Engine() *engine.Engine { return s.engine }

// Input returns the session's event bus.
func (s *Session) Input() *input.Bus { return s.bus }

// Config returns the current runtime config.
func (s *Session) Config() core.RuntimeConfig { return s.config }
