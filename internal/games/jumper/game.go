// Package jumper implements a vertical platform jumper. The player bounces
// up an endless column of platforms; the camera follows when the player
// climbs above a line near the top of the screen, and the score is how far
// the camera has risen.
package jumper

import (
	"fmt"
	"math"
	"time"

	"github.com/vovakirdan/tui-jumper/internal/config"
	"github.com/vovakirdan/tui-jumper/internal/core"
	"github.com/vovakirdan/tui-jumper/internal/engine"
	"github.com/vovakirdan/tui-jumper/internal/registry"
)

// ID is the registry id of the game.
const ID = "jumper"

func init() {
	registry.Register(ID, func() registry.Game { return New() })
}

// Game wires the jumper entities and tick callbacks into an engine.
type Game struct {
	cfg    config.JumperConfig
	path   string
	custom string
	preset config.DifficultyPreset
	diff   *config.DifficultyManager
	debug  bool

	eng       *engine.Engine
	player    *Player
	header    *Header
	wallpaper *Wallpaper
	spawner   *Spawner

	score    int
	best     int
	gameOver bool
}

// New creates a jumper with default settings.
func New() *Game {
	cfg := config.DefaultJumperConfig()
	return &Game{
		cfg:  cfg,
		diff: config.NewDifficultyManager(cfg.Difficulty),
	}
}

func (g *Game) ID() string    { return ID }
func (g *Game) Title() string { return "Jumper" }

// Configure loads settings from the config search path and the difficulty
// preset, and returns the engine options they imply.
func (g *Game) Configure(rc core.RuntimeConfig) ([]engine.Option, error) {
	preset, ok := config.ParsePreset(rc.Difficulty)
	if !ok {
		return nil, fmt.Errorf("jumper: unknown difficulty %q", rc.Difficulty)
	}
	cfg, err := config.LoadJumper(rc.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("jumper: %w", err)
	}
	config.ApplyJumperPreset(&cfg, preset)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("jumper: %w", err)
	}

	g.cfg = cfg
	g.custom = rc.ConfigPath
	g.path = config.ResolveJumperPath(rc.ConfigPath)
	g.preset = preset
	g.diff = config.NewDifficultyManager(cfg.Difficulty)
	g.debug = rc.Debug

	return g.engineOptions(), nil
}

func (g *Game) engineOptions() []engine.Option {
	opts := []engine.Option{
		engine.WithTargetFPS(g.cfg.Engine.TargetFPS),
		engine.WithMaxDeltaFrames(g.cfg.Engine.MaxDeltaFrames),
	}
	if g.cfg.Engine.FaultIsolation {
		opts = append(opts, engine.WithFaultIsolation())
	}
	return opts
}

// Setup populates eng: wallpaper first so it draws underneath, then the
// platforms, the player and the header on top.
func (g *Game) Setup(eng *engine.Engine, env registry.Env) error {
	if eng.Width() <= 0 || eng.Height() <= 0 {
		return fmt.Errorf("jumper: screen too small")
	}

	g.eng = eng
	g.score = 0
	g.gameOver = false
	g.best = env.HighScore

	g.wallpaper = NewWallpaper(g.cfg.Wallpaper, g.cfg.Camera.Threshold)
	eng.AddEntity(g.wallpaper)

	g.spawner = NewSpawner(g.cfg.Platforms, g.diff, env.Config.Seed)
	base := g.spawner.Base(eng)

	g.player = NewPlayer(g.cfg.Player, g.cfg.Physics)
	g.player.Debug = g.debug || env.Config.Debug
	g.player.MoveTo(base.Pos.Add(core.Vec(g.cfg.Player.SpawnX, g.cfg.Player.SpawnY)))
	g.player.OnFall = g.fell
	eng.AddEntity(g.player)

	g.header = NewHeader()
	g.header.Best = g.best
	eng.AddEntity(g.header)

	eng.OnTick(g.follow)
	eng.OnTick(g.track)

	eng.Logger().Info("jumper ready",
		"seed", env.Config.Seed,
		"platforms", len(g.spawner.Platforms()),
		"preset", string(g.preset),
	)
	return nil
}

// follow raises the camera so the player never climbs above the threshold
// line. The camera never moves down.
func (g *Game) follow(float64) {
	limit := g.cfg.Camera.Threshold * g.eng.Height()
	screenY := g.player.Pos.Y + g.eng.GameOffset.Y
	if screenY < limit {
		g.eng.GameOffset.Y += limit - screenY
	}
}

// track updates the score from the camera height and keeps the platform
// column filled.
func (g *Game) track(float64) {
	g.score = max(0, int(math.Floor(g.eng.GameOffset.Y)))
	g.header.Score = g.score
	g.header.Best = max(g.best, g.score)
	g.spawner.Tick(g.eng, g.score)
}

// fell ends the run. It runs inside the update pass, so the banner joins
// the engine when the pass ends and is drawn in the same frame.
func (g *Game) fell(e *engine.Engine) {
	g.gameOver = true
	e.AddEntity(NewBanner(g.score, max(g.best, g.score)))
	e.Stop()
	e.Logger().Info("game over", "score", g.score)
}

func (g *Game) State() core.GameState {
	return core.GameState{
		Score:     g.score,
		HighScore: max(g.best, g.score),
		GameOver:  g.gameOver,
	}
}

// ConfigPath returns the file settings were read from, or "" for defaults.
func (g *Game) ConfigPath() string { return g.path }

// Reload re-reads the config file and applies physics, camera and layout
// settings to the running game. Sizes of existing entities do not change.
func (g *Game) Reload() error {
	cfg, err := config.LoadJumper(g.custom)
	if err != nil {
		return fmt.Errorf("jumper: reload: %w", err)
	}
	config.ApplyJumperPreset(&cfg, g.preset)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("jumper: reload: %w", err)
	}

	g.cfg = cfg
	g.diff = config.NewDifficultyManager(cfg.Difficulty)
	if g.player != nil {
		g.player.SetPhysics(cfg.Physics)
	}
	if g.spawner != nil {
		g.spawner.SetConfig(cfg.Platforms, g.diff)
	}
	if g.wallpaper != nil {
		g.wallpaper.cfg = cfg.Wallpaper
		g.wallpaper.threshold = cfg.Camera.Threshold
	}
	if g.eng != nil {
		g.eng.Logger().Info("config reloaded", "path", g.path)
	}
	return nil
}

// KeyHold is how long a terminal key counts as held after its last repeat.
func (g *Game) KeyHold() time.Duration {
	return time.Duration(g.cfg.Input.KeyHoldMS) * time.Millisecond
}

// Player returns the player of the current run.
func (g *Game) Player() *Player { return g.player }

// Spawner returns the platform spawner of the current run.
func (g *Game) Spawner() *Spawner { return g.spawner }

// Config returns the active settings.
func (g *Game) Config() config.JumperConfig { return g.cfg }
