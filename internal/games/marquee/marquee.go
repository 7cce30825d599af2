// Package marquee is a small demo of screen text entities: lines of text
// drift across the wallpaper and wrap at the right edge.
package marquee

import (
	"math"

	"github.com/vovakirdan/tui-jumper/internal/config"
	"github.com/vovakirdan/tui-jumper/internal/core"
	"github.com/vovakirdan/tui-jumper/internal/engine"
	"github.com/vovakirdan/tui-jumper/internal/games/jumper"
	"github.com/vovakirdan/tui-jumper/internal/registry"
)

// ID is the registry id of the demo.
const ID = "marquee"

// TextType tags text entities.
const TextType = "text"

func init() {
	registry.Register(ID, func() registry.Game { return New() })
}

// Text is a line of text moving right by Speed cells per frame. Its x
// position wraps at the width of the drawing surface.
type Text struct {
	engine.Base
	Text  string
	Speed float64
	Color core.Color
}

// NewText creates a text entity at (x, y) moving one cell per frame.
func NewText(text string, x, y float64, color core.Color) *Text {
	return &Text{
		Base: engine.Base{
			Kind:        TextType,
			Pos:         core.Vec(x, y),
			Extent:      core.Vec(float64(len([]rune(text))), 1),
			NoCollision: true,
		},
		Text:  text,
		Speed: 1,
		Color: color,
	}
}

func (t *Text) Update(dt float64, e *engine.Engine) {
	t.Pos.X += t.Speed * dt
	if w := e.Width(); w > 0 {
		t.Pos.X = math.Mod(t.Pos.X, w)
		if t.Pos.X < 0 {
			t.Pos.X += w
		}
	}
}

func (t *Text) Render(ctx core.Context) {
	ctx.FillText(t.Pos.X, t.Pos.Y, t.Text, t.Color)
}

var lines = []struct {
	text  string
	speed float64
	color core.Color
}{
	{"tui-jumper", 1, core.ColorBrightGreen},
	{"entities update, collide and render every frame", 0.5, core.ColorBrightCyan},
	{"press q to quit", 0.25, core.ColorYellow},
}

// Game places the marquee lines over the wallpaper.
type Game struct {
	texts []*Text
	seed  int64
}

// New creates the demo.
func New() *Game { return &Game{} }

func (g *Game) ID() string    { return ID }
func (g *Game) Title() string { return "Marquee" }

func (g *Game) Configure(core.RuntimeConfig) ([]engine.Option, error) {
	return nil, nil
}

func (g *Game) Setup(eng *engine.Engine, env registry.Env) error {
	g.seed = env.Config.Seed
	g.texts = g.texts[:0]

	wp := config.DefaultJumperConfig().Wallpaper
	wp.ShowThreshold = false
	eng.AddEntity(jumper.NewWallpaper(wp, 0))

	h := eng.Height()
	for i, l := range lines {
		y := math.Floor(h * float64(i+1) / float64(len(lines)+1))
		t := NewText(l.text, float64(g.seed%7)*float64(i), y, l.color)
		t.Speed = l.speed
		g.texts = append(g.texts, t)
		eng.AddEntity(t)
	}
	return nil
}

// State never ends; the marquee runs until the host quits.
func (g *Game) State() core.GameState { return core.GameState{} }

// Texts returns the text entities of the current run.
func (g *Game) Texts() []*Text { return g.texts }
