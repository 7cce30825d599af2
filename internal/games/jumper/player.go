package jumper

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/tui-jumper/internal/config"
	"github.com/vovakirdan/tui-jumper/internal/core"
	"github.com/vovakirdan/tui-jumper/internal/engine"
	"github.com/vovakirdan/tui-jumper/internal/input"
)

// PlayerType is the player's collision tag.
const PlayerType = "player"

// Animation thresholds in cells per frame.
const (
	fallingSpeed = 0.04 // Vertical speed above which the player counts as airborne
	runningSpeed = 0.2
)

// PlayerState is the player's animation state.
type PlayerState int

const (
	Standing PlayerState = iota
	Jumping
	Falling
	Running
)

func (s PlayerState) String() string {
	switch s {
	case Standing:
		return "standing"
	case Jumping:
		return "jumping"
	case Falling:
		return "falling"
	case Running:
		return "running"
	default:
		return "unknown"
	}
}

// Sprites face right; left-facing frames are mirrored.
var sprites = map[PlayerState][2]string{
	Standing: {"(o>", "/ \\"},
	Running:  {"(o>", "/|>"},
	Jumping:  {"\\o>", "^ ^"},
	Falling:  {"(o>", "| |"},
}

var mirrorRunes = strings.NewReplacer(
	"(", ")", ")", "(",
	"<", ">", ">", "<",
	"/", "\\", "\\", "/",
)

func mirror(s string) string {
	r := []rune(mirrorRunes.Replace(s))
	for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
		r[i], r[j] = r[j], r[i]
	}
	return string(r)
}

// Player is the jumping character. It reads directions from the engine's
// input bus, falls under gravity and lands on platforms it drops onto from
// above.
type Player struct {
	engine.Base

	Velocity core.Vector
	Color    core.Color
	Debug    bool

	// OnFall runs once when the player drops below the visible area.
	OnFall func(e *engine.Engine)

	physics     config.JumperPhysics
	previous    core.Vector
	held        core.Directions
	subs        []*input.Subscription
	facingRight bool
	grounded    bool
	fallen      bool
	state       PlayerState
}

// NewPlayer creates a player with the given size and physics.
func NewPlayer(cfg config.JumperPlayer, physics config.JumperPhysics) *Player {
	return &Player{
		Base: engine.Base{
			Kind:   PlayerType,
			Extent: core.Vec(cfg.Width, cfg.Height),
		},
		Color:       cfg.Color,
		physics:     physics,
		held:        core.NewDirections(),
		facingRight: true,
	}
}

// OnAdd subscribes to key and click events.
func (p *Player) OnAdd(e *engine.Engine) {
	bus := e.Input()
	p.subs = append(p.subs,
		bus.Subscribe(input.KeyDown, func(ev input.Event) { p.held.Press(ev.Direction) }),
		bus.Subscribe(input.KeyUp, func(ev input.Event) { p.held.Release(ev.Direction) }),
		bus.Subscribe(input.Click, func(ev input.Event) {
			p.MoveTo(core.Vec(ev.X, ev.Y).Sub(e.GameOffset))
		}),
	)
}

// Destroy releases the subscriptions taken in OnAdd.
func (p *Player) Destroy(*engine.Engine) {
	for _, s := range p.subs {
		s.Cancel()
	}
	p.subs = nil
	p.held.Clear()
}

// Update applies one step of the movement model scaled by deltaFrames.
func (p *Player) Update(dt float64, e *engine.Engine) {
	ph := p.physics
	p.previous = p.Pos

	p.Velocity.Y += ph.Gravity * dt
	if math.Abs(p.Velocity.Y) < ph.PrecisionThreshold {
		p.Velocity.Y = 0
	}

	switch {
	case p.held.Held(core.DirRight):
		p.Velocity.X += ph.Acceleration * dt
		p.facingRight = true
	case p.held.Held(core.DirLeft):
		p.Velocity.X -= ph.Acceleration * dt
		p.facingRight = false
	default:
		p.Velocity.X *= math.Pow(ph.Friction, dt)
		if math.Abs(p.Velocity.X) < ph.PrecisionThreshold {
			p.Velocity.X = 0
		}
	}

	p.Velocity.X = core.ClampF(p.Velocity.X, -ph.MaxSpeed, ph.MaxSpeed)
	if ph.MaxFallSpeed > 0 && p.Velocity.Y > ph.MaxFallSpeed {
		p.Velocity.Y = ph.MaxFallSpeed
	}

	wasGrounded := p.grounded
	if p.held.Held(core.DirUp) && p.grounded {
		p.Velocity.Y = ph.JumpImpulse
		p.state = Jumping
	}
	// The collision pass grounds the player again while it stands on a
	// platform.
	p.grounded = false

	p.Pos = p.Pos.Add(p.Velocity.Scale(dt))

	switch {
	case p.Velocity.Y > fallingSpeed:
		p.state = Falling
	case p.Velocity.Y < -fallingSpeed:
		p.state = Jumping
	case math.Abs(p.Velocity.X) > runningSpeed:
		p.state = Running
	case wasGrounded:
		p.state = Standing
	}

	if !p.fallen && p.Pos.Y+e.GameOffset.Y > e.Height() {
		p.fallen = true
		if p.OnFall != nil {
			p.OnFall(e)
		}
	}
}

// OnCollision lands the player on a platform when it was above the
// platform's top on the previous frame and is now falling.
func (p *Player) OnCollision(other engine.Entity, _ *engine.Engine) {
	if other.Type() != PlatformType || p.Velocity.Y <= 0 {
		return
	}
	feetPrevious := p.previous.Y + p.Extent.Y
	top := other.Position().Y
	if feetPrevious > top+p.physics.LandingMargin {
		return
	}

	p.Pos.Y = top - p.Extent.Y
	p.Velocity.Y = 0
	if p.state != Standing && p.state != Running {
		p.state = Standing
	}
	p.grounded = true
}

func (p *Player) Render(ctx core.Context) {
	frame := sprites[p.state]
	for row, line := range frame {
		if !p.facingRight {
			line = mirror(line)
		}
		for col, r := range []rune(line) {
			if r == ' ' {
				continue
			}
			ctx.FillText(p.Pos.X+float64(col), p.Pos.Y+float64(row), string(r), p.Color)
		}
	}

	if p.Debug {
		p.renderDebug(ctx)
	}
}

func (p *Player) renderDebug(ctx core.Context) {
	ctx.StrokeRect(p.Pos.X-1, p.Pos.Y-1, p.Extent.X+2, p.Extent.Y+2, core.ColorRed)

	lines := []string{
		fmt.Sprintf("state: %s", p.state),
		fmt.Sprintf("grounded: %t", p.grounded),
		fmt.Sprintf("vel: (%.2f, %.2f)", p.Velocity.X, p.Velocity.Y),
		fmt.Sprintf("pos: (%.0f, %.0f)", p.Pos.X, p.Pos.Y),
	}
	for i, l := range lines {
		ctx.FillText(p.Pos.X, p.Pos.Y-float64(len(lines)+1-i), l, core.ColorGray)
	}
}

// MoveTo places the player at pos in world space and stops it.
func (p *Player) MoveTo(pos core.Vector) {
	p.Pos = pos
	p.previous = pos
	p.Velocity = core.Vector{}
}

// SetPhysics swaps the movement model, e.g. after a config reload.
func (p *Player) SetPhysics(physics config.JumperPhysics) {
	p.physics = physics
}

// State returns the animation state.
func (p *Player) State() PlayerState { return p.state }

// Grounded reports whether the player stood on a platform last frame.
func (p *Player) Grounded() bool { return p.grounded }

// FacingRight reports the direction of the last horizontal input.
func (p *Player) FacingRight() bool { return p.facingRight }

// Holding reports whether a direction key is held.
func (p *Player) Holding(d core.Direction) bool { return p.held.Held(d) }
