package jumper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-jumper/internal/config"
	"github.com/vovakirdan/tui-jumper/internal/core"
	"github.com/vovakirdan/tui-jumper/internal/engine"
	"github.com/vovakirdan/tui-jumper/internal/input"
)

func newTestEngine(t *testing.T, w, h int) *engine.Engine {
	t.Helper()
	eng, err := engine.New(core.NewScreen(w, h))
	require.NoError(t, err)
	return eng
}

func newTestPlayer(x, y float64) *Player {
	cfg := config.DefaultJumperConfig()
	p := NewPlayer(cfg.Player, cfg.Physics)
	p.MoveTo(core.Vec(x, y))
	return p
}

func TestPlayerLandsOnPlatform(t *testing.T) {
	eng := newTestEngine(t, 40, 20)
	platform := NewPlatform(0, 10, 8, 1, core.ColorOrange)
	player := newTestPlayer(1, 5)
	eng.AddEntity(platform)
	eng.AddEntity(player)

	for i := 0; i < 200 && !player.Grounded(); i++ {
		eng.Update(1)
	}

	require.True(t, player.Grounded(), "player never landed")
	assert.Equal(t, 8.0, player.Pos.Y)
	assert.Equal(t, 0.0, player.Velocity.Y)
	assert.Equal(t, Standing, player.State())

	// Standing still keeps it grounded frame after frame.
	for range 10 {
		eng.Update(1)
	}
	assert.True(t, player.Grounded())
	assert.Equal(t, 8.0, player.Pos.Y)
}

func TestPlayerDoesNotLandFromBelow(t *testing.T) {
	tests := []struct {
		name string
		y    float64
		vy   float64
	}{
		{"rising through", 10.5, -0.5},
		{"feet already below the top", 9.5, 0.1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			eng := newTestEngine(t, 40, 20)
			eng.AddEntity(NewPlatform(0, 10, 8, 1, core.ColorOrange))
			player := newTestPlayer(1, tt.y)
			player.Velocity.Y = tt.vy
			eng.AddEntity(player)

			eng.Update(1)

			assert.False(t, player.Grounded())
			assert.NotEqual(t, 8.0, player.Pos.Y)
		})
	}
}

func TestPlayerJumpsOnlyWhenGrounded(t *testing.T) {
	eng := newTestEngine(t, 40, 20)
	eng.AddEntity(NewPlatform(0, 10, 8, 1, core.ColorOrange))
	player := newTestPlayer(1, 8)
	eng.AddEntity(player)

	eng.Input().Publish(input.Event{Kind: input.KeyDown, Direction: core.DirUp})

	// Airborne at first: the first frame only lands.
	eng.Update(1)
	require.True(t, player.Grounded())

	eng.Update(1)
	assert.InDelta(t, player.physics.JumpImpulse, player.Velocity.Y, 1e-9)
	assert.Equal(t, Jumping, player.State())
	assert.False(t, player.Grounded())

	// Holding up in the air does not jump again.
	before := player.Velocity.Y
	eng.Update(1)
	assert.Greater(t, player.Velocity.Y, before)
}

func TestPlayerHorizontalMovement(t *testing.T) {
	eng := newTestEngine(t, 40, 200)
	player := newTestPlayer(10, 0)
	eng.AddEntity(player)
	bus := eng.Input()

	bus.Publish(input.Event{Kind: input.KeyDown, Direction: core.DirRight})
	for range 100 {
		eng.Update(1)
	}
	assert.InDelta(t, player.physics.MaxSpeed, player.Velocity.X, 1e-9)
	assert.True(t, player.FacingRight())

	bus.Publish(input.Event{Kind: input.KeyUp, Direction: core.DirRight})
	eng.Update(1)
	assert.InDelta(t, player.physics.MaxSpeed*0.85, player.Velocity.X, 1e-9)

	eng.Update(2)
	assert.InDelta(t, player.physics.MaxSpeed*0.85*0.85*0.85, player.Velocity.X, 1e-9)

	bus.Publish(input.Event{Kind: input.KeyDown, Direction: core.DirLeft})
	eng.Update(1)
	assert.False(t, player.FacingRight())
	assert.True(t, player.Holding(core.DirLeft))
}

func TestPlayerClickTeleports(t *testing.T) {
	eng := newTestEngine(t, 40, 20)
	player := newTestPlayer(1, 1)
	player.Velocity = core.Vec(0.5, 0.5)
	eng.AddEntity(player)
	eng.GameOffset = core.Vec(0, 5)

	eng.Input().Publish(input.Event{Kind: input.Click, X: 3, Y: 4})

	assert.Equal(t, core.Vec(3, -1), player.Pos)
	assert.True(t, player.Velocity.IsZero())
}

func TestPlayerReleasesSubscriptions(t *testing.T) {
	eng := newTestEngine(t, 40, 20)
	player := newTestPlayer(1, 1)

	eng.AddEntity(player)
	assert.Equal(t, 3, eng.Input().Len())

	eng.Input().Publish(input.Event{Kind: input.KeyDown, Direction: core.DirLeft})
	eng.RemoveEntity(player)

	assert.Equal(t, 0, eng.Input().Len())
	assert.False(t, player.Holding(core.DirLeft))
}

func TestPlayerOnFallRunsOnce(t *testing.T) {
	eng := newTestEngine(t, 40, 20)
	player := newTestPlayer(1, 19)
	calls := 0
	player.OnFall = func(*engine.Engine) { calls++ }
	eng.AddEntity(player)

	for range 100 {
		eng.Update(1)
	}
	assert.Equal(t, 1, calls)
}

func TestPlayerRender(t *testing.T) {
	screen := core.NewScreen(10, 5)
	eng, err := engine.New(screen)
	require.NoError(t, err)
	player := newTestPlayer(2, 1)
	eng.AddEntity(player)

	eng.Render()
	assert.Equal(t, "  (o>", screen.Row(1)[:5])

	player.facingRight = false
	eng.Render()
	assert.Equal(t, "  <o)", screen.Row(1)[:5])
}

func TestMirror(t *testing.T) {
	assert.Equal(t, "<o)", mirror("(o>"))
	assert.Equal(t, "\\|/", mirror("\\|/"))
	assert.Equal(t, "<|\\", mirror("/|>"))
}
