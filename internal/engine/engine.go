// Package engine is a small 2D entity engine. It owns the entity list and the
// camera offset, turns host frame timestamps into logical frame deltas, runs
// the update and collision passes and renders world-space and screen-space
// entities onto a core.Context.
//
// The engine is single-threaded: every method must be called from the
// goroutine that fires the scheduler.
package engine

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-jumper/internal/core"
	"github.com/vovakirdan/tui-jumper/internal/input"
)

// Surface is a drawing target that can hand out a 2D context.
// *core.Screen implements it.
type Surface interface {
	Context2D() (core.Context, error)
}

// TickFunc runs once per completed frame with that frame's delta.
type TickFunc func(deltaFrames float64)

type mutationKind int

const (
	mutationAdd mutationKind = iota
	mutationRemove
)

type mutation struct {
	kind   mutationKind
	entity Entity
}

// Engine drives the frame loop and owns the entity registry.
type Engine struct {
	// GameOffset is the camera offset applied to world-space entities at
	// render time. Games move the camera by writing to it.
	GameOffset core.Vector

	ctx       core.Context
	scheduler FrameScheduler
	input     *input.Bus
	logger    *log.Logger

	entities  []Entity
	pending   []mutation
	passDepth int

	ticks []TickFunc

	targetFPS      float64
	maxDeltaFrames float64

	running       bool
	epoch         uint64
	lastTimestamp time.Time
	frames        uint64

	isolate bool
}

// New builds an engine drawing on surface.
// It fails with *InitializationError when no drawing context is available.
func New(surface Surface, opts ...Option) (*Engine, error) {
	if surface == nil {
		return nil, &InitializationError{Err: ErrNilSurface}
	}
	ctx, err := surface.Context2D()
	if err != nil {
		return nil, &InitializationError{Err: fmt.Errorf("%w: %w", ErrNoContext, err)}
	}
	if ctx == nil {
		return nil, &InitializationError{Err: ErrNoContext}
	}

	e := &Engine{
		ctx:            ctx,
		targetFPS:      DefaultTargetFPS,
		maxDeltaFrames: DefaultMaxDeltaFrames,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.scheduler == nil {
		e.scheduler = NewQueueScheduler(SystemClock{})
	}
	if e.input == nil {
		e.input = input.NewBus()
	}
	if e.logger == nil {
		e.logger = log.New(io.Discard)
	}
	return e, nil
}

// Start begins the frame loop. Calling Start on a running engine does nothing.
func (e *Engine) Start() {
	if e.running {
		return
	}
	e.running = true
	e.epoch++
	e.lastTimestamp = e.scheduler.Now()
	e.logger.Debug("engine started", "entities", len(e.entities))
	e.requestFrame()
}

// Stop halts the frame loop. A frame already requested from the scheduler
// exits without updating or rendering. Calling Stop twice does nothing.
func (e *Engine) Stop() {
	if !e.running {
		return
	}
	e.running = false
	e.logger.Debug("engine stopped", "frames", e.frames)
}

// Running reports whether the frame loop is active.
func (e *Engine) Running() bool {
	return e.running
}

func (e *Engine) requestFrame() {
	epoch := e.epoch
	e.scheduler.RequestFrame(func(ts time.Time) {
		e.gameLoop(epoch, ts)
	})
}

// gameLoop is the scheduler callback for one host frame. Callbacks from an
// earlier Start are dropped so a stop/start pair cannot run two loops.
func (e *Engine) gameLoop(epoch uint64, ts time.Time) {
	if !e.running || epoch != e.epoch {
		return
	}

	deltaFrames := e.DeltaFrames(ts.Sub(e.lastTimestamp))
	e.lastTimestamp = ts

	e.Update(deltaFrames)
	e.Render()
	e.frames++

	if e.running {
		e.requestFrame()
	}

	ticks := e.ticks
	for _, cb := range ticks {
		cb(deltaFrames)
	}
}

// DeltaFrames converts elapsed host time to logical frames at the target
// FPS, clamped to [0, max delta frames].
func (e *Engine) DeltaFrames(elapsed time.Duration) float64 {
	ms := float64(elapsed) / float64(time.Millisecond)
	frames := ms / (1000 / e.targetFPS)
	return core.ClampF(frames, 0, e.maxDeltaFrames)
}

// Update runs the update pass then the collision pass. Entities added or
// removed during a pass are applied when that pass ends.
func (e *Engine) Update(deltaFrames float64) {
	e.pass(func(snapshot []Entity) {
		for _, ent := range snapshot {
			e.guard("update", ent, func() { ent.Update(deltaFrames, e) })
		}
	})
	e.pass(e.collide)
}

// collide checks every unordered pair of collidable entities once.
func (e *Engine) collide(snapshot []Entity) {
	for i, a := range snapshot {
		if !a.Collidable() {
			continue
		}
		for _, b := range snapshot[i+1:] {
			if !a.Collidable() || !b.Collidable() {
				continue
			}
			if !Overlaps(a, b) {
				continue
			}
			e.guard("collision", a, func() { a.OnCollision(b, e) })
			e.guard("collision", b, func() { b.OnCollision(a, e) })
		}
	}
}

// Render clears the context and draws every entity in registry order.
// World-space entities are translated by GameOffset; screen-space entities
// are drawn with the translation undone.
func (e *Engine) Render() {
	ctx := e.ctx
	ctx.Clear()
	ctx.Save()
	defer ctx.Restore()

	offset := e.GameOffset
	ctx.Translate(offset.X, offset.Y)

	e.pass(func(snapshot []Entity) {
		for _, ent := range snapshot {
			if ent.StaticOnScreen() {
				e.guard("render", ent, func() {
					ctx.Save()
					defer ctx.Restore()
					ctx.Translate(-offset.X, -offset.Y)
					ent.Render(ctx)
				})
				continue
			}
			e.guard("render", ent, func() { ent.Render(ctx) })
		}
	})
}

// pass runs fn over the current entity list. Mutations requested while any
// pass is active are queued and applied after the outermost one returns.
func (e *Engine) pass(fn func(snapshot []Entity)) {
	snapshot := e.entities
	func() {
		e.passDepth++
		defer func() { e.passDepth-- }()
		fn(snapshot)
	}()
	if e.passDepth == 0 {
		e.applyPending()
	}
}

func (e *Engine) applyPending() {
	for len(e.pending) > 0 {
		m := e.pending[0]
		e.pending = e.pending[1:]
		switch m.kind {
		case mutationAdd:
			e.add(m.entity)
		case mutationRemove:
			e.remove(m.entity)
		}
	}
	e.pending = nil
}

// AddEntity appends ent to the registry and calls its OnAdd.
// Adding the same entity twice registers it twice.
func (e *Engine) AddEntity(ent Entity) {
	if ent == nil {
		return
	}
	if e.passDepth > 0 {
		e.pending = append(e.pending, mutation{kind: mutationAdd, entity: ent})
		return
	}
	e.add(ent)
}

func (e *Engine) add(ent Entity) {
	e.entities = append(e.entities, ent)
	e.logger.Debug("entity added", "type", ent.Type(), "count", len(e.entities))
	e.guard("add", ent, func() { ent.OnAdd(e) })
}

// RemoveEntity drops every registration of ent and calls Destroy once per
// dropped registration. Removing an absent entity does nothing.
func (e *Engine) RemoveEntity(ent Entity) {
	if ent == nil {
		return
	}
	if e.passDepth > 0 {
		e.pending = append(e.pending, mutation{kind: mutationRemove, entity: ent})
		return
	}
	e.remove(ent)
}

func (e *Engine) remove(ent Entity) {
	kept := make([]Entity, 0, len(e.entities))
	removed := 0
	for _, x := range e.entities {
		if x == ent {
			removed++
			continue
		}
		kept = append(kept, x)
	}
	if removed == 0 {
		return
	}
	e.entities = kept
	e.logger.Debug("entity removed", "type", ent.Type(), "instances", removed)
	for range removed {
		e.guard("destroy", ent, func() { ent.Destroy(e) })
	}
}

// Clear removes every entity, calling Destroy on each.
func (e *Engine) Clear() {
	for _, ent := range e.Entities() {
		e.RemoveEntity(ent)
	}
}

// OnTick registers cb to run after every completed frame.
func (e *Engine) OnTick(cb TickFunc) {
	if cb != nil {
		e.ticks = append(e.ticks, cb)
	}
}

// guard runs a single entity callback, recovering panics when fault
// isolation is enabled.
func (e *Engine) guard(phase string, ent Entity, fn func()) {
	if !e.isolate {
		fn()
		return
	}
	defer func() {
		if r := recover(); r != nil {
			e.logger.Error("entity callback panicked",
				"phase", phase,
				"type", ent.Type(),
				"panic", r,
			)
		}
	}()
	fn()
}

// Entities returns a copy of the registry in insertion order.
func (e *Engine) Entities() []Entity {
	out := make([]Entity, len(e.entities))
	copy(out, e.entities)
	return out
}

// Len returns the number of registered entities.
func (e *Engine) Len() int {
	return len(e.entities)
}

// Frames returns the number of frames completed since construction.
func (e *Engine) Frames() uint64 {
	return e.frames
}

// Context returns the drawing context.
func (e *Engine) Context() core.Context {
	return e.ctx
}

// Width returns the drawing surface width in world units.
func (e *Engine) Width() float64 {
	return float64(e.ctx.Width())
}

// Height returns the drawing surface height in world units.
func (e *Engine) Height() float64 {
	return float64(e.ctx.Height())
}

// Input returns the event source entities subscribe to.
func (e *Engine) Input() *input.Bus {
	return e.input
}

// Logger returns the engine's logger.
func (e *Engine) Logger() *log.Logger {
	return e.logger
}
