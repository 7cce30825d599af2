package engine

import "github.com/vovakirdan/tui-jumper/internal/core"

// GenericType is the type tag of entities that do not set one.
const GenericType = "generic"

// Entity is anything the engine updates, collides and draws.
//
// Entities are compared by identity, so implementations must be pointer
// types. Embed *Base (or Base in a struct used by pointer) to get defaults
// for every method and override only what the entity needs.
type Entity interface {
	// Type is a free-form tag other entities use in OnCollision.
	Type() string

	// Position is the top-left corner of the bounding box in world units.
	Position() core.Vector
	Size() core.Vector

	// Collidable entities take part in the collision pass.
	Collidable() bool

	// StaticOnScreen entities are drawn in screen space, ignoring the
	// camera offset.
	StaticOnScreen() bool

	// OnAdd runs once each time the entity is added to an engine.
	// Resources acquired here are released in Destroy.
	OnAdd(e *Engine)

	// Destroy runs once per removal.
	Destroy(e *Engine)

	// Update advances the entity by deltaFrames logical frames.
	Update(deltaFrames float64, e *Engine)

	Render(ctx core.Context)

	// OnCollision is called once per overlapping pair per frame.
	OnCollision(other Entity, e *Engine)
}

// Base supplies default behaviour for Entity. Everything is a no-op except
// the accessors over its exported fields.
type Base struct {
	Kind   string
	Pos    core.Vector
	Extent core.Vector

	// NoCollision opts the entity out of the collision pass.
	NoCollision bool

	// ScreenSpace draws the entity with the camera offset undone.
	ScreenSpace bool
}

func (b *Base) Type() string {
	if b.Kind == "" {
		return GenericType
	}
	return b.Kind
}

func (b *Base) Position() core.Vector { return b.Pos }
func (b *Base) Size() core.Vector     { return b.Extent }
func (b *Base) Collidable() bool      { return !b.NoCollision }
func (b *Base) StaticOnScreen() bool  { return b.ScreenSpace }

// Bounds returns the entity's bounding box.
func (b *Base) Bounds() core.Rect {
	return core.RectAt(b.Pos, b.Extent)
}

func (b *Base) OnAdd(*Engine)               {}
func (b *Base) Destroy(*Engine)             {}
func (b *Base) Update(float64, *Engine)     {}
func (b *Base) Render(core.Context)         {}
func (b *Base) OnCollision(Entity, *Engine) {}

// Bounds returns the bounding box of any entity.
func Bounds(e Entity) core.Rect {
	return core.RectAt(e.Position(), e.Size())
}

// Overlaps reports whether the bounding boxes of a and b intersect.
// Touching edges do not count.
func Overlaps(a, b Entity) bool {
	return Bounds(a).Intersects(Bounds(b))
}
