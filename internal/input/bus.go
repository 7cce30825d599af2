// Package input is the event source entities subscribe to for keyboard and
// pointer input. Hosts publish; entities hold Subscription handles and cancel
// them when they leave the engine.
package input

import (
	"sync"

	"github.com/google/uuid"

	"github.com/vovakirdan/tui-jumper/internal/core"
)

// Kind identifies the type of an input event.
type Kind int

const (
	KeyDown Kind = iota
	KeyUp
	Click
)

func (k Kind) String() string {
	switch k {
	case KeyDown:
		return "keydown"
	case KeyUp:
		return "keyup"
	case Click:
		return "click"
	default:
		return "unknown"
	}
}

// Event is a single input occurrence.
// Key events carry Direction; click events carry screen coordinates in X, Y.
type Event struct {
	Kind      Kind
	Direction core.Direction
	X, Y      float64
}

// Handler receives events of the kind it subscribed to.
type Handler func(Event)

// Subscription is a handle returned by Subscribe.
type Subscription struct {
	id     string
	kind   Kind
	bus    *Bus
	once   sync.Once
	active bool
}

// ID returns the subscription's unique id.
func (s *Subscription) ID() string { return s.id }

// Kind returns the event kind the subscription listens to.
func (s *Subscription) Kind() Kind { return s.kind }

// Active reports whether the subscription still receives events.
func (s *Subscription) Active() bool {
	s.bus.mu.RLock()
	defer s.bus.mu.RUnlock()
	return s.active
}

// Cancel stops delivery to this subscription. Safe to call more than once
// and on a nil handle.
func (s *Subscription) Cancel() {
	if s == nil {
		return
	}
	s.once.Do(func() {
		s.bus.remove(s)
	})
}

type entry struct {
	sub     *Subscription
	handler Handler
}

// Bus is an in-memory, synchronous event dispatcher.
type Bus struct {
	mu       sync.RWMutex
	handlers map[Kind][]entry
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{handlers: make(map[Kind][]entry)}
}

// Subscribe registers h for events of the given kind.
func (b *Bus) Subscribe(kind Kind, h Handler) *Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()

	s := &Subscription{id: uuid.NewString(), kind: kind, bus: b, active: true}
	b.handlers[kind] = append(b.handlers[kind], entry{sub: s, handler: h})
	return s
}

func (b *Bus) remove(s *Subscription) {
	b.mu.Lock()
	defer b.mu.Unlock()

	list := b.handlers[s.kind]
	for i, e := range list {
		if e.sub == s {
			b.handlers[s.kind] = append(list[:i:i], list[i+1:]...)
			break
		}
	}
	s.active = false
}

// Publish delivers ev to every handler subscribed to its kind, in
// subscription order. Handlers run outside the lock and may subscribe or
// cancel; such changes apply from the next Publish.
func (b *Bus) Publish(ev Event) {
	b.mu.RLock()
	list := b.handlers[ev.Kind]
	snapshot := make([]entry, len(list))
	copy(snapshot, list)
	b.mu.RUnlock()

	for _, e := range snapshot {
		if e.handler != nil {
			e.handler(ev)
		}
	}
}

// Len returns the number of live subscriptions across all kinds.
func (b *Bus) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	n := 0
	for _, list := range b.handlers {
		n += len(list)
	}
	return n
}
