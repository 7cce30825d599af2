package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-jumper/internal/core"
)

func TestBusDeliversByKindInOrder(t *testing.T) {
	b := NewBus()
	var got []string

	b.Subscribe(KeyDown, func(ev Event) { got = append(got, "first:"+ev.Direction.String()) })
	b.Subscribe(KeyUp, func(ev Event) { got = append(got, "up-only") })
	b.Subscribe(KeyDown, func(ev Event) { got = append(got, "second:"+ev.Direction.String()) })

	b.Publish(Event{Kind: KeyDown, Direction: core.DirLeft})

	require.Equal(t, []string{"first:left", "second:left"}, got)
}

func TestSubscriptionCancel(t *testing.T) {
	b := NewBus()
	calls := 0
	sub := b.Subscribe(Click, func(Event) { calls++ })

	require.NotEmpty(t, sub.ID())
	require.True(t, sub.Active())
	require.Equal(t, 1, b.Len())

	sub.Cancel()
	sub.Cancel()

	assert.False(t, sub.Active())
	assert.Equal(t, 0, b.Len())

	b.Publish(Event{Kind: Click, X: 1, Y: 2})
	assert.Equal(t, 0, calls)

	var nilSub *Subscription
	assert.NotPanics(t, nilSub.Cancel)
}

func TestSubscriptionIDsAreUnique(t *testing.T) {
	b := NewBus()
	seen := map[string]bool{}
	for range 50 {
		s := b.Subscribe(KeyDown, nil)
		require.False(t, seen[s.ID()], "duplicate id %s", s.ID())
		seen[s.ID()] = true
	}
}

func TestHandlerMayCancelDuringPublish(t *testing.T) {
	b := NewBus()
	var self *Subscription
	var order []int

	self = b.Subscribe(KeyDown, func(Event) {
		order = append(order, 1)
		self.Cancel()
	})
	b.Subscribe(KeyDown, func(Event) { order = append(order, 2) })

	b.Publish(Event{Kind: KeyDown, Direction: core.DirUp})
	b.Publish(Event{Kind: KeyDown, Direction: core.DirUp})

	assert.Equal(t, []int{1, 2, 2}, order)
}
