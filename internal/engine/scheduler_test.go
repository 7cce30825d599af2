package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueueSchedulerFiresQueuedOnly(t *testing.T) {
	clock := NewManualClock(t0)
	s := NewQueueScheduler(clock)

	var got []time.Time
	var rearm FrameFunc
	rearm = func(ts time.Time) {
		got = append(got, ts)
		s.RequestFrame(rearm)
	}
	s.RequestFrame(rearm)
	s.RequestFrame(nil)

	require.Equal(t, 1, s.Pending())

	ts := clock.Advance(time.Second)
	assert.Equal(t, 1, s.Fire(ts))
	assert.Equal(t, []time.Time{ts}, got)
	assert.Equal(t, 1, s.Pending(), "callback re-armed during Fire waits for the next Fire")
	assert.Equal(t, uint64(1), s.Fired())
}

func TestQueueSchedulerDefaultsToSystemClock(t *testing.T) {
	s := NewQueueScheduler(nil)
	before := time.Now()
	assert.False(t, s.Now().Before(before))
	assert.Zero(t, s.FireNow())
}

func TestManualClock(t *testing.T) {
	c := NewManualClock(t0)
	assert.Equal(t, t0, c.Now())

	c.Advance(250 * time.Millisecond)
	assert.Equal(t, t0.Add(250*time.Millisecond), c.Now())

	later := t0.Add(time.Hour)
	c.Set(later)
	assert.Equal(t, later, c.Now())
}
