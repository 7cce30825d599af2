package engine

import (
	"sync"
	"time"
)

// FrameFunc is invoked by a scheduler with the frame's timestamp.
type FrameFunc func(timestamp time.Time)

// FrameScheduler is the host's frame clock: it reports the current time and
// calls back once per requested frame.
type FrameScheduler interface {
	Now() time.Time
	RequestFrame(fn FrameFunc)
}

// QueueScheduler holds requested frames until the host fires them.
// The terminal host fires on every tick message; tests fire by hand.
type QueueScheduler struct {
	clock Clock

	mu      sync.Mutex
	pending []FrameFunc
	fired   uint64
}

// NewQueueScheduler creates a scheduler reading time from clock.
// A nil clock uses the system clock.
func NewQueueScheduler(clock Clock) *QueueScheduler {
	if clock == nil {
		clock = SystemClock{}
	}
	return &QueueScheduler{clock: clock}
}

// Now returns the clock's current time.
func (s *QueueScheduler) Now() time.Time {
	return s.clock.Now()
}

// RequestFrame queues fn for the next Fire.
func (s *QueueScheduler) RequestFrame(fn FrameFunc) {
	if fn == nil {
		return
	}
	s.mu.Lock()
	s.pending = append(s.pending, fn)
	s.mu.Unlock()
}

// Fire runs every callback queued before the call with timestamp ts and
// returns how many ran. Callbacks requested while firing wait for the next
// Fire.
func (s *QueueScheduler) Fire(ts time.Time) int {
	s.mu.Lock()
	batch := s.pending
	s.pending = nil
	s.fired += uint64(len(batch))
	s.mu.Unlock()

	for _, fn := range batch {
		fn(ts)
	}
	return len(batch)
}

// FireNow fires with the clock's current time.
func (s *QueueScheduler) FireNow() int {
	return s.Fire(s.clock.Now())
}

// Pending returns the number of queued callbacks.
func (s *QueueScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

// Fired returns the total number of callbacks run so far.
func (s *QueueScheduler) Fired() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fired
}
