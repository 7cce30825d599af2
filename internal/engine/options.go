package engine

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-jumper/internal/input"
)

const (
	// DefaultTargetFPS is the logical frame rate entity physics is tuned for.
	DefaultTargetFPS = 60

	// DefaultMaxDeltaFrames caps how many logical frames one host frame may
	// advance after a stall.
	DefaultMaxDeltaFrames = 5
)

// Option configures an Engine.
type Option func(*Engine)

// WithScheduler sets the host frame clock. Defaults to a QueueScheduler on
// the system clock.
func WithScheduler(s FrameScheduler) Option {
	return func(e *Engine) {
		if s != nil {
			e.scheduler = s
		}
	}
}

// WithTargetFPS sets the logical frame rate. Non-positive values are ignored.
func WithTargetFPS(fps float64) Option {
	return func(e *Engine) {
		if fps > 0 {
			e.targetFPS = fps
		}
	}
}

// WithMaxDeltaFrames sets the per-frame delta cap. Non-positive values are
// ignored.
func WithMaxDeltaFrames(n float64) Option {
	return func(e *Engine) {
		if n > 0 {
			e.maxDeltaFrames = n
		}
	}
}

// WithLogger routes engine logs to l.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithInput sets the event source entities subscribe to.
func WithInput(b *input.Bus) Option {
	return func(e *Engine) {
		if b != nil {
			e.input = b
		}
	}
}

// WithFaultIsolation recovers panics from entity callbacks, logs them and
// carries on with the frame.
func WithFaultIsolation() Option {
	return func(e *Engine) {
		e.isolate = true
	}
}
