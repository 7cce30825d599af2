package engine

import "errors"

var (
	// ErrNoContext means the surface could not provide a 2D drawing context.
	ErrNoContext = errors.New("engine: 2D drawing context unavailable")

	// ErrNilSurface means New was called without a surface.
	ErrNilSurface = errors.New("engine: nil surface")
)

// InitializationError is returned by New when the engine cannot be built.
type InitializationError struct {
	Err error
}

func (e *InitializationError) Error() string {
	return "engine: initialization failed: " + e.Err.Error()
}

func (e *InitializationError) Unwrap() error {
	return e.Err
}
