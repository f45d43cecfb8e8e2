package stripfx

import "errors"

// Errors returned by the engine.
var (
	// ErrAllocation is returned when the output or a working buffer cannot
	// be allocated.
	ErrAllocation = errors.New("stripfx: buffer allocation failed")

	// ErrSizeMismatch is returned when an input does not match the render size.
	ErrSizeMismatch = errors.New("stripfx: input size does not match render size")

	// ErrNoTimeline is returned by effects that need a timeline when the
	// render context has none.
	ErrNoTimeline = errors.New("stripfx: render context has no timeline")
)
