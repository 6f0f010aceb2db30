package life

import "errors"

// Error kinds reported by the engine. Returned errors wrap one of these, so
// callers match with errors.Is.
var (
	// ErrOutOfBounds reports a coordinate or pattern placement outside the grid.
	ErrOutOfBounds = errors.New("out of bounds")
	// ErrInvalidOperation reports a grid edit attempted while the engine runs.
	ErrInvalidOperation = errors.New("invalid operation")
	// ErrInvalidConfiguration reports bad sizes, probabilities or pattern data.
	ErrInvalidConfiguration = errors.New("invalid configuration")
)
