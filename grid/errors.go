package grid

import "errors"

var (
	// ErrInvalidConfiguration indicates an impossible board: empty dimensions,
	// Start equal to End, or a Start/End that cannot take part in a search.
	ErrInvalidConfiguration = errors.New("grid: invalid configuration")
	// ErrOutOfBounds indicates coordinates outside [0,Rows)×[0,Cols).
	ErrOutOfBounds = errors.New("grid: coordinates out of bounds")
	// ErrMalformedBoard indicates a board picture that cannot be parsed.
	ErrMalformedBoard = errors.New("grid: malformed board")
)
