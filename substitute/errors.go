package substitute

import "errors"

var (
	// ErrBadName indicates a key that is not an identifier ([A-Za-z_][A-Za-z0-9_]*).
	ErrBadName = errors.New("substitute: invalid variable name")

	// ErrCyclicValue indicates values that refer to each other in a loop.
	ErrCyclicValue = errors.New("substitute: cyclic variable definition")
)
