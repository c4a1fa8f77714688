package fluids

import "errors"

// Terminal error kinds for a solver invocation. Callers match with errors.Is;
// the wrapped message carries the offending values.
var (
	// ErrInvalidState indicates a state with rho <= 0 or p <= 0, either on
	// input or on a computed intermediate state.
	ErrInvalidState = errors.New("fluids: non-physical state")

	// ErrConfiguration indicates invalid problem data, e.g. gamma <= 1.
	ErrConfiguration = errors.New("fluids: invalid configuration")
)
