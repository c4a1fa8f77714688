package riemann

import "errors"

var (
	// ErrDegenerateWaveSpeed indicates the two HLLE bounding speeds coincide
	// within the numerical tolerance (zero-width fan).
	ErrDegenerateWaveSpeed = errors.New("riemann: degenerate wave speeds")

	// ErrNonPositiveTime indicates a self-similar evaluation at t <= 0.
	ErrNonPositiveTime = errors.New("riemann: evaluation time must be positive")

	// ErrUnknownSolver indicates an unrecognized solver kind or label.
	ErrUnknownSolver = errors.New("riemann: unknown solver")
)
