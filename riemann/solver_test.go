package riemann

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/notargets/riemann/fluids"
)

func TestNewKind(t *testing.T) {
	k, err := NewKind("hlle")
	assert.NoError(t, err)
	assert.Equal(t, HLLE, k)
	k, err = NewKind("Roe")
	assert.NoError(t, err)
	assert.Equal(t, Roe, k)
	assert.Equal(t, "HLLE", HLLE.String())
	assert.Equal(t, "Roe", Roe.String())

	_, err = NewKind("godunov")
	assert.ErrorIs(t, err, ErrUnknownSolver)
}

func TestSolveDispatch(t *testing.T) {
	pd, err := fluids.NewProblemData(1.4, false)
	assert.NoError(t, err)
	var (
		left  = fluids.PrimitiveState{Rho: 3, U: -0.5, P: 2}
		right = fluids.PrimitiveState{Rho: 1, U: 0, P: 1}
	)
	solH, err := Solve(HLLE, left, right, pd)
	assert.NoError(t, err)
	assert.Len(t, solH.Waves, 2)
	direct, err := SolveHLLE(left, right, pd)
	assert.NoError(t, err)
	assert.Equal(t, direct, solH)

	solR, err := Solve(Roe, left, right, pd)
	assert.NoError(t, err)
	assert.Len(t, solR.Waves, 3)

	_, err = Solve(Kind(99), left, right, pd)
	assert.ErrorIs(t, err, ErrUnknownSolver)
}
