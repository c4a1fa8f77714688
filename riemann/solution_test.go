package riemann

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/notargets/riemann/fluids"
)

func TestSolutionEvaluate(t *testing.T) {
	// Synthetic three-wave fan
	var (
		qL  = fluids.ConservedState{Rho: 1, RhoU: 0, Ener: 2.5}
		q1  = fluids.ConservedState{Rho: 0.8, RhoU: 0.3, Ener: 2.1}
		q2  = fluids.ConservedState{Rho: 0.4, RhoU: 0.3, Ener: 1.4}
		qR  = fluids.ConservedState{Rho: 0.125, RhoU: 0, Ener: 0.25}
		sol = &Solution{
			Left:  qL,
			Right: qR,
			Waves: []Wave{
				{Speed: -1, Left: qL, Right: q1, Family: 1},
				{Speed: 0.5, Left: q1, Right: q2, Family: 2},
				{Speed: 2, Left: q2, Right: qR, Family: 3},
			},
		}
	)
	assert.Equal(t, []float64{-1, 0.5, 2}, sol.Speeds())
	assert.Equal(t, []fluids.ConservedState{q1, q2}, sol.MiddleStates())

	cases := []struct {
		x, t float64
		want fluids.ConservedState
	}{
		{-10, 1, qL},
		{-1.0001, 1, qL},
		{-1, 1, q1}, // a point on a wave takes the state to its right
		{0, 1, q1},
		{0.5, 1, q2},
		{1, 1, q2},
		{2, 1, qR},
		{10, 1, qR},
		{1, 4, q1}, // self-similar: only x/t matters
	}
	for _, tc := range cases {
		q, err := sol.Evaluate(tc.x, tc.t)
		assert.NoError(t, err)
		assert.Equal(t, tc.want, q, "x = %v, t = %v", tc.x, tc.t)
	}

	_, err := sol.Evaluate(0, 0)
	assert.ErrorIs(t, err, ErrNonPositiveTime)
	_, err = sol.Evaluate(0, -0.1)
	assert.ErrorIs(t, err, ErrNonPositiveTime)
}

func TestWaveTypeNames(t *testing.T) {
	assert.Equal(t, "Unclassified", Unclassified.String())
	assert.Equal(t, "Shock", Shock.String())
	assert.Equal(t, "Contact", Contact.String())
	assert.Equal(t, "RarefactionApprox", RarefactionApprox.String())
}
