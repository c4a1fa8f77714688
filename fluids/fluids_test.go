package fluids

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProblemData(t *testing.T) {
	var (
		pd  *ProblemData
		err error
	)
	_, err = NewProblemData(1.0, false)
	assert.ErrorIs(t, err, ErrConfiguration)
	_, err = NewProblemData(0.6, true)
	assert.ErrorIs(t, err, ErrConfiguration)

	pd, err = NewProblemData(1.4, true)
	assert.NoError(t, err)
	assert.Equal(t, 1.4, pd.Gamma)
	assert.InDelta(t, 0.4, pd.Gamma1, 1.e-15)
	assert.True(t, pd.EntropyFix)
}

func TestStateConversions(t *testing.T) {
	pd, err := NewProblemData(1.4, false)
	assert.NoError(t, err)
	// Sod left state
	{
		w := PrimitiveState{Rho: 1, U: 0, P: 1}
		q, err := pd.ToConserved(w)
		assert.NoError(t, err)
		assert.Equal(t, 1., q.Rho)
		assert.Equal(t, 0., q.RhoU)
		assert.InDelta(t, 2.5, q.Ener, 1.e-14)
		wBack, err := pd.ToPrimitive(q)
		assert.NoError(t, err)
		assert.InDelta(t, w.Rho, wBack.Rho, 1.e-14)
		assert.InDelta(t, w.U, wBack.U, 1.e-14)
		assert.InDelta(t, w.P, wBack.P, 1.e-14)
	}
	// Moving state
	{
		w := PrimitiveState{Rho: 3, U: -0.5, P: 2}
		q, err := pd.ToConserved(w)
		assert.NoError(t, err)
		assert.Equal(t, 3., q.Rho)
		assert.InDelta(t, -1.5, q.RhoU, 1.e-14)
		assert.InDelta(t, 5.375, q.Ener, 1.e-14) // 2/0.4 + 0.5*3*0.25
		wBack, err := pd.ToPrimitive(q)
		assert.NoError(t, err)
		assert.InDelta(t, -0.5, wBack.U, 1.e-14)
		assert.InDelta(t, 2., wBack.P, 1.e-14)
	}
	// Invalid inputs fail fast with the offending values preserved
	{
		_, err := pd.ToConserved(PrimitiveState{Rho: -1, U: 0, P: 1})
		assert.ErrorIs(t, err, ErrInvalidState)
		_, err = pd.ToConserved(PrimitiveState{Rho: 1, U: 0, P: 0})
		assert.ErrorIs(t, err, ErrInvalidState)
		// Kinetic energy exceeding total energy implies negative pressure
		_, err = pd.ToPrimitive(ConservedState{Rho: 1, RhoU: 10, Ener: 1})
		assert.ErrorIs(t, err, ErrInvalidState)
		_, err = pd.ToPrimitive(ConservedState{Rho: -2, RhoU: 0, Ener: 1})
		assert.ErrorIs(t, err, ErrInvalidState)
	}
}

func TestFluxAndEigenstructure(t *testing.T) {
	pd, err := NewProblemData(1.4, false)
	assert.NoError(t, err)
	// Stationary state: flux carries only the pressure term
	{
		q, err := pd.ToConserved(PrimitiveState{Rho: 1, U: 0, P: 1})
		assert.NoError(t, err)
		f := pd.Flux(q)
		assert.InDelta(t, 0., f.Rho, 1.e-14)
		assert.InDelta(t, 1., f.RhoU, 1.e-14)
		assert.InDelta(t, 0., f.Ener, 1.e-14)
	}
	// Moving state: f = (rho u, rho u^2 + p, u (E + p))
	{
		w := PrimitiveState{Rho: 2, U: 3, P: 5}
		q, err := pd.ToConserved(w)
		assert.NoError(t, err)
		f := pd.Flux(q)
		assert.InDelta(t, 6., f.Rho, 1.e-13)
		assert.InDelta(t, 23., f.RhoU, 1.e-13)
		assert.InDelta(t, 3.*(q.Ener+5.), f.Ener, 1.e-13)
	}
	// Characteristic speeds
	{
		w := PrimitiveState{Rho: 1, U: 0.5, P: 1}
		c := math.Sqrt(1.4)
		cGot, err := pd.SoundSpeed(w)
		assert.NoError(t, err)
		assert.InDelta(t, c, cGot, 1.e-14)
		lam, err := pd.Eigenvalues(w)
		assert.NoError(t, err)
		assert.InDelta(t, 0.5-c, lam[0], 1.e-14)
		assert.InDelta(t, 0.5, lam[1], 1.e-14)
		assert.InDelta(t, 0.5+c, lam[2], 1.e-14)

		_, err = pd.SoundSpeed(PrimitiveState{Rho: 0, U: 0, P: 1})
		assert.ErrorIs(t, err, ErrInvalidState)
	}
}

func TestFlowFunctions(t *testing.T) {
	pd, err := NewProblemData(1.4, false)
	assert.NoError(t, err)
	w := PrimitiveState{Rho: 2, U: 3, P: 5}
	q, err := pd.ToConserved(w)
	assert.NoError(t, err)

	assert.InDelta(t, 2., pd.GetFlowFunction(q, Density), 1.e-14)
	assert.InDelta(t, 6., pd.GetFlowFunction(q, Momentum), 1.e-14)
	assert.InDelta(t, q.Ener, pd.GetFlowFunction(q, Energy), 1.e-14)
	assert.InDelta(t, 3., pd.GetFlowFunction(q, Velocity), 1.e-14)
	assert.InDelta(t, 5., pd.GetFlowFunction(q, StaticPressure), 1.e-13)
	assert.InDelta(t, 9., pd.GetFlowFunction(q, DynamicPressure), 1.e-13)
	c := math.Sqrt(1.4 * 5. / 2.)
	assert.InDelta(t, c, pd.GetFlowFunction(q, SoundSpeedF), 1.e-13)
	assert.InDelta(t, pd.Enthalpy(q), pd.GetFlowFunction(q, EnthalpyF), 1.e-13)
	assert.InDelta(t, 3./c, pd.GetFlowFunction(q, MachNumber), 1.e-13)
}
