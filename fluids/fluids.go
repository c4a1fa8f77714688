package fluids

import (
	"fmt"
	"math"
)

/*
	Calorically perfect gas in one dimension.

	Two equivalent state representations are used throughout:
	primitive (Rho, U, P) and conserved (Rho, RhoU, Ener), with
		Ener = P/(Gamma-1) + 0.5*Rho*U^2
*/

// PrimitiveState holds density, velocity and pressure
type PrimitiveState struct {
	Rho, U, P float64
}

// ConservedState holds density, momentum and total energy
type ConservedState struct {
	Rho, RhoU, Ener float64
}

// ProblemData carries the equation of state exponent and the entropy fix
// switch. It is immutable after construction and shared read-only across
// solver calls.
type ProblemData struct {
	Gamma, Gamma1 float64 // Gamma1 = Gamma - 1
	EntropyFix    bool
}

func NewProblemData(gamma float64, entropyFix bool) (pd *ProblemData, err error) {
	if gamma <= 1 {
		err = fmt.Errorf("%w: gamma = %v, must be greater than 1", ErrConfiguration, gamma)
		return
	}
	pd = &ProblemData{
		Gamma:      gamma,
		Gamma1:     gamma - 1,
		EntropyFix: entropyFix,
	}
	return
}

func (pd *ProblemData) ToConserved(w PrimitiveState) (q ConservedState, err error) {
	if w.Rho <= 0 || w.P <= 0 {
		err = fmt.Errorf("%w: rho = %v, p = %v", ErrInvalidState, w.Rho, w.P)
		return
	}
	q = ConservedState{
		Rho:  w.Rho,
		RhoU: w.Rho * w.U,
		Ener: w.P/pd.Gamma1 + 0.5*w.Rho*w.U*w.U,
	}
	return
}

func (pd *ProblemData) ToPrimitive(q ConservedState) (w PrimitiveState, err error) {
	if q.Rho <= 0 {
		err = fmt.Errorf("%w: rho = %v", ErrInvalidState, q.Rho)
		return
	}
	var (
		u = q.RhoU / q.Rho
		p = pd.Gamma1 * (q.Ener - 0.5*q.RhoU*u)
	)
	if p <= 0 {
		err = fmt.Errorf("%w: rho = %v, p = %v (negative pressure from E = %v)",
			ErrInvalidState, q.Rho, p, q.Ener)
		return
	}
	w = PrimitiveState{Rho: q.Rho, U: u, P: p}
	return
}

// Flux is the physical flux vector f(q) = (rho*u, rho*u^2+p, u*(E+p))
func (pd *ProblemData) Flux(q ConservedState) (f ConservedState) {
	var (
		u = q.RhoU / q.Rho
		p = pd.Gamma1 * (q.Ener - 0.5*q.RhoU*u)
	)
	f = ConservedState{
		Rho:  q.RhoU,
		RhoU: q.RhoU*u + p,
		Ener: u * (q.Ener + p),
	}
	return
}

func (pd *ProblemData) SoundSpeed(w PrimitiveState) (c float64, err error) {
	if w.Rho <= 0 {
		err = fmt.Errorf("%w: rho = %v", ErrInvalidState, w.Rho)
		return
	}
	c = math.Sqrt(pd.Gamma * w.P / w.Rho)
	return
}

// Eigenvalues returns the three characteristic speeds (u-c, u, u+c)
func (pd *ProblemData) Eigenvalues(w PrimitiveState) (lam [3]float64, err error) {
	var c float64
	if c, err = pd.SoundSpeed(w); err != nil {
		return
	}
	lam = [3]float64{w.U - c, w.U, w.U + c}
	return
}

// Enthalpy is the total specific enthalpy H = (E+p)/rho
func (pd *ProblemData) Enthalpy(q ConservedState) (h float64) {
	var (
		u = q.RhoU / q.Rho
		p = pd.Gamma1 * (q.Ener - 0.5*q.RhoU*u)
	)
	h = (q.Ener + p) / q.Rho
	return
}
