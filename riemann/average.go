package riemann

import (
	"fmt"
	"math"

	"github.com/notargets/riemann/fluids"
)

// roeAverage computes the sqrt(rho)-weighted average velocity, total enthalpy,
// sound speed and density from the left/right conserved states. The averaged
// state satisfies the Roe property: the jump in flux equals the averaged
// Jacobian applied to the jump in state.
func roeAverage(qL, qR fluids.ConservedState, pd *fluids.ProblemData) (uHat, hHat, cHat, rhoHat float64, err error) {
	var (
		srL, srR = math.Sqrt(qL.Rho), math.Sqrt(qR.Rho)
		oos      = 1. / (srL + srR)
	)
	uHat = (srL*qL.RhoU/qL.Rho + srR*qR.RhoU/qR.Rho) * oos
	hHat = (srL*pd.Enthalpy(qL) + srR*pd.Enthalpy(qR)) * oos
	rhoHat = srL * srR
	c2 := pd.Gamma1 * (hHat - 0.5*uHat*uHat)
	if c2 <= 0 {
		err = fmt.Errorf("%w: Roe average has c^2 = %v (uHat = %v, hHat = %v)",
			fluids.ErrInvalidState, c2, uHat, hHat)
		return
	}
	cHat = math.Sqrt(c2)
	return
}
