package riemann

import (
	"fmt"
	"math"

	"github.com/notargets/riemann/fluids"
)

// Relative tolerance below which the two HLLE bounding speeds are treated as
// coincident.
const degenerateSpeedTol = 1.e-12

// SolveHLLE approximates the Riemann fan with two bounding waves and a single
// constant state between them. The bounding speeds are the Einfeldt estimates:
// the Roe-averaged extreme eigenvalues widened by the one-sided characteristic
// speeds.
func SolveHLLE(left, right fluids.PrimitiveState, pd *fluids.ProblemData) (sol *Solution, err error) {
	var (
		qL, qR fluids.ConservedState
		cL, cR float64
	)
	if qL, err = pd.ToConserved(left); err != nil {
		return
	}
	if qR, err = pd.ToConserved(right); err != nil {
		return
	}
	if cL, err = pd.SoundSpeed(left); err != nil {
		return
	}
	if cR, err = pd.SoundSpeed(right); err != nil {
		return
	}
	uHat, _, cHat, _, err := roeAverage(qL, qR, pd)
	if err != nil {
		return
	}
	var (
		sL = math.Min(uHat-cHat, left.U-cL)
		sR = math.Max(uHat+cHat, right.U+cR)
	)
	if sR-sL <= degenerateSpeedTol*math.Max(1, math.Max(math.Abs(sL), math.Abs(sR))) {
		err = fmt.Errorf("%w: sL = %v, sR = %v", ErrDegenerateWaveSpeed, sL, sR)
		return
	}
	var qm fluids.ConservedState
	switch {
	case sL >= 0:
		// Fan entirely to the right of x=0, the left state holds there
		qm = qL
	case sR <= 0:
		qm = qR
	default:
		// HLL conservation identity across the fan
		var (
			fL, fR = pd.Flux(qL), pd.Flux(qR)
			oods   = 1. / (sR - sL)
		)
		qm = fluids.ConservedState{
			Rho:  (sR*qR.Rho - sL*qL.Rho + fL.Rho - fR.Rho) * oods,
			RhoU: (sR*qR.RhoU - sL*qL.RhoU + fL.RhoU - fR.RhoU) * oods,
			Ener: (sR*qR.Ener - sL*qL.Ener + fL.Ener - fR.Ener) * oods,
		}
		if _, err = pd.ToPrimitive(qm); err != nil {
			err = fmt.Errorf("HLLE middle state: %w", err)
			return
		}
	}
	sol = &Solution{
		Left:  qL,
		Right: qR,
		Waves: []Wave{
			{Speed: sL, Left: qL, Right: qm, Family: 1, Type: Unclassified},
			{Speed: sR, Left: qm, Right: qR, Family: 3, Type: Unclassified},
		},
	}
	return
}
