package riemann

import (
	"fmt"

	"github.com/notargets/riemann/fluids"
)

// SolveRoe linearizes the Riemann problem about the Roe-averaged state and
// decomposes the jump qR - qL into three waves, one per characteristic family.
// With pd.EntropyFix set, a transonic rarefaction in family 1 or 3 is split
// into two sub-waves (Harten-Hyman) so the fan is not drawn as a single
// expansion shock.
//
// The linearization is kept faithful to its known limitations: for strong
// waves the wave speeds, and even the propagation direction of the contact,
// can diverge qualitatively from the exact solution.
func SolveRoe(left, right fluids.PrimitiveState, pd *fluids.ProblemData) (sol *Solution, err error) {
	var (
		qL, qR fluids.ConservedState
	)
	if qL, err = pd.ToConserved(left); err != nil {
		return
	}
	if qR, err = pd.ToConserved(right); err != nil {
		return
	}
	uHat, hHat, cHat, rhoHat, err := roeAverage(qL, qR, pd)
	if err != nil {
		return
	}
	var (
		dRho, dU, dP = right.Rho - left.Rho, right.U - left.U, right.P - left.P
		ooc2         = 1. / (cHat * cHat)
		// Wave strengths: the jump projected onto the left eigenvectors
		alpha = [3]float64{
			(dP - rhoHat*cHat*dU) * 0.5 * ooc2,
			dRho - dP*ooc2,
			(dP + rhoHat*cHat*dU) * 0.5 * ooc2,
		}
		lambda = [3]float64{uHat - cHat, uHat, uHat + cHat}
		rvec   = [3]fluids.ConservedState{
			{Rho: 1, RhoU: uHat - cHat, Ener: hHat - uHat*cHat},
			{Rho: 1, RhoU: uHat, Ener: 0.5 * uHat * uHat},
			{Rho: 1, RhoU: uHat + cHat, Ener: hHat + uHat*cHat},
		}
	)
	// Cumulative states, left to right. The last sum telescopes to qR exactly
	// in real arithmetic; snap it there to shed the round-off.
	var states [4]fluids.ConservedState
	states[0] = qL
	for k := 0; k < 2; k++ {
		states[k+1] = addScaled(states[k], rvec[k], alpha[k])
		if _, err = pd.ToPrimitive(states[k+1]); err != nil {
			err = fmt.Errorf("Roe intermediate state %d: %w", k+1, err)
			return
		}
	}
	states[3] = qR

	sol = &Solution{Left: qL, Right: qR}
	for k := 0; k < 3; k++ {
		qa, qb := states[k], states[k+1]
		if pd.EntropyFix && k != 1 {
			var split []Wave
			if split, err = transonicSplit(k, qa, qb, lambda[k], alpha[k], rvec[k], pd); err != nil {
				return
			}
			if split != nil {
				sol.Waves = append(sol.Waves, split...)
				continue
			}
		}
		sol.Waves = append(sol.Waves, Wave{
			Speed: lambda[k], Left: qa, Right: qb, Family: k + 1, Type: Unclassified,
		})
	}
	return
}

// transonicSplit applies the Harten-Hyman entropy fix to an acoustic family
// (k = 0 or 2). When the family eigenvalue changes sign across the wave, the
// jump alpha*r is partitioned between two sub-waves at the one-sided
// eigenvalue speeds, with the fraction beta chosen by linear interpolation of
// the speed. Returns nil waves when the wave is not transonic.
func transonicSplit(k int, qa, qb fluids.ConservedState, lamHat, alpha float64,
	r fluids.ConservedState, pd *fluids.ProblemData) (waves []Wave, err error) {
	var (
		wa, wb fluids.PrimitiveState
		ca, cb float64
		sgn    = 1.
	)
	if k == 0 {
		sgn = -1.
	}
	if wa, err = pd.ToPrimitive(qa); err != nil {
		return
	}
	if wb, err = pd.ToPrimitive(qb); err != nil {
		return
	}
	if ca, err = pd.SoundSpeed(wa); err != nil {
		return
	}
	if cb, err = pd.SoundSpeed(wb); err != nil {
		return
	}
	var (
		lamL = wa.U + sgn*ca
		lamR = wb.U + sgn*cb
	)
	if lamL >= 0 || lamR <= 0 {
		return
	}
	beta := (lamR - lamHat) / (lamR - lamL)
	qm := addScaled(qa, r, beta*alpha)
	if _, err = pd.ToPrimitive(qm); err != nil {
		err = fmt.Errorf("entropy fix sub-state (family %d): %w", k+1, err)
		return
	}
	waves = []Wave{
		{Speed: lamL, Left: qa, Right: qm, Family: k + 1, Type: RarefactionApprox},
		{Speed: lamR, Left: qm, Right: qb, Family: k + 1, Type: RarefactionApprox},
	}
	return
}

func addScaled(q, r fluids.ConservedState, a float64) fluids.ConservedState {
	return fluids.ConservedState{
		Rho:  q.Rho + a*r.Rho,
		RhoU: q.RhoU + a*r.RhoU,
		Ener: q.Ener + a*r.Ener,
	}
}
