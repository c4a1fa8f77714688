package riemann

import (
	"gonum.org/v1/gonum/mat"

	"github.com/notargets/riemann/fluids"
)

// RoeMatrix builds the Roe-averaged flux Jacobian A(qHat) as a dense 3x3
// matrix. Its eigenvalues are the wave speeds SolveRoe uses (without the
// entropy fix) and its eigenvectors carry the wave jumps, so it serves as an
// independent diagnostic of the closed-form eigenstructure.
func RoeMatrix(left, right fluids.PrimitiveState, pd *fluids.ProblemData) (a *mat.Dense, err error) {
	var (
		qL, qR fluids.ConservedState
	)
	if qL, err = pd.ToConserved(left); err != nil {
		return
	}
	if qR, err = pd.ToConserved(right); err != nil {
		return
	}
	uHat, hHat, _, _, err := roeAverage(qL, qR, pd)
	if err != nil {
		return
	}
	var (
		g1 = pd.Gamma1
		u  = uHat
		h  = hHat
	)
	a = mat.NewDense(3, 3, []float64{
		0, 1, 0,
		0.5*g1*u*u - u*u, (3.-pd.Gamma)*u, g1,
		u*(0.5*g1*u*u-h), h - g1*u*u, pd.Gamma * u,
	})
	return
}
