package riemann

import (
	"fmt"

	"github.com/notargets/riemann/fluids"
)

type WaveType uint8

const (
	Unclassified WaveType = iota
	Shock
	Contact
	RarefactionApprox
)

var waveTypeNames = []string{"Unclassified", "Shock", "Contact", "RarefactionApprox"}

func (wt WaveType) String() string {
	return waveTypeNames[int(wt)]
}

// Wave is a single discontinuity in a self-similar Riemann fan. Approximate
// solvers collapse rarefactions into discontinuities and in general cannot
// classify the wave type, so Type is Unclassified unless the solver knows
// better (e.g. the sub-waves of an entropy-fixed transonic rarefaction).
type Wave struct {
	Speed       float64
	Left, Right fluids.ConservedState
	Family      int // characteristic family, 1..3
	Type        WaveType
}

// Solution is the wave structure produced by one solver invocation: the left
// and right input states in conserved form and the ordered wave list between
// them. Wave speeds are monotonically non-decreasing left to right, and
// Waves[i].Right == Waves[i+1].Left.
type Solution struct {
	Left, Right fluids.ConservedState
	Waves       []Wave
}

// Speeds returns the ordered wave speeds
func (sol *Solution) Speeds() (s []float64) {
	s = make([]float64, len(sol.Waves))
	for i, w := range sol.Waves {
		s[i] = w.Speed
	}
	return
}

// MiddleStates returns the intermediate states strictly between Left and Right
func (sol *Solution) MiddleStates() (states []fluids.ConservedState) {
	for i := 0; i < len(sol.Waves)-1; i++ {
		states = append(states, sol.Waves[i].Right)
	}
	return
}

// Evaluate returns the conserved state at (x, t) for t > 0. The solution is
// self-similar in xi = x/t; a point sitting exactly on a wave speed takes the
// state to that wave's right.
func (sol *Solution) Evaluate(x, t float64) (q fluids.ConservedState, err error) {
	if t <= 0 {
		err = fmt.Errorf("%w: t = %v", ErrNonPositiveTime, t)
		return
	}
	xi := x / t
	q = sol.Left
	for _, w := range sol.Waves {
		if xi < w.Speed {
			return
		}
		q = w.Right
	}
	return
}
