package riemann

import (
	"fmt"
	"strings"

	"github.com/notargets/riemann/fluids"
)

type Kind uint8

const (
	HLLE Kind = iota
	Roe
)

var (
	KindNames = map[string]Kind{
		"hlle": HLLE,
		"roe":  Roe,
	}
	KindPrintNames = []string{"HLLE", "Roe"}
)

func (k Kind) String() (txt string) {
	txt = KindPrintNames[k]
	return
}

func NewKind(label string) (k Kind, err error) {
	var ok bool
	label = strings.ToLower(label)
	if k, ok = KindNames[label]; !ok {
		err = fmt.Errorf("%w: %q", ErrUnknownSolver, label)
	}
	return
}

// Solve runs the selected approximate solver on the Riemann problem
// (left | right) under the given problem data.
func Solve(kind Kind, left, right fluids.PrimitiveState, pd *fluids.ProblemData) (sol *Solution, err error) {
	switch kind {
	case HLLE:
		sol, err = SolveHLLE(left, right, pd)
	case Roe:
		sol, err = SolveRoe(left, right, pd)
	default:
		err = fmt.Errorf("%w: kind %d", ErrUnknownSolver, kind)
	}
	return
}
