package fluids

import "math"

type FlowFunction uint8

func (pm FlowFunction) String() string {
	strings := []string{
		"Density",
		"Momentum",
		"Energy",
		"Velocity",
		"Static Pressure",
		"Dynamic Pressure",
		"Sound Speed",
		"Enthalpy",
		"Mach",
	}
	return strings[int(pm)]
}

const (
	Density FlowFunction = iota
	Momentum
	Energy
	Velocity
	StaticPressure  // 4
	DynamicPressure // 5
	SoundSpeedF     // 6
	EnthalpyF       // 7
	MachNumber      // 8
)

// GetFlowFunction extracts a derived scalar from a conserved state. The state
// is assumed physically valid; use ToPrimitive first to validate.
func (pd *ProblemData) GetFlowFunction(q ConservedState, pf FlowFunction) (f float64) {
	var (
		oorho = 1. / q.Rho
		qd, p float64
	)
	// Calculate qd if needed
	switch pf {
	case StaticPressure, DynamicPressure, SoundSpeedF, EnthalpyF, MachNumber:
		qd = 0.5 * q.RhoU * q.RhoU * oorho
	}
	// Calculate p if needed
	switch pf {
	case StaticPressure, SoundSpeedF, EnthalpyF, MachNumber:
		p = pd.Gamma1 * (q.Ener - qd)
	}

	switch pf {
	case Density:
		f = q.Rho
	case Momentum:
		f = q.RhoU
	case Energy:
		f = q.Ener
	case Velocity:
		f = q.RhoU * oorho
	case StaticPressure:
		f = p
	case DynamicPressure:
		f = qd
	case SoundSpeedF:
		f = math.Sqrt(math.Abs(pd.Gamma * p * oorho))
	case EnthalpyF:
		f = (q.Ener + p) * oorho
	case MachNumber:
		C := math.Sqrt(math.Abs(pd.Gamma * p * oorho))
		f = math.Abs(q.RhoU*oorho) / C
	}
	return
}
