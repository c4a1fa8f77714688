// Package sod_shock_tube evaluates the analytic solution of Sod's shock tube
// problem. It is the reference oracle the approximate solvers are compared
// against: a general exact Riemann solver is out of scope, but the classic
// Sod configuration (rho=1, p=1 | rho=0.125, p=0.1, gamma=1.4) has a closed
// self-similar form once the post-shock pressure is found from a single
// scalar root find.
package sod_shock_tube

import (
	"errors"
	"fmt"
	"math"
)

var ErrNoConvergence = errors.New("sod_shock_tube: root find did not converge")

const (
	Gamma = 1.4
	XMin  = 0.
	XMax  = 1.
	X0    = 0.5 * (XMax + XMin) // diaphragm location

	RhoL, PL, UL = 1., 1., 0.
	RhoR, PR, UR = 0.125, 0.1, 0.
)

// Profile is the exact solution at one time: a piecewise sampling bracketing
// the four breakpoints, plus the breakpoints themselves. X1..X2 is the
// rarefaction fan, X3 the contact, X4 the shock. E is the specific internal
// energy p/((gamma-1) rho).
type Profile struct {
	X, Rho, P, U, E []float64
	X1, X2, X3, X4  float64
}

// Calc solves for the post-shock pressure and assembles the exact profile at
// time t.
func Calc(t float64) (prof *Profile, err error) {
	var (
		gamma  = Gamma
		mu2    = (gamma - 1) / (gamma + 1)
		c_l    = math.Sqrt(gamma * PL / RhoL)
		P_post float64
	)
	if P_post, err = fzero(sodFunc, PR, PL); err != nil {
		return
	}
	var (
		v_post     = 2 * (math.Sqrt(gamma) / (gamma - 1)) * (1 - math.Pow(P_post, (gamma-1)/(2*gamma)))
		rho_post   = RhoR * (((P_post / PR) + mu2) / (1 + mu2*(P_post/PR)))
		v_shock    = v_post * (rho_post / RhoR) / ((rho_post / RhoR) - 1.)
		rho_middle = RhoL * math.Pow(P_post/PL, 1./gamma)
		// Key positions
		x1 = X0 - c_l*t
		x3 = X0 + v_post*t
		x4 = X0 + v_shock*t
		// x2 from the fan tail speed
		c_2 = c_l - 0.5*(gamma-1.)*v_post
		x2  = X0 + t*(v_post-c_2)
	)
	tol := 0.00000001
	X := []float64{
		XMin,
		x1 - tol, x1 + tol,
		x2 - tol, x2 + tol,
		x3 - tol, x3 + tol,
		x4 - tol, x4 + tol,
		XMax,
	}
	prof = &Profile{
		X:   X,
		Rho: make([]float64, len(X)),
		P:   make([]float64, len(X)),
		U:   make([]float64, len(X)),
		E:   make([]float64, len(X)),
		X1:  x1, X2: x2, X3: x3, X4: x4,
	}
	for i, x := range X {
		switch {
		case x < x1:
			prof.Rho[i] = RhoL
			prof.P[i] = PL
			prof.U[i] = UL
		case x1 <= x && x <= x2:
			c := mu2*((X0-x)/t) + (1.-mu2)*c_l
			prof.Rho[i] = RhoL * math.Pow(c/c_l, 2/(gamma-1))
			prof.P[i] = PL * math.Pow(prof.Rho[i]/RhoL, gamma)
			prof.U[i] = (1. - mu2) * ((-(X0 - x) / t) + c_l)
		case x2 <= x && x <= x3:
			prof.Rho[i] = rho_middle
			prof.P[i] = P_post
			prof.U[i] = v_post
		case x3 <= x && x <= x4:
			prof.Rho[i] = rho_post
			prof.P[i] = P_post
			prof.U[i] = v_post
		case x4 < x:
			prof.Rho[i] = RhoR
			prof.P[i] = PR
			prof.U[i] = UR
		}
		prof.E[i] = prof.P[i] / ((gamma - 1.) * prof.Rho[i])
	}
	return
}

// fzero finds the root of f bracketed by [a, b] with a secant iteration,
// falling back to bisection when the secant step leaves the bracket.
func fzero(f func(P float64) (y float64), a, b float64) (root float64, err error) {
	var (
		tol     = 0.0000001
		maxIter = 200
		fa, fb  = f(a), f(b)
	)
	if fa*fb > 0 {
		err = fmt.Errorf("%w: no sign change on [%v, %v]", ErrNoConvergence, a, b)
		return
	}
	for i := 0; i < maxIter; i++ {
		m := b - fb*(b-a)/(fb-fa)
		if m <= math.Min(a, b) || m >= math.Max(a, b) {
			m = 0.5 * (a + b)
		}
		fm := f(m)
		if math.Abs(fm) < tol {
			root = m
			return
		}
		if fa*fm <= 0 {
			b, fb = m, fm
		} else {
			a, fa = m, fm
		}
	}
	err = fmt.Errorf("%w after %d iterations", ErrNoConvergence, maxIter)
	return
}

// sodFunc vanishes at the post-shock pressure: the velocity behind the shock
// (Rankine-Hugoniot) must match the velocity behind the rarefaction (Riemann
// invariant).
func sodFunc(P float64) (y float64) {
	var (
		gamma = Gamma
		mu2   = (gamma - 1) / (gamma + 1)
	)
	y = (P-PR)*math.Sqrt((1-mu2)/(RhoR*(P+mu2*PR))) - 2*(math.Sqrt(gamma)/(gamma-1))*(1-math.Pow(P, (gamma-1)/(2*gamma)))
	return
}
