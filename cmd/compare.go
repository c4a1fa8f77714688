/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"math"
	"os"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/floats"

	"github.com/notargets/riemann/InputParameters"
	"github.com/notargets/riemann/fluids"
	"github.com/notargets/riemann/riemann"
	"github.com/notargets/riemann/sod_shock_tube"
)

// compareCmd represents the compare command
var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare HLLE and Roe on the same Riemann problem",
	Long: `
Runs the HLLE and Roe solvers side by side on the same problem and prints a
sampled density comparison. When the problem is Sod's shock tube, the analytic
solution is included as a reference column,

riemann compare -f problem.yaml -t 0.2`,
	Run: func(cmd *cobra.Command, args []string) {
		ip, err := loadParameters(cmd)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		ip.Print()
		if err = runCompare(ip); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(compareCmd)
	compareCmd.Flags().StringP("input", "f", "", "YAML problem definition file")
	compareCmd.Flags().StringP("solver", "s", "", "ignored, both solvers are run")
	compareCmd.Flags().BoolP("efix", "e", false, "enable the Roe entropy fix")
	compareCmd.Flags().Float64P("finalTime", "t", 0, "time at which to sample the profiles")
}

func runCompare(ip *InputParameters.InputParameters1D) (err error) {
	left, right, pd, err := problemFromParameters(ip)
	if err != nil {
		return
	}
	var (
		hlle, roe *riemann.Solution
	)
	if hlle, err = riemann.SolveHLLE(left, right, pd); err != nil {
		return
	}
	if roe, err = riemann.SolveRoe(left, right, pd); err != nil {
		return
	}
	fmt.Printf("\nHLLE speeds: %v\n", hlle.Speeds())
	fmt.Printf("Roe speeds:  %v\n", roe.Speeds())

	var exact *sod_shock_tube.Profile
	if isSodProblem(ip) {
		if exact, err = sod_shock_tube.Calc(ip.FinalTime); err != nil {
			return
		}
		fmt.Printf("Exact breakpoints: x1 = %8.5f, x2 = %8.5f, x3 = %8.5f, x4 = %8.5f\n",
			exact.X1, exact.X2, exact.X3, exact.X4)
	}

	var (
		x0 = 0.5 * (ip.XMin + ip.XMax)
		X  = floats.Span(make([]float64, max(ip.NumSamples, 2)), ip.XMin, ip.XMax)
	)
	fmt.Printf("\nDensity at t = %8.5f\n", ip.FinalTime)
	if exact != nil {
		fmt.Printf("%12s %12s %12s %12s\n", "x", "HLLE", "Roe", "Exact")
	} else {
		fmt.Printf("%12s %12s %12s\n", "x", "HLLE", "Roe")
	}
	for _, x := range X {
		var qh, qr fluids.ConservedState
		if qh, err = hlle.Evaluate(x-x0, ip.FinalTime); err != nil {
			return
		}
		if qr, err = roe.Evaluate(x-x0, ip.FinalTime); err != nil {
			return
		}
		if exact != nil {
			fmt.Printf("%12.6f %12.6f %12.6f %12.6f\n", x, qh.Rho, qr.Rho, sampleExact(exact, x))
		} else {
			fmt.Printf("%12.6f %12.6f %12.6f\n", x, qh.Rho, qr.Rho)
		}
	}
	return
}

// isSodProblem reports whether the input matches the classic Sod setup the
// analytic reference is built for.
func isSodProblem(ip *InputParameters.InputParameters1D) bool {
	near := func(a, b float64) bool { return math.Abs(a-b) < 1.e-12 }
	return near(ip.Gamma, sod_shock_tube.Gamma) &&
		near(ip.XMin, sod_shock_tube.XMin) && near(ip.XMax, sod_shock_tube.XMax) &&
		near(ip.Left.Rho, sod_shock_tube.RhoL) && near(ip.Left.U, sod_shock_tube.UL) &&
		near(ip.Left.P, sod_shock_tube.PL) &&
		near(ip.Right.Rho, sod_shock_tube.RhoR) && near(ip.Right.U, sod_shock_tube.UR) &&
		near(ip.Right.P, sod_shock_tube.PR)
}

// sampleExact interpolates the piecewise exact profile at x by nearest
// breakpoint interval (the profile brackets each discontinuity tightly, so
// linear interpolation within an interval is exact to plotting accuracy).
func sampleExact(prof *sod_shock_tube.Profile, x float64) (rho float64) {
	n := len(prof.X)
	switch {
	case x <= prof.X[0]:
		rho = prof.Rho[0]
	case x >= prof.X[n-1]:
		rho = prof.Rho[n-1]
	default:
		for i := 0; i < n-1; i++ {
			if x >= prof.X[i] && x <= prof.X[i+1] {
				frac := (x - prof.X[i]) / (prof.X[i+1] - prof.X[i])
				rho = prof.Rho[i] + frac*(prof.Rho[i+1]-prof.Rho[i])
				return
			}
		}
		rho = prof.Rho[n-1]
	}
	return
}
