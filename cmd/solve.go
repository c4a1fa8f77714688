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
	"os"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/floats"

	"github.com/notargets/riemann/InputParameters"
	"github.com/notargets/riemann/fluids"
	"github.com/notargets/riemann/riemann"
)

// solveCmd represents the solve command
var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Solve one Riemann problem with an approximate solver",
	Long: `
Solves the Riemann problem given by the input YAML file (Sod's shock tube by
default) with the selected approximate solver and prints the wave structure
and a sampled profile at the final time,

riemann solve -f problem.yaml -s hlle`,
	Run: func(cmd *cobra.Command, args []string) {
		ip, err := loadParameters(cmd)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		if prof, _ := cmd.Flags().GetBool("cpuprofile"); prof {
			defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
		}
		ip.Print()
		if err = runSolve(ip); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(solveCmd)
	solveCmd.Flags().StringP("input", "f", "", "YAML problem definition file")
	solveCmd.Flags().StringP("solver", "s", "", "solver to use: hlle or roe")
	solveCmd.Flags().BoolP("efix", "e", false, "enable the Roe entropy fix")
	solveCmd.Flags().Float64P("finalTime", "t", 0, "time at which to sample the profile")
	solveCmd.Flags().Bool("cpuprofile", false, "write a CPU profile to the working directory")
}

// loadParameters builds the problem parameters from defaults, the optional
// input file and the command flags, in that order.
func loadParameters(cmd *cobra.Command) (ip *InputParameters.InputParameters1D, err error) {
	ip = InputParameters.NewInputParameters1D()
	if fileName, _ := cmd.Flags().GetString("input"); fileName != "" {
		var data []byte
		if data, err = os.ReadFile(fileName); err != nil {
			err = fmt.Errorf("unable to read problem file %s: %w", fileName, err)
			return
		}
		if err = ip.Parse(data); err != nil {
			err = fmt.Errorf("unable to parse problem file %s: %w", fileName, err)
			return
		}
	}
	if solver, _ := cmd.Flags().GetString("solver"); solver != "" {
		ip.Solver = solver
	}
	if efix, _ := cmd.Flags().GetBool("efix"); efix {
		ip.EntropyFix = true
	}
	if ft, _ := cmd.Flags().GetFloat64("finalTime"); ft != 0 {
		ip.FinalTime = ft
	}
	return
}

func problemFromParameters(ip *InputParameters.InputParameters1D) (left, right fluids.PrimitiveState, pd *fluids.ProblemData, err error) {
	if pd, err = fluids.NewProblemData(ip.Gamma, ip.EntropyFix); err != nil {
		return
	}
	left = fluids.PrimitiveState{Rho: ip.Left.Rho, U: ip.Left.U, P: ip.Left.P}
	right = fluids.PrimitiveState{Rho: ip.Right.Rho, U: ip.Right.U, P: ip.Right.P}
	return
}

func runSolve(ip *InputParameters.InputParameters1D) (err error) {
	var (
		kind riemann.Kind
		sol  *riemann.Solution
	)
	if kind, err = riemann.NewKind(ip.Solver); err != nil {
		return
	}
	left, right, pd, err := problemFromParameters(ip)
	if err != nil {
		return
	}
	if sol, err = riemann.Solve(kind, left, right, pd); err != nil {
		return
	}
	fmt.Printf("\nSolver: %s\n", kind)
	printWaves(sol)
	printProfile(sol, pd, ip)
	return
}

func printWaves(sol *riemann.Solution) {
	fmt.Printf("%-8s %12s %8s %s\n", "Wave", "Speed", "Family", "Type")
	for i, w := range sol.Waves {
		fmt.Printf("%-8d %12.6f %8d %s\n", i+1, w.Speed, w.Family, w.Type)
	}
	for i, q := range sol.MiddleStates() {
		fmt.Printf("Middle state %d: Rho = %8.5f, RhoU = %8.5f, Ener = %8.5f\n",
			i+1, q.Rho, q.RhoU, q.Ener)
	}
}

func printProfile(sol *riemann.Solution, pd *fluids.ProblemData, ip *InputParameters.InputParameters1D) {
	var (
		x0 = 0.5 * (ip.XMin + ip.XMax)
		X  = floats.Span(make([]float64, max(ip.NumSamples, 2)), ip.XMin, ip.XMax)
	)
	fmt.Printf("\nProfile at t = %8.5f\n", ip.FinalTime)
	fmt.Printf("%12s %12s %12s %12s %12s\n", "x", "Rho", "U", "P", "Ener")
	for _, x := range X {
		q, err := sol.Evaluate(x-x0, ip.FinalTime)
		if err != nil {
			fmt.Println(err)
			return
		}
		fmt.Printf("%12.6f %12.6f %12.6f %12.6f %12.6f\n", x,
			pd.GetFlowFunction(q, fluids.Density),
			pd.GetFlowFunction(q, fluids.Velocity),
			pd.GetFlowFunction(q, fluids.StaticPressure),
			pd.GetFlowFunction(q, fluids.Energy))
	}
}
