package InputParameters

import (
	"fmt"

	"github.com/ghodss/yaml"
)

// StateParameters is one primitive gas state as read from the input file
type StateParameters struct {
	Rho float64 `yaml:"Rho"`
	U   float64 `yaml:"U"`
	P   float64 `yaml:"P"`
}

// Parameters obtained from the YAML input file
type InputParameters1D struct {
	Title      string          `yaml:"Title"`
	Gamma      float64         `yaml:"Gamma"`
	EntropyFix bool            `yaml:"EntropyFix"`
	Solver     string          `yaml:"Solver"` // "hlle" or "roe"
	Left       StateParameters `yaml:"Left"`
	Right      StateParameters `yaml:"Right"`
	FinalTime  float64         `yaml:"FinalTime"`
	XMin       float64         `yaml:"XMin"`
	XMax       float64         `yaml:"XMax"`
	NumSamples int             `yaml:"NumSamples"`
}

// NewInputParameters1D returns the Sod shock tube setup, the default problem
func NewInputParameters1D() (ip *InputParameters1D) {
	ip = &InputParameters1D{
		Title:      "Sod Shock Tube",
		Gamma:      1.4,
		Solver:     "roe",
		Left:       StateParameters{Rho: 1, U: 0, P: 1},
		Right:      StateParameters{Rho: 0.125, U: 0, P: 0.1},
		FinalTime:  0.2,
		XMin:       0,
		XMax:       1,
		NumSamples: 50,
	}
	return
}

func (ip *InputParameters1D) Parse(data []byte) error {
	return yaml.Unmarshal(data, ip)
}

func (ip *InputParameters1D) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", ip.Title)
	fmt.Printf("%8.5f\t\t= Gamma\n", ip.Gamma)
	fmt.Printf("[%s]\t\t\t= Solver\n", ip.Solver)
	fmt.Printf("%v\t\t\t= EntropyFix\n", ip.EntropyFix)
	fmt.Printf("%8.5f %8.5f %8.5f\t= Left (Rho, U, P)\n", ip.Left.Rho, ip.Left.U, ip.Left.P)
	fmt.Printf("%8.5f %8.5f %8.5f\t= Right (Rho, U, P)\n", ip.Right.Rho, ip.Right.U, ip.Right.P)
	fmt.Printf("%8.5f\t\t= FinalTime\n", ip.FinalTime)
	fmt.Printf("[%8.5f, %8.5f]\t= Domain\n", ip.XMin, ip.XMax)
	fmt.Printf("[%d]\t\t\t= NumSamples\n", ip.NumSamples)
}
