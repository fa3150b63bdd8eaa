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

	"github.com/spf13/cobra"

	"github.com/notargets/gopanel/InputParameters"
	"github.com/notargets/gopanel/geometry2D"
	"github.com/notargets/gopanel/panel2D"
	"github.com/notargets/gopanel/readfiles"
)

// solveCmd represents the solve command
var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Solve a single configuration and print surface and force results",
	Long:  `Solve a single configuration and print surface and force results`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("solve called")
		caseFile, err := cmd.Flags().GetString("caseFile")
		if err != nil {
			panic(err)
		}
		verbose, _ := cmd.Flags().GetBool("verbose")
		cp := processCaseFile(caseFile)
		RunSolve(cp, verbose)
	},
}

func init() {
	rootCmd.AddCommand(solveCmd)
	solveCmd.Flags().StringP("caseFile", "I", "", "YAML file for case parameters like:\n\t- Uinf\n\t- Alpha (deg)\n\t- element coordinate files")
	solveCmd.Flags().BoolP("verbose", "v", false, "print per-panel surface quantities")
}

func processCaseFile(caseFile string) (cp *InputParameters.CaseParameters) {
	var (
		err error
	)
	if len(caseFile) == 0 {
		err = fmt.Errorf("must supply a case file (-I, --caseFile) in YAML format")
		fmt.Printf("error: %s\n", err.Error())
		exampleFile := `
########################################
Title: "Main + Flap"
Uinf: 1.
Alpha: 4. # degrees
MainFile: mainfoil.csv
FlapFile: flap.csv
HingeX: 1.03
HingeY: 0.
Deflections: [0., 5., 10.]
########################################
`
		fmt.Printf("Example File:%s\n", exampleFile)
		os.Exit(1)
	}
	var data []byte
	if data, err = os.ReadFile(caseFile); err != nil {
		panic(err)
	}
	cp = &InputParameters.CaseParameters{}
	if err = cp.Parse(data); err != nil {
		panic(err)
	}
	if err = cp.Validate(); err != nil {
		fmt.Printf("error: %s\n", err.Error())
		os.Exit(1)
	}
	cp.Print()
	return
}

func loadConfiguration(cp *InputParameters.CaseParameters, verbose bool) (cfg *geometry2D.Configuration) {
	var (
		err      error
		elements []*geometry2D.Element
	)
	mainPts, err := readfiles.ReadCoordinates(cp.MainFile, verbose)
	if err != nil {
		panic(err)
	}
	mainEl, err := geometry2D.NewElement("main", mainPts)
	if err != nil {
		panic(err)
	}
	elements = append(elements, mainEl)
	if len(cp.FlapFile) != 0 {
		flapPts, err := readfiles.ReadCoordinates(cp.FlapFile, verbose)
		if err != nil {
			panic(err)
		}
		flapEl, err := geometry2D.NewElement("flap", flapPts)
		if err != nil {
			panic(err)
		}
		elements = append(elements, flapEl)
	}
	cfg = geometry2D.NewConfiguration(elements...)
	return
}

func RunSolve(cp *InputParameters.CaseParameters, verbose bool) {
	var (
		cfg  = loadConfiguration(cp, verbose)
		free = panel2D.NewFreestream(cp.Uinf, cp.Alpha)
	)
	pf := panel2D.NewPotentialFlow(cfg, free)
	pf.ConditionLimit = cp.ConditionLimit
	if err := pf.Solve(); err != nil {
		fmt.Printf("solve failed: %s\n", err.Error())
		os.Exit(1)
	}
	pf.Report()
	if verbose {
		for _, e := range cfg.Elements {
			fmt.Printf("element %q: gamma = %10.6f\n", e.Name, e.Gamma)
			fmt.Printf("%10s %10s %10s %10s %10s %6s\n", "xc", "yc", "sigma", "vt", "cp", "side")
			for _, p := range e.Panels {
				fmt.Printf("%10.5f %10.5f %10.5f %10.5f %10.5f %6s\n",
					p.Xc, p.Yc, p.Sigma, p.Vt, p.Cp, p.Side)
			}
		}
	}
}
