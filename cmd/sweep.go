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

	"github.com/notargets/gopanel/InputParameters"
	"github.com/notargets/gopanel/geometry2D"
	"github.com/notargets/gopanel/panel2D"
	"github.com/notargets/gopanel/readfiles"
)

// sweepCmd represents the sweep command
var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Sweep flap deflection angles and report lift ratios",
	Long: `
Rebuilds the flap about its hinge at each deflection angle, solves each
configuration and tabulates Cl and the ratio to the undeflected case.

gopanel sweep -I case.yaml`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("sweep called")
		caseFile, err := cmd.Flags().GetString("caseFile")
		if err != nil {
			panic(err)
		}
		verbose, _ := cmd.Flags().GetBool("verbose")
		if prof, _ := cmd.Flags().GetBool("profile"); prof {
			defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
		}
		cp := processCaseFile(caseFile)
		RunSweep(cp, verbose)
	},
}

func init() {
	rootCmd.AddCommand(sweepCmd)
	sweepCmd.Flags().StringP("caseFile", "I", "", "YAML file for case parameters, must name MainFile, FlapFile, hinge and Deflections")
	sweepCmd.Flags().BoolP("verbose", "v", false, "print a solve summary per deflection")
	sweepCmd.Flags().Bool("profile", false, "write a CPU profile for the sweep")
}

func RunSweep(cp *InputParameters.CaseParameters, verbose bool) {
	if len(cp.FlapFile) == 0 {
		fmt.Printf("error: sweep requires a flap element (FlapFile)\n")
		os.Exit(1)
	}
	mainPts, err := readfiles.ReadCoordinates(cp.MainFile, verbose)
	if err != nil {
		panic(err)
	}
	flapPts, err := readfiles.ReadCoordinates(cp.FlapFile, verbose)
	if err != nil {
		panic(err)
	}
	var (
		hinge = geometry2D.Point{X: cp.HingeX, Y: cp.HingeY}
		free  = panel2D.NewFreestream(cp.Uinf, cp.Alpha)
	)
	points, err := panel2D.SweepFlapDeflection(mainPts, flapPts, hinge, free, cp.Deflections, verbose)
	if err != nil {
		fmt.Printf("sweep failed: %s\n", err.Error())
		os.Exit(1)
	}
	fmt.Printf("%12s %10s %10s\n", "deflection", "Cl", "Cl/Cl0")
	for _, pt := range points {
		if pt.Err != nil {
			fmt.Printf("%12.2f %10s %10s\n", pt.Deflection, "failed", "-")
			continue
		}
		fmt.Printf("%12.2f %10.5f %10.5f\n", pt.Deflection, pt.Cl, pt.Ratio)
	}
}
