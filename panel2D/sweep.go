package panel2D

import (
	"fmt"

	"github.com/notargets/gopanel/geometry2D"
)

// SweepPoint is the outcome of one flap deflection in a sweep.
type SweepPoint struct {
	Deflection float64 // degrees, positive drops the flap trailing edge
	Cl         float64
	Ratio      float64 // Cl relative to the undeflected case
	Err        error
}

// SweepFlapDeflection solves the main+flap configuration across a set of flap
// deflection angles about a fixed hinge. Panels and elements are rebuilt at
// every deflection since rotation changes coordinates; the hinge point is the
// only state shared across iterations. A failed deflection is reported on its
// SweepPoint and the sweep continues.
func SweepFlapDeflection(main, flap []geometry2D.Point, hinge geometry2D.Point,
	free Freestream, deflections []float64, verbose bool) (points []SweepPoint, err error) {
	var (
		clBaseline float64
	)
	solveAt := func(deflection float64) (cl float64, err error) {
		var (
			mainEl, flapEl *geometry2D.Element
		)
		if mainEl, err = geometry2D.NewElement("main", main); err != nil {
			return
		}
		// Positive deflection rotates the flap clockwise about the hinge
		deflected := geometry2D.RotateAboutPoint(flap, hinge, -deflection)
		if flapEl, err = geometry2D.NewElement("flap", deflected); err != nil {
			return
		}
		pf := NewPotentialFlow(geometry2D.NewConfiguration(mainEl, flapEl), free)
		if err = pf.Solve(); err != nil {
			return
		}
		if verbose {
			fmt.Printf("deflection = %6.2f deg: ", deflection)
			pf.Report()
		}
		cl = pf.Forces.Cl
		return
	}
	if clBaseline, err = solveAt(0); err != nil {
		return
	}
	points = make([]SweepPoint, len(deflections))
	for n, deflection := range deflections {
		points[n].Deflection = deflection
		if points[n].Cl, points[n].Err = solveAt(deflection); points[n].Err != nil {
			fmt.Printf("deflection = %6.2f deg failed: %s\n", deflection, points[n].Err)
			continue
		}
		points[n].Ratio = points[n].Cl / clBaseline
	}
	return
}
