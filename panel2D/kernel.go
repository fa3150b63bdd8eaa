package panel2D

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/integrate/quad"

	"github.com/notargets/gopanel/geometry2D"
)

const (
	// Relative tolerance for the influence integrals
	QuadRelTol = 1.e-8
	quadMinN   = 16
	quadMaxN   = 4096
	// Absolute floor below which further refinement of a near-zero integral
	// is meaningless
	quadAbsFloor = 1.e-14
)

// PanelInfluence integrates the point-source potential gradient of a unit
// source sheet on panel p, dotted with direction (dx, dy), evaluated at
// (x, y). The integration point sweeps the panel from its first endpoint as
// (Xa - sin(Beta)*s, Ya + cos(Beta)*s), s in [0, Length].
//
// The integrand is singular when (x, y) lies on the panel itself; callers
// handle self-influence analytically instead of invoking this integral.
// Evaluation is pure and deterministic: Gauss-Legendre quadrature with node
// doubling until successive estimates agree to QuadRelTol. The tolerance is
// relaxed once (x100) before a ConvergenceError is reported.
func PanelInfluence(x, y float64, p *geometry2D.Panel, dx, dy float64) (I float64, err error) {
	var (
		sinB = math.Sin(p.Beta)
		cosB = math.Cos(p.Beta)
	)
	f := func(s float64) float64 {
		xs := x - (p.Xa - sinB*s)
		ys := y - (p.Ya + cosB*s)
		return (xs*dx + ys*dy) / (xs*xs + ys*ys)
	}
	var (
		prev   = quad.Fixed(f, 0, p.Length, quadMinN, nil, 0)
		change float64
	)
	for n := 2 * quadMinN; n <= quadMaxN; n *= 2 {
		I = quad.Fixed(f, 0, p.Length, n, nil, 0)
		change = math.Abs(I - prev)
		if change <= QuadRelTol*math.Abs(I) || change <= quadAbsFloor {
			return
		}
		prev = I
	}
	// One relaxation before giving up
	if change <= 100*QuadRelTol*math.Abs(I) {
		return
	}
	err = &ConvergenceError{
		Estimate: I,
		Change:   change,
		msg:      fmt.Sprintf("influence integral did not converge: estimate %g, last change %g", I, change),
	}
	return
}
