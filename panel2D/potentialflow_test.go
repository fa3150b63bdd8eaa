package panel2D

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/notargets/gopanel/geometry2D"
)

// nacaSymmetric builds a NACA 00xx boundary walk with cosine spacing:
// trailing edge -> upper surface -> leading edge -> lower surface -> trailing
// edge. nPanels must be even; nPanels+1 points are returned.
func nacaSymmetric(thickness float64, nPanels int) (points []geometry2D.Point) {
	var (
		nSide = nPanels / 2
	)
	halfThickness := func(x float64) float64 {
		return 5 * thickness * (0.2969*math.Sqrt(x) -
			0.1260*x -
			0.3516*x*x +
			0.2843*x*x*x -
			0.1015*x*x*x*x)
	}
	for i := 0; i <= nSide; i++ {
		x := 0.5 * (1 + math.Cos(math.Pi*float64(i)/float64(nSide)))
		points = append(points, geometry2D.Point{X: x, Y: halfThickness(x)})
	}
	for i := 1; i <= nSide; i++ {
		x := 0.5 * (1 - math.Cos(math.Pi*float64(i)/float64(nSide)))
		points = append(points, geometry2D.Point{X: x, Y: -halfThickness(x)})
	}
	return
}

func scaleTranslate(points []geometry2D.Point, scale, dx, dy float64) (out []geometry2D.Point) {
	out = make([]geometry2D.Point, len(points))
	for i, p := range points {
		out[i] = geometry2D.Point{X: p.X*scale + dx, Y: p.Y*scale + dy}
	}
	return
}

func solveCl(t *testing.T, points []geometry2D.Point, alphaDeg float64) (pf *PotentialFlow) {
	t.Helper()
	el, err := geometry2D.NewElement("main", points)
	assert.NoError(t, err)
	pf = NewPotentialFlow(geometry2D.NewConfiguration(el), NewFreestream(1, alphaDeg))
	assert.NoError(t, pf.Solve())
	return
}

func TestSymmetryZeroLift(t *testing.T) {
	// A closed convex element with zero camber at zero angle of attack
	// carries no circulation and no lift
	{
		pf := solveCl(t, circleWalk(1, 64), 0)
		assert.InDelta(t, 0, pf.Config.Elements[0].Gamma, 1.e-6)
		assert.InDelta(t, 0, pf.Forces.Cl, 1.e-6)
	}
	// Same for a symmetric airfoil
	{
		pf := solveCl(t, nacaSymmetric(0.12, 50), 0)
		assert.InDelta(t, 0, pf.Forces.Cl, 1.e-6)
	}
}

func TestLiftMonotoneWithAlpha(t *testing.T) {
	var (
		points = nacaSymmetric(0.12, 50)
		cl     [3]float64
	)
	for n, alpha := range []float64{0, 4, 8} {
		cl[n] = solveCl(t, points, alpha).Forces.Cl
	}
	assert.Greater(t, cl[1], 0.)
	assert.Greater(t, cl[1], cl[0])
	assert.Greater(t, cl[2], cl[1])
}

func TestFlapEffectiveness(t *testing.T) {
	var (
		main  = nacaSymmetric(0.12, 50)
		flap  = scaleTranslate(nacaSymmetric(0.12, 30), 0.3, 1.05, -0.02)
		hinge = geometry2D.Point{X: 1.04, Y: -0.02}
		free  = NewFreestream(1, 4)
	)
	points, err := SweepFlapDeflection(main, flap, hinge, free, []float64{0, 10}, false)
	assert.NoError(t, err)
	assert.Equal(t, 2, len(points))
	assert.NoError(t, points[0].Err)
	assert.NoError(t, points[1].Err)

	// Two elements at alpha = 4 lift upward; dropping the flap adds lift
	assert.Greater(t, points[0].Cl, 0.)
	assert.Greater(t, points[1].Cl, points[0].Cl)
	assert.Greater(t, points[1].Ratio, 1.)
}

func TestSolutionWriteBack(t *testing.T) {
	pf := solveCl(t, nacaSymmetric(0.12, 40), 4)
	var (
		sys    = pf.Sys
		panels = pf.Config.Panels()
	)
	// Solution fields are populated on every panel
	for _, p := range panels {
		assert.False(t, math.IsNaN(p.Sigma))
		assert.False(t, math.IsNaN(p.Vt))
		assert.False(t, math.IsNaN(p.Cp))
	}
	// Pressure follows the tangential velocity exactly
	for _, p := range panels {
		assert.InDelta(t, 1-(p.Vt/pf.Free.Uinf)*(p.Vt/pf.Free.Uinf), p.Cp, 1.e-14)
	}
	// Recomputing the post-processing without re-solving is stable
	vtBefore := panels[7].Vt
	ComputeTangentialVelocity(pf.Config, pf.Free, sys)
	assert.Equal(t, vtBefore, panels[7].Vt)
}

func TestVelocityField(t *testing.T) {
	pf := solveCl(t, nacaSymmetric(0.12, 40), 0)
	// Far upstream the sampled velocity recovers the freestream; the omitted
	// vortex contribution vanishes here along with the source perturbation
	u, v, err := VelocityField(pf.Config, pf.Free, []float64{-100}, []float64{0})
	assert.NoError(t, err)
	assert.InDelta(t, pf.Free.Uinf, u[0], 1.e-2)
	assert.InDelta(t, 0, v[0], 1.e-2)
}
