package panel2D

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/notargets/gopanel/geometry2D"
)

func TestPanelInfluence(t *testing.T) {
	p, err := geometry2D.NewPanel(0, 0, 0.1, 0)
	assert.NoError(t, err)

	// Deterministic for fixed inputs
	{
		I1, err := PanelInfluence(1, 1, p, 1, 0)
		assert.NoError(t, err)
		I2, err := PanelInfluence(1, 1, p, 1, 0)
		assert.NoError(t, err)
		assert.Equal(t, I1, I2)
	}
	// Far field: a unit source panel acts like a point source of strength
	// Length located at its midpoint, I ~ Length * (r . d) / |r|^2
	{
		var (
			x, y   = 50., 30.
			rx, ry = x - p.Xc, y - p.Yc
			r2     = rx*rx + ry*ry
		)
		for _, dir := range [][2]float64{{1, 0}, {0, 1}, {math.Sqrt2 / 2, math.Sqrt2 / 2}} {
			I, err := PanelInfluence(x, y, p, dir[0], dir[1])
			assert.NoError(t, err)
			expect := p.Length * (rx*dir[0] + ry*dir[1]) / r2
			assert.InDelta(t, expect, I, 1.e-4*math.Abs(expect)+1.e-12)
		}
	}
	// Close evaluation points (neighboring-panel distances) still converge
	{
		I, err := PanelInfluence(0.15, 0.01, p, 1, 0)
		assert.NoError(t, err)
		assert.False(t, math.IsNaN(I))
		assert.False(t, math.IsInf(I, 0))
	}
	// Symmetry: mirrored evaluation points see equal-and-opposite normal pull
	{
		Iup, err := PanelInfluence(0.05, 0.2, p, 0, 1)
		assert.NoError(t, err)
		Idown, err := PanelInfluence(0.05, -0.2, p, 0, 1)
		assert.NoError(t, err)
		assert.InDelta(t, Iup, -Idown, 1.e-7)
	}
}
