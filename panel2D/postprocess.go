package panel2D

import (
	"math"

	"github.com/notargets/gopanel/geometry2D"
)

// Forces are the chord-normalized section loads integrated from the surface
// pressure distribution.
type Forces struct {
	Lift, Drag float64
	Cl         float64
}

// ComputeTangentialVelocity writes Vt onto every panel from the solved source
// strengths and circulation densities:
//
//	vt_i = Uinf*sin(alpha - beta_i) + sum_j Bn[i,j]*sigma_j
//	       - sum_k gamma_k * sum_{j in element k} An[i,j]
//
// The vortex-sheet tangential influence is the negated normal source
// influence, mirroring the circulation columns of the assembled system.
//
// It may be re-run without re-solving as long as the solution fields on the
// panels and elements are intact.
func ComputeTangentialVelocity(cfg *geometry2D.Configuration, free Freestream, sys *System) {
	var (
		panels = cfg.Panels()
	)
	for i, pi := range panels {
		vt := free.Uinf * math.Sin(free.Alpha-pi.Beta)
		for j, pj := range panels {
			vt += sys.Bn.At(i, j) * pj.Sigma
		}
		for k, r := range sys.Ranges {
			vt -= cfg.Elements[k].Gamma * sys.An.RowSum(i, r[0], r[1])
		}
		pi.Vt = vt
	}
}

// ComputePressure writes the pressure coefficient Cp = 1 - (vt/Uinf)^2 onto
// every panel.
func ComputePressure(cfg *geometry2D.Configuration, free Freestream) {
	for _, p := range cfg.Panels() {
		ratio := p.Vt / free.Uinf
		p.Cp = 1 - ratio*ratio
	}
}

// ComputeForces integrates the per-panel pressure into section lift and drag,
// normalized by the summed element chord extents.
func ComputeForces(cfg *geometry2D.Configuration) (f Forces) {
	for _, p := range cfg.Panels() {
		f.Lift += -p.Cp * p.Length * math.Sin(p.Beta)
		f.Drag += p.Cp * p.Length * math.Cos(p.Beta)
	}
	f.Cl = f.Lift / cfg.ReferenceChord()
	return
}

// VelocityField samples the off-body velocity at the given points by
// superposing the freestream and the solved source sheets:
//
//	u = Uinf*cos(alpha) + (1/2pi) * sum_i sigma_i * I(p, panel_i, (1,0))
//	v = Uinf*sin(alpha) + (1/2pi) * sum_i sigma_i * I(p, panel_i, (0,1))
//
// Known limitation: only the source contribution is superposed. The element
// vortex sheets also induce an off-body field, and omitting them biases the
// sampled velocities near lifting elements; surface quantities (Vt, Cp,
// forces) are unaffected.
func VelocityField(cfg *geometry2D.Configuration, free Freestream, px, py []float64) (u, v []float64, err error) {
	var (
		panels = cfg.Panels()
	)
	u = make([]float64, len(px))
	v = make([]float64, len(px))
	for n := range px {
		u[n] = free.Uinf * math.Cos(free.Alpha)
		v[n] = free.Uinf * math.Sin(free.Alpha)
		for _, p := range panels {
			var Iu, Iv float64
			if Iu, err = PanelInfluence(px[n], py[n], p, 1, 0); err != nil {
				return
			}
			if Iv, err = PanelInfluence(px[n], py[n], p, 0, 1); err != nil {
				return
			}
			u[n] += p.Sigma * Iu / (2 * math.Pi)
			v[n] += p.Sigma * Iv / (2 * math.Pi)
		}
	}
	return
}
