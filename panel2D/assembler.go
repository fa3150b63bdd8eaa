package panel2D

import (
	"math"
	"runtime"
	"sync"

	"github.com/notargets/gopanel/geometry2D"
	"github.com/notargets/gopanel/utils"
)

// System is the assembled linear system for one solve, (N+M) x (N+M) with
// M = element count. An and Bn are retained for post-processing; the full
// matrix and RHS are transient and reusable after the solution vector is
// extracted.
type System struct {
	A      utils.Matrix // Full (N+M) x (N+M) system
	B      utils.Vector // RHS, length N+M
	An, Bn utils.Matrix // Normal / tangential influence, N x N
	Ranges [][2]int     // Per-element panel index ranges
	N, M   int
}

// AssembleInfluence fills the two N x N influence matrices over all panels,
// independent of element boundaries:
//
//	An[i,j]: normal-velocity influence at control point i of a unit source on
//	         panel j, diagonal 0.5 (flat-panel self-induction)
//	Bn[i,j]: tangential-velocity influence, diagonal 0
//
// The self-influence terms are set here as explicit branches; the kernel
// integral is never evaluated for i == j. Rows are filled in parallel, each
// worker writing only its own rows.
func AssembleInfluence(cfg *geometry2D.Configuration) (An, Bn utils.Matrix, err error) {
	var (
		panels = cfg.Panels()
		N      = len(panels)
		pm     = utils.NewPartitionMap(runtime.NumCPU(), N)
		wg     sync.WaitGroup
		errs   = make([]error, pm.ParallelDegree)
	)
	An = utils.NewMatrix(N, N)
	Bn = utils.NewMatrix(N, N)
	for np := 0; np < pm.ParallelDegree; np++ {
		wg.Add(1)
		go func(np int) {
			defer wg.Done()
			iMin, iMax := pm.GetBucketRange(np)
			for i := iMin; i < iMax; i++ {
				pi := panels[i]
				nx, ny := pi.Normal()
				tx, ty := pi.Tangent()
				for j, pj := range panels {
					if i == j {
						An.Set(i, j, 0.5)
						Bn.Set(i, j, 0)
						continue
					}
					In, errI := PanelInfluence(pi.Xc, pi.Yc, pj, nx, ny)
					if errI != nil {
						errs[np] = errI
						return
					}
					It, errI := PanelInfluence(pi.Xc, pi.Yc, pj, tx, ty)
					if errI != nil {
						errs[np] = errI
						return
					}
					An.Set(i, j, In/(2*math.Pi))
					Bn.Set(i, j, -It/(2*math.Pi))
				}
			}
		}(np)
	}
	wg.Wait()
	for _, e := range errs {
		if e != nil {
			err = e
			return
		}
	}
	return
}

// AssembleSystem builds the full no-penetration + Kutta system.
//
// Rows 0..N-1 enforce zero net normal velocity at every control point: the
// source block is An, and the circulation column for element k is the row sum
// of Bn over that element's panels (the normal influence of its unit vortex
// sheet equals the tangential source influence). Row N+k is the Kutta
// equation for element k, a tangential-velocity balance at its trailing-edge
// pair: source columns carry Bn summed over the two trailing-edge rows, and
// the circulation column for element m carries the negated An row sums over
// element m's panels (the tangential influence of a vortex sheet is the
// negated normal source influence). The freestream contribution of the
// trailing-edge pair sits on the RHS.
func AssembleSystem(cfg *geometry2D.Configuration, free Freestream) (sys *System, err error) {
	for _, e := range cfg.Elements {
		if len(e.Panels) < 2 {
			err = assemblyErrorf("element %q has %d panels; at least 2 are needed for a trailing-edge pair",
				e.Name, len(e.Panels))
			return
		}
	}
	var (
		panels = cfg.Panels()
		ranges = cfg.Ranges()
		N      = len(panels)
		M      = len(cfg.Elements)
		An, Bn utils.Matrix
	)
	if An, Bn, err = AssembleInfluence(cfg); err != nil {
		return
	}
	sys = &System{
		A:      utils.NewMatrix(N+M, N+M),
		B:      utils.NewVector(N + M),
		An:     An,
		Bn:     Bn,
		Ranges: ranges,
		N:      N,
		M:      M,
	}
	// No-penetration block
	for i := 0; i < N; i++ {
		for j := 0; j < N; j++ {
			sys.A.Set(i, j, An.At(i, j))
		}
		for k, r := range ranges {
			sys.A.Set(i, N+k, Bn.RowSum(i, r[0], r[1]))
		}
		sys.B.DataP[i] = -free.Uinf * math.Cos(free.Alpha-panels[i].Beta)
	}
	// Kutta rows, one per element
	for k, e := range cfg.Elements {
		var (
			iFirst = ranges[k][0]
			iLast  = ranges[k][1] - 1
		)
		for j := 0; j < N; j++ {
			sys.A.Set(N+k, j, Bn.At(iFirst, j)+Bn.At(iLast, j))
		}
		for m, r := range ranges {
			sys.A.Set(N+k, N+m, -(An.RowSum(iFirst, r[0], r[1]) + An.RowSum(iLast, r[0], r[1])))
		}
		first, last := e.TrailingEdge()
		sys.B.DataP[N+k] = -free.Uinf * (math.Sin(free.Alpha-first.Beta) + math.Sin(free.Alpha-last.Beta))
	}
	return
}
