package panel2D

import (
	"fmt"
	"math"

	"github.com/notargets/gopanel/geometry2D"
)

// PotentialFlow runs one source-panel solve over a configuration: assemble,
// dense solve, write the solution back onto the geometry, then post-process
// surface velocity, pressure and integrated forces.
type PotentialFlow struct {
	Config *geometry2D.Configuration
	Free   Freestream

	// ConditionLimit above which the solve is rejected; 0 selects the default
	ConditionLimit float64

	Sys    *System
	Forces Forces
}

func NewPotentialFlow(cfg *geometry2D.Configuration, free Freestream) (pf *PotentialFlow) {
	pf = &PotentialFlow{
		Config: cfg,
		Free:   free,
	}
	return
}

// Solve is a pure function of (geometry, freestream) up to the solution
// fields it writes back onto the panels and elements.
func (pf *PotentialFlow) Solve() (err error) {
	var (
		cfg = pf.Config
	)
	if pf.Sys, err = AssembleSystem(cfg, pf.Free); err != nil {
		return
	}
	sol, err := Solve(pf.Sys, pf.ConditionLimit)
	if err != nil {
		return
	}
	// Write back: sol[0:N] are source strengths in flattened panel order,
	// sol[N+k] is element k's circulation density
	for i, p := range cfg.Panels() {
		p.Sigma = sol.AtVec(i)
	}
	for k, e := range cfg.Elements {
		e.Gamma = sol.AtVec(pf.Sys.N + k)
	}
	ComputeTangentialVelocity(cfg, pf.Free, pf.Sys)
	ComputePressure(cfg, pf.Free)
	pf.Forces = ComputeForces(cfg)
	return
}

// Report prints a one-line summary in the format the sweep driver tabulates.
func (pf *PotentialFlow) Report() {
	fmt.Printf("Uinf = %8.4f, alpha = %8.4f deg, Cl = %8.5f, Lift = %8.5f, Drag = %8.5f\n",
		pf.Free.Uinf, pf.Free.Alpha*180/math.Pi, pf.Forces.Cl, pf.Forces.Lift, pf.Forces.Drag)
}
