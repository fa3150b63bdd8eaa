package panel2D

import (
	"fmt"
	"math"
)

// Freestream holds the onset flow for one solve. Alpha is stored in radians;
// construct from degrees with NewFreestream. Read-only during a solve.
type Freestream struct {
	Uinf  float64
	Alpha float64
}

// NewFreestream panics when uinf is not positive: the RHS and the pressure
// coefficient both divide or scale by it.
func NewFreestream(uinf, alphaDeg float64) Freestream {
	if uinf <= 0 {
		panic(fmt.Errorf("freestream speed must be positive, got %g", uinf))
	}
	return Freestream{
		Uinf:  uinf,
		Alpha: alphaDeg * math.Pi / 180.,
	}
}
