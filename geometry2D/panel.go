package geometry2D

import (
	"fmt"
	"math"

	"github.com/notargets/gopanel/utils"
)

type Point struct {
	X, Y float64
}

type PanelSide uint8

const (
	Upper PanelSide = iota
	Lower
)

func (s PanelSide) String() string {
	if s == Upper {
		return "upper"
	}
	return "lower"
}

// GeometryError reports degenerate or insufficient boundary input.
type GeometryError struct {
	msg string
}

func (e *GeometryError) Error() string { return e.msg }

func geometryErrorf(format string, args ...interface{}) *GeometryError {
	return &GeometryError{msg: fmt.Sprintf(format, args...)}
}

// Panel is one straight boundary segment. The geometry fields are fixed at
// construction; Sigma, Vt and Cp are written once per solve.
type Panel struct {
	Xa, Ya, Xb, Yb float64 // Endpoints, walked in boundary order
	Xc, Yc         float64 // Control point (midpoint)
	Length         float64
	Beta           float64 // Angle from global x-axis to the outward normal, in [0, 2*Pi)
	Side           PanelSide

	// Solution fields
	Sigma float64 // Source strength
	Vt    float64 // Tangential velocity
	Cp    float64 // Pressure coefficient
}

func NewPanel(xa, ya, xb, yb float64) (p *Panel, err error) {
	var (
		dx     = xb - xa
		dy     = yb - ya
		length = math.Sqrt(dx*dx + dy*dy)
	)
	if length <= utils.NODETOL {
		err = geometryErrorf("degenerate panel: endpoints (%g,%g) and (%g,%g) are coincident", xa, ya, xb, yb)
		return
	}
	p = &Panel{
		Xa: xa, Ya: ya,
		Xb: xb, Yb: yb,
		Xc:     0.5 * (xa + xb),
		Yc:     0.5 * (ya + yb),
		Length: length,
	}
	// The branch of acos is selected from the sign of dx so that Beta is the
	// outward-normal angle for either panel direction. The clamp keeps the
	// ratio inside [-1,1] against roundoff, so horizontal panels (yb == ya)
	// never produce NaN.
	ratio := clamp(dy/length, -1, 1)
	if dx <= 0 {
		p.Beta = math.Acos(ratio)
	} else {
		p.Beta = math.Pi + math.Acos(-ratio)
	}
	if p.Beta >= 2*math.Pi {
		p.Beta -= 2 * math.Pi
	}
	if p.Beta <= math.Pi {
		p.Side = Upper
	} else {
		p.Side = Lower
	}
	return
}

// Normal is the unit outward normal (cos Beta, sin Beta).
func (p *Panel) Normal() (nx, ny float64) {
	return math.Cos(p.Beta), math.Sin(p.Beta)
}

// Tangent is the unit tangent (sin Beta, -cos Beta).
func (p *Panel) Tangent() (tx, ty float64) {
	return math.Sin(p.Beta), -math.Cos(p.Beta)
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
