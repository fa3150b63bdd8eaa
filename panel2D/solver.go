package panel2D

import (
	"fmt"

	"github.com/notargets/gopanel/utils"
)

// DefaultConditionLimit rejects systems whose SVD condition number indicates
// the dense solve would return noise.
const DefaultConditionLimit = 1.e12

// Solve performs the dense LU solve of the assembled system and returns the
// stacked solution vector: N source strengths followed by M circulation
// densities. condLimit <= 0 selects DefaultConditionLimit.
func Solve(sys *System, condLimit float64) (x utils.Vector, err error) {
	if condLimit <= 0 {
		condLimit = DefaultConditionLimit
	}
	if cond := sys.A.ConditionNumber(); cond > condLimit {
		err = &SingularSystemError{
			Condition: cond,
			msg:       fmt.Sprintf("system is ill-conditioned: condition number %g exceeds limit %g", cond, condLimit),
		}
		return
	}
	if x, err = sys.A.LUSolve(sys.B); err != nil {
		err = &SingularSystemError{
			msg: fmt.Sprintf("dense solve failed: %s", err),
		}
		return
	}
	return
}
