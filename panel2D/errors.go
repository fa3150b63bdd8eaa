package panel2D

import "fmt"

// AssemblyError reports a malformed element partition or a dimension
// mismatch while building the linear system.
type AssemblyError struct {
	msg string
}

func (e *AssemblyError) Error() string { return e.msg }

func assemblyErrorf(format string, args ...interface{}) *AssemblyError {
	return &AssemblyError{msg: fmt.Sprintf(format, args...)}
}

// SingularSystemError reports a numerically singular or severely
// ill-conditioned linear system.
type SingularSystemError struct {
	Condition float64
	msg       string
}

func (e *SingularSystemError) Error() string { return e.msg }

// ConvergenceError reports quadrature that failed to meet tolerance within
// the node budget.
type ConvergenceError struct {
	Estimate, Change float64
	msg              string
}

func (e *ConvergenceError) Error() string { return e.msg }
