package utils

import (
	"gonum.org/v1/gonum/mat"
)

func (m Matrix) ConditionNumber() float64 {
	dense := m.M

	// Compute SVD to get singular values
	var svd mat.SVD
	if !svd.Factorize(dense, mat.SVDThin) {
		// If SVD fails, return a large number indicating poor conditioning
		return 1e16
	}

	values := svd.Values(nil)
	if len(values) == 0 {
		return 1e16
	}

	// Condition number is ratio of largest to smallest singular value
	minVal := values[len(values)-1] // Singular values are in descending order
	maxVal := values[0]

	// Handle near-zero singular values
	if minVal < 1e-16 {
		return 1e16
	}

	return maxVal / minVal
}
