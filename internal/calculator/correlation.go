package calculator

import (
	"errors"
	"math"
)

// PearsonCorrelation computes r over paired samples with the sum formula:
//
//	r = (nΣxy − ΣxΣy) / sqrt((nΣx² − (Σx)²)(nΣy² − (Σy)²))
//
// Zero variance in either series, or fewer than two pairs, yields 0.
// The result is clamped to [-1, 1] against rounding drift.
func PearsonCorrelation(x, y []float64) (float64, error) {
	if len(x) != len(y) {
		return 0, errors.New("series length mismatch")
	}
	n := float64(len(x))
	if len(x) < 2 || isFlat(x) || isFlat(y) {
		return 0, nil
	}

	var sumX, sumY, sumXY, sumX2, sumY2 float64
	for i := range x {
		sumX += x[i]
		sumY += y[i]
		sumXY += x[i] * y[i]
		sumX2 += x[i] * x[i]
		sumY2 += y[i] * y[i]
	}

	numerator := n*sumXY - sumX*sumY
	denominator := math.Sqrt((n*sumX2 - sumX*sumX) * (n*sumY2 - sumY*sumY))
	if denominator == 0 || math.IsNaN(denominator) {
		return 0, nil
	}
	r := numerator / denominator
	return math.Max(-1, math.Min(1, r)), nil
}

// isFlat reports whether every value equals the first. Rounding in the sum
// formula leaves a tiny non-zero variance for flat non-integer series.
func isFlat(values []float64) bool {
	for _, v := range values[1:] {
		if v != values[0] {
			return false
		}
	}
	return true
}
