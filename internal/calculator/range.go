package calculator

import (
	"errors"
	"math"
)

// PriceRange returns the highest and lowest of the given values.
func PriceRange(values []float64) (high, low float64, err error) {
	if len(values) == 0 {
		return 0, 0, errors.New("no values provided")
	}
	high = math.Inf(-1)
	low = math.Inf(1)
	for _, v := range values {
		if v > high {
			high = v
		}
		if v < low {
			low = v
		}
	}
	return high, low, nil
}

// PriceDomain returns a chart axis range: [low, high] widened on both sides
// by padding times the span. A flat series gets a zero-width domain.
func PriceDomain(values []float64, padding float64) (lo, hi float64, err error) {
	high, low, err := PriceRange(values)
	if err != nil {
		return 0, 0, err
	}
	pad := (high - low) * padding
	return low - pad, high + pad, nil
}

// ChangePercent returns the move from first to last as a percentage of first.
func ChangePercent(values []float64) (float64, error) {
	if len(values) == 0 {
		return 0, errors.New("no values provided")
	}
	first := values[0]
	if first == 0 {
		return 0, errors.New("first value is zero")
	}
	return (values[len(values)-1] - first) / first * 100, nil
}
