package calculator

import (
	"errors"
)

// CalculateSMA computes the simple moving average of the last period prices.
func CalculateSMA(prices []float64, period int) (float64, error) {
	if period <= 0 {
		return 0, errors.New("period must be positive")
	}
	if len(prices) < period {
		return 0, errors.New("not enough data for SMA calculation")
	}
	sum := 0.0
	for i := len(prices) - period; i < len(prices); i++ {
		sum += prices[i]
	}
	return sum / float64(period), nil
}

// SMASeries returns the trailing SMA ending at every index.
// Entries before index period-1 are nil.
func SMASeries(prices []float64, period int) ([]*float64, error) {
	if period <= 0 {
		return nil, errors.New("period must be positive")
	}
	out := make([]*float64, len(prices))
	for i := period - 1; i < len(prices); i++ {
		sma, err := CalculateSMA(prices[i-period+1:i+1], period)
		if err != nil {
			return nil, err
		}
		out[i] = &sma
	}
	return out, nil
}
