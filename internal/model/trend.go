package model

// Trend is the direction of the latest close relative to its SMA.
type Trend string

const (
	TrendUp      Trend = "UP"
	TrendDown    Trend = "DOWN"
	TrendNeutral Trend = "NEUTRAL" // never produced by the price/SMA rule
)

// Label returns the report wording for the trend.
func (t Trend) Label() string {
	switch t {
	case TrendUp:
		return "BULLISH"
	case TrendDown:
		return "BEARISH"
	default:
		return "NEUTRAL"
	}
}

// Strength buckets a correlation coefficient for display.
type Strength struct {
	Label       string
	Description string
}

// CorrelationStrength maps r (-1 ~ 1) to a display bucket.
func CorrelationStrength(r float64) Strength {
	switch {
	case r > 0.7:
		return Strength{"Strong Positive", "These assets usually move in the same direction."}
	case r > 0.3:
		return Strength{"Weak Positive", "These assets show some tendency to move together."}
	case r < -0.7:
		return Strength{"Strong Inverse", "These assets usually move in opposite directions."}
	case r < -0.3:
		return Strength{"Weak Inverse", "These assets show some tendency to move oppositely."}
	default:
		return Strength{"No Correlation", "These assets tend to move independently."}
	}
}
