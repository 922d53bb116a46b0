package model

// SeriesPoint is one normalized closing price.
type SeriesPoint struct {
	Date  string  `json:"date"`
	Price float64 `json:"price"`
}

// AnnotatedPoint is a SeriesPoint with its trailing simple moving average.
// SMA is nil for the first period-1 points of a sorted series.
type AnnotatedPoint struct {
	SeriesPoint
	SMA *float64 `json:"sma,omitempty"`
}

// PairedPoint holds the closes of two tickers on a date present in both series.
type PairedPoint struct {
	Date   string  `json:"date"`
	Price1 float64 `json:"price1"`
	Price2 float64 `json:"price2"`
}

// Source is a web citation attached to an AI-generated answer.
type Source struct {
	Title string `json:"title"`
	URI   string `json:"uri"`
}

// Prices returns the close of every point in order.
func Prices(points []SeriesPoint) []float64 {
	prices := make([]float64, len(points))
	for i, p := range points {
		prices[i] = p.Price
	}
	return prices
}
