package analysis

import (
	"errors"

	"TrendSpotter/internal/calculator"
	"TrendSpotter/internal/collector"
	"TrendSpotter/internal/extractor"
	"TrendSpotter/internal/model"
	"TrendSpotter/internal/normalizer"
)

// MergeByDate inner-joins a and b on date, in a's order, then sorts by date.
// Duplicate dates in b resolve to the last one seen.
func MergeByDate(a, b []model.SeriesPoint) []model.PairedPoint {
	lookup := make(map[string]float64, len(b))
	for _, p := range b {
		lookup[p.Date] = p.Price
	}
	merged := make([]model.PairedPoint, 0, min(len(a), len(b)))
	for _, p := range a {
		if price2, ok := lookup[p.Date]; ok {
			merged = append(merged, model.PairedPoint{Date: p.Date, Price1: p.Price, Price2: price2})
		}
	}
	return sortByDate(merged, func(p model.PairedPoint) string { return p.Date })
}

// Correlate merges both series and returns Pearson's r over the overlap.
func Correlate(a, b []model.SeriesPoint, minOverlap int) (float64, []model.PairedPoint, error) {
	merged := MergeByDate(a, b)
	if len(merged) < minOverlap {
		return 0, nil, &model.DataError{Msg: model.MsgNotEnoughOverlap}
	}
	x := make([]float64, len(merged))
	y := make([]float64, len(merged))
	for i, p := range merged {
		x[i], y[i] = p.Price1, p.Price2
	}
	r, err := calculator.PearsonCorrelation(x, y)
	if err != nil {
		return 0, nil, err
	}
	return r, merged, nil
}

// BuildComparison runs the two-ticker pipeline over a raw response.
func BuildComparison(ticker1, ticker2 string, resp *collector.Response, params Params) (*model.ComparisonOutcome, error) {
	raw, err := extractor.ExtractObject(resp.Text)
	if err != nil {
		var ee *model.ExtractionError
		if errors.As(err, &ee) {
			return nil, &model.ExtractionError{Msg: model.MsgBadComparison, Err: ee.Err}
		}
		return nil, err
	}
	first, second, err := normalizer.NormalizePair(raw, normalizer.Options{StrictDates: params.StrictDates})
	if err != nil {
		return nil, err
	}
	r, merged, err := Correlate(first, second, params.MinOverlap)
	if err != nil {
		return nil, err
	}
	return &model.ComparisonOutcome{
		Ticker1:     ticker1,
		Ticker2:     ticker2,
		Correlation: r,
		Series:      merged,
		Sources:     ExtractSources(resp.Citations, params.MaxSources),
	}, nil
}
