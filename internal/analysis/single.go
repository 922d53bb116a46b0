package analysis

import (
	"TrendSpotter/internal/calculator"
	"TrendSpotter/internal/collector"
	"TrendSpotter/internal/extractor"
	"TrendSpotter/internal/model"
	"TrendSpotter/internal/normalizer"
)

// AnnotateSMA sorts points by date and attaches the trailing SMA to each.
func AnnotateSMA(points []model.SeriesPoint, period int) ([]model.AnnotatedPoint, error) {
	sorted := sortByDate(points, func(p model.SeriesPoint) string { return p.Date })
	smas, err := calculator.SMASeries(model.Prices(sorted), period)
	if err != nil {
		return nil, err
	}
	out := make([]model.AnnotatedPoint, len(sorted))
	for i, p := range sorted {
		out[i] = model.AnnotatedPoint{SeriesPoint: p, SMA: smas[i]}
	}
	return out, nil
}

// DetermineTrend is UP when the close is strictly above its SMA, DOWN otherwise,
// including when the SMA is absent.
func DetermineTrend(p model.AnnotatedPoint) model.Trend {
	if p.SMA != nil && p.Price > *p.SMA {
		return model.TrendUp
	}
	return model.TrendDown
}

// BuildSingle runs the single-ticker pipeline over a raw response.
func BuildSingle(ticker string, resp *collector.Response, params Params) (*model.SingleOutcome, error) {
	raw, err := extractor.ExtractArray(resp.Text)
	if err != nil {
		return nil, err
	}
	opts := normalizer.Options{DefaultDate: normalizer.Today, StrictDates: params.StrictDates}
	points, err := normalizer.NormalizeSingle(raw, opts)
	if err != nil {
		return nil, err
	}
	annotated, err := AnnotateSMA(points, params.SMAPeriod)
	if err != nil {
		return nil, err
	}
	latest := annotated[len(annotated)-1]
	return &model.SingleOutcome{
		Ticker:       ticker,
		CurrentPrice: latest.Price,
		Series:       annotated,
		Trend:        DetermineTrend(latest),
		SMAPeriod:    params.SMAPeriod,
		Sources:      ExtractSources(resp.Citations, params.MaxSources),
	}, nil
}
