// Package analysis turns raw model answers into trend and correlation results.
package analysis

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/phuslu/log"

	"TrendSpotter/internal/collector"
	"TrendSpotter/internal/model"
)

// Params are the tunables shared by both pipelines.
type Params struct {
	Days        int
	SMAPeriod   int
	MinOverlap  int
	MaxSources  int
	StrictDates bool
}

// DefaultParams mirrors the values the service has always used.
func DefaultParams() Params {
	return Params{
		Days:       30,
		SMAPeriod:  5,
		MinOverlap: 5,
		MaxSources: 5,
	}
}

// Analyzer fetches raw answers and runs them through the pipelines.
type Analyzer struct {
	Fetcher collector.Fetcher
	Params  Params
}

// NewAnalyzer creates a new Analyzer.
func NewAnalyzer(fetcher collector.Fetcher, params Params) *Analyzer {
	return &Analyzer{Fetcher: fetcher, Params: params}
}

// NormalizeTicker trims and upper-cases a ticker symbol.
func NormalizeTicker(ticker string) string {
	return strings.ToUpper(strings.TrimSpace(ticker))
}

// Analyze runs a trend analysis when ticker2 is blank and a comparison otherwise.
func (a *Analyzer) Analyze(ctx context.Context, ticker1, ticker2 string) (model.Outcome, error) {
	if NormalizeTicker(ticker2) == "" {
		out, err := a.AnalyzeStock(ctx, ticker1)
		if err != nil {
			return nil, err
		}
		return out, nil
	}
	out, err := a.CompareStocks(ctx, ticker1, ticker2)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// AnalyzeStock computes the SMA trend of one ticker.
func (a *Analyzer) AnalyzeStock(ctx context.Context, ticker string) (*model.SingleOutcome, error) {
	ticker = NormalizeTicker(ticker)
	if ticker == "" {
		return nil, &model.DataError{Msg: "A ticker symbol is required."}
	}
	id, start := uuid.NewString(), time.Now()

	resp, err := a.Fetcher.FetchSeries(ctx, ticker, a.Params.Days)
	if err != nil {
		log.Error().Str("request_id", id).Str("ticker", ticker).Err(err).Msg("fetch series failed")
		return nil, fmt.Errorf("fetch series for %s: %w", ticker, err)
	}
	out, err := BuildSingle(ticker, resp, a.Params)
	if err != nil {
		log.Warn().Str("request_id", id).Str("ticker", ticker).Err(err).Msg("trend analysis rejected")
		return nil, err
	}
	log.Info().Str("request_id", id).Str("ticker", ticker).Str("source", a.Fetcher.Name()).
		Int("points", len(out.Series)).Str("trend", string(out.Trend)).
		Dur("took", time.Since(start)).Msg("trend analysis done")
	return out, nil
}

// CompareStocks computes the price correlation of two tickers.
func (a *Analyzer) CompareStocks(ctx context.Context, ticker1, ticker2 string) (*model.ComparisonOutcome, error) {
	ticker1, ticker2 = NormalizeTicker(ticker1), NormalizeTicker(ticker2)
	if ticker1 == "" || ticker2 == "" {
		return nil, &model.DataError{Msg: "Two ticker symbols are required."}
	}
	id, start := uuid.NewString(), time.Now()

	resp, err := a.Fetcher.FetchPair(ctx, ticker1, ticker2, a.Params.Days)
	if err != nil {
		log.Error().Str("request_id", id).Str("ticker1", ticker1).Str("ticker2", ticker2).Err(err).Msg("fetch pair failed")
		return nil, fmt.Errorf("fetch pair %s/%s: %w", ticker1, ticker2, err)
	}
	out, err := BuildComparison(ticker1, ticker2, resp, a.Params)
	if err != nil {
		log.Warn().Str("request_id", id).Str("ticker1", ticker1).Str("ticker2", ticker2).Err(err).Msg("comparison rejected")
		return nil, err
	}
	log.Info().Str("request_id", id).Str("ticker1", ticker1).Str("ticker2", ticker2).
		Str("source", a.Fetcher.Name()).Int("overlap", len(out.Series)).
		Float64("correlation", out.Correlation).Dur("took", time.Since(start)).Msg("comparison done")
	return out, nil
}
