package model

import "encoding/json"

// OutcomeKind discriminates the two analysis results.
type OutcomeKind string

const (
	KindSingle  OutcomeKind = "SINGLE"
	KindCompare OutcomeKind = "COMPARE"
)

// Outcome is either a *SingleOutcome or a *ComparisonOutcome.
type Outcome interface {
	Kind() OutcomeKind
	GetSources() []Source
	isOutcome()
}

// SingleOutcome is the trend analysis of one ticker.
type SingleOutcome struct {
	Ticker       string           `json:"ticker"`
	CurrentPrice float64          `json:"currentPrice"`
	Series       []AnnotatedPoint `json:"data"`
	Trend        Trend            `json:"trend"`
	SMAPeriod    int              `json:"smaPeriod"`
	Sources      []Source         `json:"sources"`
}

// ComparisonOutcome is the correlation analysis of two tickers.
type ComparisonOutcome struct {
	Ticker1     string        `json:"ticker1"`
	Ticker2     string        `json:"ticker2"`
	Correlation float64       `json:"correlation"`
	Series      []PairedPoint `json:"data"`
	Sources     []Source      `json:"sources"`
}

func (*SingleOutcome) Kind() OutcomeKind          { return KindSingle }
func (*ComparisonOutcome) Kind() OutcomeKind      { return KindCompare }
func (o *SingleOutcome) GetSources() []Source     { return o.Sources }
func (o *ComparisonOutcome) GetSources() []Source { return o.Sources }
func (*SingleOutcome) isOutcome()                 {}
func (*ComparisonOutcome) isOutcome()             {}

// MarshalJSON adds the "type" discriminant.
func (o *SingleOutcome) MarshalJSON() ([]byte, error) {
	type plain SingleOutcome
	return json.Marshal(struct {
		Type OutcomeKind `json:"type"`
		*plain
	}{KindSingle, (*plain)(o)})
}

// MarshalJSON adds the "type" discriminant.
func (o *ComparisonOutcome) MarshalJSON() ([]byte, error) {
	type plain ComparisonOutcome
	return json.Marshal(struct {
		Type OutcomeKind `json:"type"`
		*plain
	}{KindCompare, (*plain)(o)})
}
