package model

import (
	"encoding/json"
	"testing"
)

func TestCorrelationStrength(t *testing.T) {
	tests := []struct {
		r     float64
		label string
	}{
		{0.95, "Strong Positive"},
		{0.7, "Weak Positive"},
		{0.31, "Weak Positive"},
		{0.3, "No Correlation"},
		{0, "No Correlation"},
		{-0.3, "No Correlation"},
		{-0.5, "Weak Inverse"},
		{-0.7, "Weak Inverse"},
		{-0.71, "Strong Inverse"},
	}
	for _, tt := range tests {
		if got := CorrelationStrength(tt.r).Label; got != tt.label {
			t.Errorf("r=%.2f: expected %q, got %q", tt.r, tt.label, got)
		}
	}
}

func TestTrendLabel(t *testing.T) {
	if TrendUp.Label() != "BULLISH" || TrendDown.Label() != "BEARISH" || TrendNeutral.Label() != "NEUTRAL" {
		t.Error("unexpected trend labels")
	}
}

func TestOutcomeKinds(t *testing.T) {
	outs := []Outcome{&SingleOutcome{}, &ComparisonOutcome{}}
	if outs[0].Kind() != KindSingle || outs[1].Kind() != KindCompare {
		t.Error("unexpected outcome kinds")
	}
}

func TestComparisonOutcome_MarshalJSON(t *testing.T) {
	body, err := json.Marshal(&ComparisonOutcome{
		Ticker1: "AAPL", Ticker2: "MSFT", Correlation: 0.5,
		Series:  []PairedPoint{{Date: "2024-01-01", Price1: 1, Price2: 2}},
		Sources: []Source{{Title: "t", URI: "u"}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var got map[string]any
	if err := json.Unmarshal(body, &got); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got["type"] != "COMPARE" || got["ticker1"] != "AAPL" || got["correlation"] != 0.5 {
		t.Errorf("unexpected json: %s", body)
	}
}

func TestAnnotatedPoint_OmitsAbsentSMA(t *testing.T) {
	body, _ := json.Marshal(AnnotatedPoint{SeriesPoint: SeriesPoint{Date: "d", Price: 1}})
	if string(body) != `{"date":"d","price":1}` {
		t.Errorf("unexpected json: %s", body)
	}
}
