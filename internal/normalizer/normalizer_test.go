package normalizer

import (
	"encoding/json"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"TrendSpotter/internal/model"
)

func TestToPrice(t *testing.T) {
	tests := []struct {
		in   any
		want float64
		ok   bool
	}{
		{json.Number("101.25"), 101.25, true},
		{float64(99), 99, true},
		{42, 42, true},
		{"187.44", 187.44, true},
		{"  187.44", 187.44, true},
		{"101.5 USD", 101.5, true},
		{"-3e2", -300, true},
		{".5", 0.5, true},
		{"$101.5", 0, false},
		{"N/A", 0, false},
		{"", 0, false},
		{"Infinity", 0, false},
		{json.Number("1e999"), 0, false},
		{math.NaN(), 0, false},
		{math.Inf(1), 0, false},
		{nil, 0, false},
		{true, 0, false},
		{map[string]any{"v": 1}, 0, false},
	}
	for _, tt := range tests {
		got, ok := ToPrice(tt.in)
		if ok != tt.ok {
			t.Errorf("ToPrice(%#v): expected ok=%v, got %v", tt.in, tt.ok, ok)
			continue
		}
		if ok && got != tt.want {
			t.Errorf("ToPrice(%#v): expected %v, got %v", tt.in, tt.want, got)
		}
	}
}

func TestNormalize_DropsInvalidRecords(t *testing.T) {
	records := []RawRecord{
		{"date": "2024-01-01", "close": json.Number("100")},
		{"date": "2024-01-02", "close": "n/a"},
		{"date": "2024-01-03"},
		{"date": "2024-01-04", "close": nil},
		{"date": "2024-01-05", "close": "105.5"},
	}
	got := Normalize(records, Options{})

	require.Len(t, got, 2)
	assert.LessOrEqual(t, len(got), len(records))
	assert.Equal(t, model.SeriesPoint{Date: "2024-01-01", Price: 100}, got[0])
	assert.Equal(t, model.SeriesPoint{Date: "2024-01-05", Price: 105.5}, got[1])
	for _, p := range got {
		assert.False(t, math.IsNaN(p.Price) || math.IsInf(p.Price, 0))
	}
}

func TestNormalize_MissingDate(t *testing.T) {
	records := []RawRecord{
		{"close": json.Number("10")},
		{"date": "", "close": json.Number("11")},
		{"date": "2024-01-03", "close": json.Number("12")},
	}

	lenient := Normalize(records, Options{DefaultDate: func() string { return "2024-02-01" }})
	require.Len(t, lenient, 3)
	assert.Equal(t, "2024-02-01", lenient[0].Date)
	assert.Equal(t, "2024-02-01", lenient[1].Date)

	asIs := Normalize(records, Options{})
	require.Len(t, asIs, 3)
	assert.Equal(t, "", asIs[0].Date)

	strict := Normalize(records, Options{StrictDates: true, DefaultDate: Today})
	require.Len(t, strict, 1)
	assert.Equal(t, "2024-01-03", strict[0].Date)
}

func TestNormalize_NonStringDate(t *testing.T) {
	got := Normalize([]RawRecord{{"date": json.Number("20240105"), "close": json.Number("1")}}, Options{})
	require.Len(t, got, 1)
	assert.Equal(t, "20240105", got[0].Date)
}

func TestRecords(t *testing.T) {
	assert.Nil(t, Records(map[string]any{"date": "x"}))
	assert.Nil(t, Records(nil))

	got := Records([]any{map[string]any{"close": 1.0}, "junk", json.Number("3"), nil})
	assert.Len(t, got, 1)
}

func TestNormalizeSingle_Empty(t *testing.T) {
	_, err := NormalizeSingle([]any{map[string]any{"date": "2024-01-01", "close": "?"}}, Options{})
	var de *model.DataError
	require.True(t, errors.As(err, &de))
	assert.Equal(t, model.MsgNoStockData, err.Error())
}

func TestNormalizePair(t *testing.T) {
	payload := map[string]any{
		KeyFirst: []any{
			map[string]any{"date": "2024-01-01", "close": json.Number("10")},
			map[string]any{"date": "2024-01-02", "close": "bad"},
		},
		KeySecond: []any{
			map[string]any{"date": "2024-01-01", "close": "20"},
		},
	}
	a, b, err := NormalizePair(payload, Options{})
	require.NoError(t, err)
	assert.Len(t, a, 1)
	assert.Len(t, b, 1)
}

func TestNormalizePair_Insufficient(t *testing.T) {
	tests := []struct {
		name    string
		payload any
	}{
		{"second missing", map[string]any{KeyFirst: []any{map[string]any{"date": "d", "close": 1.0}}}},
		{"second not array", map[string]any{
			KeyFirst:  []any{map[string]any{"date": "d", "close": 1.0}},
			KeySecond: "none",
		}},
		{"all invalid", map[string]any{
			KeyFirst:  []any{map[string]any{"date": "d", "close": "x"}},
			KeySecond: []any{map[string]any{"date": "d", "close": 1.0}},
		}},
		{"not an object", []any{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := NormalizePair(tt.payload, Options{})
			var de *model.DataError
			require.True(t, errors.As(err, &de))
			assert.Equal(t, model.MsgInsufficient, de.Msg)
		})
	}
}
