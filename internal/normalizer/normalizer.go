// Package normalizer turns loosely-typed JSON records into price series.
package normalizer

import (
	"encoding/json"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cast"

	"TrendSpotter/internal/model"
)

// RawRecord is one decoded JSON object from the model output.
type RawRecord map[string]any

// Keys of the comparison payload.
const (
	KeyFirst  = "stock1"
	KeySecond = "stock2"
)

// Options controls how missing dates are handled.
type Options struct {
	// DefaultDate fills in a missing date. Nil keeps the empty date.
	DefaultDate func() string
	// StrictDates drops records without a date. Takes precedence over DefaultDate.
	StrictDates bool
}

// Today returns the current UTC date as YYYY-MM-DD.
func Today() string {
	return time.Now().UTC().Format("2006-01-02")
}

// Records returns the object elements of a decoded JSON array.
// Anything that is not an array yields nil; non-object elements are skipped.
func Records(v any) []RawRecord {
	items, ok := v.([]any)
	if !ok {
		return nil
	}
	records := make([]RawRecord, 0, len(items))
	for _, it := range items {
		if m, ok := it.(map[string]any); ok {
			records = append(records, RawRecord(m))
		}
	}
	return records
}

// Normalize maps records to points, dropping any whose close is not a finite number.
func Normalize(records []RawRecord, opts Options) []model.SeriesPoint {
	points := make([]model.SeriesPoint, 0, len(records))
	for _, r := range records {
		price, ok := ToPrice(r["close"])
		if !ok {
			continue
		}
		date := dateOf(r["date"])
		if date == "" {
			if opts.StrictDates {
				continue
			}
			if opts.DefaultDate != nil {
				date = opts.DefaultDate()
			}
		}
		points = append(points, model.SeriesPoint{Date: date, Price: price})
	}
	return points
}

// NormalizeSingle normalizes the decoded array of a single-ticker response.
func NormalizeSingle(v any, opts Options) ([]model.SeriesPoint, error) {
	points := Normalize(Records(v), opts)
	if len(points) == 0 {
		return nil, &model.DataError{Msg: model.MsgNoStockData}
	}
	return points, nil
}

// NormalizePair normalizes both arrays of a comparison response independently.
func NormalizePair(v any, opts Options) (first, second []model.SeriesPoint, err error) {
	obj, _ := v.(map[string]any)
	first = Normalize(Records(obj[KeyFirst]), opts)
	second = Normalize(Records(obj[KeySecond]), opts)
	if len(first) == 0 || len(second) == 0 {
		return nil, nil, &model.DataError{Msg: model.MsgInsufficient}
	}
	return first, second, nil
}

func dateOf(v any) string {
	if v == nil {
		return ""
	}
	switch x := v.(type) {
	case string:
		return x
	case json.Number:
		return x.String()
	}
	s, err := cast.ToStringE(v)
	if err != nil {
		return ""
	}
	return s
}

// leadingFloat matches the numeric prefix parseFloat would accept.
var leadingFloat = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)

// ToPrice coerces a close value. Numbers are taken as is; strings are read up to
// the first character that cannot continue a number ("101.5 USD" -> 101.5).
// Booleans, nulls, objects and non-finite results are rejected.
func ToPrice(v any) (float64, bool) {
	var f float64
	switch x := v.(type) {
	case nil, bool:
		return 0, false
	case json.Number:
		p, err := strconv.ParseFloat(string(x), 64)
		if err != nil {
			return 0, false
		}
		f = p
	case string:
		m := leadingFloat.FindString(strings.TrimSpace(x))
		if m == "" {
			return 0, false
		}
		p, err := strconv.ParseFloat(m, 64)
		if err != nil {
			return 0, false
		}
		f = p
	default:
		p, err := cast.ToFloat64E(x)
		if err != nil {
			return 0, false
		}
		f = p
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}
