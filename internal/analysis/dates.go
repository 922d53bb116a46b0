package analysis

import (
	"slices"
	"strings"
	"time"
)

var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006/01/02",
	"01/02/2006",
	"Jan 2, 2006",
	"January 2, 2006",
	"2 Jan 2006",
}

// ParseDate reads a calendar date in any of the layouts models commonly emit.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// sortByDate stably orders items by calendar date. Unparseable dates sort
// after every parseable one and keep their relative order.
func sortByDate[T any](items []T, date func(T) string) []T {
	type keyed struct {
		item T
		at   time.Time
		ok   bool
	}
	ks := make([]keyed, len(items))
	for i, it := range items {
		at, ok := ParseDate(date(it))
		ks[i] = keyed{item: it, at: at, ok: ok}
	}
	slices.SortStableFunc(ks, func(a, b keyed) int {
		switch {
		case a.ok && b.ok:
			return a.at.Compare(b.at)
		case a.ok:
			return -1
		case b.ok:
			return 1
		default:
			return 0
		}
	})
	out := make([]T, len(ks))
	for i, k := range ks {
		out[i] = k.item
	}
	return out
}
