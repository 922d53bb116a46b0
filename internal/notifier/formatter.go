package notifier

import (
	"errors"
	"fmt"
	"html"
	"regexp"
	"strings"

	"TrendSpotter/internal/calculator"
	"TrendSpotter/internal/model"
)

var sparkBlocks = []rune("▁▂▃▄▅▆▇█")

// FormatOutcome renders either outcome as a Telegram HTML message.
func FormatOutcome(o model.Outcome) string {
	switch v := o.(type) {
	case *model.SingleOutcome:
		return FormatTrendReport(v)
	case *model.ComparisonOutcome:
		return FormatCorrelationReport(v)
	default:
		return ""
	}
}

// FormatTrendReport formats a single-ticker trend analysis.
func FormatTrendReport(o *model.SingleOutcome) string {
	var b strings.Builder
	prices := make([]float64, len(o.Series))
	for i, p := range o.Series {
		prices[i] = p.Price
	}
	latest := o.Series[len(o.Series)-1]

	b.WriteString(fmt.Sprintf("📊 <b>%s</b> | %s\n\n", html.EscapeString(o.Ticker), html.EscapeString(latest.Date)))
	b.WriteString(fmt.Sprintf("Current Price: $%.2f USD\n", o.CurrentPrice))

	icon := "📉"
	if o.Trend == model.TrendUp {
		icon = "📈"
	}
	if latest.SMA != nil {
		b.WriteString(fmt.Sprintf("%s Technical Trend: <b>%s</b> (SMA%d %.2f)\n", icon, o.Trend.Label(), o.SMAPeriod, *latest.SMA))
	} else {
		b.WriteString(fmt.Sprintf("%s Technical Trend: <b>%s</b> (SMA%d n/a, %d points)\n", icon, o.Trend.Label(), o.SMAPeriod, len(o.Series)))
	}
	if chg, err := calculator.ChangePercent(prices); err == nil {
		b.WriteString(fmt.Sprintf("Change over %d points: %+.1f%%\n", len(prices), chg))
	}
	if high, low, err := calculator.PriceRange(prices); err == nil {
		b.WriteString(fmt.Sprintf("Range: $%.2f - $%.2f\n", low, high))
	}
	b.WriteString(fmt.Sprintf("<code>%s</code>\n", Sparkline(prices)))
	b.WriteString(fmt.Sprintf("Based on %d-Day SMA Crossover\n", o.SMAPeriod))

	b.WriteString(FormatSources(o.Sources))
	return b.String()
}

// FormatCorrelationReport formats a two-ticker correlation analysis.
func FormatCorrelationReport(o *model.ComparisonOutcome) string {
	var b strings.Builder
	strength := model.CorrelationStrength(o.Correlation)
	first, last := o.Series[0], o.Series[len(o.Series)-1]

	b.WriteString(fmt.Sprintf("🔀 <b>%s vs %s</b> | %s ~ %s\n\n",
		html.EscapeString(o.Ticker1), html.EscapeString(o.Ticker2),
		html.EscapeString(first.Date), html.EscapeString(last.Date)))
	b.WriteString(fmt.Sprintf("Correlation: <b>%.2f</b> %s\n", o.Correlation, strength.Label))
	b.WriteString(strength.Description + "\n")
	b.WriteString(fmt.Sprintf("Overlapping days: %d\n\n", len(o.Series)))

	p1 := make([]float64, len(o.Series))
	p2 := make([]float64, len(o.Series))
	for i, p := range o.Series {
		p1[i], p2[i] = p.Price1, p.Price2
	}
	b.WriteString(fmt.Sprintf("%s $%.2f <code>%s</code>\n", html.EscapeString(o.Ticker1), last.Price1, Sparkline(p1)))
	b.WriteString(fmt.Sprintf("%s $%.2f <code>%s</code>\n", html.EscapeString(o.Ticker2), last.Price2, Sparkline(p2)))

	b.WriteString(FormatSources(o.Sources))
	return b.String()
}

// FormatSources lists citations as links. Empty input renders nothing.
func FormatSources(sources []model.Source) string {
	if len(sources) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("\n🌐 <b>Data Sources</b>\n")
	for _, s := range sources {
		b.WriteString(fmt.Sprintf("• <a href=\"%s\">%s</a>\n", html.EscapeString(s.URI), html.EscapeString(s.Title)))
	}
	return b.String()
}

// FormatError renders an analysis failure. Pipeline errors are shown verbatim.
func FormatError(err error) string {
	var de *model.DataError
	var ee *model.ExtractionError
	if errors.As(err, &de) || errors.As(err, &ee) {
		return "❌ <b>Analysis Error</b>\n" + html.EscapeString(err.Error())
	}
	return "❌ <b>Analysis Error</b>\nFailed to analyze data. Please try again.\n<i>" + html.EscapeString(err.Error()) + "</i>"
}

// Sparkline draws values on the padded chart domain used by the price chart.
func Sparkline(values []float64) string {
	lo, hi, err := calculator.PriceDomain(values, 0.1)
	if err != nil {
		return ""
	}
	out := make([]rune, len(values))
	for i, v := range values {
		idx := len(sparkBlocks) / 2
		if hi > lo {
			idx = int((v - lo) / (hi - lo) * float64(len(sparkBlocks)-1))
		}
		out[i] = sparkBlocks[idx]
	}
	return string(out)
}

var tagPattern = regexp.MustCompile(`<[^>]*>`)

// StripTags turns a Telegram HTML message into plain text.
func StripTags(s string) string {
	return html.UnescapeString(tagPattern.ReplaceAllString(s, ""))
}
