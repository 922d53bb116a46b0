package collector

import "fmt"

// SeriesPrompt asks for a single JSON array of {date, close}.
func SeriesPrompt(ticker string, days int) string {
	return fmt.Sprintf(`Find the closing stock prices for %s for the last %d trading days.
Strictly format your response as a valid JSON array of objects.
Each object must have exactly two properties:
1. "date": string (YYYY-MM-DD format)
2. "close": number (the closing price)
Do not include markdown. Just the JSON string.`, ticker, days)
}

// PairPrompt asks for a JSON object with one array per ticker under "stock1" and "stock2".
func PairPrompt(ticker1, ticker2 string, days int) string {
	return fmt.Sprintf(`Find the closing stock prices for BOTH %s and %s for the last %d trading days.

Strictly format your response as a valid JSON object with two keys: "stock1" and "stock2".
"stock1" should contain the array for %s.
"stock2" should contain the array for %s.

Each array item must have:
1. "date": string (YYYY-MM-DD)
2. "close": number

Ensure the dates align as much as possible.
Do not include markdown.`, ticker1, ticker2, days, ticker1, ticker2)
}
