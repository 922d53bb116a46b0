package collector

import "context"

// Fetcher asks a text-generation service for recent closing prices.
// The returned text is free-form and may wrap the JSON payload in prose or markdown.
type Fetcher interface {
	FetchSeries(ctx context.Context, ticker string, days int) (*Response, error)
	FetchPair(ctx context.Context, ticker1, ticker2 string, days int) (*Response, error)
	Name() string
}

// Response is the raw answer of the service.
type Response struct {
	Text      string
	Citations []Citation
}

// Citation is one grounding chunk. Only web chunks carry a title and URI.
type Citation struct {
	Web *WebCitation
}

// WebCitation is the web part of a grounding chunk.
type WebCitation struct {
	Title string
	URI   string
}
