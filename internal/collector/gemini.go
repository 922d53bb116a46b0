package collector

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/phuslu/log"
	"golang.org/x/time/rate"
	"google.golang.org/genai"
)

// GeminiOptions configures a GeminiFetcher.
type GeminiOptions struct {
	APIKey            string
	Model             string
	Proxy             string
	Timeout           time.Duration
	MaxRetries        int
	RequestsPerMinute int
}

// GeminiFetcher implements Fetcher with Gemini and Google Search grounding.
type GeminiFetcher struct {
	Client     *genai.Client
	Model      string
	Timeout    time.Duration
	MaxRetries int
	limiter    *rate.Limiter
}

// NewGeminiFetcher creates a Gemini client with optional proxy support.
func NewGeminiFetcher(ctx context.Context, opts GeminiOptions) (*GeminiFetcher, error) {
	if opts.APIKey == "" {
		return nil, errors.New("gemini api key is required")
	}
	transport := &http.Transport{}
	if opts.Proxy != "" {
		if u, err := url.Parse(opts.Proxy); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:     opts.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: &http.Client{Transport: transport},
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	limit := rate.Inf
	if opts.RequestsPerMinute > 0 {
		limit = rate.Every(time.Minute / time.Duration(opts.RequestsPerMinute))
	}
	return &GeminiFetcher{
		Client:     client,
		Model:      opts.Model,
		Timeout:    opts.Timeout,
		MaxRetries: opts.MaxRetries,
		limiter:    rate.NewLimiter(limit, 1),
	}, nil
}

func (f *GeminiFetcher) Name() string { return "gemini:" + f.Model }

func (f *GeminiFetcher) FetchSeries(ctx context.Context, ticker string, days int) (*Response, error) {
	return f.generate(ctx, SeriesPrompt(ticker, days))
}

func (f *GeminiFetcher) FetchPair(ctx context.Context, ticker1, ticker2 string, days int) (*Response, error) {
	return f.generate(ctx, PairPrompt(ticker1, ticker2, days))
}

func (f *GeminiFetcher) generate(ctx context.Context, prompt string) (*Response, error) {
	if f.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.Timeout)
		defer cancel()
	}
	config := &genai.GenerateContentConfig{
		Tools: []*genai.Tool{{GoogleSearch: &genai.GoogleSearch{}}},
	}

	var lastErr error
	for i := 0; i <= f.MaxRetries; i++ {
		if err := f.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("wait for rate limiter: %w", err)
		}
		resp, err := f.Client.Models.GenerateContent(ctx, f.Model, genai.Text(prompt), config)
		if err == nil {
			return fromGenai(resp), nil
		}
		lastErr = err
		if i == f.MaxRetries {
			break
		}
		backoff := time.Duration(1<<uint(i)) * time.Second
		log.Warn().Err(err).Int("attempt", i+1).Dur("backoff", backoff).Msg("gemini request failed, retrying")
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(backoff):
		}
	}
	return nil, fmt.Errorf("gemini generate content after %d attempts: %w", f.MaxRetries+1, lastErr)
}

// fromGenai flattens the first candidate into a Response.
func fromGenai(resp *genai.GenerateContentResponse) *Response {
	out := &Response{}
	if resp == nil || len(resp.Candidates) == 0 {
		return out
	}
	// Text skips thought parts.
	out.Text = resp.Text()
	cand := resp.Candidates[0]
	if cand.GroundingMetadata != nil {
		for _, chunk := range cand.GroundingMetadata.GroundingChunks {
			if chunk == nil {
				continue
			}
			c := Citation{}
			if chunk.Web != nil {
				c.Web = &WebCitation{Title: chunk.Web.Title, URI: chunk.Web.URI}
			}
			out.Citations = append(out.Citations, c)
		}
	}
	return out
}
