package collector

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"
)

// MockFetcher returns controllable fixed text for development and testing.
// Texts is keyed by ticker for single requests and "T1|T2" for pairs; any
// ticker without an entry gets generated data around Price.
type MockFetcher struct {
	Price     float64
	Texts     map[string]string
	Citations []Citation
	Err       error

	mu    sync.Mutex
	Calls []string
}

func (m *MockFetcher) record(call string) {
	m.mu.Lock()
	m.Calls = append(m.Calls, call)
	m.mu.Unlock()
}

// CallLog returns a copy of the recorded calls.
func (m *MockFetcher) CallLog() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.Calls...)
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchSeries(_ context.Context, ticker string, days int) (*Response, error) {
	m.record(ticker)
	if m.Err != nil {
		return nil, m.Err
	}
	if text, ok := m.Texts[ticker]; ok {
		return &Response{Text: text, Citations: m.Citations}, nil
	}
	body, err := json.Marshal(generateMockCloses(m.Price, days, 0.001))
	if err != nil {
		return nil, fmt.Errorf("marshal mock closes: %w", err)
	}
	return &Response{
		Text:      fmt.Sprintf("Here are the last %d closes for %s:\n```json\n%s\n```", days, ticker, body),
		Citations: m.Citations,
	}, nil
}

func (m *MockFetcher) FetchPair(_ context.Context, ticker1, ticker2 string, days int) (*Response, error) {
	key := ticker1 + "|" + ticker2
	m.record(key)
	if m.Err != nil {
		return nil, m.Err
	}
	if text, ok := m.Texts[key]; ok {
		return &Response{Text: text, Citations: m.Citations}, nil
	}
	body, err := json.Marshal(map[string][]mockClose{
		"stock1": generateMockCloses(m.Price, days, 0.001),
		"stock2": generateMockCloses(m.Price/2, days, 0.0015),
	})
	if err != nil {
		return nil, fmt.Errorf("marshal mock closes: %w", err)
	}
	return &Response{Text: strings.TrimSpace(string(body)), Citations: m.Citations}, nil
}

type mockClose struct {
	Date  string  `json:"date"`
	Close float64 `json:"close"`
}

func generateMockCloses(basePrice float64, count int, step float64) []mockClose {
	closes := make([]mockClose, count)
	for i := 0; i < count; i++ {
		closes[i] = mockClose{
			Date:  time.Now().UTC().AddDate(0, 0, -(count - i)).Format("2006-01-02"),
			Close: basePrice * (1 + float64(i-count/2)*step),
		}
	}
	return closes
}
