package main

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"TrendSpotter/internal/analysis"
	"TrendSpotter/internal/collector"
)

func TestRunOnce_Text(t *testing.T) {
	an := analysis.NewAnalyzer(&collector.MockFetcher{Price: 100}, analysis.DefaultParams())
	var buf bytes.Buffer
	require.NoError(t, runOnce(context.Background(), &buf, an, "aapl", "", false))
	assert.Contains(t, buf.String(), "AAPL |")
	assert.NotContains(t, buf.String(), "<b>")
}

func TestRunOnce_JSON(t *testing.T) {
	an := analysis.NewAnalyzer(&collector.MockFetcher{Price: 100}, analysis.DefaultParams())
	var buf bytes.Buffer
	require.NoError(t, runOnce(context.Background(), &buf, an, "aapl", "msft", true))

	var got map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "COMPARE", got["type"])
	assert.Equal(t, "AAPL", got["ticker1"])
	assert.Equal(t, "MSFT", got["ticker2"])
}

func TestRunOnce_Error(t *testing.T) {
	an := analysis.NewAnalyzer(&collector.MockFetcher{Texts: map[string]string{"X": "nothing"}}, analysis.DefaultParams())
	err := runOnce(context.Background(), &bytes.Buffer{}, an, "x", "", false)
	assert.Error(t, err)
}

func TestNewFetcher_Mock(t *testing.T) {
	f, err := newFetcher(context.Background(), nil, true)
	require.NoError(t, err)
	assert.Equal(t, "mock", f.Name())
}
