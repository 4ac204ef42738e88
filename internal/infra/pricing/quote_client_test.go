package pricing

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rentdesk/internal/domain/daterange"
)

func interval(t *testing.T, literal string) daterange.Interval {
	t.Helper()
	iv, err := daterange.Parse(literal)
	require.NoError(t, err)
	return iv
}

func TestQuoteTranslatesRequestAndParsesTotal(t *testing.T) {
	var captured quoteRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(body, &captured))
		_ = json.NewEncoder(w).Encode(map[string]float64{"total": 480})
	}))
	defer server.Close()

	client := &QuoteClient{Client: server.Client(), Endpoint: server.URL}
	total, err := client.Quote(context.Background(), "unit-1", interval(t, "[2024-06-10,2024-06-14)"))

	require.NoError(t, err)
	require.NotNil(t, total)
	assert.Equal(t, 480.0, *total)
	assert.Equal(t, "unit-1", captured.UnitID)
	assert.Equal(t, "[2024-06-10,2024-06-14)", captured.DateRange)
}

func TestQuoteRejectsZeroNightRangeBeforeRequest(t *testing.T) {
	requested := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requested = true
	}))
	defer server.Close()

	client := &QuoteClient{Client: server.Client(), Endpoint: server.URL}
	start := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	_, err := client.Quote(context.Background(), "unit-1", daterange.Interval{Start: start, End: start})

	assert.ErrorIs(t, err, daterange.ErrInvalidRange)
	assert.False(t, requested, "no request may be issued for an invalid range")
}

func TestQuoteDegradesToNilOnRemoteFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := &QuoteClient{Client: server.Client(), Endpoint: server.URL}
	total, err := client.Quote(context.Background(), "unit-1", interval(t, "[2024-06-10,2024-06-14)"))

	require.NoError(t, err, "remote failure is not an error for the caller")
	assert.Nil(t, total, "unknown price must stay nil, never zero")
}

func TestQuoteDegradesToNilOnNetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := &QuoteClient{Client: http.DefaultClient, Endpoint: server.URL}
	total, err := client.Quote(context.Background(), "unit-1", interval(t, "[2024-06-10,2024-06-14)"))

	require.NoError(t, err)
	assert.Nil(t, total)
}
