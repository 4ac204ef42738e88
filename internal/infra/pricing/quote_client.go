package pricing

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"rentdesk/internal/domain/daterange"
)

// QuoteClient translates a (unit, date range) pair into the remote pricing
// procedure's wire format and parses the single numeric result.
//
// Remote failures degrade to a nil price, never to zero: a nil result means
// "price unknown" and must not end up on a guest's bill.
type QuoteClient struct {
	Client   *http.Client
	Endpoint string
	Logger   *slog.Logger
}

type quoteRequest struct {
	UnitID    string `json:"unit_id"`
	DateRange string `json:"date_range"`
}

type quoteResponse struct {
	Total float64 `json:"total"`
}

// Quote requests the total price for staying in unitID over r. A range of
// zero or negative nights fails before any request is issued.
func (q *QuoteClient) Quote(ctx context.Context, unitID string, r daterange.Interval) (*float64, error) {
	if q == nil || q.Client == nil {
		return nil, errors.New("pricing: http client not configured")
	}
	if q.Endpoint == "" {
		return nil, errors.New("pricing: quote endpoint not configured")
	}
	if r.Nights() < 1 {
		return nil, daterange.ErrInvalidRange
	}

	body, err := json.Marshal(quoteRequest{UnitID: unitID, DateRange: r.WireLiteral()})
	if err != nil {
		return nil, err
	}
	request, err := http.NewRequestWithContext(ctx, http.MethodPost, q.Endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	request.Header.Set("Content-Type", "application/json")

	resp, err := q.Client.Do(request)
	if err != nil {
		q.logFailure(unitID, r, err)
		return nil, nil
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		q.logFailure(unitID, r, fmt.Errorf("pricing: quote returned status %d: %s", resp.StatusCode, string(snippet)))
		return nil, nil
	}

	var decoded quoteResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		q.logFailure(unitID, r, err)
		return nil, nil
	}
	total := decoded.Total
	return &total, nil
}

func (q *QuoteClient) logFailure(unitID string, r daterange.Interval, err error) {
	if q.Logger == nil {
		return
	}
	q.Logger.Error("price quote failed, treating price as unknown",
		"unit_id", unitID, "range", r.WireLiteral(), "error", err)
}
