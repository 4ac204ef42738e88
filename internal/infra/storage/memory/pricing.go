package memory

import (
	"context"

	"rentdesk/internal/domain/daterange"
)

// QuoteEngine is a deterministic per-night quoter used in memory mode, where
// no remote pricing service is reachable.
type QuoteEngine struct {
	NightlyRate float64
}

func NewQuoteEngine() *QuoteEngine {
	return &QuoteEngine{NightlyRate: 100}
}

func (q *QuoteEngine) Quote(ctx context.Context, unitID string, r daterange.Interval) (*float64, error) {
	nights := r.Nights()
	if nights < 1 {
		return nil, daterange.ErrInvalidRange
	}
	total := float64(nights) * q.NightlyRate
	return &total, nil
}
