package pricing

import (
	"context"
	"errors"
	"time"

	"rentdesk/internal/domain/daterange"
)

var (
	ErrNegativePrice = errors.New("pricing: price must not be negative")
	ErrNotFound      = errors.New("pricing: assignment not found")
)

// Assignment binds a nightly price to a unit over a half-open day range.
// Overlapping assignments for one unit are permitted at the data layer; the
// calendar index resolves overlap by letting the later entry in input order
// win, so repositories return assignments ordered by creation time ascending.
type Assignment struct {
	ID        string
	UnitID    string
	Range     daterange.Interval
	Price     float64
	CreatedAt time.Time

	// RangeErr is set by a store when the persisted interval literal could
	// not be parsed; the record carries a zero Range and the calendar build
	// reports this reason when it skips the record.
	RangeErr error
}

func NewAssignment(id, unitID string, r daterange.Interval, price float64, createdAt time.Time) (*Assignment, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	if price < 0 {
		return nil, ErrNegativePrice
	}
	return &Assignment{
		ID:        id,
		UnitID:    unitID,
		Range:     r,
		Price:     price,
		CreatedAt: createdAt.UTC(),
	}, nil
}

type Repository interface {
	ListByUnit(ctx context.Context, unitID string) ([]*Assignment, error)
	Insert(ctx context.Context, a *Assignment) error
	Delete(ctx context.Context, id string) error
}
