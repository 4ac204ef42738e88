package services

import (
	"context"

	"rentdesk/internal/domain/daterange"
)

// Quoter asks the pricing collaborator for a total over a date range. A nil
// result with a nil error means the price is unknown.
type Quoter interface {
	Quote(ctx context.Context, unitID string, r daterange.Interval) (*float64, error)
}

// EventPublisher emits calendar lifecycle events to the broker. Publishing is
// best effort; a failed publish never rolls back the store write.
type EventPublisher interface {
	Publish(ctx context.Context, event string, unitID string, payload any) error
}

const (
	EventReservationCreated   = "reservation.created"
	EventReservationUpdated   = "reservation.updated"
	EventReservationDeleted   = "reservation.deleted"
	EventReservationFulfilled = "reservation.fulfilled"
	EventPriceAssigned        = "price.assigned"
	EventPriceRemoved         = "price.removed"
)

// NopPublisher discards events; used in memory mode and tests.
type NopPublisher struct{}

func (NopPublisher) Publish(ctx context.Context, event string, unitID string, payload any) error {
	return nil
}
