package services

import (
	"context"
	"log/slog"
	"time"

	"rentdesk/internal/app/dto"
	"rentdesk/internal/domain/calendar"
	domainpricing "rentdesk/internal/domain/pricing"
	domainreservation "rentdesk/internal/domain/reservation"
)

// CalendarService assembles the per-day availability/pricing index for one
// unit. Each fetch also runs the fulfillment sweep, so past reservations
// become eventually correct the next time someone loads the unit.
type CalendarService struct {
	Reservations domainreservation.Repository
	Prices       domainpricing.Repository
	Events       EventPublisher
	Logger       *slog.Logger
	Now          func() time.Time
}

func (s *CalendarService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// Fetch loads the unit's reservations and price assignments, sweeps overdue
// fulfillments, and reduces everything to the day-keyed calendar.
func (s *CalendarService) Fetch(ctx context.Context, unitID string) (dto.Calendar, error) {
	reservations, err := s.Reservations.ListByUnit(ctx, unitID)
	if err != nil {
		return dto.Calendar{}, err
	}

	reservations = s.sweepFulfillments(ctx, unitID, reservations)

	prices, err := s.Prices.ListByUnit(ctx, unitID)
	if err != nil {
		return dto.Calendar{}, err
	}

	ix := calendar.Build(reservations, prices, false)
	for _, w := range ix.Warnings {
		s.log().Warn("calendar record skipped", "unit_id", unitID, "kind", w.Kind, "record_id", w.ID, "reason", w.Reason)
	}
	return dto.MapCalendar(unitID, ix), nil
}

// sweepFulfillments issues the minimal batch update for overdue reservations.
// Local flags are flipped only after the batch write succeeds; on failure the
// fetch proceeds with the stale flags and the next fetch retries.
func (s *CalendarService) sweepFulfillments(ctx context.Context, unitID string, reservations []*domainreservation.Reservation) []*domainreservation.Reservation {
	result := domainreservation.Sweep(reservations, s.now())
	if len(result.ToMarkFulfilled) == 0 {
		return reservations
	}
	if err := s.Reservations.MarkFulfilled(ctx, result.ToMarkFulfilled); err != nil {
		s.log().Error("fulfillment batch write failed, keeping local flags", "unit_id", unitID, "count", len(result.ToMarkFulfilled), "error", err)
		return reservations
	}
	domainreservation.ApplySweep(reservations, result.ToMarkFulfilled)
	if s.Events != nil {
		if err := s.Events.Publish(ctx, EventReservationFulfilled, unitID, map[string]any{"reservation_ids": result.ToMarkFulfilled}); err != nil {
			s.log().Warn("fulfillment event publish failed", "unit_id", unitID, "error", err)
		}
	}
	return reservations
}

func (s *CalendarService) log() *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return slog.Default()
}
