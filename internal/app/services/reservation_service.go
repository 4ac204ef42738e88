package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"rentdesk/internal/app/dto"
	"rentdesk/internal/domain/daterange"
	domainreservation "rentdesk/internal/domain/reservation"
	domainunit "rentdesk/internal/domain/unit"
)

var ErrCapacityExceeded = errors.New("services: guest count exceeds unit capacity")

type ReservationService struct {
	Reservations domainreservation.Repository
	Units        domainunit.Repository
	Events       EventPublisher
	Logger       *slog.Logger
	Now          func() time.Time
}

func (s *ReservationService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *ReservationService) Create(ctx context.Context, unitID string, in dto.CreateReservation) (dto.Reservation, error) {
	iv, err := daterange.Parse(in.DateRange)
	if err != nil {
		return dto.Reservation{}, err
	}
	u, err := s.Units.ByID(ctx, unitID)
	if err != nil {
		return dto.Reservation{}, err
	}
	if !u.Fits(in.GuestCount) {
		return dto.Reservation{}, ErrCapacityExceeded
	}
	res, err := domainreservation.New(domainreservation.CreateParams{
		ID:     uuid.NewString(),
		UnitID: unitID,
		Guest: domainreservation.Guest{
			FirstName:  in.GuestFirstName,
			LastName:   in.GuestLastName,
			GuestCount: in.GuestCount,
			Country:    in.GuestCountry,
		},
		Range:             iv,
		TotalPrice:        in.TotalPrice,
		Type:              domainreservation.Type(in.Type),
		PrepaymentPercent: in.PrepaymentPercent,
		PrepaymentPaid:    in.PrepaymentPaid,
		Note:              in.Note,
		CreatedAt:         s.now(),
	})
	if err != nil {
		return dto.Reservation{}, err
	}
	if err := s.Reservations.Insert(ctx, res); err != nil {
		return dto.Reservation{}, err
	}
	s.publish(ctx, EventReservationCreated, unitID, map[string]any{"reservation_id": res.ID, "date_range": res.Range.WireLiteral()})
	return dto.MapReservation(res), nil
}

func (s *ReservationService) Update(ctx context.Context, id string, in dto.UpdateReservation) (dto.Reservation, error) {
	existing, err := s.Reservations.ByID(ctx, id)
	if err != nil {
		return dto.Reservation{}, err
	}
	iv, err := daterange.Parse(in.DateRange)
	if err != nil {
		return dto.Reservation{}, err
	}
	u, err := s.Units.ByID(ctx, existing.UnitID)
	if err != nil {
		return dto.Reservation{}, err
	}
	if !u.Fits(in.GuestCount) {
		return dto.Reservation{}, ErrCapacityExceeded
	}
	updated, err := domainreservation.New(domainreservation.CreateParams{
		ID:     existing.ID,
		UnitID: existing.UnitID,
		Guest: domainreservation.Guest{
			FirstName:  in.GuestFirstName,
			LastName:   in.GuestLastName,
			GuestCount: in.GuestCount,
			Country:    in.GuestCountry,
		},
		Range:             iv,
		TotalPrice:        in.TotalPrice,
		Type:              existing.Type,
		PrepaymentPercent: in.PrepaymentPercent,
		PrepaymentPaid:    in.PrepaymentPaid,
		Note:              in.Note,
		CreatedAt:         existing.CreatedAt,
	})
	if err != nil {
		return dto.Reservation{}, err
	}
	// Fulfillment is monotonic: an edit never reverts a fulfilled reservation.
	updated.Fulfilled = existing.Fulfilled
	if err := s.Reservations.Update(ctx, updated); err != nil {
		return dto.Reservation{}, err
	}
	s.publish(ctx, EventReservationUpdated, existing.UnitID, map[string]any{"reservation_id": updated.ID, "date_range": updated.Range.WireLiteral()})
	return dto.MapReservation(updated), nil
}

func (s *ReservationService) Delete(ctx context.Context, id string) error {
	existing, err := s.Reservations.ByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.Reservations.Delete(ctx, id); err != nil {
		return err
	}
	s.publish(ctx, EventReservationDeleted, existing.UnitID, map[string]any{"reservation_id": id})
	return nil
}

func (s *ReservationService) ListByUnit(ctx context.Context, unitID string) ([]dto.Reservation, error) {
	items, err := s.Reservations.ListByUnit(ctx, unitID)
	if err != nil {
		return nil, err
	}
	return dto.MapReservations(items), nil
}

func (s *ReservationService) publish(ctx context.Context, event, unitID string, payload any) {
	if s.Events == nil {
		return
	}
	if err := s.Events.Publish(ctx, event, unitID, payload); err != nil && s.Logger != nil {
		s.Logger.Warn("event publish failed", "event", event, "unit_id", unitID, "error", err)
	}
}
