package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"rentdesk/internal/app/dto"
	"rentdesk/internal/domain/daterange"
	domainpricing "rentdesk/internal/domain/pricing"
)

type PricingService struct {
	Prices domainpricing.Repository
	Quotes Quoter
	Events EventPublisher
	Logger *slog.Logger
	Now    func() time.Time
}

func (s *PricingService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// Assign creates a price assignment over a date range. Assignments are never
// edited in place; a correction is a new assignment that wins the day overlap
// by being more recent.
func (s *PricingService) Assign(ctx context.Context, unitID string, in dto.AssignPrice) (dto.PriceAssignment, error) {
	iv, err := daterange.Parse(in.DateRange)
	if err != nil {
		return dto.PriceAssignment{}, err
	}
	a, err := domainpricing.NewAssignment(uuid.NewString(), unitID, iv, in.Price, s.now())
	if err != nil {
		return dto.PriceAssignment{}, err
	}
	if err := s.Prices.Insert(ctx, a); err != nil {
		return dto.PriceAssignment{}, err
	}
	s.publish(ctx, EventPriceAssigned, unitID, map[string]any{"assignment_id": a.ID, "date_range": a.Range.WireLiteral(), "price": a.Price})
	return dto.MapAssignment(a), nil
}

func (s *PricingService) Remove(ctx context.Context, unitID, id string) error {
	if err := s.Prices.Delete(ctx, id); err != nil {
		return err
	}
	s.publish(ctx, EventPriceRemoved, unitID, map[string]any{"assignment_id": id})
	return nil
}

func (s *PricingService) ListByUnit(ctx context.Context, unitID string) ([]dto.PriceAssignment, error) {
	items, err := s.Prices.ListByUnit(ctx, unitID)
	if err != nil {
		return nil, err
	}
	return dto.MapAssignments(items), nil
}

// Report projects a unit's price assignments for one calendar year, sorted
// ascending by start date, for the PDF export collaborator.
func (s *PricingService) Report(ctx context.Context, unitID string, year int) (dto.PriceReport, error) {
	items, err := s.Prices.ListByUnit(ctx, unitID)
	if err != nil {
		return dto.PriceReport{}, err
	}
	return dto.MapReport(unitID, year, domainpricing.YearReport(items, year)), nil
}

// Quote asks the remote pricing procedure for a total. An unknown price comes
// back as a nil total, which must never be rendered as zero.
func (s *PricingService) Quote(ctx context.Context, unitID string, rangeLiteral string) (dto.Quote, error) {
	iv, err := daterange.Parse(rangeLiteral)
	if err != nil {
		return dto.Quote{}, err
	}
	total, err := s.Quotes.Quote(ctx, unitID, iv)
	if err != nil {
		return dto.Quote{}, err
	}
	return dto.Quote{UnitID: unitID, DateRange: iv.WireLiteral(), Total: total}, nil
}

func (s *PricingService) publish(ctx context.Context, event, unitID string, payload any) {
	if s.Events == nil {
		return
	}
	if err := s.Events.Publish(ctx, event, unitID, payload); err != nil && s.Logger != nil {
		s.Logger.Warn("event publish failed", "event", event, "unit_id", unitID, "error", err)
	}
}
