package reservation

import (
	"context"
	"errors"
	"time"

	"rentdesk/internal/domain/daterange"
)

var (
	ErrInvalidGuestCount = errors.New("reservation: guest count must be positive")
	ErrGuestNameRequired = errors.New("reservation: guest name required")
	ErrInvalidPrepayment = errors.New("reservation: prepayment percent must be within 0..100")
	ErrNotFound          = errors.New("reservation: not found")
)

type Type string

const (
	TypeCustom  Type = "CUSTOM"
	TypeAirbnb  Type = "AIRBNB"
	TypeBooking Type = "BOOKING"
)

type Guest struct {
	FirstName  string
	LastName   string
	GuestCount int
	Country    string
}

// Label is the short guest caption shown on calendar cells.
func (g Guest) Label() string {
	if g.LastName == "" {
		return g.FirstName
	}
	return g.FirstName + " " + g.LastName
}

type Reservation struct {
	ID                string
	UnitID            string
	Guest             Guest
	Range             daterange.Interval
	TotalPrice        float64
	Type              Type
	Fulfilled         bool
	PrepaymentPercent float64
	PrepaymentPaid    bool
	Note              string
	CreatedAt         time.Time

	// RangeErr is set by a store when the persisted interval literal could
	// not be parsed; the record carries a zero Range and the calendar build
	// reports this reason when it skips the record.
	RangeErr error
}

type CreateParams struct {
	ID                string
	UnitID            string
	Guest             Guest
	Range             daterange.Interval
	TotalPrice        float64
	Type              Type
	PrepaymentPercent float64
	PrepaymentPaid    bool
	Note              string
	CreatedAt         time.Time
}

func New(params CreateParams) (*Reservation, error) {
	if err := params.Range.Validate(); err != nil {
		return nil, err
	}
	if params.Guest.GuestCount <= 0 {
		return nil, ErrInvalidGuestCount
	}
	if params.Guest.FirstName == "" && params.Guest.LastName == "" {
		return nil, ErrGuestNameRequired
	}
	if params.PrepaymentPercent < 0 || params.PrepaymentPercent > 100 {
		return nil, ErrInvalidPrepayment
	}
	typ := params.Type
	if typ == "" {
		typ = TypeCustom
	}
	return &Reservation{
		ID:                params.ID,
		UnitID:            params.UnitID,
		Guest:             params.Guest,
		Range:             params.Range,
		TotalPrice:        params.TotalPrice,
		Type:              typ,
		PrepaymentPercent: params.PrepaymentPercent,
		PrepaymentPaid:    params.PrepaymentPaid,
		Note:              params.Note,
		CreatedAt:         params.CreatedAt.UTC(),
	}, nil
}

// PrepaymentAmount is the advance due for the reservation. It tracks payment
// bookkeeping only and has no effect on availability.
func (r *Reservation) PrepaymentAmount() float64 {
	return r.TotalPrice * r.PrepaymentPercent / 100
}

// Repository is implemented by the persistence collaborator. MarkFulfilled is
// a batch write: either every listed reservation is flagged or none is.
type Repository interface {
	ListByUnit(ctx context.Context, unitID string) ([]*Reservation, error)
	ByID(ctx context.Context, id string) (*Reservation, error)
	Insert(ctx context.Context, r *Reservation) error
	Update(ctx context.Context, r *Reservation) error
	Delete(ctx context.Context, id string) error
	MarkFulfilled(ctx context.Context, ids []string) error
}
