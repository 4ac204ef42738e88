package dto

import (
	"time"

	"rentdesk/internal/domain/reservation"
)

// CreateReservation mirrors the remote insert procedure's shape: individual
// scalar fields plus a wire-format interval string, no nested objects.
type CreateReservation struct {
	GuestFirstName    string  `json:"guest_first_name" binding:"required"`
	GuestLastName     string  `json:"guest_last_name"`
	GuestCount        int     `json:"guest_count" binding:"required,min=1"`
	GuestCountry      string  `json:"guest_country"`
	DateRange         string  `json:"date_range" binding:"required"`
	TotalPrice        float64 `json:"total_price"`
	Type              string  `json:"type"`
	PrepaymentPercent float64 `json:"prepayment_percent"`
	PrepaymentPaid    bool    `json:"prepayment_paid"`
	Note              string  `json:"note"`
}

type UpdateReservation struct {
	GuestFirstName    string  `json:"guest_first_name" binding:"required"`
	GuestLastName     string  `json:"guest_last_name"`
	GuestCount        int     `json:"guest_count" binding:"required,min=1"`
	GuestCountry      string  `json:"guest_country"`
	DateRange         string  `json:"date_range" binding:"required"`
	TotalPrice        float64 `json:"total_price"`
	PrepaymentPercent float64 `json:"prepayment_percent"`
	PrepaymentPaid    bool    `json:"prepayment_paid"`
	Note              string  `json:"note"`
}

type Reservation struct {
	ID                string    `json:"id"`
	UnitID            string    `json:"unit_id"`
	GuestFirstName    string    `json:"guest_first_name"`
	GuestLastName     string    `json:"guest_last_name"`
	GuestCount        int       `json:"guest_count"`
	GuestCountry      string    `json:"guest_country"`
	DateRange         string    `json:"date_range"`
	Nights            int       `json:"nights"`
	TotalPrice        float64   `json:"total_price"`
	Type              string    `json:"type"`
	Fulfilled         bool      `json:"fulfilled"`
	PrepaymentPercent float64   `json:"prepayment_percent"`
	PrepaymentPaid    bool      `json:"prepayment_paid"`
	Note              string    `json:"note"`
	CreatedAt         time.Time `json:"created_at"`
}

func MapReservation(r *reservation.Reservation) Reservation {
	return Reservation{
		ID:                r.ID,
		UnitID:            r.UnitID,
		GuestFirstName:    r.Guest.FirstName,
		GuestLastName:     r.Guest.LastName,
		GuestCount:        r.Guest.GuestCount,
		GuestCountry:      r.Guest.Country,
		DateRange:         r.Range.WireLiteral(),
		Nights:            r.Range.Nights(),
		TotalPrice:        r.TotalPrice,
		Type:              string(r.Type),
		Fulfilled:         r.Fulfilled,
		PrepaymentPercent: r.PrepaymentPercent,
		PrepaymentPaid:    r.PrepaymentPaid,
		Note:              r.Note,
		CreatedAt:         r.CreatedAt,
	}
}

func MapReservations(items []*reservation.Reservation) []Reservation {
	out := make([]Reservation, 0, len(items))
	for _, r := range items {
		out = append(out, MapReservation(r))
	}
	return out
}
