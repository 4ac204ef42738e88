package dto

import (
	"rentdesk/internal/domain/calendar"
)

type ReservationSummary struct {
	ReservationID string `json:"reservation_id"`
	GuestLabel    string `json:"guest_label"`
	Type          string `json:"type"`
	IsFirstDay    bool   `json:"is_first_day"`
	IsLastDay     bool   `json:"is_last_day"`
}

type Day struct {
	Date        string              `json:"date"`
	Status      string              `json:"status"`
	Price       *float64            `json:"price,omitempty"`
	Reservation *ReservationSummary `json:"reservation,omitempty"`
}

type Warning struct {
	Kind   string `json:"kind"`
	ID     string `json:"id"`
	Reason string `json:"reason"`
}

// Calendar is the day-keyed view the rendering collaborator consumes. Keys
// are normalized YYYYMMDD day strings; the UI performs no interval math.
type Calendar struct {
	UnitID   string         `json:"unit_id"`
	Loading  bool           `json:"loading"`
	Days     map[string]Day `json:"days"`
	Warnings []Warning      `json:"warnings,omitempty"`
}

func MapCalendar(unitID string, ix *calendar.Index) Calendar {
	out := Calendar{UnitID: unitID, Loading: ix.Loading(), Days: make(map[string]Day)}
	for key, entry := range ix.Entries() {
		day := Day{
			Date:   entry.Date.Format("2006-01-02"),
			Status: string(entry.Status),
			Price:  entry.Price,
		}
		if entry.Reservation != nil {
			day.Reservation = &ReservationSummary{
				ReservationID: entry.Reservation.ReservationID,
				GuestLabel:    entry.Reservation.GuestLabel,
				Type:          string(entry.Reservation.Type),
				IsFirstDay:    entry.Reservation.IsFirstDay,
				IsLastDay:     entry.Reservation.IsLastDay,
			}
		}
		out.Days[key] = day
	}
	for _, w := range ix.Warnings {
		out.Warnings = append(out.Warnings, Warning{Kind: string(w.Kind), ID: w.ID, Reason: w.Reason.Error()})
	}
	return out
}
