package calendar

import (
	"time"

	"rentdesk/internal/domain/daterange"
	"rentdesk/internal/domain/pricing"
	"rentdesk/internal/domain/reservation"
)

type Status string

const (
	StatusUnset     Status = "UNSET"
	StatusAvailable Status = "AVAILABLE"
	StatusSold      Status = "SOLD"
	StatusLoading   Status = "LOADING"
)

// ReservationSummary carries what a calendar cell needs to render a booked
// day. The first/last flags are relative to the owning reservation's own
// range and drive edge styling only.
type ReservationSummary struct {
	ReservationID string
	GuestLabel    string
	Type          reservation.Type
	IsFirstDay    bool
	IsLastDay     bool
}

type DayStatus struct {
	Date        time.Time
	Status      Status
	Price       *float64
	Reservation *ReservationSummary
}

type RecordKind string

const (
	RecordReservation RecordKind = "reservation"
	RecordPrice       RecordKind = "price"
)

// Warning reports a record that was skipped during the build. Skipping keeps
// one malformed row from blanking the whole calendar.
type Warning struct {
	Kind   RecordKind
	ID     string
	Reason error
}

// Index is the day-keyed availability/pricing view for one unit. It is fully
// recomputed on every build and never patched in place.
type Index struct {
	loading  bool
	days     map[string]DayStatus
	Warnings []Warning
}

// Build reduces a unit's reservations and price assignments to the per-day
// index. When loading is set the underlying data is ignored and every lookup
// answers LOADING until a fresh non-loading build replaces the index.
//
// A booked day wins over a priced day; the price is still attached to the
// SOLD entry for display. When two price assignments cover the same day the
// later one in input order wins, so callers order inputs most-recent-last if
// deterministic overlap resolution matters.
func Build(reservations []*reservation.Reservation, prices []*pricing.Assignment, loading bool) *Index {
	ix := &Index{days: make(map[string]DayStatus)}
	if loading {
		ix.loading = true
		return ix
	}

	for _, r := range reservations {
		if err := r.Range.Validate(); err != nil {
			if r.RangeErr != nil {
				err = r.RangeErr
			}
			ix.Warnings = append(ix.Warnings, Warning{Kind: RecordReservation, ID: r.ID, Reason: err})
			continue
		}
		lastNight := r.Range.End.AddDate(0, 0, -1)
		for day := range r.Range.Days() {
			ix.days[daterange.DayKey(day)] = DayStatus{
				Date:   day,
				Status: StatusSold,
				Reservation: &ReservationSummary{
					ReservationID: r.ID,
					GuestLabel:    r.Guest.Label(),
					Type:          r.Type,
					IsFirstDay:    day.Equal(r.Range.Start),
					IsLastDay:     day.Equal(lastNight),
				},
			}
		}
	}

	for _, a := range prices {
		if err := a.Range.Validate(); err != nil {
			if a.RangeErr != nil {
				err = a.RangeErr
			}
			ix.Warnings = append(ix.Warnings, Warning{Kind: RecordPrice, ID: a.ID, Reason: err})
			continue
		}
		price := a.Price
		for day := range a.Range.Days() {
			key := daterange.DayKey(day)
			entry, ok := ix.days[key]
			if ok && entry.Reservation != nil {
				entry.Price = &price
				ix.days[key] = entry
				continue
			}
			ix.days[key] = DayStatus{Date: day, Status: StatusAvailable, Price: &price}
		}
	}
	return ix
}

// Loading reports whether the index was built while the source fetch was
// still in flight.
func (ix *Index) Loading() bool {
	return ix.loading
}

// Status answers the derived state for a YYYYMMDD key. Unknown days are
// UNSET; every day of a loading index is LOADING.
func (ix *Index) Status(key string) DayStatus {
	if ix.loading {
		return DayStatus{Status: StatusLoading}
	}
	if entry, ok := ix.days[key]; ok {
		return entry
	}
	return DayStatus{Status: StatusUnset}
}

// Day is Status keyed by a date value instead of a preformatted key.
func (ix *Index) Day(t time.Time) DayStatus {
	return ix.Status(daterange.DayKey(t))
}

// Entries exposes the populated days for serialization. Callers must not
// mutate the returned map.
func (ix *Index) Entries() map[string]DayStatus {
	return ix.days
}
