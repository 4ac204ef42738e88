package reservation

import (
	"time"

	"rentdesk/internal/domain/daterange"
)

// SweepResult partitions a unit's reservations into the ids whose departure
// day has fully passed without being marked fulfilled, and the rest.
type SweepResult struct {
	ToMarkFulfilled []string
	Unchanged       []*Reservation
}

// Sweep determines the minimal fulfillment batch for today. It is pure: the
// caller owns the persistence write and flips local flags only after that
// write succeeds. Running it again after the batch applied yields an empty
// ToMarkFulfilled list.
func Sweep(reservations []*Reservation, today time.Time) SweepResult {
	day := daterange.Normalize(today)
	result := SweepResult{}
	for _, r := range reservations {
		if !r.Fulfilled && !r.Range.End.After(day) {
			result.ToMarkFulfilled = append(result.ToMarkFulfilled, r.ID)
			continue
		}
		result.Unchanged = append(result.Unchanged, r)
	}
	return result
}

// ApplySweep flips the fulfilled flag on the swept reservations in place.
// Call it only once the batch write has been acknowledged by the store.
func ApplySweep(reservations []*Reservation, ids []string) {
	if len(ids) == 0 {
		return
	}
	swept := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		swept[id] = struct{}{}
	}
	for _, r := range reservations {
		if _, ok := swept[r.ID]; ok {
			r.Fulfilled = true
		}
	}
}
