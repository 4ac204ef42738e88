package memory

import (
	"context"
	"sort"
	"sync"

	domainpricing "rentdesk/internal/domain/pricing"
	domainreservation "rentdesk/internal/domain/reservation"
	domainunit "rentdesk/internal/domain/unit"
)

// ReservationRepository is an in-memory implementation for dev mode and tests.
type ReservationRepository struct {
	mu    sync.RWMutex
	items map[string]*domainreservation.Reservation
}

func NewReservationRepository() *ReservationRepository {
	return &ReservationRepository{items: make(map[string]*domainreservation.Reservation)}
}

func (r *ReservationRepository) ListByUnit(ctx context.Context, unitID string) ([]*domainreservation.Reservation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*domainreservation.Reservation
	for _, res := range r.items {
		if res.UnitID == unitID {
			copied := *res
			out = append(out, &copied)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *ReservationRepository) ByID(ctx context.Context, id string) (*domainreservation.Reservation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	res, ok := r.items[id]
	if !ok {
		return nil, domainreservation.ErrNotFound
	}
	copied := *res
	return &copied, nil
}

func (r *ReservationRepository) Insert(ctx context.Context, res *domainreservation.Reservation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *res
	r.items[res.ID] = &copied
	return nil
}

func (r *ReservationRepository) Update(ctx context.Context, res *domainreservation.Reservation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[res.ID]; !ok {
		return domainreservation.ErrNotFound
	}
	copied := *res
	r.items[res.ID] = &copied
	return nil
}

func (r *ReservationRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return domainreservation.ErrNotFound
	}
	delete(r.items, id)
	return nil
}

// MarkFulfilled applies the batch atomically: either every id resolves or
// nothing is flipped.
func (r *ReservationRepository) MarkFulfilled(ctx context.Context, ids []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	batch := make([]*domainreservation.Reservation, 0, len(ids))
	for _, id := range ids {
		res, ok := r.items[id]
		if !ok {
			return domainreservation.ErrNotFound
		}
		batch = append(batch, res)
	}
	for _, res := range batch {
		res.Fulfilled = true
	}
	return nil
}

// PriceRepository keeps price assignments in memory, ordered by creation time
// on listing so the most recent assignment wins day overlaps.
type PriceRepository struct {
	mu    sync.RWMutex
	items map[string]*domainpricing.Assignment
}

func NewPriceRepository() *PriceRepository {
	return &PriceRepository{items: make(map[string]*domainpricing.Assignment)}
}

func (r *PriceRepository) ListByUnit(ctx context.Context, unitID string) ([]*domainpricing.Assignment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*domainpricing.Assignment
	for _, a := range r.items {
		if a.UnitID == unitID {
			copied := *a
			out = append(out, &copied)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *PriceRepository) Insert(ctx context.Context, a *domainpricing.Assignment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *a
	r.items[a.ID] = &copied
	return nil
}

func (r *PriceRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return domainpricing.ErrNotFound
	}
	delete(r.items, id)
	return nil
}

// UnitRepository is an in-memory unit catalog.
type UnitRepository struct {
	mu    sync.RWMutex
	items map[string]*domainunit.Unit
}

func NewUnitRepository() *UnitRepository {
	return &UnitRepository{items: make(map[string]*domainunit.Unit)}
}

func (r *UnitRepository) ByID(ctx context.Context, id string) (*domainunit.Unit, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.items[id]
	if !ok {
		return nil, domainunit.ErrNotFound
	}
	copied := *u
	return &copied, nil
}

func (r *UnitRepository) List(ctx context.Context) ([]*domainunit.Unit, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*domainunit.Unit, 0, len(r.items))
	for _, u := range r.items {
		copied := *u
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *UnitRepository) Save(ctx context.Context, u *domainunit.Unit) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *u
	r.items[u.ID] = &copied
	return nil
}
