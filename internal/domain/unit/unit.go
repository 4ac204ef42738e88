package unit

import (
	"context"
	"errors"
)

var (
	ErrNotFound        = errors.New("unit: not found")
	ErrInvalidCapacity = errors.New("unit: capacity must be positive")
	ErrNameRequired    = errors.New("unit: name required")
)

// Unit is one rentable accommodation inside a property.
type Unit struct {
	ID         string
	PropertyID string
	Name       string
	Capacity   int
}

func New(id, propertyID, name string, capacity int) (*Unit, error) {
	if name == "" {
		return nil, ErrNameRequired
	}
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}
	return &Unit{ID: id, PropertyID: propertyID, Name: name, Capacity: capacity}, nil
}

// Fits reports whether a party of guestCount can stay in the unit. The check
// runs at the reservation input boundary, not inside the calendar engine.
func (u *Unit) Fits(guestCount int) bool {
	return guestCount > 0 && guestCount <= u.Capacity
}

type Repository interface {
	ByID(ctx context.Context, id string) (*Unit, error)
	List(ctx context.Context) ([]*Unit, error)
	Save(ctx context.Context, u *Unit) error
}
