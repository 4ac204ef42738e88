package dto

import "rentdesk/internal/domain/unit"

type Unit struct {
	ID         string `json:"id"`
	PropertyID string `json:"property_id"`
	Name       string `json:"name"`
	Capacity   int    `json:"capacity"`
}

type SaveUnit struct {
	PropertyID string `json:"property_id"`
	Name       string `json:"name" binding:"required"`
	Capacity   int    `json:"capacity" binding:"required,min=1"`
}

func MapUnit(u *unit.Unit) Unit {
	return Unit{ID: u.ID, PropertyID: u.PropertyID, Name: u.Name, Capacity: u.Capacity}
}

func MapUnits(items []*unit.Unit) []Unit {
	out := make([]Unit, 0, len(items))
	for _, u := range items {
		out = append(out, MapUnit(u))
	}
	return out
}
