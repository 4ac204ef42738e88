package services

import (
	"context"

	"github.com/google/uuid"

	"rentdesk/internal/app/dto"
	domainunit "rentdesk/internal/domain/unit"
)

type UnitService struct {
	Units domainunit.Repository
}

func (s *UnitService) Create(ctx context.Context, in dto.SaveUnit) (dto.Unit, error) {
	u, err := domainunit.New(uuid.NewString(), in.PropertyID, in.Name, in.Capacity)
	if err != nil {
		return dto.Unit{}, err
	}
	if err := s.Units.Save(ctx, u); err != nil {
		return dto.Unit{}, err
	}
	return dto.MapUnit(u), nil
}

func (s *UnitService) Get(ctx context.Context, id string) (dto.Unit, error) {
	u, err := s.Units.ByID(ctx, id)
	if err != nil {
		return dto.Unit{}, err
	}
	return dto.MapUnit(u), nil
}

func (s *UnitService) List(ctx context.Context) ([]dto.Unit, error) {
	items, err := s.Units.List(ctx)
	if err != nil {
		return nil, err
	}
	return dto.MapUnits(items), nil
}
