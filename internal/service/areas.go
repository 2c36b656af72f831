package service

import (
	"context"

	"cityDesk/internal/domain"

	"github.com/google/uuid"
)

func (s *Service) ListAreas(ctx context.Context) ([]domain.Area, error) {
	return s.AreaService.List(ctx)
}

func (s *Service) ValidateArea(area domain.GeographicArea) domain.ValidationResult {
	return s.AreaService.Validate(area)
}

func (s *Service) AssignAreas(ctx context.Context, userID uuid.UUID, areas []domain.GeographicArea) error {
	return s.AreaService.AssignAreas(ctx, userID, areas)
}

func (s *Service) ClosestArea(ctx context.Context, point domain.LocationPoint) (*domain.Area, error) {
	return s.AreaService.Closest(ctx, point)
}
