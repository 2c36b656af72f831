package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"cityDesk/internal/domain"
	"cityDesk/internal/geo"
	"cityDesk/pkg/e"

	"github.com/google/uuid"
)

// AreaValidationError carries every problem found in a batch of assigned
// areas. It unwraps to e.ErrInvalidInput.
type AreaValidationError struct {
	Errors []string
}

func (v *AreaValidationError) Error() string {
	return "invalid geographic areas: " + strings.Join(v.Errors, "; ")
}

func (v *AreaValidationError) Unwrap() error { return e.ErrInvalidInput }

type AreaManager struct {
	areas  AreaRepository
	users  UserRepository
	logger *slog.Logger
}

func NewAreaService(areas AreaRepository, users UserRepository, logger *slog.Logger) *AreaManager {
	return &AreaManager{areas: areas, users: users, logger: logger}
}

func (s *AreaManager) List(ctx context.Context) ([]domain.Area, error) {
	return s.areas.List(ctx)
}

func (s *AreaManager) Validate(area domain.GeographicArea) domain.ValidationResult {
	return geo.ValidateGeographicArea(area)
}

func (s *AreaManager) AssignAreas(ctx context.Context, userID uuid.UUID, areas []domain.GeographicArea) error {
	var problems []string
	for i, area := range areas {
		res := geo.ValidateGeographicArea(area)
		for _, msg := range res.Errors {
			problems = append(problems, fmt.Sprintf("areas[%d] %q: %s", i, area.Name, msg))
		}
	}
	if len(problems) > 0 {
		s.logger.Warn("rejecting area assignment",
			slog.String("user_id", userID.String()),
			slog.Int("problems", len(problems)),
		)
		return &AreaValidationError{Errors: problems}
	}

	if err := s.users.UpdateGeographicAreas(ctx, userID, areas); err != nil {
		return err
	}

	s.logger.Info("geographic areas assigned",
		slog.String("user_id", userID.String()),
		slog.Int("areas", len(areas)),
	)
	return nil
}

func (s *AreaManager) Closest(ctx context.Context, point domain.LocationPoint) (*domain.Area, error) {
	const op = "service.Area.Closest"

	if !(point.Latitude >= -90 && point.Latitude <= 90 && point.Longitude >= -180 && point.Longitude <= 180) {
		return nil, fmt.Errorf("%s: %w", op, e.ErrInvalidCoordinates)
	}

	areas, err := s.areas.List(ctx)
	if err != nil {
		return nil, err
	}

	closest := geo.GetClosestArea(point, areas)
	if closest == nil {
		return nil, fmt.Errorf("%s: empty area catalog: %w", op, e.ErrNotFound)
	}
	return closest, nil
}
