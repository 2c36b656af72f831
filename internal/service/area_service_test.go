package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"

	"cityDesk/internal/domain"
	"cityDesk/internal/service"
	"cityDesk/pkg/e"

	mock_service "cityDesk/internal/service/mocks"
)

func newAreaService(t *testing.T) (*service.AreaManager, *mock_service.MockAreaRepository, *mock_service.MockUserRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	areas := mock_service.NewMockAreaRepository(ctrl)
	users := mock_service.NewMockUserRepository(ctrl)
	return service.NewAreaService(areas, users, discardLogger()), areas, users
}

func TestAreaService_AssignAreas_OK(t *testing.T) {
	t.Parallel()

	svc, _, users := newAreaService(t)

	userID := uuid.New()
	areas := []domain.GeographicArea{
		{Name: "Downtown", Center: domain.LocationPoint{Latitude: 40.7, Longitude: -74}, Radius: 3},
	}
	users.EXPECT().UpdateGeographicAreas(gomock.Any(), userID, areas).Return(nil).Times(1)

	if err := svc.AssignAreas(context.Background(), userID, areas); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
}

func TestAreaService_AssignAreas_EmptyClearsAssignment(t *testing.T) {
	t.Parallel()

	svc, _, users := newAreaService(t)

	userID := uuid.New()
	users.EXPECT().UpdateGeographicAreas(gomock.Any(), userID, gomock.Len(0)).Return(nil).Times(1)

	if err := svc.AssignAreas(context.Background(), userID, nil); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
}

func TestAreaService_AssignAreas_RejectsInvalid(t *testing.T) {
	t.Parallel()

	svc, _, users := newAreaService(t)
	users.EXPECT().UpdateGeographicAreas(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	areas := []domain.GeographicArea{
		{Name: "ok", Center: domain.LocationPoint{Latitude: 1, Longitude: 1}, Radius: 1},
		{Name: "", Center: domain.LocationPoint{Latitude: 95, Longitude: 1}, Radius: 0},
	}

	err := svc.AssignAreas(context.Background(), uuid.New(), areas)
	if !errors.Is(err, e.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}

	var verr *service.AreaValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *AreaValidationError, got %T", err)
	}
	if len(verr.Errors) != 3 {
		t.Fatalf("expected 3 problems, got %v", verr.Errors)
	}
	for _, msg := range verr.Errors {
		if !strings.HasPrefix(msg, "areas[1]") {
			t.Fatalf("problem not attributed to areas[1]: %q", msg)
		}
	}
}

func TestAreaService_AssignAreas_RepoError(t *testing.T) {
	t.Parallel()

	svc, _, users := newAreaService(t)
	users.EXPECT().UpdateGeographicAreas(gomock.Any(), gomock.Any(), gomock.Any()).Return(e.ErrNotFound)

	err := svc.AssignAreas(context.Background(), uuid.New(), []domain.GeographicArea{
		{Name: "a", Radius: 1},
	})
	if !errors.Is(err, e.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestAreaService_Validate(t *testing.T) {
	t.Parallel()

	svc, _, _ := newAreaService(t)

	res := svc.Validate(domain.GeographicArea{
		Name:       "zone",
		Radius:     1,
		Boundaries: []domain.LocationPoint{{Latitude: 0, Longitude: 0}},
	})
	if res.IsValid {
		t.Fatalf("expected invalid result")
	}
	if len(res.Errors) != 1 || res.Errors[0] != "Polygon boundaries must have at least 3 points" {
		t.Fatalf("unexpected errors: %v", res.Errors)
	}
}

func TestAreaService_Closest(t *testing.T) {
	t.Parallel()

	svc, areas, _ := newAreaService(t)

	catalog := []domain.Area{
		{ID: uuid.New(), Name: "North", Center: domain.LocationPoint{Latitude: 10, Longitude: 0}},
		{ID: uuid.New(), Name: "South", Center: domain.LocationPoint{Latitude: -10, Longitude: 0}},
	}
	areas.EXPECT().List(gomock.Any()).Return(catalog, nil).Times(1)

	got, err := svc.Closest(context.Background(), domain.LocationPoint{Latitude: -3, Longitude: 1})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got.Name != "South" {
		t.Fatalf("expected South, got %q", got.Name)
	}
}

func TestAreaService_Closest_Errors(t *testing.T) {
	t.Parallel()

	t.Run("invalid coordinates", func(t *testing.T) {
		t.Parallel()

		svc, areas, _ := newAreaService(t)
		areas.EXPECT().List(gomock.Any()).Times(0)

		_, err := svc.Closest(context.Background(), domain.LocationPoint{Latitude: 0, Longitude: 181})
		if !errors.Is(err, e.ErrInvalidCoordinates) {
			t.Fatalf("expected ErrInvalidCoordinates, got %v", err)
		}
	})

	t.Run("empty catalog", func(t *testing.T) {
		t.Parallel()

		svc, areas, _ := newAreaService(t)
		areas.EXPECT().List(gomock.Any()).Return([]domain.Area{}, nil)

		_, err := svc.Closest(context.Background(), domain.LocationPoint{})
		if !errors.Is(err, e.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("repository error", func(t *testing.T) {
		t.Parallel()

		svc, areas, _ := newAreaService(t)
		wantErr := errors.New("boom")
		areas.EXPECT().List(gomock.Any()).Return(nil, wantErr)

		_, err := svc.Closest(context.Background(), domain.LocationPoint{})
		if !errors.Is(err, wantErr) {
			t.Fatalf("expected %v, got %v", wantErr, err)
		}
	})
}
