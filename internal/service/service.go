package service

import (
	"context"
	"time"

	"cityDesk/internal/domain"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=mocks/mock.go
type IssueRepository interface {
	Create(ctx context.Context, issue *domain.Issue) error
	Get(ctx context.Context, id uuid.UUID) (*domain.Issue, error)
	List(ctx context.Context) ([]domain.Issue, error)
	ListOpen(ctx context.Context) ([]domain.Issue, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.IssueStatus, resolvedAt *time.Time) error
	MarkEscalated(ctx context.Context, id uuid.UUID, at time.Time) error
	UnmarkEscalated(ctx context.Context, id uuid.UUID) error
}

type UserRepository interface {
	Get(ctx context.Context, id uuid.UUID) (*domain.User, error)
	UpdateGeographicAreas(ctx context.Context, id uuid.UUID, areas []domain.GeographicArea) error
}

type AreaRepository interface {
	List(ctx context.Context) ([]domain.Area, error)
}

// IssueCacheService holds a short-lived snapshot of every issue. GetAll
// returns nil, nil on a miss.
type IssueCacheService interface {
	GetAll(ctx context.Context) ([]domain.Issue, error)
	SetAll(ctx context.Context, issues []domain.Issue, ttl time.Duration) error
	Invalidate(ctx context.Context) error
}

type EscalationQueue interface {
	Enqueue(ctx context.Context, event domain.EscalationEvent) error
}

// Dashboard use-cases
type IssueService interface {
	ListForUser(ctx context.Context, userID uuid.UUID) ([]domain.Issue, error)
	StatsForUser(ctx context.Context, userID uuid.UUID) (domain.GeographicStats, error)
	Nearby(ctx context.Context, req domain.NearbyRequest) ([]domain.Issue, error)
	Create(ctx context.Context, req domain.CreateIssueRequest) (*domain.Issue, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, req domain.UpdateIssueStatusRequest) error
	SLA(ctx context.Context, id uuid.UUID) (domain.SLAEvaluation, error)
}

// Coverage administration
type AreaService interface {
	List(ctx context.Context) ([]domain.Area, error)
	Validate(area domain.GeographicArea) domain.ValidationResult
	AssignAreas(ctx context.Context, userID uuid.UUID, areas []domain.GeographicArea) error
	Closest(ctx context.Context, point domain.LocationPoint) (*domain.Area, error)
}

type Service struct {
	IssueService IssueService
	AreaService  AreaService
}

func NewService(
	issueService IssueService,
	areaService AreaService,
) *Service {
	return &Service{
		IssueService: issueService,
		AreaService:  areaService,
	}
}
