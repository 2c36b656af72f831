package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"cityDesk/internal/domain"
	"cityDesk/internal/geo"
	"cityDesk/internal/sla"
	"cityDesk/pkg/e"
	"cityDesk/pkg/validator"

	"github.com/google/uuid"
)

type issueService struct {
	issues   IssueRepository
	users    UserRepository
	areas    AreaRepository
	cache    IssueCacheService
	calc     *sla.Calculator
	logger   *slog.Logger
	cacheTTL time.Duration
	now      func() time.Time
}

// NewIssueService wires the dashboard use-cases. A nil clock means time.Now.
func NewIssueService(
	issues IssueRepository,
	users UserRepository,
	areas AreaRepository,
	cache IssueCacheService,
	calc *sla.Calculator,
	logger *slog.Logger,
	cacheTTL time.Duration,
	now func() time.Time,
) IssueService {
	if calc == nil {
		calc = sla.NewCalculator(nil)
	}
	if cacheTTL <= 0 {
		cacheTTL = 30 * time.Second
	}
	if now == nil {
		now = time.Now
	}
	return &issueService{
		issues:   issues,
		users:    users,
		areas:    areas,
		cache:    cache,
		calc:     calc,
		logger:   logger,
		cacheTTL: cacheTTL,
		now:      now,
	}
}

func (s *issueService) ListForUser(ctx context.Context, userID uuid.UUID) ([]domain.Issue, error) {
	user, err := s.users.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	issues, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	var (
		visible  []domain.Issue
		strategy string
	)
	switch {
	case len(user.GeographicAreas) > 0:
		strategy = "assigned_areas"
		visible = geo.FilterIssuesByUserAreas(issues, *user, nil)
	case user.Role == domain.RoleDepartmentHead:
		strategy = "proximity"
		visible = geo.FilterIssuesByProximity(issues, *user)
	default:
		strategy = "role"
		visible = geo.FilterIssuesByUserAreas(issues, *user, nil)
	}

	s.logger.Info("issues filtered for user",
		slog.String("user_id", userID.String()),
		slog.String("role", string(user.Role)),
		slog.String("strategy", strategy),
		slog.Int("total", len(issues)),
		slog.Int("visible", len(visible)),
	)
	return visible, nil
}

func (s *issueService) StatsForUser(ctx context.Context, userID uuid.UUID) (domain.GeographicStats, error) {
	user, err := s.users.Get(ctx, userID)
	if err != nil {
		return domain.GeographicStats{}, err
	}

	issues, err := s.snapshot(ctx)
	if err != nil {
		return domain.GeographicStats{}, err
	}

	return geo.GetGeographicStats(issues, *user, nil), nil
}

func (s *issueService) Nearby(ctx context.Context, req domain.NearbyRequest) ([]domain.Issue, error) {
	const op = "service.Issue.Nearby"

	if err := validator.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("%s: %w: %v", op, e.ErrInvalidInput, err)
	}

	issues, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	center := domain.LocationPoint{Latitude: req.Latitude, Longitude: req.Longitude}
	return geo.GetIssuesWithinRadius(issues, center, req.RadiusKM), nil
}

func (s *issueService) Create(ctx context.Context, req domain.CreateIssueRequest) (*domain.Issue, error) {
	const op = "service.Issue.Create"

	if err := validator.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("%s: %w: %v", op, e.ErrInvalidInput, err)
	}

	now := s.now().UTC()
	issue := domain.Issue{
		ID:          uuid.New(),
		Title:       req.Title,
		Description: req.Description,
		Location: domain.IssueLocation{
			LocationPoint: domain.LocationPoint{Latitude: req.Latitude, Longitude: req.Longitude},
			Address:       req.Address,
			Landmark:      req.Landmark,
		},
		Category:   req.Category,
		Priority:   req.Priority,
		Status:     domain.StatusOpen,
		Area:       req.Area,
		ReportedBy: req.ReportedBy,
		AssignedTo: req.AssignedTo,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if issue.AssignedTo != nil {
		issue.Status = domain.StatusAssigned
	}

	if issue.Area == "" {
		issue.Area = s.closestAreaName(ctx, issue.Location.LocationPoint)
	}

	if info, ok := s.calc.Calculate(issue.Category, issue.Priority, issue.CreatedAt); ok {
		deadline := info.Deadline
		issue.SLADeadline = &deadline
	} else {
		s.logger.Warn("no sla for issue",
			slog.String("category", string(issue.Category)),
			slog.String("priority", string(issue.Priority)),
		)
	}

	if err := s.issues.Create(ctx, &issue); err != nil {
		return nil, err
	}
	s.invalidate(ctx)

	s.logger.Info("issue created",
		slog.String("id", issue.ID.String()),
		slog.String("area", issue.Area),
		slog.String("category", string(issue.Category)),
		slog.String("priority", string(issue.Priority)),
	)
	return &issue, nil
}

func (s *issueService) UpdateStatus(ctx context.Context, id uuid.UUID, req domain.UpdateIssueStatusRequest) error {
	const op = "service.Issue.UpdateStatus"

	if err := validator.ValidateStruct(req); err != nil {
		return fmt.Errorf("%s: %w: %v", op, e.ErrInvalidInput, err)
	}

	issue, err := s.issues.Get(ctx, id)
	if err != nil {
		return err
	}

	var resolvedAt *time.Time
	if !req.Status.IsOpen() {
		if issue.ResolvedAt != nil {
			resolvedAt = issue.ResolvedAt
		} else {
			now := s.now().UTC()
			resolvedAt = &now
		}
	}

	if err := s.issues.UpdateStatus(ctx, id, req.Status, resolvedAt); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *issueService) SLA(ctx context.Context, id uuid.UUID) (domain.SLAEvaluation, error) {
	const op = "service.Issue.SLA"

	issue, err := s.issues.Get(ctx, id)
	if err != nil {
		return domain.SLAEvaluation{}, err
	}

	ev, ok := s.calc.Evaluate(*issue, s.now().UTC())
	if !ok {
		return domain.SLAEvaluation{}, fmt.Errorf("%s: no sla applies: %w", op, e.ErrNotFound)
	}
	return ev, nil
}

// snapshot serves the issue list from cache and repopulates it on a miss.
// Cache failures degrade to the repository.
func (s *issueService) snapshot(ctx context.Context) ([]domain.Issue, error) {
	cached, err := s.cache.GetAll(ctx)
	if err != nil {
		s.logger.Warn("cache.GetAll failed", slog.Any("error", err))
	} else if cached != nil {
		s.logger.Debug("cache hit", slog.Int("issues", len(cached)))
		return cached, nil
	}

	issues, err := s.issues.List(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.cache.SetAll(ctx, issues, s.cacheTTL); err != nil {
		s.logger.Warn("cache.SetAll failed", slog.Any("error", err))
	}
	return issues, nil
}

func (s *issueService) invalidate(ctx context.Context) {
	if err := s.cache.Invalidate(ctx); err != nil {
		s.logger.Warn("cache.Invalidate failed", slog.Any("error", err))
	}
}

func (s *issueService) closestAreaName(ctx context.Context, point domain.LocationPoint) string {
	areas, err := s.areas.List(ctx)
	if err != nil {
		s.logger.Warn("areas.List failed, issue left without area", slog.Any("error", err))
		return ""
	}
	if closest := geo.GetClosestArea(point, areas); closest != nil {
		return closest.Name
	}
	return ""
}
