package service

import (
	"context"

	"cityDesk/internal/domain"

	"github.com/google/uuid"
)

func (s *Service) ListForUser(ctx context.Context, userID uuid.UUID) ([]domain.Issue, error) {
	return s.IssueService.ListForUser(ctx, userID)
}

func (s *Service) StatsForUser(ctx context.Context, userID uuid.UUID) (domain.GeographicStats, error) {
	return s.IssueService.StatsForUser(ctx, userID)
}

func (s *Service) Nearby(ctx context.Context, req domain.NearbyRequest) ([]domain.Issue, error) {
	return s.IssueService.Nearby(ctx, req)
}

func (s *Service) CreateIssue(ctx context.Context, req domain.CreateIssueRequest) (*domain.Issue, error) {
	return s.IssueService.Create(ctx, req)
}

func (s *Service) UpdateIssueStatus(ctx context.Context, id uuid.UUID, req domain.UpdateIssueStatusRequest) error {
	return s.IssueService.UpdateStatus(ctx, id, req)
}

func (s *Service) SLA(ctx context.Context, id uuid.UUID) (domain.SLAEvaluation, error) {
	return s.IssueService.SLA(ctx, id)
}
