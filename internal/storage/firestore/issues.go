package firestore

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	gcfirestore "cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"cityDesk/internal/domain"
	"cityDesk/pkg/e"
)

type IssueRepo struct {
	client *gcfirestore.Client
	logger *slog.Logger
}

func NewIssueRepo(client *gcfirestore.Client, logger *slog.Logger) *IssueRepo {
	return &IssueRepo{client: client, logger: logger}
}

func (r *IssueRepo) col() *gcfirestore.CollectionRef {
	return r.client.Collection(issuesCollection)
}

func (r *IssueRepo) Create(ctx context.Context, issue *domain.Issue) error {
	const op = "firestore.Issue.Create"

	if issue.ID == uuid.Nil {
		issue.ID = uuid.New()
	}
	if issue.CreatedAt.IsZero() {
		issue.CreatedAt = time.Now().UTC()
	}
	if issue.UpdatedAt.IsZero() {
		issue.UpdatedAt = issue.CreatedAt
	}
	if issue.Status == "" {
		issue.Status = domain.StatusOpen
	}

	// Create fails with AlreadyExists instead of overwriting.
	if _, err := r.col().Doc(issue.ID.String()).Create(ctx, toIssueDoc(*issue)); err != nil {
		r.logger.Error("firestore create failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}
	return nil
}

func (r *IssueRepo) Get(ctx context.Context, id uuid.UUID) (*domain.Issue, error) {
	const op = "firestore.Issue.Get"

	snap, err := r.col().Doc(id.String()).Get(ctx)
	if err != nil {
		if status.Code(err) != codes.NotFound {
			r.logger.Error("firestore get failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		}
		return nil, e.WrapError(ctx, op, err)
	}

	var doc issueDoc
	if err := snap.DataTo(&doc); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	issue, err := doc.toDomain()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &issue, nil
}

func (r *IssueRepo) List(ctx context.Context) ([]domain.Issue, error) {
	const op = "firestore.Issue.List"

	return r.collect(ctx, op, r.col().OrderBy("created_at", gcfirestore.Desc).Documents(ctx))
}

func (r *IssueRepo) ListOpen(ctx context.Context) ([]domain.Issue, error) {
	const op = "firestore.Issue.ListOpen"

	open := []string{string(domain.StatusOpen), string(domain.StatusAssigned), string(domain.StatusInProgress)}
	return r.collect(ctx, op, r.col().Where("status", "in", open).Documents(ctx))
}

func (r *IssueRepo) UpdateStatus(ctx context.Context, id uuid.UUID, st domain.IssueStatus, resolvedAt *time.Time) error {
	const op = "firestore.Issue.UpdateStatus"

	var resolved any
	if resolvedAt != nil {
		resolved = *resolvedAt
	}

	_, err := r.col().Doc(id.String()).Update(ctx, []gcfirestore.Update{
		{Path: "status", Value: string(st)},
		{Path: "resolved_at", Value: resolved},
		{Path: "updated_at", Value: time.Now().UTC()},
	})
	if err != nil {
		r.logger.Error("firestore update failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return e.WrapError(ctx, op, err)
	}
	return nil
}

var errAlreadyEscalated = errors.New("already escalated")

// MarkEscalated runs as a transaction so only one caller flips the flag.
func (r *IssueRepo) MarkEscalated(ctx context.Context, id uuid.UUID, at time.Time) error {
	const op = "firestore.Issue.MarkEscalated"

	ref := r.col().Doc(id.String())
	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *gcfirestore.Transaction) error {
		snap, err := tx.Get(ref)
		if err != nil {
			return err
		}
		escalated, err := snap.DataAt("is_escalated")
		if err == nil {
			if b, ok := escalated.(bool); ok && b {
				return errAlreadyEscalated
			}
		}
		return tx.Update(ref, []gcfirestore.Update{
			{Path: "is_escalated", Value: true},
			{Path: "escalated_at", Value: at},
			{Path: "updated_at", Value: at},
		})
	})
	if errors.Is(err, errAlreadyEscalated) {
		return fmt.Errorf("%s: %w: %w", op, errAlreadyEscalated, e.ErrConflict)
	}
	if err != nil {
		return e.WrapError(ctx, op, err)
	}
	return nil
}

func (r *IssueRepo) UnmarkEscalated(ctx context.Context, id uuid.UUID) error {
	const op = "firestore.Issue.UnmarkEscalated"

	_, err := r.col().Doc(id.String()).Update(ctx, []gcfirestore.Update{
		{Path: "is_escalated", Value: false},
		{Path: "escalated_at", Value: gcfirestore.Delete},
		{Path: "updated_at", Value: time.Now().UTC()},
	})
	if err != nil {
		r.logger.Error("firestore update failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}
	return nil
}

func (r *IssueRepo) collect(ctx context.Context, op string, it *gcfirestore.DocumentIterator) ([]domain.Issue, error) {
	defer it.Stop()

	issues := make([]domain.Issue, 0, 16)
	for {
		snap, err := it.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			r.logger.Error("firestore iterate failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}

		var doc issueDoc
		if err := snap.DataTo(&doc); err != nil {
			r.logger.Warn("skipping malformed issue", slog.String("doc", snap.Ref.ID), slog.Any("error", err))
			continue
		}
		issue, err := doc.toDomain()
		if err != nil {
			r.logger.Warn("skipping malformed issue", slog.String("doc", snap.Ref.ID), slog.Any("error", err))
			continue
		}
		issues = append(issues, issue)
	}
	return issues, nil
}
