package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"cityDesk/internal/domain"
	"cityDesk/pkg/e"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const issueColumns = `
	id,
	title,
	description,
	ST_Y(geo_point::geometry) AS lat,
	ST_X(geo_point::geometry) AS lng,
	address,
	landmark,
	category,
	priority,
	status,
	area,
	reported_by,
	assigned_to,
	created_at,
	updated_at,
	resolved_at,
	sla_deadline,
	is_escalated,
	escalated_at
`

type IssueRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewIssueRepo(pool *pgxpool.Pool, logger *slog.Logger) *IssueRepo {
	return &IssueRepo{pool: pool, logger: logger}
}

func (p *IssueRepo) Create(ctx context.Context, issue *domain.Issue) error {
	const op = "postgres.Issue.Create"

	const query = `
		INSERT INTO issues (
			id, title, description, geo_point, address, landmark,
			category, priority, status, area, reported_by, assigned_to,
			created_at, updated_at, resolved_at, sla_deadline, is_escalated, escalated_at
		)
		VALUES (
			$1, $2, $3, ST_SetSRID(ST_MakePoint($4, $5), 4326), $6, $7,
			$8, $9, $10, $11, $12, $13,
			$14, $15, $16, $17, $18, $19
		)
	`

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

	_, err := p.pool.Exec(ctx, query,
		issue.ID,
		issue.Title,
		issue.Description,
		issue.Location.Longitude,
		issue.Location.Latitude,
		issue.Location.Address,
		issue.Location.Landmark,
		issue.Category,
		issue.Priority,
		issue.Status,
		issue.Area,
		issue.ReportedBy,
		issue.AssignedTo,
		issue.CreatedAt,
		issue.UpdatedAt,
		issue.ResolvedAt,
		issue.SLADeadline,
		issue.IsEscalated,
		issue.EscalatedAt,
	)
	if err != nil {
		p.logger.Error("db exec failed",
			slog.String("op", op),
			slog.Any("error", err),
		)
		return e.WrapError(ctx, op, err)
	}

	return nil
}

func (p *IssueRepo) Get(ctx context.Context, id uuid.UUID) (*domain.Issue, error) {
	const op = "postgres.Issue.Get"

	query := `SELECT ` + issueColumns + ` FROM issues WHERE id = $1`

	issue, err := scanIssue(p.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return nil, e.WrapError(ctx, op, err)
	}

	return &issue, nil
}

func (p *IssueRepo) List(ctx context.Context) ([]domain.Issue, error) {
	const op = "postgres.Issue.List"

	return p.query(ctx, op, `SELECT `+issueColumns+` FROM issues ORDER BY created_at DESC`)
}

func (p *IssueRepo) ListOpen(ctx context.Context) ([]domain.Issue, error) {
	const op = "postgres.Issue.ListOpen"

	return p.query(ctx, op, `
		SELECT `+issueColumns+`
		FROM issues
		WHERE status IN ($1, $2, $3)
		ORDER BY created_at
	`, domain.StatusOpen, domain.StatusAssigned, domain.StatusInProgress)
}

func (p *IssueRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.IssueStatus, resolvedAt *time.Time) error {
	const op = "postgres.Issue.UpdateStatus"

	const query = `
		UPDATE issues
		SET status      = $2,
			resolved_at = $3,
			updated_at  = $4
		WHERE id = $1
	`

	cmd, err := p.pool.Exec(ctx, query, id, status, resolvedAt, time.Now().UTC())
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return e.WrapError(ctx, op, err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}

	return nil
}

// MarkEscalated flips the flag at most once. A second call reports
// e.ErrConflict so concurrent sweeps enqueue a single event.
func (p *IssueRepo) MarkEscalated(ctx context.Context, id uuid.UUID, at time.Time) error {
	const op = "postgres.Issue.MarkEscalated"

	const query = `
		UPDATE issues
		SET is_escalated = true,
			escalated_at = $2,
			updated_at   = $2
		WHERE id = $1 AND is_escalated = false
	`

	cmd, err := p.pool.Exec(ctx, query, id, at)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return e.WrapError(ctx, op, err)
	}
	if cmd.RowsAffected() > 0 {
		return nil
	}

	var exists bool
	if err := p.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM issues WHERE id = $1)`, id).Scan(&exists); err != nil {
		return e.WrapError(ctx, op, err)
	}
	if !exists {
		return fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}
	return fmt.Errorf("%s: already escalated: %w", op, e.ErrConflict)
}

// UnmarkEscalated clears the flag so the next sweep can escalate again.
func (p *IssueRepo) UnmarkEscalated(ctx context.Context, id uuid.UUID) error {
	const op = "postgres.Issue.UnmarkEscalated"

	const query = `
		UPDATE issues
		SET is_escalated = false,
			escalated_at = NULL,
			updated_at   = $2
		WHERE id = $1
	`

	cmd, err := p.pool.Exec(ctx, query, id, time.Now().UTC())
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return e.WrapError(ctx, op, err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}
	return nil
}

func (p *IssueRepo) query(ctx context.Context, op, query string, args ...any) ([]domain.Issue, error) {
	rows, err := p.pool.Query(ctx, query, args...)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	issues := make([]domain.Issue, 0, 16)
	for rows.Next() {
		issue, err := scanIssue(rows)
		if err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		issues = append(issues, issue)
	}
	if err := rows.Err(); err != nil {
		p.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	return issues, nil
}

func scanIssue(row pgx.Row) (domain.Issue, error) {
	var issue domain.Issue
	err := row.Scan(
		&issue.ID,
		&issue.Title,
		&issue.Description,
		&issue.Location.Latitude,
		&issue.Location.Longitude,
		&issue.Location.Address,
		&issue.Location.Landmark,
		&issue.Category,
		&issue.Priority,
		&issue.Status,
		&issue.Area,
		&issue.ReportedBy,
		&issue.AssignedTo,
		&issue.CreatedAt,
		&issue.UpdatedAt,
		&issue.ResolvedAt,
		&issue.SLADeadline,
		&issue.IsEscalated,
		&issue.EscalatedAt,
	)
	return issue, err
}
