package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"cityDesk/internal/domain"
	"cityDesk/pkg/e"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AreaRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewAreaRepo(pool *pgxpool.Pool, logger *slog.Logger) *AreaRepo {
	return &AreaRepo{pool: pool, logger: logger}
}

func (p *AreaRepo) Create(ctx context.Context, area *domain.Area) error {
	const op = "postgres.Area.Create"

	const query = `
		INSERT INTO areas (id, name, type, boundaries, center, radius_km, population, priority, supervisor_id, sla_targets)
		VALUES ($1, $2, $3, $4, ST_SetSRID(ST_MakePoint($5, $6), 4326), $7, $8, $9, $10, $11)
	`

	if area.ID == uuid.Nil {
		area.ID = uuid.New()
	}
	boundaries := area.Boundaries
	if boundaries == nil {
		boundaries = []domain.LocationPoint{}
	}
	b, err := json.Marshal(boundaries)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	targets := area.SLATargets
	if targets == nil {
		targets = map[domain.Category]int{}
	}
	t, err := json.Marshal(targets)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if _, err := p.pool.Exec(ctx, query,
		area.ID,
		area.Name,
		area.Type,
		b,
		area.Center.Longitude,
		area.Center.Latitude,
		area.Radius,
		area.Population,
		area.Priority,
		area.SupervisorID,
		t,
	); err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}
	return nil
}

// List returns the catalog with live issue counters joined from issues by
// area name.
func (p *AreaRepo) List(ctx context.Context) ([]domain.Area, error) {
	const op = "postgres.Area.List"

	const query = `
		SELECT a.id,
			   a.name,
			   a.type,
			   a.boundaries,
			   ST_Y(a.center::geometry) AS lat,
			   ST_X(a.center::geometry) AS lng,
			   a.radius_km,
			   a.population,
			   a.priority,
			   a.supervisor_id,
			   a.sla_targets,
			   COUNT(i.id) FILTER (WHERE i.status IN ('open', 'assigned', 'in_progress')) AS active_issues,
			   COUNT(i.id) AS total_issues,
			   COALESCE(AVG(EXTRACT(EPOCH FROM (i.resolved_at - i.created_at)) / 3600)
			            FILTER (WHERE i.resolved_at IS NOT NULL), 0)::float8 AS avg_resolution_hours
		FROM areas a
		LEFT JOIN issues i ON i.area = a.name
		GROUP BY a.id
		ORDER BY a.name
	`

	rows, err := p.pool.Query(ctx, query)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	areas := make([]domain.Area, 0, 8)
	for rows.Next() {
		var (
			area                domain.Area
			boundaries, targets []byte
			active, total       int64
		)
		if err := rows.Scan(
			&area.ID,
			&area.Name,
			&area.Type,
			&boundaries,
			&area.Center.Latitude,
			&area.Center.Longitude,
			&area.Radius,
			&area.Population,
			&area.Priority,
			&area.SupervisorID,
			&targets,
			&active,
			&total,
			&area.AverageResolutionTime,
		); err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		if err := json.Unmarshal(boundaries, &area.Boundaries); err != nil {
			return nil, fmt.Errorf("%s: decode boundaries: %w", op, err)
		}
		if err := json.Unmarshal(targets, &area.SLATargets); err != nil {
			return nil, fmt.Errorf("%s: decode sla_targets: %w", op, err)
		}
		if len(area.Boundaries) == 0 {
			area.Boundaries = nil
		}
		area.ActiveIssues = int(active)
		area.TotalIssues = int(total)
		areas = append(areas, area)
	}
	if err := rows.Err(); err != nil {
		p.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	return areas, nil
}
