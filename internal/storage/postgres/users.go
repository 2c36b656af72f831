package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"cityDesk/internal/domain"
	"cityDesk/pkg/e"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewUserRepo(pool *pgxpool.Pool, logger *slog.Logger) *UserRepo {
	return &UserRepo{pool: pool, logger: logger}
}

func (p *UserRepo) Create(ctx context.Context, user *domain.User) error {
	const op = "postgres.User.Create"

	const query = `
		INSERT INTO users (id, name, email, role, department, geographic_areas, location)
		VALUES (
			$1, $2, $3, $4, $5, $6,
			CASE WHEN $7::float8 IS NULL THEN NULL
			     ELSE ST_SetSRID(ST_MakePoint($7, $8), 4326)::geography END
		)
	`

	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	areas, err := marshalAreas(user.GeographicAreas)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	var lng, lat *float64
	if user.Location != nil {
		lng, lat = &user.Location.Longitude, &user.Location.Latitude
	}

	if _, err := p.pool.Exec(ctx, query,
		user.ID,
		user.Name,
		user.Email,
		user.Role,
		user.Department,
		areas,
		lng,
		lat,
	); err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}
	return nil
}

func (p *UserRepo) Get(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	const op = "postgres.User.Get"

	const query = `
		SELECT id,
			   name,
			   email,
			   role,
			   department,
			   geographic_areas,
			   ST_Y(location::geometry) AS lat,
			   ST_X(location::geometry) AS lng
		FROM users
		WHERE id = $1
	`

	var (
		user     domain.User
		areas    []byte
		lat, lng *float64
	)
	err := p.pool.QueryRow(ctx, query, id).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.Role,
		&user.Department,
		&areas,
		&lat,
		&lng,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return nil, e.WrapError(ctx, op, err)
	}

	if err := json.Unmarshal(areas, &user.GeographicAreas); err != nil {
		return nil, fmt.Errorf("%s: decode geographic_areas: %w", op, err)
	}
	if lat != nil && lng != nil {
		user.Location = &domain.LocationPoint{Latitude: *lat, Longitude: *lng}
	}

	return &user, nil
}

func (p *UserRepo) UpdateGeographicAreas(ctx context.Context, id uuid.UUID, areas []domain.GeographicArea) error {
	const op = "postgres.User.UpdateGeographicAreas"

	payload, err := marshalAreas(areas)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	cmd, err := p.pool.Exec(ctx, `UPDATE users SET geographic_areas = $2 WHERE id = $1`, id, payload)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return e.WrapError(ctx, op, err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}
	return nil
}

func marshalAreas(areas []domain.GeographicArea) ([]byte, error) {
	if areas == nil {
		areas = []domain.GeographicArea{}
	}
	return json.Marshal(areas)
}
