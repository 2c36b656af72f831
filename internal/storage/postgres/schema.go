package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

const schema = `
CREATE EXTENSION IF NOT EXISTS postgis;

CREATE TABLE IF NOT EXISTS issues (
	id           uuid PRIMARY KEY,
	title        text NOT NULL,
	description  text NOT NULL DEFAULT '',
	geo_point    geography(Point, 4326) NOT NULL,
	address      text NOT NULL DEFAULT '',
	landmark     text NOT NULL DEFAULT '',
	category     text NOT NULL,
	priority     text NOT NULL,
	status       text NOT NULL,
	area         text NOT NULL DEFAULT '',
	reported_by  text NOT NULL DEFAULT '',
	assigned_to  uuid,
	created_at   timestamptz NOT NULL,
	updated_at   timestamptz NOT NULL,
	resolved_at  timestamptz,
	sla_deadline timestamptz,
	is_escalated boolean NOT NULL DEFAULT false,
	escalated_at timestamptz
);

CREATE INDEX IF NOT EXISTS issues_geo_point_idx ON issues USING GIST (geo_point);
CREATE INDEX IF NOT EXISTS issues_open_idx ON issues (created_at)
	WHERE status IN ('open', 'assigned', 'in_progress');

CREATE TABLE IF NOT EXISTS users (
	id               uuid PRIMARY KEY,
	name             text NOT NULL,
	email            text NOT NULL UNIQUE,
	role             text NOT NULL,
	department       text NOT NULL DEFAULT '',
	geographic_areas jsonb NOT NULL DEFAULT '[]',
	location         geography(Point, 4326)
);

CREATE TABLE IF NOT EXISTS areas (
	id            uuid PRIMARY KEY,
	name          text NOT NULL UNIQUE,
	type          text NOT NULL,
	boundaries    jsonb NOT NULL DEFAULT '[]',
	center        geography(Point, 4326) NOT NULL,
	radius_km     double precision NOT NULL,
	population    integer NOT NULL DEFAULT 0,
	priority      text NOT NULL DEFAULT 'medium',
	supervisor_id uuid,
	sla_targets   jsonb NOT NULL DEFAULT '{}'
);
`

// Migrate is idempotent.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, schema)
	return err
}
