package persist

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/connorfinan79/Arena/internal/config"
)

// NewPool opens a pgx connection pool from the database config and verifies
// connectivity with a ping.
func NewPool(ctx context.Context, cfg config.DatabaseConfig) (*pgxpool.Pool, error) {
	pc, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}
	pc.MaxConns = cfg.MaxConns
	pc.MinConns = cfg.MinConns
	pc.MaxConnLifetime = cfg.ConnMaxLifetime

	pool, err := pgxpool.NewWithConfig(ctx, pc)
	if err != nil {
		return nil, fmt.Errorf("open pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return pool, nil
}

// Migrate creates the schema if missing. Idempotent; runs at every boot.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS characters (
			name        TEXT PRIMARY KEY,
			champion    TEXT NOT NULL,
			level       INT  NOT NULL DEFAULT 1,
			xp          DOUBLE PRECISION NOT NULL DEFAULT 0,
			kills       BIGINT NOT NULL DEFAULT 0,
			deaths      BIGINT NOT NULL DEFAULT 0,
			updated_at  TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS kill_log (
			id          BIGSERIAL PRIMARY KEY,
			match_id    UUID NOT NULL,
			tick        BIGINT NOT NULL,
			victim_id   BIGINT NOT NULL,
			victim_team SMALLINT NOT NULL,
			killer_id   BIGINT NOT NULL,
			xp_awarded  DOUBLE PRECISION NOT NULL,
			logged_at   TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE INDEX IF NOT EXISTS kill_log_match_idx ON kill_log (match_id, tick)`,
	}
	for _, q := range stmts {
		if _, err := pool.Exec(ctx, q); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}
