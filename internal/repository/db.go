package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// NewPool creates and pings a new pgx connection pool.
func NewPool(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, err
	}

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, err
	}
	return pool, nil
}

// HealthRepo checks database reachability.
type HealthRepo struct{ db *pgxpool.Pool }

// NewHealthRepo creates a new HealthRepo.
func NewHealthRepo(db *pgxpool.Pool) *HealthRepo { return &HealthRepo{db: db} }

// Ping checks the pool can reach Postgres.
func (r *HealthRepo) Ping(ctx context.Context) error { return r.db.Ping(ctx) }
