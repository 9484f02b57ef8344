package db

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// ConnectPostgres opens the pool from DATABASE_URL, pings it, and makes
// sure the schema exists.
func ConnectPostgres(ctx context.Context) (*pgxpool.Pool, error) {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		return nil, errors.New("DATABASE_URL not set")
	}

	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, err
	}

	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = time.Hour

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, err
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	if err := initSchema(ctx, pool); err != nil {
		pool.Close()
		return nil, err
	}

	return pool, nil
}

// initSchema creates the session-state schema if missing.
func initSchema(ctx context.Context, pool *pgxpool.Pool) error {

	// -------------------------------
	// CART STATE (full value per key)
	// -------------------------------
	cartStateSQL := `
		CREATE TABLE IF NOT EXISTS cart_state (
			key VARCHAR(255) PRIMARY KEY,
			value JSONB NOT NULL,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	_, err := pool.Exec(ctx, cartStateSQL)
	return err
}
