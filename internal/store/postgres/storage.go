package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Config struct {
	URL      string
	MaxConns int32
	Timeout  time.Duration
}

type Storage struct {
	pool *pgxpool.Pool
}

func New(ctx context.Context, cfg Config) (*Storage, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database url: %w", err)
	}

	if cfg.MaxConns > 0 {
		poolConfig.MaxConns = cfg.MaxConns
	}
	poolConfig.MinConns = 1
	poolConfig.MaxConnLifetime = time.Hour

	ctx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping postgres: %w", err)
	}

	if err := initSchema(ctx, pool); err != nil {
		pool.Close()
		return nil, err
	}

	return &Storage{pool: pool}, nil
}

func (s *Storage) Close(_ context.Context) error {
	s.pool.Close()
	return nil
}

func (s *Storage) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

func (s *Storage) Pool() *pgxpool.Pool {
	return s.pool
}

// initSchema creates the archive tables when they do not exist yet.
func initSchema(ctx context.Context, pool *pgxpool.Pool) error {
	ordersSQL := `
		CREATE TABLE IF NOT EXISTS completed_orders (
			session_id VARCHAR(64) NOT NULL,
			order_number INTEGER NOT NULL,
			customer_name VARCHAR(255) NOT NULL,
			table_identifier VARCHAR(64) NOT NULL,
			total NUMERIC(12, 2) NOT NULL,
			completed_at TIMESTAMPTZ NOT NULL,
			archived_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			PRIMARY KEY (session_id, order_number)
		)
	`
	if _, err := pool.Exec(ctx, ordersSQL); err != nil {
		return fmt.Errorf("failed to create completed_orders table: %w", err)
	}

	itemsSQL := `
		CREATE TABLE IF NOT EXISTS completed_order_items (
			session_id VARCHAR(64) NOT NULL,
			order_number INTEGER NOT NULL,
			position INTEGER NOT NULL,
			name VARCHAR(255) NOT NULL,
			unit_price NUMERIC(12, 2) NOT NULL,
			quantity INTEGER NOT NULL CHECK (quantity BETWEEN 1 AND 100),
			PRIMARY KEY (session_id, order_number, position),
			FOREIGN KEY (session_id, order_number)
				REFERENCES completed_orders (session_id, order_number) ON DELETE CASCADE
		)
	`
	if _, err := pool.Exec(ctx, itemsSQL); err != nil {
		return fmt.Errorf("failed to create completed_order_items table: %w", err)
	}

	indexSQL := `CREATE INDEX IF NOT EXISTS idx_completed_orders_completed_at ON completed_orders (completed_at)`
	if _, err := pool.Exec(ctx, indexSQL); err != nil {
		return fmt.Errorf("failed to create completed_at index: %w", err)
	}

	return nil
}
