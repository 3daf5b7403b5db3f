package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/SergeyBogomolovv/storefront-orders/internal/config"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

const connectTimeout = 10 * time.Second

// New opens the pool and pings it; ctx bounds the initial connect.
func New(ctx context.Context, cfg config.Postgres) (*sqlx.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName, cfg.SSLMode,
	)

	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	db, err := sqlx.ConnectContext(ctx, "postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres %s:%d/%s: %w", cfg.Host, cfg.Port, cfg.DBName, err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	if cfg.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
		db.SetConnMaxIdleTime(cfg.ConnMaxLifetime / 2)
	}

	return db, nil
}
