package cmd

import (
	"context"
	"fmt"

	"eats/internal/adapters/out/postgres"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// OpenDatabase connects the pgx pool, puts gorm on top of it and migrates the
// schema. Closing the pool releases everything.
func OpenDatabase(ctx context.Context, cfg Config) (*pgxpool.Pool, *gorm.DB, error) {
	pool, err := pgxpool.New(ctx, cfg.DSN())
	if err != nil {
		return nil, nil, fmt.Errorf("create pool: %w", err)
	}
	if err = pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, nil, fmt.Errorf("ping database: %w", err)
	}

	gormDB, err := gorm.Open(gormpostgres.New(gormpostgres.Config{Conn: stdlib.OpenDBFromPool(pool)}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		pool.Close()
		return nil, nil, fmt.Errorf("open gorm: %w", err)
	}

	if err = postgres.Migrate(gormDB); err != nil {
		pool.Close()
		return nil, nil, fmt.Errorf("migrate: %w", err)
	}

	return pool, gormDB, nil
}
