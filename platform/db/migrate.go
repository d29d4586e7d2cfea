package db

import (
	"context"
	"embed"
	"io/fs"

	"foodcart_backend/platform/logger"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

// RunMigrations applies all pending migrations for the tables this service owns.
// Catalog and order tables belong to the catalog management system and are not migrated here.
func RunMigrations(ctx context.Context, pool *pgxpool.Pool, log *logger.Logger) error {
	sqlDB := stdlib.OpenDBFromPool(pool)
	defer func() {
		_ = sqlDB.Close()
	}()

	migrations, err := fs.Sub(migrationFiles, "migrations")
	if err != nil {
		return err
	}

	provider, err := goose.NewProvider(goose.DialectPostgres, sqlDB, migrations)
	if err != nil {
		return err
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return err
	}

	for _, result := range results {
		log.Info("migration applied", "source", result.Source.Path, "duration", result.Duration)
	}

	return nil
}
