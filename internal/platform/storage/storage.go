// Package storage opens the database selected by the configuration and
// exposes it as a repository provider.
package storage

import (
	"context"
	"fmt"
	"log/slog"

	portsrepo "github.com/jvbartk0/orbisx-sistema-final-v2/internal/core/ports/repositories"
	"github.com/jvbartk0/orbisx-sistema-final-v2/internal/platform/config"
	"github.com/jvbartk0/orbisx-sistema-final-v2/internal/repositories/database/pgsql"
	"github.com/jvbartk0/orbisx-sistema-final-v2/internal/repositories/database/sqlite"
	"github.com/jvbartk0/orbisx-sistema-final-v2/pkg/database"
)

// Migrate applies the pending migrations of the configured driver.
func Migrate(cfg *config.Config, logger *slog.Logger) error {
	logger.Info("Running database migrations...", slog.String("driver", cfg.DBDriver))

	var (
		applied bool
		err     error
	)
	switch cfg.DBDriver {
	case config.DriverSQLite:
		applied, err = database.MigrateSQLite(cfg.SQLitePath)
	default:
		applied, err = database.MigratePostgres(cfg.DatabaseURL)
	}
	if err != nil {
		return err
	}

	if applied {
		logger.Info("Database migrations applied successfully.")
	} else {
		logger.Info("No new migrations to apply.")
	}
	return nil
}

// Open connects to the configured database. The returned func releases the connection.
func Open(ctx context.Context, cfg *config.Config, logger *slog.Logger) (portsrepo.RepositoryProvider, func(), error) {
	switch cfg.DBDriver {
	case config.DriverSQLite:
		db, err := database.NewSQLiteDB(ctx, cfg.SQLitePath)
		if err != nil {
			return portsrepo.RepositoryProvider{}, nil, fmt.Errorf("failed to initialize sqlite database: %w", err)
		}
		logger.Info("SQLite database opened.", slog.String("path", cfg.SQLitePath))
		return sqlite.NewRepositoryProvider(db), func() { db.Close() }, nil
	default:
		pool, err := database.NewPgxPool(ctx, cfg.DatabaseURL)
		if err != nil {
			return portsrepo.RepositoryProvider{}, nil, fmt.Errorf("failed to initialize database pool: %w", err)
		}
		logger.Info("Database connection pool established.")
		return pgsql.NewRepositoryProvider(pool), func() { database.ClosePgxPool(pool) }, nil
	}
}
