package database

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	migrate "github.com/golang-migrate/migrate/v4"
	migratedb "github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jvbartk0/orbisx-sistema-final-v2/migrations"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// MigratePostgres applies the embedded PostgreSQL migrations using a
// short-lived database/sql connection (pgx stdlib driver). It reports
// whether anything was applied.
func MigratePostgres(databaseURL string) (bool, error) {
	db, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return false, fmt.Errorf("failed to open database connection for migrations: %w", err)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		return false, fmt.Errorf("failed to ping database for migrations: %w", err)
	}

	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return false, fmt.Errorf("could not create postgres driver instance for migrations: %w", err)
	}
	return runMigrations(driver, migrations.PostgresDir, "postgres")
}

// MigrateSQLite applies the embedded SQLite migrations on a separate
// connection so the application handle stays untouched.
func MigrateSQLite(path string) (bool, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return false, fmt.Errorf("failed to create database directory: %w", err)
	}
	db, err := sql.Open("sqlite", SQLiteDSN(path))
	if err != nil {
		return false, fmt.Errorf("failed to open sqlite database for migrations: %w", err)
	}
	defer db.Close()

	driver, err := sqlite.WithInstance(db, &sqlite.Config{})
	if err != nil {
		return false, fmt.Errorf("could not create sqlite driver instance for migrations: %w", err)
	}
	return runMigrations(driver, migrations.SQLiteDir, "sqlite")
}

func runMigrations(driver migratedb.Driver, dir, dbName string) (bool, error) {
	src, err := iofs.New(migrations.FS, dir)
	if err != nil {
		return false, fmt.Errorf("failed to create migration source: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", src, dbName, driver)
	if err != nil {
		return false, fmt.Errorf("could not create migrate instance: %w", err)
	}

	err = m.Up()
	applied := true
	if errors.Is(err, migrate.ErrNoChange) {
		applied = false
		err = nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to apply migrations: %w", err)
	}

	sourceErr, dbErr := m.Close()
	if sourceErr != nil {
		return applied, fmt.Errorf("migration source error: %w", sourceErr)
	}
	if dbErr != nil {
		return applied, fmt.Errorf("migration database error: %w", dbErr)
	}
	return applied, nil
}
