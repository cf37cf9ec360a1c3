package database

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"expense-tracker-api/internal/config"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

var (
	maxRetries    = 30
	retryInterval = 2 * time.Second
)

// MigrationRunner applies the SQL migrations found under the configured
// directory against the expense schema.
type MigrationRunner struct {
	db     *sql.DB
	path   string
	logger *slog.Logger
}

// NewMigrationRunner creates a migration runner for the given migrations directory
func NewMigrationRunner(db *sql.DB, path string, logger *slog.Logger) *MigrationRunner {
	return &MigrationRunner{
		db:     db,
		path:   path,
		logger: logger,
	}
}

// WaitForDatabase blocks until the database answers pings or retries run out
func (mr *MigrationRunner) WaitForDatabase() error {
	mr.logger.Info("waiting for database to be ready")

	for i := 0; i < maxRetries; i++ {
		err := mr.db.Ping()
		if err == nil {
			mr.logger.Info("database is ready")
			return nil
		}

		mr.logger.Warn("database not ready", "attempt", i+1, "max_attempts", maxRetries, "error", err)
		time.Sleep(retryInterval)
	}

	return fmt.Errorf("database not ready after %d attempts", maxRetries)
}

// RunMigrations applies all pending migrations. A missing migrations
// directory is a soft skip so fresh checkouts can still boot on
// GORM AutoMigrate.
func (mr *MigrationRunner) RunMigrations() error {
	if _, err := os.Stat(mr.path); os.IsNotExist(err) {
		mr.logger.Warn("migrations directory not found, skipping", "path", mr.path)
		return nil
	}

	absPath, err := filepath.Abs(mr.path)
	if err != nil {
		return fmt.Errorf("failed to get absolute path for migrations: %w", err)
	}

	m, err := mr.newMigrate(absPath)
	if err != nil {
		return err
	}

	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("failed to get migration version: %w", err)
	}

	if dirty {
		mr.logger.Warn("database is in dirty state, forcing version", "version", version)
		if err := m.Force(int(version)); err != nil {
			return fmt.Errorf("failed to force version: %w", err)
		}
	}

	mr.logger.Info("running migrations", "path", absPath, "current_version", version)

	err = m.Up()
	switch {
	case errors.Is(err, migrate.ErrNoChange):
		mr.logger.Info("no new migrations to apply")
	case err != nil:
		return fmt.Errorf("migration failed: %w", err)
	default:
		newVersion, _, err := m.Version()
		if err != nil {
			return fmt.Errorf("failed to get new migration version: %w", err)
		}
		mr.logger.Info("migrations applied", "version", newVersion)
	}

	return nil
}

// Status returns the current migration version and dirty flag
func (mr *MigrationRunner) Status() (version uint, dirty bool, err error) {
	if _, err := os.Stat(mr.path); os.IsNotExist(err) {
		return 0, false, fmt.Errorf("migrations directory not found")
	}

	absPath, err := filepath.Abs(mr.path)
	if err != nil {
		return 0, false, fmt.Errorf("failed to get absolute path: %w", err)
	}

	m, err := mr.newMigrate(absPath)
	if err != nil {
		return 0, false, err
	}

	return m.Version()
}

func (mr *MigrationRunner) newMigrate(absPath string) (*migrate.Migrate, error) {
	driver, err := postgres.WithInstance(mr.db, &postgres.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to create postgres driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(
		fmt.Sprintf("file://%s", absPath),
		"postgres",
		driver,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create migration instance: %w", err)
	}

	return m, nil
}

// RunMigrationsIfEnabled runs the migration runner when the database
// config asks for it
func RunMigrationsIfEnabled(db *sql.DB, cfg *config.DatabaseConfig, logger *slog.Logger) error {
	if !cfg.AutoMigrate {
		logger.Info("auto-migration disabled")
		return nil
	}

	runner := NewMigrationRunner(db, cfg.MigrationsPath, logger)

	if err := runner.WaitForDatabase(); err != nil {
		return fmt.Errorf("database readiness check failed: %w", err)
	}

	if err := runner.RunMigrations(); err != nil {
		return fmt.Errorf("migration execution failed: %w", err)
	}

	version, dirty, err := runner.Status()
	if err != nil {
		logger.Warn("failed to get migration status", "error", err)
	} else {
		logger.Info("migration status", "version", version, "dirty", dirty)
	}

	return nil
}
