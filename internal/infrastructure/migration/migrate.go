package migration

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"go.uber.org/zap"
)

// Runner drives schema migrations from the SQL files in migrations/,
// backed by golang-migrate. All schema changes go through these files;
// the application never auto-migrates.
type Runner struct {
	m   *migrate.Migrate
	log *zap.Logger
}

// New builds a Runner on top of an open database connection.
func New(db *sql.DB, migrationsPath string, log *zap.Logger) (*Runner, error) {
	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return nil, fmt.Errorf("create postgres driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance("file://"+migrationsPath, "postgres", driver)
	if err != nil {
		return nil, fmt.Errorf("create migrate instance: %w", err)
	}

	return &Runner{m: m, log: log}, nil
}

// Up applies every pending migration.
func (r *Runner) Up() error {
	r.log.Info("Applying pending migrations")
	return r.finish(r.m.Up(), "Schema is up to date")
}

// Down rolls back every applied migration.
func (r *Runner) Down() error {
	r.log.Info("Rolling back all migrations")
	return r.finish(r.m.Down(), "Nothing to roll back")
}

// Steps applies n migrations, negative n rolls back.
func (r *Runner) Steps(n int) error {
	r.log.Info("Stepping migrations", zap.Int("steps", n))
	return r.finish(r.m.Steps(n), "Schema is up to date")
}

// GoTo migrates up or down to the given version.
func (r *Runner) GoTo(version uint) error {
	r.log.Info("Migrating to version", zap.Uint("target", version))
	return r.finish(r.m.Migrate(version), "Already at target version")
}

// finish folds the ErrNoChange case and logs the resulting schema version.
func (r *Runner) finish(err error, noChangeMsg string) error {
	if errors.Is(err, migrate.ErrNoChange) {
		r.log.Info(noChangeMsg)
		return nil
	}
	if err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	version, dirty, err := r.Version()
	if err != nil {
		return err
	}
	r.log.Info("Migrations applied", zap.Uint("version", version), zap.Bool("dirty", dirty))
	return nil
}

// Version reports the current schema version. A fresh database with no
// applied migrations reports version 0.
func (r *Runner) Version() (uint, bool, error) {
	version, dirty, err := r.m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("read migration version: %w", err)
	}
	return version, dirty, nil
}

// Force overwrites the recorded version without running any SQL. Only
// for recovering a dirty schema after a failed migration.
func (r *Runner) Force(version int) error {
	r.log.Warn("Forcing migration version", zap.Int("version", version))
	if err := r.m.Force(version); err != nil {
		return fmt.Errorf("force version %d: %w", version, err)
	}
	return nil
}

// Drop removes every object in the database, data included.
func (r *Runner) Drop() error {
	r.log.Warn("Dropping all database objects")
	if err := r.m.Drop(); err != nil {
		return fmt.Errorf("drop database: %w", err)
	}
	return nil
}

// Close releases the source and database handles held by the runner.
func (r *Runner) Close() error {
	sourceErr, dbErr := r.m.Close()
	if sourceErr != nil {
		return fmt.Errorf("close migration source: %w", sourceErr)
	}
	if dbErr != nil {
		return fmt.Errorf("close migration database: %w", dbErr)
	}
	return nil
}
