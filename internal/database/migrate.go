package database

import (
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	migratedb "github.com/golang-migrate/migrate/v4/database"
	postgresdb "github.com/golang-migrate/migrate/v4/database/postgres"
	sqlitedb "github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"go.uber.org/zap"
)

//go:embed migrations/postgres/*.sql migrations/sqlite/*.sql
var migrationsFS embed.FS

// Migrate applies every pending migration for the pool's dialect.
// The migrate instance is not closed because that would close the pool.
func Migrate(db *DB, logger *zap.Logger) error {
	source, err := iofs.New(migrationsFS, "migrations/"+db.Dialect.MigrationsSubdir())
	if err != nil {
		return fmt.Errorf("failed to open migration source: %w", err)
	}

	var driver migratedb.Driver
	switch db.Dialect.(type) {
	case *PostgresDialect:
		driver, err = postgresdb.WithInstance(db.DB, &postgresdb.Config{})
	case *SQLiteDialect:
		driver, err = sqlitedb.WithInstance(db.DB, &sqlitedb.Config{})
	default:
		return fmt.Errorf("no migration driver for dialect %s", db.Dialect.Name())
	}
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, db.Dialect.Name(), driver)
	if err != nil {
		return fmt.Errorf("failed to create migration instance: %w", err)
	}

	err = m.Up()
	if errors.Is(err, migrate.ErrNoChange) {
		logger.Info("No new migrations to apply")
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	logger.Info("Migrations applied successfully", zap.String("dialect", db.Dialect.Name()))
	return nil
}
