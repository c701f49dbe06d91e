package database

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
)

// DB wraps a connection pool with dialect-aware query helpers
type DB struct {
	*sql.DB
	Dialect Dialect
}

// New wraps an already opened pool
func New(db *sql.DB, dialect Dialect) *DB {
	return &DB{DB: db, Dialect: dialect}
}

// DialectFor returns the dialect registered under name
func DialectFor(name string) (Dialect, error) {
	switch strings.ToLower(name) {
	case "postgres", "postgresql", "":
		return NewPostgresDialect(), nil
	case "sqlite", "sqlite3":
		return NewSQLiteDialect(), nil
	default:
		return nil, fmt.Errorf("unsupported database type: %s", name)
	}
}

// RetryPolicy controls how Connect waits for the database to come up
type RetryPolicy struct {
	Attempts int
	Delay    time.Duration
}

// DefaultRetryPolicy waits up to a minute, enough for a database container
// started alongside the bot
var DefaultRetryPolicy = RetryPolicy{Attempts: 30, Delay: 2 * time.Second}

// Connect opens and configures a pool, retrying until the database answers
func Connect(dialect Dialect, config DialectConfig, policy RetryPolicy, logger *zap.Logger) (*DB, error) {
	var err error
	if policy.Attempts < 1 {
		policy.Attempts = 1
	}

	for i := 0; i < policy.Attempts; i++ {
		if i > 0 {
			time.Sleep(policy.Delay)
		}

		var db *sql.DB
		db, err = sql.Open(dialect.DriverName(), dialect.DSN(config))
		if err != nil {
			logger.Warn("Failed to open database connection",
				zap.String("dialect", dialect.Name()),
				zap.Int("attempt", i+1),
				zap.Error(err),
			)
			continue
		}

		if err = db.Ping(); err != nil {
			logger.Warn("Failed to ping database",
				zap.String("dialect", dialect.Name()),
				zap.Int("attempt", i+1),
				zap.Error(err),
			)
			db.Close()
			continue
		}

		if err = dialect.ConfigureConnection(db); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to configure connection: %w", err)
		}

		return New(db, dialect), nil
	}

	return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", policy.Attempts, err)
}

// Query executes a query with placeholder rewriting
func (db *DB) Query(query string, args ...interface{}) (*sql.Rows, error) {
	return db.DB.Query(db.Dialect.RewriteQuery(query), args...)
}

// QueryRow executes a single-row query with placeholder rewriting
func (db *DB) QueryRow(query string, args ...interface{}) *sql.Row {
	return db.DB.QueryRow(db.Dialect.RewriteQuery(query), args...)
}

// Exec executes a statement with placeholder rewriting
func (db *DB) Exec(query string, args ...interface{}) (sql.Result, error) {
	return db.DB.Exec(db.Dialect.RewriteQuery(query), args...)
}

// ExecReturningID executes an INSERT and returns the new row's id, using
// LastInsertId where the driver supports it and RETURNING id otherwise
func (db *DB) ExecReturningID(query string, args ...interface{}) (int64, error) {
	rewritten := db.Dialect.RewriteQuery(query)

	if db.Dialect.SupportsLastInsertId() {
		result, err := db.DB.Exec(rewritten, args...)
		if err != nil {
			return 0, err
		}
		return result.LastInsertId()
	}

	rewritten = strings.TrimSuffix(strings.TrimSpace(rewritten), ";")
	rewritten += " RETURNING id"

	var id int64
	if err := db.DB.QueryRow(rewritten, args...).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}
