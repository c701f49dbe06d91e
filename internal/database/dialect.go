package database

import (
	"database/sql"
	"regexp"
	"strconv"
)

// Dialect hides the differences between the supported SQL engines
type Dialect interface {
	// Name identifies the dialect in config and logs
	Name() string

	// DriverName returns the database/sql driver name
	DriverName() string

	// DSN returns the data source name for the connection
	DSN(config DialectConfig) string

	// RewriteQuery converts ? placeholders to the engine's syntax
	RewriteQuery(query string) string

	// SupportsLastInsertId reports whether sql.Result.LastInsertId works
	SupportsLastInsertId() bool

	// ConfigureConnection applies pool settings and pragmas
	ConfigureConnection(db *sql.DB) error

	// MigrationsSubdir names the embedded migrations directory
	MigrationsSubdir() string
}

// DialectConfig holds connection settings for a dialect
type DialectConfig struct {
	// SQLite
	Path string

	// PostgreSQL
	URL string
}

var placeholderRegexp = regexp.MustCompile(`\?`)

// rewritePlaceholdersToNumbered converts ? placeholders to $1, $2, ...
func rewritePlaceholdersToNumbered(query string) string {
	counter := 0
	return placeholderRegexp.ReplaceAllStringFunc(query, func(string) string {
		counter++
		return "$" + strconv.Itoa(counter)
	})
}
