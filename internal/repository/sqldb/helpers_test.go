package sqldb

import (
	"testing"

	"wordy/internal/database"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
)

// newMockDB returns a PostgreSQL-dialect DB so queries are checked after
// placeholder rewriting
func newMockDB(t *testing.T) (*database.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	return database.New(sqlDB, database.NewPostgresDialect()), mock
}
