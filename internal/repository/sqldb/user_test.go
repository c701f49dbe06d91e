package sqldb

import (
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestUserRepo_IsAuthorized(t *testing.T) {
	tests := []struct {
		name          string
		userID        int64
		mockRows      *sqlmock.Rows
		mockError     error
		expectedAuth  bool
		expectedError bool
	}{
		{
			name:         "authorized user",
			userID:       123,
			mockRows:     sqlmock.NewRows([]string{"authorized"}).AddRow(true),
			expectedAuth: true,
		},
		{
			name:         "unauthorized user",
			userID:       456,
			mockRows:     sqlmock.NewRows([]string{"authorized"}).AddRow(false),
			expectedAuth: false,
		},
		{
			name:         "user not exists",
			userID:       789,
			mockError:    sql.ErrNoRows,
			expectedAuth: false,
		},
		{
			name:          "database error",
			userID:        789,
			mockError:     errors.New("connection reset"),
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			repo := NewUserRepo(db)

			query := "SELECT authorized FROM users WHERE user_id = \\$1"

			if tt.mockError != nil {
				mock.ExpectQuery(query).WithArgs(tt.userID).WillReturnError(tt.mockError)
			} else {
				mock.ExpectQuery(query).WithArgs(tt.userID).WillReturnRows(tt.mockRows)
			}

			authorized, err := repo.IsAuthorized(tt.userID)

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedAuth, authorized)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUserRepo_AuthorizeUser(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepo(db)

	mock.ExpectExec("INSERT INTO users \\(user_id, authorized\\) VALUES \\(\\$1, \\$2\\) ON CONFLICT \\(user_id\\) DO UPDATE SET authorized = excluded.authorized").
		WithArgs(int64(123), true).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.AuthorizeUser(123)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepo_EnsureUserExists(t *testing.T) {
	t.Run("without username", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewUserRepo(db)

		mock.ExpectExec("INSERT INTO users \\(user_id, authorized\\) VALUES \\(\\$1, \\$2\\) ON CONFLICT \\(user_id\\) DO NOTHING").
			WithArgs(int64(123), false).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.EnsureUserExists(123, ""))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("with username refreshes name", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewUserRepo(db)

		mock.ExpectExec("INSERT INTO users \\(user_id, username, authorized\\) .* DO UPDATE SET username = excluded.username").
			WithArgs(int64(123), "alice", false).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.EnsureUserExists(123, "alice"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUserRepo_ListAuthorizedUsers(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepo(db)

	created := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	mock.ExpectQuery("SELECT user_id, username, authorized, created_at FROM users WHERE authorized = \\$1 ORDER BY user_id").
		WithArgs(true).
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "username", "authorized", "created_at"}).
			AddRow(1, "alice", true, created).
			AddRow(2, "", true, created))

	users, err := repo.ListAuthorizedUsers()

	assert.NoError(t, err)
	assert.Len(t, users, 2)
	assert.Equal(t, int64(1), users[0].UserID)
	assert.Equal(t, "alice", users[0].Username)
	assert.Equal(t, "player 2", users[1].DisplayName())
	assert.NoError(t, mock.ExpectationsWereMet())
}
