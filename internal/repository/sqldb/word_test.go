package sqldb

import (
	"database/sql"
	"errors"
	"testing"
	"time"

	"wordy/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var wordColumns = []string{"id", "date", "word"}

func TestWordRepo_ListWords(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewWordRepo(db)

	mock.ExpectQuery("SELECT id, date, word FROM words ORDER BY date").
		WillReturnRows(sqlmock.NewRows(wordColumns).
			AddRow(1, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), "bigot").
			AddRow(2, "2025-01-02", "hello"))

	words, err := repo.ListWords()

	require.NoError(t, err)
	assert.Equal(t, []domain.Word{
		{ID: 1, Text: "bigot", Date: domain.NewDate(2025, time.January, 1)},
		{ID: 2, Text: "hello", Date: domain.NewDate(2025, time.January, 2)},
	}, words)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWordRepo_GetWordByDate(t *testing.T) {
	date := domain.NewDate(2025, time.March, 4)

	tests := []struct {
		name        string
		mockRows    *sqlmock.Rows
		mockError   error
		expected    *domain.Word
		expectedErr error
	}{
		{
			name:     "word found",
			mockRows: sqlmock.NewRows(wordColumns).AddRow(5, "2025-03-04", "torch"),
			expected: &domain.Word{ID: 5, Text: "torch", Date: date},
		},
		{
			name:        "outside seeded range",
			mockError:   sql.ErrNoRows,
			expectedErr: domain.ErrNotFound,
		},
		{
			name:        "database error",
			mockError:   errors.New("boom"),
			expectedErr: errors.New("boom"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			repo := NewWordRepo(db)

			exp := mock.ExpectQuery("SELECT id, date, word FROM words WHERE date = \\$1").WithArgs("2025-03-04")
			if tt.mockError != nil {
				exp.WillReturnError(tt.mockError)
			} else {
				exp.WillReturnRows(tt.mockRows)
			}

			word, err := repo.GetWordByDate(date)

			if tt.expectedErr != nil {
				assert.Error(t, err)
				if errors.Is(tt.expectedErr, domain.ErrNotFound) {
					assert.ErrorIs(t, err, domain.ErrNotFound)
				} else {
					assert.NotErrorIs(t, err, domain.ErrNotFound)
				}
				assert.Nil(t, word)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, word)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestWordRepo_GetWordByID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewWordRepo(db)

	mock.ExpectQuery("SELECT id, date, word FROM words WHERE id = \\$1").
		WithArgs(int64(9)).
		WillReturnError(sql.ErrNoRows)

	word, err := repo.GetWordByID(9)

	assert.Nil(t, word)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWordRepo_CountWords(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewWordRepo(db)

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM words").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(365))

	count, err := repo.CountWords()

	assert.NoError(t, err)
	assert.Equal(t, 365, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWordRepo_SeedWords(t *testing.T) {
	words := []domain.Word{
		{Text: "bigot", Date: domain.NewDate(2025, time.January, 1)},
		{Text: "hello", Date: domain.NewDate(2025, time.January, 2)},
	}

	t.Run("commits all words", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewWordRepo(db)

		mock.ExpectBegin()
		prep := mock.ExpectPrepare("INSERT INTO words \\(date, word\\) VALUES \\(\\$1, \\$2\\)")
		prep.ExpectExec().WithArgs("2025-01-01", "bigot").WillReturnResult(sqlmock.NewResult(1, 1))
		prep.ExpectExec().WithArgs("2025-01-02", "hello").WillReturnResult(sqlmock.NewResult(2, 1))
		mock.ExpectCommit()

		assert.NoError(t, repo.SeedWords(words))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rolls back on duplicate", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewWordRepo(db)

		mock.ExpectBegin()
		prep := mock.ExpectPrepare("INSERT INTO words")
		prep.ExpectExec().WithArgs("2025-01-01", "bigot").WillReturnResult(sqlmock.NewResult(1, 1))
		prep.ExpectExec().WithArgs("2025-01-02", "hello").WillReturnError(errors.New("duplicate key"))
		mock.ExpectRollback()

		err := repo.SeedWords(words)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "hello")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestWordRepo_FindUnfinishedWordBefore(t *testing.T) {
	today := domain.NewDate(2025, time.March, 10)

	t.Run("latest unfinished", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewWordRepo(db)

		mock.ExpectQuery("SELECT w.id, w.date, w.word FROM words w LEFT JOIN puzzle_states p ON p.word_id = w.id AND p.user_id = \\$1 WHERE w.date < \\$2 AND p.solved IS NULL ORDER BY w.date DESC LIMIT 1").
			WithArgs(int64(7), "2025-03-10").
			WillReturnRows(sqlmock.NewRows(wordColumns).AddRow(8, "2025-03-08", "moral"))

		word, err := repo.FindUnfinishedWordBefore(7, today)

		require.NoError(t, err)
		assert.Equal(t, "moral", word.Text)
		assert.Equal(t, "2025-03-08", word.Date.String())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("everything finished", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewWordRepo(db)

		mock.ExpectQuery("SELECT w.id, w.date, w.word FROM words w LEFT JOIN puzzle_states").
			WithArgs(int64(7), "2025-03-10").
			WillReturnError(sql.ErrNoRows)

		word, err := repo.FindUnfinishedWordBefore(7, today)

		assert.Nil(t, word)
		assert.ErrorIs(t, err, domain.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
