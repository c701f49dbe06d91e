package testutil

import (
	"testing"
	"time"

	"wordy/internal/database"
	"wordy/internal/domain"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestUser creates a test user
func NewTestUser(userID int64, username string, authorized bool) *domain.User {
	return &domain.User{
		UserID:     userID,
		Username:   username,
		Authorized: authorized,
		CreatedAt:  time.Now(),
	}
}

// NewTestWord creates a test word
func NewTestWord(id int64, text string, date domain.Date) *domain.Word {
	return &domain.Word{ID: id, Text: text, Date: date}
}

// NewTestPuzzle creates an untouched puzzle state
func NewTestPuzzle(id, userID int64, word *domain.Word) *domain.PuzzleState {
	now := word.Date.Time().Add(9 * time.Hour)
	return &domain.PuzzleState{
		ID:        id,
		UserID:    userID,
		WordID:    word.ID,
		Date:      word.Date,
		CreatedAt: now,
		UpdatedAt: now,
		Attempts:  [][]domain.TypedLetter{},
		Keys:      domain.KeyStates{},
	}
}

// NewTestPointer creates a pointer to puzzle p
func NewTestPointer(p *domain.PuzzleState, lastDatePlayed *domain.Date) *domain.UserPointer {
	return &domain.UserPointer{
		UserID:         p.UserID,
		PuzzleStateID:  p.ID,
		WordID:         p.WordID,
		WordDate:       p.Date,
		LastDatePlayed: lastDatePlayed,
	}
}

// Schedule returns words dated consecutively from epoch with ids from 1
func Schedule(epoch domain.Date, texts ...string) []domain.Word {
	words := make([]domain.Word, len(texts))
	for i, text := range texts {
		words[i] = domain.Word{ID: int64(i + 1), Text: text, Date: epoch.AddDays(i)}
	}
	return words
}

// NewTestDB opens a migrated in-memory SQLite database
func NewTestDB(t *testing.T) *database.DB {
	t.Helper()

	db, err := database.Connect(
		database.NewSQLiteDialect(),
		database.DialectConfig{Path: ":memory:"},
		database.RetryPolicy{Attempts: 1},
		NewTestLogger(),
	)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, database.Migrate(db, NewTestLogger()))
	return db
}
