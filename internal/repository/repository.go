package repository

import (
	"wordy/internal/domain"
)

// UserRepository defines user data operations
type UserRepository interface {
	IsAuthorized(userID int64) (bool, error)
	AuthorizeUser(userID int64) error
	EnsureUserExists(userID int64, username string) error
	ListAuthorizedUsers() ([]domain.User, error)
}

// WordRepository defines operations on the seeded dictionary
type WordRepository interface {
	ListWords() ([]domain.Word, error)
	GetWordByDate(date domain.Date) (*domain.Word, error)
	GetWordByID(id int64) (*domain.Word, error)
	CountWords() (int, error)
	SeedWords(words []domain.Word) error
	// FindUnfinishedWordBefore returns the latest word dated before the
	// given date that the user has not finished
	FindUnfinishedWordBefore(userID int64, before domain.Date) (*domain.Word, error)
}

// PuzzleRepository defines puzzle state operations
type PuzzleRepository interface {
	GetPuzzle(id int64) (*domain.PuzzleState, error)
	GetPuzzleForWord(userID, wordID int64) (*domain.PuzzleState, error)
	CreatePuzzle(p *domain.PuzzleState) error
	UpdatePuzzle(p *domain.PuzzleState) error
}

// PointerRepository defines active puzzle pointer operations
type PointerRepository interface {
	GetPointer(userID int64) (*domain.UserPointer, error)
	// SetActivePuzzle upserts the pointer, preserving last_date_played
	SetActivePuzzle(p *domain.UserPointer) error
	SetLastDatePlayed(userID int64, date domain.Date) error
}

// StatisticsRepository defines statistics operations
type StatisticsRepository interface {
	// GetStatistics returns a zero record for users that never finished a puzzle
	GetStatistics(userID int64) (*domain.Statistics, error)
	SaveStatistics(s *domain.Statistics) error
}
