package testutil

import (
	"wordy/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock for UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) IsAuthorized(userID int64) (bool, error) {
	args := m.Called(userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) AuthorizeUser(userID int64) error {
	args := m.Called(userID)
	return args.Error(0)
}

func (m *MockUserRepository) EnsureUserExists(userID int64, username string) error {
	args := m.Called(userID, username)
	return args.Error(0)
}

func (m *MockUserRepository) ListAuthorizedUsers() ([]domain.User, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

// MockWordRepository is a mock for WordRepository
type MockWordRepository struct {
	mock.Mock
}

func (m *MockWordRepository) ListWords() ([]domain.Word, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Word), args.Error(1)
}

func (m *MockWordRepository) GetWordByDate(date domain.Date) (*domain.Word, error) {
	args := m.Called(date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Word), args.Error(1)
}

func (m *MockWordRepository) GetWordByID(id int64) (*domain.Word, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Word), args.Error(1)
}

func (m *MockWordRepository) CountWords() (int, error) {
	args := m.Called()
	return args.Int(0), args.Error(1)
}

func (m *MockWordRepository) SeedWords(words []domain.Word) error {
	args := m.Called(words)
	return args.Error(0)
}

func (m *MockWordRepository) FindUnfinishedWordBefore(userID int64, before domain.Date) (*domain.Word, error) {
	args := m.Called(userID, before)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Word), args.Error(1)
}

// MockPuzzleRepository is a mock for PuzzleRepository
type MockPuzzleRepository struct {
	mock.Mock
}

func (m *MockPuzzleRepository) GetPuzzle(id int64) (*domain.PuzzleState, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PuzzleState), args.Error(1)
}

func (m *MockPuzzleRepository) GetPuzzleForWord(userID, wordID int64) (*domain.PuzzleState, error) {
	args := m.Called(userID, wordID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PuzzleState), args.Error(1)
}

func (m *MockPuzzleRepository) CreatePuzzle(p *domain.PuzzleState) error {
	args := m.Called(p)
	return args.Error(0)
}

func (m *MockPuzzleRepository) UpdatePuzzle(p *domain.PuzzleState) error {
	args := m.Called(p)
	return args.Error(0)
}

// MockPointerRepository is a mock for PointerRepository
type MockPointerRepository struct {
	mock.Mock
}

func (m *MockPointerRepository) GetPointer(userID int64) (*domain.UserPointer, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserPointer), args.Error(1)
}

func (m *MockPointerRepository) SetActivePuzzle(p *domain.UserPointer) error {
	args := m.Called(p)
	return args.Error(0)
}

func (m *MockPointerRepository) SetLastDatePlayed(userID int64, date domain.Date) error {
	args := m.Called(userID, date)
	return args.Error(0)
}

// MockStatisticsRepository is a mock for StatisticsRepository
type MockStatisticsRepository struct {
	mock.Mock
}

func (m *MockStatisticsRepository) GetStatistics(userID int64) (*domain.Statistics, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Statistics), args.Error(1)
}

func (m *MockStatisticsRepository) SaveStatistics(s *domain.Statistics) error {
	args := m.Called(s)
	return args.Error(0)
}
