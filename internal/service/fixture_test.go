package service

import (
	"testing"
	"time"

	"wordy/internal/cache"
	"wordy/internal/clock"
	"wordy/internal/dictionary"
	"wordy/internal/domain"
	"wordy/internal/testutil"

	"github.com/stretchr/testify/require"
)

var (
	day1 = domain.NewDate(2025, time.March, 1)
	day2 = day1.AddDays(1)
	day3 = day1.AddDays(2)
)

// fixture wires a PuzzleService to testify mocks
type fixture struct {
	wordRepo    *testutil.MockWordRepository
	puzzleRepo  *testutil.MockPuzzleRepository
	pointerRepo *testutil.MockPointerRepository
	statsRepo   *testutil.MockStatisticsRepository
	clock       *clock.Manual
	puzzles     *cache.TTL[string, *domain.PuzzleState]
	targets     *cache.TTL[int64, domain.TargetWordAnalysis]
	service     *PuzzleService
}

func newFixture(t *testing.T, today domain.Date, dict ...string) *fixture {
	t.Helper()

	index, err := dictionary.NewIndex(dict)
	require.NoError(t, err)

	f := &fixture{
		wordRepo:    new(testutil.MockWordRepository),
		puzzleRepo:  new(testutil.MockPuzzleRepository),
		pointerRepo: new(testutil.MockPointerRepository),
		statsRepo:   new(testutil.MockStatisticsRepository),
		clock:       clock.NewManualAt(today),
	}
	f.puzzles = cache.NewTTL[string, *domain.PuzzleState](time.Hour, f.clock)
	f.targets = cache.NewTTL[int64, domain.TargetWordAnalysis](24*time.Hour, f.clock)

	logger := testutil.NewTestLogger()
	words := NewWordStore(f.wordRepo, index, f.targets, logger)
	stats := NewStatsService(f.statsRepo, f.pointerRepo, f.clock, logger)
	f.service = NewPuzzleService(words, f.puzzleRepo, f.pointerRepo, stats, f.puzzles, f.clock, logger)
	return f
}

func (f *fixture) assertExpectations(t *testing.T) {
	f.wordRepo.AssertExpectations(t)
	f.puzzleRepo.AssertExpectations(t)
	f.pointerRepo.AssertExpectations(t)
	f.statsRepo.AssertExpectations(t)
}

// withAttempts records rows as earlier unsolved guesses on p
func withAttempts(p *domain.PuzzleState, rows ...[]domain.TypedLetter) *domain.PuzzleState {
	for _, row := range rows {
		p.Attempts = append(p.Attempts, row)
	}
	p.GuessNumber = len(rows)
	return p
}

func missRow(word string) []domain.TypedLetter {
	row := make([]domain.TypedLetter, len(word))
	for i := range word {
		row[i] = domain.TypedLetter{Letter: string(word[i]), State: domain.LetterMiss}
	}
	return row
}

func solvedRef(b bool) *bool {
	return &b
}
