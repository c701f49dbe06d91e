package service

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"wordy/internal/cache"
	"wordy/internal/clock"
	"wordy/internal/dictionary"
	"wordy/internal/domain"
	"wordy/internal/game"
	"wordy/internal/repository"

	"go.uber.org/zap"
)

// PuzzleService drives a user's progression through the daily puzzles.
// It keeps no per-user locks; concurrent calls for the same user are last
// write wins.
type PuzzleService struct {
	words       *WordStore
	puzzleRepo  repository.PuzzleRepository
	pointerRepo repository.PointerRepository
	stats       *StatsService
	puzzles     cache.Cache[string, *domain.PuzzleState]
	clock       clock.Clock
	logger      *zap.Logger
}

// NewPuzzleService creates a new puzzle service
func NewPuzzleService(
	words *WordStore,
	puzzleRepo repository.PuzzleRepository,
	pointerRepo repository.PointerRepository,
	stats *StatsService,
	puzzles cache.Cache[string, *domain.PuzzleState],
	clk clock.Clock,
	logger *zap.Logger,
) *PuzzleService {
	return &PuzzleService{
		words:       words,
		puzzleRepo:  puzzleRepo,
		pointerRepo: pointerRepo,
		stats:       stats,
		puzzles:     puzzles,
		clock:       clk,
		logger:      logger,
	}
}

func puzzleKey(userID int64, date domain.Date) string {
	return fmt.Sprintf("%d:%s", userID, date)
}

// GetCurrentPuzzle returns the puzzle the user's pointer refers to. Users
// without a pointer start on today's puzzle, and a finished puzzle from
// another day is left behind for today's.
func (s *PuzzleService) GetCurrentPuzzle(userID int64) (*domain.PuzzleState, error) {
	ptr, err := s.pointerRepo.GetPointer(userID)
	if errors.Is(err, domain.ErrNotFound) {
		return s.GetDailyPuzzle(userID)
	}
	if err != nil {
		return nil, err
	}

	p, err := s.pointerPuzzle(ptr)
	if err != nil {
		return nil, err
	}

	today := s.clock.Today()
	if p.IsFinished() && !ptr.WordDate.Equal(today) {
		s.logger.Info("Advancing to today's puzzle",
			zap.Int64("user_id", userID),
			zap.String("from", ptr.WordDate.String()),
			zap.String("to", today.String()),
		)
		return s.GetPuzzleByDate(userID, today)
	}
	return p, nil
}

// GetDailyPuzzle returns today's puzzle
func (s *PuzzleService) GetDailyPuzzle(userID int64) (*domain.PuzzleState, error) {
	return s.GetPuzzleByDate(userID, s.clock.Today())
}

// GetPuzzleByDate loads or creates the user's puzzle for date and makes it
// the active one
func (s *PuzzleService) GetPuzzleByDate(userID int64, date domain.Date) (*domain.PuzzleState, error) {
	today := s.clock.Today()
	if date.After(today) {
		return nil, fmt.Errorf("%w: %s is after %s", domain.ErrFutureDate, date, today)
	}

	word, err := s.words.WordForDate(date)
	if err != nil {
		return nil, err
	}

	p, err := s.loadOrCreate(userID, word)
	if err != nil {
		return nil, err
	}

	err = s.pointerRepo.SetActivePuzzle(&domain.UserPointer{
		UserID:        userID,
		PuzzleStateID: p.ID,
		WordID:        word.ID,
		WordDate:      word.Date,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to move pointer: %w", err)
	}

	return p, nil
}

// GetFirstUnfinishedPuzzle moves the user to the most recent past puzzle
// they have not finished
func (s *PuzzleService) GetFirstUnfinishedPuzzle(userID int64) (*domain.PuzzleState, error) {
	word, err := s.words.UnfinishedBefore(userID, s.clock.Today())
	if err != nil {
		return nil, err
	}
	return s.GetPuzzleByDate(userID, word.Date)
}

// SubmitGuess grades a guess against the user's active puzzle. Malformed
// guesses are rejected before any storage access, and nothing is persisted
// unless the guess was graded.
func (s *PuzzleService) SubmitGuess(userID int64, raw string) (*domain.PuzzleState, error) {
	guess := strings.ToLower(raw)
	if utf8.RuneCountInString(guess) != domain.WordLength {
		return nil, fmt.Errorf("%w: got %q", domain.ErrInvalidGuessLength, raw)
	}
	if !dictionary.IsLetters(guess) {
		return nil, fmt.Errorf("%w: got %q", domain.ErrInvalidCharacters, raw)
	}
	if !s.words.WordExists(guess) {
		return nil, fmt.Errorf("%w: %q", domain.ErrWordNotInDictionary, guess)
	}

	ptr, err := s.pointerRepo.GetPointer(userID)
	if err != nil {
		return nil, err
	}

	p, err := s.pointerPuzzle(ptr)
	if err != nil {
		return nil, err
	}
	if p.IsFinished() {
		return nil, fmt.Errorf("%w: %s", domain.ErrAlreadySolved, p.Date)
	}

	target, err := s.words.Target(p.WordID)
	if err != nil {
		return nil, err
	}

	graded := game.Evaluate(guess, target)
	next := p.Clone()
	next.Keys = game.MergeKeys(p.Keys, graded)
	next.Attempts = append(next.Attempts, graded)
	next.UpdatedAt = s.clock.Now()

	switch {
	case game.IsWin(graded):
		solved := true
		next.Solved = &solved
	case len(next.Attempts) >= domain.MaxAttempts:
		solved := false
		next.Solved = &solved
	default:
		next.GuessNumber++
	}

	if err := s.puzzleRepo.UpdatePuzzle(next); err != nil {
		return nil, fmt.Errorf("failed to save puzzle: %w", err)
	}
	s.puzzles.Set(puzzleKey(userID, next.Date), next.Clone())

	if next.IsFinished() {
		if err := s.stats.RecordCompletion(next, ptr.LastDatePlayed); err != nil {
			return nil, err
		}
	}

	return next, nil
}

// FriendResults reports how each friend did on the caller's active puzzle.
// The caller must already have an active puzzle.
func (s *PuzzleService) FriendResults(userID int64, friends []domain.Friend) (*domain.FriendResults, error) {
	ptr, err := s.pointerRepo.GetPointer(userID)
	if err != nil {
		return nil, err
	}

	results := &domain.FriendResults{
		PuzzleNumber: ptr.WordID,
		PuzzleDate:   ptr.WordDate,
		Results:      make([]domain.FriendResult, 0, len(friends)),
	}

	for _, f := range friends {
		r := domain.FriendResult{ID: f.ID, Name: f.Name, AvatarURL: f.AvatarURL}

		p, err := s.friendPuzzle(f.ID, ptr)
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		if p != nil {
			r.NumGuesses = len(p.Attempts)
			r.Finished = p.IsFinished()
			r.Solved = p.Solved
		}
		results.Results = append(results.Results, r)
	}

	return results, nil
}

// PossibleWords lists dictionary words consistent with the given clues
func (s *PuzzleService) PossibleWords(hits [domain.WordLength]string, found, misses []string) ([]string, error) {
	return game.PossibleWords(s.words.Index(), game.Filter{Hits: hits, Found: found, Misses: misses})
}

func (s *PuzzleService) pointerPuzzle(ptr *domain.UserPointer) (*domain.PuzzleState, error) {
	key := puzzleKey(ptr.UserID, ptr.WordDate)
	if p, ok := s.puzzles.Get(key); ok && p.ID == ptr.PuzzleStateID {
		return p.Clone(), nil
	}

	s.logger.Debug("Puzzle cache miss", zap.String("key", key))

	p, err := s.puzzleRepo.GetPuzzle(ptr.PuzzleStateID)
	if err != nil {
		return nil, err
	}
	s.puzzles.Set(key, p.Clone())
	return p, nil
}

func (s *PuzzleService) friendPuzzle(friendID int64, ptr *domain.UserPointer) (*domain.PuzzleState, error) {
	if p, ok := s.puzzles.Get(puzzleKey(friendID, ptr.WordDate)); ok {
		return p, nil
	}
	return s.puzzleRepo.GetPuzzleForWord(friendID, ptr.WordID)
}

func (s *PuzzleService) loadOrCreate(userID int64, word *domain.Word) (*domain.PuzzleState, error) {
	key := puzzleKey(userID, word.Date)
	if p, ok := s.puzzles.Get(key); ok {
		return p.Clone(), nil
	}

	p, err := s.puzzleRepo.GetPuzzleForWord(userID, word.ID)
	if errors.Is(err, domain.ErrNotFound) {
		p, err = s.create(userID, word)
	}
	if err != nil {
		return nil, err
	}

	s.puzzles.Set(key, p.Clone())
	return p, nil
}

func (s *PuzzleService) create(userID int64, word *domain.Word) (*domain.PuzzleState, error) {
	now := s.clock.Now()
	p := &domain.PuzzleState{
		UserID:    userID,
		WordID:    word.ID,
		Date:      word.Date,
		CreatedAt: now,
		UpdatedAt: now,
		Attempts:  [][]domain.TypedLetter{},
		Keys:      domain.KeyStates{},
	}

	if err := s.puzzleRepo.CreatePuzzle(p); err != nil {
		// another request may have created it first
		existing, getErr := s.puzzleRepo.GetPuzzleForWord(userID, word.ID)
		if getErr == nil {
			return existing, nil
		}
		return nil, fmt.Errorf("failed to create puzzle: %w", err)
	}

	s.logger.Info("Puzzle created",
		zap.Int64("user_id", userID),
		zap.Int64("puzzle_id", p.ID),
		zap.String("date", word.Date.String()),
	)
	return p, nil
}
