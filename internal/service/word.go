package service

import (
	"fmt"

	"wordy/internal/cache"
	"wordy/internal/dictionary"
	"wordy/internal/domain"
	"wordy/internal/game"
	"wordy/internal/repository"

	"go.uber.org/zap"
)

// WordStore answers dictionary questions: which word belongs to a date,
// whether a guess is playable, and the analysed target of a puzzle
type WordStore struct {
	wordRepo repository.WordRepository
	index    *dictionary.Index
	targets  cache.Cache[int64, domain.TargetWordAnalysis]
	logger   *zap.Logger
}

// NewWordStore creates a word store over an already built index
func NewWordStore(
	wordRepo repository.WordRepository,
	index *dictionary.Index,
	targets cache.Cache[int64, domain.TargetWordAnalysis],
	logger *zap.Logger,
) *WordStore {
	return &WordStore{
		wordRepo: wordRepo,
		index:    index,
		targets:  targets,
		logger:   logger,
	}
}

// LoadWordStore builds the index from every seeded word
func LoadWordStore(
	wordRepo repository.WordRepository,
	targets cache.Cache[int64, domain.TargetWordAnalysis],
	logger *zap.Logger,
) (*WordStore, error) {
	words, err := wordRepo.ListWords()
	if err != nil {
		return nil, fmt.Errorf("failed to list words: %w", err)
	}

	texts := make([]string, len(words))
	for i, w := range words {
		texts[i] = w.Text
	}

	index, err := dictionary.NewIndex(texts)
	if err != nil {
		return nil, fmt.Errorf("failed to build word index: %w", err)
	}

	logger.Info("Word index loaded", zap.Int("words", index.Len()))
	return NewWordStore(wordRepo, index, targets, logger), nil
}

// WordForDate returns the word of the given day
func (s *WordStore) WordForDate(date domain.Date) (*domain.Word, error) {
	return s.wordRepo.GetWordByDate(date)
}

// WordByID returns the word with the given id
func (s *WordStore) WordByID(id int64) (*domain.Word, error) {
	return s.wordRepo.GetWordByID(id)
}

// WordExists reports whether candidate may be guessed
func (s *WordStore) WordExists(candidate string) bool {
	return s.index.Contains(candidate)
}

// UnfinishedBefore returns the latest word before date the user has not finished
func (s *WordStore) UnfinishedBefore(userID int64, date domain.Date) (*domain.Word, error) {
	return s.wordRepo.FindUnfinishedWordBefore(userID, date)
}

// Target returns the letter analysis of the word with the given id
func (s *WordStore) Target(wordID int64) (domain.TargetWordAnalysis, error) {
	if analysis, ok := s.targets.Get(wordID); ok {
		return analysis, nil
	}

	s.logger.Debug("Target cache miss", zap.Int64("word_id", wordID))

	word, err := s.wordRepo.GetWordByID(wordID)
	if err != nil {
		return domain.TargetWordAnalysis{}, err
	}

	analysis := game.Analyze(word.Text)
	s.targets.Set(wordID, analysis)
	return analysis, nil
}

// Index returns the dictionary index
func (s *WordStore) Index() *dictionary.Index {
	return s.index
}
