package service

import (
	"fmt"

	"wordy/internal/clock"
	"wordy/internal/domain"
	"wordy/internal/game"
	"wordy/internal/repository"

	"go.uber.org/zap"
)

// StatsService keeps per-user win and streak statistics
type StatsService struct {
	statsRepo   repository.StatisticsRepository
	pointerRepo repository.PointerRepository
	clock       clock.Clock
	logger      *zap.Logger
}

// NewStatsService creates a new stats service
func NewStatsService(
	statsRepo repository.StatisticsRepository,
	pointerRepo repository.PointerRepository,
	clk clock.Clock,
	logger *zap.Logger,
) *StatsService {
	return &StatsService{
		statsRepo:   statsRepo,
		pointerRepo: pointerRepo,
		clock:       clk,
		logger:      logger,
	}
}

// GetStatistics returns the user's statistics, zero valued if the user
// never finished a puzzle
func (s *StatsService) GetStatistics(userID int64) (*domain.Statistics, error) {
	return s.statsRepo.GetStatistics(userID)
}

// RecordCompletion folds a just finished puzzle into the user's statistics.
// lastDatePlayed is the pointer's value before this completion.
func (s *StatsService) RecordCompletion(p *domain.PuzzleState, lastDatePlayed *domain.Date) error {
	current, err := s.statsRepo.GetStatistics(p.UserID)
	if err != nil {
		return fmt.Errorf("failed to load statistics: %w", err)
	}

	updated, daily := game.ApplyCompletion(*current, game.Completion{
		Won:            p.IsWon(),
		GuessNumber:    p.GuessNumber,
		Date:           p.Date,
		Today:          s.clock.Today(),
		LastDatePlayed: lastDatePlayed,
	})
	updated.UserID = p.UserID

	if err := s.statsRepo.SaveStatistics(&updated); err != nil {
		s.logger.Error("Failed to save statistics", zap.Int64("user_id", p.UserID), zap.Error(err))
		return fmt.Errorf("failed to save statistics: %w", err)
	}

	if daily {
		if err := s.pointerRepo.SetLastDatePlayed(p.UserID, p.Date); err != nil {
			return fmt.Errorf("failed to record last played date: %w", err)
		}
	}

	s.logger.Info("Puzzle completed",
		zap.Int64("user_id", p.UserID),
		zap.String("date", p.Date.String()),
		zap.Bool("won", p.IsWon()),
		zap.Bool("daily", daily),
		zap.Int("current_streak", updated.CurrentStreak),
	)
	return nil
}
