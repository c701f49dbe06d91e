package sqldb

import (
	"database/sql"
	"errors"

	"wordy/internal/database"
	"wordy/internal/domain"
)

// StatisticsRepo implements repository.StatisticsRepository
type StatisticsRepo struct {
	db *database.DB
}

// NewStatisticsRepo creates a new statistics repository
func NewStatisticsRepo(db *database.DB) *StatisticsRepo {
	return &StatisticsRepo{db: db}
}

// GetStatistics returns the user's record, or a zero record if none exists
func (r *StatisticsRepo) GetStatistics(userID int64) (*domain.Statistics, error) {
	var (
		s            domain.Statistics
		distribution string
	)
	query := `
		SELECT user_id, played, won, current_streak, max_streak, distribution
		FROM statistics
		WHERE user_id = ?
	`
	err := r.db.QueryRow(query, userID).Scan(
		&s.UserID, &s.Played, &s.Won, &s.CurrentStreak, &s.MaxStreak, &distribution,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return &domain.Statistics{UserID: userID}, nil
	}
	if err != nil {
		return nil, err
	}

	if err := decodeJSON(distribution, &s.Distribution); err != nil {
		return nil, err
	}
	return &s, nil
}

// SaveStatistics upserts the user's record
func (r *StatisticsRepo) SaveStatistics(s *domain.Statistics) error {
	distribution, err := encodeJSON(s.Distribution)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO statistics (user_id, played, won, current_streak, max_streak, distribution)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (user_id)
		DO UPDATE SET
			played = excluded.played,
			won = excluded.won,
			current_streak = excluded.current_streak,
			max_streak = excluded.max_streak,
			distribution = excluded.distribution
	`
	_, err = r.db.Exec(query, s.UserID, s.Played, s.Won, s.CurrentStreak, s.MaxStreak, distribution)
	return err
}
