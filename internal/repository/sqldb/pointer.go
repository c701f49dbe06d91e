package sqldb

import (
	"database/sql"
	"errors"
	"fmt"

	"wordy/internal/database"
	"wordy/internal/domain"
)

// PointerRepo implements repository.PointerRepository
type PointerRepo struct {
	db *database.DB
}

// NewPointerRepo creates a new user pointer repository
func NewPointerRepo(db *database.DB) *PointerRepo {
	return &PointerRepo{db: db}
}

// GetPointer returns the user's active puzzle pointer
func (r *PointerRepo) GetPointer(userID int64) (*domain.UserPointer, error) {
	var (
		p    domain.UserPointer
		last nullDate
	)
	query := `
		SELECT user_id, puzzle_state_id, word_id, word_date, last_date_played
		FROM user_pointers
		WHERE user_id = ?
	`
	err := r.db.QueryRow(query, userID).Scan(&p.UserID, &p.PuzzleStateID, &p.WordID, &p.WordDate, &last)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("pointer for user %d: %w", userID, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}

	p.LastDatePlayed = last.Ptr()
	return &p, nil
}

// SetActivePuzzle moves the pointer to p's puzzle. last_date_played is only
// written on insert and is otherwise left as stored.
func (r *PointerRepo) SetActivePuzzle(p *domain.UserPointer) error {
	query := `
		INSERT INTO user_pointers (user_id, puzzle_state_id, word_id, word_date, last_date_played)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (user_id)
		DO UPDATE SET
			puzzle_state_id = excluded.puzzle_state_id,
			word_id = excluded.word_id,
			word_date = excluded.word_date
	`
	_, err := r.db.Exec(query, p.UserID, p.PuzzleStateID, p.WordID, p.WordDate, dateValue(p.LastDatePlayed))
	return err
}

// SetLastDatePlayed records the date of the last completed daily puzzle
func (r *PointerRepo) SetLastDatePlayed(userID int64, date domain.Date) error {
	query := `UPDATE user_pointers SET last_date_played = ? WHERE user_id = ?`
	result, err := r.db.Exec(query, date, userID)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("pointer for user %d: %w", userID, domain.ErrNotFound)
	}
	return nil
}
