package sqldb

import (
	"database/sql"
	"errors"
	"fmt"

	"wordy/internal/database"
	"wordy/internal/domain"
)

const puzzleColumns = `
	p.id, p.user_id, p.word_id, w.date, p.created_at, p.updated_at,
	p.guess_number, p.attempts, p.key_states, p.solved
`

// PuzzleRepo implements repository.PuzzleRepository
type PuzzleRepo struct {
	db *database.DB
}

// NewPuzzleRepo creates a new puzzle state repository
func NewPuzzleRepo(db *database.DB) *PuzzleRepo {
	return &PuzzleRepo{db: db}
}

// GetPuzzle returns the puzzle state with the given id
func (r *PuzzleRepo) GetPuzzle(id int64) (*domain.PuzzleState, error) {
	query := `SELECT ` + puzzleColumns + `
		FROM puzzle_states p
		JOIN words w ON w.id = p.word_id
		WHERE p.id = ?
	`
	p, err := scanPuzzle(r.db.QueryRow(query, id))
	if errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("puzzle %d: %w", id, err)
	}
	return p, err
}

// GetPuzzleForWord returns the user's puzzle state for a word
func (r *PuzzleRepo) GetPuzzleForWord(userID, wordID int64) (*domain.PuzzleState, error) {
	query := `SELECT ` + puzzleColumns + `
		FROM puzzle_states p
		JOIN words w ON w.id = p.word_id
		WHERE p.user_id = ? AND p.word_id = ?
	`
	p, err := scanPuzzle(r.db.QueryRow(query, userID, wordID))
	if errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("puzzle for user %d word %d: %w", userID, wordID, err)
	}
	return p, err
}

// CreatePuzzle inserts p and sets its ID
func (r *PuzzleRepo) CreatePuzzle(p *domain.PuzzleState) error {
	attempts, keys, err := encodePuzzle(p)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO puzzle_states
			(user_id, word_id, created_at, updated_at, guess_number, attempts, key_states, solved)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`
	id, err := r.db.ExecReturningID(query,
		p.UserID, p.WordID, p.CreatedAt, p.UpdatedAt,
		p.GuessNumber, attempts, keys, boolValue(p.Solved),
	)
	if err != nil {
		return err
	}

	p.ID = id
	return nil
}

// UpdatePuzzle persists the mutable fields of p
func (r *PuzzleRepo) UpdatePuzzle(p *domain.PuzzleState) error {
	attempts, keys, err := encodePuzzle(p)
	if err != nil {
		return err
	}

	query := `
		UPDATE puzzle_states
		SET updated_at = ?, guess_number = ?, attempts = ?, key_states = ?, solved = ?
		WHERE id = ?
	`
	result, err := r.db.Exec(query, p.UpdatedAt, p.GuessNumber, attempts, keys, boolValue(p.Solved), p.ID)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("puzzle %d: %w", p.ID, domain.ErrNotFound)
	}
	return nil
}

func encodePuzzle(p *domain.PuzzleState) (string, string, error) {
	attempts := p.Attempts
	if attempts == nil {
		attempts = [][]domain.TypedLetter{}
	}
	keys := p.Keys
	if keys == nil {
		keys = domain.KeyStates{}
	}

	a, err := encodeJSON(attempts)
	if err != nil {
		return "", "", err
	}
	k, err := encodeJSON(keys)
	if err != nil {
		return "", "", err
	}
	return a, k, nil
}

func scanPuzzle(row *sql.Row) (*domain.PuzzleState, error) {
	var (
		p        domain.PuzzleState
		attempts string
		keys     string
		solved   sql.NullBool
	)
	err := row.Scan(
		&p.ID, &p.UserID, &p.WordID, &p.Date, &p.CreatedAt, &p.UpdatedAt,
		&p.GuessNumber, &attempts, &keys, &solved,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	p.Attempts = [][]domain.TypedLetter{}
	if err := decodeJSON(attempts, &p.Attempts); err != nil {
		return nil, err
	}
	p.Keys = domain.KeyStates{}
	if err := decodeJSON(keys, &p.Keys); err != nil {
		return nil, err
	}
	p.Solved = boolPtr(solved)

	return &p, nil
}
