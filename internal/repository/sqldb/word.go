package sqldb

import (
	"database/sql"
	"errors"
	"fmt"

	"wordy/internal/database"
	"wordy/internal/domain"
)

// WordRepo implements repository.WordRepository
type WordRepo struct {
	db *database.DB
}

// NewWordRepo creates a new word repository
func NewWordRepo(db *database.DB) *WordRepo {
	return &WordRepo{db: db}
}

// ListWords returns the whole dictionary ordered by date
func (r *WordRepo) ListWords() ([]domain.Word, error) {
	query := `SELECT id, date, word FROM words ORDER BY date`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var words []domain.Word
	for rows.Next() {
		var w domain.Word
		if err := rows.Scan(&w.ID, &w.Date, &w.Text); err != nil {
			return nil, err
		}
		words = append(words, w)
	}

	return words, rows.Err()
}

// GetWordByDate returns the word scheduled for date
func (r *WordRepo) GetWordByDate(date domain.Date) (*domain.Word, error) {
	query := `SELECT id, date, word FROM words WHERE date = ?`
	w, err := r.scanWord(r.db.QueryRow(query, date))
	if errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("word for %s: %w", date, err)
	}
	return w, err
}

// GetWordByID returns the word with the given id
func (r *WordRepo) GetWordByID(id int64) (*domain.Word, error) {
	query := `SELECT id, date, word FROM words WHERE id = ?`
	w, err := r.scanWord(r.db.QueryRow(query, id))
	if errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("word %d: %w", id, err)
	}
	return w, err
}

// CountWords returns the number of seeded words
func (r *WordRepo) CountWords() (int, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM words`).Scan(&count)
	return count, err
}

// SeedWords inserts the schedule in a single transaction
func (r *WordRepo) SeedWords(words []domain.Word) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(r.db.Dialect.RewriteQuery(`INSERT INTO words (date, word) VALUES (?, ?)`))
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, w := range words {
		if _, err := stmt.Exec(w.Date, w.Text); err != nil {
			return fmt.Errorf("failed to insert %q for %s: %w", w.Text, w.Date, err)
		}
	}

	return tx.Commit()
}

// FindUnfinishedWordBefore returns the most recent word dated before
// `before` for which the user has no puzzle state or an unsolved one
func (r *WordRepo) FindUnfinishedWordBefore(userID int64, before domain.Date) (*domain.Word, error) {
	query := `
		SELECT w.id, w.date, w.word
		FROM words w
		LEFT JOIN puzzle_states p ON p.word_id = w.id AND p.user_id = ?
		WHERE w.date < ? AND p.solved IS NULL
		ORDER BY w.date DESC
		LIMIT 1
	`
	w, err := r.scanWord(r.db.QueryRow(query, userID, before))
	if errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("unfinished puzzle before %s: %w", before, err)
	}
	return w, err
}

func (r *WordRepo) scanWord(row *sql.Row) (*domain.Word, error) {
	var w domain.Word
	err := row.Scan(&w.ID, &w.Date, &w.Text)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &w, nil
}
