package sqldb

import (
	"database/sql"
	"errors"

	"wordy/internal/database"
	"wordy/internal/domain"
)

// UserRepo implements repository.UserRepository
type UserRepo struct {
	db *database.DB
}

// NewUserRepo creates a new user repository
func NewUserRepo(db *database.DB) *UserRepo {
	return &UserRepo{db: db}
}

// IsAuthorized checks if user is authorized
func (r *UserRepo) IsAuthorized(userID int64) (bool, error) {
	var authorized bool
	query := `SELECT authorized FROM users WHERE user_id = ?`
	err := r.db.QueryRow(query, userID).Scan(&authorized)

	if errors.Is(err, sql.ErrNoRows) {
		// User doesn't exist yet
		return false, nil
	}
	if err != nil {
		return false, err
	}

	return authorized, nil
}

// AuthorizeUser marks user as authorized
func (r *UserRepo) AuthorizeUser(userID int64) error {
	query := `
		INSERT INTO users (user_id, authorized)
		VALUES (?, ?)
		ON CONFLICT (user_id)
		DO UPDATE SET authorized = excluded.authorized
	`
	_, err := r.db.Exec(query, userID, true)
	return err
}

// EnsureUserExists creates the user if missing and refreshes the stored
// display name when one is given
func (r *UserRepo) EnsureUserExists(userID int64, username string) error {
	if username == "" {
		query := `
			INSERT INTO users (user_id, authorized)
			VALUES (?, ?)
			ON CONFLICT (user_id) DO NOTHING
		`
		_, err := r.db.Exec(query, userID, false)
		return err
	}

	query := `
		INSERT INTO users (user_id, username, authorized)
		VALUES (?, ?, ?)
		ON CONFLICT (user_id)
		DO UPDATE SET username = excluded.username
	`
	_, err := r.db.Exec(query, userID, username, false)
	return err
}

// ListAuthorizedUsers returns every user that passed the password gate
func (r *UserRepo) ListAuthorizedUsers() ([]domain.User, error) {
	query := `
		SELECT user_id, username, authorized, created_at
		FROM users
		WHERE authorized = ?
		ORDER BY user_id
	`
	rows, err := r.db.Query(query, true)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		var u domain.User
		if err := rows.Scan(&u.UserID, &u.Username, &u.Authorized, &u.CreatedAt); err != nil {
			return nil, err
		}
		users = append(users, u)
	}

	return users, rows.Err()
}
