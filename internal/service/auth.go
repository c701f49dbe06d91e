package service

import (
	"wordy/internal/domain"
	"wordy/internal/repository"
)

// AuthService handles the shared password gate and the player roster
type AuthService struct {
	userRepo    repository.UserRepository
	botPassword string
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo repository.UserRepository, botPassword string) *AuthService {
	return &AuthService{
		userRepo:    userRepo,
		botPassword: botPassword,
	}
}

// CheckPassword verifies if provided password matches
func (s *AuthService) CheckPassword(password string) bool {
	return password == s.botPassword
}

// IsAuthorized checks if user is authorized
func (s *AuthService) IsAuthorized(userID int64) (bool, error) {
	return s.userRepo.IsAuthorized(userID)
}

// AuthorizeUser authorizes a user
func (s *AuthService) AuthorizeUser(userID int64) error {
	return s.userRepo.AuthorizeUser(userID)
}

// EnsureUserExists creates user record if doesn't exist
func (s *AuthService) EnsureUserExists(userID int64, username string) error {
	return s.userRepo.EnsureUserExists(userID, username)
}

// Friends returns every other authorized player
func (s *AuthService) Friends(userID int64) ([]domain.Friend, error) {
	users, err := s.userRepo.ListAuthorizedUsers()
	if err != nil {
		return nil, err
	}

	friends := make([]domain.Friend, 0, len(users))
	for _, u := range users {
		if u.UserID == userID {
			continue
		}
		friends = append(friends, domain.Friend{ID: u.UserID, Name: u.DisplayName()})
	}
	return friends, nil
}
